package payeer

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Request merges params over the credentials and posts them to the API.
// A reply with a non-empty "errors" field is returned as *APIError whatever
// its status; a non-JSON body with an error status becomes a plain error.
func (p *Client) Request(params *Params) (Response, error) {
	data := p.auth.clone().Merge(params)
	action, _ := data.Get("action")
	requestId := uuid.NewString()
	p.logger.Debug("[PayeerClient] Sending request", "requestId", requestId, "action", action)

	fastResp, err := p.httpClient.
		POST(apiPath).
		Body().AsString(data.Encode()).
		Send()
	if err != nil {
		p.logger.Warn("[PayeerClient] HTTP error", "requestId", requestId, "action", action, "error", err)
		return nil, fmt.Errorf("payeer: %s request: %w", actionName(action), err)
	}
	body, err := fastResp.Body().AsString()
	if err != nil {
		return nil, fmt.Errorf("payeer: %s read body: %w", actionName(action), err)
	}
	resp, err := decodeResponse(body)
	if err != nil {
		if fastResp.Status().IsError() {
			p.logger.Warn("[PayeerClient] Response status error", "requestId", requestId, "action", action, "body", body)
			return nil, errors.New(body)
		}
		return nil, fmt.Errorf("payeer: %s: %w", actionName(action), err)
	}
	if raw, ok := resp["errors"]; ok && errorsSet(raw) {
		p.logger.Warn("[PayeerClient] API error", "requestId", requestId, "action", action, "errors", string(raw))
		return nil, &APIError{Errors: raw}
	}
	p.logger.Debug("[PayeerClient] Request done", "requestId", requestId, "action", action)
	return resp, nil
}

func (p *Client) call(action Action, params *Params) (Response, error) {
	if params == nil {
		params = NewParams()
	}
	return p.Request(params.Set("action", action.String()))
}

func actionName(action string) string {
	if action == "" {
		return "auth"
	}
	return action
}
