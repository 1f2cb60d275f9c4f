package payeer

import (
	"encoding/json"
	"errors"
)

func decodeResponse(body string) (Response, error) {
	var resp Response
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, errors.New("empty response")
	}
	return resp, nil
}

func newAuthParams(config Config) *Params {
	return NewParams().
		Set("account", config.Account).
		Set("apiId", config.ApiId).
		Set("apiPass", config.Secret)
}

// probe turns an API error into a negative answer; other errors pass through.
func probe(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if IsAPIError(err) {
		return false, nil
	}
	return false, err
}
