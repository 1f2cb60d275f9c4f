package payeer

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Transfer moves funds to another Payeer wallet. The destination is
// checked locally first. It reports whether the API assigned a positive
// history id to the transfer.
func (p *Client) Transfer(req TransferRequest) (bool, error) {
	if err := ValidateWallet(req.To); err != nil {
		return false, err
	}
	resp, err := p.call(ACTION_TRANSFER, req.params())
	if err != nil {
		return false, err
	}
	historyId, err := historyIdOf(resp)
	if err != nil {
		p.logger.Warn("[PayeerClient] Transfer accepted with unreadable historyId", "to", req.To, "sum", req.Sum.String(), "error", err)
		return false, fmt.Errorf("payeer: transfer accepted but its history id could not be read: %w", err)
	}
	p.logger.Info("[PayeerClient] Transfer sent", "to", req.To, "sum", req.Sum.String(), "historyId", historyId.String())
	return historyId.IsPositive(), nil
}

func (req TransferRequest) params() *Params {
	params := NewParams().
		SetDecimal("sum", req.Sum).
		Set("to", req.To).
		Set("curIn", req.CurIn.orDefault().String()).
		Set("curOut", req.CurOut.orDefault().String())
	if req.Comment != "" {
		params.Set("comment", req.Comment)
	}
	if req.Protect {
		params.Set("protect", "Y")
		if req.ProtectPeriod > 0 {
			params.SetInt("protectPeriod", int64(req.ProtectPeriod))
		}
		if req.ProtectCode != "" {
			params.Set("protectCode", req.ProtectCode)
		}
	}
	return params
}

// CheckOutput asks whether a payout could be made without creating it.
// An API error means it could not; only transport and decoding failures
// are returned.
func (p *Client) CheckOutput(req PayoutRequest) (bool, error) {
	_, err := p.call(ACTION_INIT_OUTPUT, req.params())
	return probe(err)
}

func (p *Client) Output(req PayoutRequest) (Response, error) {
	resp, err := p.call(ACTION_OUTPUT, req.params())
	if err != nil {
		return nil, err
	}
	p.logger.Info("[PayeerClient] Payout created", "ps", req.PaySystem, "sumIn", req.SumIn.String())
	return resp, nil
}

func (req PayoutRequest) params() *Params {
	return NewParams().
		Set("ps", req.PaySystem).
		Set("param_ACCOUNT_NUMBER", req.AccountNumber).
		SetDecimal("sumIn", req.SumIn).
		Set("curIn", req.CurIn.orDefault().String()).
		Set("curOut", req.CurOut.orDefault().String()).
		Merge(req.Extra)
}

// historyIdOf reads "historyId", which may come as a number or a string.
// A missing or empty value counts as zero.
func historyIdOf(resp Response) (decimal.Decimal, error) {
	raw, ok := resp["historyId"]
	if !ok {
		return decimal.Zero, nil
	}
	switch string(raw) {
	case "null", `""`, "false":
		return decimal.Zero, nil
	}
	var id decimal.Decimal
	if err := id.UnmarshalJSON(raw); err != nil {
		return decimal.Zero, fmt.Errorf("payeer: bad historyId %s: %w", string(raw), err)
	}
	return id, nil
}
