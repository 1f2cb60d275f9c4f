package payeer

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// AuthCheck sends the credentials alone; nil means they were accepted.
func (p *Client) AuthCheck() error {
	_, err := p.Request(nil)
	return err
}

func (p *Client) Balance() (map[string]Balance, error) {
	resp, err := p.call(ACTION_BALANCE, nil)
	if err != nil {
		return nil, err
	}
	var balances map[string]Balance
	if err := resp.Decode("balance", &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

// CheckUser reports whether the account exists. An API error means it
// does not; only transport and decoding failures are returned.
func (p *Client) CheckUser(user string) (bool, error) {
	_, err := p.call(ACTION_CHECK_USER, NewParams().Set("user", user))
	return probe(err)
}

// ExchangeRate returns the automatic conversion rates keyed by pair,
// e.g. "USD/RUB". Empty direction means deposit rates.
func (p *Client) ExchangeRate(direction RateDirection) (map[string]decimal.Decimal, error) {
	if direction == "" {
		direction = RATE_DEPOSIT
	}
	resp, err := p.call(ACTION_EXCHANGE_RATE, NewParams().Set("output", string(direction)))
	if err != nil {
		return nil, err
	}
	var rates map[string]decimal.Decimal
	if err := resp.Decode("rate", &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

func (p *Client) PaySystems() (json.RawMessage, error) {
	resp, err := p.call(ACTION_PAY_SYSTEMS, nil)
	if err != nil {
		return nil, err
	}
	return resp.Raw("list")
}

func (p *Client) HistoryInfo(historyId string) (json.RawMessage, error) {
	resp, err := p.call(ACTION_HISTORY_INFO, NewParams().Set("historyId", historyId))
	if err != nil {
		return nil, err
	}
	return resp.Raw("info")
}

// ShopOrderInfo looks up a store transaction by merchant id (m_shop) and
// order id (m_orderid).
func (p *Client) ShopOrderInfo(shopId string, orderId string) (Response, error) {
	return p.call(ACTION_SHOP_ORDER_INFO, NewParams().
		Set("shopId", shopId).
		Set("orderId", orderId))
}

func (p *Client) History(query HistoryQuery) (json.RawMessage, error) {
	resp, err := p.call(ACTION_HISTORY, query.params())
	if err != nil {
		return nil, err
	}
	return resp.Raw("history")
}

func (q HistoryQuery) params() *Params {
	params := NewParams()
	if q.Sort != "" {
		params.Set("sort", string(q.Sort))
	}
	if q.Count > 0 {
		params.SetInt("count", int64(q.Count))
	}
	if !q.From.IsZero() {
		params.SetTime("from", q.From)
	}
	if !q.To.IsZero() {
		params.SetTime("to", q.To)
	}
	if q.Type != "" {
		params.Set("type", string(q.Type))
	}
	if q.Append != "" {
		params.Set("append", q.Append)
	}
	return params.Merge(q.Extra)
}
