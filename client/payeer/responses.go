package payeer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Response is the top level object of an API reply. Fields are kept raw
// and decoded on demand.
type Response map[string]json.RawMessage

func (r Response) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Decode unmarshals a single top level field into dst.
func (r Response) Decode(field string, dst any) error {
	raw, ok := r[field]
	if !ok {
		return fmt.Errorf("payeer: response has no %q field", field)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("payeer: decode %q field: %w", field, err)
	}
	return nil
}

func (r Response) Raw(field string) (json.RawMessage, error) {
	raw, ok := r[field]
	if !ok {
		return nil, fmt.Errorf("payeer: response has no %q field", field)
	}
	return raw, nil
}

// Balance [balance]
type Balance struct {
	Total           decimal.Decimal `json:"BUDGET"`
	Available       decimal.Decimal `json:"DOSTUPNO"`
	AvailableSystem decimal.Decimal `json:"DOSTUPNO_SYST"`
}

// Transfer [transfer]
type TransferRequest struct {
	Sum     decimal.Decimal
	To      string
	CurIn   Currency
	CurOut  Currency
	Comment string
	// Protect enables transaction protection; the period and code are
	// only sent together with it.
	Protect       bool
	ProtectPeriod int
	ProtectCode   string
}

// Payout [initOutput, output]
type PayoutRequest struct {
	PaySystem     string
	AccountNumber string
	SumIn         decimal.Decimal
	CurIn         Currency
	CurOut        Currency
	// Extra param_* fields required by some payment systems
	Extra *Params
}

// History [history]
type HistoryQuery struct {
	Sort  SortOrder
	Count int
	From  time.Time
	To    time.Time
	Type  HistoryType
	// Append is the id of the last transaction of the previous page
	Append string
	Extra  *Params
}

// errorsSet reports whether an "errors" value counts as a failure:
// anything except null, false, 0, "" and empty arrays or objects.
func errorsSet(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	switch string(trimmed) {
	case "null", "false", `""`, "[]", "{}":
		return false
	}
	switch trimmed[0] {
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err == nil {
			return len(list) > 0
		}
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			return len(obj) > 0
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, err := decimal.NewFromString(string(trimmed))
		if err == nil {
			return !n.IsZero()
		}
	}
	return true
}
