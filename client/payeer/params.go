package payeer

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const timeLayout = "2006-01-02 15:04:05"

type param struct {
	name  string
	value string
}

// Params is an ordered set of request fields. Setting a name that is
// already present replaces its value in place, so later values win while
// the original position is kept.
type Params struct {
	items []param
}

func NewParams() *Params {
	return &Params{}
}

func (p *Params) Set(name string, value string) *Params {
	for i := range p.items {
		if p.items[i].name == name {
			p.items[i].value = value
			return p
		}
	}
	p.items = append(p.items, param{name: name, value: value})
	return p
}

func (p *Params) SetInt(name string, value int64) *Params {
	return p.Set(name, strconv.FormatInt(value, 10))
}

func (p *Params) SetDecimal(name string, value decimal.Decimal) *Params {
	return p.Set(name, value.String())
}

func (p *Params) SetTime(name string, value time.Time) *Params {
	return p.Set(name, value.Format(timeLayout))
}

// Merge applies every field of other in order. Nil is a no-op.
func (p *Params) Merge(other *Params) *Params {
	if other == nil {
		return p
	}
	for _, item := range other.items {
		p.Set(item.name, item.value)
	}
	return p
}

func (p *Params) Get(name string) (string, bool) {
	for _, item := range p.items {
		if item.name == name {
			return item.value, true
		}
	}
	return "", false
}

func (p *Params) Len() int {
	return len(p.items)
}

// Encode renders the fields as an x-www-form-urlencoded body in insertion order.
func (p *Params) Encode() string {
	sb := strings.Builder{}
	for i, item := range p.items {
		if i > 0 {
			sb.WriteString("&")
		}
		sb.WriteString(url.QueryEscape(item.name))
		sb.WriteString("=")
		sb.WriteString(url.QueryEscape(item.value))
	}
	return sb.String()
}

func (p *Params) clone() *Params {
	items := make([]param, len(p.items))
	copy(items, p.items)
	return &Params{items: items}
}
