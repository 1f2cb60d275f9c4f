package payeer

// API actions
type Action string

const (
	ACTION_BALANCE         Action = "balance"
	ACTION_CHECK_USER      Action = "checkUser"
	ACTION_EXCHANGE_RATE   Action = "getExchangeRate"
	ACTION_PAY_SYSTEMS     Action = "getPaySystems"
	ACTION_HISTORY_INFO    Action = "historyInfo"
	ACTION_SHOP_ORDER_INFO Action = "shopOrderInfo"
	ACTION_TRANSFER        Action = "transfer"
	ACTION_INIT_OUTPUT     Action = "initOutput"
	ACTION_OUTPUT          Action = "output"
	ACTION_HISTORY         Action = "history"
)

func (a Action) String() string {
	return string(a)
}

// Currencies
type Currency string

const (
	CUR_USD  Currency = "USD"
	CUR_EUR  Currency = "EUR"
	CUR_RUB  Currency = "RUB"
	CUR_BTC  Currency = "BTC"
	CUR_ETH  Currency = "ETH"
	CUR_LTC  Currency = "LTC"
	CUR_USDT Currency = "USDT"
	// "BCH"
	// "DASH"
	// "XRP"
	// "DOGE"
	// "TRX"
)

func (c Currency) String() string {
	return string(c)
}

func (c Currency) orDefault() Currency {
	if c == "" {
		return CUR_USD
	}
	return c
}

// Conversion rate direction for getExchangeRate
type RateDirection string

const (
	RATE_DEPOSIT    RateDirection = "N"
	RATE_WITHDRAWAL RateDirection = "Y"
)

// History sorting
type SortOrder string

const (
	SORT_ASC  SortOrder = "asc"
	SORT_DESC SortOrder = "desc"
)

// History transaction types
type HistoryType string

const (
	HISTORY_INCOMING HistoryType = "incoming"
	HISTORY_OUTGOING HistoryType = "outgoing"
)
