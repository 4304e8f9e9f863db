package yahoo

// Response represents the raw JSON response structure from the Yahoo Finance chart API.
// Only the meta block is read: it carries the latest quote of the symbol.
//
// The structure includes:
//   - Chart.Result: Array of result objects (typically contains one element)
//   - Chart.Result[].Meta: Symbol metadata and the regular-market quote
//   - Chart.Error: Optional error object from Yahoo API
type Response struct {
	Chart Chart `json:"chart"`
}

// Chart is the top-level chart envelope.
type Chart struct {
	Result []Result `json:"result"`
	Error  *Error   `json:"error"`
}

// Result is one symbol's chart result.
type Result struct {
	Meta Meta `json:"meta"`
}

// Meta holds the symbol metadata and latest regular-market figures.
// Pointer fields are absent on some instruments.
type Meta struct {
	Currency             string   `json:"currency"`
	Symbol               string   `json:"symbol"`
	ExchangeName         string   `json:"exchangeName"`
	FullExchangeName     string   `json:"fullExchangeName"`
	LongName             string   `json:"longName"`
	Shortname            string   `json:"shortName"`
	RegularMarketPrice   *float64 `json:"regularMarketPrice"`
	RegularMarketDayHigh *float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow  *float64 `json:"regularMarketDayLow"`
	RegularMarketVolume  *int64   `json:"regularMarketVolume"`
	PreviousClose        *float64 `json:"previousClose"`
	ChartPreviousClose   *float64 `json:"chartPreviousClose"`
}

// Error is the error object Yahoo returns in place of a result.
type Error struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Quote is the parsed latest quote of a symbol.
//
// Fields:
//   - Price: last regular-market price
//   - ChangePercent: move against the previous close, in percent
//   - DayHigh, DayLow, PreviousClose, Volume: nil when Yahoo omitted them
type Quote struct {
	Symbol        string
	Currency      string
	Price         float64
	ChangePercent *float64
	DayHigh       *float64
	DayLow        *float64
	PreviousClose *float64
	Volume        *int64
}
