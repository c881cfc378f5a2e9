package model

// SeriesPoint represents one trading day of a stock time series.
// Date is an opaque label; when every point matches YYYY-MM-DD the
// series is treated as chronological.
type SeriesPoint struct {
	Date   string  `json:"date"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// ColumnMapping resolves the three logical columns to field indices.
type ColumnMapping struct {
	Date   int `json:"date"`
	Close  int `json:"close"`
	Volume int `json:"volume"`
}

// Issue records a non-fatal problem at a 1-based source line.
type Issue struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ParseMeta describes how an ingestion run interpreted its input.
type ParseMeta struct {
	Delimiter         string         `json:"delimiter"`
	HasHeader         bool           `json:"has_header"`
	Columns           []string       `json:"columns"`
	Mapped            *ColumnMapping `json:"mapped"`
	DuplicatesRemoved int            `json:"duplicates_removed"`
	Sorted            bool           `json:"sorted"`
}

// ParseResult is the complete outcome of one ingestion call. It is
// created fresh per call and never mutated after return.
type ParseResult struct {
	Series []SeriesPoint `json:"series"`
	Issues []Issue       `json:"issues"`
	Meta   ParseMeta     `json:"meta"`
}

// Fundamentals holds user-supplied per-stock figures. All numeric
// fields default to 0 when the raw input is unparsable.
type Fundamentals struct {
	LastTradingPrice float64 `json:"last_trading_price"`
	DayLow           float64 `json:"day_low"`
	DayHigh          float64 `json:"day_high"`
	Volume           float64 `json:"volume"`
	MarketCap        float64 `json:"market_cap"`
	PERatio          float64 `json:"pe_ratio"`
	DividendPct      float64 `json:"dividend_pct"`
	EPS              float64 `json:"eps"`
	Sector           string  `json:"sector"`
}
