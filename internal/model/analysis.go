package model

// Trend classifies the short/long moving-average relationship.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Risk is the three-tier volatility/scale classification.
type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// Action is the final buy/hold/sell recommendation.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionHold Action = "hold"
	ActionSell Action = "sell"
)

// Profile is the user's risk-appetite bucket.
type Profile string

const (
	ProfileConservative Profile = "conservative"
	ProfileBalanced     Profile = "balanced"
	ProfileAggressive   Profile = "aggressive"
)

// Thresholds is the tunable decision policy for one profile.
type Thresholds struct {
	PEGoodMax    float64 `json:"pe_good_max" yaml:"pe_good_max"`
	PEOverMin    float64 `json:"pe_over_min" yaml:"pe_over_min"`
	DivGoodMin   float64 `json:"div_good_min" yaml:"div_good_min"`
	BuyScoreMin  float64 `json:"buy_score_min" yaml:"buy_score_min"`
	SellScoreMax float64 `json:"sell_score_max" yaml:"sell_score_max"`
}

// AnalysisResult is the full output of the heuristic engine. It is a
// pure function of series, fundamentals and profile; recomputed on
// every input change.
type AnalysisResult struct {
	Trend      Trend    `json:"trend"`
	MAShort    float64  `json:"ma_short"`
	MALong     float64  `json:"ma_long"`
	Volatility float64  `json:"volatility"`
	Risk       Risk     `json:"risk"`
	Score      int      `json:"score"`
	Action     Action   `json:"action"`
	Confidence int      `json:"confidence"`
	Reasons    []string `json:"reasons"`
	Profile    Profile  `json:"profile"`
}
