package strategy

import (
	"fmt"
	"math"
	"strings"

	"NexusBoard/internal/model"
)

// Default moving-average windows for the trend call.
const (
	ShortWindow = 5
	LongWindow  = 10
)

// DecisionInput bundles the signals DecideAction weighs.
type DecisionInput struct {
	Trend       model.Trend
	Risk        model.Risk
	PERatio     float64
	DividendPct float64
	Score       int
}

// DecideAction applies the rule table in priority order: buy, sell,
// hold. Buy needs an uptrend, non-high risk, a supportive valuation or
// dividend, and a score above the profile floor. Sell needs a
// downtrend plus either high risk or an overheated P/E, with a weak
// score. Everything else holds.
func DecideAction(in DecisionInput, t model.Thresholds) model.Action {
	peGood := in.PERatio > 0 && in.PERatio <= t.PEGoodMax
	peOver := in.PERatio >= t.PEOverMin
	divGood := in.DividendPct >= t.DivGoodMin

	if in.Trend == model.TrendUp && in.Risk != model.RiskHigh &&
		(peGood || divGood) && float64(in.Score) >= t.BuyScoreMin {
		return model.ActionBuy
	}
	if in.Trend == model.TrendDown && (in.Risk == model.RiskHigh || peOver) &&
		float64(in.Score) < t.SellScoreMax {
		return model.ActionSell
	}
	return model.ActionHold
}

// Confidence blends trend strength, risk, valuation, dividend and the
// profitability score into a rounded percentage. It is a weighted
// heuristic, not a probability.
func Confidence(tr TrendResult, risk model.Risk, f model.Fundamentals, score int, t model.Thresholds) int {
	trendStrength := 0.0
	if tr.MAShort != 0 && tr.MALong != 0 {
		ratio := tr.MAShort / tr.MALong
		trendStrength = math.Min(1, math.Abs(ratio-1)/0.03)
	}

	riskScore := 0.35
	switch risk {
	case model.RiskLow:
		riskScore = 0.85
	case model.RiskMedium:
		riskScore = 0.60
	}

	valuationScore := 0.55
	switch {
	case f.PERatio > 0 && f.PERatio <= t.PEGoodMax:
		valuationScore = 0.75
	case f.PERatio >= t.PEOverMin:
		valuationScore = 0.35
	}

	dividendScore := 0.45
	if f.DividendPct >= t.DivGoodMin {
		dividendScore = 0.70
	}

	c := 0.28*trendStrength + 0.22*riskScore + 0.20*valuationScore +
		0.15*dividendScore + 0.15*float64(score)/100
	return int(math.Round(c * 100))
}

// buildReasons produces one short justification per signal, in a fixed
// order: trend, risk, P/E, dividend, profitability, active profile.
func buildReasons(tr TrendResult, risk model.Risk, f model.Fundamentals, score int, t model.Thresholds, profile model.Profile) []string {
	var items []string

	switch tr.Trend {
	case model.TrendUp:
		items = append(items, "Uptrend (MA5 > MA10)")
	case model.TrendDown:
		items = append(items, "Downtrend (MA5 < MA10)")
	default:
		items = append(items, "Stable trend (MA5 ≈ MA10)")
	}

	switch risk {
	case model.RiskLow:
		items = append(items, "Lower volatility → lower risk")
	case model.RiskMedium:
		items = append(items, "Moderate volatility → be cautious")
	default:
		items = append(items, "High volatility → higher risk")
	}

	if f.PERatio > 0 && f.PERatio <= t.PEGoodMax {
		items = append(items, fmt.Sprintf("P/E looks reasonable (≤ %g)", t.PEGoodMax))
	}
	if f.PERatio >= t.PEOverMin {
		items = append(items, fmt.Sprintf("P/E looks high (≥ %g)", t.PEOverMin))
	}

	if f.DividendPct >= t.DivGoodMin {
		items = append(items, fmt.Sprintf("Dividend is supportive (≥ %g%%)", t.DivGoodMin))
	} else {
		items = append(items, fmt.Sprintf("Dividend is low (< %g%%)", t.DivGoodMin))
	}

	if float64(score) >= t.BuyScoreMin {
		items = append(items, fmt.Sprintf("Profit score is strong (%d/100)", score))
	} else {
		items = append(items, fmt.Sprintf("Profit score is moderate/low (%d/100)", score))
	}

	items = append(items, "Profile: "+titleProfile(profile))
	return items
}

// titleProfile renders a profile name for display ("balanced" →
// "Balanced").
func titleProfile(p model.Profile) string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Evaluate computes the full analysis from a cleaned series, the
// user-supplied fundamentals and a 0-100 risk appetite. It is a pure
// function and never fails: malformed numeric input degrades to zeros
// and a stable/hold result.
func Evaluate(series []model.SeriesPoint, f model.Fundamentals, appetite int) model.AnalysisResult {
	profile := ProfileFor(appetite)
	thresholds := ThresholdsFor(profile)

	tr := ComputeTrend(series, ShortWindow, LongWindow)
	vol := ComputeVolatility(series)
	risk := ComputeRisk(vol, f.MarketCap)
	score := ProfitabilityScore(f.DividendPct, f.EPS, f.Volume)

	action := DecideAction(DecisionInput{
		Trend:       tr.Trend,
		Risk:        risk,
		PERatio:     f.PERatio,
		DividendPct: f.DividendPct,
		Score:       score,
	}, thresholds)

	return model.AnalysisResult{
		Trend:      tr.Trend,
		MAShort:    tr.MAShort,
		MALong:     tr.MALong,
		Volatility: vol,
		Risk:       risk,
		Score:      score,
		Action:     action,
		Confidence: Confidence(tr, risk, f, score, thresholds),
		Reasons:    buildReasons(tr, risk, f, score, thresholds, profile),
		Profile:    profile,
	}
}
