package strategy

import (
	"math"

	"NexusBoard/internal/calculator"
	"NexusBoard/internal/model"
)

// TrendResult carries the moving averages behind a trend call.
type TrendResult struct {
	Trend   model.Trend
	MAShort float64
	MALong  float64
}

// ComputeTrend classifies the series by comparing short and long
// simple moving averages of the closes. A 1% band around parity is the
// deliberate noise threshold so flat series do not flap.
func ComputeTrend(series []model.SeriesPoint, short, long int) TrendResult {
	closes := make([]float64, 0, len(series))
	for _, p := range series {
		if !math.IsInf(p.Close, 0) && !math.IsNaN(p.Close) {
			closes = append(closes, p.Close)
		}
	}
	maS := calculator.MovingAverage(closes, short)
	maL := calculator.MovingAverage(closes, long)
	if maS == 0 || maL == 0 {
		return TrendResult{Trend: model.TrendStable, MAShort: maS, MALong: maL}
	}

	ratio := maS / maL
	switch {
	case ratio >= 1.01:
		return TrendResult{Trend: model.TrendUp, MAShort: maS, MALong: maL}
	case ratio <= 0.99:
		return TrendResult{Trend: model.TrendDown, MAShort: maS, MALong: maL}
	default:
		return TrendResult{Trend: model.TrendStable, MAShort: maS, MALong: maL}
	}
}

// ComputeVolatility returns the sample standard deviation of
// close-to-close daily returns. Steps whose previous close is zero or
// negative are skipped; fewer than two returns yield 0.
func ComputeVolatility(series []model.SeriesPoint) float64 {
	var returns []float64
	for i := 1; i < len(series); i++ {
		prev := series[i-1].Close
		if prev > 0 {
			returns = append(returns, (series[i].Close-prev)/prev)
		}
	}
	return calculator.SampleStdDev(returns)
}

// ComputeRisk combines scale and stability into a three-tier call.
// The low check runs before medium on purpose: a large but volatile
// company must not land in low.
func ComputeRisk(volatility, marketCap float64) model.Risk {
	mcap := math.Max(0, marketCap)
	if mcap >= 50_000_000_000 && volatility < 0.02 {
		return model.RiskLow
	}
	if mcap >= 10_000_000_000 && volatility < 0.05 {
		return model.RiskMedium
	}
	return model.RiskHigh
}

// ProfitabilityScore blends dividend, EPS and log-scaled volume into a
// 0-100 composite. Volume maps 1e2..1e8 roughly onto [0,1].
func ProfitabilityScore(dividendPct, eps, volume float64) int {
	d := calculator.Clamp(dividendPct, 0, 20) / 20
	e := calculator.Clamp(eps, 0, 50) / 50
	v := math.Log10(math.Max(1, volume))
	vNorm := calculator.Clamp((v-2)/6, 0, 1)
	return int(math.Round((d*0.35 + e*0.35 + vNorm*0.3) * 100))
}
