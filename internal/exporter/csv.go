package exporter

import (
	"fmt"
	"strconv"
	"strings"

	"NexusBoard/internal/model"
)

// ValidateFundamentals checks that every field needed for a CSV export is filled in.
func ValidateFundamentals(f *model.Fundamentals) error {
	if f == nil {
		return fmt.Errorf("fundamentals are required for export")
	}
	var missing []string
	if f.LastTradingPrice <= 0 {
		missing = append(missing, "last trading price")
	}
	if f.Volume <= 0 {
		missing = append(missing, "volume")
	}
	if f.MarketCap <= 0 {
		missing = append(missing, "market cap")
	}
	if f.PERatio <= 0 {
		missing = append(missing, "P/E ratio")
	}
	if f.EPS == 0 {
		missing = append(missing, "EPS")
	}
	if f.Sector == "" {
		missing = append(missing, "sector")
	}
	if len(missing) > 0 {
		return fmt.Errorf("fill fundamentals to enable export, missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ExportCSV renders the two-section export: an analysis summary followed by
// the cleaned series. Callers should run ValidateFundamentals first.
func ExportCSV(symbol string, series []model.SeriesPoint, f *model.Fundamentals, res *model.AnalysisResult) string {
	var b strings.Builder

	b.WriteString("# summary\n")
	b.WriteString("symbol,trend,risk,action,profitability_score,ma5,ma10,volatility,pe_ratio,dividend_pct,eps,market_cap,last_price,volume,sector\n")
	fields := []string{
		csvField(symbol),
		string(res.Trend),
		string(res.Risk),
		string(res.Action),
		strconv.Itoa(res.Score),
		csvNum(res.MAShort),
		csvNum(res.MALong),
		csvNum(res.Volatility),
		csvNum(f.PERatio),
		csvNum(f.DividendPct),
		csvNum(f.EPS),
		csvNum(f.MarketCap),
		csvNum(f.LastTradingPrice),
		csvNum(f.Volume),
		csvField(f.Sector),
	}
	b.WriteString(strings.Join(fields, ","))
	b.WriteString("\n\n")

	b.WriteString("# series\n")
	b.WriteString("date,close,volume\n")
	for _, p := range series {
		b.WriteString(csvField(p.Date))
		b.WriteString(",")
		b.WriteString(csvNum(p.Close))
		b.WriteString(",")
		b.WriteString(csvNum(p.Volume))
		b.WriteString("\n")
	}

	return b.String()
}

func csvNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func csvField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
