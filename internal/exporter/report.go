package exporter

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"NexusBoard/internal/model"
	"NexusBoard/internal/strategy"
)

// FormatAnalysisReport formats one analysis run into a terminal report.
func FormatAnalysisReport(symbol string, f *model.Fundamentals, res *model.AnalysisResult, issues []model.Issue) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s analysis | %s ===\n\n", symbol, time.Now().Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("Trend:      %s (MA%d %.2f vs MA%d %.2f)\n",
		res.Trend, strategy.ShortWindow, res.MAShort, strategy.LongWindow, res.MALong))
	b.WriteString(fmt.Sprintf("Volatility: %.4f\n", res.Volatility))
	b.WriteString(fmt.Sprintf("Risk:       %s\n", res.Risk))
	b.WriteString(fmt.Sprintf("Score:      %d/100\n", res.Score))
	b.WriteString(fmt.Sprintf("Action:     %s (confidence %d%%, %s profile)\n\n", res.Action, res.Confidence, res.Profile))

	if f != nil {
		b.WriteString("Fundamentals:\n")
		b.WriteString(fmt.Sprintf("  Last price:  %.2f\n", f.LastTradingPrice))
		b.WriteString(fmt.Sprintf("  Market cap:  %s\n", humanize.Comma(int64(f.MarketCap))))
		b.WriteString(fmt.Sprintf("  P/E:         %.2f | Dividend: %.2f%% | EPS: %.2f\n", f.PERatio, f.DividendPct, f.EPS))
		if f.Sector != "" {
			b.WriteString(fmt.Sprintf("  Sector:      %s\n", f.Sector))
		}
		b.WriteString("\n")
	}

	b.WriteString("Reasons:\n")
	for _, r := range res.Reasons {
		b.WriteString(fmt.Sprintf("  - %s\n", r))
	}

	if len(issues) > 0 {
		b.WriteString(fmt.Sprintf("\nData issues (%d):\n", len(issues)))
		for _, iss := range issues {
			b.WriteString(fmt.Sprintf("  line %d: %s\n", iss.Line, iss.Message))
		}
	}

	return b.String()
}
