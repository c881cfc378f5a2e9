package ingest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"NexusBoard/internal/calculator"
	"NexusBoard/internal/model"
)

// Header synonyms accepted for each logical column, English and Bangla.
// Matching is substring-based over normalized header text.
var headerSynonyms = map[string][]string{
	"date":   {"date", "trading date", "trade date", "দিন", "তারিখ"},
	"close":  {"close", "ltp", "last", "last price", "closing price", "price", "দাম", "ক্লোজ"},
	"volume": {"volume", "vol", "qty", "quantity", "trade", "traded", "turnover", "ভলিউম"},
}

var (
	isoDateRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	nonHeaderRe  = regexp.MustCompile(`[^a-z0-9 %]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// headerText is one header cell in the two forms used for matching:
// lowered (trimmed, lowercased, whitespace collapsed) and normalized
// (lowered with everything outside [a-z0-9 %] stripped).
type headerText struct {
	lowered    string
	normalized string
}

func normalizeHeader(h string) headerText {
	h = strings.ToLower(strings.TrimSpace(h))
	h = whitespaceRe.ReplaceAllString(h, " ")
	return headerText{lowered: h, normalized: nonHeaderRe.ReplaceAllString(h, "")}
}

// DetectDelimiter inspects the first non-blank line and chooses tab
// only when it is strictly more frequent than comma. One delimiter
// applies to the whole input.
func DetectDelimiter(text string) string {
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.Count(line, "\t") > strings.Count(line, ",") {
			return "\t"
		}
		return ","
	}
	return ","
}

// SplitRow splits one line on the delimiter using a minimal CSV
// grammar: a double quote toggles quoted state and is dropped; the
// delimiter only splits outside quotes. Fields are trimmed. Escaped
// quote doubling is not supported.
func SplitRow(line, delimiter string) []string {
	var out []string
	var cur strings.Builder
	inQuotes := false
	delim := rune(delimiter[0])
	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == delim && !inQuotes:
			out = append(out, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	out = append(out, strings.TrimSpace(cur.String()))
	return out
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// matchesAny tests a header cell against a synonym list. Synonyms the
// ASCII stripper would erase entirely (the Bangla ones) are matched
// against the unstripped lowered text instead; an empty needle would
// otherwise match everything.
func matchesAny(h headerText, synonyms []string) bool {
	for _, syn := range synonyms {
		needle := normalizeHeader(syn)
		if needle.normalized != "" {
			if strings.Contains(h.normalized, needle.normalized) {
				return true
			}
			continue
		}
		if needle.lowered != "" && strings.Contains(h.lowered, needle.lowered) {
			return true
		}
	}
	return false
}

func autoMap(normalized []headerText) *model.ColumnMapping {
	find := func(key string) int {
		for i, h := range normalized {
			if matchesAny(h, headerSynonyms[key]) {
				return i
			}
		}
		return -1
	}
	m := model.ColumnMapping{Date: find("date"), Close: find("close"), Volume: find("volume")}
	if m.Date < 0 || m.Close < 0 || m.Volume < 0 {
		return nil
	}
	return &m
}

// validMapping rejects caller-supplied mappings with negative or
// colliding indices. Width is checked per row during extraction.
func validMapping(m *model.ColumnMapping) bool {
	if m.Date < 0 || m.Close < 0 || m.Volume < 0 {
		return false
	}
	return m.Date != m.Close && m.Date != m.Volume && m.Close != m.Volume
}

func field(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// ParseAndClean turns raw pasted or uploaded tabular text into a
// sorted, deduplicated series of (date, close, volume) points. Row
// failures are accumulated as issues and never abort the run; the
// structural failures (no header, unresolvable columns, bad explicit
// mapping) fail closed with an empty series and Meta.Mapped nil.
func ParseAndClean(text string, mapping *model.ColumnMapping) model.ParseResult {
	delimiter := DetectDelimiter(text)
	meta := model.ParseMeta{Delimiter: delimiter, Columns: []string{}}

	var lines []string
	for _, l := range splitLines(text) {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) == 0 {
		return model.ParseResult{
			Series: []model.SeriesPoint{},
			Issues: []model.Issue{{Line: 1, Message: "Empty file"}},
			Meta:   meta,
		}
	}

	first := SplitRow(lines[0], delimiter)
	normalized := make([]headerText, len(first))
	for i, h := range first {
		normalized[i] = normalizeHeader(h)
	}

	hasHeader := false
	for i := range first {
		if matchesAny(normalized[i], headerSynonyms["date"]) ||
			matchesAny(normalized[i], headerSynonyms["close"]) ||
			matchesAny(normalized[i], headerSynonyms["volume"]) {
			hasHeader = true
			break
		}
	}
	meta.HasHeader = hasHeader
	if hasHeader {
		meta.Columns = first
	}

	mapped := mapping
	if mapped != nil && !validMapping(mapped) {
		return model.ParseResult{
			Series: []model.SeriesPoint{},
			Issues: []model.Issue{{Line: 1, Message: "Invalid column mapping: indices must be distinct and non-negative"}},
			Meta:   meta,
		}
	}
	if mapped == nil && hasHeader {
		mapped = autoMap(normalized)
	}

	if mapped == nil {
		msg := "Header not detected. Please include header or paste as: date,close,volume"
		if hasHeader {
			msg = "Could not auto-detect columns. Please map Date/Close/Volume."
		}
		return model.ParseResult{
			Series: []model.SeriesPoint{},
			Issues: []model.Issue{{Line: 1, Message: msg}},
			Meta:   meta,
		}
	}
	meta.Mapped = mapped

	dataLines := lines
	lineOffset := 1
	if hasHeader {
		dataLines = lines[1:]
		lineOffset = 2
	}

	var issues []model.Issue
	var points []model.SeriesPoint
	for i, line := range dataLines {
		row := SplitRow(line, delimiter)
		date := field(row, mapped.Date)
		closeRaw := field(row, mapped.Close)
		volumeRaw := field(row, mapped.Volume)

		// Empty numeric cells (including short rows) coerce to 0; only
		// non-empty text that fails to parse invalidates the row.
		badClose := closeRaw != "" && !calculator.FiniteNum(closeRaw)
		badVolume := volumeRaw != "" && !calculator.FiniteNum(volumeRaw)
		if date == "" || badClose || badVolume {
			issues = append(issues, model.Issue{
				Line:    lineOffset + i,
				Message: "Invalid row (need date, close, volume)",
			})
			continue
		}
		points = append(points, model.SeriesPoint{
			Date:   date,
			Close:  calculator.SafeNum(closeRaw),
			Volume: calculator.SafeNum(volumeRaw),
		})
	}

	series, removed := dedupeByDate(points)
	meta.DuplicatesRemoved = removed

	// Vacuously true on an empty series, so a valid-but-empty result
	// still reports sorted.
	if allISODates(series) {
		sort.SliceStable(series, func(a, b int) bool { return series[a].Date < series[b].Date })
		meta.Sorted = true
	}

	if issues == nil {
		issues = []model.Issue{}
	}
	if series == nil {
		series = []model.SeriesPoint{}
	}
	return model.ParseResult{Series: series, Issues: issues, Meta: meta}
}

// dedupeByDate keeps one point per distinct date, the last occurrence
// in file order winning, and preserves first-seen ordering otherwise.
func dedupeByDate(points []model.SeriesPoint) ([]model.SeriesPoint, int) {
	index := make(map[string]int, len(points))
	var out []model.SeriesPoint
	for _, p := range points {
		if at, seen := index[p.Date]; seen {
			out[at] = p
			continue
		}
		index[p.Date] = len(out)
		out = append(out, p)
	}
	return out, len(points) - len(out)
}

func allISODates(points []model.SeriesPoint) bool {
	for _, p := range points {
		if !isoDateRe.MatchString(p.Date) {
			return false
		}
	}
	return true
}

// SummarizeIssues renders issues for display, capped at max entries.
// The full list stays on the ParseResult.
func SummarizeIssues(issues []model.Issue, max int) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		if len(out) >= max {
			break
		}
		out = append(out, fmt.Sprintf("Line %d: %s", i.Line, i.Message))
	}
	return out
}
