package calculator

import (
	"math"
	"strconv"
	"strings"
)

// SafeNum parses a user-entered number. Digit-grouping commas and
// surrounding whitespace are stripped first. Any input that does not
// parse to a finite number yields 0; the fallback policy lives here so
// callers never reimplement it.
func SafeNum(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0
	}
	return n
}

// FiniteNum reports whether s parses to a finite number after comma
// stripping. Used by callers that must reject, not default, bad input.
func FiniteNum(s string) bool {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return false
	}
	n, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(n, 0) && !math.IsNaN(n)
}
