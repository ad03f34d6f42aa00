// Package finance contains the pure normalization layer: loosely formatted
// monetary amounts, calendar periods, and raw records coming from external
// stores are converted here into canonical forms before any aggregation or
// valuation logic sees them.
package finance

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// numberPrefix matches the leading numeric portion of a normalized string,
// mirroring how the amounts were historically parsed (trailing currency
// markers like "100ARS" are tolerated).
var numberPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// rateToken matches the first run of digits and dots inside a free-text
// exchange-rate label, e.g. "Oficial 950.5".
var rateToken = regexp.MustCompile(`[0-9.]+`)

// ParseAmount converts a loosely typed amount value into a float64.
//
// Accepted inputs:
//   - nil: not an amount (ok=false)
//   - numeric types: returned as-is when finite
//   - json.Number: parsed through the string path
//   - strings: whitespace stripped, commas treated as decimal separators,
//     and when more than one "." remains, all but the last are treated as
//     thousands separators ("1.234.567,89" parses as 1234567.89)
//
// ok=false means the value contributes nothing to a sum; callers must never
// treat it as an error.
func ParseAmount(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		return parseAmountString(v.String())
	case string:
		return parseAmountString(v)
	default:
		return 0, false
	}
}

// ParseAmountString parses a loosely formatted numeric string.
// See ParseAmount for the separator rules.
func ParseAmountString(raw string) (float64, bool) {
	return parseAmountString(raw)
}

// ParseExchangeRateToken extracts a numeric rate from a value that may be a
// plain number or a free-text label such as "Blue 1450" or "Oficial 950,5".
// Falls back to the first numeric substring when direct parsing fails.
func ParseExchangeRateToken(value any) (float64, bool) {
	if direct, ok := ParseAmount(value); ok {
		return direct, true
	}

	s, isString := value.(string)
	if !isString {
		return 0, false
	}

	match := rateToken.FindString(strings.ReplaceAll(s, ",", "."))
	if match == "" {
		return 0, false
	}

	// Only the leading well-formed number counts: "1.450.50" reads as 1.45.
	prefix := numberPrefix.FindString(match)
	if prefix == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, false
	}
	return finite(parsed)
}

func parseAmountString(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}

	// Strip all whitespace, then normalize commas to decimal dots. The
	// multi-dot thousands heuristic below only applies after this step.
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, trimmed)
	normalized = strings.ReplaceAll(normalized, ",", ".")

	if strings.Count(normalized, ".") > 1 {
		// All dots except the last are thousands separators.
		lastDot := strings.LastIndex(normalized, ".")
		normalized = strings.ReplaceAll(normalized[:lastDot], ".", "") + normalized[lastDot:]
	}

	match := numberPrefix.FindString(normalized)
	if match == "" {
		return 0, false
	}

	parsed, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return finite(parsed)
}

func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
