package finance

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MonthNames holds the localized month names used for period display labels.
var MonthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// UnknownPeriodLabel is returned by FormatPeriodLabel when the input cannot
// be resolved into a calendar month.
const UnknownPeriodLabel = "Periodo desconocido"

var simplePeriod = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)

// dateLayouts are tried in order when a period-like string is not already in
// "YYYY-M[M]" form.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// NormalizePeriod canonicalizes a period-like string into "YYYY-MM".
//
// A "YYYY-M" or "YYYY-MM" token is zero-padded directly; anything else is
// parsed as a date and reduced to its year and month. Returns "" when
// neither path succeeds. Idempotent: normalizing an already canonical token
// returns it unchanged.
func NormalizePeriod(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}

	if m := simplePeriod.FindStringSubmatch(trimmed); m != nil {
		month, err := strconv.Atoi(m[2])
		if err != nil || month < 1 || month > 12 {
			return ""
		}
		return fmt.Sprintf("%s-%02d", m[1], month)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return PeriodFromTime(t)
		}
	}
	return ""
}

// NormalizePeriodValue resolves a loosely typed period source (a canonical
// token, a date string, or a time.Time) into "YYYY-MM". Returns "" for
// anything unresolvable.
func NormalizePeriodValue(value any) string {
	switch v := value.(type) {
	case string:
		return NormalizePeriod(v)
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return PeriodFromTime(v)
	case *time.Time:
		if v == nil || v.IsZero() {
			return ""
		}
		return PeriodFromTime(*v)
	default:
		return ""
	}
}

// PeriodFromTime returns the canonical period for a date.
func PeriodFromTime(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// CurrentPeriod returns the canonical period for the current date.
func CurrentPeriod() string {
	return PeriodFromTime(time.Now())
}

// PreviousPeriod returns the period one month before the given one, rolling
// the year back at January. Returns "" when the input does not normalize.
func PreviousPeriod(period string) string {
	return shiftPeriod(period, -1)
}

// NextPeriod returns the period one month after the given one, rolling the
// year forward at December. Returns "" when the input does not normalize.
func NextPeriod(period string) string {
	return shiftPeriod(period, 1)
}

func shiftPeriod(period string, months int) string {
	year, month, ok := SplitPeriod(period)
	if !ok {
		return ""
	}

	month += months
	for month < 1 {
		month += 12
		year--
	}
	for month > 12 {
		month -= 12
		year++
	}
	return fmt.Sprintf("%04d-%02d", year, month)
}

// SplitPeriod breaks a period-like value into numeric year and month.
func SplitPeriod(period string) (year, month int, ok bool) {
	normalized := NormalizePeriod(period)
	if normalized == "" {
		return 0, 0, false
	}

	parts := strings.SplitN(normalized, "-", 2)
	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	if errY != nil || errM != nil {
		return 0, 0, false
	}
	return year, month, true
}

// FormatPeriodLabel maps a canonical period to a localized "Month Year"
// display string. Unparseable periods fall back to UnknownPeriodLabel.
func FormatPeriodLabel(period string) string {
	normalized := NormalizePeriod(period)
	if normalized == "" {
		return UnknownPeriodLabel
	}

	year, month, ok := SplitPeriod(normalized)
	if !ok || month < 1 || month > 12 {
		return normalized
	}
	return fmt.Sprintf("%s %d", MonthNames[month-1], year)
}

// SortPeriodsDesc normalizes the given periods, drops anything unparseable,
// and returns them newest-first. Lexicographic order is chronological here
// because every token shares the zero-padded "YYYY-MM" shape.
func SortPeriodsDesc(periods []string) []string {
	sorted := make([]string, 0, len(periods))
	for _, period := range periods {
		if normalized := NormalizePeriod(period); normalized != "" {
			sorted = append(sorted, normalized)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))
	return sorted
}

// SortPeriodsAsc is the oldest-first counterpart of SortPeriodsDesc, used
// for left-to-right time-series output.
func SortPeriodsAsc(periods []string) []string {
	sorted := SortPeriodsDesc(periods)
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	return sorted
}

// AdjustDateForCopy shifts a date by whole months, preserving the day of
// month when the target month has enough days and clamping to month-end
// otherwise (Jan 31 shifted by +1 becomes Feb 28/29). Used when duplicating
// a transaction into an adjacent period.
func AdjustDateForCopy(date time.Time, monthDelta int) time.Time {
	year := date.Year()
	month := int(date.Month()) + monthDelta
	for month < 1 {
		month += 12
		year--
	}
	for month > 12 {
		month -= 12
		year++
	}

	day := date.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, date.Location())
}

func daysInMonth(year, month int) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC).Day()
}
