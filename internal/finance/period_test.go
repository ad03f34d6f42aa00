package finance_test

import (
	"testing"
	"time"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/finance"
)

// TestNormalizePeriod tests canonicalization of period-like inputs.
//
// WHY: every monthly view keys off the canonical "YYYY-MM" token; the
// lexicographic ordering guarantees elsewhere only hold if this shape is
// produced consistently.
func TestNormalizePeriod(t *testing.T) {
	t.Run("zero-pads single-digit months", func(t *testing.T) {
		if got := finance.NormalizePeriod("2024-3"); got != "2024-03" {
			t.Errorf("NormalizePeriod(2024-3) = %q; want 2024-03", got)
		}
	})

	t.Run("keeps canonical tokens unchanged", func(t *testing.T) {
		if got := finance.NormalizePeriod("2024-11"); got != "2024-11" {
			t.Errorf("NormalizePeriod(2024-11) = %q; want 2024-11", got)
		}
	})

	t.Run("extracts the period from date strings", func(t *testing.T) {
		if got := finance.NormalizePeriod("2024-03-15"); got != "2024-03" {
			t.Errorf("NormalizePeriod(2024-03-15) = %q; want 2024-03", got)
		}
		if got := finance.NormalizePeriod("2024-03-15T10:30:00Z"); got != "2024-03" {
			t.Errorf("NormalizePeriod(RFC3339) = %q; want 2024-03", got)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		inputs := []string{"2024-3", "2024-12", "2023-01-31", "  2024-7 "}
		for _, input := range inputs {
			once := finance.NormalizePeriod(input)
			twice := finance.NormalizePeriod(once)
			if once != twice {
				t.Errorf("NormalizePeriod not idempotent for %q: %q != %q", input, once, twice)
			}
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		for _, input := range []string{"", "   ", "not-a-period", "2024-13", "2024-0"} {
			if got := finance.NormalizePeriod(input); got != "" {
				t.Errorf("NormalizePeriod(%q) = %q; want empty", input, got)
			}
		}
	})
}

func TestNormalizePeriodValue(t *testing.T) {
	t.Run("resolves time values", func(t *testing.T) {
		date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
		if got := finance.NormalizePeriodValue(date); got != "2024-03" {
			t.Errorf("NormalizePeriodValue(time) = %q; want 2024-03", got)
		}
	})

	t.Run("matches string normalization", func(t *testing.T) {
		date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
		fromString := finance.NormalizePeriod("2024-3")
		fromTime := finance.NormalizePeriodValue(date)
		if fromString != fromTime {
			t.Errorf("string and time paths disagree: %q != %q", fromString, fromTime)
		}
	})

	t.Run("rejects zero times and unsupported types", func(t *testing.T) {
		if got := finance.NormalizePeriodValue(time.Time{}); got != "" {
			t.Errorf("NormalizePeriodValue(zero time) = %q; want empty", got)
		}
		if got := finance.NormalizePeriodValue(42); got != "" {
			t.Errorf("NormalizePeriodValue(int) = %q; want empty", got)
		}
	})
}

// TestPeriodArithmetic tests month stepping with year rollover.
func TestPeriodArithmetic(t *testing.T) {
	t.Run("previous rolls back over January", func(t *testing.T) {
		if got := finance.PreviousPeriod("2024-01"); got != "2023-12" {
			t.Errorf("PreviousPeriod(2024-01) = %q; want 2023-12", got)
		}
		if got := finance.PreviousPeriod("2024-06"); got != "2024-05" {
			t.Errorf("PreviousPeriod(2024-06) = %q; want 2024-05", got)
		}
	})

	t.Run("next rolls forward over December", func(t *testing.T) {
		if got := finance.NextPeriod("2024-12"); got != "2025-01" {
			t.Errorf("NextPeriod(2024-12) = %q; want 2025-01", got)
		}
	})

	t.Run("invalid periods yield empty results", func(t *testing.T) {
		if got := finance.PreviousPeriod("garbage"); got != "" {
			t.Errorf("PreviousPeriod(garbage) = %q; want empty", got)
		}
		if got := finance.NextPeriod(""); got != "" {
			t.Errorf("NextPeriod(empty) = %q; want empty", got)
		}
	})
}

func TestFormatPeriodLabel(t *testing.T) {
	t.Run("formats localized month and year", func(t *testing.T) {
		if got := finance.FormatPeriodLabel("2024-03"); got != "Marzo 2024" {
			t.Errorf("FormatPeriodLabel(2024-03) = %q; want Marzo 2024", got)
		}
		if got := finance.FormatPeriodLabel("2023-12"); got != "Diciembre 2023" {
			t.Errorf("FormatPeriodLabel(2023-12) = %q; want Diciembre 2023", got)
		}
	})

	t.Run("falls back for unknown periods", func(t *testing.T) {
		if got := finance.FormatPeriodLabel("garbage"); got != finance.UnknownPeriodLabel {
			t.Errorf("FormatPeriodLabel(garbage) = %q; want %q", got, finance.UnknownPeriodLabel)
		}
	})
}

// TestSortPeriodsDesc tests the newest-first period ordering.
func TestSortPeriodsDesc(t *testing.T) {
	t.Run("sorts normalized tokens descending", func(t *testing.T) {
		got := finance.SortPeriodsDesc([]string{"2024-1", "2023-12", "2024-03", "2024-2"})
		want := []string{"2024-03", "2024-02", "2024-01", "2023-12"}
		if len(got) != len(want) {
			t.Fatalf("Expected %d periods, got %d: %v", len(want), len(got), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("drops unparseable entries instead of propagating them", func(t *testing.T) {
		got := finance.SortPeriodsDesc([]string{"2024-01", "garbage", ""})
		if len(got) != 1 || got[0] != "2024-01" {
			t.Errorf("Expected [2024-01], got %v", got)
		}
	})

	t.Run("result is non-increasing", func(t *testing.T) {
		got := finance.SortPeriodsDesc([]string{"2022-05", "2024-11", "2023-01", "2024-2"})
		for i := 1; i < len(got); i++ {
			if got[i-1] < got[i] {
				t.Errorf("order violated at %d: %q < %q", i, got[i-1], got[i])
			}
		}
	})
}

// TestAdjustDateForCopy tests whole-month date shifting with month-end
// clamping, used by the copy-to-adjacent-period operation.
func TestAdjustDateForCopy(t *testing.T) {
	t.Run("preserves the day when the target month has it", func(t *testing.T) {
		date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
		got := finance.AdjustDateForCopy(date, -1)
		want := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("AdjustDateForCopy = %v; want %v", got, want)
		}
	})

	t.Run("clamps to month end", func(t *testing.T) {
		date := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
		got := finance.AdjustDateForCopy(date, 1)
		want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("AdjustDateForCopy = %v; want %v (leap February)", got, want)
		}

		date = time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
		got = finance.AdjustDateForCopy(date, 1)
		want = time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("AdjustDateForCopy = %v; want %v", got, want)
		}
	})

	t.Run("rolls the year at boundaries", func(t *testing.T) {
		date := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
		got := finance.AdjustDateForCopy(date, -1)
		want := time.Date(2023, time.December, 10, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("AdjustDateForCopy = %v; want %v", got, want)
		}
	})
}
