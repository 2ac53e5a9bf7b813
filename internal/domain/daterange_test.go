package domain

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) Date {
	return Date{Year: y, Month: m, Day: d}
}

func TestRangeFromDates(t *testing.T) {
	r, err := RangeFromDates([]Date{
		date(2025, 5, 3),
		date(2025, 5, 1),
		date(2025, 5, 2),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Start != date(2025, 5, 1) || r.End != date(2025, 5, 3) {
		t.Fatalf("unexpected range: %v", r)
	}

	if _, err := RangeFromDates(nil); !errors.Is(err, ErrNoDates) {
		t.Fatalf("expected ErrNoDates, got %v", err)
	}
}

func TestRangeString(t *testing.T) {
	tests := []struct {
		start Date
		end   Date
		want  string
	}{
		{date(2025, 5, 1), date(2025, 5, 1), "2025-05-01"},
		{date(2025, 5, 1), date(2025, 5, 2), "2025-05-01 - 02"},
		{date(2025, 5, 1), date(2025, 6, 2), "2025-05-01 - 06-02"},
		{date(2025, 5, 1), date(2025, 6, 1), "2025-05-01 - 06-01"},
		{date(2025, 5, 1), date(2026, 6, 2), "2025-05-01 - 2026-06-02"},
		{date(2025, 5, 1), date(2026, 5, 1), "2025-05-01 - 2026-05-01"},
		{date(2025, 12, 31), date(2026, 1, 1), "2025-12-31 - 2026-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := DateRange{Start: tt.start, End: tt.end}.String()
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRangeDays(t *testing.T) {
	tests := []struct {
		r    DateRange
		want int
	}{
		{DateRange{date(2025, 5, 1), date(2025, 5, 1)}, 0},
		{DateRange{date(2025, 5, 1), date(2025, 5, 3)}, 2},
		{DateRange{date(2025, 12, 31), date(2026, 1, 1)}, 1},
		{DateRange{date(2025, 2, 28), date(2025, 3, 1)}, 1},
		{DateRange{date(2024, 2, 28), date(2024, 3, 1)}, 2}, // leap year
	}

	for _, tt := range tests {
		if got := tt.r.Days(); got != tt.want {
			t.Errorf("Days(%v) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestParseNamePrefix(t *testing.T) {
	tests := []struct {
		name       string
		wantRange  DateRange
		wantSuffix string
		wantOK     bool
	}{
		{"Some name without any date", DateRange{}, "", false},
		{"06-01 Name start with number", DateRange{}, "", false},
		{"2025-05-01 Some name", DateRange{date(2025, 5, 1), date(2025, 5, 1)}, "Some name", true},
		{"2025-05-01", DateRange{date(2025, 5, 1), date(2025, 5, 1)}, "", true},
		{"2025-05-01 - 03 dir name", DateRange{date(2025, 5, 1), date(2025, 5, 3)}, "dir name", true},
		{"2025-05-01 - 06-01 Some name", DateRange{date(2025, 5, 1), date(2025, 6, 1)}, "Some name", true},
		{"2025-05-01 - 2026-06-01 Some name", DateRange{date(2025, 5, 1), date(2026, 6, 1)}, "Some name", true},
		{"2025-05-01 - 2026-06-01", DateRange{date(2025, 5, 1), date(2026, 6, 1)}, "", true},
		// A dashed tail that is not a date token leaves a single-day range.
		{"2025-05-01 - Name start with separator", DateRange{date(2025, 5, 1), date(2025, 5, 1)}, "- Name start with separator", true},
		// Backwards intervals are not managed names.
		{"2025-05-02 - 2025-05-01 - Interval is not possible", DateRange{}, "", false},
		// No boundary after the date text.
		{"2025-05-012 suffix", DateRange{}, "", false},
		// Not a real calendar date.
		{"2025-13-01 suffix", DateRange{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, suffix, ok := ParseNamePrefix(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if r != tt.wantRange {
				t.Errorf("range = %v, want %v", r, tt.wantRange)
			}
			if suffix != tt.wantSuffix {
				t.Errorf("suffix = %q, want %q", suffix, tt.wantSuffix)
			}
		})
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	sets := [][]Date{
		{date(2025, 5, 1)},
		{date(2025, 5, 1), date(2025, 5, 3)},
		{date(2025, 5, 3), date(2025, 5, 1), date(2025, 5, 2)},
		{date(2025, 5, 1), date(2025, 6, 30)},
		{date(2025, 12, 31), date(2026, 1, 1)},
		{date(2023, 1, 1), date(2026, 12, 31)},
	}

	for _, dates := range sets {
		want, err := RangeFromDates(dates)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, suffix, ok := ParseNamePrefix(want.String() + " suffix")
		if !ok {
			t.Fatalf("canonical form %q did not reparse", want)
		}
		if got != want {
			t.Errorf("round trip: parse(%q) = %v, want %v", want.String(), got, want)
		}
		if suffix != "suffix" {
			t.Errorf("suffix = %q, want %q", suffix, "suffix")
		}
	}
}
