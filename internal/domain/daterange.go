package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// rangeSeparator sits between the start and end dates of a dashed range.
const rangeSeparator = " - "

var ErrNoDates = errors.New("no dates to build a range from")

// DateRange is an inclusive range of calendar dates. A single-day range
// has Start == End.
type DateRange struct {
	Start Date
	End   Date
}

// RangeFromDates builds the tightest range covering all given dates.
func RangeFromDates(dates []Date) (DateRange, error) {
	if len(dates) == 0 {
		return DateRange{}, ErrNoDates
	}
	min, max := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}
	return DateRange{Start: min, End: max}, nil
}

// Days returns the span of the range in whole days. A single-day range
// spans 0 days.
func (r DateRange) Days() int {
	return r.Start.DaysUntil(r.End)
}

// String renders the minimal canonical form: the end date repeats only
// the fields that differ from the start date.
func (r DateRange) String() string {
	start := r.Start.String()
	switch {
	case r.Start == r.End:
		return start
	case r.Start.Year != r.End.Year:
		return start + rangeSeparator + r.End.String()
	case r.Start.Month != r.End.Month:
		return start + rangeSeparator + fmt.Sprintf("%02d-%02d", int(r.End.Month), r.End.Day)
	default:
		return start + rangeSeparator + fmt.Sprintf("%02d", r.End.Day)
	}
}

// ParseNamePrefix extracts a leading canonical date range from a
// directory name. It returns the range, the remaining suffix, and
// whether a range was found. Matching is strict: fixed-width numeric
// fields, '-' separators within a date, the literal " - " between start
// and end, and a space (or end of string) terminating the range text.
func ParseNamePrefix(name string) (DateRange, string, bool) {
	start, ok := parseFullDate(name)
	if !ok {
		return DateRange{}, "", false
	}
	rest := name[fullDateWidth:]
	if rest != "" && rest[0] != ' ' {
		return DateRange{}, "", false
	}

	if strings.HasPrefix(rest, rangeSeparator) {
		tail := rest[len(rangeSeparator):]
		if end, width, matched := parseEndDate(tail, start); matched {
			if start.After(end) {
				// A dated prefix running backwards is nonsense, not a
				// single-day range with a numeric suffix.
				return DateRange{}, "", false
			}
			return DateRange{Start: start, End: end}, trimOneSpace(tail[width:]), true
		}
	}

	return DateRange{Start: start, End: start}, trimOneSpace(rest), true
}

const fullDateWidth = 10 // YYYY-MM-DD

// parseFullDate matches a strict YYYY-MM-DD at the start of s.
func parseFullDate(s string) (Date, bool) {
	if len(s) < fullDateWidth || s[4] != '-' || s[7] != '-' {
		return Date{}, false
	}
	year, ok := parseDigits(s[0:4])
	if !ok {
		return Date{}, false
	}
	return assembleDate(year, s[5:7], s[8:10])
}

// parseEndDate matches the end token of a dashed range, shortest form
// first: DD, then MM-DD, then YYYY-MM-DD. The token must be followed by
// a space or the end of the string and must name a real calendar date.
func parseEndDate(s string, start Date) (Date, int, bool) {
	if bounded(s, 2) && allDigits(s[0:2]) {
		d, ok := assembleDate(start.Year, fmt.Sprintf("%02d", int(start.Month)), s[0:2])
		return d, 2, ok
	}
	if bounded(s, 5) && allDigits(s[0:2]) && s[2] == '-' && allDigits(s[3:5]) {
		d, ok := assembleDate(start.Year, s[0:2], s[3:5])
		return d, 5, ok
	}
	if bounded(s, fullDateWidth) {
		if d, ok := parseFullDate(s); ok {
			return d, fullDateWidth, true
		}
	}
	return Date{}, 0, false
}

// bounded reports whether s holds exactly width token characters before
// a space or the end of the string.
func bounded(s string, width int) bool {
	return len(s) == width || (len(s) > width && s[width] == ' ')
}

func assembleDate(year int, month, day string) (Date, bool) {
	m, okM := parseDigits(month)
	d, okD := parseDigits(day)
	if !okM || !okD {
		return Date{}, false
	}
	date := Date{Year: year, Month: time.Month(m), Day: d}
	return date, date.valid()
}

func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

func allDigits(s string) bool {
	_, ok := parseDigits(s)
	return ok
}

func trimOneSpace(s string) string {
	return strings.TrimPrefix(s, " ")
}
