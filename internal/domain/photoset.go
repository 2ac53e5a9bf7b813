package domain

import (
	"sort"
	"time"
)

// Entry is a single file inside the processed directory. HasDate is
// false when the file carries no readable creation timestamp; such
// entries are reported but never drive the date range.
type Entry struct {
	Path    string
	Name    string
	TakenAt time.Time
	HasDate bool
}

// PhotoSet is the ordered file list of one directory, built fresh per
// command invocation. Dated entries come first, ascending by timestamp
// with name as tie breaker; undated entries follow in name order.
type PhotoSet struct {
	entries []Entry
}

func NewPhotoSet(entries []Entry) PhotoSet {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.HasDate != b.HasDate {
			return a.HasDate
		}
		if a.HasDate && !a.TakenAt.Equal(b.TakenAt) {
			return a.TakenAt.Before(b.TakenAt)
		}
		return a.Name < b.Name
	})
	return PhotoSet{entries: sorted}
}

func (p PhotoSet) Entries() []Entry {
	return p.entries
}

// Dated returns the entries with a timestamp, in sorted order.
func (p PhotoSet) Dated() []Entry {
	var out []Entry
	for _, e := range p.entries {
		if e.HasDate {
			out = append(out, e)
		}
	}
	return out
}

// Undated returns the entries that were skipped for lack of a timestamp.
func (p PhotoSet) Undated() []Entry {
	var out []Entry
	for _, e := range p.entries {
		if !e.HasDate {
			out = append(out, e)
		}
	}
	return out
}

// Range returns the date range governing the set. ErrNoDates when every
// entry was skipped.
func (p PhotoSet) Range() (DateRange, error) {
	var dates []Date
	for _, e := range p.entries {
		if e.HasDate {
			dates = append(dates, DateOf(e.TakenAt))
		}
	}
	return RangeFromDates(dates)
}

// DayGroup holds the dated entries of one calendar date.
type DayGroup struct {
	Day     Date
	Entries []Entry
}

// GroupByDay splits the dated entries into per-date groups, preserving
// the set's sorted order within and across groups.
func (p PhotoSet) GroupByDay() []DayGroup {
	var groups []DayGroup
	for _, e := range p.Dated() {
		day := DateOf(e.TakenAt)
		if len(groups) == 0 || groups[len(groups)-1].Day != day {
			groups = append(groups, DayGroup{Day: day})
		}
		last := &groups[len(groups)-1]
		last.Entries = append(last.Entries, e)
	}
	return groups
}
