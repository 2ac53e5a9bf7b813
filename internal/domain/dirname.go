package domain

// NameStatus classifies a directory name against the date range of its
// contents.
type NameStatus int

const (
	// StatusMatch means the name carries exactly the canonical range text.
	StatusMatch NameStatus = iota
	// StatusMismatch means the name carries a parsable range that differs
	// from the computed one.
	StatusMismatch
	// StatusUnmanaged means the name has no parsable range prefix.
	StatusUnmanaged
)

func (s NameStatus) String() string {
	switch s {
	case StatusMatch:
		return "match"
	case StatusMismatch:
		return "mismatch"
	case StatusUnmanaged:
		return "unmanaged"
	default:
		return "unknown"
	}
}

// DirectoryName is a directory name split into its optional date-range
// prefix and the free-text suffix.
type DirectoryName struct {
	Raw      string
	Range    DateRange
	HasRange bool
	Suffix   string
}

// SplitName parses a directory name. An unmanaged name keeps the whole
// raw text as its suffix.
func SplitName(name string) DirectoryName {
	r, suffix, ok := ParseNamePrefix(name)
	if !ok {
		return DirectoryName{Raw: name, Suffix: name}
	}
	return DirectoryName{Raw: name, Range: r, HasRange: true, Suffix: suffix}
}

// StatusAgainst compares the name's range prefix with the computed
// range of the directory contents.
func (n DirectoryName) StatusAgainst(computed DateRange) NameStatus {
	if !n.HasRange {
		return StatusUnmanaged
	}
	if n.Range == computed {
		return StatusMatch
	}
	return StatusMismatch
}

// Renamed returns the canonical name for the computed range: the range
// text, a space, and the free-text suffix. Any previous range prefix is
// dropped. A name with no suffix becomes the bare range text.
func (n DirectoryName) Renamed(computed DateRange) string {
	if n.Suffix == "" {
		return computed.String()
	}
	return computed.String() + " " + n.Suffix
}
