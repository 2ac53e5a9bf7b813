package domain

// StepState tracks a planned mutation through execution. Mutating
// commands build their full plan first; execution then walks the steps
// in order and stops at the first failure, leaving the rest planned.
type StepState int

const (
	StepPlanned StepState = iota
	StepDone
	StepFailed
)

func (s StepState) String() string {
	switch s {
	case StepDone:
		return "done"
	case StepFailed:
		return "failed"
	default:
		return "planned"
	}
}

// DirRenamePlan renames the processed directory to its canonical name.
type DirRenamePlan struct {
	Status  NameStatus
	Range   DateRange
	OldPath string
	NewPath string
}

// NoOp reports whether the directory already carries the canonical name.
func (p DirRenamePlan) NoOp() bool {
	return p.OldPath == p.NewPath
}

// RenameStep renames one file inside the directory.
type RenameStep struct {
	Entry   Entry
	NewName string
	NewPath string
	State   StepState
	Err     error
}

// FileRenamePlan renames the dated files to a zero-padded sequence in
// timestamp order. Undated files are listed as skipped.
type FileRenamePlan struct {
	Base    string
	Steps   []RenameStep
	Skipped []Entry
}

// MoveStep moves one file into its date-stamped subdirectory.
type MoveStep struct {
	Entry     Entry
	TargetDir string
	NewPath   string
	State     StepState
	Err       error
}

// MovePlan redistributes dated files into YYYY-MM-DD subdirectories.
// Dirs lists the subdirectories to create, in group order; undated
// files stay in place and are listed as skipped.
type MovePlan struct {
	Dirs    []string
	Steps   []MoveStep
	Skipped []Entry
}
