package presentation

import (
	"fmt"
	"io"

	"photodater/internal/domain"
)

type Printer struct {
	Writer  io.Writer
	Verbose bool
}

func (p Printer) PrintStatus(name string, status domain.NameStatus, computed domain.DateRange) {
	switch status {
	case domain.StatusMatch:
		fmt.Fprintf(p.Writer, "%s Directory name matches its contents (%s)\n",
			successStyle.Render(iconDone), computed)
	case domain.StatusMismatch:
		current := domain.SplitName(name)
		fmt.Fprintf(p.Writer, "%s Directory name does not match its contents\n",
			errorStyle.Render(iconFailed))
		fmt.Fprintf(p.Writer, "  current:  %s\n", dateStyle.Render(current.Range.String()))
		fmt.Fprintf(p.Writer, "  expected: %s\n", dateStyle.Render(computed.String()))
	case domain.StatusUnmanaged:
		fmt.Fprintf(p.Writer, "%s Directory name has no date (contents span %s)\n",
			warningStyle.Render(iconSkipped), computed)
	}
}

func (p Printer) PrintDirRename(plan domain.DirRenamePlan, dryRun bool) {
	if plan.NoOp() {
		fmt.Fprintf(p.Writer, "%s Directory name is already canonical\n", successStyle.Render(iconDone))
		return
	}
	fmt.Fprintf(p.Writer, "Rename %s %s %s\n",
		pathStyle.Render(plan.OldPath), iconArrow, pathStyle.Render(plan.NewPath))
	if dryRun {
		p.printDryRunFooter()
	}
}

func (p Printer) PrintList(set domain.PhotoSet) {
	for _, entry := range set.Entries() {
		if entry.HasDate {
			fmt.Fprintf(p.Writer, "%s  %s\n",
				entry.Name, dateStyle.Render(entry.TakenAt.Format("2006-01-02 15:04:05")))
		} else {
			fmt.Fprintf(p.Writer, "%s  %s\n", entry.Name, dimStyle.Render("no date"))
		}
	}
}

func (p Printer) PrintInterval(r domain.DateRange) {
	fmt.Fprintf(p.Writer, "%s (%d days)\n", dateStyle.Render(r.String()), r.Days())
}

func (p Printer) PrintCheck(r domain.DateRange, maxDays int, ok bool) {
	if ok {
		fmt.Fprintf(p.Writer, "%s OK (%d days within %d)\n", successStyle.Render(iconDone), r.Days(), maxDays)
		return
	}
	fmt.Fprintf(p.Writer, "%s Interval %s spans %d days, more than %d\n",
		errorStyle.Render(iconFailed), r, r.Days(), maxDays)
}

func (p Printer) PrintFileRenamePlan(plan domain.FileRenamePlan, dryRun bool) {
	if len(plan.Steps) == 0 {
		fmt.Fprintln(p.Writer, "Nothing to rename")
	}
	for _, step := range plan.Steps {
		fmt.Fprintf(p.Writer, "%s %s %s %s\n",
			stepIcon(step.State), step.Entry.Name, iconArrow, step.NewName)
	}
	p.printSkipped(plan.Skipped)
	if dryRun {
		p.printDryRunFooter()
	}
}

func (p Printer) PrintMovePlan(plan domain.MovePlan, dryRun bool) {
	if len(plan.Steps) == 0 {
		fmt.Fprintln(p.Writer, "Nothing to move")
	}
	for _, step := range plan.Steps {
		fmt.Fprintf(p.Writer, "%s %s %s %s\n",
			stepIcon(step.State), step.Entry.Name, iconArrow, pathStyle.Render(step.NewPath))
	}
	p.printSkipped(plan.Skipped)
	if dryRun {
		p.printDryRunFooter()
	}
}

// PrintMoveOutcome summarizes execution after a failure or success:
// which steps ran, which failed, which were never attempted.
func (p Printer) PrintMoveOutcome(plan domain.MovePlan) {
	done, failed, planned := 0, 0, 0
	for _, step := range plan.Steps {
		switch step.State {
		case domain.StepDone:
			done++
		case domain.StepFailed:
			failed++
			fmt.Fprintf(p.Writer, "%s %s: %v\n", errorStyle.Render(iconFailed), step.Entry.Name, step.Err)
		default:
			planned++
		}
	}
	p.printOutcomeCounts(done, failed, planned)
}

func (p Printer) PrintFileRenameOutcome(plan domain.FileRenamePlan) {
	done, failed, planned := 0, 0, 0
	for _, step := range plan.Steps {
		switch step.State {
		case domain.StepDone:
			done++
		case domain.StepFailed:
			failed++
			fmt.Fprintf(p.Writer, "%s %s: %v\n", errorStyle.Render(iconFailed), step.Entry.Name, step.Err)
		default:
			planned++
		}
	}
	p.printOutcomeCounts(done, failed, planned)
}

func (p Printer) printOutcomeCounts(done, failed, planned int) {
	line := fmt.Sprintf("%d done", done)
	if failed > 0 || planned > 0 {
		line += fmt.Sprintf(", %d failed, %d not attempted", failed, planned)
	}
	fmt.Fprintln(p.Writer, line)
}

func (p Printer) printSkipped(skipped []domain.Entry) {
	for _, entry := range skipped {
		fmt.Fprintf(p.Writer, "%s %s  %s\n", dimStyle.Render(iconSkipped), entry.Name, dimStyle.Render("skipped, no date"))
	}
}

func (p Printer) printDryRunFooter() {
	fmt.Fprintln(p.Writer, dimStyle.Render("Dry run - nothing was changed"))
}

func stepIcon(state domain.StepState) string {
	switch state {
	case domain.StepDone:
		return successStyle.Render(iconDone)
	case domain.StepFailed:
		return errorStyle.Render(iconFailed)
	default:
		return dimStyle.Render(iconPlanned)
	}
}
