package presentation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"photodater/internal/domain"
)

var errFixture = errors.New("read-only filesystem")

func newTestPrinter() (Printer, *strings.Builder) {
	var buf strings.Builder
	return Printer{Writer: &buf}, &buf
}

func rangeOf(t *testing.T, name string) domain.DateRange {
	t.Helper()
	r, _, ok := domain.ParseNamePrefix(name)
	if !ok {
		t.Fatalf("bad range literal %q", name)
	}
	return r
}

func TestPrintStatus(t *testing.T) {
	computed := rangeOf(t, "2025-05-01 - 03")

	p, buf := newTestPrinter()
	p.PrintStatus("2025-05-01 - 03 Trip", domain.StatusMatch, computed)
	if !strings.Contains(buf.String(), "matches its contents") {
		t.Errorf("match output: %q", buf.String())
	}

	p, buf = newTestPrinter()
	p.PrintStatus("2025-05-01 Trip", domain.StatusMismatch, computed)
	out := buf.String()
	if !strings.Contains(out, "does not match") ||
		!strings.Contains(out, "current:") ||
		!strings.Contains(out, "2025-05-01 - 03") {
		t.Errorf("mismatch output: %q", out)
	}

	p, buf = newTestPrinter()
	p.PrintStatus("Trip", domain.StatusUnmanaged, computed)
	if !strings.Contains(buf.String(), "has no date") {
		t.Errorf("unmanaged output: %q", buf.String())
	}
}

func TestPrintDirRename(t *testing.T) {
	p, buf := newTestPrinter()
	plan := domain.DirRenamePlan{
		Status:  domain.StatusUnmanaged,
		OldPath: "/photos/Trip",
		NewPath: "/photos/2025-05-01 Trip",
	}
	p.PrintDirRename(plan, true)
	out := buf.String()
	if !strings.Contains(out, "/photos/Trip") || !strings.Contains(out, "/photos/2025-05-01 Trip") {
		t.Errorf("rename output: %q", out)
	}
	if !strings.Contains(out, "Dry run") {
		t.Errorf("dry run footer missing: %q", out)
	}

	p, buf = newTestPrinter()
	plan.Status = domain.StatusMatch
	plan.NewPath = plan.OldPath
	p.PrintDirRename(plan, false)
	if !strings.Contains(buf.String(), "already canonical") {
		t.Errorf("no-op output: %q", buf.String())
	}
}

func TestPrintList(t *testing.T) {
	set := domain.NewPhotoSet([]domain.Entry{
		{Name: "a.jpg", TakenAt: time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC), HasDate: true},
		{Name: "b.jpg"},
	})

	p, buf := newTestPrinter()
	p.PrintList(set)
	out := buf.String()
	if !strings.Contains(out, "2025-05-01 10:30:00") {
		t.Errorf("dated line missing timestamp: %q", out)
	}
	if !strings.Contains(out, "no date") {
		t.Errorf("undated line missing marker: %q", out)
	}
}

func TestPrintInterval(t *testing.T) {
	p, buf := newTestPrinter()
	p.PrintInterval(rangeOf(t, "2025-05-01 - 03"))
	if got := buf.String(); !strings.Contains(got, "2025-05-01 - 03 (2 days)") {
		t.Errorf("interval output: %q", got)
	}
}

func TestPrintCheck(t *testing.T) {
	// Start to end is two whole days.
	r := rangeOf(t, "2025-05-01 - 03")

	p, buf := newTestPrinter()
	p.PrintCheck(r, 5, true)
	if !strings.Contains(buf.String(), "OK (2 days within 5)") {
		t.Errorf("ok output: %q", buf.String())
	}

	p, buf = newTestPrinter()
	p.PrintCheck(r, 1, false)
	if !strings.Contains(buf.String(), "spans 2 days, more than 1") {
		t.Errorf("fail output: %q", buf.String())
	}
}

func TestPrintFileRenamePlan(t *testing.T) {
	plan := domain.FileRenamePlan{
		Base: "Trip",
		Steps: []domain.RenameStep{
			{Entry: domain.Entry{Name: "a.jpg"}, NewName: "Trip-1.jpg"},
		},
		Skipped: []domain.Entry{{Name: "notes.txt"}},
	}

	p, buf := newTestPrinter()
	p.PrintFileRenamePlan(plan, true)
	out := buf.String()
	if !strings.Contains(out, "a.jpg") || !strings.Contains(out, "Trip-1.jpg") {
		t.Errorf("step line missing: %q", out)
	}
	if !strings.Contains(out, "notes.txt") || !strings.Contains(out, "skipped, no date") {
		t.Errorf("skipped line missing: %q", out)
	}
	if !strings.Contains(out, "Dry run") {
		t.Errorf("dry run footer missing: %q", out)
	}

	p, buf = newTestPrinter()
	p.PrintFileRenamePlan(domain.FileRenamePlan{}, false)
	if !strings.Contains(buf.String(), "Nothing to rename") {
		t.Errorf("empty plan output: %q", buf.String())
	}
}

func TestPrintMoveOutcome(t *testing.T) {
	plan := domain.MovePlan{Steps: []domain.MoveStep{
		{Entry: domain.Entry{Name: "a.jpg"}, State: domain.StepDone},
		{Entry: domain.Entry{Name: "b.jpg"}, State: domain.StepFailed, Err: errFixture},
		{Entry: domain.Entry{Name: "c.jpg"}},
	}}

	p, buf := newTestPrinter()
	p.PrintMoveOutcome(plan)
	out := buf.String()
	if !strings.Contains(out, "1 done, 1 failed, 1 not attempted") {
		t.Errorf("outcome counts: %q", out)
	}
	if !strings.Contains(out, "b.jpg") || !strings.Contains(out, "read-only") {
		t.Errorf("failed step detail missing: %q", out)
	}

	p, buf = newTestPrinter()
	p.PrintMoveOutcome(domain.MovePlan{Steps: []domain.MoveStep{
		{Entry: domain.Entry{Name: "a.jpg"}, State: domain.StepDone},
	}})
	if got := strings.TrimSpace(buf.String()); got != "1 done" {
		t.Errorf("clean outcome = %q, want %q", got, "1 done")
	}
}
