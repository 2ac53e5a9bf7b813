package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"photodater/internal/domain"
	apperrors "photodater/internal/errors"
	"photodater/internal/logging"
)

// Planner turns a scanned PhotoSet into pure, side-effect-free plans.
// Dry runs print a plan without executing it; live runs execute the
// identical plan.
type Planner struct {
	Logger logging.Logger
}

// rangeOf derives the governing range, mapping an all-skipped set to the
// NoDatedFiles kind.
func (p *Planner) rangeOf(dir string, set domain.PhotoSet) (domain.DateRange, error) {
	r, err := set.Range()
	if err != nil {
		return domain.DateRange{}, apperrors.Wrap(apperrors.NoDatedFiles, "derive range", dir, err)
	}
	return r, nil
}

// DirectoryStatus classifies the directory name against its contents.
func (p *Planner) DirectoryStatus(dir string, set domain.PhotoSet) (domain.NameStatus, domain.DateRange, error) {
	r, err := p.rangeOf(dir, set)
	if err != nil {
		return 0, domain.DateRange{}, err
	}
	name := domain.SplitName(filepath.Base(dir))
	return name.StatusAgainst(r), r, nil
}

// PlanRename computes the canonical directory rename. The plan refuses
// to exist when the content range spans more than maxInterval days.
func (p *Planner) PlanRename(dir string, set domain.PhotoSet, maxInterval int) (domain.DirRenamePlan, error) {
	stop := p.Logger.Measure("Planning rename")
	defer stop()

	r, err := p.rangeOf(dir, set)
	if err != nil {
		return domain.DirRenamePlan{}, err
	}
	if r.Days() > maxInterval {
		return domain.DirRenamePlan{}, apperrors.Wrap(apperrors.RangeTooWide, "rename", dir,
			fmt.Errorf("interval %s spans %d days, more than the allowed %d", r, r.Days(), maxInterval))
	}

	name := domain.SplitName(filepath.Base(dir))
	newName := name.Renamed(r)
	return domain.DirRenamePlan{
		Status:  name.StatusAgainst(r),
		Range:   r,
		OldPath: dir,
		NewPath: filepath.Join(filepath.Dir(dir), newName),
	}, nil
}

// PlanFilesRename renames dated files to "base-NNN.ext" in timestamp
// order. The base falls back to the directory's free-text suffix, the
// sequence width to the digits needed for the file count.
func (p *Planner) PlanFilesRename(dir string, set domain.PhotoSet, baseOverride string) (domain.FileRenamePlan, error) {
	stop := p.Logger.Measure("Planning files rename")
	defer stop()

	if _, err := p.rangeOf(dir, set); err != nil {
		return domain.FileRenamePlan{}, err
	}

	base := baseOverride
	if base == "" {
		base = domain.SplitName(filepath.Base(dir)).Suffix
	}
	if base == "" {
		return domain.FileRenamePlan{}, apperrors.Wrap(apperrors.InvalidConfig, "files-rename", dir,
			errors.New("directory name has no text to use as a base, pass --name"))
	}

	dated := set.Dated()
	width := sequenceWidth(len(dated))

	// Targets are checked against every current name, including names
	// an earlier step would free. That refuses some feasible plans, but
	// keeps execution a plain in-order walk with no dependency on
	// renames that might fail first.
	taken := make(map[string]bool)
	for _, e := range set.Entries() {
		taken[e.Name] = true
	}

	plan := domain.FileRenamePlan{Base: base, Skipped: set.Undated()}
	for i, entry := range dated {
		newName := fmt.Sprintf("%s-%0*d%s", base, width, i+1, filepath.Ext(entry.Name))
		if newName == entry.Name {
			continue
		}
		if taken[newName] {
			return domain.FileRenamePlan{}, apperrors.Wrap(apperrors.IOFailure, "files-rename", filepath.Join(dir, newName),
				fmt.Errorf("target name %q already taken", newName))
		}
		plan.Steps = append(plan.Steps, domain.RenameStep{
			Entry:   entry,
			NewName: newName,
			NewPath: filepath.Join(dir, newName),
		})
	}
	p.Logger.Verbosef("Planned %d file renames (%d skipped)", len(plan.Steps), len(plan.Skipped))
	return plan, nil
}

// PlanMoveByDays groups dated files by calendar date and moves each
// group into a YYYY-MM-DD subdirectory. Undated files stay in place.
func (p *Planner) PlanMoveByDays(dir string, set domain.PhotoSet) (domain.MovePlan, error) {
	stop := p.Logger.Measure("Planning move by days")
	defer stop()

	if _, err := p.rangeOf(dir, set); err != nil {
		return domain.MovePlan{}, err
	}

	plan := domain.MovePlan{Skipped: set.Undated()}
	for _, group := range set.GroupByDay() {
		targetDir := filepath.Join(dir, group.Day.String())
		plan.Dirs = append(plan.Dirs, targetDir)
		for _, entry := range group.Entries {
			plan.Steps = append(plan.Steps, domain.MoveStep{
				Entry:     entry,
				TargetDir: targetDir,
				NewPath:   filepath.Join(targetDir, entry.Name),
			})
		}
	}
	p.Logger.Verbosef("Planned %d moves into %d day directories", len(plan.Steps), len(plan.Dirs))
	return plan, nil
}

func sequenceWidth(count int) int {
	width := 1
	for count >= 10 {
		count /= 10
		width++
	}
	return width
}
