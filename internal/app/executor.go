package app

import (
	"context"
	"errors"

	"photodater/internal/domain"
	apperrors "photodater/internal/errors"
)

// Executor applies plans. Steps run in plan order; the first failure
// marks its step, aborts the remaining ones, and surfaces the error.
// Completed steps are never rolled back.
type Executor struct {
	FS         FileSystem
	OnProgress ProgressFunc
}

// ExecuteDirRename applies the directory rename. A no-op plan returns
// without touching the filesystem.
func (e *Executor) ExecuteDirRename(ctx context.Context, plan domain.DirRenamePlan) error {
	if e.FS == nil {
		return errors.New("executor requires FS")
	}
	if plan.NoOp() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.FS.Rename(plan.OldPath, plan.NewPath); err != nil {
		return apperrors.Wrap(apperrors.IOFailure, "rename", plan.OldPath, err)
	}
	return nil
}

// ExecuteFilesRename applies the sequential file renames, recording the
// outcome on each step.
func (e *Executor) ExecuteFilesRename(ctx context.Context, plan *domain.FileRenamePlan) error {
	if e.FS == nil {
		return errors.New("executor requires FS")
	}
	for i := range plan.Steps {
		step := &plan.Steps[i]
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.FS.Rename(step.Entry.Path, step.NewPath); err != nil {
			step.State = domain.StepFailed
			step.Err = err
			return apperrors.Wrap(apperrors.IOFailure, "rename", step.Entry.Path, err)
		}
		step.State = domain.StepDone
		if e.OnProgress != nil {
			e.OnProgress(i+1, len(plan.Steps))
		}
	}
	return nil
}

// ExecuteMove creates the day directories and moves the files,
// recording the outcome on each step.
func (e *Executor) ExecuteMove(ctx context.Context, plan *domain.MovePlan) error {
	if e.FS == nil {
		return errors.New("executor requires FS")
	}
	for _, dir := range plan.Dirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.FS.MkdirAll(dir, 0o755); err != nil {
			return apperrors.Wrap(apperrors.IOFailure, "mkdir", dir, err)
		}
	}
	for i := range plan.Steps {
		step := &plan.Steps[i]
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.FS.Rename(step.Entry.Path, step.NewPath); err != nil {
			step.State = domain.StepFailed
			step.Err = err
			return apperrors.Wrap(apperrors.IOFailure, "move", step.Entry.Path, err)
		}
		step.State = domain.StepDone
		if e.OnProgress != nil {
			e.OnProgress(i+1, len(plan.Steps))
		}
	}
	return nil
}
