package app

import (
	"context"
	"fmt"
	"io/fs"
	"time"
)

type fakeDirEntry struct {
	name string
	dir  bool
}

func (f fakeDirEntry) Name() string               { return f.name }
func (f fakeDirEntry) IsDir() bool                { return f.dir }
func (f fakeDirEntry) Type() fs.FileMode          { return 0 }
func (f fakeDirEntry) Info() (fs.FileInfo, error) { return nil, fs.ErrInvalid }

type renameCall struct {
	oldPath string
	newPath string
}

type mockFS struct {
	entries   []fs.DirEntry
	listErr   error
	renames   []renameCall
	renameErr map[string]error
	mkdirs    []string
	mkdirErr  error
}

func (m *mockFS) ListEntries(dir string) ([]fs.DirEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.entries, nil
}

func (m *mockFS) Stat(path string) (fs.FileInfo, error) { return nil, fs.ErrNotExist }

func (m *mockFS) Exists(path string) (bool, error) { return false, nil }

func (m *mockFS) MkdirAll(path string, perm fs.FileMode) error {
	if m.mkdirErr != nil {
		return m.mkdirErr
	}
	m.mkdirs = append(m.mkdirs, path)
	return nil
}

func (m *mockFS) Rename(oldPath, newPath string) error {
	if err := m.renameErr[oldPath]; err != nil {
		return err
	}
	m.renames = append(m.renames, renameCall{oldPath, newPath})
	return nil
}

// mockExif maps file paths to timestamps. Missing paths report ErrNoDate;
// paths in fail return their error instead.
type mockExif struct {
	dates map[string]time.Time
	fail  map[string]error
}

func (m *mockExif) DateTimeOriginal(ctx context.Context, path string) (time.Time, error) {
	if err := m.fail[path]; err != nil {
		return time.Time{}, err
	}
	if t, ok := m.dates[path]; ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%s: %w", path, ErrNoDate)
}
