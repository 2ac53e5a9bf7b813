package app

import (
	"context"
	"errors"
	"io/fs"
	"time"
)

// ErrNoDate is returned by an ExifReader when a file carries no readable
// creation timestamp. It marks the file as skipped rather than failed;
// any other error is a genuine read failure.
var ErrNoDate = errors.New("no creation date in metadata")

type FileSystem interface {
	ListEntries(dir string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldPath, newPath string) error
}

type ExifReader interface {
	DateTimeOriginal(ctx context.Context, path string) (time.Time, error)
}
