package app

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"photodater/internal/domain"
	apperrors "photodater/internal/errors"
	"photodater/internal/logging"
)

// ProgressFunc is called while scanning to report progress.
type ProgressFunc func(current, total int)

// Scanner builds a PhotoSet from the direct entries of one directory.
type Scanner struct {
	FS         FileSystem
	Exif       ExifReader
	Logger     logging.Logger
	OnProgress ProgressFunc

	// Extensions limits which files are probed for metadata. Nil means
	// the default photo extensions.
	Extensions domain.ExtensionSet
}

// Scan lists the directory (non-recursive), reads the creation date of
// every photo file, and returns the sorted set. Files without metadata
// become undated entries; a failure to read a file aborts the scan.
func (s *Scanner) Scan(ctx context.Context, dir string) (domain.PhotoSet, error) {
	if s.FS == nil || s.Exif == nil {
		return domain.PhotoSet{}, errors.New("scanner requires FS and Exif")
	}

	stop := s.Logger.Measure("Scanning directory")
	defer stop()

	exts := s.Extensions
	if exts == nil {
		exts = domain.NewExtensionSet(nil)
	}

	listing, err := s.FS.ListEntries(dir)
	if err != nil {
		return domain.PhotoSet{}, apperrors.Wrap(apperrors.IOFailure, "list", dir, err)
	}

	var names []string
	for _, entry := range listing {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	s.Logger.Verbosef("Found %d files in %s", len(names), dir)

	var entries []domain.Entry
	for i, name := range names {
		select {
		case <-ctx.Done():
			return domain.PhotoSet{}, ctx.Err()
		default:
		}

		path := filepath.Join(dir, name)
		entry := domain.Entry{Path: path, Name: name}

		if exts.Contains(filepath.Ext(name)) {
			takenAt, exifErr := s.Exif.DateTimeOriginal(ctx, path)
			switch {
			case exifErr == nil:
				entry.TakenAt = takenAt
				entry.HasDate = true
			case errors.Is(exifErr, ErrNoDate):
				// Skipped, not failed.
			case errors.Is(exifErr, context.Canceled), errors.Is(exifErr, context.DeadlineExceeded):
				return domain.PhotoSet{}, exifErr
			default:
				return domain.PhotoSet{}, apperrors.Wrap(apperrors.ExifFailure, "read metadata", path, exifErr)
			}
		}

		entries = append(entries, entry)
		if s.OnProgress != nil {
			s.OnProgress(i+1, len(names))
		}
	}

	set := domain.NewPhotoSet(entries)
	s.Logger.Verbosef("Collected %d entries (%d without dates)", len(set.Entries()), len(set.Undated()))
	return set, nil
}
