package exif

import (
	"context"
	"fmt"
	"os"
	"time"

	goexif "github.com/rwcarlsen/goexif/exif"

	"photodater/internal/app"
)

type Reader struct{}

// DateTimeOriginal reads the creation timestamp from a file's EXIF
// block. A file the decoder cannot handle, or one without a usable
// date tag, yields app.ErrNoDate; only failures to read the file itself
// surface as plain errors.
func (Reader) DateTimeOriginal(ctx context.Context, path string) (time.Time, error) {
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer file.Close()

	x, err := goexif.Decode(file)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", app.ErrNoDate, err)
	}

	if tag, err := x.Get(goexif.DateTimeOriginal); err == nil {
		if str, err := tag.StringVal(); err == nil {
			parsed, err := time.Parse("2006:01:02 15:04:05", str)
			if err == nil {
				return parsed, nil
			}
		}
	}

	if parsed, err := x.DateTime(); err == nil {
		return parsed, nil
	}

	return time.Time{}, app.ErrNoDate
}
