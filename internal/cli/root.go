package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"photodater/internal/app"
	"photodater/internal/config"
	"photodater/internal/domain"
	apperrors "photodater/internal/errors"
	exifinfra "photodater/internal/infra/exif"
	fsinfra "photodater/internal/infra/fs"
	"photodater/internal/logging"
	"photodater/internal/presentation"
)

var (
	cfgFile   string
	directory string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "photodater",
	Short: "Keep photo directories named after the dates of their contents",
	Long: `photodater reads the EXIF creation dates of the photos in a directory,
derives the covering date range, and keeps the directory name, the file
names, and the per-day layout in line with it.

Directory names carry the range as a prefix, in its shortest form:
  2025-05-01 My Photos
  2025-05-01 - 03 My Photos
  2025-05-01 - 06-03 My Photos
  2025-05-01 - 2026-06-03 My Photos

Exit codes: 0 success or matching name, 1 mismatching name or failed
check, 2 directory name carries no date, 3 error.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintln(os.Stderr, apperrors.UserMessage(err))
		return 3
	}
	return 0
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/photodater/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "directory to process")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() {
	config.Init(cfgFile)
	if !rootCmd.PersistentFlags().Changed("verbose") {
		verbose = config.Verbose()
	}
}

// exitError carries a non-zero exit code without an error message; the
// command has already reported its outcome.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

func exitCode(code int) error {
	if code == 0 {
		return nil
	}
	return &exitError{code: code}
}

func newLogger() logging.Logger {
	return logging.New(os.Stderr, verbose)
}

func newPrinter() presentation.Printer {
	return presentation.Printer{Writer: os.Stdout, Verbose: verbose}
}

// resolveDirectory turns the --directory flag into a validated absolute path.
func resolveDirectory() (string, error) {
	dir, err := filepath.Abs(directory)
	if err != nil {
		return "", apperrors.Wrap(apperrors.InvalidConfig, "resolve", directory, err)
	}
	info, err := fsinfra.OSFS{}.Stat(dir)
	if err != nil {
		return "", apperrors.Wrap(apperrors.NotFound, "stat", dir, err)
	}
	if !info.IsDir() {
		return "", apperrors.Wrap(apperrors.InvalidConfig, "stat", dir, errors.New("not a directory"))
	}
	return dir, nil
}

// scanWith builds the PhotoSet of the target directory using the given
// scanner.
func scanWith(ctx context.Context, scanner *app.Scanner) (string, domain.PhotoSet, error) {
	dir, err := resolveDirectory()
	if err != nil {
		return "", domain.PhotoSet{}, err
	}
	set, err := scanner.Scan(ctx, dir)
	if err != nil {
		return "", domain.PhotoSet{}, err
	}
	return dir, set, nil
}

// scanDirectory is scanWith using the OS filesystem and EXIF reader.
func scanDirectory(ctx context.Context) (string, domain.PhotoSet, error) {
	scanner := app.Scanner{
		FS:         fsinfra.OSFS{},
		Exif:       exifinfra.Reader{},
		Logger:     newLogger(),
		Extensions: domain.NewExtensionSet(config.ScanExtensions()),
	}
	return scanWith(ctx, &scanner)
}

// reportNoDates turns the all-files-skipped case into a clean exit with
// an explanation; anything else passes through.
func reportNoDates(err error) error {
	if apperrors.KindOf(err) == apperrors.NoDatedFiles {
		fmt.Fprintln(os.Stderr, apperrors.UserMessage(err))
		return nil
	}
	return err
}
