package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

const (
	TranscriptSuffix = ".txt"
	SummarySuffix    = ".summary.txt"
)

// WriteError names the file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// BaseName strips the extension from the input path, keeping its directory.
func BaseName(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
}

func TranscriptPath(inputPath string) string {
	return BaseName(inputPath) + TranscriptSuffix
}

func SummaryPath(inputPath string) string {
	return BaseName(inputPath) + SummarySuffix
}

// Write replaces path with text. The content goes through a temp file in the
// same directory, so a failed run never leaves a truncated transcript behind.
// Go strings are written as UTF-8 bytes unchanged.
func Write(path, text string) error {
	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	if err := atomic.WriteFile(path, strings.NewReader(text)); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	// New files get the usual 0644 instead of the temp file's 0600.
	if isNew {
		if err := os.Chmod(path, 0o644); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	return nil
}
