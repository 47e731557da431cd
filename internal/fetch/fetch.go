// Package fetch resolves command-line source names into readable byte
// streams: "-" for standard input, everything else as a local file path.
package fetch

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ErrIsDirectory reports that a source path names a directory. The caller
// decides how to surface it; counting a directory is never attempted.
var ErrIsDirectory = errors.New("is a directory")

// Stdin is the source name that selects standard input.
const Stdin = "-"

// Open resolves source into an io.ReadCloser. It supports two source kinds:
//   - "-" yields stdin behind a non-closing wrapper, so that closing one
//     source never closes the process's real standard input
//   - everything else is treated as a local file path
//
// Directories yield ErrIsDirectory and missing paths an error satisfying
// errors.Is(err, fs.ErrNotExist); both are wrapped with the source name.
// The caller owns the returned stream and must close it before opening the
// next source.
func Open(source string, stdin io.Reader) (io.ReadCloser, error) {
	if source == Stdin {
		return io.NopCloser(stdin), nil
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("source %q: %w", source, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("source %q: %w", source, ErrIsDirectory)
	}

	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("source %q: %w", source, err)
	}
	return file, nil
}

// NotExist reports whether err wraps fs.ErrNotExist.
func NotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
