// Package counter implements the single-pass counting core of the wc CLI
// tool.
//
// Count consumes a byte stream in large chunks and accumulates the four
// supported statistics: lines, words, bytes, and maximum display line width.
// Everything beyond the raw byte count is driven by a small per-byte state
// machine tracking the current display column and whether the previous byte
// belonged to a word. Counting is pure: the only effect is reading from the
// supplied source, so results for the same content are always identical.
package counter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/bits"

	"github.com/chriscorrea/wc/internal/classify"
)

// bufferSize is the chunk size for reads from the underlying source. Large
// enough to amortize system-call overhead; has no effect on results.
const bufferSize = 256 * 1024

// tabWidth is the display width of a tab stop.
const tabWidth = 8

// ErrOverflow reports that folding a source's counts into a running total
// would exceed the maximum representable value. Callers must treat this as
// fatal; counts are never silently wrapped.
var ErrOverflow = errors.New("counter overflow")

// Options selects which statistics to compute and display. The flags are
// independent; Options is read-only input to Count once flag parsing is done.
type Options struct {
	Bytes         bool
	Lines         bool
	Words         bool
	MaxLineLength bool
}

// DefaultOptions is the selection used when no counting flag was given,
// equivalent to -clw having been specified.
var DefaultOptions = Options{Bytes: true, Lines: true, Words: true}

// Any reports whether at least one counter is selected.
func (o Options) Any() bool {
	return o.Bytes || o.Lines || o.Words || o.MaxLineLength
}

// classified reports whether the per-byte classification pass is needed.
// A bytes-only run can skip it entirely.
func (o Options) classified() bool {
	return o.Lines || o.Words || o.MaxLineLength
}

// FileStatistics holds the counts for one input source, or the running
// total across sources. Zero-valued until a Count pass fills it in.
type FileStatistics struct {
	Lines         uint64
	Words         uint64
	Bytes         uint64
	MaxLineLength uint64
}

// Count reads source to end-of-input and returns its statistics.
//
// The byte count always reflects the raw stream length. When lines, words,
// or max-line-length is requested, every byte is additionally classified
// using classes. A read failure other than clean end-of-input returns zero
// statistics and the wrapped error.
func Count(source io.Reader, opts Options, classes *classify.Table) (FileStatistics, error) {
	var stats FileStatistics
	buf := make([]byte, bufferSize)

	var column uint64
	inWord := false

	for {
		n, err := source.Read(buf)
		stats.Bytes += uint64(n)

		if opts.classified() {
			for _, c := range buf[:n] {
				switch c {
				case '\n':
					stats.Lines++
					fallthrough
				case '\r', '\f':
					stats.MaxLineLength = max(stats.MaxLineLength, column)
					column = 0
					inWord = false
				case '\t':
					column += tabWidth - column%tabWidth
					inWord = false
				case ' ':
					column++
					fallthrough
				case '\v':
					inWord = false
				default:
					if classes.IsPrint(c) {
						column++
					}
					nonSpace := !classes.IsSpace(c)
					if nonSpace && !inWord {
						stats.Words++
					}
					inWord = nonSpace
				}
			}
		}

		if err != nil {
			if err == io.EOF {
				break
			}
			return FileStatistics{}, fmt.Errorf("reading input: %w", err)
		}
	}

	// A final line without a trailing newline still counts toward the
	// maximum display width.
	stats.MaxLineLength = max(stats.MaxLineLength, column)

	slog.Debug("counted source",
		"lines", stats.Lines,
		"words", stats.Words,
		"bytes", stats.Bytes,
		"maxLineLength", stats.MaxLineLength)
	return stats, nil
}

// Accumulate folds other into s with overflow-checked addition. The maximum
// line length folds by taking the larger value. On overflow s is left
// partially updated and must not be reported.
func (s *FileStatistics) Accumulate(other FileStatistics) error {
	s.MaxLineLength = max(s.MaxLineLength, other.MaxLineLength)

	var err error
	if s.Lines, err = checkedAdd(s.Lines, other.Lines); err != nil {
		return fmt.Errorf("total lines: %w", err)
	}
	if s.Words, err = checkedAdd(s.Words, other.Words); err != nil {
		return fmt.Errorf("total words: %w", err)
	}
	if s.Bytes, err = checkedAdd(s.Bytes, other.Bytes); err != nil {
		return fmt.Errorf("total bytes: %w", err)
	}
	return nil
}

func checkedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}
