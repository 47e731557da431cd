// Package app contains the driver logic for the wc CLI tool: it walks the
// requested sources in command-line order, runs the counter over each, and
// emits per-source and total lines. CLI concerns stay in cmd/wc.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chriscorrea/wc/internal/classify"
	"github.com/chriscorrea/wc/internal/counter"
	"github.com/chriscorrea/wc/internal/fetch"
	"github.com/chriscorrea/wc/internal/format"
)

// Config holds all configuration options for one wc run.
type Config struct {
	Sources []string        // file paths or "-" for stdin; empty means implicit stdin
	Select  counter.Options // which counters to compute and print
	Classes *classify.Table // byte classification for the active locale
	Locale  string          // locale for digit grouping of printed counts

	// Streams are injectable for tests; nil selects the process defaults.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (cfg *Config) fillDefaults() {
	if cfg.Classes == nil {
		cfg.Classes = classify.ASCII
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
}

// Run executes one wc invocation with the given configuration.
//
// Sources are processed strictly in order, one open at a time. Per-source
// failures (unreadable, missing, directory) are reported to stderr and the
// run continues; the two fatal conditions are a read fault on the sole
// implicit standard input and overflow while accumulating the running
// total. With more than one source argument a final "total" line is
// emitted.
//
// ctx cancellation is honored between sources; a blocking read on standard
// input still blocks until data or end-of-input arrives.
func Run(ctx context.Context, cfg Config) error {
	cfg.fillDefaults()
	printer := format.NewPrinter(cfg.Select, cfg.Locale)

	if len(cfg.Sources) == 0 {
		stats, err := counter.Count(cfg.Stdin, cfg.Select, cfg.Classes)
		if err != nil {
			return fmt.Errorf("failed to process 'stdin': %w", err)
		}
		return printer.WriteCounts(cfg.Stdout, stats, "")
	}

	var total counter.FileStatistics
	for _, source := range cfg.Sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		slog.Debug("processing source", "source", source)

		rc, err := fetch.Open(source, cfg.Stdin)
		if err != nil {
			switch {
			case errors.Is(err, fetch.ErrIsDirectory):
				fmt.Fprintf(cfg.Stderr, "wc: %s: Is a directory.\n", source)
				if werr := printer.WriteCounts(cfg.Stdout, counter.FileStatistics{}, source); werr != nil {
					return werr
				}
			case fetch.NotExist(err):
				fmt.Fprintf(cfg.Stderr, "wc: %s: No such file or directory.\n", source)
			default:
				readErr(cfg.Stderr, source, err)
			}
			continue
		}

		stats, err := counter.Count(rc, cfg.Select, cfg.Classes)
		rc.Close()
		if err != nil {
			readErr(cfg.Stderr, source, err)
			continue
		}

		if err := printer.WriteCounts(cfg.Stdout, stats, source); err != nil {
			return err
		}
		if len(cfg.Sources) > 1 {
			// Overflow aborts the run before any total line is printed.
			if err := total.Accumulate(stats); err != nil {
				return err
			}
		}
	}

	if len(cfg.Sources) > 1 {
		return printer.WriteCounts(cfg.Stdout, total, "total")
	}
	return nil
}

func readErr(w io.Writer, source string, err error) {
	fmt.Fprintf(w, "error: failed to process '%s': %v\n", source, err)
}
