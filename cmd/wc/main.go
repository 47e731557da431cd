package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/wc/internal/app"
	"github.com/chriscorrea/wc/internal/classify"
	"github.com/chriscorrea/wc/internal/counter"
	"github.com/chriscorrea/wc/internal/format"

	"github.com/spf13/cobra"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	// get flag values
	bytesFlag, _ := cmd.Flags().GetBool("bytes")
	linesFlag, _ := cmd.Flags().GetBool("lines")
	wordsFlag, _ := cmd.Flags().GetBool("words")
	maxLineFlag, _ := cmd.Flags().GetBool("max-line-length")

	selection := counter.Options{
		Bytes:         bytesFlag,
		Lines:         linesFlag,
		Words:         wordsFlag,
		MaxLineLength: maxLineFlag,
	}

	// no counting flag given: default action is equivalent to -clw
	if !selection.Any() {
		selection = counter.DefaultOptions
	}

	// resolve the locale once and thread it in explicitly; it drives both
	// digit grouping and the byte classification
	locale := format.Locale()

	// return constructed config
	return app.Config{
		Sources: args,
		Select:  selection,
		Classes: classify.ForLocale(locale),
		Locale:  locale,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "wc [flags] [file]...",
	Short: "Print line, word, and byte counts for each file",
	Long: `wc - word, line, and byte count.

Print line, word, and byte counts for each FILE, and a total line if more
than one FILE is specified. A line is defined as a string of characters
delimited by a <newline> character, and a word is defined as a non-zero-
length sequence of printable characters delimited by white space.

When an option is specified, wc only reports the information requested by
that option. The default action is equivalent to all the flags -clw having
been specified.

When no FILE, or when FILE is -, read standard input.

If more than one input file is specified, a line of cumulative counts for
all the files is displayed on a separate line after the output for the last
file.

By default, the standard output contains a line for each input file of the
form:
    lines    words    bytes    file_name`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// build config from flags and arguments
		config, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		// configure logging pending debug flag
		debug, _ := cmd.Flags().GetBool("debug")
		setupLogger(debug)

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		// run the app!
		return app.Run(ctx, config)
	},
}

func init() {
	// counter selection flags; independent and combinable
	rootCmd.Flags().BoolP("bytes", "c", false, "print the byte counts")
	rootCmd.Flags().BoolP("lines", "l", false, "print the newline counts")
	rootCmd.Flags().BoolP("max-line-length", "L", false, "print the maximum display width")
	rootCmd.Flags().BoolP("words", "w", false, "print the word counts")

	// other flags
	rootCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")

	// point unknown-flag errors at the help text
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\nTry '%s --help' for more information", err, cmd.Name())
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
