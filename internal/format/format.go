// Package format renders per-source count lines.
//
// Output follows the System V wc layout: each requested field is printed
// right-aligned in a seven-character minimum width, preceded by two spaces,
// in the fixed order lines, words, bytes, max line length, followed by the
// source name when one applies. Digits are grouped per the active locale;
// the C and POSIX locales group nothing.
package format

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chriscorrea/wc/internal/counter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// fieldWidth is the minimum width of each numeric field.
const fieldWidth = 7

// Locale resolves the effective locale for numeric output from the
// environment, honoring the usual precedence LC_ALL > LC_NUMERIC > LANG.
// An empty result means the C locale.
func Locale() string {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// Printer formats count lines for one fixed Options selection.
type Printer struct {
	opts counter.Options
	msg  *message.Printer // nil for the C locale: plain digits, no grouping
}

// NewPrinter creates a Printer for the given counter selection and locale
// name (e.g. "en_US.UTF-8"). Unparseable and C/POSIX locales fall back to
// ungrouped digits.
func NewPrinter(opts counter.Options, locale string) *Printer {
	return &Printer{opts: opts, msg: messagePrinter(locale)}
}

func messagePrinter(locale string) *message.Printer {
	name := locale
	// Strip the charset and modifier suffixes: "pt_BR.UTF-8@foo" -> "pt_BR".
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "", "C", "POSIX":
		return nil
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return nil
	}
	return message.NewPrinter(tag)
}

func (p *Printer) formatCount(v uint64) string {
	if p.msg == nil {
		return fmt.Sprintf("%*d", fieldWidth, v)
	}
	return fmt.Sprintf("%*s", fieldWidth, p.msg.Sprintf("%d", v))
}

// WriteCounts emits one output line for stats. name is empty for the
// implicit standard-input case, where no source name is printed. The line
// is written in a single call so that concurrently running processes do not
// intersperse partial lines.
func (p *Printer) WriteCounts(w io.Writer, stats counter.FileStatistics, name string) error {
	var line strings.Builder

	if p.opts.Lines {
		line.WriteString("  " + p.formatCount(stats.Lines))
	}
	if p.opts.Words {
		line.WriteString("  " + p.formatCount(stats.Words))
	}
	if p.opts.Bytes {
		line.WriteString("  " + p.formatCount(stats.Bytes))
	}
	if p.opts.MaxLineLength {
		line.WriteString("  " + p.formatCount(stats.MaxLineLength))
	}
	if name != "" {
		line.WriteString("  " + name)
	}
	line.WriteByte('\n')

	_, err := io.WriteString(w, line.String())
	return err
}
