package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/scalarguard/pkg/scalar"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Report prints per-document validation outcomes.
type Report struct {
	out     io.Writer
	profile termenv.Profile
}

// NewReport writes to w, with colour only when w is a terminal.
func NewReport(w io.Writer) *Report {
	return &Report{out: w, profile: profileFor(w)}
}

func profileFor(w io.Writer) termenv.Profile {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return termenv.EnvColorProfile()
	}
	return termenv.Ascii
}

// Document prints the outcome for one named document.
func (r *Report) Document(name string, res scalar.Result, err error) {
	name = sanitize(name)
	switch {
	case errors.Is(err, scalar.ErrConfig):
		mark := r.profile.String("!").Foreground(r.profile.Color("#f59e0b")).Bold()
		fmt.Fprintf(r.out, "%s %s: %s\n", mark, name, sanitize(err.Error()))
	case res.OK():
		mark := r.profile.String("✓").Foreground(r.profile.Color("#22c55e")).Bold()
		fmt.Fprintf(r.out, "%s %s\n", mark, name)
	default:
		mark := r.profile.String("✗").Foreground(r.profile.Color("#ef4444")).Bold()
		fmt.Fprintf(r.out, "%s %s: %d %s\n", mark, name, len(res.Failures), plural(len(res.Failures), "failure"))
		for _, f := range res.Failures {
			key := r.profile.String(sanitize(f.Key.String())).Bold()
			fmt.Fprintf(r.out, "    %s expected %s, %s given\n", key, f.Tag, f.Given)
		}
	}
}

// Markdown renders the outcome for one document as a markdown section.
// Names, keys and error text are sanitized as in Report.Document.
func Markdown(name string, res scalar.Result, err error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", sanitize(name))
	switch {
	case err != nil && errors.Is(err, scalar.ErrConfig):
		fmt.Fprintf(&b, "**Configuration error:** %s\n", sanitize(err.Error()))
	case res.OK():
		b.WriteString("All declared keys match.\n")
	default:
		b.WriteString("| key | expected | given |\n|---|---|---|\n")
		for _, f := range res.Failures {
			fmt.Fprintf(&b, "| `%s` | %s | %s |\n", sanitize(f.Key.Label()), f.Tag, f.Given)
		}
	}
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
