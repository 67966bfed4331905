package tui

import (
	"fmt"
	"io"
)

// PrintBanner writes the startup banner used by long-running commands.
func PrintBanner(w io.Writer, version string) {
	p := profileFor(w)
	name := p.String("scalarguard").Bold().Foreground(p.Color("#818cf8"))
	ver := p.String(version).Foreground(p.Color("#c084fc"))
	tag := p.String("scalar type enforcement").Faint()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s\n", name, ver)
	fmt.Fprintf(w, "  %s\n", tag)
	fmt.Fprintln(w)
}
