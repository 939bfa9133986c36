// Package ui styles the terminal text printed by gpscan.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorDanger  = lipgloss.Color("#F56565")
	ColorMuted   = lipgloss.Color("#6B7280")
)

// Source is the project home shown in the help banner
const Source = "https://github.com/kojix2/gpscan"

// Styles bound to one output stream. Colors are dropped when the stream is
// not a terminal.
type Styles struct {
	Label   lipgloss.Style
	Program lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles creates styles for text written to w
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Label:   r.NewStyle().Bold(true).Underline(true),
		Program: r.NewStyle().Bold(true).Foreground(ColorPrimary),
		Error:   r.NewStyle().Bold(true).Foreground(ColorDanger),
		Muted:   r.NewStyle().Foreground(ColorMuted),
	}
}

// Banner renders the program description for the help text
func (s Styles) Banner(version string) string {
	return fmt.Sprintf("%s %s (GrandPerspective XML Scan Dump)\nVersion: %s\nSource:  %s",
		s.Label.Render("Program:"),
		s.Program.Render("gpscan"),
		version,
		s.Muted.Render(Source))
}

// PrintError writes "Error: <err>" to w
func (s Styles) PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", s.Error.Render("Error:"), err)
}
