package render

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewMarkdown returns a function that renders markdown using glamour.
// It detects the terminal background and picks a matching style.
func NewMarkdown() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// IsTerminal reports whether stdout is attached to a terminal.
// Piped output should stay free of ANSI sequences.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
