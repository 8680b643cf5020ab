// Package ui holds the terminal styling for covenant's output.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, output is plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// Palette: slate and brass, a workshop rather than a spellbook.
var (
	Brass    = lipgloss.Color("#D4A843")
	Steel    = lipgloss.Color("#7FB4CA")
	Moss     = lipgloss.Color("#76B06E")
	Ember    = lipgloss.Color("#E46A5E")
	Rust     = lipgloss.Color("#C4764A")
	Slate    = lipgloss.Color("#8A98A8")
	Graphite = lipgloss.Color("#515C68")
)

var (
	// Title for command headers
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Brass)

	// Success messages
	Success = lipgloss.NewStyle().
		Foreground(Moss)

	// Error messages
	Error = lipgloss.NewStyle().
		Foreground(Ember).
		Bold(true)

	// Warning messages
	Warning = lipgloss.NewStyle().
		Foreground(Rust)

	// Info messages
	Info = lipgloss.NewStyle().
		Foreground(Steel)

	// Muted/secondary text
	Muted = lipgloss.NewStyle().
		Foreground(Slate)

	// Highlight for key names and values
	Highlight = lipgloss.NewStyle().
		Foreground(Brass).
		Bold(true)
)

// Divider returns a horizontal rule.
func Divider(width int) string {
	if !IsTTY {
		return strings.Repeat("-", width)
	}
	return lipgloss.NewStyle().Foreground(Graphite).Render(strings.Repeat("─", width))
}

// ConflictBadge labels a conflict kind.
func ConflictBadge(kind string) string {
	label := "[" + strings.ToUpper(kind) + "]"
	if !IsTTY {
		return label
	}
	return Warning.Render(label)
}
