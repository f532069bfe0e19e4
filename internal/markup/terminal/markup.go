// Package terminal renders annotation wrappers for a terminal. There is no
// hover in a terminal, so tooltips are printed inline after the highlighted
// span in a muted style.
package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
	"github.com/sagar50802/law-network-client-sub002/internal/markup"
)

// Ensure Markup implements the interface.
var _ driven.Markup = (*Markup)(nil)

// Theme defines the colours used for highlights.
type Theme struct {
	// Grammar is the background behind grammar matches.
	Grammar lipgloss.Color

	// AISentence is the background behind AI-flagged sentences.
	AISentence lipgloss.Color

	// Hint is the foreground of inline tooltips.
	Hint lipgloss.Color
}

// DefaultTheme returns the default highlight colours.
func DefaultTheme() *Theme {
	return &Theme{
		Grammar:    lipgloss.Color("#F38BA8"), // Red
		AISentence: lipgloss.Color("#F9E2AF"), // Yellow
		Hint:       lipgloss.Color("#6C7086"), // Medium gray
	}
}

// Markup renders lipgloss-styled highlights.
type Markup struct {
	grammar lipgloss.Style
	ai      lipgloss.Style
	hint    lipgloss.Style
}

// New creates a terminal markup renderer. A nil theme uses DefaultTheme.
func New(theme *Theme) *Markup {
	if theme == nil {
		theme = DefaultTheme()
	}

	// Tab conversion would change source characters.
	return &Markup{
		grammar: lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(theme.Grammar).
			TabWidth(lipgloss.NoTabConversion),
		ai: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(theme.AISentence).
			TabWidth(lipgloss.NoTabConversion),
		hint: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Hint).
			TabWidth(lipgloss.NoTabConversion),
	}
}

// Name returns the markup format name.
func (m *Markup) Name() string {
	return "terminal"
}

// Grammar highlights match and appends the suggestion in brackets.
func (m *Markup) Grammar(match, suggestion string) string {
	return renderLines(m.grammar, match) + renderLines(m.hint, " ["+suggestion+"]")
}

// AISentence highlights sentence and appends its score in brackets.
func (m *Markup) AISentence(sentence string, score float64) string {
	return renderLines(m.ai, sentence) + renderLines(m.hint, " ["+markup.ScoreTooltip(score)+"]")
}

// Escape strips ANSI escape sequences so document text cannot restyle
// the terminal.
func (m *Markup) Escape(s string) string {
	return ansi.Strip(s)
}

// renderLines styles each line separately. Rendering a multi-line string
// as one block would pad lines to a common width.
func renderLines(style lipgloss.Style, s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
