package terminal

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestNew_DefaultTheme(t *testing.T) {
	m := New(nil)
	assert.NotNil(t, m)
	assert.Equal(t, "terminal", m.Name())
}

func TestMarkup_Grammar(t *testing.T) {
	m := New(nil)

	got := ansi.Strip(m.Grammar("foo", "use bar"))

	assert.Equal(t, "foo [use bar]", got)
}

func TestMarkup_AISentence(t *testing.T) {
	m := New(DefaultTheme())

	got := ansi.Strip(m.AISentence("Two!", 0.9))

	assert.Equal(t, "Two! [AI score: 0.9]", got)
}

func TestMarkup_KeepsLineStructure(t *testing.T) {
	m := New(nil)

	got := ansi.Strip(m.AISentence("short\na much longer line", 1))

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "short", lines[0])
	assert.Equal(t, "a much longer line [AI score: 1]", lines[1])
}

func TestMarkup_KeepsTabs(t *testing.T) {
	m := New(nil)

	got := ansi.Strip(m.Grammar("a\tb", "x"))

	assert.Equal(t, "a\tb [x]", got)
}

func TestMarkup_Escape(t *testing.T) {
	m := New(nil)

	assert.Equal(t, "red", m.Escape("\x1b[31mred\x1b[0m"))
	assert.Equal(t, "plain text", m.Escape("plain text"))
}

func TestRenderLines_Empty(t *testing.T) {
	m := New(nil)
	assert.Equal(t, "", renderLines(m.grammar, ""))
}
