// Package html renders annotation wrappers as HTML span elements whose
// title attribute carries the tooltip. This is the default markup and the
// format the rendering layer consumes.
package html

import (
	"html"

	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
	"github.com/sagar50802/law-network-client-sub002/internal/markup"
)

// Ensure Markup implements the interface.
var _ driven.Markup = (*Markup)(nil)

// CSS classes placed on the wrappers.
const (
	GrammarClass    = "grammar-error"
	AISentenceClass = "ai-sentence"
)

// Markup renders span wrappers. Arguments are written verbatim;
// callers escape them first when they need to.
type Markup struct{}

// New creates an HTML markup renderer.
func New() *Markup {
	return &Markup{}
}

// Name returns the markup format name.
func (m *Markup) Name() string {
	return "html"
}

// Grammar wraps match in a grammar-error span titled with the suggestion.
func (m *Markup) Grammar(match, suggestion string) string {
	return `<span class="` + GrammarClass + `" title="` + suggestion + `">` + match + `</span>`
}

// AISentence wraps sentence in an ai-sentence span titled with its score.
func (m *Markup) AISentence(sentence string, score float64) string {
	return `<span class="` + AISentenceClass + `" title="` + markup.ScoreTooltip(score) + `">` + sentence + `</span>`
}

// Escape replaces the HTML metacharacters <, >, &, ' and ".
func (m *Markup) Escape(s string) string {
	return html.EscapeString(s)
}
