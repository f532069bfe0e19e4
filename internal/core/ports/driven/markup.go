package driven

// Markup renders the highlight wrappers placed around annotated text.
// Implementations must be safe for concurrent use.
type Markup interface {
	// Name returns the markup format name.
	Name() string

	// Grammar wraps a matched span with a tooltip holding the suggestion.
	Grammar(match, suggestion string) string

	// AISentence wraps a sentence with a tooltip holding its AI score.
	AISentence(sentence string, score float64) string

	// Escape neutralises document text before it is embedded in markup.
	// Only safe mode calls it.
	Escape(s string) string
}
