package domain

import "time"

// Annotator names understood by the annotator registry.
const (
	AnnotatorGrammar = "grammar"
	AnnotatorAI      = "ai"
)

// DefaultAnnotators is the order used when none is configured.
func DefaultAnnotators() []string {
	return []string{AnnotatorGrammar, AnnotatorAI}
}

// AnnotateOptions controls a single annotate run.
type AnnotateOptions struct {
	// Annotators lists annotator names in application order.
	// Empty means DefaultAnnotators.
	Annotators []string

	// SafeMode matches against the original text only and escapes
	// document text. It changes output, so it is never the default.
	SafeMode bool

	// Format selects the markup renderer.
	Format MarkupFormat
}

// Annotation is the result of overlaying findings onto a document.
type Annotation struct {
	// ID is unique per run.
	ID string `json:"id"`

	// DocumentID links to the annotated Document.
	DocumentID string `json:"document_id"`

	// Text is the marked-up output.
	Text string `json:"text"`

	// Annotators lists the annotators that ran, in order.
	Annotators []string `json:"annotators"`

	// SafeMode records whether safe mode was used.
	SafeMode bool `json:"safe_mode"`

	// GrammarCount is the number of grammar findings applied.
	GrammarCount int `json:"grammar_count"`

	// AISentenceCount is the number of AI sentence findings supplied.
	AISentenceCount int `json:"ai_sentence_count"`

	// CreatedAt is when the annotation was produced.
	CreatedAt time.Time `json:"created_at"`
}
