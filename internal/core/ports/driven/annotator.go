package driven

import (
	"context"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
)

// Annotator overlays one kind of finding onto text.
// Annotators are chained in a pipeline (e.g., grammar then AI sentences).
type Annotator interface {
	// Name returns the annotator name for logging and configuration.
	Name() string

	// Annotate returns text with the relevant findings marked up.
	// Text is the output of the previous annotator, or the document content
	// for the first one. Annotators must not return partial output on error.
	Annotate(ctx context.Context, text string, findings *domain.Findings) (string, error)
}

// AnnotatorPipeline chains multiple Annotators.
type AnnotatorPipeline interface {
	// Annotate runs the text through all annotators in order.
	Annotate(ctx context.Context, text string, findings *domain.Findings) (string, error)

	// Names returns the annotator names in application order.
	Names() []string
}

// AnnotatorFactory assembles a pipeline for one annotate run.
type AnnotatorFactory interface {
	// Pipeline builds the annotators named in opts, in order, configured
	// for opts.SafeMode and opts.Format. Unknown names fail with
	// domain.ErrUnsupportedType.
	Pipeline(opts domain.AnnotateOptions) (AnnotatorPipeline, error)
}

// SentenceSplitter segments text exactly as AI sentence findings are indexed.
type SentenceSplitter interface {
	Split(text string) []string
}
