package driving

import (
	"context"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
)

// AnnotationService overlays findings onto documents.
type AnnotationService interface {
	// AnnotateGrammar marks up every case-insensitive match of each finding's
	// pattern, applying findings in list order against the cumulative text.
	// An invalid pattern fails the call with domain.ErrInvalidPattern.
	AnnotateGrammar(ctx context.Context, text string, findings []domain.GrammarFinding, opts domain.AnnotateOptions) (string, error)

	// AnnotateAISentences wraps sentences flagged as AI-written.
	// Missing findings and out-of-range indices pass text through.
	AnnotateAISentences(ctx context.Context, text string, report *domain.AIReport, opts domain.AnnotateOptions) (string, error)

	// Split returns the sentence segmentation AI findings are keyed to.
	Split(text string) []string

	// Analyse returns findings for a document, from cache or upstream.
	Analyse(ctx context.Context, doc *domain.Document) (*domain.Findings, error)

	// Annotate runs the configured annotators over a document.
	// If findings is nil they are obtained through Analyse.
	Annotate(ctx context.Context, doc *domain.Document, findings *domain.Findings, opts domain.AnnotateOptions) (*domain.Annotation, error)
}
