package driven

import (
	"context"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
)

// GrammarChecker produces grammar and style findings for a text.
type GrammarChecker interface {
	// CheckGrammar returns findings in the order they should be applied.
	CheckGrammar(ctx context.Context, text string) ([]domain.GrammarFinding, error)
}

// AIDetector produces per-sentence AI-origin flags for a text.
type AIDetector interface {
	// DetectAI returns the report keyed to the text's sentence segmentation.
	DetectAI(ctx context.Context, text string) (*domain.AIReport, error)
}
