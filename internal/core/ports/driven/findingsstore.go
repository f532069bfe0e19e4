package driven

import (
	"context"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
)

// FindingsStore caches upstream findings per document.
type FindingsStore interface {
	// Save stores or replaces the findings for a document.
	Save(ctx context.Context, documentID string, findings *domain.Findings) error

	// Get retrieves findings for a document.
	// Returns domain.ErrNotFound if nothing is cached.
	Get(ctx context.Context, documentID string) (*domain.Findings, error)

	// Delete removes cached findings for a document.
	Delete(ctx context.Context, documentID string) error
}
