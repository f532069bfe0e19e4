// Package memory provides in-memory implementations of driven port
// interfaces. Nothing survives the process; use it for one-shot runs
// and tests.
package memory

import (
	"context"
	"sync"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
)

// Ensure FindingsStore implements the interface.
var _ driven.FindingsStore = (*FindingsStore)(nil)

// FindingsStore is an in-memory implementation of driven.FindingsStore.
// Findings are copied on the way in and out so callers cannot mutate
// cached values.
type FindingsStore struct {
	mu       sync.RWMutex
	findings map[string]domain.Findings
}

// NewFindingsStore creates a new in-memory findings store.
func NewFindingsStore() *FindingsStore {
	return &FindingsStore{
		findings: make(map[string]domain.Findings),
	}
}

// Save stores or replaces the findings for a document.
func (s *FindingsStore) Save(_ context.Context, documentID string, findings *domain.Findings) error {
	if documentID == "" || findings == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findings[documentID] = copyFindings(findings)
	return nil
}

// Get retrieves findings for a document.
func (s *FindingsStore) Get(_ context.Context, documentID string) (*domain.Findings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.findings[documentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := copyFindings(&f)
	return &out, nil
}

// Delete removes cached findings for a document.
func (s *FindingsStore) Delete(_ context.Context, documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.findings, documentID)
	return nil
}

// Len returns the number of cached documents.
func (s *FindingsStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.findings)
}

func copyFindings(f *domain.Findings) domain.Findings {
	out := domain.Findings{}
	if f.Grammar != nil {
		out.Grammar = append([]domain.GrammarFinding(nil), f.Grammar...)
	}
	if f.AI != nil {
		ai := *f.AI
		if f.AI.Sentences != nil {
			ai.Sentences = append([]domain.AISentenceFinding(nil), f.AI.Sentences...)
		}
		out.AI = &ai
	}
	return out
}
