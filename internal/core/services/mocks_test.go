package services

import (
	"context"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
)

// mockGrammarChecker implements driven.GrammarChecker for testing.
type mockGrammarChecker struct {
	findings []domain.GrammarFinding
	err      error
	calls    int
	lastText string
}

func (m *mockGrammarChecker) CheckGrammar(_ context.Context, text string) ([]domain.GrammarFinding, error) {
	m.calls++
	m.lastText = text
	if m.err != nil {
		return nil, m.err
	}
	return m.findings, nil
}

// mockAIDetector implements driven.AIDetector for testing.
type mockAIDetector struct {
	report *domain.AIReport
	err    error
	calls  int
}

func (m *mockAIDetector) DetectAI(_ context.Context, _ string) (*domain.AIReport, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

// brokenFindingsStore implements driven.FindingsStore and fails every call.
type brokenFindingsStore struct {
	err error
}

func (b *brokenFindingsStore) Save(_ context.Context, _ string, _ *domain.Findings) error {
	return b.err
}

func (b *brokenFindingsStore) Get(_ context.Context, _ string) (*domain.Findings, error) {
	return nil, b.err
}

func (b *brokenFindingsStore) Delete(_ context.Context, _ string) error {
	return b.err
}
