package mcp

import (
	"context"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
)

// mockAnnotationService is a mock implementation of driving.AnnotationService.
type mockAnnotationService struct {
	text       string
	sentences  []string
	annotation *domain.Annotation
	findings   *domain.Findings
	err        error

	lastOpts     domain.AnnotateOptions
	lastDoc      *domain.Document
	lastFindings *domain.Findings
}

func (m *mockAnnotationService) AnnotateGrammar(
	_ context.Context, _ string, findings []domain.GrammarFinding, opts domain.AnnotateOptions,
) (string, error) {
	m.lastOpts = opts
	m.lastFindings = &domain.Findings{Grammar: findings}
	return m.text, m.err
}

func (m *mockAnnotationService) AnnotateAISentences(
	_ context.Context, _ string, report *domain.AIReport, opts domain.AnnotateOptions,
) (string, error) {
	m.lastOpts = opts
	m.lastFindings = &domain.Findings{AI: report}
	return m.text, m.err
}

func (m *mockAnnotationService) Split(_ string) []string {
	return m.sentences
}

func (m *mockAnnotationService) Analyse(_ context.Context, _ *domain.Document) (*domain.Findings, error) {
	return m.findings, m.err
}

func (m *mockAnnotationService) Annotate(
	_ context.Context, doc *domain.Document, findings *domain.Findings, opts domain.AnnotateOptions,
) (*domain.Annotation, error) {
	m.lastDoc = doc
	m.lastFindings = findings
	m.lastOpts = opts
	return m.annotation, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	values map[string]string
	err    error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := domain.DefaultAppSettings()
	return &s, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error {
	return m.err
}

func (m *mockSettingsService) Set(_, _ string) error {
	return m.err
}

func (m *mockSettingsService) Value(key string) (string, error) {
	return m.values[key], m.err
}

func (m *mockSettingsService) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys
}
