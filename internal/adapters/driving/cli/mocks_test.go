package cli

import (
	"context"
	"errors"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/normalisers"
)

// mockAnnotationService is a mock implementation of driving.AnnotationService.
type mockAnnotationService struct {
	annotation *domain.Annotation
	sentences  []string
	err        error

	calls        int
	lastDoc      *domain.Document
	lastFindings *domain.Findings
	lastOpts     domain.AnnotateOptions
}

func (m *mockAnnotationService) AnnotateGrammar(
	_ context.Context, text string, _ []domain.GrammarFinding, _ domain.AnnotateOptions,
) (string, error) {
	return text, m.err
}

func (m *mockAnnotationService) AnnotateAISentences(
	_ context.Context, text string, _ *domain.AIReport, _ domain.AnnotateOptions,
) (string, error) {
	return text, m.err
}

func (m *mockAnnotationService) Split(_ string) []string {
	return m.sentences
}

func (m *mockAnnotationService) Analyse(_ context.Context, _ *domain.Document) (*domain.Findings, error) {
	return &domain.Findings{}, m.err
}

func (m *mockAnnotationService) Annotate(
	_ context.Context, doc *domain.Document, findings *domain.Findings, opts domain.AnnotateOptions,
) (*domain.Annotation, error) {
	m.calls++
	m.lastDoc = doc
	m.lastFindings = findings
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.annotation != nil {
		return m.annotation, nil
	}
	return &domain.Annotation{
		ID:         "ann-1",
		DocumentID: doc.ID,
		Text:       "annotated:" + doc.Content,
		Annotators: opts.Annotators,
		SafeMode:   opts.SafeMode,
	}, nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
	values   map[string]string
	getErr   error
	setErr   error
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{
		settings: domain.DefaultAppSettings(),
		values: map[string]string{
			"annotate.safe_mode": "false",
			"markup.format":      "auto",
			"analysis.url":       "",
		},
	}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(s *domain.AppSettings) error {
	m.settings = *s
	return m.setErr
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	if _, ok := m.values[key]; !ok {
		return domain.ErrInvalidInput
	}
	m.values[key] = value
	return nil
}

func (m *mockSettingsService) Value(key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", domain.ErrInvalidInput
	}
	return v, nil
}

func (m *mockSettingsService) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fileLoader loads files as plain text documents.
type fileLoader struct{}

func (fileLoader) LoadFile(_ context.Context, path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("empty file")
	}
	content := string(data)
	return &domain.Document{ID: normalisers.DocumentID(content), URI: path, Content: content}, nil
}

// failingLoader fails every load.
type failingLoader struct{}

func (failingLoader) LoadFile(_ context.Context, path string) (*domain.Document, error) {
	return nil, errors.New("loader called for " + path)
}

// setupTestServices installs mock services and returns a cleanup function.
func setupTestServices() (*mockAnnotationService, *mockSettingsService, func()) {
	origAnnotation, origSettings, origLoader, origPath := annotationService, settingsService, documentLoader, configPath

	annotation := &mockAnnotationService{}
	settings := newMockSettingsService()
	SetServices(Services{
		Annotation: annotation,
		Settings:   settings,
		Loader:     fileLoader{},
		ConfigPath: "/tmp/lawnet/config.toml",
	})

	return annotation, settings, func() {
		annotationService, settingsService, documentLoader, configPath = origAnnotation, origSettings, origLoader, origPath
		resetFlags()
	}
}

// resetFlags clears flag values left over from a previous Execute.
func resetFlags() {
	annotateFindings = ""
	annotateSafe = false
	annotateFormat = ""
	annotateAnnotators = nil
	annotateJSON = false
	annotateRaw = false
	splitJSON = false
	versionShort = false
	verbose = false

	var walk func(cmd *cobra.Command)
	walk = func(cmd *cobra.Command) {
		unchange := func(f *pflag.Flag) { f.Changed = false }
		cmd.Flags().VisitAll(unchange)
		cmd.PersistentFlags().VisitAll(unchange)
		for _, c := range cmd.Commands() {
			walk(c)
		}
	}
	walk(rootCmd)
}
