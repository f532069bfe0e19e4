package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagar50802/law-network-client-sub002/internal/adapters/driven/storage/memory"
	"github.com/sagar50802/law-network-client-sub002/internal/annotators"
	"github.com/sagar50802/law-network-client-sub002/internal/annotators/aisentence"
	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
	"github.com/sagar50802/law-network-client-sub002/internal/markup/html"
	"github.com/sagar50802/law-network-client-sub002/internal/markup/terminal"
)

func newTestAnnotationService() *AnnotationService {
	factory := annotators.NewFactory(annotators.NewDefaultRegistry(), map[domain.MarkupFormat]driven.Markup{
		domain.MarkupHTML:     html.New(),
		domain.MarkupTerminal: terminal.New(nil),
	})
	return NewAnnotationService(factory, aisentence.Splitter{})
}

func testDoc(content string) *domain.Document {
	return &domain.Document{ID: "doc-1", URI: "order.txt", Content: content}
}

func TestAnnotationService_AnnotateGrammar(t *testing.T) {
	svc := newTestAnnotationService()

	got, err := svc.AnnotateGrammar(context.Background(), "He recieve it.",
		[]domain.GrammarFinding{{Error: "recieve", Suggestion: "receives"}}, domain.AnnotateOptions{})

	require.NoError(t, err)
	assert.Equal(t, `He <span class="grammar-error" title="receives">recieve</span> it.`, got)
}

func TestAnnotationService_AnnotateGrammar_IgnoresAnnotatorOption(t *testing.T) {
	svc := newTestAnnotationService()

	got, err := svc.AnnotateGrammar(context.Background(), "a b",
		[]domain.GrammarFinding{{Error: "b", Suggestion: "c"}},
		domain.AnnotateOptions{Annotators: []string{"ai"}})

	require.NoError(t, err)
	assert.Contains(t, got, "grammar-error")
}

func TestAnnotationService_AnnotateGrammar_InvalidPattern(t *testing.T) {
	svc := newTestAnnotationService()

	got, err := svc.AnnotateGrammar(context.Background(), "text",
		[]domain.GrammarFinding{{Error: "(", Suggestion: "x"}}, domain.AnnotateOptions{})

	assert.ErrorIs(t, err, domain.ErrInvalidPattern)
	assert.Empty(t, got)
}

func TestAnnotationService_AnnotateAISentences(t *testing.T) {
	svc := newTestAnnotationService()
	report := &domain.AIReport{Score: 0.7, Sentences: []domain.AISentenceFinding{{Index: 1, IsAI: true, Score: 0.9}}}

	got, err := svc.AnnotateAISentences(context.Background(), "One.  Two.", report, domain.AnnotateOptions{})

	require.NoError(t, err)
	assert.Equal(t, `One. <span class="ai-sentence" title="AI score: 0.9">Two.</span>`, got)
}

func TestAnnotationService_AnnotateAISentences_NilReport(t *testing.T) {
	svc := newTestAnnotationService()

	got, err := svc.AnnotateAISentences(context.Background(), "One.  Two.", nil, domain.AnnotateOptions{})

	require.NoError(t, err)
	assert.Equal(t, "One.  Two.", got)
}

func TestAnnotationService_UnknownFormat(t *testing.T) {
	svc := newTestAnnotationService()

	_, err := svc.AnnotateAISentences(context.Background(), "x", nil, domain.AnnotateOptions{Format: "pdf"})

	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestAnnotationService_Split(t *testing.T) {
	svc := newTestAnnotationService()

	assert.Equal(t, []string{"Hi.", "Bye!", ""}, svc.Split("Hi. Bye! "))
}

func TestAnnotationService_Analyse_NoUpstream(t *testing.T) {
	svc := newTestAnnotationService()

	_, err := svc.Analyse(context.Background(), testDoc("x"))

	assert.ErrorIs(t, err, domain.ErrAnalysisUnavailable)
}

func TestAnnotationService_Analyse_NilDocument(t *testing.T) {
	_, err := newTestAnnotationService().Analyse(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnnotationService_Analyse_CallsUpstreamAndCaches(t *testing.T) {
	checker := &mockGrammarChecker{findings: []domain.GrammarFinding{{Error: "teh", Suggestion: "the"}}}
	detector := &mockAIDetector{report: &domain.AIReport{Score: 0.5}}
	store := memory.NewFindingsStore()
	svc := newTestAnnotationService()
	svc.SetGrammarChecker(checker)
	svc.SetAIDetector(detector)
	svc.SetFindingsStore(store)
	ctx := context.Background()

	first, err := svc.Analyse(ctx, testDoc("teh text"))
	require.NoError(t, err)
	second, err := svc.Analyse(ctx, testDoc("teh text"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, checker.calls)
	assert.Equal(t, 1, detector.calls)
	assert.Equal(t, "teh text", checker.lastText)
	assert.Equal(t, 1, store.Len())
}

func TestAnnotationService_Analyse_NoCacheWithoutID(t *testing.T) {
	checker := &mockGrammarChecker{}
	store := memory.NewFindingsStore()
	svc := newTestAnnotationService()
	svc.SetGrammarChecker(checker)
	svc.SetFindingsStore(store)

	doc := &domain.Document{Content: "x"}
	_, err := svc.Analyse(context.Background(), doc)
	require.NoError(t, err)
	_, err = svc.Analyse(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, 2, checker.calls)
	assert.Equal(t, 0, store.Len())
}

func TestAnnotationService_Analyse_OnlyDetector(t *testing.T) {
	svc := newTestAnnotationService()
	svc.SetAIDetector(&mockAIDetector{report: &domain.AIReport{Score: 1}})

	findings, err := svc.Analyse(context.Background(), testDoc("x"))

	require.NoError(t, err)
	assert.Nil(t, findings.Grammar)
	assert.Equal(t, 1.0, findings.AI.Score)
}

func TestAnnotationService_Analyse_UpstreamError(t *testing.T) {
	store := memory.NewFindingsStore()
	svc := newTestAnnotationService()
	svc.SetGrammarChecker(&mockGrammarChecker{})
	svc.SetAIDetector(&mockAIDetector{err: domain.ErrRateLimited})
	svc.SetFindingsStore(store)

	_, err := svc.Analyse(context.Background(), testDoc("x"))

	assert.ErrorIs(t, err, domain.ErrRateLimited)
	assert.Equal(t, 0, store.Len(), "failed analysis must not be cached")
}

func TestAnnotationService_Analyse_BrokenCacheStillAnalyses(t *testing.T) {
	checker := &mockGrammarChecker{findings: []domain.GrammarFinding{{Error: "a", Suggestion: "b"}}}
	svc := newTestAnnotationService()
	svc.SetGrammarChecker(checker)
	svc.SetFindingsStore(&brokenFindingsStore{err: errors.New("disk full")})

	findings, err := svc.Analyse(context.Background(), testDoc("a"))

	require.NoError(t, err)
	assert.Len(t, findings.Grammar, 1)
	assert.Equal(t, 1, checker.calls)
}

func TestAnnotationService_Annotate_WithFindings(t *testing.T) {
	svc := newTestAnnotationService()
	fixed := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	findings := &domain.Findings{
		Grammar: []domain.GrammarFinding{{Error: "wrong", Suggestion: "right"}},
		AI:      &domain.AIReport{Sentences: []domain.AISentenceFinding{{Index: 0, IsAI: true, Score: 1}}},
	}

	got, err := svc.Annotate(context.Background(), testDoc("A wrong turn."), findings, domain.AnnotateOptions{})

	require.NoError(t, err)
	assert.Equal(t,
		`<span class="ai-sentence" title="AI score: 1">A <span class="grammar-error" title="right">wrong</span> turn.</span>`,
		got.Text)
	assert.Equal(t, "doc-1", got.DocumentID)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, []string{"grammar", "ai"}, got.Annotators)
	assert.Equal(t, 1, got.GrammarCount)
	assert.Equal(t, 1, got.AISentenceCount)
	assert.Equal(t, fixed, got.CreatedAt)
	assert.False(t, got.SafeMode)
}

func TestAnnotationService_Annotate_UniqueIDs(t *testing.T) {
	svc := newTestAnnotationService()
	findings := &domain.Findings{}

	a, err := svc.Annotate(context.Background(), testDoc("x"), findings, domain.AnnotateOptions{})
	require.NoError(t, err)
	b, err := svc.Annotate(context.Background(), testDoc("x"), findings, domain.AnnotateOptions{})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestAnnotationService_Annotate_OnlyNamedAnnotatorsCounted(t *testing.T) {
	svc := newTestAnnotationService()
	findings := &domain.Findings{
		Grammar: []domain.GrammarFinding{{Error: "x", Suggestion: "y"}},
		AI:      &domain.AIReport{Sentences: []domain.AISentenceFinding{{Index: 0, IsAI: true}}},
	}

	got, err := svc.Annotate(context.Background(), testDoc("x"), findings,
		domain.AnnotateOptions{Annotators: []string{"ai"}, SafeMode: true})

	require.NoError(t, err)
	assert.Equal(t, 0, got.GrammarCount)
	assert.Equal(t, 1, got.AISentenceCount)
	assert.True(t, got.SafeMode)
}

func TestAnnotationService_Annotate_AnalysesWhenFindingsNil(t *testing.T) {
	checker := &mockGrammarChecker{findings: []domain.GrammarFinding{{Error: "bail", Suggestion: "Bail"}}}
	svc := newTestAnnotationService()
	svc.SetGrammarChecker(checker)

	got, err := svc.Annotate(context.Background(), testDoc("bail granted"), nil,
		domain.AnnotateOptions{Annotators: []string{"grammar"}})

	require.NoError(t, err)
	assert.Equal(t, `<span class="grammar-error" title="Bail">bail</span> granted`, got.Text)
	assert.Equal(t, 1, checker.calls)
}

func TestAnnotationService_Annotate_AnalyseFailure(t *testing.T) {
	svc := newTestAnnotationService()

	_, err := svc.Annotate(context.Background(), testDoc("x"), nil, domain.AnnotateOptions{})

	require.ErrorIs(t, err, domain.ErrAnalysisUnavailable)
	assert.Contains(t, err.Error(), "analyse order.txt")
}

func TestAnnotationService_Annotate_PatternErrorNamesAnnotator(t *testing.T) {
	svc := newTestAnnotationService()
	findings := &domain.Findings{Grammar: []domain.GrammarFinding{{Error: "[", Suggestion: "x"}}}

	got, err := svc.Annotate(context.Background(), testDoc("x"), findings, domain.AnnotateOptions{})

	assert.Nil(t, got)
	require.ErrorIs(t, err, domain.ErrInvalidPattern)
	assert.Contains(t, err.Error(), "annotator grammar")
}

func TestAnnotationService_Annotate_NilDocument(t *testing.T) {
	_, err := newTestAnnotationService().Annotate(context.Background(), nil, &domain.Findings{}, domain.AnnotateOptions{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
