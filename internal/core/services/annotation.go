package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driving"
	"github.com/sagar50802/law-network-client-sub002/internal/logger"
)

// Ensure AnnotationService implements the interface.
var _ driving.AnnotationService = (*AnnotationService)(nil)

// AnnotationService overlays upstream findings onto documents.
type AnnotationService struct {
	factory  driven.AnnotatorFactory
	splitter driven.SentenceSplitter
	checker  driven.GrammarChecker
	detector driven.AIDetector
	store    driven.FindingsStore
	now      func() time.Time
}

// NewAnnotationService creates a new annotation service.
// Upstream analysis and the findings cache are optional and set separately.
func NewAnnotationService(factory driven.AnnotatorFactory, splitter driven.SentenceSplitter) *AnnotationService {
	return &AnnotationService{
		factory:  factory,
		splitter: splitter,
		now:      time.Now,
	}
}

// SetGrammarChecker sets the upstream grammar checker.
func (s *AnnotationService) SetGrammarChecker(checker driven.GrammarChecker) {
	s.checker = checker
}

// SetAIDetector sets the upstream AI detector.
func (s *AnnotationService) SetAIDetector(detector driven.AIDetector) {
	s.detector = detector
}

// SetFindingsStore sets the findings cache.
func (s *AnnotationService) SetFindingsStore(store driven.FindingsStore) {
	s.store = store
}

// AnnotateGrammar runs only the grammar annotator.
func (s *AnnotationService) AnnotateGrammar(
	ctx context.Context, text string, findings []domain.GrammarFinding, opts domain.AnnotateOptions,
) (string, error) {
	opts.Annotators = []string{domain.AnnotatorGrammar}
	return s.run(ctx, text, &domain.Findings{Grammar: findings}, opts)
}

// AnnotateAISentences runs only the AI sentence annotator.
func (s *AnnotationService) AnnotateAISentences(
	ctx context.Context, text string, report *domain.AIReport, opts domain.AnnotateOptions,
) (string, error) {
	opts.Annotators = []string{domain.AnnotatorAI}
	return s.run(ctx, text, &domain.Findings{AI: report}, opts)
}

// Split returns the sentence segmentation AI findings are keyed to.
func (s *AnnotationService) Split(text string) []string {
	return s.splitter.Split(text)
}

// Analyse returns findings for doc. A cached result is used when present;
// otherwise the configured upstream services are called and the result is
// cached. Cache failures are logged and do not fail the call.
func (s *AnnotationService) Analyse(ctx context.Context, doc *domain.Document) (*domain.Findings, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	logger.Section("Analyse")

	if cached := s.cached(ctx, doc.ID); cached != nil {
		logger.Debug("findings cache hit for %s", doc.ID)
		return cached, nil
	}

	if s.checker == nil && s.detector == nil {
		return nil, fmt.Errorf("%w: no analysis service configured", domain.ErrAnalysisUnavailable)
	}

	done := logger.Timed("upstream analysis")
	findings := &domain.Findings{}
	if s.checker != nil {
		grammar, err := s.checker.CheckGrammar(ctx, doc.Content)
		if err != nil {
			return nil, err
		}
		findings.Grammar = grammar
	}
	if s.detector != nil {
		report, err := s.detector.DetectAI(ctx, doc.Content)
		if err != nil {
			return nil, err
		}
		findings.AI = report
	}
	done()

	if s.store != nil && doc.ID != "" {
		if err := s.store.Save(ctx, doc.ID, findings); err != nil {
			logger.Warn("cache findings for %s: %v", doc.ID, err)
		}
	}
	return findings, nil
}

// Annotate runs the annotators named in opts over doc. Nil findings are
// obtained through Analyse.
func (s *AnnotationService) Annotate(
	ctx context.Context, doc *domain.Document, findings *domain.Findings, opts domain.AnnotateOptions,
) (*domain.Annotation, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}

	if findings == nil {
		var err error
		findings, err = s.Analyse(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("analyse %s: %w", doc.URI, err)
		}
	}

	pipeline, err := s.factory.Pipeline(opts)
	if err != nil {
		return nil, err
	}

	logger.Section("Annotate")
	text, err := pipeline.Annotate(ctx, doc.Content, findings)
	if err != nil {
		return nil, err
	}

	annotation := &domain.Annotation{
		ID:         uuid.New().String(),
		DocumentID: doc.ID,
		Text:       text,
		Annotators: pipeline.Names(),
		SafeMode:   opts.SafeMode,
		CreatedAt:  s.now(),
	}
	for _, name := range annotation.Annotators {
		switch name {
		case domain.AnnotatorGrammar:
			annotation.GrammarCount = len(findings.Grammar)
		case domain.AnnotatorAI:
			if findings.AI != nil {
				annotation.AISentenceCount = len(findings.AI.Sentences)
			}
		}
	}
	logger.Info("annotated %s with %v", doc.URI, annotation.Annotators)
	return annotation, nil
}

// run builds a pipeline for opts and applies it to text.
func (s *AnnotationService) run(
	ctx context.Context, text string, findings *domain.Findings, opts domain.AnnotateOptions,
) (string, error) {
	pipeline, err := s.factory.Pipeline(opts)
	if err != nil {
		return "", err
	}
	return pipeline.Annotate(ctx, text, findings)
}

// cached returns stored findings for id, or nil.
func (s *AnnotationService) cached(ctx context.Context, id string) *domain.Findings {
	if s.store == nil || id == "" {
		return nil
	}
	findings, err := s.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("read cached findings for %s: %v", id, err)
		}
		return nil
	}
	return findings
}
