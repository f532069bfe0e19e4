// Package grammar overlays pattern-matched grammar and style findings onto
// text.
//
// Findings are applied in list order and every pattern runs against the
// output of the previous one, not against the original text. A later pattern
// can therefore match inside wrappers inserted by an earlier finding,
// including its tooltip. Safe mode matches against the original text only
// and renders each region once.
package grammar

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
	"github.com/sagar50802/law-network-client-sub002/internal/logger"
	"github.com/sagar50802/law-network-client-sub002/internal/markup/html"
)

// Ensure Annotator implements the interface.
var _ driven.Annotator = (*Annotator)(nil)

// Annotator marks up grammar findings.
// It holds no per-call state and is safe for concurrent use.
type Annotator struct {
	markup   driven.Markup
	safeMode bool
	escape   bool
}

// Option configures the grammar annotator.
type Option func(*Annotator)

// WithMarkup sets the wrapper renderer. Nil is ignored.
func WithMarkup(m driven.Markup) Option {
	return func(a *Annotator) {
		if m != nil {
			a.markup = m
		}
	}
}

// WithSafeMode enables span-based matching against the original text.
// It also turns escaping on or off; a later WithEscape overrides that.
func WithSafeMode(on bool) Option {
	return func(a *Annotator) {
		a.safeMode = on
		a.escape = on
	}
}

// WithEscape controls whether safe mode escapes text it did not produce.
// Only the first annotator of a pipeline should escape; later ones see
// text that is already escaped and wrapped.
func WithEscape(on bool) Option {
	return func(a *Annotator) {
		a.escape = on
	}
}

// New creates a grammar annotator. Markup defaults to HTML.
func New(opts ...Option) *Annotator {
	a := &Annotator{
		markup: html.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Annotate marks up text with the default HTML markup.
func Annotate(text string, findings []domain.GrammarFinding) (string, error) {
	return New().Apply(context.Background(), text, findings)
}

// Name returns the annotator name.
func (a *Annotator) Name() string {
	return domain.AnnotatorGrammar
}

// Annotate applies the grammar part of findings.
func (a *Annotator) Annotate(ctx context.Context, text string, findings *domain.Findings) (string, error) {
	if findings == nil {
		return text, nil
	}
	return a.Apply(ctx, text, findings.Grammar)
}

// Apply wraps every case-insensitive match of each finding's pattern.
// Empty findings return text unchanged. An invalid pattern returns a
// *domain.PatternError and no text.
func (a *Annotator) Apply(ctx context.Context, text string, findings []domain.GrammarFinding) (string, error) {
	if len(findings) == 0 {
		return text, nil
	}

	patterns, err := compile(findings)
	if err != nil {
		logger.Debug("grammar: %v", err)
		return "", err
	}

	if a.safeMode {
		logger.Debug("grammar: applying %d findings in safe mode", len(findings))
		return a.applySpans(ctx, text, findings, patterns)
	}

	logger.Debug("grammar: applying %d findings", len(findings))
	for i, re := range patterns {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		suggestion := findings[i].Suggestion
		text = re.ReplaceAllStringFunc(text, func(match string) string {
			return a.markup.Grammar(match, suggestion)
		})
	}
	return text, nil
}

// compile builds one case-insensitive pattern per finding.
// The error value is a pattern, so it is deliberately not quoted.
func compile(findings []domain.GrammarFinding) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, len(findings))
	for i, f := range findings {
		re, err := regexp.Compile("(?i)" + f.Error)
		if err != nil {
			return nil, &domain.PatternError{Index: i, Pattern: f.Error, Err: err}
		}
		patterns[i] = re
	}
	return patterns, nil
}

// span is a matched byte range of the original text.
type span struct {
	start   int
	end     int
	finding int
}

func (s span) overlaps(o span) bool {
	return s.start < o.end && o.start < s.end
}

// applySpans matches every pattern against the original text, resolves
// overlaps and renders once. Later findings claim their spans first so they
// win overlaps, as they would by re-wrapping in the cumulative mode.
// Empty matches are dropped.
func (a *Annotator) applySpans(
	ctx context.Context,
	text string,
	findings []domain.GrammarFinding,
	patterns []*regexp.Regexp,
) (string, error) {
	var claimed []span
	for i := len(patterns) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		for _, loc := range patterns[i].FindAllStringIndex(text, -1) {
			sp := span{start: loc[0], end: loc[1], finding: i}
			if sp.start == sp.end || overlapsAny(sp, claimed) {
				continue
			}
			claimed = append(claimed, sp)
		}
	}

	sort.Slice(claimed, func(i, j int) bool {
		return claimed[i].start < claimed[j].start
	})

	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, sp := range claimed {
		b.WriteString(a.escapeText(text[pos:sp.start]))
		b.WriteString(a.markup.Grammar(
			a.escapeText(text[sp.start:sp.end]),
			a.markup.Escape(findings[sp.finding].Suggestion),
		))
		pos = sp.end
	}
	b.WriteString(a.escapeText(text[pos:]))
	return b.String(), nil
}

// escapeText escapes document text when this annotator owns escaping.
// Suggestions never came from the document, so they are always escaped.
func (a *Annotator) escapeText(s string) string {
	if !a.escape {
		return s
	}
	return a.markup.Escape(s)
}

func overlapsAny(sp span, claimed []span) bool {
	for _, c := range claimed {
		if sp.overlaps(c) {
			return true
		}
	}
	return false
}
