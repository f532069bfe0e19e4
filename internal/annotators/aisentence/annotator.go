// Package aisentence overlays per-sentence AI-origin flags onto text.
//
// Text is segmented with a deliberately simple rule: a sentence ends after
// '.', '!' or '?' when whitespace follows. Upstream detectors key their
// findings to sentence indices under exactly this rule, so it must not be
// replaced with a linguistic splitter.
package aisentence

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
	"github.com/sagar50802/law-network-client-sub002/internal/logger"
	"github.com/sagar50802/law-network-client-sub002/internal/markup/html"
)

// Ensure Annotator and Splitter implement the interfaces.
var (
	_ driven.Annotator        = (*Annotator)(nil)
	_ driven.SentenceSplitter = Splitter{}
)

// Separator joins sentences in annotated output. Original inter-sentence
// spacing is not preserved.
const Separator = " "

// Annotator marks up sentences flagged as AI-written.
// It holds no per-call state and is safe for concurrent use.
type Annotator struct {
	markup driven.Markup
	escape bool
}

// Option configures the AI sentence annotator.
type Option func(*Annotator)

// WithMarkup sets the wrapper renderer. Nil is ignored.
func WithMarkup(m driven.Markup) Option {
	return func(a *Annotator) {
		if m != nil {
			a.markup = m
		}
	}
}

// WithSafeMode escapes each sentence before it is wrapped.
// A later WithEscape overrides it.
func WithSafeMode(on bool) Option {
	return func(a *Annotator) {
		a.escape = on
	}
}

// WithEscape controls sentence escaping directly. Pipelines turn it off
// for every annotator but the first so wrappers added earlier survive.
func WithEscape(on bool) Option {
	return func(a *Annotator) {
		a.escape = on
	}
}

// New creates an AI sentence annotator. Markup defaults to HTML.
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
func Annotate(text string, report *domain.AIReport) string {
	return New().Apply(text, report)
}

// Name returns the annotator name.
func (a *Annotator) Name() string {
	return domain.AnnotatorAI
}

// Annotate applies the AI part of findings. It only fails when ctx is done.
func (a *Annotator) Annotate(ctx context.Context, text string, findings *domain.Findings) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if findings == nil {
		return text, nil
	}
	return a.Apply(text, findings.AI), nil
}

// Apply wraps every sentence whose first finding has IsAI set.
// A nil or empty report, or empty text, returns text unchanged.
// Findings with out-of-range indices are ignored.
func (a *Annotator) Apply(text string, report *domain.AIReport) string {
	if report.IsEmpty() || text == "" {
		return text
	}

	// First finding per index wins, as a linear find-first scan would.
	byIndex := make(map[int]domain.AISentenceFinding, len(report.Sentences))
	for _, f := range report.Sentences {
		if _, seen := byIndex[f.Index]; !seen {
			byIndex[f.Index] = f
		}
	}

	sentences := Split(text)
	flagged := 0
	for i, s := range sentences {
		if a.escape {
			s = a.markup.Escape(s)
		}
		if f, ok := byIndex[i]; ok && f.IsAI {
			s = a.markup.AISentence(s, f.Score)
			flagged++
		}
		sentences[i] = s
	}

	logger.Debug("ai: %d sentences, %d findings, %d flagged", len(sentences), len(report.Sentences), flagged)
	return strings.Join(sentences, Separator)
}

// Split segments text into sentences. A boundary follows any '.', '!' or
// '?' that is followed by whitespace; the whole whitespace run is consumed
// and belongs to no sentence. Split always returns at least one element,
// and a trailing boundary yields a final empty sentence.
func Split(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if !isTerminal(r) {
			continue
		}
		end := i
		for i < len(text) {
			next, n := utf8.DecodeRuneInString(text[i:])
			if !isSpace(next) {
				break
			}
			i += n
		}
		if i > end {
			sentences = append(sentences, text[start:end])
			start = i
		}
	}
	return append(sentences, text[start:])
}

// Splitter is Split as a driven.SentenceSplitter.
type Splitter struct{}

// Split calls the package-level Split.
func (Splitter) Split(text string) []string {
	return Split(text)
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// isSpace matches the whitespace class of common regex engines:
// Unicode spaces plus BOM, without NEL.
func isSpace(r rune) bool {
	if r == '\ufeff' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}
