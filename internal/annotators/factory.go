package annotators

import (
	"fmt"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.AnnotatorFactory = (*Factory)(nil)

// Factory builds pipelines from a Registry, choosing markup by format.
// An empty format uses each annotator's default markup.
type Factory struct {
	registry *Registry
	markups  map[domain.MarkupFormat]driven.Markup
}

// NewFactory creates a factory over registry with the given renderers.
func NewFactory(registry *Registry, markups map[domain.MarkupFormat]driven.Markup) *Factory {
	return &Factory{registry: registry, markups: markups}
}

// Pipeline builds the pipeline for opts. In safe mode only the first
// annotator escapes document text; the ones after it receive escaped text
// carrying earlier wrappers, which must pass through untouched.
func (f *Factory) Pipeline(opts domain.AnnotateOptions) (driven.AnnotatorPipeline, error) {
	names := opts.Annotators
	if len(names) == 0 {
		names = domain.DefaultAnnotators()
	}

	var m driven.Markup
	if opts.Format != "" {
		var ok bool
		m, ok = f.markups[opts.Format]
		if !ok {
			return nil, fmt.Errorf("%w: markup format %q", domain.ErrUnsupportedType, opts.Format)
		}
	}

	p := NewPipeline()
	for i, name := range names {
		cfg := map[string]any{
			ConfigSafeMode: opts.SafeMode,
			ConfigEscape:   opts.SafeMode && i == 0,
		}
		if m != nil {
			cfg[ConfigMarkup] = m
		}
		a, err := f.registry.Build(name, cfg)
		if err != nil {
			return nil, err
		}
		p.Add(a)
	}
	return p, nil
}
