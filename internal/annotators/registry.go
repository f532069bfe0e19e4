package annotators

import (
	"fmt"
	"sort"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
)

// BuilderFunc creates an Annotator from generic config.
// Config is a map of annotator-specific settings.
type BuilderFunc func(cfg map[string]any) (driven.Annotator, error)

// Registry maps annotator names to their builders.
// It allows pipelines to be assembled from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new annotator registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds an annotator builder to the registry.
// Name should be unique and match the annotator's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates an annotator by name with the given config.
func (r *Registry) Build(name string, cfg map[string]any) (driven.Annotator, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: annotator %q", domain.ErrUnsupportedType, name)
	}
	return builder(cfg)
}

// BuildPipeline builds the named annotators, in order, into a pipeline.
// Every annotator receives the same config.
func (r *Registry) BuildPipeline(names []string, cfg map[string]any) (*Pipeline, error) {
	p := NewPipeline()
	for _, name := range names {
		a, err := r.Build(name, cfg)
		if err != nil {
			return nil, err
		}
		p.Add(a)
	}
	return p, nil
}

// Has returns true if an annotator with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered annotator names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
