// Package annotators provides the annotator pipeline and registry.
// Concrete annotators live in subpackages.
package annotators

import (
	"context"
	"fmt"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface.
var _ driven.AnnotatorPipeline = (*Pipeline)(nil)

// Pipeline chains multiple Annotators and runs them in order.
type Pipeline struct {
	annotators []driven.Annotator
}

// NewPipeline creates a new annotator pipeline.
// Annotators are executed in the order provided.
func NewPipeline(annotators ...driven.Annotator) *Pipeline {
	return &Pipeline{
		annotators: annotators,
	}
}

// Annotate runs text through all annotators in order.
// Each annotator receives the previous one's output. The first error
// aborts the run and no partial text is returned.
func (p *Pipeline) Annotate(ctx context.Context, text string, findings *domain.Findings) (string, error) {
	for _, annotator := range p.annotators {
		var err error
		text, err = annotator.Annotate(ctx, text, findings)
		if err != nil {
			return "", fmt.Errorf("annotator %s: %w", annotator.Name(), err)
		}
	}
	return text, nil
}

// Add appends an annotator to the pipeline.
func (p *Pipeline) Add(annotator driven.Annotator) {
	p.annotators = append(p.annotators, annotator)
}

// Len returns the number of annotators in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.annotators)
}

// Names returns the annotator names in application order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.annotators))
	for i, a := range p.annotators {
		names[i] = a.Name()
	}
	return names
}
