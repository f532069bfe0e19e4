// Package file loads analysis findings from JSON files, for offline use and
// for replaying a previous analysis.
//
// The file shape is:
//
//	{"grammar": [{"error": "...", "suggestion": "..."}],
//	 "ai": {"score": 0.8, "sentences": [{"i": 0, "isAI": true, "score": 0.9}]}}
//
// Either key may be omitted.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
)

// Ensure Source implements the interfaces.
var (
	_ driven.GrammarChecker = (*Source)(nil)
	_ driven.AIDetector     = (*Source)(nil)
)

// Load reads findings from a JSON file.
func Load(path string) (*domain.Findings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open findings: %w", err)
	}
	defer f.Close()

	findings, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return findings, nil
}

// Decode parses findings JSON. Unknown fields are rejected so a typo in a
// hand-written file does not silently drop findings.
func Decode(r io.Reader) (*domain.Findings, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var findings domain.Findings
	if err := dec.Decode(&findings); err != nil {
		return nil, fmt.Errorf("%w: decode findings: %w", domain.ErrInvalidInput, err)
	}
	return &findings, nil
}

// Source serves findings loaded from a file as if they came from the
// analysis service. The text argument is ignored.
type Source struct {
	findings *domain.Findings
}

// NewSource loads path into a Source.
func NewSource(path string) (*Source, error) {
	findings, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Source{findings: findings}, nil
}

// Findings returns the loaded findings.
func (s *Source) Findings() *domain.Findings {
	return s.findings
}

// CheckGrammar returns the file's grammar findings.
func (s *Source) CheckGrammar(ctx context.Context, _ string) ([]domain.GrammarFinding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.findings.Grammar, nil
}

// DetectAI returns the file's AI report, which may be nil.
func (s *Source) DetectAI(ctx context.Context, _ string) (*domain.AIReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.findings.AI, nil
}
