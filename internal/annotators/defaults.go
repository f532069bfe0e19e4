package annotators

import (
	"github.com/sagar50802/law-network-client-sub002/internal/annotators/aisentence"
	"github.com/sagar50802/law-network-client-sub002/internal/annotators/grammar"
	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
)

// Config keys understood by the built-in builders.
const (
	// ConfigSafeMode (bool) enables safe mode.
	ConfigSafeMode = "safe_mode"

	// ConfigMarkup (driven.Markup) selects the wrapper renderer.
	ConfigMarkup = "markup"

	// ConfigEscape (bool) overrides whether safe mode escapes document
	// text. Absent means escape whenever safe mode is on.
	ConfigEscape = "escape"
)

// RegisterDefaults registers all built-in annotators with the registry.
// Call this during application initialisation.
func RegisterDefaults(r *Registry) {
	r.Register(domain.AnnotatorGrammar, buildGrammar)
	r.Register(domain.AnnotatorAI, buildAISentence)
}

// NewDefaultRegistry returns a registry with the built-in annotators.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

func buildGrammar(cfg map[string]any) (driven.Annotator, error) {
	opts := []grammar.Option{
		grammar.WithMarkup(getMarkupFromConfig(cfg)),
		grammar.WithSafeMode(getBoolFromConfig(cfg, ConfigSafeMode)),
	}
	if escape, ok := cfg[ConfigEscape].(bool); ok {
		opts = append(opts, grammar.WithEscape(escape))
	}
	return grammar.New(opts...), nil
}

func buildAISentence(cfg map[string]any) (driven.Annotator, error) {
	opts := []aisentence.Option{
		aisentence.WithMarkup(getMarkupFromConfig(cfg)),
		aisentence.WithSafeMode(getBoolFromConfig(cfg, ConfigSafeMode)),
	}
	if escape, ok := cfg[ConfigEscape].(bool); ok {
		opts = append(opts, aisentence.WithEscape(escape))
	}
	return aisentence.New(opts...), nil
}

// getBoolFromConfig safely extracts a bool from generic config map.
func getBoolFromConfig(cfg map[string]any, key string) bool {
	if cfg == nil {
		return false
	}
	b, ok := cfg[key].(bool)
	return ok && b
}

// getMarkupFromConfig returns the configured markup, or nil for the default.
func getMarkupFromConfig(cfg map[string]any) driven.Markup {
	if cfg == nil {
		return nil
	}
	m, _ := cfg[ConfigMarkup].(driven.Markup)
	return m
}
