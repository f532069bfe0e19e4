package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyAnnotateSafeMode   = "annotate.safe_mode"
	KeyAnnotateAnnotators = "annotate.annotators"
	KeyMarkupFormat       = "markup.format"
	KeyAnalysisURL        = "analysis.url"
	KeyAnalysisToken      = "analysis.token"
	KeyAnalysisRate       = "analysis.rate_per_second"
	KeyAnalysisBurst      = "analysis.burst"
	KeyStorageBackend     = "storage.backend"
	KeyStorageDir         = "storage.dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	annotators  []string
}

// NewSettingsService creates a new settings service. knownAnnotators, when
// non-empty, restricts the names accepted for annotate.annotators.
func NewSettingsService(configStore driven.ConfigStore, knownAnnotators []string) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		annotators:  knownAnnotators,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Annotate: domain.AnnotateSettings{
			SafeMode:   s.getBool(KeyAnnotateSafeMode, defaults.Annotate.SafeMode),
			Annotators: s.getStringSlice(KeyAnnotateAnnotators, defaults.Annotate.Annotators),
		},
		Markup: domain.MarkupSettings{
			Format: s.getMarkupFormat(defaults.Markup.Format),
		},
		Analysis: domain.AnalysisSettings{
			URL:           s.configStore.GetString(KeyAnalysisURL), // No default - empty disables upstream analysis
			Token:         s.configStore.GetString(KeyAnalysisToken),
			RatePerSecond: s.getFloat(KeyAnalysisRate, defaults.Analysis.RatePerSecond),
			Burst:         s.getInt(KeyAnalysisBurst, defaults.Analysis.Burst),
		},
		Storage: domain.StorageSettings{
			Backend: s.getStorageBackend(defaults.Storage.Backend),
			Dir:     s.configStore.GetString(KeyStorageDir),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyAnnotateSafeMode, settings.Annotate.SafeMode},
		{KeyAnnotateAnnotators, settings.Annotate.Annotators},
		{KeyMarkupFormat, settings.Markup.Format.String()},
		{KeyAnalysisURL, settings.Analysis.URL},
		{KeyAnalysisRate, settings.Analysis.RatePerSecond},
		{KeyAnalysisBurst, settings.Analysis.Burst},
		{KeyStorageBackend, string(settings.Storage.Backend)},
		{KeyStorageDir, settings.Storage.Dir},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	// Only write the token when one is given so a blank form keeps the old one.
	if settings.Analysis.Token != "" {
		if err := s.configStore.Set(KeyAnalysisToken, settings.Analysis.Token); err != nil {
			return fmt.Errorf("save %s: %w", KeyAnalysisToken, err)
		}
	}

	return nil
}

// Keys returns the known setting keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := []string{
		KeyAnnotateSafeMode,
		KeyAnnotateAnnotators,
		KeyMarkupFormat,
		KeyAnalysisURL,
		KeyAnalysisToken,
		KeyAnalysisRate,
		KeyAnalysisBurst,
		KeyStorageBackend,
		KeyStorageDir,
	}
	sort.Strings(keys)
	return keys
}

// Set parses value according to key's type and persists it.
func (s *SettingsService) Set(key, value string) error {
	parsed, err := s.parse(key, strings.TrimSpace(value))
	if err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Value returns the effective value of key, defaults applied.
func (s *SettingsService) Value(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}

	switch key {
	case KeyAnnotateSafeMode:
		return strconv.FormatBool(settings.Annotate.SafeMode), nil
	case KeyAnnotateAnnotators:
		return strings.Join(settings.Annotate.Annotators, ","), nil
	case KeyMarkupFormat:
		return settings.Markup.Format.String(), nil
	case KeyAnalysisURL:
		return settings.Analysis.URL, nil
	case KeyAnalysisToken:
		return maskSecret(settings.Analysis.Token), nil
	case KeyAnalysisRate:
		return strconv.FormatFloat(settings.Analysis.RatePerSecond, 'f', -1, 64), nil
	case KeyAnalysisBurst:
		return strconv.Itoa(settings.Analysis.Burst), nil
	case KeyStorageBackend:
		return string(settings.Storage.Backend), nil
	case KeyStorageDir:
		return settings.Storage.Dir, nil
	default:
		return "", fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// parse converts text into the stored type for key.
func (s *SettingsService) parse(key, value string) (any, error) {
	switch key {
	case KeyAnnotateSafeMode:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return b, nil

	case KeyAnnotateAnnotators:
		names := splitList(value)
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: %s needs at least one annotator", domain.ErrInvalidInput, key)
		}
		for _, name := range names {
			if !s.knownAnnotator(name) {
				return nil, fmt.Errorf("%w: unknown annotator %q", domain.ErrInvalidInput, name)
			}
		}
		return names, nil

	case KeyMarkupFormat:
		format := domain.MarkupFormat(value)
		if !format.IsValid() {
			return nil, fmt.Errorf("%w: invalid markup format: %s", domain.ErrInvalidInput, value)
		}
		return format.String(), nil

	case KeyAnalysisURL, KeyAnalysisToken, KeyStorageDir:
		return value, nil

	case KeyAnalysisRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("%w: %s must be a positive number", domain.ErrInvalidInput, key)
		}
		return f, nil

	case KeyAnalysisBurst:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		return n, nil

	case KeyStorageBackend:
		backend := domain.StorageBackend(value)
		if !backend.IsValid() {
			return nil, fmt.Errorf("%w: invalid storage backend: %s", domain.ErrInvalidInput, value)
		}
		return string(backend), nil

	default:
		return nil, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

func (s *SettingsService) knownAnnotator(name string) bool {
	if len(s.annotators) == 0 {
		return true
	}
	for _, known := range s.annotators {
		if known == name {
			return true
		}
	}
	return false
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getMarkupFormat(defaultVal domain.MarkupFormat) domain.MarkupFormat {
	format := domain.MarkupFormat(s.configStore.GetString(KeyMarkupFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getStorageBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	backend := domain.StorageBackend(s.configStore.GetString(KeyStorageBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// maskSecret hides all but the last four characters.
func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
