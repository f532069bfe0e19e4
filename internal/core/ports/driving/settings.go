package driving

import "github.com/sagar50802/law-network-client-sub002/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns current settings with defaults filled in.
	Get() (*domain.AppSettings, error)

	// Save persists settings.
	Save(settings *domain.AppSettings) error

	// Set parses value for a known key, validates it and persists it.
	// Unknown keys fail with domain.ErrInvalidInput.
	Set(key, value string) error

	// Value returns the effective value of a known key as text.
	Value(key string) (string, error)

	// Keys returns the known setting keys, sorted.
	Keys() []string
}
