package domain

const unknownDescription = "Unknown"

// MarkupFormat selects how highlight wrappers are rendered.
type MarkupFormat string

// Available markup formats.
const (
	// MarkupHTML renders span elements with title tooltips.
	MarkupHTML MarkupFormat = "html"

	// MarkupTerminal renders ANSI-styled highlights with inline hints.
	MarkupTerminal MarkupFormat = "terminal"

	// MarkupAuto picks terminal when stdout is a TTY, html otherwise.
	MarkupAuto MarkupFormat = "auto"
)

// IsValid returns true if the markup format is recognised.
func (f MarkupFormat) IsValid() bool {
	switch f {
	case MarkupHTML, MarkupTerminal, MarkupAuto:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f MarkupFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f MarkupFormat) Description() string {
	switch f {
	case MarkupHTML:
		return "HTML (span wrappers with hover tooltips)"
	case MarkupTerminal:
		return "Terminal (coloured highlights with inline hints)"
	case MarkupAuto:
		return "Auto (terminal on a TTY, otherwise HTML)"
	default:
		return unknownDescription
	}
}

// AllMarkupFormats returns all available markup formats.
func AllMarkupFormats() []MarkupFormat {
	return []MarkupFormat{MarkupHTML, MarkupTerminal, MarkupAuto}
}

// StorageBackend selects where cached findings live.
type StorageBackend string

// Available storage backends.
const (
	StorageMemory StorageBackend = "memory"
	StorageSQLite StorageBackend = "sqlite"
)

// IsValid returns true if the storage backend is recognised.
func (b StorageBackend) IsValid() bool {
	return b == StorageMemory || b == StorageSQLite
}

// AnnotateSettings holds defaults for annotate runs.
type AnnotateSettings struct {
	// SafeMode turns on safe mode unless a flag says otherwise.
	SafeMode bool

	// Annotators is the default annotator order.
	Annotators []string
}

// MarkupSettings holds output rendering settings.
type MarkupSettings struct {
	Format MarkupFormat
}

// AnalysisSettings configures the upstream analysis API.
type AnalysisSettings struct {
	// URL is the API base URL. Empty disables upstream analysis.
	URL string

	// Token is an optional bearer token.
	Token string

	// RatePerSecond and Burst bound client-side request rate.
	RatePerSecond float64
	Burst         int
}

// StorageSettings configures the findings cache.
type StorageSettings struct {
	Backend StorageBackend

	// Dir holds the sqlite database. Empty means ~/.lawnet/data.
	Dir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Annotate AnnotateSettings
	Markup   MarkupSettings
	Analysis AnalysisSettings
	Storage  StorageSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Upstream analysis is left unconfigured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Annotate: AnnotateSettings{
			Annotators: DefaultAnnotators(),
		},
		Markup: MarkupSettings{
			Format: MarkupAuto,
		},
		Analysis: AnalysisSettings{
			RatePerSecond: 2,
			Burst:         4,
		},
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
	}
}
