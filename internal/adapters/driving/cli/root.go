// Package cli implements the lawnet command line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driving"
	"github.com/sagar50802/law-network-client-sub002/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// verbose enables debug logging for all commands.
var verbose bool

// DocumentLoader turns a file on disk into a normalised document.
type DocumentLoader interface {
	LoadFile(ctx context.Context, path string) (*domain.Document, error)
}

// Services holds the ports the commands run against.
type Services struct {
	Annotation driving.AnnotationService
	Settings   driving.SettingsService
	Loader     DocumentLoader

	// ConfigPath is shown by "config path".
	ConfigPath string
}

var (
	annotationService driving.AnnotationService
	settingsService   driving.SettingsService
	documentLoader    DocumentLoader
	configPath        string
)

var rootCmd = &cobra.Command{
	Use:   "lawnet",
	Short: "Annotate text with grammar and AI-writing findings",
	Long: `lawnet overlays grammar findings and AI-writing detections onto text.

Grammar findings become highlighted spans whose tooltip holds the
suggested fix; sentences flagged as AI-written are wrapped with their
detection score. Findings come from a JSON file or from the analysis API.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}

// SetServices sets the services used by the commands.
func SetServices(s Services) {
	annotationService = s.Annotation
	settingsService = s.Settings
	documentLoader = s.Loader
	configPath = s.ConfigPath
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
