// Command lawnet annotates text with grammar and AI-writing findings.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sagar50802/law-network-client-sub002/internal/adapters/driven/analysis/httpapi"
	"github.com/sagar50802/law-network-client-sub002/internal/adapters/driven/config/file"
	"github.com/sagar50802/law-network-client-sub002/internal/adapters/driven/storage/memory"
	"github.com/sagar50802/law-network-client-sub002/internal/adapters/driven/storage/sqlite"
	"github.com/sagar50802/law-network-client-sub002/internal/adapters/driving/cli"
	"github.com/sagar50802/law-network-client-sub002/internal/annotators"
	"github.com/sagar50802/law-network-client-sub002/internal/annotators/aisentence"
	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
	"github.com/sagar50802/law-network-client-sub002/internal/core/services"
	"github.com/sagar50802/law-network-client-sub002/internal/markup/html"
	"github.com/sagar50802/law-network-client-sub002/internal/markup/terminal"
	"github.com/sagar50802/law-network-client-sub002/internal/normalisers"
)

// version is set via -ldflags "-X main.version=...".
var version = "dev"

// configDirEnv overrides the config directory (default ~/.lawnet).
const configDirEnv = "LAWNET_CONFIG_DIR"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	services, closeFn, err := wire(os.Getenv(configDirEnv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "lawnet: %v\n", err)
		os.Exit(1)
	}

	cli.SetVersion(version)
	cli.SetServices(services)

	err = cli.ExecuteContext(ctx)
	closeFn()
	if err != nil {
		os.Exit(1)
	}
}

// wire builds the services from the config in configDir.
// The returned function releases storage and must always be called.
func wire(configDir string) (cli.Services, func(), error) {
	noop := func() {}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return cli.Services{}, noop, fmt.Errorf("loading config: %w", err)
	}

	registry := annotators.NewDefaultRegistry()
	settingsService := services.NewSettingsService(configStore, registry.Names())
	settings, err := settingsService.Get()
	if err != nil {
		return cli.Services{}, noop, fmt.Errorf("reading settings: %w", err)
	}

	factory := annotators.NewFactory(registry, map[domain.MarkupFormat]driven.Markup{
		domain.MarkupHTML:     html.New(),
		domain.MarkupTerminal: terminal.New(nil),
	})
	annotationService := services.NewAnnotationService(factory, aisentence.Splitter{})

	store, closeStore, err := findingsStore(settings.Storage)
	if err != nil {
		return cli.Services{}, noop, err
	}
	annotationService.SetFindingsStore(store)

	if settings.Analysis.URL != "" {
		client := httpapi.NewClient(httpapi.Config{
			BaseURL:           settings.Analysis.URL,
			Token:             settings.Analysis.Token,
			RequestsPerSecond: settings.Analysis.RatePerSecond,
			Burst:             settings.Analysis.Burst,
		})
		annotationService.SetGrammarChecker(client)
		annotationService.SetAIDetector(client)
	}

	return cli.Services{
		Annotation: annotationService,
		Settings:   settingsService,
		Loader:     normalisers.NewDefaultRegistry(),
		ConfigPath: configStore.Path(),
	}, closeStore, nil
}

// findingsStore opens the configured findings cache.
func findingsStore(cfg domain.StorageSettings) (driven.FindingsStore, func(), error) {
	if cfg.Backend == domain.StorageMemory {
		return memory.NewFindingsStore(), func() {}, nil
	}

	store, err := sqlite.NewStore(cfg.Dir)
	if err != nil {
		return nil, func() {}, fmt.Errorf("opening findings cache: %w", err)
	}
	return store.FindingsStore(), closer(store), nil
}

func closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "lawnet: closing store: %v\n", err)
		}
	}
}
