package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/sagar50802/law-network-client-sub002/internal/adapters/driven/analysis/file"
	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/normalisers"
)

var (
	annotateFindings   string
	annotateSafe       bool
	annotateFormat     string
	annotateAnnotators []string
	annotateJSON       bool
	annotateRaw        bool
)

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Overlay findings onto a document",
	Long: `Overlay grammar findings and AI-writing detections onto a document.

Findings are read from --findings when given, otherwise they are fetched
from the analysis API (analysis.url) and cached by document content.

The findings file is JSON:
  {
    "grammar": [{"error": "teh", "suggestion": "the"}],
    "ai": {"score": 0.7, "sentences": [{"i": 0, "isAI": true, "score": 0.9}]}
  }

Each grammar "error" is a case-insensitive regular expression.`,
}

var annotateGrammarCmd = &cobra.Command{
	Use:   "grammar [file]",
	Short: "Highlight grammar findings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnnotate(cmd, args[0], []string{domain.AnnotatorGrammar})
	},
}

var annotateAICmd = &cobra.Command{
	Use:   "ai [file]",
	Short: "Wrap sentences flagged as AI-written",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnnotate(cmd, args[0], []string{domain.AnnotatorAI})
	},
}

var annotateRunCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run several annotators in order",
	Long: `Run the configured annotators in order, each over the previous output.
The default order is grammar then ai; override it with --annotators or
the annotate.annotators setting.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnnotate(cmd, args[0], nil)
	},
}

func init() {
	addAnnotateFlags(annotateCmd.PersistentFlags())
	annotateRunCmd.Flags().StringSliceVar(&annotateAnnotators, "annotators", nil,
		"annotators to run in order (e.g. grammar,ai)")

	annotateCmd.AddCommand(annotateGrammarCmd)
	annotateCmd.AddCommand(annotateAICmd)
	annotateCmd.AddCommand(annotateRunCmd)
	rootCmd.AddCommand(annotateCmd)
}

func addAnnotateFlags(fs *pflag.FlagSet) {
	fs.StringVar(&annotateFindings, "findings", "", "JSON findings file (default: query the analysis API)")
	fs.BoolVar(&annotateSafe, "safe", false, "match against the original text only and escape it")
	fs.StringVar(&annotateFormat, "format", "", "markup format: html, terminal or auto")
	fs.BoolVar(&annotateJSON, "json", false, "output the annotation as JSON")
	fs.BoolVar(&annotateRaw, "raw", false, "annotate the file bytes as-is, skipping normalisation")
}

func runAnnotate(cmd *cobra.Command, path string, annotators []string) error {
	annotation, err := annotateFile(cmd, path, annotators)
	if err != nil {
		return err
	}
	return printAnnotation(cmd, annotation)
}

// annotateFile loads path and annotates it. Nil annotators means the
// --annotators flag or the configured default.
func annotateFile(cmd *cobra.Command, path string, annotators []string) (*domain.Annotation, error) {
	if annotationService == nil {
		return nil, errors.New("annotation service not configured")
	}
	if documentLoader == nil && !annotateRaw {
		return nil, errors.New("document loader not configured")
	}

	opts, err := annotateOptions(cmd)
	if err != nil {
		return nil, err
	}
	if annotators != nil {
		opts.Annotators = annotators
	}

	var findings *domain.Findings
	if annotateFindings != "" {
		findings, err = file.Load(annotateFindings)
		if err != nil {
			return nil, err
		}
	}

	doc, err := loadDocument(cmd, path)
	if err != nil {
		return nil, err
	}

	annotation, err := annotationService.Annotate(cmd.Context(), doc, findings, opts)
	if err != nil {
		return nil, fmt.Errorf("annotate %s: %w", path, err)
	}
	return annotation, nil
}

// loadDocument normalises path, or with --raw reads it unchanged.
func loadDocument(cmd *cobra.Command, path string) (*domain.Document, error) {
	if !annotateRaw {
		return documentLoader.LoadFile(cmd.Context(), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	content := string(data)
	return &domain.Document{
		ID:        normalisers.DocumentID(content),
		URI:       path,
		Title:     filepath.Base(path),
		Content:   content,
		Metadata:  map[string]any{"raw": true},
		CreatedAt: time.Now(),
	}, nil
}

// annotateOptions merges settings with flags. Flags win when set.
func annotateOptions(cmd *cobra.Command) (domain.AnnotateOptions, error) {
	settings := domain.DefaultAppSettings()
	if settingsService != nil {
		s, err := settingsService.Get()
		if err != nil {
			return domain.AnnotateOptions{}, fmt.Errorf("failed to get settings: %w", err)
		}
		settings = *s
	}

	opts := domain.AnnotateOptions{
		SafeMode:   settings.Annotate.SafeMode,
		Annotators: settings.Annotate.Annotators,
		Format:     settings.Markup.Format,
	}

	flags := cmd.Flags()
	if flags.Changed("safe") {
		opts.SafeMode = annotateSafe
	}
	if flags.Changed("annotators") {
		opts.Annotators = annotateAnnotators
	}
	if flags.Changed("format") {
		format := domain.MarkupFormat(annotateFormat)
		if !format.IsValid() {
			return domain.AnnotateOptions{}, fmt.Errorf("%w: unknown format %q", domain.ErrInvalidInput, annotateFormat)
		}
		opts.Format = format
	}
	if annotateJSON && opts.Format == domain.MarkupAuto {
		opts.Format = domain.MarkupHTML
	}
	opts.Format = resolveFormat(opts.Format, cmd.OutOrStdout())
	return opts, nil
}

// resolveFormat turns auto into terminal when w is a TTY and html otherwise.
func resolveFormat(format domain.MarkupFormat, w io.Writer) domain.MarkupFormat {
	if format != domain.MarkupAuto && format != "" {
		return format
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return domain.MarkupTerminal
	}
	return domain.MarkupHTML
}

func printAnnotation(cmd *cobra.Command, annotation *domain.Annotation) error {
	if annotateJSON {
		data, err := json.MarshalIndent(annotation, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal annotation: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), annotation.Text)
	return nil
}
