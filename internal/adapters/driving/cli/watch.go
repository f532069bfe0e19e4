package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/sagar50802/law-network-client-sub002/internal/adapters/driving/watch"
	"github.com/sagar50802/law-network-client-sub002/internal/logger"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-annotate a document whenever it changes",
	Long: `Annotate a document, then watch it and annotate it again each time it
is saved. Unchanged content reuses cached findings, so the analysis API
is only queried for new text. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	addAnnotateFlags(watchCmd.Flags())
	watchCmd.Flags().StringSliceVar(&annotateAnnotators, "annotators", nil,
		"annotators to run in order (e.g. grammar,ai)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce,
		"wait this long after the last change before annotating")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	if err := reannotate(cmd, path); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	w := watch.New(path, func(_ context.Context, p string) error {
		return reannotate(cmd, p)
	}, watch.WithDebounce(watchDebounce))

	logger.Info("watching %s", path)
	return w.Run(ctx)
}

// reannotate annotates path and prints the result under a timestamped rule.
func reannotate(cmd *cobra.Command, path string) error {
	annotation, err := annotateFile(cmd, path, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "--- %s %s\n", path, annotation.CreatedAt.Format(time.TimeOnly))
	return printAnnotation(cmd, annotation)
}
