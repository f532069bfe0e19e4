package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var splitJSON bool

var splitCmd = &cobra.Command{
	Use:   "split [file]",
	Short: "Show the sentences AI findings are indexed by",
	Long: `Split a document into sentences exactly as the AI annotator does and
print each with its zero-based index. Use it to check which sentence an
AI finding's "i" refers to.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().BoolVar(&splitJSON, "json", false, "output sentences as JSON")
	rootCmd.AddCommand(splitCmd)
}

type splitOutput struct {
	Sentences []string `json:"sentences"`
	Count     int      `json:"count"`
}

func runSplit(cmd *cobra.Command, args []string) error {
	if annotationService == nil {
		return errors.New("annotation service not configured")
	}
	if documentLoader == nil {
		return errors.New("document loader not configured")
	}

	doc, err := documentLoader.LoadFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	sentences := annotationService.Split(doc.Content)
	out := cmd.OutOrStdout()

	if splitJSON {
		if sentences == nil {
			sentences = []string{}
		}
		data, err := json.MarshalIndent(splitOutput{Sentences: sentences, Count: len(sentences)}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal sentences: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(sentences) == 0 {
		fmt.Fprintln(out, "No sentences.")
		return nil
	}
	for i, s := range sentences {
		fmt.Fprintf(out, "[%d] %s\n", i, s)
	}
	return nil
}
