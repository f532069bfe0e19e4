package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/normalisers"
)

// AnnotateGrammarInput is the input schema for the annotate_grammar tool.
type AnnotateGrammarInput struct {
	Text     string                  `json:"text" jsonschema:"the text to annotate"`
	Findings []domain.GrammarFinding `json:"findings" jsonschema:"grammar findings; error is a case-insensitive pattern"`
	SafeMode bool                    `json:"safe_mode,omitempty" jsonschema:"match against the original text only and escape it"`
}

// AnnotateAISentencesInput is the input schema for the annotate_ai_sentences tool.
type AnnotateAISentencesInput struct {
	Text     string           `json:"text" jsonschema:"the text to annotate"`
	Report   *domain.AIReport `json:"report,omitempty" jsonschema:"AI detection report with per-sentence flags"`
	SafeMode bool             `json:"safe_mode,omitempty" jsonschema:"escape sentence text before wrapping"`
}

// AnnotateInput is the input schema for the annotate tool.
type AnnotateInput struct {
	Text       string           `json:"text" jsonschema:"the text to annotate"`
	Findings   *domain.Findings `json:"findings,omitempty" jsonschema:"findings to overlay; omitted means run upstream analysis"`
	Annotators []string         `json:"annotators,omitempty" jsonschema:"annotator names in order (default grammar then ai)"`
	SafeMode   bool             `json:"safe_mode,omitempty" jsonschema:"use safe mode"`
}

// SplitSentencesInput is the input schema for the split_sentences tool.
type SplitSentencesInput struct {
	Text string `json:"text" jsonschema:"the text to split"`
}

// AnnotatedOutput is the output schema for the single-annotator tools.
type AnnotatedOutput struct {
	Text string `json:"text"`
}

// AnnotateOutput is the output schema for the annotate tool.
type AnnotateOutput struct {
	DocumentID      string   `json:"document_id"`
	Text            string   `json:"text"`
	Annotators      []string `json:"annotators"`
	GrammarCount    int      `json:"grammar_count"`
	AISentenceCount int      `json:"ai_sentence_count"`
}

// SplitSentencesOutput is the output schema for the split_sentences tool.
type SplitSentencesOutput struct {
	Sentences []string `json:"sentences"`
	Count     int      `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "annotate_grammar",
		Description: "Wrap grammar issues in text with highlight spans whose tooltip holds the suggestion",
	}, s.handleAnnotateGrammar)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "annotate_ai_sentences",
		Description: "Wrap sentences flagged as AI-written with highlight spans carrying their score",
	}, s.handleAnnotateAISentences)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "annotate",
		Description: "Run several annotators over text, fetching findings from the analysis service when none are given",
	}, s.handleAnnotate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "split_sentences",
		Description: "Split text into the sentences AI findings are indexed by",
	}, s.handleSplitSentences)
}

// handleAnnotateGrammar handles the annotate_grammar tool invocation.
func (s *Server) handleAnnotateGrammar(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnnotateGrammarInput,
) (*mcp.CallToolResult, AnnotatedOutput, error) {
	text, err := s.ports.Annotation.AnnotateGrammar(ctx, input.Text, input.Findings, toolOptions(input.SafeMode))
	if err != nil {
		return nil, AnnotatedOutput{}, err
	}
	return nil, AnnotatedOutput{Text: text}, nil
}

// handleAnnotateAISentences handles the annotate_ai_sentences tool invocation.
func (s *Server) handleAnnotateAISentences(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnnotateAISentencesInput,
) (*mcp.CallToolResult, AnnotatedOutput, error) {
	text, err := s.ports.Annotation.AnnotateAISentences(ctx, input.Text, input.Report, toolOptions(input.SafeMode))
	if err != nil {
		return nil, AnnotatedOutput{}, err
	}
	return nil, AnnotatedOutput{Text: text}, nil
}

// handleAnnotate handles the annotate tool invocation.
func (s *Server) handleAnnotate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnnotateInput,
) (*mcp.CallToolResult, AnnotateOutput, error) {
	doc := &domain.Document{
		ID:      normalisers.DocumentID(input.Text),
		URI:     "mcp:text",
		Content: input.Text,
	}

	opts := toolOptions(input.SafeMode)
	opts.Annotators = input.Annotators

	annotation, err := s.ports.Annotation.Annotate(ctx, doc, input.Findings, opts)
	if err != nil {
		return nil, AnnotateOutput{}, err
	}

	return nil, AnnotateOutput{
		DocumentID:      annotation.DocumentID,
		Text:            annotation.Text,
		Annotators:      annotation.Annotators,
		GrammarCount:    annotation.GrammarCount,
		AISentenceCount: annotation.AISentenceCount,
	}, nil
}

// handleSplitSentences handles the split_sentences tool invocation.
func (s *Server) handleSplitSentences(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SplitSentencesInput,
) (*mcp.CallToolResult, SplitSentencesOutput, error) {
	sentences := s.ports.Annotation.Split(input.Text)
	return nil, SplitSentencesOutput{Sentences: sentences, Count: len(sentences)}, nil
}

// toolOptions returns options for tool calls. Tool output is always HTML.
func toolOptions(safeMode bool) domain.AnnotateOptions {
	return domain.AnnotateOptions{
		SafeMode: safeMode,
		Format:   domain.MarkupHTML,
	}
}
