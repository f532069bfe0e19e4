package domain

// GrammarFinding is a grammar or style issue matched by pattern.
// Error is a case-insensitive search expression, not a literal string.
type GrammarFinding struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion"`
}

// AISentenceFinding flags one sentence of the document by its 0-based
// index in the sentence segmentation.
type AISentenceFinding struct {
	Index int     `json:"i"`
	IsAI  bool    `json:"isAI"`
	Score float64 `json:"score"`
}

// AIReport is the output of AI-origin detection for a document.
type AIReport struct {
	// Score is the overall likelihood that the document is AI-written.
	Score float64 `json:"score"`

	// Sentences holds per-sentence flags, in no particular order.
	Sentences []AISentenceFinding `json:"sentences"`
}

// IsEmpty reports whether the report carries no sentence findings.
// A nil report is empty.
func (r *AIReport) IsEmpty() bool {
	return r == nil || len(r.Sentences) == 0
}

// Findings bundles everything upstream analysis produced for a document.
type Findings struct {
	Grammar []GrammarFinding `json:"grammar,omitempty"`
	AI      *AIReport        `json:"ai,omitempty"`
}

// IsEmpty reports whether there is nothing to overlay.
func (f *Findings) IsEmpty() bool {
	return f == nil || (len(f.Grammar) == 0 && f.AI.IsEmpty())
}
