// Package domain defines the core entities of the annotation engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: The immutable plain text being annotated
//   - GrammarFinding: A pattern/suggestion pair from grammar analysis
//   - AIReport: Per-sentence AI-origin flags from AI detection
//   - Annotation: The marked-up result of running annotators over a document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
