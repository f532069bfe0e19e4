// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Annotator: Overlays one kind of finding onto text
//   - Markup: Renders highlight wrappers and tooltips
//   - ConfigStore: Application configuration
//   - NormaliserRegistry: Turns files into plain text documents
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - GrammarChecker: Produces grammar findings. Without it, findings must be supplied.
//   - AIDetector: Produces per-sentence AI flags. Without it, findings must be supplied.
//   - FindingsStore: Caches upstream findings per document.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, annotator, or markup package
package driven
