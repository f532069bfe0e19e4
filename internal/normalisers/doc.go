// Package normalisers provides implementations of the Normaliser interface
// for the document formats the annotator accepts. Each normaliser knows how
// to extract plain text from a specific MIME type.
//
// Normalisers are registered with the Registry at startup. The registry
// assigns every document a content-derived ID so identical text shares
// cached findings.
package normalisers
