package domain

import "time"

// Document is the raw input text and where it came from.
// Content is never mutated; annotators return new strings.
type Document struct {
	// ID is derived from Content so identical text shares cached findings.
	ID string

	// URI is the original location (file path, URL, etc).
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the plain text to annotate.
	Content string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the document was loaded.
	CreatedAt time.Time
}

// RawDocument is file content before normalisation to plain text.
type RawDocument struct {
	// URI is the original location.
	URI string

	// MIMEType selects the normaliser.
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any
}
