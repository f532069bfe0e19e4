// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants and editors annotate text with grammar and
// AI-origin findings through lawnet.
package mcp

import "errors"

// ErrMissingAnnotationService is returned when the annotation service is not provided.
var ErrMissingAnnotationService = errors.New("mcp: annotation service is required")
