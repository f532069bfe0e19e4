package normalisers

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
	"github.com/sagar50802/law-network-client-sub002/internal/logger"
	"github.com/sagar50802/law-network-client-sub002/internal/normalisers/html"
	"github.com/sagar50802/law-network-client-sub002/internal/normalisers/markdown"
	"github.com/sagar50802/law-network-client-sub002/internal/normalisers/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// DocumentNamespace is the UUIDv5 namespace for document IDs.
var DocumentNamespace = uuid.MustParse("6f1c3a52-8d0e-5b7a-9c44-2e1f0b7d9a31")

// FallbackMIMEType is used when a path's extension is unknown.
const FallbackMIMEType = "text/plain"

// extensionTypes covers extensions the system MIME table often lacks.
var extensionTypes = map[string]string{
	".txt":      "text/plain",
	".text":     "text/plain",
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".html":     "text/html",
	".htm":      "text/html",
	".xhtml":    "application/xhtml+xml",
}

// Registry dispatches raw documents to the highest-priority normaliser
// registered for their MIME type.
type Registry struct {
	mu          sync.RWMutex
	normalisers map[string][]driven.Normaliser
	fallback    driven.Normaliser
	now         func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		normalisers: make(map[string][]driven.Normaliser),
		now:         time.Now,
	}
}

// NewDefaultRegistry creates a registry with the plain text, Markdown and
// HTML normalisers registered. Plain text is the fallback.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	text := plaintext.New()
	r.Register(text)
	r.Register(markdown.New())
	r.Register(html.New())
	r.SetFallback(text)
	return r
}

// Register adds a normaliser for each of its MIME types.
func (r *Registry) Register(n driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, mimeType := range n.SupportedMIMETypes() {
		list := append(r.normalisers[mimeType], n)
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Priority() > list[j].Priority()
		})
		r.normalisers[mimeType] = list
	}
}

// SetFallback sets the normaliser used for unregistered MIME types.
func (r *Registry) SetFallback(n driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = n
}

// SupportedMIMETypes returns all registered MIME types, sorted.
func (r *Registry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.normalisers))
	for mimeType := range r.normalisers {
		types = append(types, mimeType)
	}
	sort.Strings(types)
	return types
}

// Normalise transforms a raw document using the best matching normaliser
// and stamps it with a content-derived ID.
func (r *Registry) Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	n := r.lookup(raw.MIMEType)
	if n == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, raw.MIMEType)
	}

	doc, err := n.Normalise(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("normalise %s: %w", raw.URI, err)
	}

	doc.ID = DocumentID(doc.Content)
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = r.now()
	}
	logger.Debug("normalised %s (%s) into %d bytes", raw.URI, raw.MIMEType, len(doc.Content))
	return doc, nil
}

// LoadFile reads path and normalises it using the MIME type of its extension.
func (r *Registry) LoadFile(ctx context.Context, path string) (*domain.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return r.Normalise(ctx, &domain.RawDocument{
		URI:      path,
		MIMEType: MIMETypeForPath(path),
		Content:  content,
	})
}

func (r *Registry) lookup(mimeType string) driven.Normaliser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if list := r.normalisers[mimeType]; len(list) > 0 {
		return list[0]
	}
	return r.fallback
}

// DocumentID returns the deterministic ID for content.
func DocumentID(content string) string {
	return uuid.NewSHA1(DocumentNamespace, []byte(content)).String()
}

// MIMETypeForPath guesses a MIME type from the path's extension,
// without parameters such as charset.
func MIMETypeForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		if mediaType, _, err := mime.ParseMediaType(t); err == nil {
			return mediaType
		}
	}
	return FallbackMIMEType
}
