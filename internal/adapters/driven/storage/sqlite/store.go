package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/sagar50802/law-network-client-sub002/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
)

// jsonNull is the JSON representation of null.
const jsonNull = "null"

// Store is a SQLite-backed store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.lawnet/data/findings.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".lawnet", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "findings.db")

	// WAL mode so a watch loop and a one-shot run can share the file.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// FindingsStore returns a FindingsStore interface backed by this store.
func (s *Store) FindingsStore() driven.FindingsStore {
	return &findingsStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_findings.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Findings Store ====================

// findingsStore implements driven.FindingsStore.
type findingsStore struct {
	store *Store
}

var _ driven.FindingsStore = (*findingsStore)(nil)

// Save stores or replaces the findings for a document.
func (s *findingsStore) Save(ctx context.Context, documentID string, findings *domain.Findings) error {
	if documentID == "" || findings == nil {
		return domain.ErrInvalidInput
	}

	grammar := findings.Grammar
	if grammar == nil {
		grammar = []domain.GrammarFinding{}
	}
	grammarJSON, err := json.Marshal(grammar)
	if err != nil {
		return fmt.Errorf("marshalling grammar findings: %w", err)
	}
	aiJSON, err := json.Marshal(findings.AI)
	if err != nil {
		return fmt.Errorf("marshalling ai report: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO findings (document_id, grammar, ai, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(document_id) DO UPDATE SET
			grammar = excluded.grammar,
			ai = excluded.ai,
			updated_at = excluded.updated_at
	`, documentID, string(grammarJSON), nullableJSON(aiJSON), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving findings: %w", err)
	}
	return nil
}

// Get retrieves findings for a document.
func (s *findingsStore) Get(ctx context.Context, documentID string) (*domain.Findings, error) {
	var grammarJSON string
	var aiJSON sql.NullString

	err := s.store.db.QueryRowContext(ctx,
		"SELECT grammar, ai FROM findings WHERE document_id = ?", documentID,
	).Scan(&grammarJSON, &aiJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting findings: %w", err)
	}

	findings := &domain.Findings{}
	if err := json.Unmarshal([]byte(grammarJSON), &findings.Grammar); err != nil {
		return nil, fmt.Errorf("unmarshalling grammar findings: %w", err)
	}
	if len(findings.Grammar) == 0 {
		findings.Grammar = nil
	}
	if aiJSON.Valid && aiJSON.String != jsonNull {
		findings.AI = &domain.AIReport{}
		if err := json.Unmarshal([]byte(aiJSON.String), findings.AI); err != nil {
			return nil, fmt.Errorf("unmarshalling ai report: %w", err)
		}
	}
	return findings, nil
}

// Delete removes cached findings for a document.
func (s *findingsStore) Delete(ctx context.Context, documentID string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM findings WHERE document_id = ?", documentID); err != nil {
		return fmt.Errorf("deleting findings: %w", err)
	}
	return nil
}

// nullableJSON maps a marshalled nil pointer to SQL NULL.
func nullableJSON(data []byte) any {
	if string(data) == jsonNull {
		return nil
	}
	return string(data)
}
