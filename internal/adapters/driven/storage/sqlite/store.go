package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/reliefdir/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/reliefdir/internal/core/domain"
	"github.com/custodia-labs/reliefdir/internal/core/ports/driven"
	"github.com/custodia-labs/reliefdir/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.DatasetLoader = (*Store)(nil)

// ErrReadOnly is returned when writing to a bundle opened with OpenReadOnly.
var ErrReadOnly = errors.New("sqlite: bundle is read-only")

// Store is a SQLite dataset bundle.
type Store struct {
	db       *sql.DB
	path     string
	readOnly bool
}

// NewStore opens or creates a writable bundle at path and applies migrations.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("bundle path: %w", domain.ErrInvalidInput)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating bundle directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// OpenReadOnly opens an existing bundle without write access.
func OpenReadOnly(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open bundle: %w: %w", domain.ErrDatasetUnavailable, err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open bundle: %w: %w", domain.ErrDatasetUnavailable, err)
	}

	return &Store{db: db, path: path, readOnly: true}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Format reports domain.DatasetFormatSQLite.
func (s *Store) Format() domain.DatasetFormat {
	return domain.DatasetFormatSQLite
}

// Load returns every organization in position order with its tags.
func (s *Store) Load(ctx context.Context) ([]domain.Organization, error) {
	logger.Section("Loading " + s.path)
	defer logger.Timed("sqlite dataset load")()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, type, help_type, status, amount, contact, details, date, source
		FROM organizations
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying organizations: %w: %w", domain.ErrDatasetUnavailable, err)
	}
	defer rows.Close()

	var records []domain.Organization
	index := make(map[string]int)
	for rows.Next() {
		var org domain.Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.Type, &org.HelpType, &org.Status,
			&org.Amount, &org.Contact, &org.Details, &org.Date, &org.Source); err != nil {
			return nil, fmt.Errorf("scanning organization: %w", err)
		}
		org.Tags = []string{}
		index[org.ID] = len(records)
		records = append(records, org)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating organizations: %w", err)
	}

	if err := s.loadTags(ctx, records, index); err != nil {
		return nil, err
	}

	logger.Info("Loaded %d organizations from %s", len(records), s.path)
	return records, nil
}

func (s *Store) loadTags(ctx context.Context, records []domain.Organization, index map[string]int) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT organization_id, tag
		FROM organization_tags
		ORDER BY organization_id, position
	`)
	if err != nil {
		return fmt.Errorf("querying tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return fmt.Errorf("scanning tag: %w", err)
		}
		i, ok := index[id]
		if !ok {
			logger.Warn("Tag %q refers to unknown organization %q", tag, id)
			continue
		}
		records[i].Tags = append(records[i].Tags, tag)
	}
	return rows.Err()
}

// Import replaces the bundle contents with records, keeping their order.
func (s *Store) Import(ctx context.Context, records []domain.Organization) error {
	if s.readOnly {
		return ErrReadOnly
	}

	seen := make(map[string]struct{}, len(records))
	for i := range records {
		id := records[i].ID
		if id == "" {
			return fmt.Errorf("record %d has no id: %w", i, domain.ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("id %q: %w", id, domain.ErrDuplicateID)
		}
		seen[id] = struct{}{}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM organization_tags"); err != nil {
		return fmt.Errorf("clearing tags: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM organizations"); err != nil {
		return fmt.Errorf("clearing organizations: %w", err)
	}

	for i := range records {
		org := &records[i]
		_, err := tx.ExecContext(ctx, `
			INSERT INTO organizations (id, position, name, type, help_type, status, amount, contact, details, date, source)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, org.ID, i, org.Name, org.Type, org.HelpType, org.Status,
			org.Amount, org.Contact, org.Details, org.Date, org.Source)
		if err != nil {
			return fmt.Errorf("inserting organization %s: %w", org.ID, err)
		}

		for pos, tag := range org.Tags {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO organization_tags (organization_id, position, tag) VALUES (?, ?, ?)",
				org.ID, pos, tag); err != nil {
				return fmt.Errorf("inserting tag for %s: %w", org.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	logger.Info("Imported %d organizations into %s", len(records), s.path)
	return nil
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
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_directory.up.sql" -> 1
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
		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		logger.Debug("Applied migration %s", name)
	}

	return nil
}

// apply runs one migration and records its version atomically.
func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(script); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}
