// Package sqlite implements the persistent contact store on SQLite.
// The backend honors the same Store contract and validation rules as the
// in-memory index; the database is an external collaborator, so every
// driver or filesystem failure surfaces as ErrStorageUnavailable rather
// than a validation outcome.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the database file created inside DataDir.
const dbFileName = "contacts.db"

// Backend implements the Store interface using SQLite. The zero value is
// detached; call Attach with a Config before use.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend creates a new detached SQLite backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens (or creates) the database under config.DataDir and applies
// the schema. Returns ErrAlreadyAttached if called while attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return storageErr("creating data dir", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return storageErr("opening database", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return storageErr("applying schema", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database. Idempotent: multiple calls succeed. After
// Detach, store operations return ErrDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return storageErr("closing database", err)
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// storageErr marks a backing-database failure so callers can distinguish it
// from validation and not-found outcomes.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, types.ErrStorageUnavailable, err)
}
