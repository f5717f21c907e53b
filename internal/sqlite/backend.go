// Package sqlite implements the SQLite storage backend for the linksmith
// scene store. The backend owns a single scene database under the configured
// data directory and exposes entity access through the model.Table interface.
package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-robotics/linksmith/pkg/model"
)

// sceneDBName is the database file created under DataDir.
const sceneDBName = "scene.db"

// Backend implements the model.Store interface using SQLite.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   model.Config
	db       *sql.DB
	tables   map[string]model.Table
}

// Compile-time interface check: Backend must implement Store.
var _ model.Store = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		tables: make(map[string]model.Table),
	}
}

// GetTable returns a Table accessor for the given table name.
// Returns ErrTableNotFound if the name is not recognized and
// ErrStoreDetached if the backend is not attached.
func (b *Backend) GetTable(name string) (model.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, model.ErrStoreDetached
	}

	table, ok := b.tables[name]
	if !ok {
		return nil, model.ErrTableNotFound
	}
	return table, nil
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist, opens the scene database, and installs the
// schema when the database is new.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config model.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return model.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	dbPath := filepath.Join(dataDir, sceneDBName)
	_, statErr := os.Stat(dbPath)
	fresh := os.IsNotExist(statErr)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	if fresh {
		for _, ddl := range schemaDDL {
			if _, err := db.Exec(ddl); err != nil {
				db.Close()
				return err
			}
		}
	}

	b.db = db
	b.config = config
	b.attached = true

	b.tables[model.LinksTable] = &linksTable{backend: b}

	return nil
}

// Detach releases all resources held by the backend. After Detach, all
// operations return ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.tables = make(map[string]model.Table)

	return nil
}

// newUUID generates a UUID v7 string for entity IDs.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}
