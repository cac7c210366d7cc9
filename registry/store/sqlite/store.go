package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (CGO_ENABLED=0 compatible)

	"github.com/mwantia/cmdspec"
	"github.com/mwantia/cmdspec/registry/store"
)

// SQLiteStore persists spec documents in a SQLite database. The dbPath can
// be ":memory:" for an in-memory database or a file path.
type SQLiteStore struct {
	mu sync.RWMutex
	db *sql.DB

	dbPath string
}

func NewSQLiteStore(dbPath string) *SQLiteStore {
	return &SQLiteStore{
		dbPath: dbPath,
	}
}

// Name returns the identifier name defined for this store.
func (*SQLiteStore) Name() string {
	return "sqlite"
}

// Open is part of the lifecycle behaviour and prepares the store for use.
func (ss *SQLiteStore) Open(ctx context.Context) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	db, err := sql.Open("sqlite", ss.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases coherent; the pool
	// would otherwise hand out fresh empty databases.
	db.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS cmdspec_documents (
		name        TEXT PRIMARY KEY,
		revision    TEXT NOT NULL,
		payload     BLOB NOT NULL,
		create_time INTEGER NOT NULL,
		update_time INTEGER NOT NULL
	);`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	ss.db = db
	return nil
}

// Close is part of the lifecycle behaviour and releases all resources.
func (ss *SQLiteStore) Close(ctx context.Context) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if ss.db == nil {
		return cmdspec.ErrClosed
	}

	err := ss.db.Close()
	ss.db = nil
	return err
}

func (ss *SQLiteStore) Put(ctx context.Context, name string, payload []byte) (*store.Record, error) {
	if name == "" {
		return nil, cmdspec.ErrInvalidName
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()

	if ss.db == nil {
		return nil, cmdspec.ErrNotConnected
	}

	record, err := ss.queryRecord(ctx, name)
	switch {
	case err == nil:
		record.Touch(int64(len(payload)))
		_, err = ss.db.ExecContext(ctx, `
			UPDATE cmdspec_documents
			SET revision = ?, payload = ?, update_time = ?
			WHERE name = ?`,
			record.Revision, payload, record.UpdateTime.Unix(), name)
	case errors.Is(err, cmdspec.ErrNotExist):
		record = store.NewRecord(name, int64(len(payload)))
		_, err = ss.db.ExecContext(ctx, `
			INSERT INTO cmdspec_documents (name, revision, payload, create_time, update_time)
			VALUES (?, ?, ?, ?, ?)`,
			name, record.Revision, payload, record.CreateTime.Unix(), record.UpdateTime.Unix())
	}
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (ss *SQLiteStore) Get(ctx context.Context, name string) ([]byte, *store.Record, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	if ss.db == nil {
		return nil, nil, cmdspec.ErrNotConnected
	}

	var payload []byte
	record := &store.Record{Name: name}
	var created, updated int64

	row := ss.db.QueryRowContext(ctx, `
		SELECT revision, payload, create_time, update_time
		FROM cmdspec_documents WHERE name = ?`, name)

	if err := row.Scan(&record.Revision, &payload, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, cmdspec.ErrNotExist
		}
		return nil, nil, err
	}

	record.Size = int64(len(payload))
	record.CreateTime = time.Unix(created, 0).UTC()
	record.UpdateTime = time.Unix(updated, 0).UTC()

	return payload, record, nil
}

func (ss *SQLiteStore) List(ctx context.Context) ([]*store.Record, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	if ss.db == nil {
		return nil, cmdspec.ErrNotConnected
	}

	rows, err := ss.db.QueryContext(ctx, `
		SELECT name, revision, length(payload), create_time, update_time
		FROM cmdspec_documents ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*store.Record
	for rows.Next() {
		record := &store.Record{}
		var created, updated int64

		if err := rows.Scan(&record.Name, &record.Revision, &record.Size, &created, &updated); err != nil {
			return nil, err
		}
		record.CreateTime = time.Unix(created, 0).UTC()
		record.UpdateTime = time.Unix(updated, 0).UTC()

		records = append(records, record)
	}

	return records, rows.Err()
}

func (ss *SQLiteStore) Delete(ctx context.Context, name string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if ss.db == nil {
		return cmdspec.ErrNotConnected
	}

	result, err := ss.db.ExecContext(ctx, `DELETE FROM cmdspec_documents WHERE name = ?`, name)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return cmdspec.ErrNotExist
	}

	return nil
}

func (ss *SQLiteStore) queryRecord(ctx context.Context, name string) (*store.Record, error) {
	record := &store.Record{Name: name}
	var created, updated, size int64

	row := ss.db.QueryRowContext(ctx, `
		SELECT revision, length(payload), create_time, update_time
		FROM cmdspec_documents WHERE name = ?`, name)

	if err := row.Scan(&record.Revision, &size, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cmdspec.ErrNotExist
		}
		return nil, err
	}

	record.Size = size
	record.CreateTime = time.Unix(created, 0).UTC()
	record.UpdateTime = time.Unix(updated, 0).UTC()

	return record, nil
}
