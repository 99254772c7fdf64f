package contact

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/matzehuels/showcase/pkg/errors"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS contacts (
	id        TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	email     TEXT NOT NULL,
	message   TEXT NOT NULL,
	timestamp TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	is_read   INTEGER NOT NULL DEFAULT 0
)`

// sqliteTime is the format of CURRENT_TIMESTAMP, always UTC.
const sqliteTime = "2006-01-02 15:04:05"

// SQLiteStore keeps messages in a SQLite database file.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (creating if needed) the database at path.
// Use ":memory:" for a throwaway database.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "open %s", path)
	}
	// SQLite serializes writers; one connection also keeps ":memory:" shared.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "create schema in %s", path)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Insert(ctx context.Context, m Message) (*Message, error) {
	var stamp string
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO contacts (id, name, email, message) VALUES (?, ?, ?, ?) RETURNING timestamp`,
		m.ID, m.Name, m.Email, m.Message,
	).Scan(&stamp)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	m.Timestamp, err = time.ParseInLocation(sqliteTime, stamp, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp %q: %w", stamp, err)
	}
	m.Read = false
	return &m, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*Message, error) {
	var (
		m     Message
		stamp string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, message, timestamp, is_read FROM contacts WHERE id = ?`, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Message, &stamp, &m.Read)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get message %s: %w", id, err)
	}
	m.Timestamp, _ = time.ParseInLocation(sqliteTime, stamp, time.UTC)
	return &m, nil
}

func (s *SQLiteStore) Name() string { return "sqlite" }

func (s *SQLiteStore) Close(context.Context) error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
