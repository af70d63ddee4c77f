// Package sqlstore keeps key-value slots in a SQL table. SQLite is the
// default engine; MySQL is available for a shared database.
package sqlstore

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"tasklist/internal/errors"
	"tasklist/internal/storage/sqlstore/migrations"
)

// Options tunes a SQLStore.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
	Now          func() time.Time
}

// SQLStore implements storage.Storage on top of database/sql.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
	opts    Options
}

// New opens a SQLite database at dbPath (":memory:" for a private in-memory
// database) with default options.
func New(dbPath string) (*SQLStore, error) {
	return Open(SQLite, dbPath, Options{})
}

// Open connects with the given dialect, runs migrations and returns the store.
func Open(dialect Dialect, dsn string, opts Options) (*SQLStore, error) {
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 10 * time.Second
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 5 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	db, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}
	if dialect.Name == SQLite.Name {
		// One connection: every :memory: connection is a separate database,
		// and SQLite serializes writers anyway.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.NewStorageError("connect database", err)
	}

	if err := migrations.RunMigrations(db, dialect.Name); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLStore{db: db, dialect: dialect, opts: opts}, nil
}

// Close closes the database connection
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Slot returns the full row stored under key.
func (s *SQLStore) Slot(ctx context.Context, key string) (*Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	query := `SELECT slot_key, slot_value, updated_at FROM kv_slots WHERE slot_key = ?`
	return QuerySingle(ctx, s.db, query, ScanSlot, "slot", key, key)
}

// Get returns the value stored under key.
func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	slot, err := s.Slot(ctx, key)
	if err != nil {
		return nil, withKey(err, key)
	}
	return slot.Value, nil
}

// Put inserts or replaces the value stored under key.
func (s *SQLStore) Put(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.WriteTimeout)
	defer cancel()

	err := Execute(ctx, s.db, "write slot", s.dialect.upsert, key, string(value), FormatTimeForDB(s.opts.Now()))
	return withKey(err, key)
}

// withKey records the slot key on storage and timeout errors.
func withKey(err error, key string) error {
	if appErr, ok := errors.AsAppError(err); ok && !appErr.Type.UserError() {
		return appErr.WithContext("key", key)
	}
	return err
}
