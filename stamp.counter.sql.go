package stamp

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// SQL counter store defaults
const (
	SQLCounterTableName    = "stamp_counters"
	SQLCounterQueryTimeout = 10 * time.Second
)

// SQLDialect holds the statements a SQLCounterStore runs. Next must be a
// single atomic upsert returning the new value.
type SQLDialect struct {
	Name          string
	Schema        string
	NextQuery     string
	PeekQuery     string
	ResetQuery    string
	ResetAllQuery string
}

// PostgresDialect returns the PostgreSQL statements for table.
func PostgresDialect(table string) SQLDialect {
	return SQLDialect{
		Name: CounterDriverPostgres,
		Schema: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			name TEXT PRIMARY KEY,
			value BIGINT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, table),
		NextQuery: fmt.Sprintf(`INSERT INTO %[1]s (name, value) VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET value = %[1]s.value + $3, updated_at = NOW()
			RETURNING value`, table),
		PeekQuery:     fmt.Sprintf(`SELECT value FROM %s WHERE name = $1`, table),
		ResetQuery:    fmt.Sprintf(`DELETE FROM %s WHERE name = $1`, table),
		ResetAllQuery: fmt.Sprintf(`DELETE FROM %s`, table),
	}
}

// SQLiteDialect returns the SQLite statements for table.
func SQLiteDialect(table string) SQLDialect {
	return SQLDialect{
		Name: CounterDriverSQLite,
		Schema: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			name TEXT PRIMARY KEY,
			value INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`, table),
		NextQuery: fmt.Sprintf(`INSERT INTO %[1]s (name, value) VALUES (?, ?)
			ON CONFLICT (name) DO UPDATE SET value = %[1]s.value + ?, updated_at = CURRENT_TIMESTAMP
			RETURNING value`, table),
		PeekQuery:     fmt.Sprintf(`SELECT value FROM %s WHERE name = ?`, table),
		ResetQuery:    fmt.Sprintf(`DELETE FROM %s WHERE name = ?`, table),
		ResetAllQuery: fmt.Sprintf(`DELETE FROM %s`, table),
	}
}

// SQLCounterStore keeps counters in a SQL table so they survive restarts.
type SQLCounterStore struct {
	db      *sql.DB
	dialect SQLDialect
	timeout time.Duration
	owned   bool
	closed  atomic.Bool
}

// NewSQLCounterStore wraps db and creates the counter table if needed.
// The caller keeps ownership of db.
func NewSQLCounterStore(db *sql.DB, dialect SQLDialect) (*SQLCounterStore, error) {
	s := &SQLCounterStore{
		db:      db,
		dialect: dialect,
		timeout: SQLCounterQueryTimeout,
	}
	if err := s.Migrate(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// withTimeout applies the store timeout when ctx has no deadline.
func (s *SQLCounterStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Migrate creates the counter table.
func (s *SQLCounterStore) Migrate(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, s.dialect.Schema); err != nil {
		return NewCounterStoreError(CounterOpMigrate, err)
	}
	return nil
}

// Next implements CounterStore.
func (s *SQLCounterStore) Next(ctx context.Context, name string, initial, step int64) (int64, error) {
	if s.closed.Load() {
		return 0, NewCounterStoreClosedError(CounterOpNext)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var v int64
	if err := s.db.QueryRowContext(ctx, s.dialect.NextQuery, name, initial, step).Scan(&v); err != nil {
		return 0, NewCounterStoreError(CounterOpNext, err)
	}
	return v, nil
}

// Peek implements CounterStore.
func (s *SQLCounterStore) Peek(ctx context.Context, name string) (int64, bool, error) {
	if s.closed.Load() {
		return 0, false, NewCounterStoreClosedError(CounterOpPeek)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var v int64
	err := s.db.QueryRowContext(ctx, s.dialect.PeekQuery, name).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, NewCounterStoreError(CounterOpPeek, err)
	}
	return v, true, nil
}

// Reset implements CounterStore.
func (s *SQLCounterStore) Reset(ctx context.Context, name string) error {
	return s.exec(ctx, CounterOpReset, s.dialect.ResetQuery, name)
}

// ResetAll implements CounterStore.
func (s *SQLCounterStore) ResetAll(ctx context.Context) error {
	return s.exec(ctx, CounterOpResetAll, s.dialect.ResetAllQuery)
}

func (s *SQLCounterStore) exec(ctx context.Context, op, query string, args ...any) error {
	if s.closed.Load() {
		return NewCounterStoreClosedError(op)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return NewCounterStoreError(op, err)
	}
	return nil
}

// Close implements CounterStore. Only databases opened by a driver are closed.
func (s *SQLCounterStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	if s.owned {
		return s.db.Close()
	}
	return nil
}
