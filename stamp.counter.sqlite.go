package stamp

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLite counter store settings
const (
	SQLiteDriverName     = "sqlite"
	SQLitePragmaWAL      = "PRAGMA journal_mode=WAL"
	SQLitePragmaBusyWait = "PRAGMA busy_timeout=5000"
	SQLiteMemoryPath     = ":memory:"
)

func init() {
	RegisterCounterDriver(CounterDriverSQLite, CounterDriverFunc(func(dsn string) (CounterStore, error) {
		return NewSQLiteCounterStore(dsn)
	}))
}

// NewSQLiteCounterStore opens (or creates) the database file at path and the
// counter table inside it. Writes are serialised over a single connection,
// which also keeps ":memory:" databases coherent.
func NewSQLiteCounterStore(path string) (*SQLCounterStore, error) {
	if path == "" {
		path = SQLiteMemoryPath
	}

	db, err := sql.Open(SQLiteDriverName, path)
	if err != nil {
		return nil, NewCounterStoreError(CounterOpOpen, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, NewCounterStoreError(CounterOpOpen, err)
	}
	for _, pragma := range []string{SQLitePragmaWAL, SQLitePragmaBusyWait} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, NewCounterStoreError(CounterOpOpen, err)
		}
	}

	store, err := NewSQLCounterStore(db, SQLiteDialect(SQLCounterTableName))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	store.owned = true
	return store, nil
}
