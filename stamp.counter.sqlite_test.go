package stamp

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteCounterStore(t *testing.T) {
	store, err := NewSQLiteCounterStore(filepath.Join(t.TempDir(), "counters.db"))
	require.NoError(t, err)

	testCounterStore(t, store)
}

func TestSQLiteCounterStore_InMemory(t *testing.T) {
	store, err := NewSQLiteCounterStore("")
	require.NoError(t, err)
	defer store.Close()

	v, err := store.Next(context.Background(), "x", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
}

func TestSQLiteCounterStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counters.db")
	ctx := context.Background()

	first, err := NewSQLiteCounterStore(path)
	require.NoError(t, err)
	_, err = first.Next(ctx, "orders", 1000, 1)
	require.NoError(t, err)
	_, err = first.Next(ctx, "orders", 1000, 1)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewSQLiteCounterStore(path)
	require.NoError(t, err)
	defer second.Close()

	v, err := second.Next(ctx, "orders", 1000, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1002), v)
}

func TestSQLiteCounterStore_ViaDriver(t *testing.T) {
	store, err := OpenCounterStore(CounterDriverSQLite, filepath.Join(t.TempDir(), "driver.db"))
	require.NoError(t, err)
	defer store.Close()

	engine := MustNew(WithCounterStore(store))
	f := engine.MustParse("INV-{counter?name=invoice&value=1}")
	assert.Equal(t, "INV-1", render(t, f, nil))
	assert.Equal(t, "INV-2", render(t, f, nil))
}

func TestSQLCounterStore_CallerOwnsDB(t *testing.T) {
	db, err := sql.Open(SQLiteDriverName, filepath.Join(t.TempDir(), "shared.db"))
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	store, err := NewSQLCounterStore(db, SQLiteDialect("custom_counters"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// the shared handle stays usable
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM custom_counters`).Scan(&n))
	assert.Equal(t, 0, n)
}
