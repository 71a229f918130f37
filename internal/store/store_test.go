package store

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMigrations = fstest.MapFS{
	"migrations/000001_create_records.up.sql": &fstest.MapFile{
		Data: []byte(`CREATE TABLE IF NOT EXISTS records (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);`),
	},
	"migrations/000001_create_records.down.sql": &fstest.MapFile{
		Data: []byte(`DROP TABLE IF EXISTS records;`),
	},
}

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "gtw.db"), testMigrations)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

type payload struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

func TestSQLitePutGetRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	s.Put("record", payload{Name: "Ada", Amount: 5500})

	var got payload
	require.True(t, s.Get("record", &got))
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, float64(5500), got.Amount)
}

func TestSQLiteGetMissingKey(t *testing.T) {
	s := newTestSQLiteStore(t)

	var got payload
	assert.False(t, s.Get("missing", &got))
}

func TestSQLitePutOverwrites(t *testing.T) {
	s := newTestSQLiteStore(t)

	s.Put("record", payload{Name: "first"})
	s.Put("record", payload{Name: "second"})

	var got payload
	require.True(t, s.Get("record", &got))
	assert.Equal(t, "second", got.Name)
}

func TestSQLiteRemove(t *testing.T) {
	s := newTestSQLiteStore(t)

	s.Put("record", payload{Name: "Ada"})
	s.Remove("record")

	var got payload
	assert.False(t, s.Get("record", &got))

	// Removing an absent key is a no-op.
	s.Remove("record")
}

func TestSQLiteCorruptedValueIsAbsent(t *testing.T) {
	s := newTestSQLiteStore(t)

	_, err := s.db.Exec(
		"INSERT INTO records (key, value, updated_at) VALUES (?, ?, 0)",
		"broken", "{not json",
	)
	require.NoError(t, err)

	var got payload
	assert.False(t, s.Get("broken", &got))
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "gtw.db")

	s, err := NewSQLiteStore(dbPath, testMigrations)
	require.NoError(t, err)
	s.Put("record", payload{Name: "Ada"})
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(dbPath, testMigrations)
	require.NoError(t, err)
	defer reopened.Close()

	var got payload
	require.True(t, reopened.Get("record", &got))
	assert.Equal(t, "Ada", got.Name)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	s.Put("record", payload{Name: "Ada"})

	var got payload
	require.True(t, s.Get("record", &got))
	assert.Equal(t, "Ada", got.Name)

	s.Remove("record")
	assert.False(t, s.Get("record", &got))
}

func TestMemoryStoreTypeMismatchIsAbsent(t *testing.T) {
	s := NewMemoryStore()

	s.Put("record", "just a string")

	var got payload
	assert.False(t, s.Get("record", &got))
}
