package docstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	fileStore, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	sqliteStore, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })
	return map[string]Store{"file": fileStore, "sqlite": sqliteStore}
}

func TestStore_RoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			body := []byte(`[{"id":"a","date":"2026-02-02"}]`)
			require.NoError(t, store.Save(DocEntries, body))

			got, err := store.Load(DocEntries)
			require.NoError(t, err)
			assert.Equal(t, body, got)

			// Save replaces, not appends.
			require.NoError(t, store.Save(DocEntries, []byte(`[]`)))
			got, err = store.Load(DocEntries)
			require.NoError(t, err)
			assert.Equal(t, []byte(`[]`), got)
		})
	}
}

func TestStore_MissingDocumentIsNil(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			got, err := store.Load("never-written")
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestStore_DocumentsIndependent(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Save(DocEntries, []byte(`[]`)))
			require.NoError(t, store.Save(DocSettlements, []byte(`{}`)))

			require.NoError(t, store.Delete(DocEntries))

			gone, err := store.Load(DocEntries)
			require.NoError(t, err)
			assert.Nil(t, gone)
			kept, err := store.Load(DocSettlements)
			require.NoError(t, err)
			assert.Equal(t, []byte(`{}`), kept)
		})
	}
}

func TestStore_DeleteAbsentIsNoOp(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Delete("never-written"))
		})
	}
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(DocEntries, []byte(`[]`)))

	names, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "entries.json", names[0].Name())
}

func TestOpen_SelectsBackend(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(BackendFile, dir, "")
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	s, err = Open(BackendSQLite, "", filepath.Join(dir, "x.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	s.Close()

	_, err = Open("redis", dir, "")
	assert.Error(t, err)
}
