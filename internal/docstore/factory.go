package docstore

import "fmt"

// Backend selects a Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// IsValid reports whether b names a known backend.
func (b Backend) IsValid() bool {
	return b == BackendFile || b == BackendSQLite
}

// Open constructs the configured Store. The file backend stores one JSON
// file per document under dir; the sqlite backend stores all documents in
// a single database at dbPath.
func Open(backend Backend, dir, dbPath string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(dir)
	case BackendSQLite:
		return NewSQLiteStore(dbPath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
