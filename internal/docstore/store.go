// Package docstore persists the ledger's three JSON documents (entries,
// settlements, profit state) behind a small key-value interface. Each
// document is written whole, atomically, after every mutation; the
// documents are independent and no cross-document transaction exists.
package docstore

// Document names used by the ledger services.
const (
	DocEntries     = "entries"
	DocSettlements = "settlements"
	DocProfit      = "profit"
)

// Store is an opaque key-value document store.
type Store interface {
	// Load returns the raw document body, or (nil, nil) when the document
	// has never been written.
	Load(name string) ([]byte, error)
	// Save replaces the document body in one atomic write.
	Save(name string, body []byte) error
	// Delete removes the document. Absent documents are not an error.
	Delete(name string) error
	// Close releases any held resources.
	Close() error
}
