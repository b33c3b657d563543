package settlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tourledger-dev/tourledger/internal/docstore"
	"github.com/tourledger-dev/tourledger/internal/event"
	"github.com/tourledger-dev/tourledger/internal/model"
)

// stubEntries backs the aggregator with a fixed in-memory ledger.
type stubEntries struct {
	entries []model.Entry
}

func (s *stubEntries) List() ([]model.Entry, error) {
	return s.entries, nil
}

func amt(s string) model.Amount {
	return model.AmountFromString(s)
}

func amtPtr(s string) *model.Amount {
	a := amt(s)
	return &a
}

func newTestService(t *testing.T, entries ...model.Entry) (*Service, *stubEntries) {
	t.Helper()
	store, err := docstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	src := &stubEntries{entries: entries}
	return NewService(store, src), src
}

func tripEntry(id, date, name string, krwIn, bbIn, kbIn, bbOut string) model.Entry {
	return model.Entry{
		ID:        id,
		Date:      date,
		Client:    "Kim",
		EventName: name,
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		KRW:       model.Pair{Income: amt(krwIn)},
		BB:        model.Pair{Income: amt(bbIn), Expense: amt(bbOut)},
		KB:        model.Pair{Income: amt(kbIn)},
	}
}

func tripKey() event.Key {
	return event.NewKey("Summer Trip", "2026-02-02")
}
