// Package entry is the store of raw transaction records, the single
// source of truth the resolvers and aggregators read from.
package entry

import (
	"fmt"
	"sort"
	"time"

	"github.com/tourledger-dev/tourledger/internal/docstore"
	"github.com/tourledger-dev/tourledger/internal/id"
	"github.com/tourledger-dev/tourledger/internal/model"
)

// Service provides add/delete/list over the persisted entries document.
// Every mutation rewrites the whole document (write-through).
type Service struct {
	store docstore.Store
}

// NewService creates an entry Service over a document store.
func NewService(store docstore.Store) *Service {
	return &Service{store: store}
}

// AddParams holds the caller-supplied fields of a new entry.
type AddParams struct {
	Date        string
	Client      string
	EventName   string
	EventDetail string
	Memo        string
	KRW         model.Pair
	BB          model.Pair
	KB          model.Pair
	USD         model.Pair
}

// Add appends a new entry and persists the full list. An empty date is
// silently rejected: callers are expected to validate first, and the
// store never retains a dateless entry. Returns the created entry, or
// nil when the add was rejected.
func (s *Service) Add(params AddParams) (*model.Entry, error) {
	if params.Date == "" {
		return nil, nil
	}

	entries, err := s.List()
	if err != nil {
		return nil, err
	}

	e := model.Entry{
		ID:          id.New(),
		Date:        NormalizeDate(params.Date),
		Client:      params.Client,
		EventName:   params.EventName,
		EventDetail: params.EventDetail,
		Memo:        params.Memo,
		CreatedAt:   time.Now(),
		KRW:         params.KRW,
		BB:          params.BB,
		KB:          params.KB,
		USD:         params.USD,
	}
	entries = append(entries, e)

	if err := s.save(entries); err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete removes an entry by id and persists. Deleting an absent id is a
// no-op.
func (s *Service) Delete(entryID string) error {
	entries, err := s.List()
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	return s.save(kept)
}

// Clear removes every entry.
func (s *Service) Clear() error {
	return s.save(nil)
}

// List returns all retained entries. Malformed persisted state degrades
// to the empty list; individual non-coercible records are dropped.
func (s *Service) List() ([]model.Entry, error) {
	body, err := s.store.Load(docstore.DocEntries)
	if err != nil {
		return nil, err
	}
	return decodeEntries(body), nil
}

func (s *Service) save(entries []model.Entry) error {
	body, err := encodeEntries(entries)
	if err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}
	return s.store.Save(docstore.DocEntries, body)
}

// NormalizeDate turns an 8-digit numeric date like "20260202" into
// "2026-02-02". Any other text is accepted verbatim.
func NormalizeDate(date string) string {
	if len(date) != 8 {
		return date
	}
	for _, r := range date {
		if r < '0' || r > '9' {
			return date
		}
	}
	return date[:4] + "-" + date[4:6] + "-" + date[6:]
}

// SortForDisplay returns entries ordered newest first: date descending,
// ties broken by most recent creation. The input slice is not modified.
func SortForDisplay(entries []model.Entry) []model.Entry {
	out := make([]model.Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
