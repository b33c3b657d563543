// Package profit rolls every settlement into a single period figure:
// per-event enable flags and manual overrides on the income side, a flat
// list of manual expenses on the other.
package profit

import (
	"fmt"
	"sort"

	"github.com/tourledger-dev/tourledger/internal/docstore"
	"github.com/tourledger-dev/tourledger/internal/event"
	"github.com/tourledger-dev/tourledger/internal/id"
	"github.com/tourledger-dev/tourledger/internal/model"
	"github.com/tourledger-dev/tourledger/internal/settlement"
)

// EntrySource supplies the raw ledger entries.
type EntrySource interface {
	List() ([]model.Entry, error)
}

// SummarySource supplies computed settlement summaries.
type SummarySource interface {
	Summary(key event.Key) (settlement.Summary, error)
}

// Service owns the profit-state document and computes the period total.
type Service struct {
	store       docstore.Store
	entries     EntrySource
	settlements SummarySource
	drafts      map[string]string // expense id -> staged amount text
}

// NewService creates a profit Service.
func NewService(store docstore.Store, entries EntrySource, settlements SummarySource) *Service {
	return &Service{
		store:       store,
		entries:     entries,
		settlements: settlements,
		drafts:      make(map[string]string),
	}
}

// Sync ensures one income record per distinct event key in the ledger.
// New keys start enabled with no override; existing records only get
// their cached month and display name refreshed. Records whose entries
// are gone are kept (orphaned, not deleted).
func (s *Service) Sync() error {
	entries, err := s.entries.List()
	if err != nil {
		return err
	}

	state, err := s.State()
	if err != nil {
		return err
	}

	for _, info := range event.DistinctEvents(entries) {
		k := info.Key.String()
		rec, ok := state.Incomes[k]
		if !ok {
			rec = model.IncomeRecord{Enabled: true}
		}
		rec.EventName = info.DisplayName
		rec.Month = info.Month
		state.Incomes[k] = rec
	}

	return s.save(state)
}

// Line is one event's contribution to the period total.
type Line struct {
	Key        event.Key
	EventName  string
	Month      string
	Amount     model.Amount
	Overridden bool
}

// Total is the computed period rollup.
type Total struct {
	Lines        []Line
	TotalIncome  model.Amount
	TotalExpense model.Amount
	TotalProfit  model.Amount
}

// Total sums every enabled income record whose key still has at least
// one ledger entry — orphaned keys stay in storage but contribute
// nothing — using the manual override when set, the computed settlement
// profit otherwise, then subtracts the manual expenses.
func (s *Service) Total() (Total, error) {
	entries, err := s.entries.List()
	if err != nil {
		return Total{}, err
	}
	state, err := s.State()
	if err != nil {
		return Total{}, err
	}

	var t Total
	for k, rec := range state.Incomes {
		if !rec.Enabled {
			continue
		}
		key := event.ParseKey(k)
		if event.Status(key, entries, true) != event.StatusActive {
			continue
		}

		line := Line{Key: key, EventName: rec.EventName, Month: rec.Month}
		if rec.AmountOverride != nil {
			line.Amount = *rec.AmountOverride
			line.Overridden = true
		} else {
			sum, err := s.settlements.Summary(key)
			if err != nil {
				return Total{}, err
			}
			line.Amount = sum.TotalProfit
		}
		t.Lines = append(t.Lines, line)
		t.TotalIncome = t.TotalIncome.Add(line.Amount)
	}

	sort.Slice(t.Lines, func(i, j int) bool {
		if t.Lines[i].Month != t.Lines[j].Month {
			return t.Lines[i].Month < t.Lines[j].Month
		}
		return t.Lines[i].Key.Name < t.Lines[j].Key.Name
	})

	for _, e := range state.Expenses {
		t.TotalExpense = t.TotalExpense.Add(e.Amount)
	}
	t.TotalProfit = t.TotalIncome.Sub(t.TotalExpense)
	return t, nil
}

// SetEnabled toggles an event's participation in the total. Unknown keys
// are a no-op.
func (s *Service) SetEnabled(key event.Key, enabled bool) error {
	return s.mutateIncome(key, func(rec *model.IncomeRecord) {
		rec.Enabled = enabled
	})
}

// SetOverride sets (or, with nil, clears) the manual amount that
// replaces the computed settlement profit. Unknown keys are a no-op.
func (s *Service) SetOverride(key event.Key, amount *model.Amount) error {
	return s.mutateIncome(key, func(rec *model.IncomeRecord) {
		rec.AmountOverride = amount
	})
}

// AddExpense appends a blank manual expense and returns its id.
func (s *Service) AddExpense() (string, error) {
	state, err := s.State()
	if err != nil {
		return "", err
	}
	expenseID := id.New()
	state.Expenses = append(state.Expenses, model.Expense{ID: expenseID})
	if err := s.save(state); err != nil {
		return "", err
	}
	return expenseID, nil
}

// RemoveExpense deletes a manual expense by id; absent ids are ignored.
func (s *Service) RemoveExpense(expenseID string) error {
	state, err := s.State()
	if err != nil {
		return err
	}
	kept := state.Expenses[:0]
	for _, e := range state.Expenses {
		if e.ID != expenseID {
			kept = append(kept, e)
		}
	}
	state.Expenses = kept
	return s.save(state)
}

// ExpensePatch is a partial update of one manual expense.
type ExpensePatch struct {
	Label  *string
	Amount *model.Amount
}

// UpdateExpense edits a manual expense in place.
func (s *Service) UpdateExpense(expenseID string, patch ExpensePatch) error {
	state, err := s.State()
	if err != nil {
		return err
	}
	for i := range state.Expenses {
		if state.Expenses[i].ID != expenseID {
			continue
		}
		if patch.Label != nil {
			state.Expenses[i].Label = *patch.Label
		}
		if patch.Amount != nil {
			state.Expenses[i].Amount = *patch.Amount
		}
		return s.save(state)
	}
	return nil
}

// StageExpenseEdit records an in-progress expense amount edit in memory
// only; CommitExpenseEdit parses and persists it. Unparsable text
// commits as zero, and an exit before commit discards the draft.
func (s *Service) StageExpenseEdit(expenseID, text string) {
	s.drafts[expenseID] = text
}

// CommitExpenseEdit flushes a staged expense amount. Nothing staged
// means no-op.
func (s *Service) CommitExpenseEdit(expenseID string) error {
	text, ok := s.drafts[expenseID]
	if !ok {
		return nil
	}
	delete(s.drafts, expenseID)
	amt := model.AmountFromString(text)
	return s.UpdateExpense(expenseID, ExpensePatch{Amount: &amt})
}

// State loads the profit document, degrading malformed state to empty.
func (s *Service) State() (model.ProfitState, error) {
	body, err := s.store.Load(docstore.DocProfit)
	if err != nil {
		return model.ProfitState{}, err
	}
	return decodeState(body), nil
}

// Reset deletes the whole profit document.
func (s *Service) Reset() error {
	return s.store.Delete(docstore.DocProfit)
}

func (s *Service) mutateIncome(key event.Key, fn func(*model.IncomeRecord)) error {
	state, err := s.State()
	if err != nil {
		return err
	}
	rec, ok := state.Incomes[key.String()]
	if !ok {
		return nil
	}
	fn(&rec)
	state.Incomes[key.String()] = rec
	return s.save(state)
}

func (s *Service) save(state model.ProfitState) error {
	body, err := encodeState(state)
	if err != nil {
		return fmt.Errorf("encoding profit state: %w", err)
	}
	return s.store.Save(docstore.DocProfit, body)
}
