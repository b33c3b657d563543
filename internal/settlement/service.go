// Package settlement owns the per-event settlement reports: manually
// confirmed prices and rates, ad-hoc line items, and the guide
// sub-ledger. It combines those overlays with the raw ledger to produce
// each event's income/expense/profit summary.
package settlement

import (
	"fmt"

	"github.com/tourledger-dev/tourledger/internal/docstore"
	"github.com/tourledger-dev/tourledger/internal/event"
	"github.com/tourledger-dev/tourledger/internal/id"
	"github.com/tourledger-dev/tourledger/internal/model"
)

// EntrySource supplies the raw ledger entries the aggregator reads.
type EntrySource interface {
	List() ([]model.Entry, error)
}

// Service provides settlement-report state transitions and summaries.
// Reports are keyed by the event key's persisted string form and written
// through to the settlements document after every committed mutation.
type Service struct {
	store   docstore.Store
	entries EntrySource
	drafts  map[draftRef]string
}

// NewService creates a settlement Service.
func NewService(store docstore.Store, entries EntrySource) *Service {
	return &Service{
		store:   store,
		entries: entries,
		drafts:  make(map[draftRef]string),
	}
}

// EnsureDefaults creates a zero-valued report for key if none exists.
// Idempotent; an existing report is left untouched.
func (s *Service) EnsureDefaults(key event.Key, name string) error {
	reports, err := s.loadReports()
	if err != nil {
		return err
	}
	if _, ok := reports[key.String()]; ok {
		return nil
	}
	reports[key.String()] = model.SettlementReport{Name: name}
	return s.saveReports(reports)
}

// Report returns the stored report for key. The second result is false
// when no report exists yet.
func (s *Service) Report(key event.Key) (model.SettlementReport, bool, error) {
	reports, err := s.loadReports()
	if err != nil {
		return model.SettlementReport{}, false, err
	}
	r, ok := reports[key.String()]
	return r, ok, nil
}

// Keys returns the string keys of every stored report, including
// orphaned ones whose entries have since been deleted.
func (s *Service) Keys() ([]string, error) {
	reports, err := s.loadReports()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(reports))
	for k := range reports {
		keys = append(keys, k)
	}
	return keys, nil
}

// FieldPatch is a partial update of a report's scalar fields. Nil fields
// are left unchanged. Writing exactly zero to a fixed KRW price clears
// the override, putting the field back on its computed ledger default.
type FieldPatch struct {
	Name                    *string
	FixedPriceKRWIncome     *model.Amount
	BahtExchangeRateIncome  *model.Amount
	FixedPriceBahtIncome    *model.Amount
	FixedPriceKRWExpense    *model.Amount
	BahtExchangeRateExpense *model.Amount
	FixedPriceBahtExpense   *model.Amount
}

// UpdateField merges a partial update into the report for key. A key
// with no report is a no-op.
func (s *Service) UpdateField(key event.Key, patch FieldPatch) error {
	return s.mutate(key, func(r *model.SettlementReport) {
		applyFieldPatch(r, patch)
	})
}

func applyFieldPatch(r *model.SettlementReport, patch FieldPatch) {
	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.FixedPriceKRWIncome != nil {
		r.FixedPriceKRWIncome = overrideValue(*patch.FixedPriceKRWIncome)
	}
	if patch.BahtExchangeRateIncome != nil {
		r.BahtExchangeRateIncome = *patch.BahtExchangeRateIncome
	}
	if patch.FixedPriceBahtIncome != nil {
		r.FixedPriceBahtIncome = *patch.FixedPriceBahtIncome
	}
	if patch.FixedPriceKRWExpense != nil {
		r.FixedPriceKRWExpense = overrideValue(*patch.FixedPriceKRWExpense)
	}
	if patch.BahtExchangeRateExpense != nil {
		r.BahtExchangeRateExpense = *patch.BahtExchangeRateExpense
	}
	if patch.FixedPriceBahtExpense != nil {
		r.FixedPriceBahtExpense = *patch.FixedPriceBahtExpense
	}
}

// overrideValue maps zero to "no override" so a reset always falls back
// to the computed default.
func overrideValue(a model.Amount) *model.Amount {
	if a.IsZero() {
		return nil
	}
	return &a
}

// AddItem appends a blank additional item to the report for key and
// returns its id. A key with no report is a no-op returning "".
func (s *Service) AddItem(key event.Key) (string, error) {
	itemID := id.New()
	applied, err := s.mutateReporting(key, func(r *model.SettlementReport) {
		r.AdditionalItems = append(r.AdditionalItems, model.AdditionalItem{ID: itemID})
	})
	if err != nil || !applied {
		return "", err
	}
	return itemID, nil
}

// RemoveItem deletes an additional item by id; absent ids are ignored.
func (s *Service) RemoveItem(key event.Key, itemID string) error {
	return s.mutate(key, func(r *model.SettlementReport) {
		kept := r.AdditionalItems[:0]
		for _, it := range r.AdditionalItems {
			if it.ID != itemID {
				kept = append(kept, it)
			}
		}
		r.AdditionalItems = kept
	})
}

// ItemPatch is a partial update of one additional item.
type ItemPatch struct {
	Name    *string
	Income  *model.Amount
	Expense *model.Amount
}

// UpdateItem edits an additional item in place, preserving its position.
func (s *Service) UpdateItem(key event.Key, itemID string, patch ItemPatch) error {
	return s.mutate(key, func(r *model.SettlementReport) {
		for i := range r.AdditionalItems {
			if r.AdditionalItems[i].ID != itemID {
				continue
			}
			if patch.Name != nil {
				r.AdditionalItems[i].Name = *patch.Name
			}
			if patch.Income != nil {
				r.AdditionalItems[i].Income = *patch.Income
			}
			if patch.Expense != nil {
				r.AdditionalItems[i].Expense = *patch.Expense
			}
			return
		}
	})
}

// GuidePatch is a partial update of the guide sub-ledger's flat fields.
type GuidePatch struct {
	TourFee         *model.Amount
	OptionSales     *model.Amount
	OtherIncome     *model.Amount
	EventCost       *model.Amount
	OptionCost      *model.Amount
	GuideDailyFee   *model.Amount
	GuideCommission *model.Amount
	OtherPayment    *model.Amount
}

// UpdateGuide merges a partial update into the guide sub-ledger.
func (s *Service) UpdateGuide(key event.Key, patch GuidePatch) error {
	return s.mutate(key, func(r *model.SettlementReport) {
		g := &r.Guide
		if patch.TourFee != nil {
			g.TourFee = *patch.TourFee
		}
		if patch.OptionSales != nil {
			g.OptionSales = *patch.OptionSales
		}
		if patch.OtherIncome != nil {
			g.OtherIncome = *patch.OtherIncome
		}
		if patch.EventCost != nil {
			g.EventCost = *patch.EventCost
		}
		if patch.OptionCost != nil {
			g.OptionCost = *patch.OptionCost
		}
		if patch.GuideDailyFee != nil {
			g.GuideDailyFee = *patch.GuideDailyFee
		}
		if patch.GuideCommission != nil {
			g.GuideCommission = *patch.GuideCommission
		}
		if patch.OtherPayment != nil {
			g.OtherPayment = *patch.OtherPayment
		}
	})
}

// AddGuideOption appends a blank guide option and returns its id. A key
// with no report is a no-op returning "".
func (s *Service) AddGuideOption(key event.Key) (string, error) {
	optionID := id.New()
	applied, err := s.mutateReporting(key, func(r *model.SettlementReport) {
		r.Guide.Options = append(r.Guide.Options, model.GuideOption{ID: optionID})
	})
	if err != nil || !applied {
		return "", err
	}
	return optionID, nil
}

// RemoveGuideOption deletes a guide option by id; absent ids are ignored.
func (s *Service) RemoveGuideOption(key event.Key, optionID string) error {
	return s.mutate(key, func(r *model.SettlementReport) {
		kept := r.Guide.Options[:0]
		for _, o := range r.Guide.Options {
			if o.ID != optionID {
				kept = append(kept, o)
			}
		}
		r.Guide.Options = kept
	})
}

// GuideOptionPatch is a partial update of one guide option.
type GuideOptionPatch struct {
	OptionName *string
	SalePrice  *model.Amount
	CostPrice  *model.Amount
	Vendor     *string
}

// UpdateGuideOption edits a guide option in place.
func (s *Service) UpdateGuideOption(key event.Key, optionID string, patch GuideOptionPatch) error {
	return s.mutate(key, func(r *model.SettlementReport) {
		for i := range r.Guide.Options {
			if r.Guide.Options[i].ID != optionID {
				continue
			}
			if patch.OptionName != nil {
				r.Guide.Options[i].OptionName = *patch.OptionName
			}
			if patch.SalePrice != nil {
				r.Guide.Options[i].SalePrice = *patch.SalePrice
			}
			if patch.CostPrice != nil {
				r.Guide.Options[i].CostPrice = *patch.CostPrice
			}
			if patch.Vendor != nil {
				r.Guide.Options[i].Vendor = *patch.Vendor
			}
			return
		}
	})
}

// Reset deletes every stored report, including orphans.
func (s *Service) Reset() error {
	return s.store.Delete(docstore.DocSettlements)
}

// mutate applies fn to the report for key and persists. No report for
// key means no-op, per the store's silent-degradation policy.
func (s *Service) mutate(key event.Key, fn func(*model.SettlementReport)) error {
	_, err := s.mutateReporting(key, fn)
	return err
}

func (s *Service) mutateReporting(key event.Key, fn func(*model.SettlementReport)) (bool, error) {
	reports, err := s.loadReports()
	if err != nil {
		return false, err
	}
	r, ok := reports[key.String()]
	if !ok {
		return false, nil
	}
	fn(&r)
	reports[key.String()] = r
	if err := s.saveReports(reports); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) saveReports(reports map[string]model.SettlementReport) error {
	body, err := encodeReports(reports)
	if err != nil {
		return fmt.Errorf("encoding settlements: %w", err)
	}
	return s.store.Save(docstore.DocSettlements, body)
}

func (s *Service) loadReports() (map[string]model.SettlementReport, error) {
	body, err := s.store.Load(docstore.DocSettlements)
	if err != nil {
		return nil, err
	}
	return decodeReports(body), nil
}
