package settlement

import (
	"github.com/tourledger-dev/tourledger/internal/event"
	"github.com/tourledger-dev/tourledger/internal/model"
)

// Field names a report scalar that supports staged edits.
type Field string

const (
	FieldName            Field = "name"
	FieldFixedKRWIncome  Field = "fixedPriceKRWIncome"
	FieldRateIncome      Field = "bahtExchangeRateIncome"
	FieldFixedBahtIncome Field = "fixedPriceBahtIncome"

	FieldFixedKRWExpense  Field = "fixedPriceKRWExpense"
	FieldRateExpense      Field = "bahtExchangeRateExpense"
	FieldFixedBahtExpense Field = "fixedPriceBahtExpense"
)

type draftRef struct {
	key   string
	field Field
}

// StageEdit records an in-progress field edit without persisting it.
// Staged text lives only in memory: a process exit before CommitEdit
// discards it, mirroring the keystroke-then-blur model of the ledger's
// table fields.
func (s *Service) StageEdit(key event.Key, field Field, text string) {
	s.drafts[draftRef{key.String(), field}] = text
}

// Draft returns the staged text for a field, if any.
func (s *Service) Draft(key event.Key, field Field) (string, bool) {
	text, ok := s.drafts[draftRef{key.String(), field}]
	return text, ok
}

// CommitEdit parses the staged text for a field and persists it.
// Unparsable numeric text commits as zero. Nothing staged means no-op.
//
// Committing an exchange rate additionally recomputes the corresponding
// Baht fixed price as displayedKRWFixedPrice * rate when both are
// positive, and persists the pair as one update.
func (s *Service) CommitEdit(key event.Key, field Field) error {
	ref := draftRef{key.String(), field}
	text, ok := s.drafts[ref]
	if !ok {
		return nil
	}
	delete(s.drafts, ref)

	if field == FieldName {
		return s.UpdateField(key, FieldPatch{Name: &text})
	}

	amt := model.AmountFromString(text)
	patch := FieldPatch{}
	switch field {
	case FieldFixedKRWIncome:
		patch.FixedPriceKRWIncome = &amt
	case FieldFixedBahtIncome:
		patch.FixedPriceBahtIncome = &amt
	case FieldFixedKRWExpense:
		patch.FixedPriceKRWExpense = &amt
	case FieldFixedBahtExpense:
		patch.FixedPriceBahtExpense = &amt
	case FieldRateIncome, FieldRateExpense:
		return s.commitRate(key, field, amt)
	default:
		return nil
	}
	return s.UpdateField(key, patch)
}

func (s *Service) commitRate(key event.Key, field Field, rate model.Amount) error {
	sum, err := s.Summary(key)
	if err != nil {
		return err
	}

	patch := FieldPatch{}
	switch field {
	case FieldRateIncome:
		patch.BahtExchangeRateIncome = &rate
		if rate.IsPositive() && sum.DisplayFixedKRWIncome.IsPositive() {
			fixed := sum.DisplayFixedKRWIncome.Mul(rate)
			patch.FixedPriceBahtIncome = &fixed
		}
	case FieldRateExpense:
		patch.BahtExchangeRateExpense = &rate
		if rate.IsPositive() && sum.DisplayFixedKRWExpense.IsPositive() {
			fixed := sum.DisplayFixedKRWExpense.Mul(rate)
			patch.FixedPriceBahtExpense = &fixed
		}
	}
	return s.UpdateField(key, patch)
}
