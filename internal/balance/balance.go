// Package balance computes ledger-wide running balances. A balance is a
// property of the whole ledger, not of whatever subset happens to be on
// screen, so the running sums are always taken over every entry.
package balance

import (
	"sort"

	"github.com/tourledger-dev/tourledger/internal/model"
)

// Table maps currency and entry id to the post-transaction running
// balance of that entry.
type Table map[model.Currency]map[string]model.Amount

// At returns the running balance for one entry in one currency. Unknown
// ids read as zero.
func (t Table) At(c model.Currency, entryID string) model.Amount {
	return t[c][entryID]
}

// Running walks all entries oldest-first (date ascending, ties broken by
// earliest creation) accumulating income - expense per currency, and
// records the running value against each entry. Display order is
// independent: a table rendered newest-first still shows each row's
// balance as of that row in chronological order.
func Running(entries []model.Entry) Table {
	ordered := sortChronological(entries)

	t := make(Table, len(model.Currencies()))
	for _, c := range model.Currencies() {
		balances := make(map[string]model.Amount, len(ordered))
		var running model.Amount
		for _, e := range ordered {
			running = running.Add(e.Pair(c).Net())
			balances[e.ID] = running
		}
		t[c] = balances
	}
	return t
}

func sortChronological(entries []model.Entry) []model.Entry {
	out := make([]model.Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
