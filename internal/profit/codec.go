package profit

import (
	"encoding/json"
	"log/slog"

	"github.com/tourledger-dev/tourledger/internal/model"
)

// decodeState tolerates a malformed document: a non-object root (or
// malformed incomes map) degrades to empty state, and non-coercible
// expense elements are dropped.
func decodeState(body []byte) model.ProfitState {
	state := model.NewProfitState()
	if len(body) == 0 {
		return state
	}

	var raw struct {
		Incomes  map[string]json.RawMessage `json:"incomes"`
		Expenses []json.RawMessage          `json:"expenses"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		slog.Warn("profit document is not an object, starting empty", "error", err)
		return state
	}

	for k, r := range raw.Incomes {
		var rec model.IncomeRecord
		if err := json.Unmarshal(r, &rec); err != nil {
			slog.Warn("dropping malformed income record", "key", k, "error", err)
			continue
		}
		state.Incomes[k] = rec
	}
	for i, r := range raw.Expenses {
		var e model.Expense
		if err := json.Unmarshal(r, &e); err != nil {
			slog.Warn("dropping malformed expense record", "index", i, "error", err)
			continue
		}
		state.Expenses = append(state.Expenses, e)
	}
	return state
}

func encodeState(state model.ProfitState) ([]byte, error) {
	if state.Incomes == nil {
		state.Incomes = make(map[string]model.IncomeRecord)
	}
	if state.Expenses == nil {
		state.Expenses = []model.Expense{}
	}
	return json.MarshalIndent(state, "", "  ")
}
