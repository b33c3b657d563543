package model

// IncomeRecord is the rollup configuration for one event key: whether it
// contributes to the monthly profit, and an optional manual amount that
// replaces the computed settlement profit.
type IncomeRecord struct {
	EventName      string  `json:"eventName"`
	Month          string  `json:"month"`
	Enabled        bool    `json:"enabled"`
	AmountOverride *Amount `json:"amountOverride"`
}

// Expense is one manually-entered period expense, unrelated to any event.
type Expense struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Amount Amount `json:"amount"`
}

// ProfitState is the cross-event rollup document: one income record per
// event key ever seen, plus the ordered manual expense list.
type ProfitState struct {
	Incomes  map[string]IncomeRecord `json:"incomes"`
	Expenses []Expense               `json:"expenses"`
}

// NewProfitState returns an empty rollup state.
func NewProfitState() ProfitState {
	return ProfitState{Incomes: make(map[string]IncomeRecord)}
}
