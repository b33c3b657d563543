package model

import "time"

// Currency identifies one of the four ledger currencies.
type Currency string

const (
	CurrencyKRW Currency = "KRW"
	CurrencyBB  Currency = "BB"
	CurrencyKB  Currency = "KB"
	CurrencyUSD Currency = "USD"
)

// Currencies returns every ledger currency in display order.
func Currencies() []Currency {
	return []Currency{CurrencyKRW, CurrencyBB, CurrencyKB, CurrencyUSD}
}

// Pair is the income/expense amounts of one entry in one currency.
// Negative values are allowed and represent corrections.
type Pair struct {
	Income  Amount `json:"income"`
	Expense Amount `json:"expense"`
}

// Net returns income - expense.
func (p Pair) Net() Amount {
	return p.Income.Sub(p.Expense)
}

// Entry is a single raw transaction record. Entries are immutable once
// created; they leave the ledger only through an explicit delete or a
// bulk clear.
type Entry struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"` // YYYY-MM-DD text, never empty for a retained entry
	Client      string    `json:"client"`
	EventName   string    `json:"eventName"`
	EventDetail string    `json:"eventDetail"`
	Memo        string    `json:"memo"`
	CreatedAt   time.Time `json:"createdAt"`
	KRW         Pair      `json:"krw"`
	BB          Pair      `json:"bb"`
	KB          Pair      `json:"kb"`
	USD         Pair      `json:"usd"`
}

// Pair returns the entry's income/expense pair for the given currency.
func (e Entry) Pair(c Currency) Pair {
	switch c {
	case CurrencyKRW:
		return e.KRW
	case CurrencyBB:
		return e.BB
	case CurrencyKB:
		return e.KB
	case CurrencyUSD:
		return e.USD
	}
	return Pair{}
}

// Month returns the entry's YYYY-MM prefix, or "" when the date text is
// too short to carry one.
func (e Entry) Month() string {
	if len(e.Date) < 7 {
		return ""
	}
	return e.Date[:7]
}
