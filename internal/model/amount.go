package model

import "github.com/shopspring/decimal"

// Amount is a money value (or exchange rate) as stored in the ledger
// documents. Unlike a bare decimal it never fails to decode: malformed
// persisted values come back as zero instead of poisoning the whole
// document.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal as an Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{d}
}

// AmountFromString parses s as a decimal, returning zero for anything
// unparsable.
func AmountFromString(s string) Amount {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}
	return Amount{d}
}

// AmountFromInt returns an Amount for an integer value.
func AmountFromInt(n int64) Amount {
	return Amount{decimal.NewFromInt(n)}
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{a.Decimal.Add(b.Decimal)}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{a.Decimal.Sub(b.Decimal)}
}

// Mul returns a * b.
func (a Amount) Mul(b Amount) Amount {
	return Amount{a.Decimal.Mul(b.Decimal)}
}

// Equal reports whether two amounts represent the same value.
func (a Amount) Equal(b Amount) bool {
	return a.Decimal.Equal(b.Decimal)
}

// UnmarshalJSON accepts a JSON number or numeric string; anything else
// decodes as zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}
