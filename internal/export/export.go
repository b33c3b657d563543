// Package export renders the ledger, settlements and profit rollup as
// CSV. Output starts with a UTF-8 byte-order mark so spreadsheet tools
// pick the right encoding; quoting and quote-doubling follow the CSV
// rules of encoding/csv.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tourledger-dev/tourledger/internal/balance"
	"github.com/tourledger-dev/tourledger/internal/entry"
	"github.com/tourledger-dev/tourledger/internal/model"
	"github.com/tourledger-dev/tourledger/internal/profit"
	"github.com/tourledger-dev/tourledger/internal/settlement"
)

const bom = "\uFEFF"

var entryHeader = []string{
	"date", "client", "event", "detail", "memo",
	"krw_income", "krw_expense",
	"bb_income", "bb_expense",
	"kb_income", "kb_expense",
	"usd_income", "usd_expense",
}

// Ledger writes every entry newest-first, each row carrying its running
// post-transaction balance per currency. Balances are computed over the
// whole ledger regardless of display order.
func Ledger(w io.Writer, entries []model.Entry) error {
	if err := writeBOM(w); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"date", "client", "event", "detail", "memo"}
	for _, c := range model.Currencies() {
		p := prefix(c)
		header = append(header, p+"_income", p+"_expense", p+"_balance")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	balances := balance.Running(entries)
	for _, e := range entry.SortForDisplay(entries) {
		row := []string{e.Date, e.Client, e.EventName, e.EventDetail, e.Memo}
		for _, c := range model.Currencies() {
			p := e.Pair(c)
			row = append(row, p.Income.String(), p.Expense.String(), balances.At(c, e.ID).String())
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing entry row: %w", err)
		}
	}
	return cw.Error()
}

// Month writes the entries of one YYYY-MM month, newest-first.
func Month(w io.Writer, entries []model.Entry, month string) error {
	if err := writeBOM(w); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(entryHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, e := range entry.SortForDisplay(entries) {
		if e.Month() != month {
			continue
		}
		if err := cw.Write(entryRow(e)); err != nil {
			return fmt.Errorf("writing entry row: %w", err)
		}
	}
	return cw.Error()
}

// Settlement writes one report: the meta totals row, then the raw entry
// rows for the event, then the additional-items block in insertion
// order.
func Settlement(w io.Writer, sum settlement.Summary, report model.SettlementReport, entries []model.Entry) error {
	if err := writeBOM(w); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	defer cw.Flush()

	meta := [][]string{
		{"event", "month", "fixed_krw_income", "fixed_baht_income", "fixed_krw_expense",
			"fixed_baht_expense", "total_income", "total_expense", "total_profit"},
		{sum.Name, sum.Key.Month,
			sum.DisplayFixedKRWIncome.String(), sum.BahtFixedIncome.String(),
			sum.DisplayFixedKRWExpense.String(), sum.BahtFixedExpense.String(),
			sum.TotalIncome.String(), sum.TotalExpense.String(), sum.TotalProfit.String()},
		{},
	}
	for _, row := range meta {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing meta row: %w", err)
		}
	}

	if err := cw.Write(entryHeader); err != nil {
		return fmt.Errorf("writing entries header: %w", err)
	}
	for _, e := range entry.SortForDisplay(entries) {
		if err := cw.Write(entryRow(e)); err != nil {
			return fmt.Errorf("writing entry row: %w", err)
		}
	}

	if err := cw.Write(nil); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	if err := cw.Write([]string{"item", "income", "expense"}); err != nil {
		return fmt.Errorf("writing items header: %w", err)
	}
	for _, it := range report.AdditionalItems {
		if err := cw.Write([]string{it.Name, it.Income.String(), it.Expense.String()}); err != nil {
			return fmt.Errorf("writing item row: %w", err)
		}
	}
	return cw.Error()
}

// Profit writes the period rollup: one row per contributing event, the
// manual expenses, and the totals.
func Profit(w io.Writer, t profit.Total, state model.ProfitState) error {
	if err := writeBOM(w); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"event", "month", "amount", "overridden"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, line := range t.Lines {
		overridden := ""
		if line.Overridden {
			overridden = "yes"
		}
		if err := cw.Write([]string{line.EventName, line.Month, line.Amount.String(), overridden}); err != nil {
			return fmt.Errorf("writing income row: %w", err)
		}
	}

	if err := cw.Write(nil); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	if err := cw.Write([]string{"expense", "amount"}); err != nil {
		return fmt.Errorf("writing expenses header: %w", err)
	}
	for _, e := range state.Expenses {
		if err := cw.Write([]string{e.Label, e.Amount.String()}); err != nil {
			return fmt.Errorf("writing expense row: %w", err)
		}
	}

	totals := [][]string{
		nil,
		{"total_income", t.TotalIncome.String()},
		{"total_expense", t.TotalExpense.String()},
		{"total_profit", t.TotalProfit.String()},
	}
	for _, row := range totals {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing totals row: %w", err)
		}
	}
	return cw.Error()
}

func entryRow(e model.Entry) []string {
	row := []string{e.Date, e.Client, e.EventName, e.EventDetail, e.Memo}
	for _, c := range model.Currencies() {
		p := e.Pair(c)
		row = append(row, p.Income.String(), p.Expense.String())
	}
	return row
}

func prefix(c model.Currency) string {
	switch c {
	case model.CurrencyKRW:
		return "krw"
	case model.CurrencyBB:
		return "bb"
	case model.CurrencyKB:
		return "kb"
	case model.CurrencyUSD:
		return "usd"
	}
	return string(c)
}

func writeBOM(w io.Writer) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return fmt.Errorf("writing byte-order mark: %w", err)
	}
	return nil
}
