package settlement

import (
	"github.com/tourledger-dev/tourledger/internal/event"
	"github.com/tourledger-dev/tourledger/internal/model"
)

// Summary is the computed settlement for one event key. The totals are
// driven by the Baht side: fixed Baht prices, the entries' BB+KB sums,
// and the additional items. The KRW sums are informational only — they
// seed the displayed fixed-KRW default and help the user derive a Baht
// conversion, but never enter the totals themselves.
type Summary struct {
	Key  event.Key
	Name string

	KRWIncomeSum  model.Amount
	KRWExpenseSum model.Amount

	// Displayed fixed KRW prices: the stored override when one is set,
	// otherwise the live ledger KRW sum.
	DisplayFixedKRWIncome  model.Amount
	DisplayFixedKRWExpense model.Amount

	BahtIncomeFromEntries  model.Amount
	BahtExpenseFromEntries model.Amount
	BahtFixedIncome        model.Amount
	BahtFixedExpense       model.Amount
	AdditionalIncome       model.Amount
	AdditionalExpense      model.Amount

	TotalIncome  model.Amount
	TotalExpense model.Amount
	TotalProfit  model.Amount

	Guide GuideSummary
}

// GuideSummary is the independent guide sub-ledger result. It is
// reported alongside the settlement but never folds into TotalProfit.
type GuideSummary struct {
	Income  model.Amount
	Expense model.Amount
	Profit  model.Amount
}

// Summary computes the settlement for key from the current ledger
// entries and the stored report. A key with no report computes against a
// zero-valued one.
func (s *Service) Summary(key event.Key) (Summary, error) {
	entries, err := s.entries.List()
	if err != nil {
		return Summary{}, err
	}
	report, _, err := s.Report(key)
	if err != nil {
		return Summary{}, err
	}
	return computeSummary(key, report, event.EntriesForKey(entries, key)), nil
}

func computeSummary(key event.Key, report model.SettlementReport, list []model.Entry) Summary {
	sum := Summary{Key: key, Name: report.Name}

	for _, e := range list {
		sum.KRWIncomeSum = sum.KRWIncomeSum.Add(e.KRW.Income)
		sum.KRWExpenseSum = sum.KRWExpenseSum.Add(e.KRW.Expense)
		sum.BahtIncomeFromEntries = sum.BahtIncomeFromEntries.Add(e.BB.Income).Add(e.KB.Income)
		sum.BahtExpenseFromEntries = sum.BahtExpenseFromEntries.Add(e.BB.Expense).Add(e.KB.Expense)
	}

	sum.DisplayFixedKRWIncome = sum.KRWIncomeSum
	if report.HasKRWIncomeOverride() {
		sum.DisplayFixedKRWIncome = *report.FixedPriceKRWIncome
	}
	sum.DisplayFixedKRWExpense = sum.KRWExpenseSum
	if report.HasKRWExpenseOverride() {
		sum.DisplayFixedKRWExpense = *report.FixedPriceKRWExpense
	}

	sum.BahtFixedIncome = report.FixedPriceBahtIncome
	sum.BahtFixedExpense = report.FixedPriceBahtExpense

	for _, it := range report.AdditionalItems {
		sum.AdditionalIncome = sum.AdditionalIncome.Add(it.Income)
		sum.AdditionalExpense = sum.AdditionalExpense.Add(it.Expense)
	}

	sum.TotalIncome = sum.BahtFixedIncome.Add(sum.BahtIncomeFromEntries).Add(sum.AdditionalIncome)
	sum.TotalExpense = sum.BahtFixedExpense.Add(sum.BahtExpenseFromEntries).Add(sum.AdditionalExpense)
	sum.TotalProfit = sum.TotalIncome.Sub(sum.TotalExpense)

	sum.Guide = guideSummary(report.Guide)
	return sum
}

func guideSummary(g model.GuideLedger) GuideSummary {
	income := g.TourFee.Add(g.OptionSales).Add(g.OtherIncome)
	expense := g.EventCost.Add(g.OptionCost).Add(g.GuideDailyFee).
		Add(g.GuideCommission).Add(g.OtherPayment)
	return GuideSummary{
		Income:  income,
		Expense: expense,
		Profit:  income.Sub(expense),
	}
}
