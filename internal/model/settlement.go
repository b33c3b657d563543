package model

// AdditionalItem is one ad-hoc income/expense line attached to a
// settlement report, outside the raw ledger.
type AdditionalItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Income  Amount `json:"income"`
	Expense Amount `json:"expense"`
}

// GuideOption is one optional-tour sale line in the guide sub-ledger.
type GuideOption struct {
	ID         string `json:"id"`
	OptionName string `json:"optionName"`
	SalePrice  Amount `json:"salePrice"`
	CostPrice  Amount `json:"costPrice"`
	Vendor     string `json:"vendor"`
}

// GuideLedger is the per-event guide sub-ledger. Its totals are reported
// alongside the settlement summary but never fold into the settlement
// profit.
type GuideLedger struct {
	TourFee         Amount        `json:"tourFee"`
	OptionSales     Amount        `json:"optionSales"`
	OtherIncome     Amount        `json:"otherIncome"`
	EventCost       Amount        `json:"eventCost"`
	OptionCost      Amount        `json:"optionCost"`
	GuideDailyFee   Amount        `json:"guideDailyFee"`
	GuideCommission Amount        `json:"guideCommission"`
	OtherPayment    Amount        `json:"otherPayment"`
	Options         []GuideOption `json:"options"`
}

// SettlementReport is the manually-curated overlay for one event key:
// confirmed fixed prices, exchange rates, ad-hoc items, and the guide
// sub-ledger. Reports are created lazily and survive deletion of their
// source entries until a full reset.
//
// The fixed KRW prices are optional overrides: a nil (or zero) value
// means "derive the displayed figure from the live ledger KRW sums".
type SettlementReport struct {
	Name string `json:"name"`

	FixedPriceKRWIncome    *Amount `json:"fixedPriceKRWIncome,omitempty"`
	BahtExchangeRateIncome Amount  `json:"bahtExchangeRateIncome"`
	FixedPriceBahtIncome   Amount  `json:"fixedPriceBahtIncome"`

	FixedPriceKRWExpense    *Amount `json:"fixedPriceKRWExpense,omitempty"`
	BahtExchangeRateExpense Amount  `json:"bahtExchangeRateExpense"`
	FixedPriceBahtExpense   Amount  `json:"fixedPriceBahtExpense"`

	AdditionalItems []AdditionalItem `json:"additionalItems"`
	Guide           GuideLedger      `json:"guide"`
}

// HasKRWIncomeOverride reports whether a confirmed income-side KRW price
// supersedes the computed ledger sum.
func (r SettlementReport) HasKRWIncomeOverride() bool {
	return r.FixedPriceKRWIncome != nil && !r.FixedPriceKRWIncome.IsZero()
}

// HasKRWExpenseOverride reports whether a confirmed expense-side KRW
// price supersedes the computed ledger sum.
func (r SettlementReport) HasKRWExpenseOverride() bool {
	return r.FixedPriceKRWExpense != nil && !r.FixedPriceKRWExpense.IsZero()
}
