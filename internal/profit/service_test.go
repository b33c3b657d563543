package profit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourledger-dev/tourledger/internal/docstore"
	"github.com/tourledger-dev/tourledger/internal/entry"
	"github.com/tourledger-dev/tourledger/internal/event"
	"github.com/tourledger-dev/tourledger/internal/model"
	"github.com/tourledger-dev/tourledger/internal/settlement"
)

func amt(s string) model.Amount {
	return model.AmountFromString(s)
}

func amtPtr(s string) *model.Amount {
	a := amt(s)
	return &a
}

// newTestServices wires entry, settlement and profit services over one
// file store, the same composition the CLI uses.
func newTestServices(t *testing.T) (*Service, *entry.Service, *settlement.Service) {
	t.Helper()
	store, err := docstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	entries := entry.NewService(store)
	settlements := settlement.NewService(store, entries)
	return NewService(store, entries, settlements), entries, settlements
}

func addTrip(t *testing.T, entries *entry.Service, date, name, bbIn, bbOut string) model.Entry {
	t.Helper()
	e, err := entries.Add(entry.AddParams{
		Date:      date,
		Client:    "Kim",
		EventName: name,
		BB:        model.Pair{Income: amt(bbIn), Expense: amt(bbOut)},
	})
	require.NoError(t, err)
	require.NotNil(t, e)
	return *e
}

func TestSync_CreatesEnabledRecords(t *testing.T) {
	svc, entries, _ := newTestServices(t)
	addTrip(t, entries, "2026-02-02", "Summer Trip", "100", "0")
	addTrip(t, entries, "2026-02-10", "Island Tour", "50", "0")

	require.NoError(t, svc.Sync())

	state, err := svc.State()
	require.NoError(t, err)
	require.Len(t, state.Incomes, 2)

	key := event.NewKey("Summer Trip", "2026-02-02").String()
	rec := state.Incomes[key]
	assert.True(t, rec.Enabled, "new records start enabled")
	assert.Nil(t, rec.AmountOverride)
	assert.Equal(t, "Summer Trip", rec.EventName)
	assert.Equal(t, "2026-02", rec.Month)
}

func TestSync_RefreshKeepsFlags(t *testing.T) {
	svc, entries, _ := newTestServices(t)
	addTrip(t, entries, "2026-02-02", "Summer Trip", "100", "0")

	require.NoError(t, svc.Sync())
	key := event.NewKey("Summer Trip", "2026-02-02")
	require.NoError(t, svc.SetEnabled(key, false))
	require.NoError(t, svc.SetOverride(key, amtPtr("777")))

	require.NoError(t, svc.Sync())

	state, err := svc.State()
	require.NoError(t, err)
	rec := state.Incomes[key.String()]
	assert.False(t, rec.Enabled, "resync must not re-enable")
	require.NotNil(t, rec.AmountOverride)
	assert.True(t, rec.AmountOverride.Equal(amt("777")))
}

func TestTotal_SumsEnabledEventsAndExpenses(t *testing.T) {
	svc, entries, settlements := newTestServices(t)

	// Two events with computed profits 3000 and -500.
	addTrip(t, entries, "2026-02-02", "Summer Trip", "3000", "0")
	addTrip(t, entries, "2026-02-10", "Island Tour", "0", "500")
	require.NoError(t, settlements.EnsureDefaults(event.NewKey("Summer Trip", "2026-02-02"), "Summer Trip"))
	require.NoError(t, settlements.EnsureDefaults(event.NewKey("Island Tour", "2026-02-10"), "Island Tour"))

	require.NoError(t, svc.Sync())

	expenseID, err := svc.AddExpense()
	require.NoError(t, err)
	label := "rent"
	require.NoError(t, svc.UpdateExpense(expenseID, ExpensePatch{Label: &label, Amount: amtPtr("200")}))

	total, err := svc.Total()
	require.NoError(t, err)
	assert.True(t, total.TotalIncome.Equal(amt("2500")))
	assert.True(t, total.TotalExpense.Equal(amt("200")))
	assert.True(t, total.TotalProfit.Equal(amt("2300")))
	require.Len(t, total.Lines, 2)
}

func TestTotal_DisabledEventExcluded(t *testing.T) {
	svc, entries, _ := newTestServices(t)
	addTrip(t, entries, "2026-02-02", "Summer Trip", "3000", "0")
	require.NoError(t, svc.Sync())

	key := event.NewKey("Summer Trip", "2026-02-02")
	require.NoError(t, svc.SetEnabled(key, false))

	total, err := svc.Total()
	require.NoError(t, err)
	assert.True(t, total.TotalIncome.IsZero())
	assert.Empty(t, total.Lines)
}

func TestTotal_OverrideReplacesComputedProfit(t *testing.T) {
	svc, entries, _ := newTestServices(t)
	addTrip(t, entries, "2026-02-02", "Summer Trip", "3000", "0")
	require.NoError(t, svc.Sync())

	key := event.NewKey("Summer Trip", "2026-02-02")
	require.NoError(t, svc.SetOverride(key, amtPtr("1234")))

	total, err := svc.Total()
	require.NoError(t, err)
	assert.True(t, total.TotalIncome.Equal(amt("1234")))
	require.Len(t, total.Lines, 1)
	assert.True(t, total.Lines[0].Overridden)

	// Clearing the override resumes the computed settlement profit.
	require.NoError(t, svc.SetOverride(key, nil))
	total, err = svc.Total()
	require.NoError(t, err)
	assert.True(t, total.TotalIncome.Equal(amt("3000")))
}

func TestTotal_OrphanedKeyExcludedButRetained(t *testing.T) {
	svc, entries, _ := newTestServices(t)
	e := addTrip(t, entries, "2026-02-02", "Summer Trip", "3000", "0")
	require.NoError(t, svc.Sync())

	require.NoError(t, entries.Delete(e.ID))

	total, err := svc.Total()
	require.NoError(t, err)
	assert.True(t, total.TotalIncome.IsZero(), "orphaned keys contribute nothing")

	state, err := svc.State()
	require.NoError(t, err)
	assert.Len(t, state.Incomes, 1, "the record itself is retained")
}

func TestExpenses_AddUpdateRemove(t *testing.T) {
	svc, _, _ := newTestServices(t)

	first, err := svc.AddExpense()
	require.NoError(t, err)
	second, err := svc.AddExpense()
	require.NoError(t, err)

	label := "rent"
	require.NoError(t, svc.UpdateExpense(first, ExpensePatch{Label: &label, Amount: amtPtr("200")}))
	require.NoError(t, svc.RemoveExpense(second))
	require.NoError(t, svc.RemoveExpense("no-such-expense"))

	state, err := svc.State()
	require.NoError(t, err)
	require.Len(t, state.Expenses, 1)
	assert.Equal(t, "rent", state.Expenses[0].Label)
	assert.True(t, state.Expenses[0].Amount.Equal(amt("200")))
}

func TestExpenseEdit_StagedUntilCommit(t *testing.T) {
	svc, _, _ := newTestServices(t)

	expenseID, err := svc.AddExpense()
	require.NoError(t, err)

	svc.StageExpenseEdit(expenseID, "450")

	state, err := svc.State()
	require.NoError(t, err)
	assert.True(t, state.Expenses[0].Amount.IsZero(), "draft not yet persisted")

	require.NoError(t, svc.CommitExpenseEdit(expenseID))
	state, err = svc.State()
	require.NoError(t, err)
	assert.True(t, state.Expenses[0].Amount.Equal(amt("450")))

	// Committing again with no staged draft changes nothing.
	require.NoError(t, svc.CommitExpenseEdit(expenseID))
}

func TestSetEnabled_UnknownKeyIsNoOp(t *testing.T) {
	svc, _, _ := newTestServices(t)
	require.NoError(t, svc.SetEnabled(event.NewKey("Ghost", "2026-01-01"), false))

	state, err := svc.State()
	require.NoError(t, err)
	assert.Empty(t, state.Incomes)
}

func TestState_MalformedDocumentDegradesToEmpty(t *testing.T) {
	store, err := docstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	entries := entry.NewService(store)
	settlements := settlement.NewService(store, entries)
	svc := NewService(store, entries, settlements)

	require.NoError(t, store.Save(docstore.DocProfit, []byte(`[1,2,3]`)))

	state, err := svc.State()
	require.NoError(t, err)
	assert.Empty(t, state.Incomes)
	assert.Empty(t, state.Expenses)

	bad := `{"incomes":{"k":"nope","2026-02::ok":{"eventName":"Ok","month":"2026-02","enabled":true}},"expenses":[{"id":"e1","label":"rent","amount":200},"junk"]}`
	require.NoError(t, store.Save(docstore.DocProfit, []byte(bad)))

	state, err = svc.State()
	require.NoError(t, err)
	require.Len(t, state.Incomes, 1)
	assert.Equal(t, "Ok", state.Incomes["2026-02::ok"].EventName)
	require.Len(t, state.Expenses, 1)
	assert.Equal(t, "rent", state.Expenses[0].Label)
}
