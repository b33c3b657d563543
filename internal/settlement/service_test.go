package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourledger-dev/tourledger/internal/docstore"
)

func TestEnsureDefaults_Idempotent(t *testing.T) {
	svc, _ := newTestService(t)
	key := tripKey()

	require.NoError(t, svc.EnsureDefaults(key, "Summer Trip"))

	// A second ensure must not clobber accumulated state.
	require.NoError(t, svc.UpdateField(key, FieldPatch{FixedPriceBahtIncome: amtPtr("500")}))
	require.NoError(t, svc.EnsureDefaults(key, "Renamed"))

	r, ok, err := svc.Report(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Summer Trip", r.Name)
	assert.True(t, r.FixedPriceBahtIncome.Equal(amt("500")))
}

func TestUpdateField_NoReportIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.UpdateField(tripKey(), FieldPatch{FixedPriceBahtIncome: amtPtr("500")}))

	_, ok, err := svc.Report(tripKey())
	require.NoError(t, err)
	assert.False(t, ok, "update must not create a report")
}

func TestUpdateField_PartialMerge(t *testing.T) {
	svc, _ := newTestService(t)
	key := tripKey()
	require.NoError(t, svc.EnsureDefaults(key, "Summer Trip"))

	require.NoError(t, svc.UpdateField(key, FieldPatch{FixedPriceKRWIncome: amtPtr("4000")}))
	require.NoError(t, svc.UpdateField(key, FieldPatch{BahtExchangeRateIncome: amtPtr("0.025")}))

	r, _, err := svc.Report(key)
	require.NoError(t, err)
	require.NotNil(t, r.FixedPriceKRWIncome)
	assert.True(t, r.FixedPriceKRWIncome.Equal(amt("4000")), "earlier field survives later patch")
	assert.True(t, r.BahtExchangeRateIncome.Equal(amt("0.025")))
}

func TestUpdateField_ZeroClearsKRWOverride(t *testing.T) {
	svc, _ := newTestService(t)
	key := tripKey()
	require.NoError(t, svc.EnsureDefaults(key, "Summer Trip"))

	require.NoError(t, svc.UpdateField(key, FieldPatch{FixedPriceKRWIncome: amtPtr("4000")}))
	r, _, err := svc.Report(key)
	require.NoError(t, err)
	assert.True(t, r.HasKRWIncomeOverride())

	require.NoError(t, svc.UpdateField(key, FieldPatch{FixedPriceKRWIncome: amtPtr("0")}))
	r, _, err = svc.Report(key)
	require.NoError(t, err)
	assert.False(t, r.HasKRWIncomeOverride(), "zero resets to the computed default")
	assert.Nil(t, r.FixedPriceKRWIncome)
}

func TestAdditionalItems_OrderAndEdits(t *testing.T) {
	svc, _ := newTestService(t)
	key := tripKey()
	require.NoError(t, svc.EnsureDefaults(key, "Summer Trip"))

	first, err := svc.AddItem(key)
	require.NoError(t, err)
	second, err := svc.AddItem(key)
	require.NoError(t, err)
	third, err := svc.AddItem(key)
	require.NoError(t, err)

	name := "hotel upgrade"
	require.NoError(t, svc.UpdateItem(key, second, ItemPatch{Name: &name, Income: amtPtr("120")}))
	require.NoError(t, svc.RemoveItem(key, first))
	require.NoError(t, svc.RemoveItem(key, "no-such-item"))

	r, _, err := svc.Report(key)
	require.NoError(t, err)
	require.Len(t, r.AdditionalItems, 2)
	assert.Equal(t, second, r.AdditionalItems[0].ID, "insertion order preserved after delete")
	assert.Equal(t, "hotel upgrade", r.AdditionalItems[0].Name)
	assert.True(t, r.AdditionalItems[0].Income.Equal(amt("120")))
	assert.Equal(t, third, r.AdditionalItems[1].ID)
	assert.True(t, r.AdditionalItems[1].Income.IsZero(), "new items start zeroed")
}

func TestAddItem_NoReportIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)

	itemID, err := svc.AddItem(tripKey())
	require.NoError(t, err)
	assert.Empty(t, itemID)
}

func TestGuideOptions(t *testing.T) {
	svc, _ := newTestService(t)
	key := tripKey()
	require.NoError(t, svc.EnsureDefaults(key, "Summer Trip"))

	optionID, err := svc.AddGuideOption(key)
	require.NoError(t, err)

	name := "snorkeling"
	vendor := "Blue Marine"
	require.NoError(t, svc.UpdateGuideOption(key, optionID, GuideOptionPatch{
		OptionName: &name,
		SalePrice:  amtPtr("1500"),
		CostPrice:  amtPtr("900"),
		Vendor:     &vendor,
	}))

	r, _, err := svc.Report(key)
	require.NoError(t, err)
	require.Len(t, r.Guide.Options, 1)
	assert.Equal(t, "snorkeling", r.Guide.Options[0].OptionName)
	assert.Equal(t, "Blue Marine", r.Guide.Options[0].Vendor)

	require.NoError(t, svc.RemoveGuideOption(key, optionID))
	r, _, err = svc.Report(key)
	require.NoError(t, err)
	assert.Empty(t, r.Guide.Options)
}

func TestReports_SurviveEntryDeletion(t *testing.T) {
	svc, src := newTestService(t, tripEntry("a", "2026-02-02", "Summer Trip", "1000", "0", "0", "0"))
	key := tripKey()
	require.NoError(t, svc.EnsureDefaults(key, "Summer Trip"))

	// All source entries disappear; the report is orphaned, not deleted.
	src.entries = nil

	_, ok, err := svc.Report(key)
	require.NoError(t, err)
	assert.True(t, ok)

	keys, err := svc.Keys()
	require.NoError(t, err)
	assert.Contains(t, keys, key.String())
}

func TestDecodeReports_Defensive(t *testing.T) {
	store, err := docstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	svc := NewService(store, &stubEntries{})

	require.NoError(t, store.Save(docstore.DocSettlements, []byte(`["not","an","object"]`)))
	keys, err := svc.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	doc := `{"2026-02::good":{"name":"Good"},"2026-02::bad":[1,2]}`
	require.NoError(t, store.Save(docstore.DocSettlements, []byte(doc)))
	keys, err = svc.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-02::good"}, keys)
}
