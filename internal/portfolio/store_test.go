package portfolio

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/odemir/folio/internal/localstore"
	"github.com/odemir/folio/internal/models"
)

type fakeRates struct {
	table models.RateTable
	err   error
}

func (f *fakeRates) Rates(ctx context.Context) (models.RateTable, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.table, nil
}

func testStore(t *testing.T) (*Store, *localstore.Store) {
	t.Helper()
	local, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	store, err := Open(local, &fakeRates{table: models.NewRateTable()}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store, local
}

func TestOpen_CreatesDefaultPortfolio(t *testing.T) {
	store, _ := testStore(t)

	portfolios := store.Portfolios()
	require.Len(t, portfolios, 1)
	assert.Equal(t, "Main", portfolios[0].Name)
	assert.Equal(t, portfolios[0].ID, store.Current().ID)
	assert.Equal(t, "TRY", store.Currency())
}

func TestStore_StateSurvivesReopen(t *testing.T) {
	store, local := testStore(t)

	created, err := store.CreatePortfolio("Savings")
	require.NoError(t, err)
	_, err = store.AddAsset("BTC", decimal.NewFromFloat(0.5), decimal.NewFromInt(1000000), "crypto")
	require.NoError(t, err)
	store.Close()

	reopened, err := Open(local, &fakeRates{table: models.NewRateTable()}, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	assert.Len(t, reopened.Portfolios(), 2)
	assert.Equal(t, created.ID, reopened.Current().ID)
	require.Len(t, reopened.Current().Assets, 1)
	assert.Equal(t, "BTC", reopened.Current().Assets[0].Symbol)
}

func TestDeletePortfolio_RefusesLast(t *testing.T) {
	store, _ := testStore(t)

	err := store.DeletePortfolio(store.Current().ID)
	assert.True(t, errors.Is(err, ErrLastPortfolio))
	assert.Len(t, store.Portfolios(), 1)
}

func TestDeletePortfolio_ReassignsActivePointer(t *testing.T) {
	store, _ := testStore(t)

	second, err := store.CreatePortfolio("Second")
	require.NoError(t, err)
	require.Equal(t, second.ID, store.Current().ID)

	require.NoError(t, store.DeletePortfolio(second.ID))
	assert.Equal(t, "Main", store.Current().Name)
}

func TestLegacyMigration_OneShot(t *testing.T) {
	local, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	legacy := []models.Asset{{
		ID:     "a1",
		Symbol: "GA",
		Amount: decimal.NewFromInt(10),
		Cost:   decimal.NewFromInt(2000),
	}}
	require.NoError(t, local.Put("assets", legacy))

	store, err := Open(local, &fakeRates{table: models.NewRateTable()}, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	require.Len(t, store.Portfolios(), 1)
	current := store.Current()
	assert.Equal(t, "Main", current.Name)
	require.Len(t, current.Assets, 1)
	assert.Equal(t, "GA", current.Assets[0].Symbol)

	// The legacy key is gone, so a stale write to it can never migrate again.
	assert.False(t, local.Has("assets"))

	require.NoError(t, local.Put("assets", []models.Asset{{ID: "a2", Symbol: "BTC", Amount: decimal.NewFromInt(1)}}))
	store.Close()
	reopened, err := Open(local, &fakeRates{table: models.NewRateTable()}, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	require.Len(t, reopened.Current().Assets, 1)
	assert.Equal(t, "GA", reopened.Current().Assets[0].Symbol)
}

func TestValuation(t *testing.T) {
	local, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	table := models.NewRateTable()
	table[models.SymbolBTC] = decimal.NewFromInt(1800000)
	store, err := Open(local, &fakeRates{table: table}, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Refresh(context.Background()))

	v := store.Valuation(models.Asset{
		Symbol: "BTC",
		Amount: decimal.NewFromFloat(0.5),
		Cost:   decimal.NewFromInt(1600000),
	})
	assert.True(t, v.CurrentValue.Equal(decimal.NewFromInt(900000)))
	assert.True(t, v.CostValue.Equal(decimal.NewFromInt(800000)))
	assert.True(t, v.ProfitLoss.Equal(decimal.NewFromInt(100000)))
	assert.True(t, v.ProfitLossPct.Equal(decimal.NewFromFloat(12.5)))
}

func TestValuation_ZeroCostBasis(t *testing.T) {
	local, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	table := models.NewRateTable()
	table[models.SymbolGA] = decimal.NewFromInt(2000)
	store, err := Open(local, &fakeRates{table: table}, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Refresh(context.Background()))

	v := store.Valuation(models.Asset{Symbol: "GA", Amount: decimal.NewFromInt(5)})
	assert.True(t, v.CurrentValue.Equal(decimal.NewFromInt(10000)))
	assert.True(t, v.ProfitLossPct.IsZero())
}

func TestValuation_UnknownSymbolIsZero(t *testing.T) {
	store, _ := testStore(t)
	require.NoError(t, store.Refresh(context.Background()))

	v := store.Valuation(models.Asset{Symbol: "DOGE", Amount: decimal.NewFromInt(100)})
	assert.True(t, v.CurrentValue.IsZero())
}

func TestRefresh_FailureKeepsPreviousTable(t *testing.T) {
	local, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	table := models.NewRateTable()
	table[models.SymbolUSD] = decimal.NewFromInt(30)
	rates := &fakeRates{table: table}
	store, err := Open(local, rates, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Refresh(context.Background()))
	rates.err = errors.New("server down")
	require.Error(t, store.Refresh(context.Background()))

	assert.True(t, store.RateTable().Price(models.SymbolUSD).Equal(decimal.NewFromInt(30)))
}

func TestExportImport_RoundTrip(t *testing.T) {
	store, _ := testStore(t)

	_, err := store.CreatePortfolio("Savings")
	require.NoError(t, err)
	_, err = store.AddAsset("ETH", decimal.NewFromInt(2), decimal.NewFromInt(80000), "crypto")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, store.Export(&buf))

	// Import into a fresh store.
	other, _ := testStore(t)
	require.NoError(t, other.Import(&buf))

	assert.Len(t, other.Portfolios(), 2)
	assert.Equal(t, "Main", other.Current().Name)
}

func TestImport_RejectsSnapshotWithoutPortfolios(t *testing.T) {
	store, _ := testStore(t)
	before := store.Portfolios()

	err := store.Import(strings.NewReader(`{"version": 2, "currency": "USD"}`))
	require.Error(t, err)

	// Nothing changed, including the currency.
	assert.Equal(t, before, store.Portfolios())
	assert.Equal(t, "TRY", store.Currency())

	err = store.Import(strings.NewReader(`{"portfolios": []}`))
	require.Error(t, err)
	assert.Equal(t, before, store.Portfolios())

	err = store.Import(strings.NewReader(`not json`))
	require.Error(t, err)
	assert.Equal(t, before, store.Portfolios())
}

func TestFormatMoney(t *testing.T) {
	store, _ := testStore(t)

	got := store.FormatMoney(decimal.NewFromFloat(1234.56))
	assert.Contains(t, got, "1.234,56")
}
