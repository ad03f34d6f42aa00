package service_test

import (
	"errors"
	"testing"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/api/request"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/apperrors"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/model"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/testutil"
)

// TestHoldingService_CreateHolding tests the base-currency derivation rule.
//
// WHY: The valuation engine branches on the base currency, so it cannot be
// trusted to the caller: cash rows must carry their currency and priced rows
// their upper-cased ticker, no matter what the request says.
func TestHoldingService_CreateHolding(t *testing.T) {
	t.Run("cash types derive their currency", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		ars, err := svc.CreateHolding(request.CreateHoldingRequest{
			Owner: "Yo", AssetType: model.AssetCashARS, Quantity: 1000, AcquisitionDate: "2024-01-15",
		})
		if err != nil {
			t.Fatalf("CreateHolding() returned unexpected error: %v", err)
		}
		if ars.BaseCurrency != "ARS" {
			t.Errorf("Expected base currency ARS, got %q", ars.BaseCurrency)
		}

		usd, err := svc.CreateHolding(request.CreateHoldingRequest{
			Owner: "Ella", AssetType: model.AssetCashUSD, Quantity: 500, AcquisitionDate: "2024-01-15",
		})
		if err != nil {
			t.Fatalf("CreateHolding() returned unexpected error: %v", err)
		}
		if usd.BaseCurrency != "USD" {
			t.Errorf("Expected base currency USD, got %q", usd.BaseCurrency)
		}
	})

	t.Run("priced types store the upper-cased ticker as base currency", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		holding, err := svc.CreateHolding(request.CreateHoldingRequest{
			Owner: "Yo", AssetType: model.AssetCedear, Ticker: " tsla ", Quantity: 3, AcquisitionDate: "2024-02-01",
		})
		if err != nil {
			t.Fatalf("CreateHolding() returned unexpected error: %v", err)
		}

		if holding.Ticker != "TSLA" {
			t.Errorf("Expected ticker TSLA, got %q", holding.Ticker)
		}
		if holding.BaseCurrency != "TSLA" {
			t.Errorf("Expected base currency TSLA, got %q", holding.BaseCurrency)
		}
	})

	t.Run("ticker-less non-cash types carry no base currency", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		holding, err := svc.CreateHolding(request.CreateHoldingRequest{
			Owner: "Yo", AssetType: model.AssetOther, Quantity: 1, AcquisitionDate: "2024-02-01",
		})
		if err != nil {
			t.Fatalf("CreateHolding() returned unexpected error: %v", err)
		}
		if holding.BaseCurrency != "" {
			t.Errorf("Expected empty base currency, got %q", holding.BaseCurrency)
		}
	})

	t.Run("rejects a bad acquisition date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		_, err := svc.CreateHolding(request.CreateHoldingRequest{
			Owner: "Yo", AssetType: model.AssetCashARS, Quantity: 1, AcquisitionDate: "01-15-2024",
		})
		if err == nil {
			t.Error("Expected error for bad acquisition date, got nil")
		}
	})
}

// TestHoldingService_UpdateHolding tests partial updates and base-currency
// re-derivation.
func TestHoldingService_UpdateHolding(t *testing.T) {
	t.Run("re-derives base currency when the asset type changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		original := testutil.NewHolding().Build(t, db)

		newType := model.AssetCrypto
		newTicker := "btc"
		updated, err := svc.UpdateHolding(original.ID, request.UpdateHoldingRequest{
			AssetType: &newType,
			Ticker:    &newTicker,
		})
		if err != nil {
			t.Fatalf("UpdateHolding() returned unexpected error: %v", err)
		}

		if updated.BaseCurrency != "BTC" {
			t.Errorf("Expected base currency BTC, got %q", updated.BaseCurrency)
		}
	})

	t.Run("rejects a change to a priced type without a ticker", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		cash := testutil.NewHolding().Build(t, db)

		newType := model.AssetStock
		_, err := svc.UpdateHolding(cash.ID, request.UpdateHoldingRequest{AssetType: &newType})
		if !errors.Is(err, apperrors.ErrTickerRequired) {
			t.Fatalf("Expected ErrTickerRequired, got %v", err)
		}

		stored, err := svc.GetHolding(cash.ID)
		if err != nil {
			t.Fatalf("GetHolding() returned unexpected error: %v", err)
		}
		if stored.AssetType != cash.AssetType || stored.BaseCurrency != "ARS" {
			t.Errorf("Expected rejected update to leave the row untouched, got %+v", stored)
		}
	})

	t.Run("rejects clearing the ticker of a priced holding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		priced := testutil.NewHolding().WithAssetType(model.AssetStock).WithTicker("GGAL").Build(t, db)

		empty := ""
		_, err := svc.UpdateHolding(priced.ID, request.UpdateHoldingRequest{Ticker: &empty})
		if !errors.Is(err, apperrors.ErrTickerRequired) {
			t.Errorf("Expected ErrTickerRequired, got %v", err)
		}
	})

	t.Run("update of a missing holding returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		quantity := 5.0
		_, err := svc.UpdateHolding(testutil.MakeID(), request.UpdateHoldingRequest{Quantity: &quantity})
		if !errors.Is(err, apperrors.ErrHoldingNotFound) {
			t.Errorf("Expected ErrHoldingNotFound, got %v", err)
		}
	})
}

// TestHoldingService_DeleteHolding tests removal.
func TestHoldingService_DeleteHolding(t *testing.T) {
	t.Run("delete removes the holding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		holding := testutil.NewHolding().Build(t, db)

		if err := svc.DeleteHolding(holding.ID); err != nil {
			t.Fatalf("DeleteHolding() returned unexpected error: %v", err)
		}
		testutil.AssertRowCount(t, db, "asset_holding", 0)

		if err := svc.DeleteHolding(holding.ID); !errors.Is(err, apperrors.ErrHoldingNotFound) {
			t.Errorf("Expected ErrHoldingNotFound on second delete, got %v", err)
		}
	})
}

// TestHoldingService_GetHoldings tests listing order.
func TestHoldingService_GetHoldings(t *testing.T) {
	t.Run("returns newest acquisitions first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		testutil.NewHolding().WithAcquisitionDate("2023-06-01").Build(t, db)
		testutil.NewHolding().WithAcquisitionDate("2024-02-01").Build(t, db)

		holdings, err := svc.GetHoldings()
		if err != nil {
			t.Fatalf("GetHoldings() returned unexpected error: %v", err)
		}

		if len(holdings) != 2 || !holdings[0].AcquisitionDate.After(holdings[1].AcquisitionDate) {
			t.Errorf("Expected newest-first ordering, got %v", holdings)
		}
	})
}
