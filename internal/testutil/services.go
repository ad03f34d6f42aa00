package testutil

import (
	"database/sql"
	"testing"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/pricing"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/repository"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/service"
)

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewTransactionService(
		transactionRepo,
	)
}

func NewTestHoldingService(t *testing.T, db *sql.DB) *service.HoldingService {
	t.Helper()

	holdingRepo := repository.NewHoldingRepository(db)

	return service.NewHoldingService(
		holdingRepo,
	)
}

func NewTestAggregationService(t *testing.T, db *sql.DB) *service.AggregationService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	savedRepo := repository.NewSavedAmountRepository(db)

	return service.NewAggregationService(
		transactionRepo,
		savedRepo,
	)
}

func NewTestBreakdownService(t *testing.T, db *sql.DB) *service.BreakdownService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewBreakdownService(
		transactionRepo,
	)
}

// NewTestNetWorthService creates a NetWorthService over the given pricing
// gateway (usually one built from the mock provider clients) and the default
// household member list.
func NewTestNetWorthService(t *testing.T, db *sql.DB, gateway *pricing.Gateway) *service.NetWorthService {
	t.Helper()

	holdingRepo := repository.NewHoldingRepository(db)

	return service.NewNetWorthService(
		holdingRepo,
		gateway,
		HouseholdMembers,
	)
}

func NewTestSettingsService(t *testing.T, db *sql.DB, fernetKey string) *service.SettingsService {
	t.Helper()

	settingRepo := repository.NewSettingRepository(db)

	settingsService, err := service.NewSettingsService(settingRepo, fernetKey)
	if err != nil {
		t.Fatalf("Failed to create settings service: %v", err)
	}
	return settingsService
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}
