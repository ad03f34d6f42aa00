package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/api/request"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/apperrors"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/model"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/testutil"
)

// TestTransactionService_GetTransactions tests listing with kind and period
// filters.
//
// WHY: The Ingresos and Gastos views both read from the same table; the kind
// filter must split them cleanly and the period filter must go through the
// normalizer so it matches the aggregates.
func TestTransactionService_GetTransactions(t *testing.T) {
	t.Run("filters by kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		testutil.NewTransaction().Income().WithDate("2024-03-01").Build(t, db)
		testutil.NewTransaction().Expense().WithDate("2024-03-02").Build(t, db)
		testutil.NewTransaction().Expense().WithDate("2024-03-03").Build(t, db)

		expenses, err := svc.GetTransactions(model.KindExpense, "")
		if err != nil {
			t.Fatalf("GetTransactions() returned unexpected error: %v", err)
		}

		if len(expenses) != 2 {
			t.Errorf("Expected 2 expenses, got %d", len(expenses))
		}
		for _, tx := range expenses {
			if tx.Kind != model.KindExpense {
				t.Errorf("Expected only expenses, found kind %q", tx.Kind)
			}
		}
	})

	t.Run("filters by period with a loose period shape", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		testutil.NewTransaction().Income().WithDate("2024-03-01").Build(t, db)
		testutil.NewTransaction().Income().WithDate("2024-04-01").Build(t, db)

		march, err := svc.GetTransactions("", "2024-3")
		if err != nil {
			t.Fatalf("GetTransactions() returned unexpected error: %v", err)
		}

		if len(march) != 1 {
			t.Errorf("Expected 1 record for 2024-3, got %d", len(march))
		}
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		if _, err := svc.GetTransactions("transfer", ""); !errors.Is(err, apperrors.ErrInvalidKind) {
			t.Errorf("Expected ErrInvalidKind, got %v", err)
		}
	})

	t.Run("rejects an unresolvable period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		if _, err := svc.GetTransactions("", "2024-13"); !errors.Is(err, apperrors.ErrInvalidPeriod) {
			t.Errorf("Expected ErrInvalidPeriod, got %v", err)
		}
	})

	t.Run("returns newest first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		testutil.NewTransaction().Income().WithDate("2024-01-01").Build(t, db)
		testutil.NewTransaction().Income().WithDate("2024-03-01").Build(t, db)

		transactions, err := svc.GetTransactions("", "")
		if err != nil {
			t.Fatalf("GetTransactions() returned unexpected error: %v", err)
		}

		if len(transactions) != 2 || !transactions[0].Date.After(transactions[1].Date) {
			t.Errorf("Expected newest-first ordering, got %v", transactions)
		}
	})
}

// TestTransactionService_CreateUpdateDelete tests the write path.
//
// WHY: The raw amount must be stored untouched. Updates overwrite in place;
// deletes of unknown IDs must surface the not-found sentinel.
func TestTransactionService_CreateUpdateDelete(t *testing.T) {
	t.Run("create stores the raw amount verbatim", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		created, err := svc.CreateTransaction(context.Background(), request.CreateTransactionRequest{
			Kind:        model.KindExpense,
			Date:        "2024-03-15",
			Concept:     "Supermercado",
			Owner:       "Ella",
			AmountLocal: "85.000,00",
		})
		if err != nil {
			t.Fatalf("CreateTransaction() returned unexpected error: %v", err)
		}

		stored, err := svc.GetTransaction(created.ID)
		if err != nil {
			t.Fatalf("GetTransaction() returned unexpected error: %v", err)
		}

		if stored.AmountLocal != "85.000,00" {
			t.Errorf("Expected raw amount preserved, got %q", stored.AmountLocal)
		}
		if amount, ok := stored.AmountValue(); !ok || amount != 85000 {
			t.Errorf("Expected normalized amount 85000, got %v (ok=%v)", amount, ok)
		}
	})

	t.Run("create rejects a bad date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		_, err := svc.CreateTransaction(context.Background(), request.CreateTransactionRequest{
			Kind:        model.KindExpense,
			Date:        "15/03/2024",
			Concept:     "x",
			AmountLocal: "1",
		})
		if err == nil {
			t.Error("Expected error for bad date, got nil")
		}
	})

	t.Run("update changes only the provided fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		original := testutil.NewTransaction().Expense().
			WithDate("2024-03-02").WithConcept("Luz").WithAmount("20000").Build(t, db)

		newAmount := "25000"
		updated, err := svc.UpdateTransaction(original.ID, request.UpdateTransactionRequest{
			AmountLocal: &newAmount,
		})
		if err != nil {
			t.Fatalf("UpdateTransaction() returned unexpected error: %v", err)
		}

		if updated.AmountLocal != "25000" {
			t.Errorf("Expected amount 25000, got %q", updated.AmountLocal)
		}
		if updated.Concept != "Luz" {
			t.Errorf("Expected concept unchanged, got %q", updated.Concept)
		}
	})

	t.Run("update of a missing record returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		concept := "x"
		_, err := svc.UpdateTransaction(testutil.MakeID(), request.UpdateTransactionRequest{Concept: &concept})
		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("delete removes the record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		tx := testutil.NewTransaction().Build(t, db)

		if err := svc.DeleteTransaction(tx.ID); err != nil {
			t.Fatalf("DeleteTransaction() returned unexpected error: %v", err)
		}
		testutil.AssertRowCount(t, db, "cash_transaction", 0)

		if err := svc.DeleteTransaction(tx.ID); !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound on second delete, got %v", err)
		}
	})
}

// TestTransactionService_CopyTransaction tests the copy-to-adjacent-period
// workflow.
//
// WHY: Recurring records are seeded by copying last month's. The copy gets a
// fresh ID, shifts exactly one period, and clamps the day when the target
// month is shorter.
func TestTransactionService_CopyTransaction(t *testing.T) {
	t.Run("copies into the next period with a fresh ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		source := testutil.NewTransaction().Expense().
			WithDate("2024-03-15").WithConcept("Alquiler").WithAmount("450000").Build(t, db)

		copied, err := svc.CopyTransaction(source.ID, 1)
		if err != nil {
			t.Fatalf("CopyTransaction() returned unexpected error: %v", err)
		}

		if copied.ID == source.ID {
			t.Error("Expected a fresh ID for the copy")
		}
		if got := copied.Date.Format("2006-01-02"); got != "2024-04-15" {
			t.Errorf("Expected date 2024-04-15, got %s", got)
		}
		if copied.Concept != "Alquiler" || copied.AmountLocal != "450000" {
			t.Errorf("Expected content preserved, got %+v", copied)
		}
		testutil.AssertRowCount(t, db, "cash_transaction", 2)
	})

	t.Run("clamps the day to the target month end", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		source := testutil.NewTransaction().WithDate("2024-01-31").Build(t, db)

		copied, err := svc.CopyTransaction(source.ID, 1)
		if err != nil {
			t.Fatalf("CopyTransaction() returned unexpected error: %v", err)
		}

		if got := copied.Date.Format("2006-01-02"); got != "2024-02-29" {
			t.Errorf("Expected clamped date 2024-02-29, got %s", got)
		}
	})

	t.Run("copies into the previous period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		source := testutil.NewTransaction().WithDate("2024-03-31").Build(t, db)

		copied, err := svc.CopyTransaction(source.ID, -1)
		if err != nil {
			t.Fatalf("CopyTransaction() returned unexpected error: %v", err)
		}

		if got := copied.Date.Format("2006-01-02"); got != "2024-02-29" {
			t.Errorf("Expected clamped date 2024-02-29, got %s", got)
		}
	})

	t.Run("rejects month deltas beyond the adjacent periods", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		source := testutil.NewTransaction().Build(t, db)

		if _, err := svc.CopyTransaction(source.ID, 2); !errors.Is(err, apperrors.ErrInvalidMonthDelta) {
			t.Errorf("Expected ErrInvalidMonthDelta, got %v", err)
		}
		if _, err := svc.CopyTransaction(source.ID, 0); !errors.Is(err, apperrors.ErrInvalidMonthDelta) {
			t.Errorf("Expected ErrInvalidMonthDelta, got %v", err)
		}
	})

	t.Run("copy of a missing record returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		if _, err := svc.CopyTransaction(testutil.MakeID(), 1); !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
	})
}
