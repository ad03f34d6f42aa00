package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/apperrors"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/api/request"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/finance"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/model"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/repository"
)

// TransactionService handles income/expense CRUD and the copy-to-adjacent-
// period workflow.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo *repository.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// GetTransactions lists transactions, optionally filtered by kind and/or
// period. Period filtering happens after retrieval through the normalizer,
// so records with odd date shapes are filtered consistently with the
// aggregates.
func (s *TransactionService) GetTransactions(kind, period string) ([]model.Transaction, error) {
	if kind != "" && kind != model.KindIncome && kind != model.KindExpense {
		return nil, apperrors.ErrInvalidKind
	}

	transactions, err := s.transactionRepo.GetTransactions(kind)
	if err != nil {
		return nil, err
	}

	normalized := finance.NormalizePeriod(period)
	if period != "" && normalized == "" {
		return nil, apperrors.ErrInvalidPeriod
	}
	if normalized == "" {
		return transactions, nil
	}

	filtered := []model.Transaction{}
	for _, t := range transactions {
		if t.Period() == normalized {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// GetTransaction retrieves a single transaction.
func (s *TransactionService) GetTransaction(id string) (model.Transaction, error) {
	transaction, err := s.transactionRepo.GetTransaction(id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to retrieve transaction: %w", err)
	}
	return transaction, nil
}

// CreateTransaction validates and persists a new transaction from a request.
func (s *TransactionService) CreateTransaction(_ context.Context, req request.CreateTransactionRequest) (model.Transaction, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid date: %w", err)
	}

	transaction := model.Transaction{
		ID:                uuid.NewString(),
		Kind:              req.Kind,
		Date:              date,
		Concept:           req.Concept,
		Owner:             req.Owner,
		MovementType:      req.MovementType,
		ExchangeRateLabel: req.ExchangeRateLabel,
		AmountLocal:       req.AmountLocal,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.transactionRepo.CreateTransaction(transaction); err != nil {
		return model.Transaction{}, err
	}
	return transaction, nil
}

// UpdateTransaction overwrites the editable fields of an existing
// transaction.
func (s *TransactionService) UpdateTransaction(id string, req request.UpdateTransactionRequest) (model.Transaction, error) {
	existing, err := s.GetTransaction(id)
	if err != nil {
		return model.Transaction{}, err
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("invalid date: %w", err)
		}
		existing.Date = date
	}
	if req.Concept != nil {
		existing.Concept = *req.Concept
	}
	if req.Owner != nil {
		existing.Owner = *req.Owner
	}
	if req.MovementType != nil {
		existing.MovementType = *req.MovementType
	}
	if req.ExchangeRateLabel != nil {
		existing.ExchangeRateLabel = *req.ExchangeRateLabel
	}
	if req.AmountLocal != nil {
		existing.AmountLocal = *req.AmountLocal
	}

	updated, err := s.transactionRepo.UpdateTransaction(existing)
	if err != nil {
		return model.Transaction{}, err
	}
	if !updated {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	return existing, nil
}

// DeleteTransaction removes a transaction.
func (s *TransactionService) DeleteTransaction(id string) error {
	deleted, err := s.transactionRepo.DeleteTransaction(id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// CopyTransaction duplicates a transaction into an adjacent period. The new
// record keeps the day of month where the target month allows it and clamps
// to month-end otherwise. monthDelta must be -1 (previous) or 1 (next).
func (s *TransactionService) CopyTransaction(id string, monthDelta int) (model.Transaction, error) {
	if monthDelta != -1 && monthDelta != 1 {
		return model.Transaction{}, apperrors.ErrInvalidMonthDelta
	}

	source, err := s.GetTransaction(id)
	if err != nil {
		return model.Transaction{}, err
	}

	duplicate := source
	duplicate.ID = uuid.NewString()
	duplicate.Date = finance.AdjustDateForCopy(source.Date, monthDelta)
	duplicate.CreatedAt = time.Now().UTC()

	if err := s.transactionRepo.CreateTransaction(duplicate); err != nil {
		return model.Transaction{}, err
	}
	return duplicate, nil
}
