package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/apperrors"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/finance"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/model"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/repository"
)

// MonthlyTotals holds the aggregate figures for one calendar period.
type MonthlyTotals struct {
	Period           string  `json:"period"`
	IncomeTotal      float64 `json:"incomeTotal"`
	ExpenseTotal     float64 `json:"expenseTotal"`
	SavingsThisMonth float64 `json:"savingsThisMonth"`
}

// AggregationService computes per-period income/expense aggregates over the
// transaction store.
type AggregationService struct {
	transactionRepo *repository.TransactionRepository
	savedRepo       *repository.SavedAmountRepository
}

// NewAggregationService creates a new AggregationService.
func NewAggregationService(
	transactionRepo *repository.TransactionRepository,
	savedRepo *repository.SavedAmountRepository,
) *AggregationService {
	return &AggregationService{
		transactionRepo: transactionRepo,
		savedRepo:       savedRepo,
	}
}

// CalculateMonthlyTotals filters both collections to the target period and
// sums their local-currency amounts. Records whose period or amount does not
// resolve contribute zero; an unresolvable target period yields an all-zero
// result. This function never fails on data quality.
func CalculateMonthlyTotals(incomes, expenses []model.Transaction, period string) MonthlyTotals {
	normalized := finance.NormalizePeriod(period)
	if normalized == "" {
		return MonthlyTotals{Period: ""}
	}

	totals := MonthlyTotals{Period: normalized}
	totals.IncomeTotal = sumForPeriod(incomes, normalized)
	totals.ExpenseTotal = sumForPeriod(expenses, normalized)
	totals.SavingsThisMonth = totals.IncomeTotal - totals.ExpenseTotal
	return totals
}

func sumForPeriod(transactions []model.Transaction, period string) float64 {
	var sum float64
	for _, t := range transactions {
		if t.Period() != period {
			continue
		}
		if amount, ok := t.AmountValue(); ok {
			sum += amount
		}
	}
	return sum
}

// CollectPeriodsFromRecords unions the normalized periods present across the
// given collections. Order is unspecified; callers sort separately.
func CollectPeriodsFromRecords(collections ...[]model.Transaction) []string {
	seen := make(map[string]bool)
	periods := []string{}
	for _, collection := range collections {
		for _, t := range collection {
			period := t.Period()
			if period == "" || seen[period] {
				continue
			}
			seen[period] = true
			periods = append(periods, period)
		}
	}
	return periods
}

// SumSavedBeforePeriod sums the ledger entries whose period is strictly
// before the target one. The strict lexicographic comparison is valid only
// because all periods share the zero-padded canonical shape. Malformed
// entries are skipped, never propagated.
func SumSavedBeforePeriod(saved []model.SavedAmount, period string) float64 {
	normalized := finance.NormalizePeriod(period)
	if normalized == "" {
		return 0
	}

	var sum float64
	for _, entry := range saved {
		entryPeriod := finance.NormalizePeriod(entry.Period)
		if entryPeriod == "" || entryPeriod >= normalized {
			continue
		}
		if amount, ok := finance.ParseAmountString(entry.Amount); ok {
			sum += amount
		}
	}
	return sum
}

// GetMonthlySummary loads the ledger and aggregates it for the given period,
// including the cumulative savings recorded before it.
func (s *AggregationService) GetMonthlySummary(period string) (MonthlyTotals, float64, error) {
	incomes, err := s.transactionRepo.GetTransactions(model.KindIncome)
	if err != nil {
		return MonthlyTotals{}, 0, err
	}
	expenses, err := s.transactionRepo.GetTransactions(model.KindExpense)
	if err != nil {
		return MonthlyTotals{}, 0, err
	}
	saved, err := s.savedRepo.GetSavedAmounts()
	if err != nil {
		return MonthlyTotals{}, 0, err
	}

	totals := CalculateMonthlyTotals(incomes, expenses, period)
	return totals, SumSavedBeforePeriod(saved, period), nil
}

// GetPeriods returns the periods in use across incomes and expenses plus the
// current one, newest first. Feeds the period-selector UI.
func (s *AggregationService) GetPeriods() ([]string, error) {
	incomes, err := s.transactionRepo.GetTransactions(model.KindIncome)
	if err != nil {
		return nil, err
	}
	expenses, err := s.transactionRepo.GetTransactions(model.KindExpense)
	if err != nil {
		return nil, err
	}

	periods := CollectPeriodsFromRecords(incomes, expenses)
	periods = append(periods, finance.CurrentPeriod())
	return finance.SortPeriodsDesc(dedupe(periods)), nil
}

// RecordSavedAmount appends an entry to the saved-amount ledger. The period
// is canonicalized; the amount is stored raw.
func (s *AggregationService) RecordSavedAmount(period, amount string) (model.SavedAmount, error) {
	normalized := finance.NormalizePeriod(period)
	if normalized == "" {
		return model.SavedAmount{}, apperrors.ErrInvalidPeriod
	}

	entry := model.SavedAmount{
		ID:        uuid.NewString(),
		Period:    normalized,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.savedRepo.CreateSavedAmount(entry); err != nil {
		return model.SavedAmount{}, err
	}
	return entry, nil
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
