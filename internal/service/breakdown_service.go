package service

import (
	"math"
	"sort"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/finance"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/model"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/repository"
)

// Default labels applied when a record has no resolvable owner or category.
const (
	DefaultOwnerLabel    = "Sin usuario"
	DefaultCategoryLabel = "Sin tipo"
)

// MonthlyBreakdown summarizes one period's expenses grouped by owner and by
// movement type. Amounts are absolute values; the breakdown feeds stacked
// charts where sign has no meaning.
type MonthlyBreakdown struct {
	Period     string             `json:"period"`
	Label      string             `json:"label"`
	Total      float64            `json:"total"`
	ByOwner    map[string]float64 `json:"byOwner"`
	ByCategory map[string]float64 `json:"byCategory"`
}

// BreakdownService builds per-period expense breakdowns for charting.
type BreakdownService struct {
	transactionRepo *repository.TransactionRepository
}

// NewBreakdownService creates a new BreakdownService.
func NewBreakdownService(transactionRepo *repository.TransactionRepository) *BreakdownService {
	return &BreakdownService{transactionRepo: transactionRepo}
}

// BuildExpenseBreakdowns groups expense records per period, tallying the
// absolute amount by resolved owner and by resolved category.
//
// Records arrive as loose bags: field names are probed through the
// finance.RawRecord alias lists. Records without a resolvable period are
// skipped; records without a resolvable (non-zero) amount contribute
// nothing. Output is chronological ascending (oldest first, the reverse of
// the period-selector sort) because it feeds a left-to-right time series.
func BuildExpenseBreakdowns(records []finance.RawRecord) []MonthlyBreakdown {
	byPeriod := make(map[string]*MonthlyBreakdown)

	for _, record := range records {
		period := record.ResolvePeriod()
		if period == "" {
			continue
		}

		amount, ok := record.ResolveAmount()
		if !ok || amount == 0 {
			continue
		}
		amount = math.Abs(amount)

		breakdown, exists := byPeriod[period]
		if !exists {
			breakdown = &MonthlyBreakdown{
				Period:     period,
				Label:      finance.FormatPeriodLabel(period),
				ByOwner:    make(map[string]float64),
				ByCategory: make(map[string]float64),
			}
			byPeriod[period] = breakdown
		}

		breakdown.Total += amount
		breakdown.ByOwner[record.ResolveOwner(DefaultOwnerLabel)] += amount
		breakdown.ByCategory[record.ResolveCategory(DefaultCategoryLabel)] += amount
	}

	breakdowns := make([]MonthlyBreakdown, 0, len(byPeriod))
	for _, breakdown := range byPeriod {
		breakdowns = append(breakdowns, *breakdown)
	}
	sort.Slice(breakdowns, func(i, j int) bool {
		return breakdowns[i].Period < breakdowns[j].Period
	})
	return breakdowns
}

// GetExpenseBreakdowns loads the stored expenses and builds their monthly
// breakdowns.
func (s *BreakdownService) GetExpenseBreakdowns() ([]MonthlyBreakdown, error) {
	expenses, err := s.transactionRepo.GetTransactions(model.KindExpense)
	if err != nil {
		return nil, err
	}

	records := make([]finance.RawRecord, len(expenses))
	for i, expense := range expenses {
		records[i] = expense.AsRecord()
	}
	return BuildExpenseBreakdowns(records), nil
}
