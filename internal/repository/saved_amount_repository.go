package repository

import (
	"database/sql"
	"fmt"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/model"
)

// SavedAmountRepository provides data access methods for the legacy
// saved_amount ledger.
type SavedAmountRepository struct {
	db *sql.DB
}

// NewSavedAmountRepository creates a new SavedAmountRepository with the provided database connection.
func NewSavedAmountRepository(db *sql.DB) *SavedAmountRepository {
	return &SavedAmountRepository{db: db}
}

// GetSavedAmounts retrieves the whole ledger, oldest period first.
func (r *SavedAmountRepository) GetSavedAmounts() ([]model.SavedAmount, error) {
	rows, err := r.db.Query(`
		SELECT id, period, amount, created_at
		FROM saved_amount
		ORDER BY period ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved_amount table: %w", err)
	}
	defer rows.Close()

	saved := []model.SavedAmount{}
	for rows.Next() {
		var s model.SavedAmount
		var amount sql.NullString
		var createdAtStr string

		if err := rows.Scan(&s.ID, &s.Period, &amount, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan saved_amount row: %w", err)
		}
		if amount.Valid {
			s.Amount = amount.String
		}
		s.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		saved = append(saved, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating saved_amount table: %w", err)
	}

	return saved, nil
}

// CreateSavedAmount inserts a new ledger entry.
func (r *SavedAmountRepository) CreateSavedAmount(s model.SavedAmount) error {
	_, err := r.db.Exec(`
		INSERT INTO saved_amount (id, period, amount)
		VALUES (?, ?, ?)
	`, s.ID, s.Period, nullable(s.Amount))
	if err != nil {
		return fmt.Errorf("failed to insert saved amount: %w", err)
	}
	return nil
}
