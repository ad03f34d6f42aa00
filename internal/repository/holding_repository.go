package repository

import (
	"database/sql"
	"fmt"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/model"
)

// HoldingRepository provides data access methods for the asset_holding
// table. Valuation fields never touch this layer; only raw holdings are
// stored.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

const holdingColumns = `id, owner, asset_type, description, quantity, ticker, base_currency, acquisition_date, created_at`

// GetHoldings retrieves all holdings ordered by acquisition date descending
// (display order; acquisition date plays no role in valuation).
func (r *HoldingRepository) GetHoldings() ([]model.Holding, error) {
	rows, err := r.db.Query(`
		SELECT ` + holdingColumns + `
		FROM asset_holding
		ORDER BY acquisition_date DESC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset_holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}
	for rows.Next() {
		holding, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, holding)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset_holding table: %w", err)
	}

	return holdings, nil
}

// GetHolding retrieves a single holding by ID.
// Returns sql.ErrNoRows when no record matches.
func (r *HoldingRepository) GetHolding(id string) (model.Holding, error) {
	row := r.db.QueryRow(`SELECT `+holdingColumns+` FROM asset_holding WHERE id = ?`, id)
	return scanHolding(row)
}

// CreateHolding inserts a new holding record.
func (r *HoldingRepository) CreateHolding(h model.Holding) error {
	_, err := r.db.Exec(`
		INSERT INTO asset_holding (id, owner, asset_type, description, quantity, ticker, base_currency, acquisition_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		h.ID,
		h.Owner,
		h.AssetType,
		nullable(h.Description),
		h.Quantity,
		nullable(h.Ticker),
		h.BaseCurrency,
		h.AcquisitionDate.Format("2006-01-02"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}
	return nil
}

// UpdateHolding overwrites an existing holding in place.
func (r *HoldingRepository) UpdateHolding(h model.Holding) (bool, error) {
	result, err := r.db.Exec(`
		UPDATE asset_holding
		SET owner = ?, asset_type = ?, description = ?, quantity = ?, ticker = ?, base_currency = ?, acquisition_date = ?
		WHERE id = ?
	`,
		h.Owner,
		h.AssetType,
		nullable(h.Description),
		h.Quantity,
		nullable(h.Ticker),
		h.BaseCurrency,
		h.AcquisitionDate.Format("2006-01-02"),
		h.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return affected > 0, nil
}

// DeleteHolding removes a holding. Returns false when no record matched.
func (r *HoldingRepository) DeleteHolding(id string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM asset_holding WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}

func scanHolding(row scanner) (model.Holding, error) {
	var h model.Holding
	var acquisitionStr, createdAtStr string
	var description, ticker sql.NullString

	err := row.Scan(
		&h.ID,
		&h.Owner,
		&h.AssetType,
		&description,
		&h.Quantity,
		&ticker,
		&h.BaseCurrency,
		&acquisitionStr,
		&createdAtStr,
	)
	if err != nil {
		return model.Holding{}, err
	}

	h.AcquisitionDate, err = ParseTime(acquisitionStr)
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to parse acquisition_date: %w", err)
	}
	h.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	if description.Valid {
		h.Description = description.String
	}
	if ticker.Valid {
		h.Ticker = ticker.String
	}

	return h, nil
}
