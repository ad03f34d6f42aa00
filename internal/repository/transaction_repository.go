package repository

import (
	"database/sql"
	"fmt"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/model"
)

// TransactionRepository provides data access methods for the
// cash_transaction table. It handles income and expense records; the two
// kinds share one table and differ only in the kind column.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, kind, date, concept, owner, movement_type, exchange_rate_label, amount_local, created_at`

// GetTransactions retrieves transactions, optionally filtered by kind.
// Records are returned newest-first. An empty kind returns both incomes and
// expenses.
func (r *TransactionRepository) GetTransactions(kind string) ([]model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM cash_transaction`
	var args []any

	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash_transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash_transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by ID.
// Returns sql.ErrNoRows when no record matches.
func (r *TransactionRepository) GetTransaction(id string) (model.Transaction, error) {
	row := r.db.QueryRow(`SELECT `+transactionColumns+` FROM cash_transaction WHERE id = ?`, id)
	return scanTransaction(row)
}

// CreateTransaction inserts a new transaction record.
func (r *TransactionRepository) CreateTransaction(t model.Transaction) error {
	_, err := r.db.Exec(`
		INSERT INTO cash_transaction (id, kind, date, concept, owner, movement_type, exchange_rate_label, amount_local)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.ID,
		t.Kind,
		t.Date.Format("2006-01-02"),
		t.Concept,
		t.Owner,
		t.MovementType,
		nullable(t.ExchangeRateLabel),
		nullable(t.AmountLocal),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// UpdateTransaction overwrites an existing transaction in place. Edits have
// no append-only history.
func (r *TransactionRepository) UpdateTransaction(t model.Transaction) (bool, error) {
	result, err := r.db.Exec(`
		UPDATE cash_transaction
		SET date = ?, concept = ?, owner = ?, movement_type = ?, exchange_rate_label = ?, amount_local = ?
		WHERE id = ?
	`,
		t.Date.Format("2006-01-02"),
		t.Concept,
		t.Owner,
		t.MovementType,
		nullable(t.ExchangeRateLabel),
		nullable(t.AmountLocal),
		t.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return affected > 0, nil
}

// DeleteTransaction removes a transaction. Returns false when no record
// matched the ID.
func (r *TransactionRepository) DeleteTransaction(id string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM cash_transaction WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (model.Transaction, error) {
	var t model.Transaction
	var dateStr, createdAtStr string
	var rateLabel, amountLocal sql.NullString

	err := row.Scan(
		&t.ID,
		&t.Kind,
		&dateStr,
		&t.Concept,
		&t.Owner,
		&t.MovementType,
		&rateLabel,
		&amountLocal,
		&createdAtStr,
	)
	if err != nil {
		return model.Transaction{}, err
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil || t.Date.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}
	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	if rateLabel.Valid {
		t.ExchangeRateLabel = rateLabel.String
	}
	if amountLocal.Valid {
		t.AmountLocal = amountLocal.String
	}

	return t, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
