package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/apperrors"
)

// SettingRepository provides data access methods for the system_setting
// table. Values are stored opaquely; encryption of sensitive values happens
// in the service layer.
type SettingRepository struct {
	db *sql.DB
}

// NewSettingRepository creates a new SettingRepository with the provided database connection.
func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting returns the stored value for a key.
// Returns apperrors.ErrSettingNotFound when the key has no value.
func (r *SettingRepository) GetSetting(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM system_setting WHERE "key" = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query system_setting table: %w", err)
	}
	return value, nil
}

// SetSetting stores or replaces the value for a key.
func (r *SettingRepository) SetSetting(key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO system_setting (id, "key", value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT("key") DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, uuid.NewString(), key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert system_setting: %w", err)
	}
	return nil
}
