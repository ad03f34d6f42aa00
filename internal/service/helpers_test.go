package service_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/repository"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("Invalid test date %q: %v", value, err)
	}
	return date
}

func newSettingRepo(t *testing.T, db *sql.DB) *repository.SettingRepository {
	t.Helper()
	return repository.NewSettingRepository(db)
}
