package testutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"kaslele/internal/models"
	"kaslele/internal/period"
)

// Date builds a UTC calendar date for fixtures.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NewTransaction builds an unsaved transaction with a correctly derived
// period label.
func NewTransaction(date time.Time, category models.Category, kind models.Kind, description string, amount int64) *models.Transaction {
	return &models.Transaction{
		Date:        date,
		Category:    category,
		Kind:        kind,
		Description: description,
		Amount:      decimal.NewFromInt(amount),
		Period:      period.Label(date, category),
	}
}

// CreateTransaction persists a transaction fixture and returns it.
func CreateTransaction(t *testing.T, db *gorm.DB, date time.Time, category models.Category, kind models.Kind, description string, amount int64) *models.Transaction {
	t.Helper()

	tx := NewTransaction(date, category, kind, description, amount)
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
