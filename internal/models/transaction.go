package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the reporting granularity of a transaction. The persisted
// values are the Indonesian labels the cooperative's ledgers already use.
type Category string

const (
	CategoryDaily   Category = "Harian"
	CategoryWeekly  Category = "Mingguan"
	CategoryMonthly Category = "Bulanan"
	CategoryYearly  Category = "Tahunan"
)

// Categories lists all valid categories in display order.
var Categories = []Category{CategoryDaily, CategoryWeekly, CategoryMonthly, CategoryYearly}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryDaily, CategoryWeekly, CategoryMonthly, CategoryYearly:
		return true
	}
	return false
}

// Kind says whether a transaction is income or expense.
type Kind string

const (
	KindIncome  Kind = "Pemasukan"
	KindExpense Kind = "Pengeluaran"
)

// Valid reports whether k is one of the two known kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a single cash-book entry. Period is derived from Date and
// Category on every create and update; it is never accepted from a caller.
// CreatedAt is set once by the store and never modified afterwards.
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Category    Category        `gorm:"type:varchar(16);not null" json:"category"`
	Kind        Kind            `gorm:"type:varchar(16);not null" json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Period      string          `gorm:"not null" json:"period"`
	CreatedAt   time.Time       `json:"created_at"`
}
