package services

import (
	"bytes"
	"context"
	"time"

	"github.com/shopspring/decimal"

	"kaslele/internal/models"
	"kaslele/internal/pagination"
	"kaslele/internal/report"
	"kaslele/internal/store"
)

// TransactionInput carries the caller-settable fields of a transaction.
// Period is deliberately absent: it is always derived from Date and Category.
type TransactionInput struct {
	Date        time.Time
	Category    models.Category
	Kind        models.Kind
	Description string
	Amount      decimal.Decimal
}

// TransactionServicer defines the contract for cash-book entry business logic.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, in TransactionInput) (*models.Transaction, error)
	GetTransactions(ctx context.Context, filter store.Filter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(ctx context.Context, id uint) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id uint, in TransactionInput) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id uint) error
}

// ReportServicer defines the contract for rollup reports and spreadsheet export.
type ReportServicer interface {
	Rollup(ctx context.Context, filter store.Filter) (report.Rollup, error)
	ExportWorkbook(ctx context.Context, filter store.Filter) (*bytes.Buffer, string, error)
}
