package services

import (
	"context"

	apperrors "kaslele/internal/errors"
	"kaslele/internal/models"
	"kaslele/internal/pagination"
	"kaslele/internal/period"
	"kaslele/internal/store"
)

// transactionService handles cash-book entry business logic.
type transactionService struct {
	store store.TransactionStore
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(s store.TransactionStore) TransactionServicer {
	return &transactionService{store: s}
}

// validate checks a candidate entry before any store call is attempted, so
// the store never observes a partially invalid record.
func validate(in TransactionInput) error {
	if !in.Amount.IsPositive() {
		return apperrors.ErrInvalidAmount
	}
	if !in.Kind.Valid() {
		return apperrors.ErrInvalidKind
	}
	if !in.Category.Valid() {
		return apperrors.ErrInvalidCategory
	}
	return nil
}

// CreateTransaction validates the input, derives the period label and
// persists a new entry. The store assigns the id and creation timestamp.
func (s *transactionService) CreateTransaction(ctx context.Context, in TransactionInput) (*models.Transaction, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		Date:        in.Date,
		Category:    in.Category,
		Kind:        in.Kind,
		Description: in.Description,
		Amount:      in.Amount,
		Period:      period.Label(in.Date, in.Category),
	}
	if err := s.store.Insert(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetTransactions returns one page of the filtered listing, newest first.
func (s *transactionService) GetTransactions(ctx context.Context, filter store.Filter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	txs, total, err := s.store.Page(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	resp := pagination.NewPageResponse(txs, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetTransactionByID fetches a single entry.
func (s *transactionService) GetTransactionByID(ctx context.Context, id uint) (*models.Transaction, error) {
	return s.store.Get(ctx, id)
}

// UpdateTransaction validates the input and replaces every mutable field of
// the entry, recomputing the period label from the submitted date and
// category. The creation timestamp is left untouched.
func (s *transactionService) UpdateTransaction(ctx context.Context, id uint, in TransactionInput) (*models.Transaction, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		Date:        in.Date,
		Category:    in.Category,
		Kind:        in.Kind,
		Description: in.Description,
		Amount:      in.Amount,
		Period:      period.Label(in.Date, in.Category),
	}
	if err := s.store.Update(ctx, id, tx); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, id)
}

// DeleteTransaction removes an entry by id.
func (s *transactionService) DeleteTransaction(ctx context.Context, id uint) error {
	return s.store.Delete(ctx, id)
}
