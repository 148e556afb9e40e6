// Package store gives the rest of the service a narrow persistence
// capability for cash-book transactions. Services depend on the
// TransactionStore interface; the single GORM-backed implementation works
// unchanged against the embedded SQLite file or a remote Postgres, whichever
// the database manager was configured with.
package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "kaslele/internal/errors"
	"kaslele/internal/models"
	"kaslele/internal/pagination"
)

// Filter restricts a listing. A nil Category means all categories; Search is
// a case-insensitive substring match over period, kind and description.
type Filter struct {
	Category *models.Category
	Search   string
}

// TransactionStore is the persistence contract consumed by the services.
// Every failure is an *apperrors.AppError: TRANSACTION_NOT_FOUND for a
// missing id, STORE_UNAVAILABLE wrapping the driver error otherwise.
type TransactionStore interface {
	Insert(ctx context.Context, tx *models.Transaction) error
	List(ctx context.Context, filter Filter) ([]models.Transaction, error)
	Page(ctx context.Context, filter Filter, page pagination.PageRequest) ([]models.Transaction, int64, error)
	Get(ctx context.Context, id uint) (*models.Transaction, error)
	Update(ctx context.Context, id uint, tx *models.Transaction) error
	Delete(ctx context.Context, id uint) error
}

type gormStore struct {
	db *gorm.DB
}

// New creates a TransactionStore backed by the given GORM handle.
func New(db *gorm.DB) TransactionStore {
	return &gormStore{db: db}
}

// Insert persists a new transaction. The store assigns ID and CreatedAt.
func (s *gormStore) Insert(ctx context.Context, tx *models.Transaction) error {
	if err := s.db.WithContext(ctx).Create(tx).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// filtered applies the category and free-text filters to a query. LOWER(...)
// LIKE keeps the search case-insensitive on both SQLite and Postgres.
func (s *gormStore) filtered(ctx context.Context, filter Filter) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Transaction{})
	if filter.Category != nil {
		q = q.Where("category = ?", *filter.Category)
	}
	if needle := strings.TrimSpace(filter.Search); needle != "" {
		like := "%" + strings.ToLower(needle) + "%"
		q = q.Where("LOWER(period) LIKE ? OR LOWER(kind) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}
	return q
}

// List returns all matching transactions, newest id first.
func (s *gormStore) List(ctx context.Context, filter Filter) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := s.filtered(ctx, filter).Order("id DESC").Find(&txs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return txs, nil
}

// Page returns one page of matching transactions plus the total match count.
func (s *gormStore) Page(ctx context.Context, filter Filter, page pagination.PageRequest) ([]models.Transaction, int64, error) {
	base := s.filtered(ctx, filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	var txs []models.Transaction
	if err := base.Order("id DESC").Scopes(pagination.Paginate(page)).Find(&txs).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return txs, total, nil
}

// Get fetches a single transaction by id.
func (s *gormStore) Get(ctx context.Context, id uint) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.db.WithContext(ctx).First(&tx, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return &tx, nil
}

// Update replaces all mutable fields of the transaction with the given id in
// a single statement. CreatedAt is never touched.
func (s *gormStore) Update(ctx context.Context, id uint, tx *models.Transaction) error {
	res := s.db.WithContext(ctx).Model(&models.Transaction{}).Where("id = ?", id).Updates(map[string]interface{}{
		"date":        tx.Date,
		"category":    tx.Category,
		"kind":        tx.Kind,
		"description": tx.Description,
		"amount":      tx.Amount,
		"period":      tx.Period,
	})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// Delete removes the transaction with the given id.
func (s *gormStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Transaction{}, id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}
