package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	domainRepo "github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/pkg/money"
	"gorm.io/gorm"
)

type financialRepository struct {
	db    *gorm.DB
	store recordStore[entity.FinancialTransaction]
}

// NewFinancialRepository creates a new ledger repository
func NewFinancialRepository(db *gorm.DB) domainRepo.FinancialRepository {
	return &financialRepository{db: db, store: newRecordStore[entity.FinancialTransaction](db, "Transaction")}
}

var financialSortColumns = map[string]string{
	"date":     "date",
	"amount":   "amount",
	"category": "category",
}

func (r *financialRepository) Create(ctx context.Context, tx *entity.FinancialTransaction) error {
	return r.store.create(ctx, tx)
}

func (r *financialRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FinancialTransaction, error) {
	return r.store.byID(ctx, id, nil)
}

func (r *financialRepository) Update(ctx context.Context, tx *entity.FinancialTransaction) error {
	return r.store.save(ctx, tx)
}

func (r *financialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.delete(ctx, id)
}

func (r *financialRepository) List(ctx context.Context, filter domainRepo.FinancialFilter) ([]entity.FinancialTransaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.FinancialTransaction{})
	query = applyRange(query, "date", filter.DateRange)

	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		query = query.Where("description ILIKE ?", likePattern(filter.Search))
	}

	return r.store.page(query, filter.FilterParams, sortClause(filter.FilterParams, financialSortColumns, "date DESC"))
}

func (r *financialRepository) SumByType(ctx context.Context, txType enum.TransactionType, period domainRepo.DateRange) (money.Cents, error) {
	var sum int64
	query := r.db.WithContext(ctx).Model(&entity.FinancialTransaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("type = ?", txType)
	query = applyRange(query, "date", period)
	if err := query.Scan(&sum).Error; err != nil {
		return 0, r.store.wrap("aggregate", err)
	}
	return money.Cents(sum), nil
}

func (r *financialRepository) CountOnDate(ctx context.Context, day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var count int64
	err := r.db.WithContext(ctx).Model(&entity.FinancialTransaction{}).
		Where("date >= ? AND date < ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, r.store.wrap("count", err)
	}
	return count, nil
}

func (r *financialRepository) Top(ctx context.Context, txType enum.TransactionType, limit int) ([]entity.FinancialTransaction, error) {
	var txs []entity.FinancialTransaction
	err := r.db.WithContext(ctx).
		Where("type = ?", txType).
		Order("amount DESC, date DESC").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, r.store.wrap("query", err)
	}
	return txs, nil
}
