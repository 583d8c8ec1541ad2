package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	domainRepo "github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"gorm.io/gorm"
)

// recordStore is the query/insert/update/delete shape shared by every
// repository. Driver errors leave this type as store errors, never raw.
type recordStore[T any] struct {
	db       *gorm.DB
	resource string
}

func newRecordStore[T any](db *gorm.DB, resource string) recordStore[T] {
	return recordStore[T]{db: db, resource: resource}
}

// storeError classifies a GORM error. Unique violations surface as conflicts
// because the caller can fix them; everything else is a store failure.
func storeError(resource, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflictError(resource + " already exists")
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewStoreError(op+" "+resource, err)
}

func (s recordStore[T]) wrap(op string, err error) error {
	return storeError(s.resource, op, err)
}

func (s recordStore[T]) create(ctx context.Context, record *T) error {
	return s.wrap("insert", s.db.WithContext(ctx).Create(record).Error)
}

func (s recordStore[T]) save(ctx context.Context, record *T) error {
	return s.wrap("update", s.db.WithContext(ctx).Save(record).Error)
}

// first returns nil, nil when no row matches
func (s recordStore[T]) first(ctx context.Context, scope func(*gorm.DB) *gorm.DB, query string, args ...any) (*T, error) {
	var record T
	q := s.db.WithContext(ctx)
	if scope != nil {
		q = scope(q)
	}
	err := q.Where(query, args...).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, s.wrap("query", err)
	}
	return &record, nil
}

func (s recordStore[T]) byID(ctx context.Context, id uuid.UUID, scope func(*gorm.DB) *gorm.DB) (*T, error) {
	return s.first(ctx, scope, "id = ?", id)
}

// delete fails with not found when nothing was removed
func (s recordStore[T]) delete(ctx context.Context, id uuid.UUID) error {
	var record T
	result := s.db.WithContext(ctx).Delete(&record, "id = ?", id)
	if result.Error != nil {
		return s.wrap("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFoundError(s.resource)
	}
	return nil
}

// page counts the filtered query and then fetches one page of it; fetch
// scopes such as preloads apply to the page query only
func (s recordStore[T]) page(query *gorm.DB, params domainRepo.FilterParams, order string, fetch ...func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	var (
		records []T
		total   int64
	)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, s.wrap("count", err)
	}

	p := params.Page()
	err := query.Scopes(fetch...).Offset(p.Offset()).Limit(p.PerPage).Order(order).Find(&records).Error
	if err != nil {
		return nil, 0, s.wrap("list", err)
	}
	return records, total, nil
}

// sortClause picks a whitelisted column; user input never reaches SQL
func sortClause(params domainRepo.FilterParams, columns map[string]string, fallback string) string {
	column, ok := columns[strings.ToLower(params.SortBy)]
	if !ok {
		return fallback
	}
	if strings.EqualFold(params.SortOrder, "desc") {
		return column + " DESC"
	}
	return column + " ASC"
}

func likePattern(search string) string {
	return "%" + strings.TrimSpace(search) + "%"
}

// applyRange filters column by an optional half-open range [From, To)
func applyRange(query *gorm.DB, column string, period domainRepo.DateRange) *gorm.DB {
	if period.From != nil {
		query = query.Where(column+" >= ?", *period.From)
	}
	if period.To != nil {
		query = query.Where(column+" < ?", *period.To)
	}
	return query
}

func applyVendor(query *gorm.DB, column string, scope domainRepo.VendorScope) *gorm.DB {
	if scope.VendorID != nil {
		query = query.Where(column+" = ?", *scope.VendorID)
	}
	return query
}
