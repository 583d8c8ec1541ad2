package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	domainRepo "github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"gorm.io/gorm"
)

type quotationRepository struct {
	db    *gorm.DB
	store recordStore[entity.Quotation]
}

// NewQuotationRepository creates a new quotation repository
func NewQuotationRepository(db *gorm.DB) domainRepo.QuotationRepository {
	return &quotationRepository{db: db, store: newRecordStore[entity.Quotation](db, "Quotation")}
}

var quotationSortColumns = map[string]string{
	"created_at":  "created_at",
	"total":       "total",
	"valid_until": "valid_until",
	"client_name": "client_name",
}

func (r *quotationRepository) Create(ctx context.Context, quotation *entity.Quotation) error {
	return r.store.create(ctx, quotation)
}

func (r *quotationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	return r.store.byID(ctx, id, preloadItems)
}

func (r *quotationRepository) Update(ctx context.Context, quotation *entity.Quotation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", quotation.ID).Delete(&entity.QuotationItem{}).Error; err != nil {
			return err
		}
		for i := range quotation.Items {
			quotation.Items[i].ID = uuid.Nil
			quotation.Items[i].QuotationID = quotation.ID
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(quotation).Error
	})
	return r.store.wrap("update", err)
}

func (r *quotationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	result := r.db.WithContext(ctx).Model(&entity.Quotation{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return r.store.wrap("update", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFoundError("Quotation")
	}
	return nil
}

func (r *quotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", id).Delete(&entity.QuotationItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.Quotation{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewNotFoundError("Quotation")
	}
	return r.store.wrap("delete", err)
}

func (r *quotationRepository) List(ctx context.Context, filter domainRepo.QuotationFilter) ([]entity.Quotation, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Quotation{})
	query = applyVendor(query, "vendor_id", filter.VendorScope)

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Search != "" {
		like := likePattern(filter.Search)
		query = query.Where("reference ILIKE ? OR client_name ILIKE ?", like, like)
	}

	return r.store.page(query, filter.FilterParams, sortClause(filter.FilterParams, quotationSortColumns, "created_at DESC"), preloadItems)
}
