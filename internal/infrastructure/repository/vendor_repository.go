package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	domainRepo "github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type vendorRepository struct {
	db    *gorm.DB
	store recordStore[entity.Vendor]
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB) domainRepo.VendorRepository {
	return &vendorRepository{db: db, store: newRecordStore[entity.Vendor](db, "Vendor")}
}

var vendorSortColumns = map[string]string{
	"name":        "name",
	"total_sales": "total_sales",
	"level":       "level",
	"created_at":  "created_at",
}

func (r *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	return r.store.create(ctx, vendor)
}

func (r *vendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return r.store.byID(ctx, id, nil)
}

func (r *vendorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	return r.store.first(ctx, nil, "user_id = ?", userID)
}

// Update saves profile fields only; the accumulated totals and level are
// written exclusively by sale and payout transactions
func (r *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	err := r.db.WithContext(ctx).Model(vendor).
		Select("name", "email", "phone", "address", "photo_url", "commission_rate", "user_id").
		Updates(vendor).Error
	return r.store.wrap("update", err)
}

func (r *vendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.delete(ctx, id)
}

func (r *vendorRepository) List(ctx context.Context, filter domainRepo.FilterParams) ([]entity.Vendor, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Vendor{})
	if filter.Search != "" {
		like := likePattern(filter.Search)
		query = query.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}
	return r.store.page(query, filter, sortClause(filter, vendorSortColumns, "name ASC"))
}

func (r *vendorRepository) PayCommission(ctx context.Context, payment *domainRepo.CommissionPayment) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&vendor, "id = ?", payment.VendorID).Error; err != nil {
			return err
		}
		if payment.Amount > vendor.PendingCommissions {
			return domainRepo.ErrCommissionExceedsPending
		}

		vendor.PendingCommissions -= payment.Amount
		vendor.ReceivedCommissions += payment.Amount
		if err := tx.Model(&vendor).
			Select("pending_commissions", "received_commissions").
			Updates(&vendor).Error; err != nil {
			return err
		}

		if payment.Ledger != nil {
			return tx.Create(payment.Ledger).Error
		}
		return nil
	})

	switch {
	case err == nil:
		return &vendor, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperror.NewNotFoundError("Vendor")
	case errors.Is(err, domainRepo.ErrCommissionExceedsPending):
		return nil, err
	default:
		return nil, r.store.wrap("pay commission for", err)
	}
}
