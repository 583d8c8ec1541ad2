package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/commission"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	domainRepo "github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"github.com/sangkips/gestao-api/pkg/money"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type saleRepository struct {
	db    *gorm.DB
	store recordStore[entity.Sale]
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db, store: newRecordStore[entity.Sale](db, "Sale")}
}

var saleSortColumns = map[string]string{
	"date":        "date",
	"total":       "total",
	"client_name": "client_name",
	"created_at":  "created_at",
}

var errQuotationAlreadyConverted = apperror.NewConflictError("Quotation already converted to a sale")

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

func (r *saleRepository) Create(ctx context.Context, write *domainRepo.SaleWrite) error {
	sale := write.Sale
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		if write.Ledger != nil {
			write.Ledger.ReferenceID = &sale.ID
			if err := tx.Create(write.Ledger).Error; err != nil {
				return err
			}
		}

		if err := adjustVendor(tx, sale.VendorID, sale.Total, sale.Commission); err != nil {
			return err
		}

		if sale.ClientID != nil {
			if err := tx.Model(&entity.Client{}).Where("id = ?", *sale.ClientID).
				Update("total_value", gorm.Expr("total_value + ?", sale.Total)).Error; err != nil {
				return err
			}
		}

		if sale.QuotationID != nil {
			result := tx.Model(&entity.Quotation{}).
				Where("id = ? AND sale_id IS NULL", *sale.QuotationID).
				Updates(map[string]any{"sale_id": sale.ID, "status": enum.QuotationStatusAccepted})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return errQuotationAlreadyConverted
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewNotFoundError("Vendor")
	}
	return r.store.wrap("insert", err)
}

// adjustVendor applies a signed delta to the vendor's totals under a row
// lock and reclassifies the tier from the new cumulative amount. Totals
// never drop below zero.
func adjustVendor(tx *gorm.DB, vendorID uuid.UUID, sales, pending money.Cents) error {
	var vendor entity.Vendor
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&vendor, "id = ?", vendorID).Error; err != nil {
		return err
	}

	vendor.TotalSales = floorZero(vendor.TotalSales + sales)
	vendor.PendingCommissions = floorZero(vendor.PendingCommissions + pending)
	vendor.Level = commission.ClassifyTier(vendor.TotalSales)

	return tx.Model(&vendor).
		Select("total_sales", "pending_commissions", "level").
		Updates(&vendor).Error
}

func floorZero(c money.Cents) money.Cents {
	if c < 0 {
		return 0
	}
	return c
}

func (r *saleRepository) Cancel(ctx context.Context, cancellation *domainRepo.SaleCancellation) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sale, "id = ?", cancellation.SaleID).Error; err != nil {
			return err
		}
		if sale.IsCancelled() {
			return apperror.NewConflictError("Sale already cancelled")
		}

		at := cancellation.At
		sale.Status = enum.SaleStatusCancelled
		sale.CancelledAt = &at
		if err := tx.Model(&sale).Select("status", "cancelled_at").Updates(&sale).Error; err != nil {
			return err
		}

		if err := adjustVendor(tx, sale.VendorID, -sale.Total, -sale.Commission); err != nil {
			return err
		}

		if sale.ClientID != nil {
			if err := tx.Model(&entity.Client{}).Where("id = ?", *sale.ClientID).
				Update("total_value", gorm.Expr("GREATEST(total_value - ?, 0)", sale.Total)).Error; err != nil {
				return err
			}
		}

		if reversal := cancellation.Reversal; reversal != nil {
			reversal.Amount = sale.Total
			reversal.ReferenceID = &sale.ID
			if err := tx.Create(reversal).Error; err != nil {
				return err
			}
		}

		return preloadItems(tx).First(&sale, "id = ?", sale.ID).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewNotFoundError("Sale")
	}
	if err != nil {
		return nil, r.store.wrap("cancel", err)
	}
	return &sale, nil
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.store.byID(ctx, id, preloadItems)
}

func (r *saleRepository) List(ctx context.Context, filter domainRepo.SaleFilter) ([]entity.Sale, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Sale{})
	query = applyVendor(query, "vendor_id", filter.VendorScope)
	query = applyRange(query, "date", filter.DateRange)

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Search != "" {
		like := likePattern(filter.Search)
		query = query.Where("reference ILIKE ? OR client_name ILIKE ? OR vendor_name ILIKE ?", like, like, like)
	}

	return r.store.page(query, filter.FilterParams, sortClause(filter.FilterParams, saleSortColumns, "date DESC"), preloadItems)
}

type revenueRow struct {
	Revenue    int64
	Commission int64
	Count      int64
}

func (r *saleRepository) Revenue(ctx context.Context, scope domainRepo.VendorScope, period domainRepo.DateRange) (*domainRepo.RevenueSummary, error) {
	query := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Select("COALESCE(SUM(total), 0) AS revenue, COALESCE(SUM(commission), 0) AS commission, COUNT(*) AS count").
		Where("status = ?", enum.SaleStatusCompleted)
	query = applyVendor(query, "vendor_id", scope)
	query = applyRange(query, "date", period)

	var row revenueRow
	if err := query.Scan(&row).Error; err != nil {
		return nil, r.store.wrap("aggregate", err)
	}
	return &domainRepo.RevenueSummary{
		Revenue:    money.Cents(row.Revenue),
		Commission: money.Cents(row.Commission),
		Count:      row.Count,
	}, nil
}

type vendorRevenueRow struct {
	VendorID   uuid.UUID
	VendorName string
	Revenue    int64
	Count      int64
}

func (r *saleRepository) RevenueByVendor(ctx context.Context, period domainRepo.DateRange) ([]domainRepo.VendorRevenue, error) {
	query := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Select("vendor_id, vendor_name, COALESCE(SUM(total), 0) AS revenue, COUNT(*) AS count").
		Where("status = ?", enum.SaleStatusCompleted)
	query = applyRange(query, "date", period)

	var rows []vendorRevenueRow
	if err := query.Group("vendor_id, vendor_name").Order("revenue DESC").Scan(&rows).Error; err != nil {
		return nil, r.store.wrap("aggregate", err)
	}

	result := make([]domainRepo.VendorRevenue, len(rows))
	for i, row := range rows {
		result[i] = domainRepo.VendorRevenue{
			VendorID:   row.VendorID,
			VendorName: row.VendorName,
			Revenue:    money.Cents(row.Revenue),
			Count:      row.Count,
		}
	}
	return result, nil
}
