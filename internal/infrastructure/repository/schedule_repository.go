package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	domainRepo "github.com/sangkips/gestao-api/internal/domain/repository"
	"gorm.io/gorm"
)

var scheduleSortColumns = map[string]string{
	"scheduled_date": "scheduled_date",
	"client_name":    "client_name",
	"status":         "status",
	"created_at":     "created_at",
}

type visitRepository struct {
	db    *gorm.DB
	store recordStore[entity.Visit]
}

// NewVisitRepository creates a new visit repository
func NewVisitRepository(db *gorm.DB) domainRepo.VisitRepository {
	return &visitRepository{db: db, store: newRecordStore[entity.Visit](db, "Visit")}
}

func (r *visitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	return r.store.create(ctx, visit)
}

func (r *visitRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	return r.store.byID(ctx, id, nil)
}

func (r *visitRepository) Update(ctx context.Context, visit *entity.Visit) error {
	return r.store.save(ctx, visit)
}

func (r *visitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.delete(ctx, id)
}

func (r *visitRepository) List(ctx context.Context, filter domainRepo.VisitFilter) ([]entity.Visit, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Visit{})
	query = applyVendor(query, "vendor_id", filter.VendorScope)
	query = applyRange(query, "scheduled_date", filter.DateRange)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Search != "" {
		like := likePattern(filter.Search)
		query = query.Where("client_name ILIKE ? OR location ILIKE ?", like, like)
	}

	return r.store.page(query, filter.FilterParams, sortClause(filter.FilterParams, scheduleSortColumns, "scheduled_date ASC"))
}

func (r *visitRepository) Upcoming(ctx context.Context, scope domainRepo.VendorScope, from time.Time, limit int) ([]entity.Visit, error) {
	var visits []entity.Visit
	query := applyVendor(r.db.WithContext(ctx), "vendor_id", scope)
	err := query.Where("scheduled_date >= ?", from).
		Order("scheduled_date ASC").
		Limit(limit).
		Find(&visits).Error
	if err != nil {
		return nil, r.store.wrap("query", err)
	}
	return visits, nil
}

type statusCountRow struct {
	Status enum.VisitStatus
	Count  int64
}

func (r *visitRepository) CountByStatus(ctx context.Context, scope domainRepo.VendorScope) (map[enum.VisitStatus]int64, error) {
	var rows []statusCountRow
	query := applyVendor(r.db.WithContext(ctx).Model(&entity.Visit{}), "vendor_id", scope)
	err := query.Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, r.store.wrap("aggregate", err)
	}
	counts := make(map[enum.VisitStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

type maintenanceRepository struct {
	db    *gorm.DB
	store recordStore[entity.Maintenance]
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *gorm.DB) domainRepo.MaintenanceRepository {
	return &maintenanceRepository{db: db, store: newRecordStore[entity.Maintenance](db, "Maintenance")}
}

func (r *maintenanceRepository) Create(ctx context.Context, maintenance *entity.Maintenance) error {
	return r.store.create(ctx, maintenance)
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Maintenance, error) {
	return r.store.byID(ctx, id, nil)
}

func (r *maintenanceRepository) Update(ctx context.Context, maintenance *entity.Maintenance) error {
	return r.store.save(ctx, maintenance)
}

func (r *maintenanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.delete(ctx, id)
}

func (r *maintenanceRepository) List(ctx context.Context, filter domainRepo.MaintenanceFilter) ([]entity.Maintenance, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Maintenance{})
	query = applyVendor(query, "vendor_id", filter.VendorScope)
	query = applyRange(query, "scheduled_date", filter.DateRange)

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Type != nil {
		query = query.Where("maintenance_type = ?", *filter.Type)
	}
	if filter.Search != "" {
		like := likePattern(filter.Search)
		query = query.Where("client_name ILIKE ? OR product_name ILIKE ?", like, like)
	}

	return r.store.page(query, filter.FilterParams, sortClause(filter.FilterParams, scheduleSortColumns, "scheduled_date ASC"))
}

func (r *maintenanceRepository) Upcoming(ctx context.Context, scope domainRepo.VendorScope, from time.Time, limit int) ([]entity.Maintenance, error) {
	var maintenances []entity.Maintenance
	query := applyVendor(r.db.WithContext(ctx), "vendor_id", scope)
	err := query.Where("status = ? AND scheduled_date >= ?", enum.MaintenanceStatusScheduled, from).
		Order("scheduled_date ASC").
		Limit(limit).
		Find(&maintenances).Error
	if err != nil {
		return nil, r.store.wrap("query", err)
	}
	return maintenances, nil
}

func (r *maintenanceRepository) DueBetween(ctx context.Context, scope domainRepo.VendorScope, period domainRepo.DateRange) ([]entity.Maintenance, error) {
	var maintenances []entity.Maintenance
	query := applyVendor(r.db.WithContext(ctx), "vendor_id", scope)
	query = query.Where("status = ?", enum.MaintenanceStatusCompleted)
	query = applyRange(query, "next_maintenance_date", period)
	err := query.Order("next_maintenance_date ASC").Find(&maintenances).Error
	if err != nil {
		return nil, r.store.wrap("query", err)
	}
	return maintenances, nil
}
