package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	domainRepo "github.com/sangkips/gestao-api/internal/domain/repository"
	"gorm.io/gorm"
)

type clientRepository struct {
	db    *gorm.DB
	store recordStore[entity.Client]
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) domainRepo.ClientRepository {
	return &clientRepository{db: db, store: newRecordStore[entity.Client](db, "Client")}
}

var clientSortColumns = map[string]string{
	"name":           "name",
	"created_at":     "created_at",
	"scheduled_date": "scheduled_date",
	"total_value":    "total_value",
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	return r.store.create(ctx, client)
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	return r.store.byID(ctx, id, nil)
}

func (r *clientRepository) GetByDocument(ctx context.Context, document string) (*entity.Client, error) {
	return r.store.first(ctx, nil, "document = ?", document)
}

func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	return r.store.save(ctx, client)
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.delete(ctx, id)
}

func (r *clientRepository) List(ctx context.Context, filter domainRepo.ClientFilter) ([]entity.Client, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Client{})
	// clients nobody owns yet are shared by every vendor
	if filter.VendorID != nil {
		query = query.Where("vendor_id = ? OR vendor_id IS NULL", *filter.VendorID)
	}

	if filter.Search != "" {
		like := likePattern(filter.Search)
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR document ILIKE ?",
			like, like, like, like)
	}
	if filter.PremiumOnly {
		query = query.Where("is_premium = ?", true)
	}

	return r.store.page(query, filter.FilterParams, sortClause(filter.FilterParams, clientSortColumns, "name ASC"))
}

func (r *clientRepository) ListPremiumDueOn(ctx context.Context, day time.Time) ([]entity.Client, error) {
	var clients []entity.Client
	err := r.db.WithContext(ctx).
		Where("is_premium = ? AND payment_due = ?", true, day.Format(time.DateOnly)).
		Order("name ASC").
		Find(&clients).Error
	if err != nil {
		return nil, r.store.wrap("query", err)
	}
	return clients, nil
}
