package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	domainRepo "github.com/sangkips/gestao-api/internal/domain/repository"
	"gorm.io/gorm"
)

type productRepository struct {
	db    *gorm.DB
	store recordStore[entity.Product]
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db, store: newRecordStore[entity.Product](db, "Product")}
}

var catalogSortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"created_at": "created_at",
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.store.create(ctx, product)
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.store.byID(ctx, id, nil)
}

func (r *productRepository) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	return r.store.first(ctx, nil, "code = ?", code)
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.store.save(ctx, product)
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.delete(ctx, id)
}

func (r *productRepository) List(ctx context.Context, filter domainRepo.FilterParams) ([]entity.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Product{})
	if filter.Search != "" {
		like := likePattern(filter.Search)
		query = query.Where("name ILIKE ? OR code ILIKE ?", like, like)
	}
	return r.store.page(query, filter, sortClause(filter, catalogSortColumns, "name ASC"))
}

type serviceRepository struct {
	db    *gorm.DB
	store recordStore[entity.Service]
}

// NewServiceRepository creates a new repository for sellable services
func NewServiceRepository(db *gorm.DB) domainRepo.ServiceRepository {
	return &serviceRepository{db: db, store: newRecordStore[entity.Service](db, "Service")}
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	return r.store.create(ctx, service)
}

func (r *serviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	return r.store.byID(ctx, id, nil)
}

func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	return r.store.save(ctx, service)
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.delete(ctx, id)
}

func (r *serviceRepository) List(ctx context.Context, filter domainRepo.FilterParams) ([]entity.Service, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Service{})
	if filter.Search != "" {
		like := likePattern(filter.Search)
		query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	return r.store.page(query, filter, sortClause(filter, catalogSortColumns, "name ASC"))
}
