package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"github.com/sangkips/gestao-api/pkg/money"
	"github.com/sangkips/gestao-api/pkg/pagination"
	"github.com/sangkips/gestao-api/pkg/utils"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo repository.ProductRepository
	now         Clock
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, now Clock) *ProductService {
	return &ProductService{productRepo: productRepo, now: now}
}

// ProductInput carries the editable product fields. Nil pointers are left
// untouched on update.
type ProductInput struct {
	Name          *string
	Code          *string
	Description   *string
	Colors        []string
	Price         *money.Cents
	StockQuantity *int
	ImageURL      *string
	TaxInfo       *entity.TaxInfo
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, apperror.NewFieldError("name", "Nome é obrigatório", nil)
	}

	// Auto-generate code if not provided
	if input.Code == nil || strings.TrimSpace(*input.Code) == "" {
		code := utils.GenerateReferenceNo("PRD", s.now())
		input.Code = &code
	}

	product := &entity.Product{}
	if err := s.apply(ctx, product, input); err != nil {
		return nil, err
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products
func (s *ProductService) ListProducts(ctx context.Context, filter repository.FilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	params := filter.Page()
	filter.Pagination = params

	products, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(products, params, total), nil
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, apperror.NewFieldError("name", "Nome é obrigatório", nil)
	}
	if err := s.apply(ctx, product, input); err != nil {
		return nil, err
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *ProductService) apply(ctx context.Context, product *entity.Product, input *ProductInput) error {
	if input.Code != nil {
		code := strings.TrimSpace(*input.Code)
		if code != product.Code {
			existing, err := s.productRepo.GetByCode(ctx, code)
			if err != nil {
				return err
			}
			if existing != nil && existing.ID != product.ID {
				return apperror.NewConflictError("Product code already exists")
			}
		}
		product.Code = code
	}
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Colors != nil {
		product.Colors = input.Colors
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return apperror.NewFieldError("price", "O preço não pode ser negativo", nil)
		}
		product.Price = *input.Price
	}
	if input.StockQuantity != nil {
		if *input.StockQuantity < 0 {
			return apperror.NewFieldError("stock_quantity", "O estoque não pode ser negativo", nil)
		}
		product.StockQuantity = *input.StockQuantity
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}
	if input.TaxInfo != nil {
		product.TaxInfo = *input.TaxInfo
	}
	return nil
}

// CatalogService manages the sellable services of the catalog
type CatalogService struct {
	serviceRepo repository.ServiceRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(serviceRepo repository.ServiceRepository) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo}
}

// ServiceInput carries the editable service fields
type ServiceInput struct {
	Name        *string
	Description *string
	Price       *money.Cents
}

// CreateService creates a new catalog service
func (s *CatalogService) CreateService(ctx context.Context, input *ServiceInput) (*entity.Service, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, apperror.NewFieldError("name", "Nome é obrigatório", nil)
	}
	svc := &entity.Service{}
	if err := applyService(svc, input); err != nil {
		return nil, err
	}
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// GetService retrieves a catalog service by ID
func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return svc, nil
}

// ListServices lists catalog services
func (s *CatalogService) ListServices(ctx context.Context, filter repository.FilterParams) (*pagination.PaginatedResult[entity.Service], error) {
	params := filter.Page()
	filter.Pagination = params

	services, total, err := s.serviceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(services, params, total), nil
}

// UpdateService updates a catalog service
func (s *CatalogService) UpdateService(ctx context.Context, id uuid.UUID, input *ServiceInput) (*entity.Service, error) {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, apperror.NewFieldError("name", "Nome é obrigatório", nil)
	}
	if err := applyService(svc, input); err != nil {
		return nil, err
	}
	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// DeleteService deletes a catalog service
func (s *CatalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	return s.serviceRepo.Delete(ctx, id)
}

func applyService(svc *entity.Service, input *ServiceInput) error {
	if input.Name != nil {
		svc.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		svc.Description = *input.Description
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return apperror.NewFieldError("price", "O preço não pode ser negativo", nil)
		}
		svc.Price = *input.Price
	}
	return nil
}
