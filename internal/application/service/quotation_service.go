package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/pricing"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/internal/metrics"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"github.com/sangkips/gestao-api/pkg/money"
	"github.com/sangkips/gestao-api/pkg/pagination"
	"github.com/sangkips/gestao-api/pkg/utils"
)

// QuotationService handles quotation-related operations
type QuotationService struct {
	quotationRepo repository.QuotationRepository
	clientRepo    repository.ClientRepository
	catalog       catalog
	sales         *SaleService
	metrics       *metrics.Metrics
	now           Clock
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
	sales *SaleService,
	m *metrics.Metrics,
	now Clock,
) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		clientRepo:    clientRepo,
		catalog:       catalog{products: productRepo, services: serviceRepo},
		sales:         sales,
		metrics:       m,
		now:           now,
	}
}

// QuotationInput represents the create/update quotation input
type QuotationInput struct {
	VendorID   *uuid.UUID
	ClientID   *uuid.UUID
	ClientName string
	Items      []LineItemInput
	Discount   money.Cents
	ValidUntil *time.Time
	Notes      string
}

// CreateQuotation prices the cart and stores a draft quotation
func (s *QuotationService) CreateQuotation(ctx context.Context, actor Actor, input *QuotationInput) (*entity.Quotation, error) {
	vendorID, err := actor.requireVendor(input.VendorID)
	if err != nil {
		return nil, err
	}

	quotation := &entity.Quotation{
		Reference: utils.GenerateReferenceNo("ORC", s.now()),
		VendorID:  vendorID,
		Status:    enum.QuotationStatusDraft,
	}
	if err := s.fill(ctx, quotation, input); err != nil {
		return nil, err
	}

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, err
	}
	return quotation, nil
}

// GetQuotation retrieves a quotation the actor may see
func (s *QuotationService) GetQuotation(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil || !actor.CanAccess(quotation.VendorID) {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

// ListQuotationsInput holds the quotation listing options
type ListQuotationsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	SortBy     string
	SortOrder  string
	ClientID   *uuid.UUID
	Status     *enum.QuotationStatus
}

// ListQuotations lists the quotations the actor can see
func (s *QuotationService) ListQuotations(ctx context.Context, actor Actor, input *ListQuotationsInput) (*pagination.PaginatedResult[entity.Quotation], error) {
	filter := repository.QuotationFilter{
		FilterParams: repository.FilterParams{
			Pagination: input.Pagination,
			Search:     input.Search,
			SortBy:     input.SortBy,
			SortOrder:  input.SortOrder,
		},
		VendorScope: actor.Scope(),
		ClientID:    input.ClientID,
		Status:      input.Status,
	}
	params := filter.Page()
	filter.Pagination = params

	quotations, total, err := s.quotationRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(quotations, params, total), nil
}

// UpdateQuotation reprices and replaces the items of an open quotation
func (s *QuotationService) UpdateQuotation(ctx context.Context, actor Actor, id uuid.UUID, input *QuotationInput) (*entity.Quotation, error) {
	quotation, err := s.GetQuotation(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := ensureOpen(quotation); err != nil {
		return nil, err
	}
	if err := s.fill(ctx, quotation, input); err != nil {
		return nil, err
	}

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}
	return quotation, nil
}

// UpdateStatus moves a quotation between draft, sent, accepted and rejected.
// A converted quotation is frozen and an expired one cannot be accepted.
func (s *QuotationService) UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, status enum.QuotationStatus) (*entity.Quotation, error) {
	if _, err := enum.ParseQuotationStatus(string(status)); err != nil {
		return nil, TranslateError(err)
	}
	quotation, err := s.GetQuotation(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if quotation.SaleID != nil {
		return nil, apperror.NewConflictError("Quotation already converted to a sale")
	}
	if status == enum.QuotationStatusAccepted && quotation.IsExpired(s.now()) {
		return nil, apperror.NewFieldError("status", "Orçamento expirado não pode ser aceito", nil)
	}

	if err := s.quotationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	quotation.Status = status
	return quotation, nil
}

// DeleteQuotation deletes a quotation that was never converted
func (s *QuotationService) DeleteQuotation(ctx context.Context, actor Actor, id uuid.UUID) error {
	quotation, err := s.GetQuotation(ctx, actor, id)
	if err != nil {
		return err
	}
	if quotation.SaleID != nil {
		return apperror.NewConflictError("Quotation already converted to a sale")
	}
	return s.quotationRepo.Delete(ctx, id)
}

// ConvertInput carries the sale fields a quotation does not have
type ConvertInput struct {
	PaymentMethod enum.PaymentMethod
	Installments  int
	Observations  string
}

// ConvertToSale creates a sale from the quotation at its quoted prices. The
// store links the quotation and marks it accepted in the sale transaction.
func (s *QuotationService) ConvertToSale(ctx context.Context, actor Actor, id uuid.UUID, input *ConvertInput) (*entity.Sale, error) {
	quotation, err := s.GetQuotation(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if quotation.SaleID != nil {
		return nil, apperror.NewConflictError("Quotation already converted to a sale")
	}
	if quotation.Status == enum.QuotationStatusRejected {
		return nil, apperror.NewConflictError("Rejected quotation cannot be converted")
	}
	if quotation.IsExpired(s.now()) {
		return nil, apperror.NewConflictError("Quotation expired")
	}

	lines := quotation.Lines()
	items := make([]LineItemInput, len(lines))
	for i, l := range lines {
		price := l.UnitPrice
		items[i] = LineItemInput{Type: l.Kind, ItemID: l.ItemID, Quantity: l.Quantity, UnitPrice: &price}
	}

	vendorID := quotation.VendorID
	return s.sales.CreateSale(ctx, actor, &CreateSaleInput{
		VendorID:      &vendorID,
		ClientID:      quotation.ClientID,
		ClientName:    quotation.ClientName,
		QuotationID:   &quotation.ID,
		Items:         items,
		Discount:      quotation.Discount,
		PaymentMethod: input.PaymentMethod,
		Installments:  input.Installments,
		Observations:  strings.TrimSpace(quotation.Notes + "\n" + input.Observations),
	})
}

func (s *QuotationService) fill(ctx context.Context, quotation *entity.Quotation, input *QuotationInput) error {
	clientName := strings.TrimSpace(input.ClientName)
	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return apperror.NewNotFoundError("Client")
		}
		clientName = client.Name
	}
	if clientName == "" {
		return apperror.NewFieldError("client_name", "Informe o cliente", nil)
	}

	cart, err := s.catalog.cart(ctx, input.Items, input.Discount)
	if err != nil {
		return err
	}
	totals, err := cart.Totals()
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidDiscount) {
			s.metrics.DiscountRejected()
		}
		return TranslateError(err)
	}

	quotation.ClientID = input.ClientID
	quotation.ClientName = clientName
	quotation.Subtotal = totals.Subtotal
	quotation.Discount = totals.Discount
	quotation.Total = totals.Total
	quotation.ValidUntil = input.ValidUntil
	quotation.Notes = input.Notes
	quotation.Items = entity.QuotationItemsFromLines(cart.Lines())
	return nil
}

func ensureOpen(quotation *entity.Quotation) error {
	if quotation.SaleID != nil {
		return apperror.NewConflictError("Quotation already converted to a sale")
	}
	if quotation.Status == enum.QuotationStatusAccepted || quotation.Status == enum.QuotationStatusRejected {
		return apperror.NewConflictError("Only draft or sent quotations can be edited")
	}
	return nil
}
