package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/commission"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/pricing"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/internal/metrics"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"github.com/sangkips/gestao-api/pkg/money"
	"github.com/sangkips/gestao-api/pkg/pagination"
	"github.com/sangkips/gestao-api/pkg/utils"
	"go.uber.org/zap"
)

const maxInstallments = 24

// SaleService handles sale-related operations
type SaleService struct {
	saleRepo   repository.SaleRepository
	vendorRepo repository.VendorRepository
	clientRepo repository.ClientRepository
	catalog    catalog
	metrics    *metrics.Metrics
	log        *zap.Logger
	now        Clock
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	vendorRepo repository.VendorRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
	m *metrics.Metrics,
	log *zap.Logger,
	now Clock,
) *SaleService {
	return &SaleService{
		saleRepo:   saleRepo,
		vendorRepo: vendorRepo,
		clientRepo: clientRepo,
		catalog:    catalog{products: productRepo, services: serviceRepo},
		metrics:    m,
		log:        log,
		now:        now,
	}
}

// PreviewInput is the cart a sale or quotation form is showing
type PreviewInput struct {
	Items    []LineItemInput
	Discount money.Cents
}

// Preview is the priced cart. A rejected discount is reported in Errors with
// display-only totals instead of failing the call.
type Preview struct {
	Lines  []pricing.Line        `json:"items"`
	Totals pricing.Totals        `json:"totals"`
	Valid  bool                  `json:"valid"`
	Errors []apperror.FieldError `json:"errors,omitempty"`
}

// Preview prices a cart without writing anything
func (s *SaleService) Preview(ctx context.Context, input *PreviewInput) (*Preview, error) {
	cart, err := s.catalog.cart(ctx, input.Items, input.Discount)
	if err != nil {
		return nil, err
	}
	return previewCart(cart)
}

func previewCart(cart *pricing.Cart) (*Preview, error) {
	totals, err := cart.Totals()
	preview := &Preview{Lines: cart.Lines(), Totals: totals, Valid: err == nil}
	if err != nil {
		if !errors.Is(err, pricing.ErrInvalidDiscount) {
			return nil, TranslateError(err)
		}
		preview.Errors = apperror.GetAppError(TranslateError(err)).Errors
	}
	return preview, nil
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	VendorID      *uuid.UUID
	ClientID      *uuid.UUID
	ClientName    string
	QuotationID   *uuid.UUID
	Items         []LineItemInput
	Discount      money.Cents
	PaymentMethod enum.PaymentMethod
	Installments  int
	Observations  string
	Date          *time.Time
}

// CreateSale prices the cart, credits the vendor's commission and books the
// revenue in the ledger, all in one store transaction
func (s *SaleService) CreateSale(ctx context.Context, actor Actor, input *CreateSaleInput) (*entity.Sale, error) {
	vendorID, err := actor.requireVendor(input.VendorID)
	if err != nil {
		return nil, err
	}
	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	clientName := strings.TrimSpace(input.ClientName)
	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.NewNotFoundError("Client")
		}
		clientName = client.Name
	}
	if clientName == "" {
		return nil, apperror.NewFieldError("client_name", "Informe o cliente", nil)
	}

	if input.PaymentMethod == "" {
		return nil, apperror.NewFieldError("payment_method", "Forma de pagamento é obrigatória", nil)
	}
	installments := input.Installments
	if installments == 0 {
		installments = 1
	}
	if installments < 1 || installments > maxInstallments {
		return nil, apperror.NewFieldError("installments", "Parcelas devem estar entre 1 e 24", nil)
	}

	cart, err := s.catalog.cart(ctx, input.Items, input.Discount)
	if err != nil {
		return nil, err
	}
	totals, err := cart.Totals()
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidDiscount) {
			s.metrics.DiscountRejected()
		}
		return nil, TranslateError(err)
	}

	now := s.now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	sale := &entity.Sale{
		Reference:     utils.GenerateReferenceNo("VND", now),
		ClientID:      input.ClientID,
		ClientName:    clientName,
		VendorID:      vendor.ID,
		VendorName:    vendor.Name,
		QuotationID:   input.QuotationID,
		Subtotal:      totals.Subtotal,
		Discount:      totals.Discount,
		Total:         totals.Total,
		Commission:    commission.CommissionFor(totals.Total, vendor.CommissionRate),
		PaymentMethod: input.PaymentMethod,
		Installments:  installments,
		Observations:  input.Observations,
		Status:        enum.SaleStatusCompleted,
		Date:          date,
		Items:         entity.SaleItemsFromLines(cart.Lines()),
	}

	refType := enum.ReferenceTypeSale
	ledger := &entity.FinancialTransaction{
		Type:          enum.TransactionTypeIncome,
		Category:      enum.CategorySales,
		Description:   "Venda " + sale.Reference + " - " + clientName,
		Amount:        sale.Total,
		Date:          date,
		PaymentMethod: sale.PaymentMethod,
		ReferenceType: &refType,
		VendorID:      &vendor.ID,
	}

	if err := s.saleRepo.Create(ctx, &repository.SaleWrite{Sale: sale, Ledger: ledger}); err != nil {
		return nil, err
	}

	s.metrics.SaleCreated(string(sale.PaymentMethod), int64(sale.Total))
	s.log.Info("sale created",
		zap.String("sale_id", sale.ID.String()),
		zap.String("reference", sale.Reference),
		zap.String("vendor_id", vendor.ID.String()),
		zap.Int64("total_cents", int64(sale.Total)),
		zap.Int64("commission_cents", int64(sale.Commission)),
	)
	return sale, nil
}

// GetSale retrieves a sale the actor may see
func (s *SaleService) GetSale(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil || !actor.CanAccess(sale.VendorID) {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// CancelSale marks a sale cancelled, reverses the vendor credit and books an
// estorno in the ledger
func (s *SaleService) CancelSale(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.GetSale(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if sale.IsCancelled() {
		return nil, apperror.NewConflictError("Sale already cancelled")
	}

	now := s.now()
	refType := enum.ReferenceTypeSaleReverse
	cancelled, err := s.saleRepo.Cancel(ctx, &repository.SaleCancellation{
		SaleID: sale.ID,
		At:     now,
		Reversal: &entity.FinancialTransaction{
			Type:          enum.TransactionTypeExpense,
			Category:      enum.CategorySalesReversal,
			Description:   "Estorno da venda " + sale.Reference,
			Amount:        sale.Total,
			Date:          now,
			PaymentMethod: sale.PaymentMethod,
			ReferenceID:   &sale.ID,
			ReferenceType: &refType,
			VendorID:      &sale.VendorID,
		},
	})
	if err != nil {
		return nil, err
	}

	s.metrics.SaleCancelled()
	s.log.Info("sale cancelled",
		zap.String("sale_id", sale.ID.String()),
		zap.String("reference", sale.Reference),
	)
	return cancelled, nil
}

// ListSalesInput holds the sale listing options
type ListSalesInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	SortBy     string
	SortOrder  string
	VendorID   *uuid.UUID
	ClientID   *uuid.UUID
	Status     *enum.SaleStatus
	From       *time.Time
	To         *time.Time
}

// ListSales lists the sales the actor can see
func (s *SaleService) ListSales(ctx context.Context, actor Actor, input *ListSalesInput) (*pagination.PaginatedResult[entity.Sale], error) {
	scope := actor.Scope()
	if actor.IsAdmin && input.VendorID != nil {
		scope.VendorID = input.VendorID
	}

	filter := repository.SaleFilter{
		FilterParams: repository.FilterParams{
			Pagination: input.Pagination,
			Search:     input.Search,
			SortBy:     input.SortBy,
			SortOrder:  input.SortOrder,
		},
		VendorScope: scope,
		DateRange:   repository.DateRange{From: input.From, To: input.To},
		ClientID:    input.ClientID,
		Status:      input.Status,
	}
	params := filter.Page()
	filter.Pagination = params

	sales, total, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(sales, params, total), nil
}

// Revenue sums the completed sales the actor can see in a period
func (s *SaleService) Revenue(ctx context.Context, actor Actor, period repository.DateRange) (*repository.RevenueSummary, error) {
	return s.saleRepo.Revenue(ctx, actor.Scope(), period)
}
