package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/commission"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/internal/metrics"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"github.com/sangkips/gestao-api/pkg/money"
	"github.com/sangkips/gestao-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var maxCommissionRate = decimal.NewFromInt(100)

// VendorService handles vendor profiles, commission payouts and tiers
type VendorService struct {
	vendorRepo repository.VendorRepository
	metrics    *metrics.Metrics
	log        *zap.Logger
	now        Clock
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo repository.VendorRepository, m *metrics.Metrics, log *zap.Logger, now Clock) *VendorService {
	return &VendorService{vendorRepo: vendorRepo, metrics: m, log: log, now: now}
}

// VendorInput carries the editable vendor fields
type VendorInput struct {
	UserID         *uuid.UUID
	Name           *string
	Email          *string
	Phone          *string
	Address        *string
	PhotoURL       *string
	CommissionRate *decimal.Decimal
}

// CreateVendor creates a new vendor
func (s *VendorService) CreateVendor(ctx context.Context, input *VendorInput) (*entity.Vendor, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, apperror.NewFieldError("name", "Nome é obrigatório", nil)
	}
	vendor := &entity.Vendor{Level: enum.TierBronze}
	if err := applyVendor(vendor, input); err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// GetVendor retrieves a vendor the actor may see
func (s *VendorService) GetVendor(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Vendor, error) {
	if !actor.CanAccess(id) {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	return vendor, nil
}

// ListVendors lists vendors
func (s *VendorService) ListVendors(ctx context.Context, filter repository.FilterParams) (*pagination.PaginatedResult[entity.Vendor], error) {
	params := filter.Page()
	filter.Pagination = params

	vendors, total, err := s.vendorRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(vendors, params, total), nil
}

// UpdateVendor updates a vendor's profile and commission rate
func (s *VendorService) UpdateVendor(ctx context.Context, id uuid.UUID, input *VendorInput) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, apperror.NewFieldError("name", "Nome é obrigatório", nil)
	}
	if err := applyVendor(vendor, input); err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// DeleteVendor deletes a vendor
func (s *VendorService) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	return s.vendorRepo.Delete(ctx, id)
}

// PayCommissionInput represents a commission payout
type PayCommissionInput struct {
	VendorID      uuid.UUID
	Amount        money.Cents
	PaymentMethod enum.PaymentMethod
	Description   string
}

// PayCommission moves amount from the vendor's pending to received
// commissions and books the payout as a ledger expense
func (s *VendorService) PayCommission(ctx context.Context, input *PayCommissionInput) (*entity.Vendor, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewFieldError("amount", "O valor deve ser maior que zero", nil)
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = enum.PaymentMethodPix
	}

	vendor, err := s.vendorRepo.GetByID(ctx, input.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	if input.Amount > vendor.PendingCommissions {
		return nil, TranslateError(repository.ErrCommissionExceedsPending)
	}

	description := input.Description
	if description == "" {
		description = "Pagamento de comissão - " + vendor.Name
	}
	refType := enum.ReferenceTypeCommission
	ledger := &entity.FinancialTransaction{
		Type:          enum.TransactionTypeExpense,
		Category:      enum.CategoryCommissionsPaid,
		Description:   description,
		Amount:        input.Amount,
		Date:          s.now(),
		PaymentMethod: input.PaymentMethod,
		ReferenceID:   &vendor.ID,
		ReferenceType: &refType,
		VendorID:      &vendor.ID,
	}

	// the repository re-checks pending under a row lock
	updated, err := s.vendorRepo.PayCommission(ctx, &repository.CommissionPayment{
		VendorID: vendor.ID,
		Amount:   input.Amount,
		Ledger:   ledger,
	})
	if err != nil {
		return nil, TranslateError(err)
	}

	s.metrics.CommissionPaid()
	s.log.Info("commission paid",
		zap.String("vendor_id", vendor.ID.String()),
		zap.Int64("amount_cents", int64(input.Amount)),
	)
	return updated, nil
}

// TierProgress returns the vendor's tier and how far the next one is
func (s *VendorService) TierProgress(ctx context.Context, actor Actor, id uuid.UUID) (*commission.Progress, error) {
	vendor, err := s.GetVendor(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	progress := commission.NextTier(vendor.TotalSales)
	return &progress, nil
}

func applyVendor(vendor *entity.Vendor, input *VendorInput) error {
	if input.UserID != nil {
		vendor.UserID = input.UserID
	}
	if input.Name != nil {
		vendor.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		vendor.Email = strings.TrimSpace(*input.Email)
	}
	if input.Phone != nil {
		vendor.Phone = *input.Phone
	}
	if input.Address != nil {
		vendor.Address = *input.Address
	}
	if input.PhotoURL != nil {
		vendor.PhotoURL = input.PhotoURL
	}
	if input.CommissionRate != nil {
		rate := *input.CommissionRate
		if rate.IsNegative() || rate.GreaterThan(maxCommissionRate) {
			return apperror.NewFieldError("commission_rate", "A comissão deve estar entre 0 e 100%", nil)
		}
		vendor.CommissionRate = rate
	}
	return nil
}
