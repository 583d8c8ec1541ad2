package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/pkg/money"
)

// SaleWrite is everything a new sale touches. The repository persists the
// sale with its items, the ledger entry and the vendor credit in one
// transaction, and links the source quotation when Sale.QuotationID is set.
type SaleWrite struct {
	Sale   *entity.Sale
	Ledger *entity.FinancialTransaction
}

// SaleCancellation reverses a sale: status, vendor totals and a reversal
// entry in the ledger
type SaleCancellation struct {
	SaleID   uuid.UUID
	At       time.Time
	Reversal *entity.FinancialTransaction
}

// SaleFilter narrows a sale listing
type SaleFilter struct {
	FilterParams
	VendorScope
	DateRange
	ClientID *uuid.UUID
	Status   *enum.SaleStatus
}

// RevenueSummary aggregates completed sales
type RevenueSummary struct {
	Revenue    money.Cents `json:"revenue"`
	Commission money.Cents `json:"commission"`
	Count      int64       `json:"count"`
}

// VendorRevenue is a vendor's completed sales in a period
type VendorRevenue struct {
	VendorID   uuid.UUID   `json:"vendor_id"`
	VendorName string      `json:"vendor_name"`
	Revenue    money.Cents `json:"revenue"`
	Count      int64       `json:"count"`
}

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	Create(ctx context.Context, write *SaleWrite) error
	Cancel(ctx context.Context, cancellation *SaleCancellation) (*entity.Sale, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, filter SaleFilter) ([]entity.Sale, int64, error)
	Revenue(ctx context.Context, scope VendorScope, period DateRange) (*RevenueSummary, error)
	RevenueByVendor(ctx context.Context, period DateRange) ([]VendorRevenue, error)
}
