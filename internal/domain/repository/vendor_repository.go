package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/pkg/money"
)

// ErrCommissionExceedsPending is returned when a payout is larger than what
// the vendor is owed at the time of the write
var ErrCommissionExceedsPending = errors.New("commission payment exceeds pending commissions")

// CommissionPayment moves amount from pending to received and records the
// matching expense in the ledger, atomically
type CommissionPayment struct {
	VendorID uuid.UUID
	Amount   money.Cents
	Ledger   *entity.FinancialTransaction
}

// VendorRepository defines the interface for vendor data operations
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter FilterParams) ([]entity.Vendor, int64, error)
	PayCommission(ctx context.Context, payment *CommissionPayment) (*entity.Vendor, error)
}
