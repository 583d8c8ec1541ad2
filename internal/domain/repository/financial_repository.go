package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/pkg/money"
)

// FinancialFilter narrows a ledger listing
type FinancialFilter struct {
	FilterParams
	DateRange
	Type     *enum.TransactionType
	Category string
}

// FinancialRepository defines the interface for ledger operations
type FinancialRepository interface {
	Create(ctx context.Context, tx *entity.FinancialTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FinancialTransaction, error)
	Update(ctx context.Context, tx *entity.FinancialTransaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter FinancialFilter) ([]entity.FinancialTransaction, int64, error)
	SumByType(ctx context.Context, txType enum.TransactionType, period DateRange) (money.Cents, error)
	CountOnDate(ctx context.Context, day time.Time) (int64, error)
	// Top returns the largest transactions of a type, largest first
	Top(ctx context.Context, txType enum.TransactionType, limit int) ([]entity.FinancialTransaction, error)
}
