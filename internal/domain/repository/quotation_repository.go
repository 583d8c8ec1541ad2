package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
)

// QuotationFilter narrows a quotation listing
type QuotationFilter struct {
	FilterParams
	VendorScope
	ClientID *uuid.UUID
	Status   *enum.QuotationStatus
}

// QuotationRepository defines the interface for quotation data operations
type QuotationRepository interface {
	Create(ctx context.Context, quotation *entity.Quotation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	// Update saves the header and replaces the item list
	Update(ctx context.Context, quotation *entity.Quotation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter QuotationFilter) ([]entity.Quotation, int64, error)
}
