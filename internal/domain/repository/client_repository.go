package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
)

// ClientFilter narrows a client listing
type ClientFilter struct {
	FilterParams
	VendorScope
	PremiumOnly bool
}

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	GetByDocument(ctx context.Context, document string) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ClientFilter) ([]entity.Client, int64, error)
	// ListPremiumDueOn returns premium clients whose plan payment falls on day
	ListPremiumDueOn(ctx context.Context, day time.Time) ([]entity.Client, error)
}
