package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
)

// VisitFilter narrows a visit listing
type VisitFilter struct {
	FilterParams
	VendorScope
	DateRange
	Status *enum.VisitStatus
}

// VisitRepository defines the interface for visit data operations
type VisitRepository interface {
	Create(ctx context.Context, visit *entity.Visit) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error)
	Update(ctx context.Context, visit *entity.Visit) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter VisitFilter) ([]entity.Visit, int64, error)
	// Upcoming returns visits scheduled at or after from, soonest first
	Upcoming(ctx context.Context, scope VendorScope, from time.Time, limit int) ([]entity.Visit, error)
	// CountByStatus counts visits per status; absent statuses are omitted
	CountByStatus(ctx context.Context, scope VendorScope) (map[enum.VisitStatus]int64, error)
}

// MaintenanceFilter narrows a maintenance listing
type MaintenanceFilter struct {
	FilterParams
	VendorScope
	DateRange
	ClientID *uuid.UUID
	Status   *enum.MaintenanceStatus
	Type     *enum.MaintenanceType
}

// MaintenanceRepository defines the interface for maintenance data operations
type MaintenanceRepository interface {
	Create(ctx context.Context, maintenance *entity.Maintenance) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Maintenance, error)
	Update(ctx context.Context, maintenance *entity.Maintenance) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter MaintenanceFilter) ([]entity.Maintenance, int64, error)
	// Upcoming returns scheduled maintenances at or after from, soonest first
	Upcoming(ctx context.Context, scope VendorScope, from time.Time, limit int) ([]entity.Maintenance, error)
	// DueBetween returns completed maintenances whose next date falls in period
	DueBetween(ctx context.Context, scope VendorScope, period DateRange) ([]entity.Maintenance, error)
}
