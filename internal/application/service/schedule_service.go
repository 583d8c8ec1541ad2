package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/internal/domain/schedule"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"github.com/sangkips/gestao-api/pkg/pagination"
)

const (
	defaultUpcomingLimit = 10
	maxUpcomingLimit     = 50
)

func upcomingLimit(limit int) int {
	if limit <= 0 {
		return defaultUpcomingLimit
	}
	if limit > maxUpcomingLimit {
		return maxUpcomingLimit
	}
	return limit
}

// VisitService handles the visit agenda
type VisitService struct {
	visitRepo  repository.VisitRepository
	clientRepo repository.ClientRepository
	now        Clock
}

// NewVisitService creates a new visit service
func NewVisitService(visitRepo repository.VisitRepository, clientRepo repository.ClientRepository, now Clock) *VisitService {
	return &VisitService{visitRepo: visitRepo, clientRepo: clientRepo, now: now}
}

// VisitInput carries the editable visit fields
type VisitInput struct {
	VendorID        *uuid.UUID
	ClientID        *uuid.UUID
	ClientName      *string
	ScheduledDate   *time.Time
	Status          *enum.VisitStatus
	Location        *string
	Notes           *string
	FollowUpDate    *time.Time
	RejectionReason *string
	MaintenanceType *enum.MaintenanceType
}

// CreateVisit schedules a visit. The status starts as scheduled unless the
// caller records a visit that already happened.
func (s *VisitService) CreateVisit(ctx context.Context, actor Actor, input *VisitInput) (*entity.Visit, error) {
	vendorID, err := actor.requireVendor(input.VendorID)
	if err != nil {
		return nil, err
	}
	if input.ScheduledDate == nil || input.ScheduledDate.IsZero() {
		return nil, apperror.NewFieldError("scheduled_date", "Data da visita é obrigatória", nil)
	}

	visit := &entity.Visit{VendorID: vendorID, Status: schedule.InitialVisitStatus}
	if err := s.apply(ctx, visit, input); err != nil {
		return nil, err
	}
	if strings.TrimSpace(visit.ClientName) == "" {
		return nil, apperror.NewFieldError("client_name", "Informe o cliente", nil)
	}
	if err := schedule.CheckStatusFields(visit.Status, visit.StatusFields()); err != nil {
		return nil, TranslateError(err)
	}

	if err := s.visitRepo.Create(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

// GetVisit retrieves a visit the actor may see
func (s *VisitService) GetVisit(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Visit, error) {
	visit, err := s.visitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if visit == nil || !actor.CanAccess(visit.VendorID) {
		return nil, apperror.NewNotFoundError("Visit")
	}
	return visit, nil
}

// ListVisitsInput holds the visit listing options
type ListVisitsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	SortBy     string
	SortOrder  string
	VendorID   *uuid.UUID
	Status     *enum.VisitStatus
	From       *time.Time
	To         *time.Time
}

// ListVisits lists the visits the actor can see
func (s *VisitService) ListVisits(ctx context.Context, actor Actor, input *ListVisitsInput) (*pagination.PaginatedResult[entity.Visit], error) {
	scope := actor.Scope()
	if actor.IsAdmin && input.VendorID != nil {
		scope.VendorID = input.VendorID
	}
	filter := repository.VisitFilter{
		FilterParams: repository.FilterParams{
			Pagination: input.Pagination,
			Search:     input.Search,
			SortBy:     input.SortBy,
			SortOrder:  input.SortOrder,
		},
		VendorScope: scope,
		DateRange:   repository.DateRange{From: input.From, To: input.To},
		Status:      input.Status,
	}
	params := filter.Page()
	filter.Pagination = params

	visits, total, err := s.visitRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(visits, params, total), nil
}

// UpdateVisit edits a visit and re-checks the fields its status requires
func (s *VisitService) UpdateVisit(ctx context.Context, actor Actor, id uuid.UUID, input *VisitInput) (*entity.Visit, error) {
	visit, err := s.GetVisit(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, visit, input); err != nil {
		return nil, err
	}
	if err := schedule.CheckStatusFields(visit.Status, visit.StatusFields()); err != nil {
		return nil, TranslateError(err)
	}
	if err := s.visitRepo.Update(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

// VisitStatusInput moves a visit to a new status with the fields it needs
type VisitStatusInput struct {
	Status          enum.VisitStatus
	FollowUpDate    *time.Time
	RejectionReason *string
}

// UpdateStatus changes a visit's status. Every status may follow any other;
// only the status-specific fields are enforced.
func (s *VisitService) UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, input *VisitStatusInput) (*entity.Visit, error) {
	if !input.Status.IsValid() {
		return nil, TranslateError(&enum.InvalidValueError{Type: "status", Value: string(input.Status)})
	}
	visit, err := s.GetVisit(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	// the record keeps what it already has unless the request overrides it
	fields := visit.StatusFields().Merge(schedule.VisitFields{FollowUpDate: input.FollowUpDate, RejectionReason: input.RejectionReason})
	if err := schedule.CheckStatusFields(input.Status, fields); err != nil {
		return nil, TranslateError(err)
	}

	visit.Status = input.Status
	if input.FollowUpDate != nil {
		visit.FollowUpDate = input.FollowUpDate
	}
	if input.RejectionReason != nil {
		reason := strings.TrimSpace(*input.RejectionReason)
		visit.RejectionReason = &reason
	}
	if err := s.visitRepo.Update(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

// DeleteVisit deletes a visit
func (s *VisitService) DeleteVisit(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.GetVisit(ctx, actor, id); err != nil {
		return err
	}
	return s.visitRepo.Delete(ctx, id)
}

// Upcoming returns the actor's next visits, soonest first
func (s *VisitService) Upcoming(ctx context.Context, actor Actor, limit int) ([]entity.Visit, error) {
	return s.visitRepo.Upcoming(ctx, actor.Scope(), startOfDay(s.now()), upcomingLimit(limit))
}

func (s *VisitService) apply(ctx context.Context, visit *entity.Visit, input *VisitInput) error {
	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return apperror.NewNotFoundError("Client")
		}
		visit.ClientID = input.ClientID
		visit.ClientName = client.Name
	} else if input.ClientName != nil {
		visit.ClientName = strings.TrimSpace(*input.ClientName)
	}
	if input.ScheduledDate != nil {
		visit.ScheduledDate = *input.ScheduledDate
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return TranslateError(&enum.InvalidValueError{Type: "status", Value: string(*input.Status)})
		}
		visit.Status = *input.Status
	}
	if input.Location != nil {
		visit.Location = *input.Location
	}
	if input.Notes != nil {
		visit.Notes = *input.Notes
	}
	if input.FollowUpDate != nil {
		visit.FollowUpDate = input.FollowUpDate
	}
	if input.RejectionReason != nil {
		visit.RejectionReason = input.RejectionReason
	}
	if input.MaintenanceType != nil {
		visit.MaintenanceType = input.MaintenanceType
	}
	return nil
}

// MaintenanceService handles refill and service appointments
type MaintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	clientRepo      repository.ClientRepository
	vendorRepo      repository.VendorRepository
	now             Clock
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(
	maintenanceRepo repository.MaintenanceRepository,
	clientRepo repository.ClientRepository,
	vendorRepo repository.VendorRepository,
	now Clock,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		clientRepo:      clientRepo,
		vendorRepo:      vendorRepo,
		now:             now,
	}
}

// MaintenanceInput carries the editable maintenance fields
type MaintenanceInput struct {
	VendorID      *uuid.UUID
	ClientID      *uuid.UUID
	ProductName   *string
	Type          *enum.MaintenanceType
	ScheduledDate *time.Time
	Notes         *string
}

// CreateMaintenance schedules a maintenance for a client
func (s *MaintenanceService) CreateMaintenance(ctx context.Context, actor Actor, input *MaintenanceInput) (*entity.Maintenance, error) {
	vendorID, err := actor.requireVendor(input.VendorID)
	if err != nil {
		return nil, err
	}
	if input.ClientID == nil {
		return nil, apperror.NewFieldError("client_id", "Cliente é obrigatório", nil)
	}
	if input.Type == nil {
		return nil, apperror.NewFieldError("maintenance_type", "Tipo de manutenção é obrigatório", nil)
	}
	if input.ScheduledDate == nil || input.ScheduledDate.IsZero() {
		return nil, apperror.NewFieldError("scheduled_date", "Data é obrigatória", nil)
	}
	if input.ProductName == nil || strings.TrimSpace(*input.ProductName) == "" {
		return nil, apperror.NewFieldError("product_name", "Produto é obrigatório", nil)
	}

	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	maintenance := &entity.Maintenance{
		VendorID:   vendor.ID,
		VendorName: vendor.Name,
		Status:     schedule.InitialMaintenanceStatus,
	}
	if err := s.apply(ctx, maintenance, input); err != nil {
		return nil, err
	}
	if err := s.maintenanceRepo.Create(ctx, maintenance); err != nil {
		return nil, err
	}
	return maintenance, nil
}

// GetMaintenance retrieves a maintenance the actor may see
func (s *MaintenanceService) GetMaintenance(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Maintenance, error) {
	maintenance, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if maintenance == nil || !actor.CanAccess(maintenance.VendorID) {
		return nil, apperror.NewNotFoundError("Maintenance")
	}
	return maintenance, nil
}

// ListMaintenancesInput holds the maintenance listing options
type ListMaintenancesInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	SortBy     string
	SortOrder  string
	ClientID   *uuid.UUID
	Status     *enum.MaintenanceStatus
	Type       *enum.MaintenanceType
	From       *time.Time
	To         *time.Time
}

// ListMaintenances lists the maintenances the actor can see
func (s *MaintenanceService) ListMaintenances(ctx context.Context, actor Actor, input *ListMaintenancesInput) (*pagination.PaginatedResult[entity.Maintenance], error) {
	filter := repository.MaintenanceFilter{
		FilterParams: repository.FilterParams{
			Pagination: input.Pagination,
			Search:     input.Search,
			SortBy:     input.SortBy,
			SortOrder:  input.SortOrder,
		},
		VendorScope: actor.Scope(),
		DateRange:   repository.DateRange{From: input.From, To: input.To},
		ClientID:    input.ClientID,
		Status:      input.Status,
		Type:        input.Type,
	}
	params := filter.Page()
	filter.Pagination = params

	maintenances, total, err := s.maintenanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(maintenances, params, total), nil
}

// UpdateMaintenance edits an open maintenance
func (s *MaintenanceService) UpdateMaintenance(ctx context.Context, actor Actor, id uuid.UUID, input *MaintenanceInput) (*entity.Maintenance, error) {
	maintenance, err := s.GetMaintenance(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, maintenance, input); err != nil {
		return nil, err
	}
	if err := s.maintenanceRepo.Update(ctx, maintenance); err != nil {
		return nil, err
	}
	return maintenance, nil
}

// UpdateStatus changes a maintenance's status. Moving to concluido goes
// through Complete so the next due date is always set; leaving it clears
// the completion stamps.
func (s *MaintenanceService) UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, status enum.MaintenanceStatus) (*entity.Maintenance, error) {
	if !status.IsValid() {
		return nil, TranslateError(&enum.InvalidValueError{Type: "status", Value: string(status)})
	}
	if status == enum.MaintenanceStatusCompleted {
		return s.Complete(ctx, actor, id)
	}

	maintenance, err := s.GetMaintenance(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if maintenance.Status == enum.MaintenanceStatusCompleted {
		// reopened: the old completion no longer schedules anything
		maintenance.CompletedAt = nil
		maintenance.NextMaintenanceDate = nil
	}
	maintenance.Status = status
	if err := s.maintenanceRepo.Update(ctx, maintenance); err != nil {
		return nil, err
	}
	return maintenance, nil
}

// Complete stamps the completion time and schedules the next maintenance
// from the type's interval
func (s *MaintenanceService) Complete(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Maintenance, error) {
	maintenance, err := s.GetMaintenance(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if maintenance.Status == enum.MaintenanceStatusCanceled {
		return nil, apperror.NewConflictError("Cancelled maintenance cannot be completed")
	}
	if err := maintenance.Complete(s.now()); err != nil {
		return nil, TranslateError(err)
	}
	if err := s.maintenanceRepo.Update(ctx, maintenance); err != nil {
		return nil, err
	}
	return maintenance, nil
}

// DeleteMaintenance deletes a maintenance
func (s *MaintenanceService) DeleteMaintenance(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.GetMaintenance(ctx, actor, id); err != nil {
		return err
	}
	return s.maintenanceRepo.Delete(ctx, id)
}

// Upcoming returns the actor's next scheduled maintenances
func (s *MaintenanceService) Upcoming(ctx context.Context, actor Actor, limit int) ([]entity.Maintenance, error) {
	return s.maintenanceRepo.Upcoming(ctx, actor.Scope(), startOfDay(s.now()), upcomingLimit(limit))
}

// Due returns completed maintenances whose next date falls within the
// coming days, including overdue ones from the past week
func (s *MaintenanceService) Due(ctx context.Context, actor Actor, days int) ([]entity.Maintenance, error) {
	if days <= 0 {
		days = 7
	}
	today := startOfDay(s.now())
	from := today.AddDate(0, 0, -7)
	to := today.AddDate(0, 0, days+1)

	return s.maintenanceRepo.DueBetween(ctx, actor.Scope(), repository.DateRange{From: &from, To: &to})
}

func (s *MaintenanceService) apply(ctx context.Context, maintenance *entity.Maintenance, input *MaintenanceInput) error {
	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return apperror.NewNotFoundError("Client")
		}
		maintenance.ClientID = client.ID
		maintenance.ClientName = client.Name
		maintenance.ClientPhone = client.Phone
	}
	if input.ProductName != nil {
		maintenance.ProductName = strings.TrimSpace(*input.ProductName)
	}
	if input.Type != nil {
		if _, err := schedule.IntervalDays(*input.Type); err != nil {
			return TranslateError(err)
		}
		maintenance.Type = *input.Type
	}
	if input.ScheduledDate != nil {
		maintenance.ScheduledDate = *input.ScheduledDate
	}
	if input.Notes != nil {
		maintenance.Notes = *input.Notes
	}
	return nil
}
