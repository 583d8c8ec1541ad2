package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/commission"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/pkg/money"
	"github.com/sangkips/gestao-api/pkg/pagination"
)

const dashboardListSize = 5

// DashboardService provides dashboard statistics
type DashboardService struct {
	clientRepo      repository.ClientRepository
	productRepo     repository.ProductRepository
	vendorRepo      repository.VendorRepository
	saleRepo        repository.SaleRepository
	visitRepo       repository.VisitRepository
	maintenanceRepo repository.MaintenanceRepository
	now             Clock
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	vendorRepo repository.VendorRepository,
	saleRepo repository.SaleRepository,
	visitRepo repository.VisitRepository,
	maintenanceRepo repository.MaintenanceRepository,
	now Clock,
) *DashboardService {
	return &DashboardService{
		clientRepo:      clientRepo,
		productRepo:     productRepo,
		vendorRepo:      vendorRepo,
		saleRepo:        saleRepo,
		visitRepo:       visitRepo,
		maintenanceRepo: maintenanceRepo,
		now:             now,
	}
}

// VendorStanding is a vendor's month and tier for the ranking
type VendorStanding struct {
	repository.VendorRevenue
	Level enum.Tier `json:"level"`
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalClients         int64                      `json:"total_clients"`
	PremiumClients       int64                      `json:"premium_clients"`
	TotalProducts        int64                      `json:"total_products"`
	TotalVendors         int64                      `json:"total_vendors,omitempty"`
	MonthRevenue         repository.RevenueSummary  `json:"month_revenue"`
	TotalRevenue         repository.RevenueSummary  `json:"total_revenue"`
	AverageTicket        money.Cents                `json:"average_ticket"`
	VisitsByStatus       map[enum.VisitStatus]int64 `json:"visits_by_status"`
	UpcomingVisits       []entity.Visit             `json:"upcoming_visits"`
	UpcomingMaintenances []entity.Maintenance       `json:"upcoming_maintenances"`
	VendorRanking        []VendorStanding           `json:"vendor_ranking,omitempty"`
	Tier                 *commission.Progress       `json:"tier,omitempty"`
}

// GetDashboardStats returns the overview the actor is allowed to see.
// Admins get the vendor ranking; vendors get their own tier progress.
func (s *DashboardService) GetDashboardStats(ctx context.Context, actor Actor) (*DashboardStats, error) {
	stats := &DashboardStats{}
	scope := actor.Scope()
	countOnly := repository.FilterParams{Pagination: &pagination.PaginationParams{Page: 1, PerPage: 1}}

	var err error
	if _, stats.TotalClients, err = s.clientRepo.List(ctx, repository.ClientFilter{FilterParams: countOnly, VendorScope: scope}); err != nil {
		return nil, err
	}
	if _, stats.PremiumClients, err = s.clientRepo.List(ctx, repository.ClientFilter{FilterParams: countOnly, VendorScope: scope, PremiumOnly: true}); err != nil {
		return nil, err
	}
	if _, stats.TotalProducts, err = s.productRepo.List(ctx, countOnly); err != nil {
		return nil, err
	}

	now := s.now()
	today := startOfDay(now)
	monthStart := today.AddDate(0, 0, 1-today.Day())
	month := repository.DateRange{From: &monthStart}

	monthRevenue, err := s.saleRepo.Revenue(ctx, scope, month)
	if err != nil {
		return nil, err
	}
	stats.MonthRevenue = *monthRevenue
	totalRevenue, err := s.saleRepo.Revenue(ctx, scope, repository.DateRange{})
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = *totalRevenue
	// per completed sale, not per client
	stats.AverageTicket = totalRevenue.Revenue.DivideBy(totalRevenue.Count)

	if stats.VisitsByStatus, err = s.visitRepo.CountByStatus(ctx, scope); err != nil {
		return nil, err
	}

	if stats.UpcomingVisits, err = s.visitRepo.Upcoming(ctx, scope, today, dashboardListSize); err != nil {
		return nil, err
	}
	if stats.UpcomingMaintenances, err = s.maintenanceRepo.Upcoming(ctx, scope, today, dashboardListSize); err != nil {
		return nil, err
	}

	if actor.IsAdmin {
		if err := s.fillRanking(ctx, stats, month); err != nil {
			return nil, err
		}
	}
	if actor.VendorID != nil {
		vendor, err := s.vendorRepo.GetByID(ctx, *actor.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor != nil {
			progress := commission.NextTier(vendor.TotalSales)
			stats.Tier = &progress
		}
	}
	return stats, nil
}

func (s *DashboardService) fillRanking(ctx context.Context, stats *DashboardStats, month repository.DateRange) error {
	vendors, total, err := s.vendorRepo.List(ctx, repository.FilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: pagination.MaxPerPage},
	})
	if err != nil {
		return err
	}
	stats.TotalVendors = total

	levels := make(map[uuid.UUID]enum.Tier, len(vendors))
	for _, v := range vendors {
		levels[v.ID] = v.Level
	}

	revenue, err := s.saleRepo.RevenueByVendor(ctx, month)
	if err != nil {
		return err
	}
	stats.VendorRanking = make([]VendorStanding, len(revenue))
	for i, r := range revenue {
		level, ok := levels[r.VendorID]
		if !ok {
			level = enum.TierBronze
		}
		stats.VendorRanking[i] = VendorStanding{VendorRevenue: r, Level: level}
	}
	return nil
}
