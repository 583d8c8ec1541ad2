package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/internal/domain/repository/mocks"
	"github.com/sangkips/gestao-api/pkg/money"
	"go.uber.org/mock/gomock"
)

func TestDashboardService_GetDashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	clients := mocks.NewMockClientRepository(ctrl)
	products := mocks.NewMockProductRepository(ctrl)
	vendors := mocks.NewMockVendorRepository(ctrl)
	sales := mocks.NewMockSaleRepository(ctrl)
	visits := mocks.NewMockVisitRepository(ctrl)
	maintenances := mocks.NewMockMaintenanceRepository(ctrl)
	svc := NewDashboardService(clients, products, vendors, sales, visits, maintenances, fixedClock())

	vendorID := uuid.New()
	scope := repository.VendorScope{VendorID: &vendorID}

	clients.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(12), nil).Times(2)
	products.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(4), nil)
	sales.EXPECT().Revenue(gomock.Any(), scope, gomock.Any()).Return(&repository.RevenueSummary{}, nil)
	sales.EXPECT().Revenue(gomock.Any(), scope, repository.DateRange{}).Return(&repository.RevenueSummary{
		Revenue: money.FromUnits(1000, 0),
		Count:   3,
	}, nil)
	visits.EXPECT().CountByStatus(gomock.Any(), scope).Return(map[enum.VisitStatus]int64{
		enum.VisitStatusScheduled: 2,
		enum.VisitStatusThinking:  1,
	}, nil)
	visits.EXPECT().Upcoming(gomock.Any(), scope, gomock.Any(), dashboardListSize).Return(nil, nil)
	maintenances.EXPECT().Upcoming(gomock.Any(), scope, gomock.Any(), dashboardListSize).Return(nil, nil)
	vendors.EXPECT().GetByID(gomock.Any(), vendorID).Return(&entity.Vendor{ID: vendorID, TotalSales: money.FromUnits(1000, 0)}, nil)

	stats, err := svc.GetDashboardStats(context.Background(), vendorActor(vendorID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.AverageTicket != money.FromUnits(333, 33) {
		t.Fatalf("average ticket = %v", stats.AverageTicket)
	}
	if stats.VisitsByStatus[enum.VisitStatusScheduled] != 2 || stats.VisitsByStatus[enum.VisitStatusThinking] != 1 {
		t.Fatalf("visits by status = %v", stats.VisitsByStatus)
	}
	if stats.Tier == nil || stats.Tier.Current != enum.TierBronze {
		t.Fatalf("tier = %+v", stats.Tier)
	}
	if stats.VendorRanking != nil {
		t.Fatal("vendors must not see the ranking")
	}
}
