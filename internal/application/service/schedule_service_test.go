package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/internal/domain/repository/mocks"
	"github.com/sangkips/gestao-api/internal/domain/schedule"
	"go.uber.org/mock/gomock"
)

func TestVisitService_CreateVisit(t *testing.T) {
	vendorID := uuid.New()
	when := time.Date(2025, 3, 20, 14, 0, 0, 0, saoPaulo)

	t.Run("starts scheduled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		visits := mocks.NewMockVisitRepository(ctrl)
		svc := NewVisitService(visits, mocks.NewMockClientRepository(ctrl), fixedClock())

		visits.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v *entity.Visit) error {
				if v.Status != enum.VisitStatusScheduled || v.VendorID != vendorID {
					t.Fatalf("unexpected visit: %+v", v)
				}
				return nil
			},
		)

		name := "Sr. João"
		_, err := svc.CreateVisit(context.Background(), vendorActor(vendorID), &VisitInput{ClientName: &name, ScheduledDate: &when})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("thinking without follow-up date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewVisitService(mocks.NewMockVisitRepository(ctrl), mocks.NewMockClientRepository(ctrl), fixedClock())

		name := "Sr. João"
		status := enum.VisitStatusThinking
		_, err := svc.CreateVisit(context.Background(), vendorActor(vendorID), &VisitInput{ClientName: &name, ScheduledDate: &when, Status: &status})
		expectField(t, err, schedule.FieldFollowUpDate)
	})
}

func TestVisitService_UpdateStatus(t *testing.T) {
	vendorID := uuid.New()
	blank := "   "
	reason := "Preço alto"
	followUp := time.Date(2025, 3, 28, 0, 0, 0, 0, saoPaulo)

	tests := []struct {
		name    string
		input   VisitStatusInput
		field   string
		updated bool
	}{
		{"no purchase needs a reason", VisitStatusInput{Status: enum.VisitStatusCompletedNoPurchase}, schedule.FieldRejectionReason, false},
		{"blank reason", VisitStatusInput{Status: enum.VisitStatusCompletedNoPurchase, RejectionReason: &blank}, schedule.FieldRejectionReason, false},
		{"no purchase with reason", VisitStatusInput{Status: enum.VisitStatusCompletedNoPurchase, RejectionReason: &reason}, "", true},
		{"thinking with date", VisitStatusInput{Status: enum.VisitStatusThinking, FollowUpDate: &followUp}, "", true},
		{"back to scheduled", VisitStatusInput{Status: enum.VisitStatusScheduled}, "", true},
		{"absent", VisitStatusInput{Status: enum.VisitStatusAbsent}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			visits := mocks.NewMockVisitRepository(ctrl)
			svc := NewVisitService(visits, mocks.NewMockClientRepository(ctrl), fixedClock())

			visit := &entity.Visit{ID: uuid.New(), VendorID: vendorID, Status: enum.VisitStatusInNegotiation}
			visits.EXPECT().GetByID(gomock.Any(), visit.ID).Return(visit, nil)
			if tt.updated {
				visits.EXPECT().Update(gomock.Any(), visit).Return(nil)
			}

			got, err := svc.UpdateStatus(context.Background(), vendorActor(vendorID), visit.ID, &tt.input)
			if tt.field != "" {
				expectField(t, err, tt.field)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != tt.input.Status {
				t.Fatalf("status = %s", got.Status)
			}
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		svc := NewVisitService(nil, nil, fixedClock())
		_, err := svc.UpdateStatus(context.Background(), vendorActor(vendorID), uuid.New(), &VisitStatusInput{Status: "done"})
		expectCode(t, err, http.StatusUnprocessableEntity)
	})
}

func TestVisitService_UpdateStatus_UsesStoredFields(t *testing.T) {
	vendorID := uuid.New()
	followUp := time.Date(2025, 3, 28, 0, 0, 0, 0, saoPaulo)
	reason := "Sem orçamento"

	tests := []struct {
		name   string
		visit  entity.Visit
		status enum.VisitStatus
	}{
		{"thinking keeps the stored follow-up date", entity.Visit{FollowUpDate: &followUp}, enum.VisitStatusThinking},
		{"no purchase keeps the stored reason", entity.Visit{RejectionReason: &reason}, enum.VisitStatusCompletedNoPurchase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			visits := mocks.NewMockVisitRepository(ctrl)
			svc := NewVisitService(visits, mocks.NewMockClientRepository(ctrl), fixedClock())

			visit := tt.visit
			visit.ID = uuid.New()
			visit.VendorID = vendorID
			visit.Status = enum.VisitStatusScheduled
			visits.EXPECT().GetByID(gomock.Any(), visit.ID).Return(&visit, nil)
			visits.EXPECT().Update(gomock.Any(), &visit).Return(nil)

			got, err := svc.UpdateStatus(context.Background(), vendorActor(vendorID), visit.ID, &VisitStatusInput{Status: tt.status})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != tt.status {
				t.Fatalf("status = %s", got.Status)
			}
		})
	}

	t.Run("blank reason overrides the stored one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		visits := mocks.NewMockVisitRepository(ctrl)
		svc := NewVisitService(visits, mocks.NewMockClientRepository(ctrl), fixedClock())

		visit := &entity.Visit{ID: uuid.New(), VendorID: vendorID, RejectionReason: &reason}
		visits.EXPECT().GetByID(gomock.Any(), visit.ID).Return(visit, nil)

		blank := " "
		_, err := svc.UpdateStatus(context.Background(), vendorActor(vendorID), visit.ID,
			&VisitStatusInput{Status: enum.VisitStatusCompletedNoPurchase, RejectionReason: &blank})
		expectField(t, err, schedule.FieldRejectionReason)
	})
}

func TestVisitService_Upcoming(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	visits := mocks.NewMockVisitRepository(ctrl)
	svc := NewVisitService(visits, nil, fixedClock())

	vendorID := uuid.New()
	midnight := time.Date(2025, 3, 14, 0, 0, 0, 0, saoPaulo)
	visits.EXPECT().Upcoming(gomock.Any(), repository.VendorScope{VendorID: &vendorID}, midnight, 50).Return(nil, nil)

	if _, err := svc.Upcoming(context.Background(), vendorActor(vendorID), 500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMaintenanceService_Complete(t *testing.T) {
	vendorID := uuid.New()
	now := fixedClock()()

	t.Run("schedules the next refill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockMaintenanceRepository(ctrl)
		svc := NewMaintenanceService(repo, nil, nil, fixedClock())

		m := &entity.Maintenance{ID: uuid.New(), VendorID: vendorID, Type: enum.MaintenanceTypeRefill90, Status: enum.MaintenanceStatusScheduled}
		repo.EXPECT().GetByID(gomock.Any(), m.ID).Return(m, nil)
		repo.EXPECT().Update(gomock.Any(), m).Return(nil)

		got, err := svc.Complete(context.Background(), vendorActor(vendorID), m.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != enum.MaintenanceStatusCompleted || !got.CompletedAt.Equal(now) {
			t.Fatalf("unexpected maintenance: %+v", got)
		}
		if want := now.Add(90 * 24 * time.Hour); !got.NextMaintenanceDate.Equal(want) {
			t.Fatalf("next = %v, want %v", got.NextMaintenanceDate, want)
		}
	})

	t.Run("status update to concluido goes through Complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockMaintenanceRepository(ctrl)
		svc := NewMaintenanceService(repo, nil, nil, fixedClock())

		m := &entity.Maintenance{ID: uuid.New(), VendorID: vendorID, Type: enum.MaintenanceTypePreventive, Status: enum.MaintenanceStatusInProgress}
		repo.EXPECT().GetByID(gomock.Any(), m.ID).Return(m, nil)
		repo.EXPECT().Update(gomock.Any(), m).Return(nil)

		got, err := svc.UpdateStatus(context.Background(), adminActor(), m.ID, enum.MaintenanceStatusCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.NextMaintenanceDate == nil {
			t.Fatal("next maintenance date must be set")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockMaintenanceRepository(ctrl)
		svc := NewMaintenanceService(repo, nil, nil, fixedClock())

		m := &entity.Maintenance{ID: uuid.New(), VendorID: vendorID, Type: enum.MaintenanceTypeRefill30, Status: enum.MaintenanceStatusCanceled}
		repo.EXPECT().GetByID(gomock.Any(), m.ID).Return(m, nil)

		_, err := svc.Complete(context.Background(), vendorActor(vendorID), m.ID)
		expectCode(t, err, http.StatusConflict)
	})
}

func TestMaintenanceService_UpdateStatus_ReopenClearsCompletion(t *testing.T) {
	vendorID := uuid.New()
	for _, status := range []enum.MaintenanceStatus{enum.MaintenanceStatusScheduled, enum.MaintenanceStatusInProgress} {
		t.Run(string(status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mocks.NewMockMaintenanceRepository(ctrl)
			svc := NewMaintenanceService(repo, nil, nil, fixedClock())

			done := fixedClock()()
			next := done.AddDate(0, 0, 90)
			m := &entity.Maintenance{
				ID: uuid.New(), VendorID: vendorID, Type: enum.MaintenanceTypeRefill90,
				Status: enum.MaintenanceStatusCompleted, CompletedAt: &done, NextMaintenanceDate: &next,
			}
			repo.EXPECT().GetByID(gomock.Any(), m.ID).Return(m, nil)
			repo.EXPECT().Update(gomock.Any(), m).Return(nil)

			got, err := svc.UpdateStatus(context.Background(), vendorActor(vendorID), m.ID, status)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != status || got.CompletedAt != nil || got.NextMaintenanceDate != nil {
				t.Fatalf("stale completion: %+v", got)
			}
		})
	}
}

func TestMaintenanceService_Due(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockMaintenanceRepository(ctrl)
	svc := NewMaintenanceService(repo, nil, nil, fixedClock())

	vendorID := uuid.New()
	today := time.Date(2025, 3, 14, 0, 0, 0, 0, saoPaulo)
	from, to := today.AddDate(0, 0, -7), today.AddDate(0, 0, 31)
	repo.EXPECT().DueBetween(gomock.Any(), repository.VendorScope{VendorID: &vendorID}, repository.DateRange{From: &from, To: &to}).
		Return([]entity.Maintenance{{VendorID: vendorID}}, nil)

	due, err := svc.Due(context.Background(), vendorActor(vendorID), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("due = %d", len(due))
	}
}

func TestMaintenanceService_CreateMaintenance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockMaintenanceRepository(ctrl)
	clients := mocks.NewMockClientRepository(ctrl)
	vendors := mocks.NewMockVendorRepository(ctrl)
	svc := NewMaintenanceService(repo, clients, vendors, fixedClock())

	vendor := &entity.Vendor{ID: uuid.New(), Name: "Ana"}
	phone := "11 99999-0000"
	client := &entity.Client{ID: uuid.New(), Name: "Clínica Vida", Phone: &phone}
	kind := enum.MaintenanceTypeRefill120
	product := "Purificador Soft"
	when := time.Date(2025, 4, 2, 9, 0, 0, 0, saoPaulo)

	vendors.EXPECT().GetByID(gomock.Any(), vendor.ID).Return(vendor, nil)
	clients.EXPECT().GetByID(gomock.Any(), client.ID).Return(client, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *entity.Maintenance) error {
			if m.Status != enum.MaintenanceStatusScheduled || m.ClientName != client.Name || m.VendorName != "Ana" || *m.ClientPhone != phone {
				t.Fatalf("unexpected maintenance: %+v", m)
			}
			return nil
		},
	)

	_, err := svc.CreateMaintenance(context.Background(), vendorActor(vendor.ID), &MaintenanceInput{
		ClientID:      &client.ID,
		ProductName:   &product,
		Type:          &kind,
		ScheduledDate: &when,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
