package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/repository/mocks"
	"github.com/sangkips/gestao-api/pkg/money"
	"go.uber.org/mock/gomock"
)

func TestClientService_CreateClient(t *testing.T) {
	vendorID := uuid.New()
	name := "Mercado Bom Preço"
	cnpj := enum.DocumentTypeCNPJ
	cpf := enum.DocumentTypeCPF

	t.Run("stores document digits and the vendor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockClientRepository(ctrl)
		svc := NewClientService(repo, fixedClock())

		doc := "12.345.678/0001-90"
		repo.EXPECT().GetByDocument(gomock.Any(), "12345678000190").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *entity.Client) error {
				if c.Document != "12345678000190" || c.VendorID == nil || *c.VendorID != vendorID {
					t.Fatalf("unexpected client: %+v", c)
				}
				return nil
			},
		)

		_, err := svc.CreateClient(context.Background(), vendorActor(vendorID), &ClientInput{Name: &name, DocumentType: &cnpj, Document: &doc})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("CPF with wrong length", func(t *testing.T) {
		svc := NewClientService(nil, fixedClock())
		doc := "123.456.789-0"
		_, err := svc.CreateClient(context.Background(), vendorActor(vendorID), &ClientInput{Name: &name, DocumentType: &cpf, Document: &doc})
		expectField(t, err, "document")
	})

	t.Run("document without a type", func(t *testing.T) {
		svc := NewClientService(nil, fixedClock())
		doc := "12345678901"
		_, err := svc.CreateClient(context.Background(), vendorActor(vendorID), &ClientInput{Name: &name, Document: &doc})
		expectField(t, err, "document_type")
	})

	t.Run("document already registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockClientRepository(ctrl)
		svc := NewClientService(repo, fixedClock())

		doc := "123.456.789-01"
		repo.EXPECT().GetByDocument(gomock.Any(), "12345678901").Return(&entity.Client{ID: uuid.New()}, nil)

		_, err := svc.CreateClient(context.Background(), vendorActor(vendorID), &ClientInput{Name: &name, DocumentType: &cpf, Document: &doc})
		expectCode(t, err, http.StatusConflict)
	})

	t.Run("premium needs a due date", func(t *testing.T) {
		svc := NewClientService(nil, fixedClock())
		premium := true
		plan := money.FromUnits(89, 90)
		_, err := svc.CreateClient(context.Background(), vendorActor(vendorID), &ClientInput{Name: &name, IsPremium: &premium, PlanValue: &plan})
		expectField(t, err, "payment_due")
	})

	t.Run("blank name", func(t *testing.T) {
		svc := NewClientService(nil, fixedClock())
		blank := "  "
		_, err := svc.CreateClient(context.Background(), vendorActor(vendorID), &ClientInput{Name: &blank})
		expectField(t, err, "name")
	})
}

func TestClientService_GetClient_Visibility(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	tests := []struct {
		name    string
		client  *entity.Client
		actor   Actor
		visible bool
	}{
		{"owner", &entity.Client{ID: uuid.New(), VendorID: &owner}, vendorActor(owner), true},
		{"other vendor", &entity.Client{ID: uuid.New(), VendorID: &owner}, vendorActor(other), false},
		{"unowned", &entity.Client{ID: uuid.New()}, vendorActor(other), true},
		{"admin", &entity.Client{ID: uuid.New(), VendorID: &owner}, adminActor(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mocks.NewMockClientRepository(ctrl)
			svc := NewClientService(repo, fixedClock())

			repo.EXPECT().GetByID(gomock.Any(), tt.client.ID).Return(tt.client, nil)

			_, err := svc.GetClient(context.Background(), tt.actor, tt.client.ID)
			if tt.visible && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.visible {
				expectCode(t, err, http.StatusNotFound)
			}
		})
	}
}

func TestClientService_PremiumDueTomorrow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockClientRepository(ctrl)
	svc := NewClientService(repo, fixedClock())

	mine := uuid.New()
	theirs := uuid.New()
	tomorrow := time.Date(2025, 3, 15, 0, 0, 0, 0, saoPaulo)
	repo.EXPECT().ListPremiumDueOn(gomock.Any(), tomorrow).Return([]entity.Client{
		{Name: "A", VendorID: &mine},
		{Name: "B", VendorID: &theirs},
		{Name: "C"},
	}, nil)

	clients, err := svc.PremiumDueTomorrow(context.Background(), vendorActor(mine))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clients) != 2 || clients[0].Name != "A" || clients[1].Name != "C" {
		t.Fatalf("unexpected clients: %+v", clients)
	}
}
