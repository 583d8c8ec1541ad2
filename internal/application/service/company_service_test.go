package service

import (
	"context"
	"testing"

	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/repository/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestCompanyService_GetCompany(t *testing.T) {
	t.Run("empty before the first save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockCompanyRepository(ctrl)
		svc := NewCompanyService(repo, zap.NewNop())

		repo.EXPECT().Get(gomock.Any()).Return(nil, nil)

		info, err := svc.GetCompany(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.ID != entity.CompanyInfoID || info.Name != "" {
			t.Fatalf("unexpected info: %+v", info)
		}
	})

	t.Run("saved row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockCompanyRepository(ctrl)
		svc := NewCompanyService(repo, zap.NewNop())

		stored := &entity.CompanyInfo{ID: entity.CompanyInfoID, Name: "Águas Claras Ltda"}
		repo.EXPECT().Get(gomock.Any()).Return(stored, nil)

		info, err := svc.GetCompany(context.Background())
		if err != nil || info != stored {
			t.Fatalf("got %+v, %v", info, err)
		}
	})
}

func TestCompanyService_UpdateCompany(t *testing.T) {
	tests := []struct {
		name  string
		input CompanyInput
		field string
	}{
		{"blank name", CompanyInput{Name: "  ", CNPJ: "12.345.678/0001-90"}, "name"},
		{"short cnpj", CompanyInput{Name: "Águas Claras", CNPJ: "12.345.678/0001"}, "cnpj"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCompanyService(nil, zap.NewNop())
			_, err := svc.UpdateCompany(context.Background(), &tt.input)
			expectField(t, err, tt.field)
		})
	}

	t.Run("stores cnpj digits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockCompanyRepository(ctrl)
		svc := NewCompanyService(repo, zap.NewNop())

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, info *entity.CompanyInfo) error {
				if info.CNPJ != "12345678000190" || info.Name != "Águas Claras" || info.Phone != "(11) 3333-4444" {
					t.Fatalf("unexpected info: %+v", info)
				}
				return nil
			},
		)

		_, err := svc.UpdateCompany(context.Background(), &CompanyInput{
			Name:  " Águas Claras ",
			CNPJ:  "12.345.678/0001-90",
			Phone: "(11) 3333-4444",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no cnpj is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockCompanyRepository(ctrl)
		svc := NewCompanyService(repo, zap.NewNop())

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := svc.UpdateCompany(context.Background(), &CompanyInput{Name: "Águas Claras"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
