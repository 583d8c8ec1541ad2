package service

import (
	"context"
	"strings"

	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"github.com/sangkips/gestao-api/pkg/money"
	"go.uber.org/zap"
)

// CompanyService manages the business's own registration
type CompanyService struct {
	companyRepo repository.CompanyRepository
	log         *zap.Logger
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo repository.CompanyRepository, log *zap.Logger) *CompanyService {
	return &CompanyService{companyRepo: companyRepo, log: log}
}

// GetCompany returns the saved company info, or an empty record before the
// first save. Reading never writes.
func (s *CompanyService) GetCompany(ctx context.Context) (*entity.CompanyInfo, error) {
	info, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return &entity.CompanyInfo{ID: entity.CompanyInfoID}, nil
	}
	return info, nil
}

// CompanyInput carries every company field; the update replaces them all
type CompanyInput struct {
	Name    string
	CNPJ    string
	Address string
	Phone   string
}

// UpdateCompany creates the company info on first use and replaces it after
func (s *CompanyService) UpdateCompany(ctx context.Context, input *CompanyInput) (*entity.CompanyInfo, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewFieldError("name", "Nome da empresa é obrigatório", nil)
	}
	cnpj := money.DigitsOf(input.CNPJ)
	if cnpj != "" {
		if err := validateDocument(enum.DocumentTypeCNPJ, cnpj); err != nil {
			return nil, apperror.NewFieldError("cnpj", "CNPJ deve ter 14 dígitos", nil)
		}
	}

	info := &entity.CompanyInfo{
		Name:    name,
		CNPJ:    cnpj,
		Address: strings.TrimSpace(input.Address),
		Phone:   strings.TrimSpace(input.Phone),
	}
	if err := s.companyRepo.Upsert(ctx, info); err != nil {
		return nil, err
	}
	s.log.Info("company info updated", zap.String("name", info.Name))
	return info, nil
}
