package repository

import (
	"context"

	"github.com/sangkips/gestao-api/internal/domain/entity"
	domainRepo "github.com/sangkips/gestao-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type companyRepository struct {
	db    *gorm.DB
	store recordStore[entity.CompanyInfo]
}

// NewCompanyRepository creates a new company info repository
func NewCompanyRepository(db *gorm.DB) domainRepo.CompanyRepository {
	return &companyRepository{db: db, store: newRecordStore[entity.CompanyInfo](db, "Company info")}
}

func (r *companyRepository) Get(ctx context.Context) (*entity.CompanyInfo, error) {
	return r.store.byID(ctx, entity.CompanyInfoID, nil)
}

// Upsert pins the row to CompanyInfoID so concurrent saves cannot create two
func (r *companyRepository) Upsert(ctx context.Context, info *entity.CompanyInfo) error {
	info.ID = entity.CompanyInfoID
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "cnpj", "address", "phone", "updated_at"}),
	}).Create(info).Error
	return r.store.wrap("upsert", err)
}
