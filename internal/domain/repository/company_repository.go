package repository

import (
	"context"

	"github.com/sangkips/gestao-api/internal/domain/entity"
)

// CompanyRepository stores the single company info row
type CompanyRepository interface {
	// Get returns nil, nil until the company has been saved once
	Get(ctx context.Context) (*entity.CompanyInfo, error)
	// Upsert inserts the row or replaces its fields
	Upsert(ctx context.Context, info *entity.CompanyInfo) error
}
