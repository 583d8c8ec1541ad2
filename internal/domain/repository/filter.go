package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/pkg/pagination"
)

//go:generate mockgen -source=client_repository.go -destination=mocks/mock_client_repository.go -package=mocks
//go:generate mockgen -source=catalog_repository.go -destination=mocks/mock_catalog_repository.go -package=mocks
//go:generate mockgen -source=vendor_repository.go -destination=mocks/mock_vendor_repository.go -package=mocks
//go:generate mockgen -source=sale_repository.go -destination=mocks/mock_sale_repository.go -package=mocks
//go:generate mockgen -source=quotation_repository.go -destination=mocks/mock_quotation_repository.go -package=mocks
//go:generate mockgen -source=schedule_repository.go -destination=mocks/mock_schedule_repository.go -package=mocks
//go:generate mockgen -source=financial_repository.go -destination=mocks/mock_financial_repository.go -package=mocks
//go:generate mockgen -source=user_repository.go -destination=mocks/mock_user_repository.go -package=mocks
//go:generate mockgen -source=idempotency_repository.go -destination=mocks/mock_idempotency_repository.go -package=mocks
//go:generate mockgen -source=company_repository.go -destination=mocks/mock_company_repository.go -package=mocks

// FilterParams holds the list options shared by every listing
type FilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	SortBy     string
	SortOrder  string
}

// Page returns validated pagination, falling back to the defaults
func (f FilterParams) Page() *pagination.PaginationParams {
	p := f.Pagination
	if p == nil {
		p = pagination.DefaultPagination()
	}
	p.Validate()
	return p
}

// DateRange bounds a listing by date, From inclusive and To exclusive; a nil
// side is open
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// VendorScope restricts a listing to a single vendor when set
type VendorScope struct {
	VendorID *uuid.UUID
}
