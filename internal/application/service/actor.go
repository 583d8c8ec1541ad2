package service

import (
	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/pkg/apperror"
)

// Actor is the authenticated caller as the services see it
type Actor struct {
	UserID   uuid.UUID
	VendorID *uuid.UUID
	IsAdmin  bool
}

// Scope restricts listings to the actor's own vendor unless they are an admin
func (a Actor) Scope() repository.VendorScope {
	if a.IsAdmin {
		return repository.VendorScope{}
	}
	if a.VendorID == nil {
		// a non-admin without a vendor link owns nothing
		none := uuid.Nil
		return repository.VendorScope{VendorID: &none}
	}
	return repository.VendorScope{VendorID: a.VendorID}
}

// CanAccess reports whether the actor may read or change a vendor's records
func (a Actor) CanAccess(vendorID uuid.UUID) bool {
	return a.IsAdmin || (a.VendorID != nil && *a.VendorID == vendorID)
}

// requireVendor resolves the vendor a write is attributed to. Admins may act
// for any vendor; everyone else writes as themselves.
func (a Actor) requireVendor(requested *uuid.UUID) (uuid.UUID, error) {
	if a.IsAdmin && requested != nil && *requested != uuid.Nil {
		return *requested, nil
	}
	if a.VendorID != nil {
		if requested != nil && *requested != uuid.Nil && *requested != *a.VendorID {
			return uuid.Nil, apperror.ErrForbidden
		}
		return *a.VendorID, nil
	}
	return uuid.Nil, apperror.NewFieldError("vendor_id", "Vendedor é obrigatório", nil)
}
