// Package schedule holds the visit and maintenance status rules.
package schedule

import (
	"errors"
	"strings"
	"time"

	"github.com/sangkips/gestao-api/internal/domain/enum"
)

// ErrMissingRequiredField matches every *MissingFieldsError.
var ErrMissingRequiredField = errors.New("missing required field")

// Field names reported by ValidateStatusFields.
const (
	FieldFollowUpDate    = "follow_up_date"
	FieldRejectionReason = "rejection_reason"
)

// VisitFields are the optional visit fields some statuses depend on.
type VisitFields struct {
	FollowUpDate    *time.Time
	RejectionReason *string
}

// Merge returns f with every field patch sets replacing the stored one
func (f VisitFields) Merge(patch VisitFields) VisitFields {
	if patch.FollowUpDate != nil {
		f.FollowUpDate = patch.FollowUpDate
	}
	if patch.RejectionReason != nil {
		f.RejectionReason = patch.RejectionReason
	}
	return f
}

// MissingField names a field the current status requires.
type MissingField struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MissingFieldsError lists every field a status requires but did not get.
type MissingFieldsError struct {
	Status enum.VisitStatus
	Fields []MissingField
}

func (e *MissingFieldsError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return "status " + string(e.Status) + " requires " + strings.Join(names, ", ")
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingRequiredField
}

// ValidateStatusFields returns the fields status requires that are absent.
// thinking needs a follow-up date and completed_no_purchase a non-blank
// rejection reason. Every other status needs nothing.
func ValidateStatusFields(status enum.VisitStatus, fields VisitFields) []MissingField {
	var missing []MissingField
	switch status {
	case enum.VisitStatusThinking:
		if fields.FollowUpDate == nil || fields.FollowUpDate.IsZero() {
			missing = append(missing, MissingField{
				Field:   FieldFollowUpDate,
				Message: "Data de retorno é obrigatória quando o cliente vai pensar",
			})
		}
	case enum.VisitStatusCompletedNoPurchase:
		if fields.RejectionReason == nil || strings.TrimSpace(*fields.RejectionReason) == "" {
			missing = append(missing, MissingField{
				Field:   FieldRejectionReason,
				Message: "Motivo da não compra é obrigatório",
			})
		}
	}
	return missing
}

// CheckStatusFields is ValidateStatusFields as an error.
func CheckStatusFields(status enum.VisitStatus, fields VisitFields) error {
	if missing := ValidateStatusFields(status, fields); len(missing) > 0 {
		return &MissingFieldsError{Status: status, Fields: missing}
	}
	return nil
}

// InitialVisitStatus is the status of a newly created visit.
const InitialVisitStatus = enum.VisitStatusScheduled

// InitialMaintenanceStatus is the status of a newly created maintenance.
const InitialMaintenanceStatus = enum.MaintenanceStatusScheduled
