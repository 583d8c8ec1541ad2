package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/pkg/apperror"
)

var saoPaulo = time.FixedZone("BRT", -3*60*60)

// fixedClock pins the service clock to 2025-03-14 10:30 BRT
func fixedClock() Clock {
	at := time.Date(2025, 3, 14, 10, 30, 0, 0, saoPaulo)
	return func() time.Time { return at }
}

func vendorActor(vendorID uuid.UUID) Actor {
	return Actor{UserID: uuid.New(), VendorID: &vendorID}
}

func adminActor() Actor {
	return Actor{UserID: uuid.New(), IsAdmin: true}
}

func expectCode(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %d error, got nil", code)
	}
	appErr := apperror.GetAppError(err)
	if appErr.Code != code {
		t.Fatalf("expected %d, got %d (%v)", code, appErr.Code, err)
	}
	return appErr
}

func expectField(t *testing.T, err error, field string) {
	t.Helper()
	appErr := expectCode(t, err, http.StatusUnprocessableEntity)
	for _, f := range appErr.Errors {
		if f.Field == field {
			return
		}
	}
	t.Fatalf("expected error on %q, got %+v", field, appErr.Errors)
}
