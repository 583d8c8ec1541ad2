package repository

import (
	"errors"
	"net/http"
	"testing"

	domainRepo "github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"gorm.io/gorm"
)

func TestStoreError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		if storeError("Sale", "insert", nil) != nil {
			t.Fatal("expected nil")
		}
	})

	t.Run("duplicate key is a conflict", func(t *testing.T) {
		err := storeError("Product", "insert", gorm.ErrDuplicatedKey)
		if apperror.GetAppError(err).Code != http.StatusConflict {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("driver error is a store error", func(t *testing.T) {
		cause := errors.New("connection reset by peer")
		err := storeError("Sale", "insert", cause)
		if !apperror.IsStoreError(err) || !errors.Is(err, cause) {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("app errors pass through", func(t *testing.T) {
		in := apperror.NewConflictError("Sale already cancelled")
		if storeError("Sale", "cancel", in) != error(in) {
			t.Fatal("app error should not be rewrapped")
		}
	})
}

func TestSortClause(t *testing.T) {
	columns := map[string]string{"date": "date", "total": "total"}
	tests := []struct {
		name   string
		params domainRepo.FilterParams
		want   string
	}{
		{"default", domainRepo.FilterParams{}, "date DESC"},
		{"asc", domainRepo.FilterParams{SortBy: "total"}, "total ASC"},
		{"desc any case", domainRepo.FilterParams{SortBy: "Total", SortOrder: "DESC"}, "total DESC"},
		{"injection falls back", domainRepo.FilterParams{SortBy: "total; DROP TABLE sales"}, "date DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sortClause(tt.params, columns, "date DESC"); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLikePattern(t *testing.T) {
	if got := likePattern("  ana "); got != "%ana%" {
		t.Fatalf("got %q", got)
	}
}

func TestFloorZero(t *testing.T) {
	if floorZero(-5) != 0 || floorZero(7) != 7 {
		t.Fatal("unexpected floor")
	}
}
