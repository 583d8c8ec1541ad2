package service

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/pricing"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/internal/domain/schedule"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"github.com/sangkips/gestao-api/pkg/money"
)

// TranslateError maps domain errors onto the HTTP-facing AppError taxonomy.
// AppErrors and unknown errors are returned unchanged; the latter end up as
// a 500 in the response layer.
func TranslateError(err error) error {
	if err == nil || apperror.IsAppError(err) {
		return err
	}

	var parseErr *money.ParseError
	if errors.As(err, &parseErr) {
		return apperror.NewFieldError("amount", "Valor monetário inválido: "+parseErr.Reason, err)
	}

	var discountErr *pricing.DiscountError
	if errors.As(err, &discountErr) {
		msg := "O desconto não pode ser maior que o subtotal (" + money.FormatBRL(discountErr.Subtotal) + ")"
		if discountErr.Discount < 0 {
			msg = "O desconto não pode ser negativo"
		}
		return apperror.NewFieldError("discount", msg, err)
	}

	var missingErr *schedule.MissingFieldsError
	if errors.As(err, &missingErr) {
		fields := make([]apperror.FieldError, len(missingErr.Fields))
		for i, f := range missingErr.Fields {
			fields[i] = apperror.FieldError{Field: f.Field, Message: f.Message}
		}
		appErr := apperror.NewValidationError(fields)
		appErr.Err = err
		return appErr
	}

	var enumErr *enum.InvalidValueError
	if errors.As(err, &enumErr) {
		return apperror.NewFieldError(strings.ReplaceAll(enumErr.Type, " ", "_"), "Valor inválido: "+enumErr.Value, err)
	}

	switch {
	case errors.Is(err, pricing.ErrInvalidQuantity):
		return apperror.NewFieldError("quantity", "A quantidade deve ser maior que zero", err)
	case errors.Is(err, pricing.ErrInvalidPrice):
		return apperror.NewFieldError("unit_price", "O preço unitário não pode ser negativo", err)
	case errors.Is(err, pricing.ErrLineNotFound):
		return &apperror.AppError{Code: http.StatusNotFound, Message: "Item not found", Err: err}
	case errors.Is(err, repository.ErrCommissionExceedsPending):
		return apperror.NewFieldError("amount", "O valor excede as comissões pendentes", err)
	}
	return err
}
