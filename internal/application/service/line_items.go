package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/pricing"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"github.com/sangkips/gestao-api/pkg/money"
)

// LineItemInput is one requested line of a sale or quotation. A nil
// UnitPrice takes the current catalog price.
type LineItemInput struct {
	Type      enum.ItemType
	ItemID    uuid.UUID
	Quantity  int
	UnitPrice *money.Cents
}

// catalog resolves line items against products and services
type catalog struct {
	products repository.ProductRepository
	services repository.ServiceRepository
}

// cart builds a pricing cart from the requested items. Repeated items merge
// into one line.
func (c catalog) cart(ctx context.Context, items []LineItemInput, discount money.Cents) (*pricing.Cart, error) {
	if len(items) == 0 {
		return nil, apperror.NewFieldError("items", "Adicione pelo menos um item", nil)
	}

	cart := pricing.NewCart()
	for _, in := range items {
		item, err := c.lookup(ctx, in)
		if err != nil {
			return nil, err
		}
		if err := cart.Add(item, in.Quantity); err != nil {
			return nil, TranslateError(err)
		}
	}
	cart.SetDiscount(discount)
	return cart, nil
}

func (c catalog) lookup(ctx context.Context, in LineItemInput) (pricing.Item, error) {
	item := pricing.Item{Kind: in.Type, ID: in.ItemID}

	switch in.Type {
	case enum.ItemTypeProduct:
		product, err := c.products.GetByID(ctx, in.ItemID)
		if err != nil {
			return item, err
		}
		if product == nil {
			return item, apperror.NewNotFoundError("Product")
		}
		item.Name = product.Name
		item.UnitPrice = product.Price
	case enum.ItemTypeService:
		svc, err := c.services.GetByID(ctx, in.ItemID)
		if err != nil {
			return item, err
		}
		if svc == nil {
			return item, apperror.NewNotFoundError("Service")
		}
		item.Name = svc.Name
		item.UnitPrice = svc.Price
	default:
		return item, TranslateError(&enum.InvalidValueError{Type: "item type", Value: string(in.Type)})
	}

	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	return item, nil
}
