package request

import (
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/pkg/money"
)

// ProductRequest creates or updates a product
type ProductRequest struct {
	Name          *string         `json:"name" binding:"omitempty,min=2,max=255"`
	Code          *string         `json:"code" binding:"omitempty,max=100"`
	Description   *string         `json:"description"`
	Colors        []string        `json:"colors"`
	Price         *money.Cents    `json:"price"`
	StockQuantity *int            `json:"stock_quantity" binding:"omitempty,min=0"`
	ImageURL      *string         `json:"image_url" binding:"omitempty,url"`
	TaxInfo       *entity.TaxInfo `json:"tax_info"`
}

// ServiceRequest creates or updates a catalog service
type ServiceRequest struct {
	Name        *string      `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string      `json:"description"`
	Price       *money.Cents `json:"price"`
}
