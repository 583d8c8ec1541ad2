package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/pkg/money"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TaxInfo holds the fiscal classification printed on invoices
type TaxInfo struct {
	NCM    string          `gorm:"size:20" json:"ncm"`
	ICMS   decimal.Decimal `gorm:"type:numeric(5,2);default:0" json:"icms"`
	IPI    decimal.Decimal `gorm:"type:numeric(5,2);default:0" json:"ipi"`
	PIS    decimal.Decimal `gorm:"type:numeric(5,2);default:0" json:"pis"`
	COFINS decimal.Decimal `gorm:"type:numeric(5,2);default:0" json:"cofins"`
	CFOP   string          `gorm:"size:10" json:"cfop"`
}

// Product represents a product in the catalog
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Code          string         `gorm:"size:100;unique;not null" json:"code"`
	Description   string         `gorm:"type:text" json:"description"`
	Colors        []string       `gorm:"type:jsonb;serializer:json" json:"colors"`
	Price         money.Cents    `gorm:"type:bigint;not null;default:0" json:"price"`
	StockQuantity int            `gorm:"default:0" json:"stock_quantity"`
	ImageURL      *string        `gorm:"size:512" json:"image_url,omitempty"`
	TaxInfo       TaxInfo        `gorm:"embedded;embeddedPrefix:tax_" json:"tax_info"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// Service represents a billable service in the catalog
type Service struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       money.Cents    `gorm:"type:bigint;not null;default:0" json:"price"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new service
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Service model
func (Service) TableName() string {
	return "services"
}
