package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/pricing"
	"github.com/sangkips/gestao-api/pkg/money"
	"gorm.io/gorm"
)

// Sale is a completed (or cancelled) sale to a client
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Reference     string             `gorm:"size:100;unique;not null" json:"reference"`
	ClientID      *uuid.UUID         `gorm:"type:uuid;index" json:"client_id,omitempty"`
	ClientName    string             `gorm:"size:255" json:"client_name"`
	VendorID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"vendor_id"`
	VendorName    string             `gorm:"size:255" json:"vendor_name"`
	QuotationID   *uuid.UUID         `gorm:"type:uuid;index" json:"quotation_id,omitempty"`
	Subtotal      money.Cents        `gorm:"type:bigint;not null" json:"subtotal"`
	Discount      money.Cents        `gorm:"type:bigint;not null;default:0" json:"discount"`
	Total         money.Cents        `gorm:"type:bigint;not null" json:"total"`
	Commission    money.Cents        `gorm:"type:bigint;not null;default:0" json:"commission"` // credited to the vendor at creation
	PaymentMethod enum.PaymentMethod `gorm:"size:50;not null" json:"payment_method"`
	Installments  int                `gorm:"not null;default:1" json:"installments"`
	Observations  string             `gorm:"type:text" json:"observations"`
	Status        enum.SaleStatus    `gorm:"size:20;not null;index" json:"status"`
	Date          time.Time          `gorm:"not null;index" json:"date"`
	CancelledAt   *time.Time         `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Items  []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
	Client *Client    `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Vendor *Vendor    `gorm:"foreignKey:VendorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// IsCancelled reports whether the sale was cancelled
func (s *Sale) IsCancelled() bool {
	return s.Status == enum.SaleStatusCancelled
}

// SaleItem is one line of a sale
type SaleItem struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"sale_id"`
	Position  int           `gorm:"not null" json:"position"`
	Type      enum.ItemType `gorm:"size:20;not null" json:"type"`
	ItemID    uuid.UUID     `gorm:"type:uuid;not null" json:"item_id"`
	Name      string        `gorm:"size:255;not null" json:"name"`
	UnitPrice money.Cents   `gorm:"type:bigint;not null" json:"unit_price"`
	Quantity  int           `gorm:"not null" json:"quantity"`
	Total     money.Cents   `gorm:"type:bigint;not null" json:"total"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

// SaleItemsFromLines converts aggregated lines into sale items in order
func SaleItemsFromLines(lines []pricing.Line) []SaleItem {
	items := make([]SaleItem, len(lines))
	for i, l := range lines {
		items[i] = SaleItem{
			Position:  i + 1,
			Type:      l.Kind,
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Total:     l.Total,
		}
	}
	return items
}
