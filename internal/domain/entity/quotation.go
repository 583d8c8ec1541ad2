package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/pricing"
	"github.com/sangkips/gestao-api/pkg/money"
	"gorm.io/gorm"
)

// Quotation represents a price quotation for a client
type Quotation struct {
	ID         uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Reference  string               `gorm:"size:100;unique;not null" json:"reference"`
	ClientID   *uuid.UUID           `gorm:"type:uuid;index" json:"client_id,omitempty"`
	ClientName string               `gorm:"size:255" json:"client_name"`
	VendorID   uuid.UUID            `gorm:"type:uuid;not null;index" json:"vendor_id"`
	Subtotal   money.Cents          `gorm:"type:bigint;not null" json:"subtotal"`
	Discount   money.Cents          `gorm:"type:bigint;not null;default:0" json:"discount"`
	Total      money.Cents          `gorm:"type:bigint;not null" json:"total"`
	Status     enum.QuotationStatus `gorm:"size:20;not null;default:'draft';index" json:"status"`
	ValidUntil *time.Time           `gorm:"type:date" json:"valid_until,omitempty"`
	Notes      string               `gorm:"type:text" json:"notes"`
	SaleID     *uuid.UUID           `gorm:"type:uuid;index" json:"sale_id,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
	DeletedAt  gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Items  []QuotationItem `gorm:"foreignKey:QuotationID" json:"items,omitempty"`
	Client *Client         `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quotation
func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quotation model
func (Quotation) TableName() string {
	return "quotations"
}

// IsExpired reports whether the quotation's validity date has passed
func (q *Quotation) IsExpired(now time.Time) bool {
	return q.ValidUntil != nil && now.After(q.ValidUntil.Add(24*time.Hour))
}

// Lines rebuilds the aggregator lines from the stored items
func (q *Quotation) Lines() []pricing.Line {
	lines := make([]pricing.Line, len(q.Items))
	for i, it := range q.Items {
		lines[i] = pricing.Line{
			Kind:      it.Type,
			ItemID:    it.ItemID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Total:     it.Total,
		}
	}
	return lines
}

// QuotationItem represents a line item in a quotation
type QuotationItem struct {
	ID          uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID uuid.UUID     `gorm:"type:uuid;not null;index" json:"quotation_id"`
	Position    int           `gorm:"not null" json:"position"`
	Type        enum.ItemType `gorm:"size:20;not null" json:"type"`
	ItemID      uuid.UUID     `gorm:"type:uuid;not null" json:"item_id"`
	Name        string        `gorm:"size:255;not null" json:"name"`
	UnitPrice   money.Cents   `gorm:"type:bigint;not null" json:"unit_price"`
	Quantity    int           `gorm:"not null" json:"quantity"`
	Total       money.Cents   `gorm:"type:bigint;not null" json:"total"`
}

// BeforeCreate generates a UUID before creating a new quotation item
func (qi *QuotationItem) BeforeCreate(tx *gorm.DB) error {
	if qi.ID == uuid.Nil {
		qi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuotationItem model
func (QuotationItem) TableName() string {
	return "quotation_items"
}

// QuotationItemsFromLines converts aggregated lines into quotation items
func QuotationItemsFromLines(lines []pricing.Line) []QuotationItem {
	items := make([]QuotationItem, len(lines))
	for i, l := range lines {
		items[i] = QuotationItem{
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
