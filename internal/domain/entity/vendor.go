package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/pkg/money"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Vendor is a salesperson earning commission on sales
type Vendor struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID              *uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"user_id,omitempty"`
	Name                string          `gorm:"size:255;not null" json:"name"`
	Email               string          `gorm:"size:255" json:"email"`
	Phone               string          `gorm:"size:50" json:"phone"`
	Address             string          `gorm:"type:text" json:"address"`
	PhotoURL            *string         `gorm:"size:512" json:"photo_url,omitempty"`
	CommissionRate      decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0" json:"commission_rate"`
	TotalSales          money.Cents     `gorm:"type:bigint;not null;default:0" json:"total_sales"`
	ReceivedCommissions money.Cents     `gorm:"type:bigint;not null;default:0" json:"received_commissions"`
	PendingCommissions  money.Cents     `gorm:"type:bigint;not null;default:0" json:"pending_commissions"`
	Level               enum.Tier       `gorm:"size:20;not null;default:'bronze'" json:"level"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	DeletedAt           gorm.DeletedAt  `gorm:"index" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vendor
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.Level == "" {
		v.Level = enum.TierBronze
	}
	return nil
}

// TableName returns the table name for the Vendor model
func (Vendor) TableName() string {
	return "vendors"
}
