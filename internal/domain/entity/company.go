package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompanyInfoID is the primary key of the single company_info row
var CompanyInfoID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// CompanyInfo is the business's own registration, printed on quotations
type CompanyInfo struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CNPJ      string    `gorm:"column:cnpj;size:14" json:"cnpj"`
	Address   string    `gorm:"type:text" json:"address"`
	Phone     string    `gorm:"size:50" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for CompanyInfo
func (CompanyInfo) TableName() string {
	return "company_info"
}
