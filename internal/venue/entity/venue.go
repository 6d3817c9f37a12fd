package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venue is a single restaurant/location. All other records hang off a venue.
type Venue struct {
	ID       string `json:"id" gorm:"primaryKey;size:32"`
	Name     string `json:"name" gorm:"size:200;not null"`
	Address  string `json:"address" gorm:"size:500"`
	Phone    string `json:"phone" gorm:"size:32"`
	Currency string `json:"currency" gorm:"size:10;default:MXN"`

	// Default rates applied to new purchase orders.
	TaxRate        decimal.Decimal `json:"tax_rate" gorm:"type:decimal(6,4);default:0.16"`
	CommissionRate decimal.Decimal `json:"commission_rate" gorm:"type:decimal(6,4);default:0"`

	Status    string    `json:"status" gorm:"size:20;default:active"` // active/suspended
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Venue) TableName() string {
	return "venues"
}
