package entity

import "time"

// Supplier is a vendor a venue orders raw materials from.
type Supplier struct {
	ID       string `json:"id" gorm:"primaryKey;size:32"`
	VenueID  string `json:"venue_id" gorm:"size:32;not null;index"`
	Code     string `json:"code" gorm:"size:32;uniqueIndex;not null"`
	Name     string `json:"name" gorm:"size:200;not null"`
	Category string `json:"category" gorm:"size:50"` // produce/meat/dairy/beverage/dry_goods/other

	Email   string `json:"email" gorm:"size:200"`
	Phone   string `json:"phone" gorm:"size:32"`
	Address string `json:"address" gorm:"size:500"`

	PaymentTerms string `json:"payment_terms" gorm:"size:100"`
	LeadTimeDays int    `json:"lead_time_days" gorm:"default:1"`

	Status    string    `json:"status" gorm:"size:20;default:active"` // active/inactive
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedBy string    `json:"created_by" gorm:"size:32"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Contacts []SupplierContact `json:"contacts,omitempty" gorm:"foreignKey:SupplierID"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

// SupplierContact is a named contact person at a supplier.
type SupplierContact struct {
	ID         string    `json:"id" gorm:"primaryKey;size:32"`
	SupplierID string    `json:"supplier_id" gorm:"size:32;not null;index"`
	Name       string    `json:"name" gorm:"size:100;not null"`
	Role       string    `json:"role" gorm:"size:50"`
	Email      string    `json:"email" gorm:"size:200"`
	Phone      string    `json:"phone" gorm:"size:32"`
	IsPrimary  bool      `json:"is_primary" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (SupplierContact) TableName() string {
	return "supplier_contacts"
}
