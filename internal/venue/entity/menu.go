package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuCategory groups products on the venue menu.
type MenuCategory struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	VenueID   string    `json:"venue_id" gorm:"size:32;not null;index"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

func (MenuCategory) TableName() string {
	return "menu_categories"
}

// Product is a sellable menu item.
type Product struct {
	ID         string `json:"id" gorm:"primaryKey;size:32"`
	VenueID    string `json:"venue_id" gorm:"size:32;not null;index"`
	CategoryID string `json:"category_id" gorm:"size:32;not null;index"`
	Name       string `json:"name" gorm:"size:200;not null"`
	SKU        string `json:"sku" gorm:"size:50"`

	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Description string          `json:"description" gorm:"type:text"`
	ImageURL    string          `json:"image_url" gorm:"size:500"`

	SortOrder int       `json:"sort_order" gorm:"default:0"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ModifierGroups []ModifierGroup `json:"modifier_groups,omitempty" gorm:"many2many:product_modifier_groups"`
}

func (Product) TableName() string {
	return "products"
}

// ModifierGroup bundles selectable modifiers (e.g. "Salsa", "Extras").
type ModifierGroup struct {
	ID      string `json:"id" gorm:"primaryKey;size:32"`
	VenueID string `json:"venue_id" gorm:"size:32;not null;index"`
	Name    string `json:"name" gorm:"size:100;not null"`

	MinSelect int `json:"min_select" gorm:"default:0"`
	MaxSelect int `json:"max_select" gorm:"default:1"`

	SortOrder int       `json:"sort_order" gorm:"default:0"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Modifiers []Modifier `json:"modifiers,omitempty" gorm:"foreignKey:GroupID"`
}

func (ModifierGroup) TableName() string {
	return "modifier_groups"
}

// Modifier is one option inside a modifier group.
type Modifier struct {
	ID      string `json:"id" gorm:"primaryKey;size:32"`
	GroupID string `json:"group_id" gorm:"size:32;not null;index"`
	Name    string `json:"name" gorm:"size:100;not null"`

	Price decimal.Decimal `json:"price" gorm:"type:decimal(12,2);default:0"`

	SortOrder int       `json:"sort_order" gorm:"default:0"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Modifier) TableName() string {
	return "modifiers"
}
