package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterial is a stocked ingredient or supply item.
type RawMaterial struct {
	ID      string `json:"id" gorm:"primaryKey;size:32"`
	VenueID string `json:"venue_id" gorm:"size:32;not null;index"`
	SKU     string `json:"sku" gorm:"size:50;uniqueIndex;not null"`
	Name    string `json:"name" gorm:"size:200;not null"`
	Unit    string `json:"unit" gorm:"size:20;default:kg"` // kg/l/pza/caja

	Stock    decimal.Decimal `json:"stock" gorm:"type:decimal(12,3);default:0"`
	MinStock decimal.Decimal `json:"min_stock" gorm:"type:decimal(12,3);default:0"`

	LastUnitCost decimal.Decimal `json:"last_unit_cost" gorm:"type:decimal(12,4);default:0"`
	SupplierID   *string         `json:"supplier_id" gorm:"size:32;index"`

	Status    string    `json:"status" gorm:"size:20;default:active"` // active/archived
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RawMaterial) TableName() string {
	return "raw_materials"
}

// InventoryTransaction records every stock movement. Receiving commits write
// purchase_receipt rows; manual corrections write adjustment rows.
type InventoryTransaction struct {
	ID            string          `json:"id" gorm:"primaryKey;size:32"`
	VenueID       string          `json:"venue_id" gorm:"size:32;not null;index"`
	RawMaterialID string          `json:"raw_material_id" gorm:"size:32;not null;index"`
	Type          string          `json:"type" gorm:"size:30;not null"` // purchase_receipt/adjustment/consumption/waste
	Quantity      decimal.Decimal `json:"quantity" gorm:"type:decimal(12,3);not null"`
	StockAfter    decimal.Decimal `json:"stock_after" gorm:"type:decimal(12,3)"`

	// Back-reference to the purchase order item for purchase_receipt rows.
	POItemID *string `json:"po_item_id" gorm:"size:32;index"`

	Reason    string    `json:"reason" gorm:"size:200"`
	CreatedBy string    `json:"created_by" gorm:"size:32"`
	CreatedAt time.Time `json:"created_at"`
}

func (InventoryTransaction) TableName() string {
	return "inventory_transactions"
}

// Inventory transaction types
const (
	TxnTypePurchaseReceipt = "purchase_receipt"
	TxnTypeAdjustment      = "adjustment"
	TxnTypeConsumption     = "consumption"
	TxnTypeWaste           = "waste"
)
