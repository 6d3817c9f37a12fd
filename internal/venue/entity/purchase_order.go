package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder is an order placed with a supplier.
type PurchaseOrder struct {
	ID         string `json:"id" gorm:"primaryKey;size:32"`
	POCode     string `json:"po_code" gorm:"size:32;uniqueIndex;not null"`
	VenueID    string `json:"venue_id" gorm:"size:32;not null;index"`
	SupplierID string `json:"supplier_id" gorm:"size:32;not null;index"`
	Status     string `json:"status" gorm:"size:20;default:draft"`

	// Financials. Subtotal is fixed at order creation; tax/commission/total
	// are recomputed whenever the rates change.
	Currency       string          `json:"currency" gorm:"size:10;default:MXN"`
	Subtotal       decimal.Decimal `json:"subtotal" gorm:"type:decimal(15,2);default:0"`
	TaxRate        decimal.Decimal `json:"tax_rate" gorm:"type:decimal(6,4);default:0.16"`
	TaxAmount      decimal.Decimal `json:"tax_amount" gorm:"type:decimal(15,2);default:0"`
	CommissionRate decimal.Decimal `json:"commission_rate" gorm:"type:decimal(6,4);default:0"`
	Commission     decimal.Decimal `json:"commission" gorm:"type:decimal(15,2);default:0"`
	Total          decimal.Decimal `json:"total" gorm:"type:decimal(15,2);default:0"`

	ExpectedDate *time.Time `json:"expected_date"`
	ReceivedDate *time.Time `json:"received_date"`

	CreatedBy  string     `json:"created_by" gorm:"size:32"`
	ApprovedBy *string    `json:"approved_by" gorm:"size:32"`
	ApprovedAt *time.Time `json:"approved_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Notes      string     `json:"notes" gorm:"type:text"`

	Items    []POItem  `json:"items,omitempty" gorm:"foreignKey:POID"`
	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
}

func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PO statuses
const (
	POStatusDraft           = "draft"
	POStatusPendingApproval = "pending_approval"
	POStatusApproved        = "approved"
	POStatusSent            = "sent"
	POStatusConfirmed       = "confirmed"
	POStatusShipped         = "shipped"
	POStatusPartial         = "partial"
	POStatusReceived        = "received"
	POStatusCancelled       = "cancelled"
)

// ValidPOTransitions maps each status to the statuses it may move to.
// received and cancelled are terminal; cancel is allowed from every
// non-terminal status.
var ValidPOTransitions = map[string][]string{
	POStatusDraft:           {POStatusPendingApproval, POStatusCancelled},
	POStatusPendingApproval: {POStatusApproved, POStatusDraft, POStatusCancelled},
	POStatusApproved:        {POStatusSent, POStatusCancelled},
	POStatusSent:            {POStatusConfirmed, POStatusCancelled},
	POStatusConfirmed:       {POStatusShipped, POStatusPartial, POStatusReceived, POStatusCancelled},
	POStatusShipped:         {POStatusPartial, POStatusReceived, POStatusCancelled},
	POStatusPartial:         {POStatusReceived, POStatusCancelled},
	POStatusReceived:        {},
	POStatusCancelled:       {},
}

// CanTransition reports whether a PO may move from one status to another.
func CanTransition(from, to string) bool {
	for _, s := range ValidPOTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsFinalized reports whether a PO status admits no further edits.
func IsFinalized(status string) bool {
	return status == POStatusReceived || status == POStatusCancelled
}

// ReceivableStatuses are the statuses in which the receiving flow operates.
func IsReceivable(status string) bool {
	return status == POStatusConfirmed || status == POStatusShipped || status == POStatusPartial
}

// POItem is one ordered line on a purchase order.
type POItem struct {
	ID            string  `json:"id" gorm:"primaryKey;size:32"`
	POID          string  `json:"po_id" gorm:"size:32;not null;index"`
	RawMaterialID *string `json:"raw_material_id" gorm:"size:32;index"`
	Name          string  `json:"name" gorm:"size:200;not null"`
	Unit          string  `json:"unit" gorm:"size:20;default:kg"`

	QuantityOrdered decimal.Decimal `json:"quantity_ordered" gorm:"type:decimal(12,3);not null"`
	UnitPrice       decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,4);not null"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(15,2);not null"`

	// Receiving state persisted by the last successful commit.
	// Invariant: 0 <= quantity_received <= quantity_ordered.
	QuantityReceived decimal.Decimal `json:"quantity_received" gorm:"type:decimal(12,3);default:0"`
	ReceiveStatus    string          `json:"receive_status" gorm:"size:20;default:none"`

	SortOrder int       `json:"sort_order" gorm:"default:0"`
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (POItem) TableName() string {
	return "po_items"
}

// Item receive statuses
const (
	ReceiveStatusNone         = "none"
	ReceiveStatusReceived     = "received"
	ReceiveStatusDamaged      = "damaged"
	ReceiveStatusNotProcessed = "not_processed"
)

// IsRemovedStatus reports whether a receive status excludes the line's value
// from the order totals.
func IsRemovedStatus(status string) bool {
	return status == ReceiveStatusDamaged || status == ReceiveStatusNotProcessed
}
