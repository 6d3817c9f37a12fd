// Package receiving implements the purchase-order receiving reconciliation
// engine: pending edit state, display projection with partial-receipt row
// splitting, adjusted financial totals and commit batch construction.
//
// Everything here is pure. The package never touches the database, the
// clock or the network; services feed it persisted line items and apply the
// batches it produces.
package receiving

import (
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/shopspring/decimal"
)

// State is the pending edit state of one receiving session. It is a value:
// every edit operation returns a new State, so a caller can drop the result
// on validation failure and keep the one the user is editing.
type State struct {
	// Quantities maps line item id to the pending received quantity.
	Quantities map[string]decimal.Decimal
	// Statuses maps line item id to a pending damaged/not_processed flag.
	// Items without an entry follow their quantity. When a status is set the
	// quantity is forced to zero.
	Statuses map[string]string
}

// NewState initializes pending state mirroring the persisted line items.
func NewState(items []entity.POItem) State {
	st := State{
		Quantities: make(map[string]decimal.Decimal, len(items)),
		Statuses:   make(map[string]string),
	}
	for _, item := range items {
		st.Quantities[item.ID] = item.QuantityReceived
		if entity.IsRemovedStatus(item.ReceiveStatus) {
			st.Statuses[item.ID] = item.ReceiveStatus
		}
	}
	return st
}

// Quantity returns the pending quantity for an item, zero if absent.
func (st State) Quantity(itemID string) decimal.Decimal {
	if q, ok := st.Quantities[itemID]; ok {
		return q
	}
	return decimal.Zero
}

// Status returns the pending damaged/not_processed flag, "" if none.
func (st State) Status(itemID string) string {
	return st.Statuses[itemID]
}

func (st State) clone() State {
	out := State{
		Quantities: make(map[string]decimal.Decimal, len(st.Quantities)),
		Statuses:   make(map[string]string, len(st.Statuses)),
	}
	for k, v := range st.Quantities {
		out.Quantities[k] = v
	}
	for k, v := range st.Statuses {
		out.Statuses[k] = v
	}
	return out
}

// Equal reports whether two states carry identical pending edits.
func (st State) Equal(other State) bool {
	if len(st.Quantities) != len(other.Quantities) || len(st.Statuses) != len(other.Statuses) {
		return false
	}
	for k, v := range st.Quantities {
		ov, ok := other.Quantities[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	for k, v := range st.Statuses {
		if other.Statuses[k] != v {
			return false
		}
	}
	return true
}

func findItem(items []entity.POItem, itemID string) (*entity.POItem, bool) {
	for i := range items {
		if items[i].ID == itemID {
			return &items[i], true
		}
	}
	return nil, false
}
