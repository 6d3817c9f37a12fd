package receiving

import (
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/shopspring/decimal"
)

// ReceiveItem records a received quantity for a line item.
//
// On a split "remaining" row the quantity is additive: the row represents an
// increment on top of the already-received partial amount. Everywhere else
// the quantity is absolute. Receiving supersedes a pending damaged or
// not_processed flag on the item.
func ReceiveItem(items []entity.POItem, st State, itemID string, qty decimal.Decimal, splitRemaining bool) (State, error) {
	item, ok := findItem(items, itemID)
	if !ok {
		return State{}, ErrUnknownItem
	}
	if qty.IsNegative() {
		return State{}, ErrNegativeQuantity
	}

	target := qty
	if splitRemaining {
		target = st.Quantity(itemID).Add(qty)
	}
	if target.GreaterThan(item.QuantityOrdered) {
		return State{}, ErrExceedsOrdered
	}

	out := st.clone()
	out.Quantities[itemID] = target
	delete(out.Statuses, itemID)
	return out, nil
}

// MarkDamaged flags a line item as damaged. The pending quantity is forced
// to zero.
func MarkDamaged(items []entity.POItem, st State, itemID string) (State, error) {
	return markRemoved(items, st, itemID, entity.ReceiveStatusDamaged)
}

// MarkNotProcessed flags a line item as not processed by the supplier. The
// pending quantity is forced to zero.
func MarkNotProcessed(items []entity.POItem, st State, itemID string) (State, error) {
	return markRemoved(items, st, itemID, entity.ReceiveStatusNotProcessed)
}

func markRemoved(items []entity.POItem, st State, itemID, status string) (State, error) {
	if _, ok := findItem(items, itemID); !ok {
		return State{}, ErrUnknownItem
	}
	out := st.clone()
	out.Statuses[itemID] = status
	out.Quantities[itemID] = decimal.Zero
	return out, nil
}

// UndoStatus removes the local status override on an item, reverting it to
// the persisted receive status and quantity.
func UndoStatus(items []entity.POItem, st State, itemID string) (State, error) {
	item, ok := findItem(items, itemID)
	if !ok {
		return State{}, ErrUnknownItem
	}
	out := st.clone()
	if entity.IsRemovedStatus(item.ReceiveStatus) {
		out.Statuses[itemID] = item.ReceiveStatus
	} else {
		delete(out.Statuses, itemID)
	}
	out.Quantities[itemID] = item.QuantityReceived
	return out, nil
}

// ReceiveAll marks every line without prior commit history as fully
// received. Items that already carry a persisted damaged/not_processed
// status or a persisted received quantity keep their persisted values; a
// receive-all must never silently overwrite committed history.
func ReceiveAll(items []entity.POItem) State {
	st := State{
		Quantities: make(map[string]decimal.Decimal, len(items)),
		Statuses:   make(map[string]string),
	}
	for _, item := range items {
		if entity.IsRemovedStatus(item.ReceiveStatus) {
			st.Statuses[item.ID] = item.ReceiveStatus
			st.Quantities[item.ID] = decimal.Zero
			continue
		}
		if item.QuantityReceived.IsPositive() {
			st.Quantities[item.ID] = item.QuantityReceived
			continue
		}
		st.Quantities[item.ID] = item.QuantityOrdered
	}
	return st
}

// ReceiveNone discards all pending edits, resetting the state to mirror the
// persisted line items exactly.
func ReceiveNone(items []entity.POItem) State {
	return NewState(items)
}
