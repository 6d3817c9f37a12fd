package receiving

import (
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/shopspring/decimal"
)

// ItemUpdate is one per-item persistence request in a commit batch.
type ItemUpdate struct {
	ItemID           string          `json:"item_id"`
	ReceiveStatus    string          `json:"receive_status"`
	QuantityReceived decimal.Decimal `json:"quantity_received"`
}

// BuildBatch diffs the pending state against the persisted line items and
// returns the minimal ordered list of item updates required to commit.
// Unchanged items produce no update. Per-item rules:
//
//	damaged       -> {damaged, 0}
//	not_processed -> {not_processed, 0}
//	quantity > 0  -> {received, quantity}
//	otherwise     -> nothing to persist
func BuildBatch(items []entity.POItem, st State) []ItemUpdate {
	var batch []ItemUpdate
	for _, item := range items {
		status, qty, ok := desired(item.ID, st)
		if !ok {
			continue
		}
		if status == item.ReceiveStatus && qty.Equal(item.QuantityReceived) {
			continue
		}
		batch = append(batch, ItemUpdate{
			ItemID:           item.ID,
			ReceiveStatus:    status,
			QuantityReceived: qty,
		})
	}
	return batch
}

func desired(itemID string, st State) (status string, qty decimal.Decimal, ok bool) {
	switch st.Status(itemID) {
	case entity.ReceiveStatusDamaged:
		return entity.ReceiveStatusDamaged, decimal.Zero, true
	case entity.ReceiveStatusNotProcessed:
		return entity.ReceiveStatusNotProcessed, decimal.Zero, true
	}
	if q := st.Quantity(itemID); q.IsPositive() {
		return entity.ReceiveStatusReceived, q, true
	}
	return "", decimal.Zero, false
}
