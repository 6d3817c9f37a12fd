package receiving

import (
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/shopspring/decimal"
)

// Row roles
const (
	RowSingle    = "single"
	RowReceived  = "received"
	RowRemaining = "remaining"
)

// Row is one display row of the receiving table. A partially received item
// projects into two consecutive rows (received, then remaining); everything
// else projects into one. Row ids for split rows are derived as
// "<itemID>-received" / "<itemID>-remaining" and are presentation-only:
// edits and commits always address OriginalItemID.
type Row struct {
	ID              string          `json:"id"`
	OriginalItemID  string          `json:"original_item_id"`
	Role            string          `json:"role"`
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	QuantityOrdered decimal.Decimal `json:"quantity_ordered"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status"`
	Editable        bool            `json:"editable"`
}

// Project computes the display rows for the given persisted items and
// pending state. Input order is preserved; the projection is deterministic
// and idempotent for a fixed state.
func Project(items []entity.POItem, st State) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		q := st.Quantity(item.ID)

		split := q.IsPositive() && q.LessThan(item.QuantityOrdered)
		if !split {
			rows = append(rows, Row{
				ID:              item.ID,
				OriginalItemID:  item.ID,
				Role:            RowSingle,
				Name:            item.Name,
				Unit:            item.Unit,
				Quantity:        q,
				QuantityOrdered: item.QuantityOrdered,
				UnitPrice:       item.UnitPrice,
				Total:           item.Total,
				Status:          singleRowStatus(item, st, q),
				Editable:        !q.Equal(item.QuantityOrdered),
			})
			continue
		}

		rows = append(rows,
			Row{
				ID:              item.ID + "-received",
				OriginalItemID:  item.ID,
				Role:            RowReceived,
				Name:            item.Name,
				Unit:            item.Unit,
				Quantity:        q,
				QuantityOrdered: item.QuantityOrdered,
				UnitPrice:       item.UnitPrice,
				Total:           item.Total,
				Status:          entity.ReceiveStatusReceived,
			},
			Row{
				ID:              item.ID + "-remaining",
				OriginalItemID:  item.ID,
				Role:            RowRemaining,
				Name:            item.Name,
				Unit:            item.Unit,
				Quantity:        item.QuantityOrdered.Sub(q),
				QuantityOrdered: item.QuantityOrdered,
				UnitPrice:       item.UnitPrice,
				Total:           item.Total,
				Status:          entity.ReceiveStatusNone,
				Editable:        true,
			},
		)
	}
	return rows
}

func singleRowStatus(item entity.POItem, st State, q decimal.Decimal) string {
	if s := st.Status(item.ID); s != "" {
		return s
	}
	if q.IsPositive() && q.Equal(item.QuantityOrdered) {
		return entity.ReceiveStatusReceived
	}
	return entity.ReceiveStatusNone
}
