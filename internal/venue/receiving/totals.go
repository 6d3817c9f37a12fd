package receiving

import (
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/shopspring/decimal"
)

// AdjustedTotals are the order financials with the value of locally removed
// (damaged/not_processed) lines excluded. They are informational until
// commit; the backend recomputes authoritative totals afterwards.
type AdjustedTotals struct {
	RemovedTotal       decimal.Decimal `json:"removed_total"`
	AdjustedSubtotal   decimal.Decimal `json:"adjusted_subtotal"`
	AdjustedTax        decimal.Decimal `json:"adjusted_tax"`
	AdjustedCommission decimal.Decimal `json:"adjusted_commission"`
	AdjustedTotal      decimal.Decimal `json:"adjusted_total"`
}

// Adjust recomputes order totals excluding lines flagged damaged or
// not_processed in the pending state. All arithmetic is decimal; derived
// amounts round to 2 decimal places.
func Adjust(subtotal, taxRate, commissionRate decimal.Decimal, items []entity.POItem, st State) AdjustedTotals {
	removed := decimal.Zero
	for _, item := range items {
		if entity.IsRemovedStatus(st.Status(item.ID)) {
			removed = removed.Add(item.Total)
		}
	}

	adjSubtotal := subtotal.Sub(removed).Round(2)
	adjTax := adjSubtotal.Mul(taxRate).Round(2)
	adjCommission := adjSubtotal.Mul(commissionRate).Round(2)

	return AdjustedTotals{
		RemovedTotal:       removed.Round(2),
		AdjustedSubtotal:   adjSubtotal,
		AdjustedTax:        adjTax,
		AdjustedCommission: adjCommission,
		AdjustedTotal:      adjSubtotal.Add(adjTax).Add(adjCommission),
	}
}
