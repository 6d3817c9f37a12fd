package receiving

import (
	"testing"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
)

// TestAdjustExcludesRemovedLines is the worked example from the receiving
// design: subtotal 100.00, tax 16%, one 20.00 line damaged.
func TestAdjustExcludesRemovedLines(t *testing.T) {
	items := []entity.POItem{
		{ID: "keep", QuantityOrdered: dec("4"), Total: dec("80.00")},
		{ID: "dmg", QuantityOrdered: dec("1"), Total: dec("20.00")},
	}

	st, err := MarkDamaged(items, NewState(items), "dmg")
	if err != nil {
		t.Fatalf("MarkDamaged failed: %v", err)
	}

	got := Adjust(dec("100.00"), dec("0.16"), dec("0"), items, st)

	if !got.RemovedTotal.Equal(dec("20.00")) {
		t.Fatalf("removed total: want 20.00, got %s", got.RemovedTotal)
	}
	if !got.AdjustedSubtotal.Equal(dec("80.00")) {
		t.Fatalf("adjusted subtotal: want 80.00, got %s", got.AdjustedSubtotal)
	}
	if !got.AdjustedTax.Equal(dec("12.80")) {
		t.Fatalf("adjusted tax: want 12.80, got %s", got.AdjustedTax)
	}
	if !got.AdjustedTotal.Equal(dec("92.80")) {
		t.Fatalf("adjusted total: want 92.80, got %s", got.AdjustedTotal)
	}
}

// TestAdjustWithCommission adds a commission rate on top of tax.
func TestAdjustWithCommission(t *testing.T) {
	items := []entity.POItem{
		{ID: "a", QuantityOrdered: dec("1"), Total: dec("250.00")},
	}

	got := Adjust(dec("250.00"), dec("0.16"), dec("0.025"), items, NewState(items))

	if !got.AdjustedSubtotal.Equal(dec("250.00")) {
		t.Fatalf("adjusted subtotal: want 250.00, got %s", got.AdjustedSubtotal)
	}
	if !got.AdjustedTax.Equal(dec("40.00")) {
		t.Fatalf("adjusted tax: want 40.00, got %s", got.AdjustedTax)
	}
	if !got.AdjustedCommission.Equal(dec("6.25")) {
		t.Fatalf("adjusted commission: want 6.25, got %s", got.AdjustedCommission)
	}
	if !got.AdjustedTotal.Equal(dec("296.25")) {
		t.Fatalf("adjusted total: want 296.25, got %s", got.AdjustedTotal)
	}
}

// TestAdjustRoundsToCents exercises a rate that produces a repeating
// fraction under binary floats; decimal math must land exactly on cents.
func TestAdjustRoundsToCents(t *testing.T) {
	items := []entity.POItem{
		{ID: "a", QuantityOrdered: dec("3"), Total: dec("10.10")},
	}

	got := Adjust(dec("10.10"), dec("0.16"), dec("0"), items, NewState(items))

	// 10.10 * 0.16 = 1.616 -> 1.62
	if !got.AdjustedTax.Equal(dec("1.62")) {
		t.Fatalf("adjusted tax: want 1.62, got %s", got.AdjustedTax)
	}
	if got.AdjustedTax.Exponent() < -2 {
		t.Fatalf("tax must be rounded to 2 decimals, got %s", got.AdjustedTax)
	}
	if !got.AdjustedTotal.Equal(dec("11.72")) {
		t.Fatalf("adjusted total: want 11.72, got %s", got.AdjustedTotal)
	}
}

// TestAdjustAllLinesRemoved zeroes everything out.
func TestAdjustAllLinesRemoved(t *testing.T) {
	items := []entity.POItem{
		{ID: "a", QuantityOrdered: dec("1"), Total: dec("60.00")},
		{ID: "b", QuantityOrdered: dec("1"), Total: dec("40.00")},
	}

	st, err := MarkDamaged(items, NewState(items), "a")
	if err != nil {
		t.Fatalf("MarkDamaged failed: %v", err)
	}
	st, err = MarkNotProcessed(items, st, "b")
	if err != nil {
		t.Fatalf("MarkNotProcessed failed: %v", err)
	}

	got := Adjust(dec("100.00"), dec("0.16"), dec("0.03"), items, st)
	if !got.AdjustedSubtotal.IsZero() || !got.AdjustedTotal.IsZero() {
		t.Fatalf("expected zero totals, got subtotal=%s total=%s",
			got.AdjustedSubtotal, got.AdjustedTotal)
	}
	if !got.RemovedTotal.Equal(dec("100.00")) {
		t.Fatalf("removed total: want 100.00, got %s", got.RemovedTotal)
	}
}
