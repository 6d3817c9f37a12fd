package receiving

import (
	"testing"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
)

// TestBuildBatchCompleteness: exactly one update per changed item, none for
// unchanged items.
func TestBuildBatchCompleteness(t *testing.T) {
	items := []entity.POItem{
		{ID: "changed", QuantityOrdered: dec("10")},
		{ID: "unchanged", QuantityOrdered: dec("5"), QuantityReceived: dec("5"), ReceiveStatus: entity.ReceiveStatusReceived},
		{ID: "flagged", QuantityOrdered: dec("2")},
	}

	st, err := ReceiveItem(items, NewState(items), "changed", dec("10"), false)
	if err != nil {
		t.Fatalf("ReceiveItem failed: %v", err)
	}
	st, err = MarkDamaged(items, st, "flagged")
	if err != nil {
		t.Fatalf("MarkDamaged failed: %v", err)
	}

	batch := BuildBatch(items, st)
	if len(batch) != 2 {
		t.Fatalf("expected 2 updates, got %d: %+v", len(batch), batch)
	}
	if batch[0].ItemID != "changed" || batch[0].ReceiveStatus != entity.ReceiveStatusReceived ||
		!batch[0].QuantityReceived.Equal(dec("10")) {
		t.Fatalf("unexpected first update: %+v", batch[0])
	}
	if batch[1].ItemID != "flagged" || batch[1].ReceiveStatus != entity.ReceiveStatusDamaged ||
		!batch[1].QuantityReceived.IsZero() {
		t.Fatalf("unexpected second update: %+v", batch[1])
	}
}

// TestBuildBatchEmptyWithoutEdits: a freshly initialized state produces an
// empty batch.
func TestBuildBatchEmptyWithoutEdits(t *testing.T) {
	items := testItems()
	if batch := BuildBatch(items, NewState(items)); len(batch) != 0 {
		t.Fatalf("expected empty batch, got %+v", batch)
	}
}

// TestBuildBatchNotProcessed maps the not_processed flag to {not_processed, 0}.
func TestBuildBatchNotProcessed(t *testing.T) {
	items := testItems()
	st, err := MarkNotProcessed(items, NewState(items), "item-a")
	if err != nil {
		t.Fatalf("MarkNotProcessed failed: %v", err)
	}

	batch := BuildBatch(items, st)
	if len(batch) != 1 {
		t.Fatalf("expected 1 update, got %d", len(batch))
	}
	if batch[0].ReceiveStatus != entity.ReceiveStatusNotProcessed || !batch[0].QuantityReceived.IsZero() {
		t.Fatalf("unexpected update: %+v", batch[0])
	}
}

// TestEndToEndScenario is the canonical two-item flow: A{ordered 10,
// received 0}, B{ordered 5, received 5}. Receiving 4 of A must split A in
// the projection and commit exactly one update {A, received, 4}.
func TestEndToEndScenario(t *testing.T) {
	items := []entity.POItem{
		{ID: "A", Name: "Tomate", QuantityOrdered: dec("10")},
		{ID: "B", Name: "Cebolla", QuantityOrdered: dec("5"), QuantityReceived: dec("5"), ReceiveStatus: entity.ReceiveStatusReceived},
	}

	st, err := ReceiveItem(items, NewState(items), "A", dec("4"), false)
	if err != nil {
		t.Fatalf("ReceiveItem failed: %v", err)
	}

	rows := Project(items, st)
	if len(rows) != 3 {
		t.Fatalf("expected A split + B single = 3 rows, got %d", len(rows))
	}
	if rows[0].Role != RowReceived || !rows[0].Quantity.Equal(dec("4")) {
		t.Fatalf("unexpected received row: %+v", rows[0])
	}
	if rows[1].Role != RowRemaining || !rows[1].Quantity.Equal(dec("6")) {
		t.Fatalf("unexpected remaining row: %+v", rows[1])
	}
	if rows[2].Role != RowSingle || rows[2].OriginalItemID != "B" {
		t.Fatalf("unexpected B row: %+v", rows[2])
	}

	batch := BuildBatch(items, st)
	if len(batch) != 1 {
		t.Fatalf("expected exactly 1 update, got %d: %+v", len(batch), batch)
	}
	if batch[0].ItemID != "A" || batch[0].ReceiveStatus != entity.ReceiveStatusReceived ||
		!batch[0].QuantityReceived.Equal(dec("4")) {
		t.Fatalf("unexpected update: %+v", batch[0])
	}
}
