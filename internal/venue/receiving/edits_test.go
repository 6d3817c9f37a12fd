package receiving

import (
	"errors"
	"testing"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
)

// TestReceiveItemQuantityBound verifies quantities above the ordered amount
// are rejected and leave the input state untouched.
func TestReceiveItemQuantityBound(t *testing.T) {
	items := testItems()
	st := NewState(items)

	if _, err := ReceiveItem(items, st, "item-a", dec("11"), false); !errors.Is(err, ErrExceedsOrdered) {
		t.Fatalf("expected ErrExceedsOrdered, got %v", err)
	}
	if _, err := ReceiveItem(items, st, "item-a", dec("-1"), false); !errors.Is(err, ErrNegativeQuantity) {
		t.Fatalf("expected ErrNegativeQuantity, got %v", err)
	}
	if _, err := ReceiveItem(items, st, "no-such-item", dec("1"), false); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
	if !st.Equal(NewState(items)) {
		t.Fatal("rejected edits must not mutate the input state")
	}
}

// TestReceiveItemSplitRemainingAdditive verifies that receiving on a split
// remaining row adds to the existing local quantity, and that the additive
// sum is still bounded by the ordered quantity.
func TestReceiveItemSplitRemainingAdditive(t *testing.T) {
	items := testItems()

	st, err := ReceiveItem(items, NewState(items), "item-a", dec("4"), false)
	if err != nil {
		t.Fatalf("first receive failed: %v", err)
	}

	st, err = ReceiveItem(items, st, "item-a", dec("3"), true)
	if err != nil {
		t.Fatalf("remaining receive failed: %v", err)
	}
	if !st.Quantity("item-a").Equal(dec("7")) {
		t.Fatalf("expected additive quantity 7, got %s", st.Quantity("item-a"))
	}

	if _, err := ReceiveItem(items, st, "item-a", dec("4"), true); !errors.Is(err, ErrExceedsOrdered) {
		t.Fatalf("expected ErrExceedsOrdered for 7+4 > 10, got %v", err)
	}
}

// TestReceiveItemClearsStatus verifies receiving supersedes a pending
// damaged flag.
func TestReceiveItemClearsStatus(t *testing.T) {
	items := testItems()

	st, err := MarkDamaged(items, NewState(items), "item-a")
	if err != nil {
		t.Fatalf("MarkDamaged failed: %v", err)
	}
	st, err = ReceiveItem(items, st, "item-a", dec("10"), false)
	if err != nil {
		t.Fatalf("ReceiveItem failed: %v", err)
	}
	if st.Status("item-a") != "" {
		t.Fatalf("receiving must clear the pending status, got %q", st.Status("item-a"))
	}
}

// TestMarkDamagedForcesZero verifies the status/quantity invariant.
func TestMarkDamagedForcesZero(t *testing.T) {
	items := testItems()

	st, err := ReceiveItem(items, NewState(items), "item-a", dec("6"), false)
	if err != nil {
		t.Fatalf("ReceiveItem failed: %v", err)
	}
	st, err = MarkDamaged(items, st, "item-a")
	if err != nil {
		t.Fatalf("MarkDamaged failed: %v", err)
	}
	if st.Status("item-a") != entity.ReceiveStatusDamaged {
		t.Fatalf("expected damaged, got %q", st.Status("item-a"))
	}
	if !st.Quantity("item-a").IsZero() {
		t.Fatalf("damaged item quantity must be zero, got %s", st.Quantity("item-a"))
	}
}

// TestUndoStatusRevertsToPersisted verifies undo restores persisted values,
// including a persisted damaged flag.
func TestUndoStatusRevertsToPersisted(t *testing.T) {
	items := testItems()
	items = append(items, entity.POItem{
		ID:              "item-c",
		Name:            "Cilantro",
		QuantityOrdered: dec("2"),
		ReceiveStatus:   entity.ReceiveStatusDamaged,
	})

	// Local not_processed on top of persisted damaged; undo goes back to damaged.
	st, err := MarkNotProcessed(items, NewState(items), "item-c")
	if err != nil {
		t.Fatalf("MarkNotProcessed failed: %v", err)
	}
	st, err = UndoStatus(items, st, "item-c")
	if err != nil {
		t.Fatalf("UndoStatus failed: %v", err)
	}
	if st.Status("item-c") != entity.ReceiveStatusDamaged {
		t.Fatalf("expected persisted damaged after undo, got %q", st.Status("item-c"))
	}

	// Local damaged on a clean item; undo clears it entirely.
	st, err = MarkDamaged(items, st, "item-a")
	if err != nil {
		t.Fatalf("MarkDamaged failed: %v", err)
	}
	st, err = UndoStatus(items, st, "item-a")
	if err != nil {
		t.Fatalf("UndoStatus failed: %v", err)
	}
	if st.Status("item-a") != "" {
		t.Fatalf("expected cleared status after undo, got %q", st.Status("item-a"))
	}
	if !st.Quantity("item-a").IsZero() {
		t.Fatalf("expected persisted quantity 0 after undo, got %s", st.Quantity("item-a"))
	}
}

// TestReceiveAllPreservesHistory: items with persisted damaged status or a
// persisted received quantity keep those values; only untouched items are
// filled to the ordered quantity.
func TestReceiveAllPreservesHistory(t *testing.T) {
	items := []entity.POItem{
		{ID: "fresh", QuantityOrdered: dec("10")},
		{ID: "damaged", QuantityOrdered: dec("4"), ReceiveStatus: entity.ReceiveStatusDamaged},
		{ID: "partial", QuantityOrdered: dec("8"), QuantityReceived: dec("3"), ReceiveStatus: entity.ReceiveStatusReceived},
	}

	st := ReceiveAll(items)

	if !st.Quantity("fresh").Equal(dec("10")) {
		t.Fatalf("fresh item should fill to ordered, got %s", st.Quantity("fresh"))
	}
	if st.Status("damaged") != entity.ReceiveStatusDamaged || !st.Quantity("damaged").IsZero() {
		t.Fatalf("receive-all must not overwrite persisted damaged: status=%q qty=%s",
			st.Status("damaged"), st.Quantity("damaged"))
	}
	if !st.Quantity("partial").Equal(dec("3")) {
		t.Fatalf("receive-all must keep persisted partial quantity 3, got %s", st.Quantity("partial"))
	}
}

// TestReceiveNoneIsTrueRevert: after arbitrary edits, ReceiveNone equals a
// state freshly initialized from the same persisted lines.
func TestReceiveNoneIsTrueRevert(t *testing.T) {
	items := testItems()

	st, err := ReceiveItem(items, NewState(items), "item-a", dec("4"), false)
	if err != nil {
		t.Fatalf("ReceiveItem failed: %v", err)
	}
	st, err = MarkNotProcessed(items, st, "item-b")
	if err != nil {
		t.Fatalf("MarkNotProcessed failed: %v", err)
	}
	_ = st

	reverted := ReceiveNone(items)
	if !reverted.Equal(NewState(items)) {
		t.Fatal("ReceiveNone must deep-equal a freshly initialized state")
	}
}

// TestApplyReplaysActions checks the action replay path used by the HTTP
// preview/commit endpoints, including abort on the first invalid action.
func TestApplyReplaysActions(t *testing.T) {
	items := testItems()

	st, err := Apply(items, []Action{
		{Type: ActionReceiveAll},
		{Type: ActionMarkDamaged, ItemID: "item-a"},
		{Type: ActionReceiveItem, ItemID: "item-a", Quantity: dec("2")},
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !st.Quantity("item-a").Equal(dec("2")) || st.Status("item-a") != "" {
		t.Fatalf("unexpected final state for item-a: qty=%s status=%q",
			st.Quantity("item-a"), st.Status("item-a"))
	}

	_, err = Apply(items, []Action{
		{Type: ActionReceiveItem, ItemID: "item-a", Quantity: dec("99")},
	})
	if !errors.Is(err, ErrExceedsOrdered) {
		t.Fatalf("expected ErrExceedsOrdered from replay, got %v", err)
	}

	_, err = Apply(items, []Action{{Type: "telekinesis"}})
	if err == nil {
		t.Fatal("expected error for unknown action type")
	}
}
