package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/receiving"
	"github.com/shopspring/decimal"
)

// fakeReceiptStore records item updates and fails for configured items.
type fakeReceiptStore struct {
	mu      sync.Mutex
	updates map[string]receiving.ItemUpdate
	failing map[string]bool
}

func newFakeReceiptStore(failing ...string) *fakeReceiptStore {
	f := &fakeReceiptStore{
		updates: make(map[string]receiving.ItemUpdate),
		failing: make(map[string]bool),
	}
	for _, id := range failing {
		f.failing[id] = true
	}
	return f
}

func (f *fakeReceiptStore) UpdateItemReceipt(ctx context.Context, itemID, status string, qty decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing[itemID] {
		return fmt.Errorf("write %s: connection reset", itemID)
	}
	f.updates[itemID] = receiving.ItemUpdate{ItemID: itemID, ReceiveStatus: status, QuantityReceived: qty}
	return nil
}

func batchOf(n int) []receiving.ItemUpdate {
	batch := make([]receiving.ItemUpdate, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, receiving.ItemUpdate{
			ItemID:           fmt.Sprintf("item-%d", i),
			ReceiveStatus:    entity.ReceiveStatusReceived,
			QuantityReceived: decimal.NewFromInt(int64(i + 1)),
		})
	}
	return batch
}

func TestCommitBatchAllSucceed(t *testing.T) {
	store := newFakeReceiptStore()
	batch := batchOf(8)

	if cerr := commitBatch(context.Background(), store, batch); cerr != nil {
		t.Fatalf("commitBatch: %v", cerr)
	}
	if len(store.updates) != 8 {
		t.Fatalf("expected 8 updates persisted, got %d", len(store.updates))
	}
	for _, u := range batch {
		got, ok := store.updates[u.ItemID]
		if !ok {
			t.Fatalf("update for %s not persisted", u.ItemID)
		}
		if !got.QuantityReceived.Equal(u.QuantityReceived) {
			t.Errorf("item %s: persisted qty %s, want %s", u.ItemID, got.QuantityReceived, u.QuantityReceived)
		}
	}
}

func TestCommitBatchPartialFailure(t *testing.T) {
	store := newFakeReceiptStore("item-2", "item-5")
	batch := batchOf(6)

	cerr := commitBatch(context.Background(), store, batch)
	if cerr == nil {
		t.Fatal("expected CommitError")
	}
	if cerr.Failed != 2 || cerr.Total != 6 {
		t.Errorf("CommitError = %d/%d, want 2/6", cerr.Failed, cerr.Total)
	}
	if cerr.Err == nil {
		t.Error("CommitError.Err should carry the first failure")
	}

	// Successful updates stay persisted: the batch is absolute and safe
	// to re-send after the failed rows recover.
	if len(store.updates) != 4 {
		t.Errorf("expected 4 persisted updates, got %d", len(store.updates))
	}
	if _, ok := store.updates["item-2"]; ok {
		t.Error("failed item should not be persisted")
	}

	var commitErr *receiving.CommitError
	if !errors.As(error(cerr), &commitErr) {
		t.Error("commitBatch error should unwrap as *receiving.CommitError")
	}
}

func TestCommitBatchRetryAfterFailure(t *testing.T) {
	store := newFakeReceiptStore("item-1")
	batch := batchOf(3)

	if cerr := commitBatch(context.Background(), store, batch); cerr == nil {
		t.Fatal("expected first commit to fail")
	}

	// Recovery: the store heals, the same batch re-sends cleanly.
	store.mu.Lock()
	store.failing = map[string]bool{}
	store.mu.Unlock()

	if cerr := commitBatch(context.Background(), store, batch); cerr != nil {
		t.Fatalf("retry should succeed: %v", cerr)
	}
	if len(store.updates) != 3 {
		t.Errorf("expected 3 persisted updates after retry, got %d", len(store.updates))
	}
}

func TestDeriveStatus(t *testing.T) {
	dec := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(s)
		if err != nil {
			t.Fatalf("bad decimal %q: %v", s, err)
		}
		return d
	}
	item := func(status, received, ordered string) entity.POItem {
		return entity.POItem{
			ReceiveStatus:    status,
			QuantityReceived: dec(received),
			QuantityOrdered:  dec(ordered),
		}
	}

	tests := []struct {
		name    string
		items   []entity.POItem
		current string
		want    string
	}{
		{
			name: "all fully received",
			items: []entity.POItem{
				item(entity.ReceiveStatusReceived, "10", "10"),
				item(entity.ReceiveStatusReceived, "5", "5"),
			},
			current: entity.POStatusPartial,
			want:    entity.POStatusReceived,
		},
		{
			name: "damaged counts as settled",
			items: []entity.POItem{
				item(entity.ReceiveStatusReceived, "10", "10"),
				item(entity.ReceiveStatusDamaged, "0", "5"),
			},
			current: entity.POStatusConfirmed,
			want:    entity.POStatusReceived,
		},
		{
			name: "partial receipt",
			items: []entity.POItem{
				item(entity.ReceiveStatusReceived, "4", "10"),
				item(entity.ReceiveStatusNone, "0", "5"),
			},
			current: entity.POStatusConfirmed,
			want:    entity.POStatusPartial,
		},
		{
			name: "no progress keeps current",
			items: []entity.POItem{
				item(entity.ReceiveStatusNone, "0", "10"),
			},
			current: entity.POStatusShipped,
			want:    entity.POStatusShipped,
		},
		{
			name:    "no items keeps current",
			items:   nil,
			current: entity.POStatusConfirmed,
			want:    entity.POStatusConfirmed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveStatus(tt.items, tt.current); got != tt.want {
				t.Errorf("deriveStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}
