package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/shared/notify"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/receiving"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// itemReceiptStore persists one line item's receive status and quantity.
// *repository.PORepository satisfies it; tests inject a fake.
type itemReceiptStore interface {
	UpdateItemReceipt(ctx context.Context, itemID, status string, qty decimal.Decimal) error
}

// ReceivingService runs the goods-receipt flow on confirmed purchase
// orders: preview pending edits, commit them item by item, then roll the
// order status and stock levels forward.
type ReceivingService struct {
	poRepo        *repository.PORepository
	inventoryRepo *repository.InventoryRepository
	logRepo       *repository.ActivityLogRepository
	store         itemReceiptStore
	rdb           *redis.Client
	notifier      *notify.Notifier
	logger        *zap.Logger
}

func NewReceivingService(poRepo *repository.PORepository, inventoryRepo *repository.InventoryRepository, logRepo *repository.ActivityLogRepository, rdb *redis.Client, notifier *notify.Notifier, logger *zap.Logger) *ReceivingService {
	return &ReceivingService{
		poRepo:        poRepo,
		inventoryRepo: inventoryRepo,
		logRepo:       logRepo,
		store:         poRepo,
		rdb:           rdb,
		notifier:      notifier,
		logger:        logger,
	}
}

// PreviewResult is the server-computed view of a pending edit session.
type PreviewResult struct {
	Rows           []receiving.Row          `json:"rows"`
	Totals         receiving.AdjustedTotals `json:"totals"`
	PendingUpdates int                      `json:"pending_updates"`
}

// Preview replays an edit session against the persisted order and returns
// the projected rows and adjusted totals without persisting anything.
func (s *ReceivingService) Preview(ctx context.Context, venueID, poID string, actions []receiving.Action) (*PreviewResult, error) {
	po, err := s.receivablePO(ctx, venueID, poID)
	if err != nil {
		return nil, err
	}

	st, err := receiving.Apply(po.Items, actions)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		Rows:           receiving.Project(po.Items, st),
		Totals:         receiving.Adjust(po.Subtotal, po.TaxRate, po.CommissionRate, po.Items, st),
		PendingUpdates: len(receiving.BuildBatch(po.Items, st)),
	}, nil
}

// CommitResult reports a successful commit.
type CommitResult struct {
	Updated int                   `json:"updated"`
	Order   *entity.PurchaseOrder `json:"order"`
}

// Commit replays an edit session and persists the resulting item updates.
// Updates fan out one goroutine per item against the store; each write is
// absolute and idempotent. If any update fails the commit returns a
// *receiving.CommitError and skips status recalculation, leaving the order
// safe to retry: updates that went through stay persisted and re-sending
// them is a no-op. On success the order status, stock levels, audit trail
// and caches all move forward.
func (s *ReceivingService) Commit(ctx context.Context, venueID, poID, userID string, actions []receiving.Action) (*CommitResult, error) {
	po, err := s.receivablePO(ctx, venueID, poID)
	if err != nil {
		return nil, err
	}

	st, err := receiving.Apply(po.Items, actions)
	if err != nil {
		return nil, err
	}

	batch := receiving.BuildBatch(po.Items, st)
	if len(batch) == 0 {
		return &CommitResult{Updated: 0, Order: po}, nil
	}

	if cerr := commitBatch(ctx, s.store, batch); cerr != nil {
		s.logger.Warn("receiving commit incomplete",
			zap.String("po_code", po.POCode),
			zap.Int("failed", cerr.Failed),
			zap.Int("total", cerr.Total),
			zap.Error(cerr.Err))
		return nil, cerr
	}

	s.applyStockMovements(ctx, po, batch, userID)

	newStatus, err := s.RecalculateStatus(ctx, venueID, poID)
	if err != nil {
		return nil, err
	}

	s.invalidateCaches(ctx, po.VenueID, poID)
	s.logRepo.LogActivity(ctx, po.VenueID, "purchase_order", po.ID, po.POCode,
		"receive_commit", po.Status, newStatus,
		fmt.Sprintf("%d item updates committed", len(batch)), userID)

	if newStatus == entity.POStatusReceived && s.notifier != nil {
		go s.sendReceivedNotification(context.Background(), po)
	}

	updated, err := s.poRepo.FindByID(ctx, venueID, poID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("receiving commit complete",
		zap.String("po_code", po.POCode),
		zap.Int("updated", len(batch)),
		zap.String("status", newStatus))
	return &CommitResult{Updated: len(batch), Order: updated}, nil
}

// commitBatch persists a commit batch, one goroutine per item update, and
// gathers the failures behind a WaitGroup barrier. Each update is an
// absolute write, so partial success leaves the order consistent and the
// whole batch safe to re-send.
func commitBatch(ctx context.Context, store itemReceiptStore, batch []receiving.ItemUpdate) *receiving.CommitError {
	errs := make([]error, len(batch))
	var wg sync.WaitGroup
	for i, update := range batch {
		wg.Add(1)
		go func(i int, update receiving.ItemUpdate) {
			defer wg.Done()
			errs[i] = store.UpdateItemReceipt(ctx, update.ItemID, update.ReceiveStatus, update.QuantityReceived)
		}(i, update)
	}
	wg.Wait()

	failed := 0
	var firstErr error
	for _, err := range errs {
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if failed > 0 {
		return &receiving.CommitError{Failed: failed, Total: len(batch), Err: firstErr}
	}
	return nil
}

// RecalculateStatus derives the order status from its items after a
// successful commit. Every item settled (fully received, damaged or
// not_processed) moves the order to received; any partial progress moves
// it to partial; otherwise the status stays put.
func (s *ReceivingService) RecalculateStatus(ctx context.Context, venueID, poID string) (string, error) {
	po, err := s.poRepo.FindByID(ctx, venueID, poID)
	if err != nil {
		return "", err
	}

	target := deriveStatus(po.Items, po.Status)
	if target == po.Status || !entity.CanTransition(po.Status, target) {
		return po.Status, nil
	}
	if err := s.poRepo.UpdateStatus(ctx, poID, target); err != nil {
		return "", err
	}
	return target, nil
}

// deriveStatus computes the order status implied by the persisted items.
// Every item settled means received; any progress means partial; no
// progress keeps the current status.
func deriveStatus(items []entity.POItem, current string) string {
	allSettled := len(items) > 0
	anyProgress := false
	for _, item := range items {
		settled := entity.IsRemovedStatus(item.ReceiveStatus) ||
			(item.ReceiveStatus == entity.ReceiveStatusReceived && item.QuantityReceived.Equal(item.QuantityOrdered))
		if !settled {
			allSettled = false
		}
		if item.QuantityReceived.IsPositive() || entity.IsRemovedStatus(item.ReceiveStatus) {
			anyProgress = true
		}
	}

	switch {
	case allSettled:
		return entity.POStatusReceived
	case anyProgress:
		return entity.POStatusPartial
	}
	return current
}

// applyStockMovements writes purchase_receipt transactions for the stock
// delta of each committed update whose line is linked to a raw material.
// Stock errors are logged, not fatal: the receipt itself already stands.
func (s *ReceivingService) applyStockMovements(ctx context.Context, po *entity.PurchaseOrder, batch []receiving.ItemUpdate, userID string) {
	byID := make(map[string]entity.POItem, len(po.Items))
	for _, item := range po.Items {
		byID[item.ID] = item
	}

	for _, update := range batch {
		item, ok := byID[update.ItemID]
		if !ok || item.RawMaterialID == nil {
			continue
		}
		delta := update.QuantityReceived.Sub(item.QuantityReceived)
		if delta.IsZero() {
			continue
		}
		itemID := item.ID
		reason := fmt.Sprintf("receipt on %s", po.POCode)
		if _, err := s.inventoryRepo.AdjustStock(ctx, po.VenueID, *item.RawMaterialID, entity.TxnTypePurchaseReceipt, delta, &itemID, reason, userID); err != nil {
			s.logger.Error("stock movement failed",
				zap.String("po_code", po.POCode),
				zap.String("item_id", item.ID),
				zap.Error(err))
			continue
		}

		if material, err := s.inventoryRepo.FindByID(ctx, po.VenueID, *item.RawMaterialID); err == nil {
			material.LastUnitCost = item.UnitPrice
			if err := s.inventoryRepo.Update(ctx, material); err != nil {
				s.logger.Warn("last unit cost update failed",
					zap.String("material_id", material.ID),
					zap.Error(err))
			}
		}
	}
}

// receivablePO loads an order within the venue and checks it admits
// receiving edits.
func (s *ReceivingService) receivablePO(ctx context.Context, venueID, poID string) (*entity.PurchaseOrder, error) {
	po, err := s.poRepo.FindByID(ctx, venueID, poID)
	if err != nil {
		return nil, err
	}
	if entity.IsFinalized(po.Status) {
		return nil, receiving.ErrOrderFinalized
	}
	if !entity.IsReceivable(po.Status) {
		return nil, fmt.Errorf("purchase order %s is %s and not yet receivable", po.POCode, po.Status)
	}
	return po, nil
}

func (s *ReceivingService) invalidateCaches(ctx context.Context, venueID, poID string) {
	if s.rdb == nil {
		return
	}
	keys := []string{
		fmt.Sprintf("venue:%s:dashboard", venueID),
		fmt.Sprintf("po:%s", poID),
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func (s *ReceivingService) sendReceivedNotification(ctx context.Context, po *entity.PurchaseOrder) {
	supplierName := ""
	if po.Supplier != nil {
		supplierName = po.Supplier.Name
	}
	event := notify.Event{
		Type:    "po_received",
		Title:   "Orden de compra recibida",
		Message: fmt.Sprintf("La orden %s fue recibida completamente.", po.POCode),
		Fields: map[string]string{
			"po_code":  po.POCode,
			"supplier": supplierName,
			"total":    po.Total.StringFixed(2),
		},
	}
	if err := s.notifier.Send(ctx, event); err != nil {
		s.logger.Warn("webhook notification failed", zap.String("po_code", po.POCode), zap.Error(err))
	}
}
