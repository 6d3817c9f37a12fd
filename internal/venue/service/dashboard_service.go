package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const dashboardCacheTTL = 5 * time.Minute

// DashboardService aggregates procurement and inventory figures for the
// venue overview page. Results cache in redis and invalidate on receiving
// commits.
type DashboardService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewDashboardService(db *gorm.DB, rdb *redis.Client) *DashboardService {
	return &DashboardService{db: db, rdb: rdb}
}

// Overview is the dashboard payload.
type Overview struct {
	OpenPOs          int             `json:"open_pos"`
	AwaitingReceipt  int             `json:"awaiting_receipt"`
	ReceivedThisWeek int             `json:"received_this_week"`
	OpenPOValue      decimal.Decimal `json:"open_po_value"`
	LowStockCount    int             `json:"low_stock_count"`
	LowStockItems    []LowStockItem  `json:"low_stock_items"`
	ActiveSuppliers  int             `json:"active_suppliers"`
	MonthSpend       []SupplierSpend `json:"month_spend"`
	DamagedRate      decimal.Decimal `json:"damaged_rate"`
	GeneratedAt      time.Time       `json:"generated_at"`
}

// SupplierSpend is one supplier's received-order spend this month.
type SupplierSpend struct {
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	Spend        decimal.Decimal `json:"spend"`
}

// LowStockItem is a raw material below its minimum stock level.
type LowStockItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	Stock    decimal.Decimal `json:"stock"`
	MinStock decimal.Decimal `json:"min_stock"`
}

// GetOverview returns the venue overview, from cache when fresh.
func (s *DashboardService) GetOverview(ctx context.Context, venueID string) (*Overview, error) {
	cacheKey := fmt.Sprintf("venue:%s:dashboard", venueID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var overview Overview
			if err := json.Unmarshal(cached, &overview); err == nil {
				return &overview, nil
			}
		}
	}

	overview, err := s.computeOverview(ctx, venueID)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(overview); err == nil {
			s.rdb.Set(ctx, cacheKey, payload, dashboardCacheTTL)
		}
	}
	return overview, nil
}

func (s *DashboardService) computeOverview(ctx context.Context, venueID string) (*Overview, error) {
	overview := &Overview{GeneratedAt: time.Now()}

	openStatuses := []string{
		entity.POStatusDraft, entity.POStatusPendingApproval, entity.POStatusApproved,
		entity.POStatusSent, entity.POStatusConfirmed, entity.POStatusShipped, entity.POStatusPartial,
	}
	receivableStatuses := []string{
		entity.POStatusConfirmed, entity.POStatusShipped, entity.POStatusPartial,
	}

	var openPOs int64
	if err := s.db.WithContext(ctx).Model(&entity.PurchaseOrder{}).
		Where("venue_id = ? AND status IN ?", venueID, openStatuses).
		Count(&openPOs).Error; err != nil {
		return nil, err
	}
	overview.OpenPOs = int(openPOs)

	var awaiting int64
	if err := s.db.WithContext(ctx).Model(&entity.PurchaseOrder{}).
		Where("venue_id = ? AND status IN ?", venueID, receivableStatuses).
		Count(&awaiting).Error; err != nil {
		return nil, err
	}
	overview.AwaitingReceipt = int(awaiting)

	weekAgo := time.Now().AddDate(0, 0, -7)
	var receivedThisWeek int64
	if err := s.db.WithContext(ctx).Model(&entity.PurchaseOrder{}).
		Where("venue_id = ? AND status = ? AND received_date >= ?", venueID, entity.POStatusReceived, weekAgo).
		Count(&receivedThisWeek).Error; err != nil {
		return nil, err
	}
	overview.ReceivedThisWeek = int(receivedThisWeek)

	var openValue decimal.NullDecimal
	if err := s.db.WithContext(ctx).Model(&entity.PurchaseOrder{}).
		Select("COALESCE(SUM(total), 0)").
		Where("venue_id = ? AND status IN ?", venueID, openStatuses).
		Scan(&openValue).Error; err != nil {
		return nil, err
	}
	overview.OpenPOValue = openValue.Decimal

	var lowStock int64
	if err := s.db.WithContext(ctx).Model(&entity.RawMaterial{}).
		Where("venue_id = ? AND status = ? AND stock < min_stock", venueID, "active").
		Count(&lowStock).Error; err != nil {
		return nil, err
	}
	overview.LowStockCount = int(lowStock)

	overview.LowStockItems = []LowStockItem{}
	if err := s.db.WithContext(ctx).Model(&entity.RawMaterial{}).
		Select("id, name, unit, stock, min_stock").
		Where("venue_id = ? AND status = ? AND stock < min_stock", venueID, "active").
		Order("stock ASC").Limit(10).
		Scan(&overview.LowStockItems).Error; err != nil {
		return nil, err
	}

	var suppliers int64
	if err := s.db.WithContext(ctx).Model(&entity.Supplier{}).
		Where("venue_id = ? AND status = ?", venueID, "active").
		Count(&suppliers).Error; err != nil {
		return nil, err
	}
	overview.ActiveSuppliers = int(suppliers)

	monthStart := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.Local)
	overview.MonthSpend = []SupplierSpend{}
	if err := s.db.WithContext(ctx).Model(&entity.PurchaseOrder{}).
		Select("purchase_orders.supplier_id, suppliers.name AS supplier_name, COALESCE(SUM(purchase_orders.total), 0) AS spend").
		Joins("JOIN suppliers ON suppliers.id = purchase_orders.supplier_id").
		Where("purchase_orders.venue_id = ? AND purchase_orders.status = ? AND purchase_orders.received_date >= ?",
			venueID, entity.POStatusReceived, monthStart).
		Group("purchase_orders.supplier_id, suppliers.name").
		Order("spend DESC").Limit(5).
		Scan(&overview.MonthSpend).Error; err != nil {
		return nil, err
	}

	rate, err := s.damagedRate(ctx, venueID)
	if err != nil {
		return nil, err
	}
	overview.DamagedRate = rate

	return overview, nil
}

// damagedRate is the share of settled order lines marked damaged, across
// the venue's whole history. Zero when nothing has settled yet.
func (s *DashboardService) damagedRate(ctx context.Context, venueID string) (decimal.Decimal, error) {
	settledStatuses := []string{
		entity.ReceiveStatusReceived, entity.ReceiveStatusDamaged, entity.ReceiveStatusNotProcessed,
	}

	var settled int64
	if err := s.db.WithContext(ctx).Model(&entity.POItem{}).
		Joins("JOIN purchase_orders ON purchase_orders.id = po_items.po_id").
		Where("purchase_orders.venue_id = ? AND po_items.receive_status IN ?", venueID, settledStatuses).
		Count(&settled).Error; err != nil {
		return decimal.Zero, err
	}
	if settled == 0 {
		return decimal.Zero, nil
	}

	var damaged int64
	if err := s.db.WithContext(ctx).Model(&entity.POItem{}).
		Joins("JOIN purchase_orders ON purchase_orders.id = po_items.po_id").
		Where("purchase_orders.venue_id = ? AND po_items.receive_status = ?", venueID, entity.ReceiveStatusDamaged).
		Count(&damaged).Error; err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromInt(damaged).Div(decimal.NewFromInt(settled)).Round(4), nil
}
