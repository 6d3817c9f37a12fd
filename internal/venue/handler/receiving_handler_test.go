package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/receiving"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/service"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/testutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func setupReceivingTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	svc := service.NewReceivingService(repos.PO, repos.Inventory, repos.ActivityLog, nil, nil, zap.NewNop())
	h := NewReceivingHandler(svc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1/venues/:venueId")
	api.POST("/purchase-orders/:id/receiving/preview", h.Preview)
	api.POST("/purchase-orders/:id/receiving/commit", h.Commit)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func seedConfirmedPO(t *testing.T, env *testutil.TestEnv) *entity.PurchaseOrder {
	t.Helper()

	testutil.SeedVenue(t, env.DB, "venue-001", "La Cantina")
	testutil.SeedSupplier(t, env.DB, "sup-001", "venue-001", "SUP-2025-0001", "Frutas del Valle")

	dec := decimal.RequireFromString
	po := &entity.PurchaseOrder{
		ID:             "po-recv-001",
		POCode:         "PO-2025-0001",
		VenueID:        "venue-001",
		SupplierID:     "sup-001",
		Status:         entity.POStatusConfirmed,
		Currency:       "MXN",
		Subtotal:       dec("100.00"),
		TaxRate:        dec("0.16"),
		TaxAmount:      dec("16.00"),
		CommissionRate: decimal.Zero,
		Commission:     decimal.Zero,
		Total:          dec("116.00"),
		CreatedBy:      "test-user",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
		Items: []entity.POItem{
			{
				ID:              "item-agua",
				POID:            "po-recv-001",
				Name:            "Aguacate",
				Unit:            "kg",
				QuantityOrdered: dec("10"),
				UnitPrice:       dec("6.00"),
				Total:           dec("60.00"),
				ReceiveStatus:   entity.ReceiveStatusNone,
				SortOrder:       1,
			},
			{
				ID:              "item-limon",
				POID:            "po-recv-001",
				Name:            "Limón",
				Unit:            "kg",
				QuantityOrdered: dec("8"),
				UnitPrice:       dec("5.00"),
				Total:           dec("40.00"),
				ReceiveStatus:   entity.ReceiveStatusNone,
				SortOrder:       2,
			},
		},
	}
	if err := env.DB.Create(po).Error; err != nil {
		t.Fatalf("Failed to seed purchase order: %v", err)
	}
	return po
}

func TestPreviewPartialReceipt(t *testing.T) {
	env := setupReceivingTest(t)
	po := seedConfirmedPO(t, env)
	token := testutil.DefaultTestToken()

	body := map[string]interface{}{
		"actions": []receiving.Action{
			{Type: receiving.ActionReceiveItem, ItemID: "item-agua", Quantity: decimal.RequireFromString("4")},
		},
	}
	path := fmt.Sprintf("/api/v1/venues/venue-001/purchase-orders/%s/receiving/preview", po.ID)
	w := testutil.DoRequest(env.Router, "POST", path, body, token)

	if w.Code != http.StatusOK {
		t.Fatalf("preview status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	rows := data["rows"].([]interface{})

	// Partially received item splits into two rows, untouched item stays one.
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	first := rows[0].(map[string]interface{})
	if first["id"] != "item-agua-received" || first["role"] != "received" {
		t.Errorf("unexpected first row: %v", first)
	}
	second := rows[1].(map[string]interface{})
	if second["id"] != "item-agua-remaining" || second["editable"] != true {
		t.Errorf("unexpected second row: %v", second)
	}

	// Nothing persisted by a preview.
	var item entity.POItem
	env.DB.Where("id = ?", "item-agua").First(&item)
	if !item.QuantityReceived.IsZero() {
		t.Errorf("preview must not persist, quantity_received = %s", item.QuantityReceived)
	}
}

func TestPreviewDamagedAdjustsTotals(t *testing.T) {
	env := setupReceivingTest(t)
	po := seedConfirmedPO(t, env)
	token := testutil.DefaultTestToken()

	body := map[string]interface{}{
		"actions": []receiving.Action{
			{Type: receiving.ActionMarkDamaged, ItemID: "item-limon"},
		},
	}
	path := fmt.Sprintf("/api/v1/venues/venue-001/purchase-orders/%s/receiving/preview", po.ID)
	w := testutil.DoRequest(env.Router, "POST", path, body, token)

	if w.Code != http.StatusOK {
		t.Fatalf("preview status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	totals := data["totals"].(map[string]interface{})

	// 100 - 40 = 60 subtotal; 60 * 0.16 = 9.60 tax.
	if totals["adjusted_subtotal"] != "60" {
		t.Errorf("adjusted_subtotal = %v, want 60", totals["adjusted_subtotal"])
	}
	if totals["adjusted_tax"] != "9.6" {
		t.Errorf("adjusted_tax = %v, want 9.6", totals["adjusted_tax"])
	}
}

func TestCommitReceiveAll(t *testing.T) {
	env := setupReceivingTest(t)
	po := seedConfirmedPO(t, env)
	token := testutil.DefaultTestToken()

	body := map[string]interface{}{
		"actions": []receiving.Action{
			{Type: receiving.ActionReceiveAll},
		},
	}
	path := fmt.Sprintf("/api/v1/venues/venue-001/purchase-orders/%s/receiving/commit", po.ID)
	w := testutil.DoRequest(env.Router, "POST", path, body, token)

	if w.Code != http.StatusOK {
		t.Fatalf("commit status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["updated"] != float64(2) {
		t.Errorf("updated = %v, want 2", data["updated"])
	}

	var updated entity.PurchaseOrder
	env.DB.Where("id = ?", po.ID).First(&updated)
	if updated.Status != entity.POStatusReceived {
		t.Errorf("status = %s, want received", updated.Status)
	}
	if updated.ReceivedDate == nil {
		t.Error("received_date should be stamped")
	}

	var item entity.POItem
	env.DB.Where("id = ?", "item-agua").First(&item)
	if item.ReceiveStatus != entity.ReceiveStatusReceived || !item.QuantityReceived.Equal(decimal.RequireFromString("10")) {
		t.Errorf("item state = %s/%s", item.ReceiveStatus, item.QuantityReceived)
	}
}

func TestCommitRejectsOverReceipt(t *testing.T) {
	env := setupReceivingTest(t)
	po := seedConfirmedPO(t, env)
	token := testutil.DefaultTestToken()

	body := map[string]interface{}{
		"actions": []receiving.Action{
			{Type: receiving.ActionReceiveItem, ItemID: "item-agua", Quantity: decimal.RequireFromString("11")},
		},
	}
	path := fmt.Sprintf("/api/v1/venues/venue-001/purchase-orders/%s/receiving/commit", po.ID)
	w := testutil.DoRequest(env.Router, "POST", path, body, token)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var item entity.POItem
	env.DB.Where("id = ?", "item-agua").First(&item)
	if !item.QuantityReceived.IsZero() {
		t.Errorf("rejected commit must not persist, quantity_received = %s", item.QuantityReceived)
	}
}

func TestCommitOnFinalizedOrderForbidden(t *testing.T) {
	env := setupReceivingTest(t)
	po := seedConfirmedPO(t, env)
	token := testutil.DefaultTestToken()

	env.DB.Model(&entity.PurchaseOrder{}).Where("id = ?", po.ID).
		Update("status", entity.POStatusCancelled)

	body := map[string]interface{}{
		"actions": []receiving.Action{
			{Type: receiving.ActionReceiveAll},
		},
	}
	path := fmt.Sprintf("/api/v1/venues/venue-001/purchase-orders/%s/receiving/commit", po.ID)
	w := testutil.DoRequest(env.Router, "POST", path, body, token)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestCommitOrderFromAnotherVenueNotFound(t *testing.T) {
	env := setupReceivingTest(t)
	po := seedConfirmedPO(t, env)
	testutil.SeedVenue(t, env.DB, "venue-002", "El Patio")
	token := testutil.DefaultTestToken()

	// The order belongs to venue-001; addressing it through venue-002
	// must read as not found, not act on it.
	body := map[string]interface{}{
		"actions": []receiving.Action{
			{Type: receiving.ActionReceiveAll},
		},
	}
	path := fmt.Sprintf("/api/v1/venues/venue-002/purchase-orders/%s/receiving/commit", po.ID)
	w := testutil.DoRequest(env.Router, "POST", path, body, token)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404, body = %s", w.Code, w.Body.String())
	}

	var item entity.POItem
	env.DB.Where("id = ?", "item-agua").First(&item)
	if !item.QuantityReceived.IsZero() || item.ReceiveStatus != entity.ReceiveStatusNone {
		t.Errorf("cross-venue commit must not persist, item state = %s/%s",
			item.ReceiveStatus, item.QuantityReceived)
	}

	var updated entity.PurchaseOrder
	env.DB.Where("id = ?", po.ID).First(&updated)
	if updated.Status != entity.POStatusConfirmed {
		t.Errorf("status = %s, want confirmed", updated.Status)
	}
}

func TestCommitIncrementalSessions(t *testing.T) {
	env := setupReceivingTest(t)
	po := seedConfirmedPO(t, env)
	token := testutil.DefaultTestToken()
	path := fmt.Sprintf("/api/v1/venues/venue-001/purchase-orders/%s/receiving/commit", po.ID)

	// Session 1: receive 4 of item-agua.
	w := testutil.DoRequest(env.Router, "POST", path, map[string]interface{}{
		"actions": []receiving.Action{
			{Type: receiving.ActionReceiveItem, ItemID: "item-agua", Quantity: decimal.RequireFromString("4")},
		},
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("first commit status = %d, body = %s", w.Code, w.Body.String())
	}

	var updated entity.PurchaseOrder
	env.DB.Where("id = ?", po.ID).First(&updated)
	if updated.Status != entity.POStatusPartial {
		t.Fatalf("status after first commit = %s, want partial", updated.Status)
	}

	// Session 2: receive the remaining 6 additively via the split row, and
	// settle item-limon as damaged.
	w = testutil.DoRequest(env.Router, "POST", path, map[string]interface{}{
		"actions": []receiving.Action{
			{Type: receiving.ActionReceiveItem, ItemID: "item-agua", Quantity: decimal.RequireFromString("6"), SplitRemaining: true},
			{Type: receiving.ActionMarkDamaged, ItemID: "item-limon"},
		},
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("second commit status = %d, body = %s", w.Code, w.Body.String())
	}

	env.DB.Where("id = ?", po.ID).First(&updated)
	if updated.Status != entity.POStatusReceived {
		t.Errorf("status after second commit = %s, want received", updated.Status)
	}

	var agua, limon entity.POItem
	env.DB.Where("id = ?", "item-agua").First(&agua)
	env.DB.Where("id = ?", "item-limon").First(&limon)
	if !agua.QuantityReceived.Equal(decimal.RequireFromString("10")) {
		t.Errorf("item-agua received = %s, want 10", agua.QuantityReceived)
	}
	if limon.ReceiveStatus != entity.ReceiveStatusDamaged || !limon.QuantityReceived.IsZero() {
		t.Errorf("item-limon = %s/%s, want damaged/0", limon.ReceiveStatus, limon.QuantityReceived)
	}
}
