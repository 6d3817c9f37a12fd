package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/service"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/testutil"
	"github.com/shopspring/decimal"
)

func setupPOTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	svc := service.NewProcurementService(repos.PO, repos.Supplier, repos.Venue, repos.ActivityLog)
	exportSvc := service.NewExportService(repos.PO, repos.Inventory)
	attachmentSvc := service.NewAttachmentService(repos.Attachment, repos.PO, nil, "")
	h := NewPOHandler(svc, exportSvc, attachmentSvc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1/venues/:venueId")
	api.GET("/purchase-orders/:id", h.GetPO)
	api.PUT("/purchase-orders/:id/fees", h.UpdateFees)
	api.POST("/purchase-orders/:id/status", h.ChangeStatus)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func reloadPO(t *testing.T, env *testutil.TestEnv, id string) *entity.PurchaseOrder {
	t.Helper()
	var po entity.PurchaseOrder
	if err := env.DB.Where("id = ?", id).First(&po).Error; err != nil {
		t.Fatalf("reload purchase order: %v", err)
	}
	return &po
}

func TestGetPOFromAnotherVenueNotFound(t *testing.T) {
	env := setupPOTest(t)
	po := seedConfirmedPO(t, env)
	testutil.SeedVenue(t, env.DB, "venue-002", "El Patio")
	token := testutil.DefaultTestToken()

	path := fmt.Sprintf("/api/v1/venues/venue-002/purchase-orders/%s", po.ID)
	w := testutil.DoRequest(env.Router, "GET", path, nil, token)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404, body = %s", w.Code, w.Body.String())
	}

	// The owning venue still reads it.
	path = fmt.Sprintf("/api/v1/venues/venue-001/purchase-orders/%s", po.ID)
	w = testutil.DoRequest(env.Router, "GET", path, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("owner read status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestUpdateFeesRecomputesTotals(t *testing.T) {
	env := setupPOTest(t)
	po := seedConfirmedPO(t, env)
	token := testutil.DefaultTestToken()

	body := map[string]interface{}{
		"tax_rate":        "0.08",
		"commission_rate": "0.05",
	}
	path := fmt.Sprintf("/api/v1/venues/venue-001/purchase-orders/%s/fees", po.ID)
	w := testutil.DoRequest(env.Router, "PUT", path, body, token)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	dec := decimal.RequireFromString
	updated := reloadPO(t, env, po.ID)
	if !updated.Subtotal.Equal(dec("100.00")) {
		t.Errorf("subtotal = %s, want unchanged 100.00", updated.Subtotal)
	}
	if !updated.TaxAmount.Equal(dec("8.00")) {
		t.Errorf("tax_amount = %s, want 8.00", updated.TaxAmount)
	}
	if !updated.Commission.Equal(dec("5.00")) {
		t.Errorf("commission = %s, want 5.00", updated.Commission)
	}
	if !updated.Total.Equal(dec("113.00")) {
		t.Errorf("total = %s, want 113.00", updated.Total)
	}
}

func TestUpdateFeesRejectsNegativeRate(t *testing.T) {
	env := setupPOTest(t)
	po := seedConfirmedPO(t, env)
	token := testutil.DefaultTestToken()

	body := map[string]interface{}{"tax_rate": "-0.10"}
	path := fmt.Sprintf("/api/v1/venues/venue-001/purchase-orders/%s/fees", po.ID)
	w := testutil.DoRequest(env.Router, "PUT", path, body, token)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body = %s", w.Code, w.Body.String())
	}

	updated := reloadPO(t, env, po.ID)
	if !updated.TaxRate.Equal(decimal.RequireFromString("0.16")) {
		t.Errorf("tax_rate = %s, want unchanged 0.16", updated.TaxRate)
	}
}

func TestUpdateFeesOnFinalizedOrderRejected(t *testing.T) {
	env := setupPOTest(t)
	po := seedConfirmedPO(t, env)
	token := testutil.DefaultTestToken()

	env.DB.Model(&entity.PurchaseOrder{}).Where("id = ?", po.ID).
		Update("status", entity.POStatusReceived)

	body := map[string]interface{}{"tax_rate": "0.08"}
	path := fmt.Sprintf("/api/v1/venues/venue-001/purchase-orders/%s/fees", po.ID)
	w := testutil.DoRequest(env.Router, "PUT", path, body, token)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body = %s", w.Code, w.Body.String())
	}

	updated := reloadPO(t, env, po.ID)
	if !updated.TaxRate.Equal(decimal.RequireFromString("0.16")) {
		t.Errorf("tax_rate = %s, want unchanged 0.16", updated.TaxRate)
	}
	if !updated.Total.Equal(decimal.RequireFromString("116.00")) {
		t.Errorf("total = %s, want unchanged 116.00", updated.Total)
	}
}

func TestChangeStatusInvalidTransitionRejected(t *testing.T) {
	env := setupPOTest(t)
	po := seedConfirmedPO(t, env)
	token := testutil.DefaultTestToken()

	// A confirmed order cannot go back to draft.
	body := map[string]interface{}{"status": entity.POStatusDraft}
	path := fmt.Sprintf("/api/v1/venues/venue-001/purchase-orders/%s/status", po.ID)
	w := testutil.DoRequest(env.Router, "POST", path, body, token)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body = %s", w.Code, w.Body.String())
	}

	updated := reloadPO(t, env, po.ID)
	if updated.Status != entity.POStatusConfirmed {
		t.Errorf("status = %s, want confirmed", updated.Status)
	}
}

func TestChangeStatusValidTransitions(t *testing.T) {
	env := setupPOTest(t)
	po := seedConfirmedPO(t, env)
	token := testutil.DefaultTestToken()
	path := fmt.Sprintf("/api/v1/venues/venue-001/purchase-orders/%s/status", po.ID)

	w := testutil.DoRequest(env.Router, "POST", path,
		map[string]interface{}{"status": entity.POStatusShipped}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("confirmed->shipped status = %d, body = %s", w.Code, w.Body.String())
	}

	updated := reloadPO(t, env, po.ID)
	if updated.Status != entity.POStatusShipped {
		t.Fatalf("status = %s, want shipped", updated.Status)
	}

	w = testutil.DoRequest(env.Router, "POST", path,
		map[string]interface{}{"status": entity.POStatusReceived}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("shipped->received status = %d, body = %s", w.Code, w.Body.String())
	}

	updated = reloadPO(t, env, po.ID)
	if updated.Status != entity.POStatusReceived {
		t.Errorf("status = %s, want received", updated.Status)
	}
	if updated.ReceivedDate == nil {
		t.Error("received_date should be stamped")
	}

	// The order is now finalized and admits no further moves.
	w = testutil.DoRequest(env.Router, "POST", path,
		map[string]interface{}{"status": entity.POStatusCancelled}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("received->cancelled status = %d, want 400", w.Code)
	}
}
