package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProcurementService manages the purchase order lifecycle up to the point
// goods arrive; ReceivingService takes over from there.
type ProcurementService struct {
	poRepo       *repository.PORepository
	supplierRepo *repository.SupplierRepository
	venueRepo    *repository.VenueRepository
	logRepo      *repository.ActivityLogRepository
}

func NewProcurementService(poRepo *repository.PORepository, supplierRepo *repository.SupplierRepository, venueRepo *repository.VenueRepository, logRepo *repository.ActivityLogRepository) *ProcurementService {
	return &ProcurementService{
		poRepo:       poRepo,
		supplierRepo: supplierRepo,
		venueRepo:    venueRepo,
		logRepo:      logRepo,
	}
}

// ListPOs lists purchase orders for a venue.
func (s *ProcurementService) ListPOs(ctx context.Context, venueID string, page, pageSize int, filters map[string]string) ([]entity.PurchaseOrder, int64, error) {
	return s.poRepo.FindAll(ctx, venueID, page, pageSize, filters)
}

// GetPO looks up a purchase order with supplier and items.
func (s *ProcurementService) GetPO(ctx context.Context, venueID, id string) (*entity.PurchaseOrder, error) {
	return s.poRepo.FindByID(ctx, venueID, id)
}

// ListActivity returns the audit trail for a purchase order.
func (s *ProcurementService) ListActivity(ctx context.Context, venueID, poID string, page, pageSize int) ([]entity.ActivityLog, int64, error) {
	if _, err := s.poRepo.FindByID(ctx, venueID, poID); err != nil {
		return nil, 0, err
	}
	return s.logRepo.FindByEntity(ctx, "purchase_order", poID, page, pageSize)
}

// CreatePORequest is the create payload.
type CreatePORequest struct {
	SupplierID   string         `json:"supplier_id" binding:"required"`
	ExpectedDate *time.Time     `json:"expected_date"`
	Notes        string         `json:"notes"`
	Items        []CreatePOItem `json:"items" binding:"required,min=1"`
}

// CreatePOItem is one ordered line in the create payload.
type CreatePOItem struct {
	RawMaterialID *string         `json:"raw_material_id"`
	Name          string          `json:"name" binding:"required"`
	Unit          string          `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice     decimal.Decimal `json:"unit_price" binding:"required"`
	Notes         string          `json:"notes"`
}

// CreatePO creates a draft purchase order. Line totals and order totals are
// computed server-side; the venue's default tax and commission rates apply.
func (s *ProcurementService) CreatePO(ctx context.Context, venueID, userID string, req *CreatePORequest) (*entity.PurchaseOrder, error) {
	if _, err := s.supplierRepo.FindByID(ctx, venueID, req.SupplierID); err != nil {
		return nil, fmt.Errorf("supplier not found in this venue")
	}

	venue, err := s.venueRepo.FindByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	code, err := s.poRepo.GenerateCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate PO code: %w", err)
	}

	po := &entity.PurchaseOrder{
		ID:             uuid.New().String()[:32],
		POCode:         code,
		VenueID:        venueID,
		SupplierID:     req.SupplierID,
		Status:         entity.POStatusDraft,
		Currency:       venue.Currency,
		TaxRate:        venue.TaxRate,
		CommissionRate: venue.CommissionRate,
		ExpectedDate:   req.ExpectedDate,
		CreatedBy:      userID,
		Notes:          req.Notes,
	}

	subtotal := decimal.Zero
	for i, item := range req.Items {
		if !item.Quantity.IsPositive() {
			return nil, fmt.Errorf("item %d: quantity must be positive", i)
		}
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("item %d: unit price cannot be negative", i)
		}
		unit := item.Unit
		if unit == "" {
			unit = "kg"
		}
		lineTotal := item.UnitPrice.Mul(item.Quantity).Round(2)
		subtotal = subtotal.Add(lineTotal)

		po.Items = append(po.Items, entity.POItem{
			ID:              uuid.New().String()[:32],
			POID:            po.ID,
			RawMaterialID:   item.RawMaterialID,
			Name:            item.Name,
			Unit:            unit,
			QuantityOrdered: item.Quantity,
			UnitPrice:       item.UnitPrice,
			Total:           lineTotal,
			ReceiveStatus:   entity.ReceiveStatusNone,
			SortOrder:       i + 1,
			Notes:           item.Notes,
		})
	}

	po.Subtotal = subtotal
	recomputeTotals(po)

	if err := s.poRepo.Create(ctx, po); err != nil {
		return nil, err
	}

	s.logRepo.LogActivity(ctx, venueID, "purchase_order", po.ID, po.POCode,
		"created", "", entity.POStatusDraft, "purchase order created", userID)
	return po, nil
}

// UpdatePORequest is the partial-update payload. Only drafts accept item
// or note edits.
type UpdatePORequest struct {
	ExpectedDate *time.Time `json:"expected_date"`
	Notes        *string    `json:"notes"`
}

// UpdatePO applies a partial update to a non-finalized order.
func (s *ProcurementService) UpdatePO(ctx context.Context, venueID, id string, req *UpdatePORequest) (*entity.PurchaseOrder, error) {
	po, err := s.poRepo.FindByID(ctx, venueID, id)
	if err != nil {
		return nil, err
	}
	if entity.IsFinalized(po.Status) {
		return nil, fmt.Errorf("purchase order %s is %s and cannot be edited", po.POCode, po.Status)
	}

	if req.ExpectedDate != nil {
		po.ExpectedDate = req.ExpectedDate
	}
	if req.Notes != nil {
		po.Notes = *req.Notes
	}

	if err := s.poRepo.Update(ctx, po); err != nil {
		return nil, err
	}
	return po, nil
}

// UpdateFeesRequest changes the tax and/or commission rate of an order.
type UpdateFeesRequest struct {
	TaxRate        *decimal.Decimal `json:"tax_rate"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
}

// UpdateFees sets new rates and recomputes tax, commission and total from
// the unchanged subtotal. Finalized orders reject the change.
func (s *ProcurementService) UpdateFees(ctx context.Context, venueID, id, userID string, req *UpdateFeesRequest) (*entity.PurchaseOrder, error) {
	po, err := s.poRepo.FindByID(ctx, venueID, id)
	if err != nil {
		return nil, err
	}
	if entity.IsFinalized(po.Status) {
		return nil, fmt.Errorf("purchase order %s is %s and cannot be edited", po.POCode, po.Status)
	}

	if req.TaxRate != nil {
		if req.TaxRate.IsNegative() {
			return nil, fmt.Errorf("tax rate cannot be negative")
		}
		po.TaxRate = *req.TaxRate
	}
	if req.CommissionRate != nil {
		if req.CommissionRate.IsNegative() {
			return nil, fmt.Errorf("commission rate cannot be negative")
		}
		po.CommissionRate = *req.CommissionRate
	}
	recomputeTotals(po)

	if err := s.poRepo.Update(ctx, po); err != nil {
		return nil, err
	}

	s.logRepo.LogActivity(ctx, po.VenueID, "purchase_order", po.ID, po.POCode,
		"fees_update", "", "",
		fmt.Sprintf("tax_rate=%s commission_rate=%s", po.TaxRate, po.CommissionRate), userID)
	return po, nil
}

// ChangeStatus moves an order along the status machine. Every transition is
// validated; approval stamps approver and time.
func (s *ProcurementService) ChangeStatus(ctx context.Context, venueID, id, toStatus, userID string) (*entity.PurchaseOrder, error) {
	po, err := s.poRepo.FindByID(ctx, venueID, id)
	if err != nil {
		return nil, err
	}
	if !entity.CanTransition(po.Status, toStatus) {
		return nil, fmt.Errorf("invalid status transition %s -> %s", po.Status, toStatus)
	}

	fromStatus := po.Status
	po.Status = toStatus
	if toStatus == entity.POStatusApproved {
		now := time.Now()
		po.ApprovedBy = &userID
		po.ApprovedAt = &now
	}
	if toStatus == entity.POStatusReceived {
		now := time.Now()
		po.ReceivedDate = &now
	}

	if err := s.poRepo.Update(ctx, po); err != nil {
		return nil, err
	}

	s.logRepo.LogActivity(ctx, po.VenueID, "purchase_order", po.ID, po.POCode,
		"status_change", fromStatus, toStatus, "", userID)
	return po, nil
}

// recomputeTotals derives tax, commission and total from the subtotal and
// current rates. Subtotal itself only changes when items change.
func recomputeTotals(po *entity.PurchaseOrder) {
	po.Subtotal = po.Subtotal.Round(2)
	po.TaxAmount = po.Subtotal.Mul(po.TaxRate).Round(2)
	po.Commission = po.Subtotal.Mul(po.CommissionRate).Round(2)
	po.Total = po.Subtotal.Add(po.TaxAmount).Add(po.Commission)
}
