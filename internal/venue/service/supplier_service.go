package service

import (
	"context"
	"fmt"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/google/uuid"
)

// SupplierService manages vendors and their contacts.
type SupplierService struct {
	supplierRepo *repository.SupplierRepository
	logRepo      *repository.ActivityLogRepository
}

func NewSupplierService(supplierRepo *repository.SupplierRepository, logRepo *repository.ActivityLogRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		logRepo:      logRepo,
	}
}

// ListSuppliers lists suppliers for a venue.
func (s *SupplierService) ListSuppliers(ctx context.Context, venueID string, page, pageSize int, filters map[string]string) ([]entity.Supplier, int64, error) {
	return s.supplierRepo.FindAll(ctx, venueID, page, pageSize, filters)
}

// GetSupplier looks up one supplier within a venue.
func (s *SupplierService) GetSupplier(ctx context.Context, venueID, id string) (*entity.Supplier, error) {
	return s.supplierRepo.FindByID(ctx, venueID, id)
}

// CreateSupplierRequest is the create payload.
type CreateSupplierRequest struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	PaymentTerms string `json:"payment_terms"`
	LeadTimeDays int    `json:"lead_time_days"`
	Notes        string `json:"notes"`
}

// CreateSupplier creates a supplier.
func (s *SupplierService) CreateSupplier(ctx context.Context, venueID, userID string, req *CreateSupplierRequest) (*entity.Supplier, error) {
	code, err := s.supplierRepo.GenerateCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate supplier code: %w", err)
	}

	supplier := &entity.Supplier{
		ID:           uuid.New().String()[:32],
		VenueID:      venueID,
		Code:         code,
		Name:         req.Name,
		Category:     req.Category,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		PaymentTerms: req.PaymentTerms,
		LeadTimeDays: req.LeadTimeDays,
		Status:       "active",
		Notes:        req.Notes,
		CreatedBy:    userID,
	}
	if supplier.Category == "" {
		supplier.Category = "other"
	}
	if supplier.LeadTimeDays <= 0 {
		supplier.LeadTimeDays = 1
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	s.logRepo.LogActivity(ctx, venueID, "supplier", supplier.ID, supplier.Code,
		"created", "", "active", "supplier created", userID)
	return supplier, nil
}

// UpdateSupplierRequest is the partial-update payload.
type UpdateSupplierRequest struct {
	Name         *string `json:"name"`
	Category     *string `json:"category"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	PaymentTerms *string `json:"payment_terms"`
	LeadTimeDays *int    `json:"lead_time_days"`
	Status       *string `json:"status"`
	Notes        *string `json:"notes"`
}

// UpdateSupplier applies a partial update.
func (s *SupplierService) UpdateSupplier(ctx context.Context, venueID, id string, req *UpdateSupplierRequest) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, venueID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Category != nil {
		supplier.Category = *req.Category
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.PaymentTerms != nil {
		supplier.PaymentTerms = *req.PaymentTerms
	}
	if req.LeadTimeDays != nil {
		supplier.LeadTimeDays = *req.LeadTimeDays
	}
	if req.Status != nil {
		supplier.Status = *req.Status
	}
	if req.Notes != nil {
		supplier.Notes = *req.Notes
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier removes a supplier and its contacts.
func (s *SupplierService) DeleteSupplier(ctx context.Context, venueID, id string) error {
	if _, err := s.supplierRepo.FindByID(ctx, venueID, id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, id)
}

// AddContactRequest is the contact payload.
type AddContactRequest struct {
	Name      string `json:"name" binding:"required"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsPrimary bool   `json:"is_primary"`
}

// AddContact creates a supplier contact.
func (s *SupplierService) AddContact(ctx context.Context, venueID, supplierID string, req *AddContactRequest) (*entity.SupplierContact, error) {
	if _, err := s.supplierRepo.FindByID(ctx, venueID, supplierID); err != nil {
		return nil, err
	}

	contact := &entity.SupplierContact{
		ID:         uuid.New().String()[:32],
		SupplierID: supplierID,
		Name:       req.Name,
		Role:       req.Role,
		Email:      req.Email,
		Phone:      req.Phone,
		IsPrimary:  req.IsPrimary,
	}
	if err := s.supplierRepo.AddContact(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// DeleteContact removes a supplier contact.
func (s *SupplierService) DeleteContact(ctx context.Context, venueID, supplierID, contactID string) error {
	if _, err := s.supplierRepo.FindByID(ctx, venueID, supplierID); err != nil {
		return err
	}
	return s.supplierRepo.DeleteContact(ctx, supplierID, contactID)
}
