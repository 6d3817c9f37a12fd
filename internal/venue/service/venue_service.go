package service

import (
	"context"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/shopspring/decimal"
)

// VenueService manages venue settings: the default rates and currency
// applied to new purchase orders.
type VenueService struct {
	venueRepo *repository.VenueRepository
	logRepo   *repository.ActivityLogRepository
}

func NewVenueService(venueRepo *repository.VenueRepository, logRepo *repository.ActivityLogRepository) *VenueService {
	return &VenueService{venueRepo: venueRepo, logRepo: logRepo}
}

// GetVenue looks up venue settings.
func (s *VenueService) GetVenue(ctx context.Context, id string) (*entity.Venue, error) {
	return s.venueRepo.FindByID(ctx, id)
}

// UpdateVenueRequest carries partial venue settings updates.
type UpdateVenueRequest struct {
	Name           *string          `json:"name"`
	Address        *string          `json:"address"`
	Phone          *string          `json:"phone"`
	Currency       *string          `json:"currency"`
	TaxRate        *decimal.Decimal `json:"tax_rate"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
}

// UpdateVenue applies partial updates. Rate changes only affect orders
// created afterwards; existing orders keep their stored rates.
func (s *VenueService) UpdateVenue(ctx context.Context, id, userID string, req *UpdateVenueRequest) (*entity.Venue, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.Phone != nil {
		venue.Phone = *req.Phone
	}
	if req.Currency != nil {
		venue.Currency = *req.Currency
	}
	if req.TaxRate != nil {
		venue.TaxRate = *req.TaxRate
	}
	if req.CommissionRate != nil {
		venue.CommissionRate = *req.CommissionRate
	}

	if err := s.venueRepo.Update(ctx, venue); err != nil {
		return nil, err
	}

	s.logRepo.LogActivity(ctx, venue.ID, "venue", venue.ID, "",
		"settings_update", "", "", "venue settings updated", userID)

	return venue, nil
}
