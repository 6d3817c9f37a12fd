package repository

import (
	"context"
	"errors"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"gorm.io/gorm"
)

// VenueRepository persists venues.
type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// FindByID looks up a venue.
func (r *VenueRepository) FindByID(ctx context.Context, id string) (*entity.Venue, error) {
	var venue entity.Venue
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&venue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &venue, nil
}

// Create creates a venue.
func (r *VenueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

// Update saves a venue.
func (r *VenueRepository) Update(ctx context.Context, venue *entity.Venue) error {
	return r.db.WithContext(ctx).Save(venue).Error
}
