package repository

import (
	"context"
	"errors"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"gorm.io/gorm"
)

// MenuRepository persists menu categories, products and modifiers.
type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// FindCategories lists menu categories with products for a venue.
func (r *MenuRepository) FindCategories(ctx context.Context, venueID string) ([]entity.MenuCategory, error) {
	var categories []entity.MenuCategory
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("venue_id = ?", venueID).
		Order("sort_order ASC").
		Find(&categories).Error
	return categories, err
}

// CreateCategory creates a menu category.
func (r *MenuRepository) CreateCategory(ctx context.Context, category *entity.MenuCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// UpdateCategory saves a menu category.
func (r *MenuRepository) UpdateCategory(ctx context.Context, category *entity.MenuCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// FindCategoryByID looks up a menu category, scoped to the venue.
func (r *MenuRepository) FindCategoryByID(ctx context.Context, venueID, id string) (*entity.MenuCategory, error) {
	var category entity.MenuCategory
	err := r.db.WithContext(ctx).Where("id = ? AND venue_id = ?", id, venueID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindProductByID looks up a product with its modifier groups, scoped to
// the venue.
func (r *MenuRepository) FindProductByID(ctx context.Context, venueID, id string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Preload("ModifierGroups.Modifiers").
		Where("id = ? AND venue_id = ?", id, venueID).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a product.
func (r *MenuRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// UpdateProduct saves a product.
func (r *MenuRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// DeleteProduct removes a product.
func (r *MenuRepository) DeleteProduct(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Product{}).Error
}

// FindModifierGroups lists modifier groups with modifiers for a venue.
func (r *MenuRepository) FindModifierGroups(ctx context.Context, venueID string) ([]entity.ModifierGroup, error) {
	var groups []entity.ModifierGroup
	err := r.db.WithContext(ctx).
		Preload("Modifiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("venue_id = ?", venueID).
		Order("sort_order ASC").
		Find(&groups).Error
	return groups, err
}

// CreateModifierGroup creates a modifier group with its modifiers.
func (r *MenuRepository) CreateModifierGroup(ctx context.Context, group *entity.ModifierGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

// UpdateModifierGroup saves a modifier group.
func (r *MenuRepository) UpdateModifierGroup(ctx context.Context, group *entity.ModifierGroup) error {
	return r.db.WithContext(ctx).Save(group).Error
}

// FindModifierGroupByID looks up a modifier group, scoped to the venue.
func (r *MenuRepository) FindModifierGroupByID(ctx context.Context, venueID, id string) (*entity.ModifierGroup, error) {
	var group entity.ModifierGroup
	err := r.db.WithContext(ctx).
		Preload("Modifiers").
		Where("id = ? AND venue_id = ?", id, venueID).
		First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

// AssignModifierGroup links a modifier group to a product.
func (r *MenuRepository) AssignModifierGroup(ctx context.Context, productID, groupID string) error {
	product := entity.Product{ID: productID}
	group := entity.ModifierGroup{ID: groupID}
	return r.db.WithContext(ctx).Model(&product).Association("ModifierGroups").Append(&group)
}
