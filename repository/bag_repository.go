package repository

import (
	"errors"

	"foodway-backend/entity"

	"gorm.io/gorm"
)

type BagRepository struct {
	DB *gorm.DB
}

func NewBagRepository(db *gorm.DB) *BagRepository {
	return &BagRepository{DB: db}
}

// Load returns the user's bag with its items in insertion order, creating an
// empty bag on first use.
func (r *BagRepository) Load(userID uint) (*entity.Bag, error) {
	var b entity.Bag
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("bag_items.id ASC")
		}).
		Preload("Items.Food").
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		b = entity.Bag{UserID: userID, Mode: entity.ModeDelivery}
		if err := r.DB.Create(&b).Error; err != nil {
			return nil, err
		}
		return &b, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// SaveHeader persists everything except the line items.
func (r *BagRepository) SaveHeader(tx *gorm.DB, b *entity.Bag) error {
	return tx.Model(&entity.Bag{}).Where("id = ?", b.ID).Updates(map[string]any{
		"restaurant_id":     b.RestaurantID,
		"mode":              b.Mode,
		"delivery_location": b.DeliveryLocation,
		"pre_order_time":    b.PreOrderTime,
	}).Error
}

// ReplaceItems rewrites the stored line items to match the in-memory bag.
// Rows are re-created in slice order so insertion order survives the rewrite.
func (r *BagRepository) ReplaceItems(tx *gorm.DB, b *entity.Bag) error {
	if err := tx.Unscoped().Where("bag_id = ?", b.ID).Delete(&entity.BagItem{}).Error; err != nil {
		return err
	}
	for _, it := range b.Items {
		row := entity.BagItem{
			BagID:     b.ID,
			FoodID:    it.FoodID,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// Clear empties the bag and resets it to defaults, ready for a new session.
func (r *BagRepository) Clear(tx *gorm.DB, userID uint) error {
	var b entity.Bag
	if err := tx.Where("user_id = ?", userID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Unscoped().Where("bag_id = ?", b.ID).Delete(&entity.BagItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Bag{}).Where("id = ?", b.ID).Updates(map[string]any{
		"restaurant_id":     0,
		"mode":              entity.ModeDelivery,
		"delivery_location": "",
		"pre_order_time":    "",
	}).Error
}
