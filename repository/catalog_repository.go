package repository

import (
	"foodway-backend/entity"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) ListRestaurants() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Find(&rests).Error
	return rests, err
}

func (r *CatalogRepository) FindRestaurant(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// ListFoods filters by category and dietary flag when asked; empty category
// and vegOnly=false mean no filter.
func (r *CatalogRepository) ListFoods(category string, vegOnly bool) ([]entity.Food, error) {
	q := r.DB.Model(&entity.Food{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if vegOnly {
		q = q.Where("vegetarian = ?", true)
	}
	var foods []entity.Food
	err := q.Find(&foods).Error
	return foods, err
}

func (r *CatalogRepository) FoodsByRestaurant(restID uint) ([]entity.Food, error) {
	var foods []entity.Food
	err := r.DB.Where("restaurant_id = ?", restID).Find(&foods).Error
	return foods, err
}

func (r *CatalogRepository) FindFood(id uint) (*entity.Food, error) {
	var food entity.Food
	if err := r.DB.First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}
