package entity

import (
	"gorm.io/gorm"
)

type Food struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"` // cents
	Picture     string  `json:"picture"`
	Vegetarian  bool    `json:"vegetarian"`
	Category    string  `json:"category"`
	PrepMinutes int     `json:"prepMinutes"`
	Rating      float64 `json:"rating"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload only for detail
}
