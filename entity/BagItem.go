package entity

import (
	"gorm.io/gorm"
)

// BagItem keeps a price snapshot from the moment the food was added; at most
// one row per (bag, food).
type BagItem struct {
	gorm.Model
	BagID uint `json:"bagId"`
	Bag   Bag  `json:"-"`

	FoodID uint `json:"foodId"`
	Food   Food `json:"food"`

	Qty       int   `json:"qty"`
	UnitPrice int64 `json:"unitPrice"`
	Total     int64 `json:"total"`
}
