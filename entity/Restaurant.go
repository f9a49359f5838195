package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Picture     string `json:"picture"`

	Foods  []Food  `json:"-"`
	Orders []Order `json:"-"`
}
