package entity

import (
	"gorm.io/gorm"
)

type FulfillmentMode string

const (
	ModeDelivery FulfillmentMode = "delivery"
	ModePreOrder FulfillmentMode = "pre_order"
)

func (m FulfillmentMode) Valid() bool {
	return m == ModeDelivery || m == ModePreOrder
}

// Bag is the user's unsubmitted order. One bag per user; while RestaurantID is
// locked (non-zero) foods from other restaurants cannot be added.
type Bag struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint `json:"restaurantId"` // 0 = unlocked

	Mode             FulfillmentMode `gorm:"not null;default:delivery" json:"mode"`
	DeliveryLocation string          `json:"deliveryLocation"`
	PreOrderTime     string          `json:"preOrderTime"`

	Items []BagItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
