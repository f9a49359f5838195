package entity

import (
	"gorm.io/gorm"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCancelled OrderStatus = "cancelled"
	StatusCompleted OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	return s == StatusPending || s == StatusCancelled || s == StatusCompleted
}

type PaymentMethod string

const (
	PayCash       PaymentMethod = "cash"
	PayVisa       PaymentMethod = "visa"
	PayMastercard PaymentMethod = "mastercard"
	PayTouchNGo   PaymentMethod = "touch_n_go"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCash, PayVisa, PayMastercard, PayTouchNGo:
		return true
	}
	return false
}

type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Status   OrderStatus `gorm:"not null;index" json:"status"`
	PlacedAt int64       `gorm:"not null" json:"placedAt"` // epoch millis
	Total    int64       `json:"total"`

	Mode             FulfillmentMode `json:"mode"`
	DeliveryLocation string          `json:"deliveryLocation,omitempty"`
	PreOrderTime     string          `json:"preOrderTime,omitempty"`

	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"` // empty until checkout records one

	// Pickup code for pre-orders, served by GET /orders/:id/qr
	PickupQR []byte `gorm:"type:blob" json:"-"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
