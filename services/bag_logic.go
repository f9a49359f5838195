package services

import (
	"strings"
	"time"

	"foodway-backend/entity"
)

// Pure reducers over an in-memory bag. BagService loads the bag, applies one
// of these, and persists the result; keeping them free of gorm makes the
// merge/total/eligibility rules unit-testable on their own.

// AddLine merges qty into the existing line for the same food or appends a
// new one with a price snapshot.
func AddLine(bag *entity.Bag, food *entity.Food, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	for i := range bag.Items {
		if bag.Items[i].FoodID == food.ID {
			bag.Items[i].Qty += qty
			bag.Items[i].Total = bag.Items[i].UnitPrice * int64(bag.Items[i].Qty)
			return nil
		}
	}
	bag.Items = append(bag.Items, entity.BagItem{
		BagID:     bag.ID,
		FoodID:    food.ID,
		Food:      *food,
		Qty:       qty,
		UnitPrice: food.Price,
		Total:     food.Price * int64(qty),
	})
	return nil
}

// SetLineQty sets the quantity exactly; qty <= 0 removes the line. An unknown
// food id is a silent no-op. The restaurant lock is released once the last
// line is gone.
func SetLineQty(bag *entity.Bag, foodID uint, qty int) {
	for i := range bag.Items {
		if bag.Items[i].FoodID != foodID {
			continue
		}
		if qty <= 0 {
			bag.Items = append(bag.Items[:i], bag.Items[i+1:]...)
		} else {
			bag.Items[i].Qty = qty
			bag.Items[i].Total = bag.Items[i].UnitPrice * int64(qty)
		}
		break
	}
	if len(bag.Items) == 0 {
		bag.RestaurantID = 0
	}
}

// AdjustLineQty bumps the quantity by delta (typically ±1), removing the line
// when the result drops to zero or below.
func AdjustLineQty(bag *entity.Bag, foodID uint, delta int) {
	for i := range bag.Items {
		if bag.Items[i].FoodID == foodID {
			SetLineQty(bag, foodID, bag.Items[i].Qty+delta)
			return
		}
	}
}

func RemoveLine(bag *entity.Bag, foodID uint) {
	SetLineQty(bag, foodID, 0)
}

// ResetBag empties the bag and restores mode/location/time defaults.
func ResetBag(bag *entity.Bag) {
	bag.Items = nil
	bag.RestaurantID = 0
	bag.Mode = entity.ModeDelivery
	bag.DeliveryLocation = ""
	bag.PreOrderTime = ""
}

// BagTotal is Σ unitPrice × qty; zero for an empty bag.
func BagTotal(bag *entity.Bag) int64 {
	var total int64
	for _, it := range bag.Items {
		total += it.UnitPrice * int64(it.Qty)
	}
	return total
}

// CanPlaceOrder: non-empty bag, and deliveries need a location. Pre-orders
// can be placed without one.
func CanPlaceOrder(bag *entity.Bag) bool {
	if len(bag.Items) == 0 {
		return false
	}
	if bag.Mode == entity.ModeDelivery && strings.TrimSpace(bag.DeliveryLocation) == "" {
		return false
	}
	return true
}

// OrderFromBag snapshots the bag into a new pending order; the bag itself is
// left untouched.
func OrderFromBag(bag *entity.Bag) *entity.Order {
	items := make([]entity.OrderItem, 0, len(bag.Items))
	for _, it := range bag.Items {
		items = append(items, entity.OrderItem{
			FoodID:    it.FoodID,
			Name:      it.Food.Name,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			Total:     it.UnitPrice * int64(it.Qty),
		})
	}
	return &entity.Order{
		UserID:           bag.UserID,
		RestaurantID:     bag.RestaurantID,
		Status:           entity.StatusPending,
		PlacedAt:         time.Now().UnixMilli(),
		Total:            BagTotal(bag),
		Mode:             bag.Mode,
		DeliveryLocation: bag.DeliveryLocation,
		PreOrderTime:     bag.PreOrderTime,
		Items:            items,
	}
}
