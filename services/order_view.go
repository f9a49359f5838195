package services

import (
	"sort"
	"time"

	"foodway-backend/entity"
)

type SortKey string

const (
	SortByTime  SortKey = "time"
	SortByPrice SortKey = "price"
)

// ApplyFilterSort filters to the given status (nil = all) and then sorts
// descending by the chosen key. The sort is stable, so orders with equal keys
// keep their incoming relative order.
func ApplyFilterSort(orders []entity.Order, key SortKey, status *entity.OrderStatus) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if status != nil && o.Status != *status {
			continue
		}
		out = append(out, o)
	}

	switch key {
	case SortByPrice:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	case SortByTime:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PlacedAt > out[j].PlacedAt })
	}
	return out
}

// ToggleStatusFilter implements single-select toggling: clicking the active
// filter clears it, clicking any other selects it.
func ToggleStatusFilter(current *entity.OrderStatus, clicked entity.OrderStatus) *entity.OrderStatus {
	if current != nil && *current == clicked {
		return nil
	}
	return &clicked
}

// CloneForReorder derives a fresh pending order from a past one: no id yet
// (the insert assigns one), placed now, payment method dropped; line items,
// restaurant, total and mode are copied verbatim. Prices are not refreshed
// against the current catalog.
func CloneForReorder(src *entity.Order) *entity.Order {
	items := make([]entity.OrderItem, 0, len(src.Items))
	for _, it := range src.Items {
		items = append(items, entity.OrderItem{
			FoodID:    it.FoodID,
			Name:      it.Name,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		})
	}
	return &entity.Order{
		UserID:           src.UserID,
		RestaurantID:     src.RestaurantID,
		Status:           entity.StatusPending,
		PlacedAt:         time.Now().UnixMilli(),
		Total:            src.Total,
		Mode:             src.Mode,
		DeliveryLocation: src.DeliveryLocation,
		PreOrderTime:     src.PreOrderTime,
		Items:            items,
	}
}
