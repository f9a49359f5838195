package services

import (
	"testing"

	"foodway-backend/entity"

	"github.com/stretchr/testify/assert"
)

func testOrder(id uint, status entity.OrderStatus, total int64, placedAt int64) entity.Order {
	o := entity.Order{Status: status, Total: total, PlacedAt: placedAt}
	o.ID = id
	return o
}

func statusPtr(s entity.OrderStatus) *entity.OrderStatus { return &s }

func orderIDs(orders []entity.Order) []uint {
	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestApplyFilterSort(t *testing.T) {
	orders := []entity.Order{
		testOrder(1, entity.StatusPending, 2000, 100),
		testOrder(2, entity.StatusCompleted, 5000, 200),
		testOrder(3, entity.StatusCompleted, 5000, 150),
		testOrder(4, entity.StatusCancelled, 1000, 300),
	}

	tests := []struct {
		name    string
		key     SortKey
		status  *entity.OrderStatus
		wantIDs []uint
	}{
		{name: "time desc, no filter", key: SortByTime, wantIDs: []uint{4, 2, 3, 1}},
		{name: "price desc keeps tie order", key: SortByPrice, wantIDs: []uint{2, 3, 1, 4}},
		{name: "completed only, time desc", key: SortByTime, status: statusPtr(entity.StatusCompleted), wantIDs: []uint{2, 3}},
		{name: "pending only, price desc", key: SortByPrice, status: statusPtr(entity.StatusPending), wantIDs: []uint{1}},
		{name: "no match", key: SortByTime, status: statusPtr(entity.StatusCancelled), wantIDs: []uint{4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ApplyFilterSort(orders, tc.key, tc.status)
			assert.Equal(t, tc.wantIDs, orderIDs(got))
		})
	}

	// the input slice is never reordered
	assert.Equal(t, []uint{1, 2, 3, 4}, orderIDs(orders))
}

func TestApplyFilterSort_EmptyInput(t *testing.T) {
	got := ApplyFilterSort(nil, SortByPrice, nil)
	assert.Empty(t, got)
}

func TestToggleStatusFilter(t *testing.T) {
	completed := entity.StatusCompleted
	pending := entity.StatusPending

	// selecting from nothing
	got := ToggleStatusFilter(nil, completed)
	assert.NotNil(t, got)
	assert.Equal(t, completed, *got)

	// clicking the active filter deselects
	assert.Nil(t, ToggleStatusFilter(&completed, completed))

	// clicking another filter switches
	got = ToggleStatusFilter(&completed, pending)
	assert.NotNil(t, got)
	assert.Equal(t, pending, *got)
}

func TestCloneForReorder(t *testing.T) {
	src := &entity.Order{
		UserID:        9,
		RestaurantID:  7,
		Status:        entity.StatusCompleted,
		PlacedAt:      1700000000000,
		Total:         3250,
		Mode:          entity.ModePreOrder,
		PreOrderTime:  "18:30",
		PaymentMethod: entity.PayVisa,
		Items: []entity.OrderItem{
			{FoodID: 1, Name: "Pizza", Qty: 2, UnitPrice: 1500, Total: 3000},
			{FoodID: 2, Name: "Tea", Qty: 1, UnitPrice: 250, Total: 250},
		},
	}
	src.ID = 42
	src.Items[0].ID = 101
	src.Items[1].ID = 102

	clone := CloneForReorder(src)

	assert.Zero(t, clone.ID) // the insert assigns a fresh one
	assert.Equal(t, entity.StatusPending, clone.Status)
	assert.Empty(t, string(clone.PaymentMethod))
	assert.GreaterOrEqual(t, clone.PlacedAt, src.PlacedAt)

	assert.Equal(t, src.UserID, clone.UserID)
	assert.Equal(t, src.RestaurantID, clone.RestaurantID)
	assert.Equal(t, src.Total, clone.Total)
	assert.Equal(t, src.Mode, clone.Mode)
	assert.Equal(t, src.PreOrderTime, clone.PreOrderTime)

	assert.Len(t, clone.Items, 2)
	for i, it := range clone.Items {
		assert.Zero(t, it.ID)
		assert.Equal(t, src.Items[i].FoodID, it.FoodID)
		assert.Equal(t, src.Items[i].Name, it.Name)
		assert.Equal(t, src.Items[i].Qty, it.Qty)
		assert.Equal(t, src.Items[i].UnitPrice, it.UnitPrice)
		assert.Equal(t, src.Items[i].Total, it.Total)
	}

	// the source is not mutated
	assert.Equal(t, entity.StatusCompleted, src.Status)
	assert.Equal(t, entity.PayVisa, src.PaymentMethod)
}
