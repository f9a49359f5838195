package services

import (
	"path/filepath"
	"testing"

	"foodway-backend/entity"
	"foodway-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubGateway struct {
	approve bool
	charged []int64
}

func (g *stubGateway) Execute(o *entity.Order) (bool, error) {
	g.charged = append(g.charged, o.Total)
	return g.approve, nil
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Food{},
		&entity.Bag{}, &entity.BagItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func seedFoods(t *testing.T, db *gorm.DB) (pizza, tea entity.Food) {
	t.Helper()
	rest := entity.Restaurant{Name: "Pizza Corner"}
	require.NoError(t, db.Create(&rest).Error)

	pizza = entity.Food{Name: "Margherita", Price: 1200, RestaurantID: rest.ID}
	tea = entity.Food{Name: "Iced Tea", Price: 300, RestaurantID: rest.ID}
	require.NoError(t, db.Create(&pizza).Error)
	require.NoError(t, db.Create(&tea).Error)
	return pizza, tea
}

func TestBagService_AddMergesInDB(t *testing.T) {
	db := setupDB(t)
	pizza, tea := seedFoods(t, db)
	bags := NewBagService(db, repository.NewBagRepository(db), repository.NewCatalogRepository(db))
	userID := uint(1)

	require.NoError(t, bags.Add(userID, pizza.ID, 2))
	require.NoError(t, bags.Add(userID, pizza.ID, 1))
	require.NoError(t, bags.Add(userID, tea.ID, 1))

	view, err := bags.Get(userID)
	require.NoError(t, err)
	assert.Len(t, view.Bag.Items, 2)
	assert.Equal(t, pizza.ID, view.Bag.Items[0].FoodID)
	assert.Equal(t, 3, view.Bag.Items[0].Qty)
	assert.Equal(t, int64(3*1200+300), view.Total)
	assert.False(t, view.CanPlaceOrder) // delivery with no location yet

	require.NoError(t, bags.SetDeliveryLocation(userID, "12 Jalan Besar"))
	view, err = bags.Get(userID)
	require.NoError(t, err)
	assert.True(t, view.CanPlaceOrder)
}

func TestBagService_RejectsSecondRestaurant(t *testing.T) {
	db := setupDB(t)
	pizza, _ := seedFoods(t, db)

	other := entity.Restaurant{Name: "Mama's Kitchen"}
	require.NoError(t, db.Create(&other).Error)
	curry := entity.Food{Name: "Veggie Curry", Price: 700, RestaurantID: other.ID}
	require.NoError(t, db.Create(&curry).Error)

	bags := NewBagService(db, repository.NewBagRepository(db), repository.NewCatalogRepository(db))
	userID := uint(1)

	require.NoError(t, bags.Add(userID, pizza.ID, 1))
	assert.ErrorIs(t, bags.Add(userID, curry.ID, 1), ErrAnotherRestaurant)

	// clearing the bag releases the lock
	require.NoError(t, bags.Clear(userID))
	assert.NoError(t, bags.Add(userID, curry.ID, 1))
}

func TestPlaceOrder_SuccessClearsBag(t *testing.T) {
	db := setupDB(t)
	pizza, _ := seedFoods(t, db)
	bagRepo := repository.NewBagRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	bags := NewBagService(db, bagRepo, repository.NewCatalogRepository(db))
	gw := &stubGateway{approve: true}
	checkout := NewCheckoutService(db, bagRepo, orderRepo, gw, nil)
	userID := uint(1)

	require.NoError(t, bags.Add(userID, pizza.ID, 2))
	require.NoError(t, bags.SetDeliveryLocation(userID, "12 Jalan Besar"))

	order, err := checkout.PlaceOrder(userID, entity.PayVisa)
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, int64(2400), order.Total)
	assert.Equal(t, entity.PayVisa, order.PaymentMethod)
	assert.Equal(t, []int64{2400}, gw.charged)

	view, err := bags.Get(userID)
	require.NoError(t, err)
	assert.Empty(t, view.Bag.Items)
	assert.Equal(t, int64(0), view.Total)
	assert.Equal(t, entity.ModeDelivery, view.Bag.Mode)

	stored, err := orderRepo.GetForUser(userID, order.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 1)
	assert.Equal(t, "Margherita", stored.Items[0].Name)
}

func TestPlaceOrder_DeclinedLeavesEverythingUntouched(t *testing.T) {
	db := setupDB(t)
	pizza, _ := seedFoods(t, db)
	bagRepo := repository.NewBagRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	bags := NewBagService(db, bagRepo, repository.NewCatalogRepository(db))
	checkout := NewCheckoutService(db, bagRepo, orderRepo, &stubGateway{approve: false}, nil)
	userID := uint(1)

	require.NoError(t, bags.Add(userID, pizza.ID, 2))
	require.NoError(t, bags.SetDeliveryLocation(userID, "12 Jalan Besar"))

	_, err := checkout.PlaceOrder(userID, entity.PayCash)
	assert.ErrorIs(t, err, ErrPaymentFailed)

	// bag survives, no order row survives the rollback
	view, err := bags.Get(userID)
	require.NoError(t, err)
	assert.Len(t, view.Bag.Items, 1)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestPlaceOrder_EmptyBagNotReady(t *testing.T) {
	db := setupDB(t)
	seedFoods(t, db)
	bagRepo := repository.NewBagRepository(db)
	checkout := NewCheckoutService(db, bagRepo, repository.NewOrderRepository(db), &stubGateway{approve: true}, nil)

	_, err := checkout.PlaceOrder(1, entity.PayCash)
	assert.ErrorIs(t, err, ErrBagNotReady)
}

func TestPlaceOrder_PreOrderGetsPickupQR(t *testing.T) {
	db := setupDB(t)
	pizza, _ := seedFoods(t, db)
	bagRepo := repository.NewBagRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	bags := NewBagService(db, bagRepo, repository.NewCatalogRepository(db))
	checkout := NewCheckoutService(db, bagRepo, orderRepo, &stubGateway{approve: true}, nil)
	userID := uint(1)

	require.NoError(t, bags.Add(userID, pizza.ID, 1))
	require.NoError(t, bags.SetMode(userID, entity.ModePreOrder))
	require.NoError(t, bags.SetPreOrderTime(userID, "18:30"))

	order, err := checkout.PlaceOrder(userID, entity.PayTouchNGo)
	require.NoError(t, err)
	assert.NotEmpty(t, order.PickupQR)

	stored, err := orderRepo.GetForUser(userID, order.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PickupQR)
	assert.Equal(t, "18:30", stored.PreOrderTime)
}

func TestOrderService_ReorderAndTransitions(t *testing.T) {
	db := setupDB(t)
	pizza, _ := seedFoods(t, db)
	bagRepo := repository.NewBagRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	bags := NewBagService(db, bagRepo, repository.NewCatalogRepository(db))
	checkout := NewCheckoutService(db, bagRepo, orderRepo, &stubGateway{approve: true}, nil)
	ordersSvc := NewOrderService(db, orderRepo, nil)
	userID := uint(1)

	require.NoError(t, bags.Add(userID, pizza.ID, 2))
	require.NoError(t, bags.SetDeliveryLocation(userID, "12 Jalan Besar"))
	placed, err := checkout.PlaceOrder(userID, entity.PayMastercard)
	require.NoError(t, err)

	// pending orders cannot be reordered
	_, err = ordersSvc.Reorder(userID, placed.ID)
	assert.ErrorIs(t, err, ErrNotReorderable)

	require.NoError(t, ordersSvc.Complete(placed.ID))

	clone, err := ordersSvc.Reorder(userID, placed.ID)
	require.NoError(t, err)
	assert.NotEqual(t, placed.ID, clone.ID)
	assert.GreaterOrEqual(t, clone.PlacedAt, placed.PlacedAt)
	assert.Equal(t, entity.StatusPending, clone.Status)
	assert.Empty(t, string(clone.PaymentMethod))
	assert.Equal(t, placed.Total, clone.Total)

	// completing twice loses the guard
	assert.ErrorIs(t, ordersSvc.Complete(placed.ID), ErrInvalidTransition)

	// cancel works on the fresh pending clone
	require.NoError(t, ordersSvc.Cancel(clone.ID))

	history, err := ordersSvc.ListForUser(userID, SortByTime, nil)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
