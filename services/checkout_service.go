package services

import (
	"fmt"

	"foodway-backend/entity"
	"foodway-backend/repository"

	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

type CheckoutService struct {
	DB        *gorm.DB
	BagRepo   *repository.BagRepository
	OrderRepo *repository.OrderRepository
	Gateway   PaymentGateway
	Notifier  OrderNotifier
}

func NewCheckoutService(
	db *gorm.DB,
	bagRepo *repository.BagRepository,
	orderRepo *repository.OrderRepository,
	gateway PaymentGateway,
	notifier OrderNotifier,
) *CheckoutService {
	return &CheckoutService{DB: db, BagRepo: bagRepo, OrderRepo: orderRepo, Gateway: gateway, Notifier: notifier}
}

// PlaceOrder snapshots the bag into a pending order and charges it. The whole
// step is one transaction: a declined or failed charge rolls everything back,
// so no order row survives and the bag is untouched. On success the bag is
// cleared and pre-orders get a pickup QR.
func (s *CheckoutService) PlaceOrder(userID uint, method entity.PaymentMethod) (*entity.Order, error) {
	bag, err := s.BagRepo.Load(userID)
	if err != nil {
		return nil, err
	}
	if !CanPlaceOrder(bag) {
		return nil, ErrBagNotReady
	}

	order := OrderFromBag(bag)
	order.PaymentMethod = method

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.OrderRepo.CreateOrder(tx, order); err != nil {
			return err
		}

		ok, err := s.Gateway.Execute(order)
		if err != nil || !ok {
			return ErrPaymentFailed
		}

		if order.Mode == entity.ModePreOrder {
			png, err := qrcode.Encode(fmt.Sprintf("foodway:order:%d", order.ID), qrcode.Medium, 256)
			if err != nil {
				return err
			}
			if err := s.OrderRepo.SavePickupQR(tx, order.ID, png); err != nil {
				return err
			}
			order.PickupQR = png
		}

		return s.BagRepo.Clear(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.OrdersChanged(userID)
	}
	return order, nil
}
