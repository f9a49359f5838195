package services

import (
	"foodway-backend/entity"
	"foodway-backend/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	Notifier OrderNotifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, notifier OrderNotifier) *OrderService {
	return &OrderService{DB: db, Repo: repo, Notifier: notifier}
}

// ListForUser fetches the raw history and shapes it with the pure view
// helpers; the same path runs again on every ws refresh.
func (s *OrderService) ListForUser(userID uint, key SortKey, status *entity.OrderStatus) ([]entity.Order, error) {
	orders, err := s.Repo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	return ApplyFilterSort(orders, key, status), nil
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetForUser(userID, orderID)
}

// Reorder clones a completed order of the caller into a brand-new pending
// one. The bag is not involved and no charge is made; the new order goes
// through the operator flow like any other.
func (s *OrderService) Reorder(userID, orderID uint) (*entity.Order, error) {
	src, err := s.Repo.GetForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	if src.Status != entity.StatusCompleted {
		return nil, ErrNotReorderable
	}

	clone := CloneForReorder(src)
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateOrder(tx, clone)
	})
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.OrdersChanged(userID)
	}
	return clone, nil
}

// ----- Operator actions -----
// The only status writes besides the pending forced at creation.

func (s *OrderService) Complete(orderID uint) error {
	return s.transition(orderID, entity.StatusPending, entity.StatusCompleted)
}

func (s *OrderService) Cancel(orderID uint) error {
	return s.transition(orderID, entity.StatusPending, entity.StatusCancelled)
}

func (s *OrderService) transition(orderID uint, from, to entity.OrderStatus) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.Notifier != nil {
		s.Notifier.OrdersChanged(o.UserID)
	}
	return nil
}
