package services

import (
	"foodway-backend/entity"
	"foodway-backend/repository"

	"gorm.io/gorm"
)

type BagService struct {
	DB          *gorm.DB
	BagRepo     *repository.BagRepository
	CatalogRepo *repository.CatalogRepository
}

func NewBagService(db *gorm.DB, br *repository.BagRepository, cr *repository.CatalogRepository) *BagService {
	return &BagService{DB: db, BagRepo: br, CatalogRepo: cr}
}

// BagView is the bag plus its derived fields; total and eligibility are never
// stored, only computed.
type BagView struct {
	Bag           *entity.Bag `json:"bag"`
	Total         int64       `json:"total"`
	CanPlaceOrder bool        `json:"canPlaceOrder"`
}

func (s *BagService) Get(userID uint) (*BagView, error) {
	b, err := s.BagRepo.Load(userID)
	if err != nil {
		return nil, err
	}
	return &BagView{Bag: b, Total: BagTotal(b), CanPlaceOrder: CanPlaceOrder(b)}, nil
}

// Add merges qty of the food into the bag, locking it to the food's
// restaurant on the first line.
func (s *BagService) Add(userID, foodID uint, qty int) error {
	b, err := s.BagRepo.Load(userID)
	if err != nil {
		return err
	}
	food, err := s.CatalogRepo.FindFood(foodID)
	if err != nil {
		return err
	}
	if b.RestaurantID != 0 && b.RestaurantID != food.RestaurantID {
		return ErrAnotherRestaurant
	}
	if err := AddLine(b, food, qty); err != nil {
		return err
	}
	b.RestaurantID = food.RestaurantID
	return s.persist(b)
}

func (s *BagService) SetQty(userID, foodID uint, qty int) error {
	b, err := s.BagRepo.Load(userID)
	if err != nil {
		return err
	}
	SetLineQty(b, foodID, qty)
	return s.persist(b)
}

func (s *BagService) AdjustQty(userID, foodID uint, delta int) error {
	b, err := s.BagRepo.Load(userID)
	if err != nil {
		return err
	}
	AdjustLineQty(b, foodID, delta)
	return s.persist(b)
}

func (s *BagService) Remove(userID, foodID uint) error {
	b, err := s.BagRepo.Load(userID)
	if err != nil {
		return err
	}
	RemoveLine(b, foodID)
	return s.persist(b)
}

func (s *BagService) Clear(userID uint) error {
	b, err := s.BagRepo.Load(userID)
	if err != nil {
		return err
	}
	ResetBag(b)
	return s.persist(b)
}

// SetMode switches delivery/pre_order; location and time are kept so the
// prior selection is restored when switching back.
func (s *BagService) SetMode(userID uint, mode entity.FulfillmentMode) error {
	b, err := s.BagRepo.Load(userID)
	if err != nil {
		return err
	}
	b.Mode = mode
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.BagRepo.SaveHeader(tx, b)
	})
}

func (s *BagService) SetDeliveryLocation(userID uint, location string) error {
	b, err := s.BagRepo.Load(userID)
	if err != nil {
		return err
	}
	b.DeliveryLocation = location
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.BagRepo.SaveHeader(tx, b)
	})
}

func (s *BagService) SetPreOrderTime(userID uint, at string) error {
	b, err := s.BagRepo.Load(userID)
	if err != nil {
		return err
	}
	b.PreOrderTime = at
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.BagRepo.SaveHeader(tx, b)
	})
}

func (s *BagService) persist(b *entity.Bag) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.BagRepo.SaveHeader(tx, b); err != nil {
			return err
		}
		return s.BagRepo.ReplaceItems(tx, b)
	})
}
