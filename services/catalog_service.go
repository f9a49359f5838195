package services

import (
	"foodway-backend/entity"
	"foodway-backend/repository"
)

type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

func (s *CatalogService) ListRestaurants() ([]entity.Restaurant, error) {
	return s.Repo.ListRestaurants()
}

func (s *CatalogService) RestaurantDetail(id uint) (*entity.Restaurant, []entity.Food, error) {
	rest, err := s.Repo.FindRestaurant(id)
	if err != nil {
		return nil, nil, err
	}
	foods, err := s.Repo.FoodsByRestaurant(rest.ID)
	if err != nil {
		return nil, nil, err
	}
	return rest, foods, nil
}

func (s *CatalogService) ListFoods(category string, vegOnly bool) ([]entity.Food, error) {
	return s.Repo.ListFoods(category, vegOnly)
}

func (s *CatalogService) GetFood(id uint) (*entity.Food, error) {
	return s.Repo.FindFood(id)
}
