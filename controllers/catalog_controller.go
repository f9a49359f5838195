package controllers

import (
	"strconv"

	"foodway-backend/pkg/resp"
	"foodway-backend/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Svc *services.CatalogService
}

func NewCatalogController(s *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: s}
}

// GET /restaurants
func (ctl *CatalogController) ListRestaurants(c *gin.Context) {
	rests, err := ctl.Svc.ListRestaurants()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rests})
}

// GET /restaurants/:id
func (ctl *CatalogController) RestaurantDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rest, foods, err := ctl.Svc.RestaurantDetail(uint(id))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.OK(c, gin.H{"restaurant": rest, "foods": foods})
}

// GET /foods?category=&veg=
func (ctl *CatalogController) ListFoods(c *gin.Context) {
	category := c.Query("category")
	vegOnly := c.Query("veg") == "true"

	foods, err := ctl.Svc.ListFoods(category, vegOnly)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": foods})
}

// GET /foods/:id
func (ctl *CatalogController) FoodDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	food, err := ctl.Svc.GetFood(uint(id))
	if err != nil {
		resp.NotFound(c, "food not found")
		return
	}
	resp.OK(c, food)
}
