package controllers

import (
	"errors"

	"foodway-backend/entity"
	"foodway-backend/pkg/resp"
	"foodway-backend/services"
	"foodway-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BagController struct {
	Svc      *services.BagService
	Checkout *services.CheckoutService
}

func NewBagController(s *services.BagService, co *services.CheckoutService) *BagController {
	return &BagController{Svc: s, Checkout: co}
}

func mustUserID(c *gin.Context) (uint, bool) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, services.ErrUserNotAuthenticated.Error())
		return 0, false
	}
	return uid, true
}

// GET /bag
func (h *BagController) Get(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	view, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /bag/items
func (h *BagController) AddItem(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	var body struct {
		FoodID uint `json:"foodId" binding:"required"`
		Qty    int  `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Add(uid, body.FoodID, body.Qty); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrAnotherRestaurant):
			resp.Conflict(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "food not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"ok": true})
}

// PATCH /bag/items/qty
func (h *BagController) UpdateQty(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	var body struct {
		FoodID uint `json:"foodId" binding:"required"`
		Qty    int  `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.SetQty(uid, body.FoodID, body.Qty); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// PATCH /bag/items/adjust
func (h *BagController) AdjustQty(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	var body struct {
		FoodID uint `json:"foodId" binding:"required"`
		Delta  int  `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.AdjustQty(uid, body.FoodID, body.Delta); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /bag/items
func (h *BagController) RemoveItem(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	var body struct {
		FoodID uint `json:"foodId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Remove(uid, body.FoodID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /bag
func (h *BagController) Clear(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.Svc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// PATCH /bag/mode
func (h *BagController) SetMode(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	var body struct {
		Mode entity.FulfillmentMode `json:"mode" binding:"required,oneof=delivery pre_order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.SetMode(uid, body.Mode); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// PATCH /bag/location
func (h *BagController) SetDeliveryLocation(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	var body struct {
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.SetDeliveryLocation(uid, body.Location); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// PATCH /bag/pre-order-time
func (h *BagController) SetPreOrderTime(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	var body struct {
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.SetPreOrderTime(uid, body.Time); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// POST /bag/checkout
func (h *BagController) PlaceOrder(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	var body struct {
		PaymentMethod entity.PaymentMethod `json:"paymentMethod" binding:"required,oneof=cash visa mastercard touch_n_go"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Checkout.PlaceOrder(uid, body.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBagNotReady):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrPaymentFailed):
			resp.PaymentRequired(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}
