package controllers

import (
	"errors"
	"strconv"

	"foodway-backend/entity"
	"foodway-backend/pkg/resp"
	"foodway-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// GET /orders?sort=time|price&status=pending|cancelled|completed
func (h *OrderController) List(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	key := services.SortKey(c.DefaultQuery("sort", string(services.SortByTime)))
	if key != services.SortByTime && key != services.SortByPrice {
		resp.BadRequest(c, "unknown sort key")
		return
	}

	var status *entity.OrderStatus
	if raw := c.Query("status"); raw != "" {
		s := entity.OrderStatus(raw)
		if !s.Valid() {
			resp.BadRequest(c, "unknown status")
			return
		}
		status = &s
	}

	orders, err := h.Svc.ListForUser(uid, key, status)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := h.Svc.DetailForUser(uid, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/reorder
func (h *OrderController) Reorder(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := h.Svc.Reorder(uid, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrNotReorderable):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id/qr
func (h *OrderController) PickupQR(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := h.Svc.DetailForUser(uid, uint(id))
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	if len(order.PickupQR) == 0 {
		resp.NotFound(c, "order has no pickup code")
		return
	}
	c.Data(200, "image/png", order.PickupQR)
}
