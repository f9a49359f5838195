package controllers

import (
	"errors"
	"strconv"

	"foodway-backend/pkg/resp"
	"foodway-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OperatorController exposes the externally driven status transitions; only
// admins reach these routes.
type OperatorController struct {
	Svc *services.OrderService
}

func NewOperatorController(s *services.OrderService) *OperatorController {
	return &OperatorController{Svc: s}
}

// PUT /admin/orders/:id/complete
func (h *OperatorController) Complete(c *gin.Context) {
	h.transition(c, h.Svc.Complete)
}

// PUT /admin/orders/:id/cancel
func (h *OperatorController) Cancel(c *gin.Context) {
	h.transition(c, h.Svc.Cancel)
}

func (h *OperatorController) transition(c *gin.Context, apply func(uint) error) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := apply(uint(id)); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
