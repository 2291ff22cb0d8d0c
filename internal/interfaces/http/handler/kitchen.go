package handler

import (
	"github.com/gin-gonic/gin"

	appordertech "github.com/restopos/backend/internal/application/ordertech"
	"github.com/restopos/backend/internal/domain/pos"
	"github.com/restopos/backend/internal/interfaces/http/middleware"
)

// KitchenHandler relays preparation-display events to the ordering platform.
// Stage transitions on the kitchen display and the send-to-kitchen action both
// end up here; platform-sourced orders get a status webhook, local ones don't.
type KitchenHandler struct {
	BaseHandler
	notifier *appordertech.OrderStatusNotifier
}

// NewKitchenHandler creates a new KitchenHandler
func NewKitchenHandler(notifier *appordertech.OrderStatusNotifier) *KitchenHandler {
	return &KitchenHandler{notifier: notifier}
}

// StageRef identifies the preparation stage orders moved to
type StageRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" binding:"required"`
	Sequence int    `json:"sequence"`
}

// StageChangeRequest reports orders moving to a preparation stage. Done marks
// a transition out of the last stage.
type StageChangeRequest struct {
	OrderIDs []int64  `json:"order_ids" binding:"required"`
	Stage    StageRef `json:"stage" binding:"required"`
	Done     bool     `json:"done"`
}

// StageChange dispatches status notifications for a stage transition
func (h *KitchenHandler) StageChange(c *gin.Context) {
	var req StageChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	stage := &pos.PreparationStage{ID: req.Stage.ID, Name: req.Stage.Name, Sequence: req.Stage.Sequence}
	if req.Done {
		h.notifier.NotifyDone(c.Request.Context(), req.OrderIDs, stage)
	} else {
		h.notifier.NotifyStageChange(c.Request.Context(), req.OrderIDs, stage)
	}
	h.Success(c, "order status notifications dispatched", nil)
}

// SendToKitchenRequest reports an order entering preparation
type SendToKitchenRequest struct {
	OrderID int64 `json:"order_id" binding:"required"`
}

// SendToKitchen notifies the platform that an order is being prepared
func (h *KitchenHandler) SendToKitchen(c *gin.Context) {
	var req SendToKitchenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	h.notifier.NotifyPreparing(c.Request.Context(), req.OrderID)
	h.Success(c, "order status notification dispatched", nil)
}

// RegisterRoutes registers the kitchen notification routes
func (h *KitchenHandler) RegisterRoutes(rg *gin.RouterGroup) {
	kitchen := rg.Group("/kitchen")
	kitchen.POST("/stage-change", h.StageChange)
	kitchen.POST("/send", h.SendToKitchen)
}
