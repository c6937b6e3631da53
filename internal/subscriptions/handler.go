package subscriptions

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tiffinmate/tiffinmate/internal/dates"
	"github.com/tiffinmate/tiffinmate/internal/httperr"
)

// Store defines the persistence operations the handlers need.
type Store interface {
	Create(ctx context.Context, params CreateParams) (int64, error)
	SetStatus(ctx context.Context, id int64, status Status) (bool, error)
	GetByID(ctx context.Context, id int64) (Detail, error)
	ListByUser(ctx context.Context, userID int64) ([]UserView, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]VendorView, error)
}

// Handler exposes HTTP handlers for subscription resources.
type Handler struct {
	store Store
	log   *slog.Logger
}

func NewHandler(store Store, log *slog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/api/subscriptions")
	group.POST("", h.create)
	group.GET("/user/:userId", h.listByUser)
	group.GET("/vendor/:vendorId", h.listByVendor)
	group.GET("/:id", h.getByID)
	group.PATCH("/:id/status", h.setStatus)
}

type createSubscriptionRequest struct {
	UserID      int64   `json:"user_id" binding:"required"`
	VendorID    int64   `json:"vendor_id" binding:"required"`
	PlanType    string  `json:"plan_type" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	TotalAmount float64 `json:"total_amount" binding:"required,min=0"`
}

// create godoc
// @Summary  Create a subscription with its delivery schedule
// @Param    request body createSubscriptionRequest true "Subscription"
// @Success  201 {object} map[string]int64
// @Router   /api/subscriptions [post]
func (h *Handler) create(c *gin.Context) {
	var req createSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.Validation("%s", err.Error()))
		return
	}

	planType := PlanType(req.PlanType)
	if !planType.IsValid() {
		httperr.Respond(c, httperr.Validation("invalid plan_type %q", req.PlanType))
		return
	}

	start, err := dates.Parse(req.StartDate)
	if err != nil {
		httperr.Respond(c, httperr.Validation("start_date: %s", err.Error()))
		return
	}

	end, err := dates.Parse(req.EndDate)
	if err != nil {
		httperr.Respond(c, httperr.Validation("end_date: %s", err.Error()))
		return
	}

	if end.Before(start) {
		httperr.Respond(c, httperr.Validation("end_date cannot be before start_date"))
		return
	}

	id, err := h.store.Create(c.Request.Context(), CreateParams{
		UserID:      req.UserID,
		VendorID:    req.VendorID,
		PlanType:    planType,
		StartDate:   start,
		EndDate:     end,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		h.log.Error("create subscription", "user_id", req.UserID, "vendor_id", req.VendorID, "error", err)
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// setStatus godoc
// @Summary  Pause, resume or cancel a subscription
// @Param    id      path int              true "Subscription ID"
// @Param    request body setStatusRequest true "New status"
// @Success  200 {object} map[string]bool
// @Router   /api/subscriptions/{id}/status [patch]
func (h *Handler) setStatus(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.Validation("%s", err.Error()))
		return
	}

	status := Status(req.Status)
	if !status.IsValid() {
		httperr.Respond(c, httperr.Validation("invalid subscription status %q", req.Status))
		return
	}

	changed, err := h.store.SetStatus(c.Request.Context(), id, status)
	if err != nil {
		h.log.Error("set subscription status", "subscription_id", id, "error", err)
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

// getByID godoc
// @Summary  Get a subscription with vendor and user details
// @Param    id path int true "Subscription ID"
// @Success  200 {object} Detail
// @Router   /api/subscriptions/{id} [get]
func (h *Handler) getByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	detail, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// listByUser godoc
// @Summary  List a user's subscriptions
// @Param    userId path int true "User ID"
// @Success  200 {array} UserView
// @Router   /api/subscriptions/user/{userId} [get]
func (h *Handler) listByUser(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	list, err := h.store.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("list user subscriptions", "user_id", userID, "error", err)
		httperr.Respond(c, err)
		return
	}
	if list == nil {
		list = []UserView{}
	}

	c.JSON(http.StatusOK, list)
}

// listByVendor godoc
// @Summary  List a vendor's subscriptions
// @Param    vendorId path int true "Vendor ID"
// @Success  200 {array} VendorView
// @Router   /api/subscriptions/vendor/{vendorId} [get]
func (h *Handler) listByVendor(c *gin.Context) {
	vendorID, err := parseID(c.Param("vendorId"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	list, err := h.store.ListByVendor(c.Request.Context(), vendorID)
	if err != nil {
		h.log.Error("list vendor subscriptions", "vendor_id", vendorID, "error", err)
		httperr.Respond(c, err)
		return
	}
	if list == nil {
		list = []VendorView{}
	}

	c.JSON(http.StatusOK, list)
}

func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, httperr.Validation("invalid id")
	}
	return id, nil
}
