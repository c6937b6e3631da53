package deliveries

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tiffinmate/tiffinmate/internal/httperr"
)

// Store defines the persistence operations the handlers need.
type Store interface {
	ListBySubscription(ctx context.Context, subscriptionID int64, filter *MonthFilter) ([]Delivery, error)
	UpdateStatus(ctx context.Context, id int64, status Status, notes *string) (bool, error)
	Stats(ctx context.Context, subscriptionID int64, filter *MonthFilter) (Stats, error)
}

// Handler exposes HTTP handlers for delivery resources.
type Handler struct {
	store Store
	log   *slog.Logger
}

func NewHandler(store Store, log *slog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/api/deliveries")
	group.GET("/subscription/:subscriptionId", h.listBySubscription)
	group.GET("/stats/:subscriptionId", h.stats)
	group.PATCH("/:id", h.update)
}

// listBySubscription godoc
// @Summary  List deliveries for a subscription
// @Param    subscriptionId path  int    true  "Subscription ID"
// @Param    month          query string false "Two-digit month, requires year"
// @Param    year           query string false "Four-digit year, requires month"
// @Success  200 {array} Delivery
// @Router   /api/deliveries/subscription/{subscriptionId} [get]
func (h *Handler) listBySubscription(c *gin.Context) {
	subscriptionID, err := parseID(c.Param("subscriptionId"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	filter, err := monthFilterFromQuery(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	list, err := h.store.ListBySubscription(c.Request.Context(), subscriptionID, filter)
	if err != nil {
		h.log.Error("list deliveries", "subscription_id", subscriptionID, "error", err)
		httperr.Respond(c, err)
		return
	}
	if list == nil {
		list = []Delivery{}
	}

	c.JSON(http.StatusOK, list)
}

type updateDeliveryRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

// update godoc
// @Summary  Update a delivery's status
// @Param    id      path int                   true "Delivery ID"
// @Param    request body updateDeliveryRequest true "New status and notes"
// @Success  200 {object} map[string]bool
// @Router   /api/deliveries/{id} [patch]
func (h *Handler) update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req updateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.Validation("%s", err.Error()))
		return
	}

	status := Status(req.Status)
	if !status.IsValid() {
		httperr.Respond(c, httperr.Validation("invalid delivery status %q", req.Status))
		return
	}

	changed, err := h.store.UpdateStatus(c.Request.Context(), id, status, req.Notes)
	if err != nil {
		h.log.Error("update delivery", "delivery_id", id, "error", err)
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

// stats godoc
// @Summary  Delivery statistics for a subscription
// @Param    subscriptionId path  int    true  "Subscription ID"
// @Param    month          query string false "Two-digit month, requires year"
// @Param    year           query string false "Four-digit year, requires month"
// @Success  200 {object} Stats
// @Router   /api/deliveries/stats/{subscriptionId} [get]
func (h *Handler) stats(c *gin.Context) {
	subscriptionID, err := parseID(c.Param("subscriptionId"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	filter, err := monthFilterFromQuery(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	stats, err := h.store.Stats(c.Request.Context(), subscriptionID, filter)
	if err != nil {
		h.log.Error("delivery stats", "subscription_id", subscriptionID, "error", err)
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// monthFilterFromQuery builds the optional month window. The filter only
// applies when both month and year are present; a lone month or lone year
// means no filter at all.
func monthFilterFromQuery(c *gin.Context) (*MonthFilter, error) {
	monthStr := c.Query("month")
	yearStr := c.Query("year")
	if monthStr == "" || yearStr == "" {
		return nil, nil
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return nil, httperr.Validation("month must be between 01 and 12")
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		return nil, httperr.Validation("year must be a four-digit number")
	}

	return &MonthFilter{Month: time.Month(month), Year: year}, nil
}

func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, httperr.Validation("invalid id")
	}
	return id, nil
}
