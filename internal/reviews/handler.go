package reviews

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tiffinmate/tiffinmate/internal/httperr"
)

// Store defines the persistence operations the handlers need.
type Store interface {
	Create(ctx context.Context, params CreateParams) (int64, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]VendorReview, error)
}

// Handler exposes HTTP handlers for review resources.
type Handler struct {
	store Store
	log   *slog.Logger
}

func NewHandler(store Store, log *slog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/api/reviews")
	group.GET("/vendor/:vendorId", h.listByVendor)
	group.POST("", h.create)
}

type createReviewRequest struct {
	UserID   int64   `json:"user_id" binding:"required"`
	VendorID int64   `json:"vendor_id" binding:"required"`
	Rating   int     `json:"rating" binding:"required,min=1,max=5"`
	Comment  *string `json:"comment"`
}

// create godoc
// @Summary  Add a review; the vendor's rating cache updates in the same transaction
// @Param    request body createReviewRequest true "Review"
// @Success  201 {object} map[string]int64
// @Router   /api/reviews [post]
func (h *Handler) create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.Validation("%s", err.Error()))
		return
	}

	id, err := h.store.Create(c.Request.Context(), CreateParams{
		UserID:   req.UserID,
		VendorID: req.VendorID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		h.log.Error("create review", "vendor_id", req.VendorID, "error", err)
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// listByVendor godoc
// @Summary  List a vendor's reviews
// @Param    vendorId path int true "Vendor ID"
// @Success  200 {array} VendorReview
// @Router   /api/reviews/vendor/{vendorId} [get]
func (h *Handler) listByVendor(c *gin.Context) {
	vendorID, err := strconv.ParseInt(c.Param("vendorId"), 10, 64)
	if err != nil || vendorID < 1 {
		httperr.Respond(c, httperr.Validation("invalid id"))
		return
	}

	list, err := h.store.ListByVendor(c.Request.Context(), vendorID)
	if err != nil {
		h.log.Error("list reviews", "vendor_id", vendorID, "error", err)
		httperr.Respond(c, err)
		return
	}
	if list == nil {
		list = []VendorReview{}
	}

	c.JSON(http.StatusOK, list)
}
