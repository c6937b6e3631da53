package users

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tiffinmate/tiffinmate/internal/httperr"
)

// Store defines the persistence operations the handlers need.
type Store interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, params CreateParams) (int64, error)
	Search(ctx context.Context, email, phone string) (User, error)
}

// Handler exposes HTTP handlers for user resources.
type Handler struct {
	store Store
	log   *slog.Logger
}

func NewHandler(store Store, log *slog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/api/users")
	group.GET("", h.list)
	group.GET("/search", h.search)
	group.GET("/:id", h.getByID)
	group.POST("", h.create)
}

// list godoc
// @Summary  List users
// @Success  200 {array} User
// @Router   /api/users [get]
func (h *Handler) list(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		h.log.Error("list users", "error", err)
		httperr.Respond(c, err)
		return
	}
	if list == nil {
		list = []User{}
	}

	c.JSON(http.StatusOK, list)
}

// getByID godoc
// @Summary  Get a user
// @Param    id path int true "User ID"
// @Success  200 {object} User
// @Router   /api/users/{id} [get]
func (h *Handler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		httperr.Respond(c, httperr.Validation("invalid id"))
		return
	}

	user, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

type createUserRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   string  `json:"phone" binding:"required"`
	Address *string `json:"address"`
	City    *string `json:"city"`
}

// create godoc
// @Summary  Register a user
// @Param    request body createUserRequest true "User"
// @Success  201 {object} map[string]int64
// @Router   /api/users [post]
func (h *Handler) create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.Validation("%s", err.Error()))
		return
	}

	id, err := h.store.Create(c.Request.Context(), CreateParams{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Address: req.Address,
		City:    req.City,
	})
	if err != nil {
		h.log.Error("create user", "error", err)
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// search godoc
// @Summary  Find a user by email or phone
// @Param    email query string false "Email"
// @Param    phone query string false "Phone"
// @Success  200 {object} User
// @Router   /api/users/search [get]
func (h *Handler) search(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	phone := strings.TrimSpace(c.Query("phone"))
	if email == "" && phone == "" {
		httperr.Respond(c, httperr.Validation("email or phone required"))
		return
	}

	user, err := h.store.Search(c.Request.Context(), email, phone)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
