package vendors

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
	List(ctx context.Context, filter Filter) ([]Vendor, error)
	GetByID(ctx context.Context, id int64) (Vendor, error)
	Login(ctx context.Context, email, phone string) (Vendor, error)
	Create(ctx context.Context, params CreateParams) (int64, error)
	Update(ctx context.Context, id int64, params UpdateParams) (bool, error)
}

// Handler exposes HTTP handlers for vendor resources.
type Handler struct {
	store Store
	log   *slog.Logger
}

func NewHandler(store Store, log *slog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/api/vendors")
	group.GET("", h.list)
	group.GET("/login", h.login)
	group.GET("/:id", h.getByID)
	group.POST("", h.create)
	group.PUT("/:id", h.update)
}

// list godoc
// @Summary  List active vendors with filters
// @Param    city            query string false "City, exact match"
// @Param    locality        query string false "Locality substring"
// @Param    food_type       query string false "Food type, Mixed always included"
// @Param    min_price       query number false "Minimum monthly price"
// @Param    max_price       query number false "Maximum monthly price"
// @Param    delivery_radius query int    false "Minimum delivery radius"
// @Param    sort_by         query string false "price_low | price_high | rating"
// @Success  200 {array} Vendor
// @Router   /api/vendors [get]
func (h *Handler) list(c *gin.Context) {
	filter := Filter{SortBy: c.Query("sort_by")}

	if city := strings.TrimSpace(c.Query("city")); city != "" {
		filter.City = &city
	}
	if locality := strings.TrimSpace(c.Query("locality")); locality != "" {
		filter.Locality = &locality
	}
	if foodType := strings.TrimSpace(c.Query("food_type")); foodType != "" {
		filter.FoodType = &foodType
	}
	if raw := c.Query("min_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			httperr.Respond(c, httperr.Validation("min_price must be a number"))
			return
		}
		filter.MinPrice = &price
	}
	if raw := c.Query("max_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			httperr.Respond(c, httperr.Validation("max_price must be a number"))
			return
		}
		filter.MaxPrice = &price
	}
	if raw := c.Query("delivery_radius"); raw != "" {
		radius, err := strconv.Atoi(raw)
		if err != nil {
			httperr.Respond(c, httperr.Validation("delivery_radius must be an integer"))
			return
		}
		filter.DeliveryRadius = &radius
	}

	list, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error("list vendors", "error", err)
		httperr.Respond(c, err)
		return
	}
	if list == nil {
		list = []Vendor{}
	}

	c.JSON(http.StatusOK, list)
}

// getByID godoc
// @Summary  Get a vendor
// @Param    id path int true "Vendor ID"
// @Success  200 {object} Vendor
// @Router   /api/vendors/{id} [get]
func (h *Handler) getByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	vendor, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// login godoc
// @Summary  Look up an active vendor by email and phone
// @Param    email query string true "Email"
// @Param    phone query string true "Phone"
// @Success  200 {object} Vendor
// @Router   /api/vendors/login [get]
func (h *Handler) login(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	phone := strings.TrimSpace(c.Query("phone"))
	if email == "" || phone == "" {
		httperr.Respond(c, httperr.Validation("email and phone are required"))
		return
	}

	vendor, err := h.store.Login(c.Request.Context(), email, phone)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

type createVendorRequest struct {
	Name           string   `json:"name" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Phone          string   `json:"phone" binding:"required"`
	Description    *string  `json:"description"`
	Address        *string  `json:"address"`
	City           *string  `json:"city"`
	Locality       *string  `json:"locality"`
	FoodType       *string  `json:"food_type"`
	DailyPrice     *float64 `json:"daily_price"`
	WeeklyPrice    *float64 `json:"weekly_price"`
	MonthlyPrice   *float64 `json:"monthly_price"`
	DeliveryRadius *int     `json:"delivery_radius"`
	ImageURL       *string  `json:"image_url"`
}

// create godoc
// @Summary  Register a vendor
// @Param    request body createVendorRequest true "Vendor"
// @Success  201 {object} map[string]int64
// @Router   /api/vendors [post]
func (h *Handler) create(c *gin.Context) {
	var req createVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.Validation("%s", err.Error()))
		return
	}

	id, err := h.store.Create(c.Request.Context(), CreateParams{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		Phone:          strings.TrimSpace(req.Phone),
		Description:    req.Description,
		Address:        req.Address,
		City:           req.City,
		Locality:       req.Locality,
		FoodType:       req.FoodType,
		DailyPrice:     req.DailyPrice,
		WeeklyPrice:    req.WeeklyPrice,
		MonthlyPrice:   req.MonthlyPrice,
		DeliveryRadius: req.DeliveryRadius,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		h.log.Error("create vendor", "error", err)
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type updateVendorRequest struct {
	Name           *string  `json:"name"`
	Email          *string  `json:"email"`
	Phone          *string  `json:"phone"`
	Description    *string  `json:"description"`
	Address        *string  `json:"address"`
	City           *string  `json:"city"`
	Locality       *string  `json:"locality"`
	FoodType       *string  `json:"food_type"`
	DailyPrice     *float64 `json:"daily_price"`
	WeeklyPrice    *float64 `json:"weekly_price"`
	MonthlyPrice   *float64 `json:"monthly_price"`
	DeliveryRadius *int     `json:"delivery_radius"`
	ImageURL       *string  `json:"image_url"`
	IsActive       *bool    `json:"is_active"`
}

// update godoc
// @Summary  Update vendor fields; rating fields are not client-mutable
// @Param    id      path int                 true "Vendor ID"
// @Param    request body updateVendorRequest true "Fields to update"
// @Success  200 {object} map[string]bool
// @Router   /api/vendors/{id} [put]
func (h *Handler) update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req updateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.Validation("%s", err.Error()))
		return
	}

	changed, err := h.store.Update(c.Request.Context(), id, UpdateParams{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Description:    req.Description,
		Address:        req.Address,
		City:           req.City,
		Locality:       req.Locality,
		FoodType:       req.FoodType,
		DailyPrice:     req.DailyPrice,
		WeeklyPrice:    req.WeeklyPrice,
		MonthlyPrice:   req.MonthlyPrice,
		DeliveryRadius: req.DeliveryRadius,
		ImageURL:       req.ImageURL,
		IsActive:       req.IsActive,
	})
	if err != nil {
		h.log.Error("update vendor", "vendor_id", id, "error", err)
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, httperr.Validation("invalid id")
	}
	return id, nil
}
