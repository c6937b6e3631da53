package vendors

import "time"

// Vendor mirrors the vendors table. Rating and TotalRatings are derived
// caches owned by the review insert path; they are never written here.
type Vendor struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Description    *string    `json:"description,omitempty"`
	Address        *string    `json:"address,omitempty"`
	City           *string    `json:"city,omitempty"`
	Locality       *string    `json:"locality,omitempty"`
	FoodType       *string    `json:"food_type,omitempty"`
	DailyPrice     *float64   `json:"daily_price,omitempty"`
	WeeklyPrice    *float64   `json:"weekly_price,omitempty"`
	MonthlyPrice   *float64   `json:"monthly_price,omitempty"`
	DeliveryRadius *int       `json:"delivery_radius,omitempty"`
	ImageURL       *string    `json:"image_url,omitempty"`
	Rating         *float64   `json:"rating,omitempty"`
	TotalRatings   int        `json:"total_ratings"`
	HappyCustomers int        `json:"happy_customers"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Sort orders for vendor listings.
const (
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortRating    = "rating"
)

// Filter narrows a vendor listing. Nil fields apply no restriction; only
// active vendors are ever listed.
type Filter struct {
	City           *string
	Locality       *string
	FoodType       *string
	MinPrice       *float64
	MaxPrice       *float64
	DeliveryRadius *int
	SortBy         string
}

// CreateParams represents validated data needed to insert a vendor.
type CreateParams struct {
	Name           string
	Email          string
	Phone          string
	Description    *string
	Address        *string
	City           *string
	Locality       *string
	FoodType       *string
	DailyPrice     *float64
	WeeklyPrice    *float64
	MonthlyPrice   *float64
	DeliveryRadius *int
	ImageURL       *string
}

// UpdateParams carries mutable fields for an existing vendor. The derived
// rating fields are deliberately absent.
type UpdateParams struct {
	Name           *string
	Email          *string
	Phone          *string
	Description    *string
	Address        *string
	City           *string
	Locality       *string
	FoodType       *string
	DailyPrice     *float64
	WeeklyPrice    *float64
	MonthlyPrice   *float64
	DeliveryRadius *int
	ImageURL       *string
	IsActive       *bool
}
