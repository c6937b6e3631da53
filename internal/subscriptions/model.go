package subscriptions

import (
	"time"

	"github.com/tiffinmate/tiffinmate/internal/dates"
)

// PlanType enumerates the billing cadence of a subscription.
type PlanType string

const (
	PlanDaily   PlanType = "daily"
	PlanWeekly  PlanType = "weekly"
	PlanMonthly PlanType = "monthly"
)

func (p PlanType) IsValid() bool {
	switch p {
	case PlanDaily, PlanWeekly, PlanMonthly:
		return true
	}
	return false
}

// Status enumerates subscription states. Unlike delivery statuses this set
// is enforced on writes.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCancelled:
		return true
	}
	return false
}

// Subscription mirrors the subscriptions table. Dates are inclusive on
// both ends; the delivery set is fixed at creation time and the date range
// is immutable afterwards.
type Subscription struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	VendorID    int64      `json:"vendor_id"`
	PlanType    PlanType   `json:"plan_type"`
	StartDate   dates.Date `json:"start_date"`
	EndDate     dates.Date `json:"end_date"`
	TotalAmount float64    `json:"total_amount"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateParams represents validated data needed to create a subscription
// together with its delivery schedule.
type CreateParams struct {
	UserID      int64
	VendorID    int64
	PlanType    PlanType
	StartDate   dates.Date
	EndDate     dates.Date
	TotalAmount float64
}

// Detail is a single subscription joined with vendor and user display
// fields.
type Detail struct {
	Subscription
	VendorName string  `json:"vendor_name"`
	FoodType   *string `json:"food_type,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
	UserName   string  `json:"user_name"`
}

// UserView is a subscription as shown on a user's dashboard.
type UserView struct {
	Subscription
	VendorName string  `json:"vendor_name"`
	FoodType   *string `json:"food_type,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
}

// VendorView is a subscription as shown on a vendor's dashboard.
type VendorView struct {
	Subscription
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserPhone string `json:"user_phone"`
}
