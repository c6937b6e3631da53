package deliveries

import (
	"time"

	"github.com/tiffinmate/tiffinmate/internal/dates"
)

// Status enumerates the states a delivery record can hold. Any status may
// move to any other; only membership is checked.
type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusMissed    Status = "missed"
	StatusSkipped   Status = "skipped"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusDelivered, StatusMissed, StatusSkipped:
		return true
	}
	return false
}

// Delivery mirrors the deliveries table: one row per calendar day of the
// owning subscription's date range.
type Delivery struct {
	ID             int64      `json:"id"`
	SubscriptionID int64      `json:"subscription_id"`
	DeliveryDate   dates.Date `json:"delivery_date"`
	Status         Status     `json:"status"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

// Stats aggregates delivery counts for one subscription. Skipped rows are
// part of Total but have no bucket of their own, so
// Total = Delivered + Missed + Pending + skipped.
type Stats struct {
	Total     int `json:"total"`
	Delivered int `json:"delivered"`
	Missed    int `json:"missed"`
	Pending   int `json:"pending"`
}

// MonthFilter restricts a query to deliveries dated within one calendar
// month. A nil *MonthFilter means no restriction; the filter only exists
// when both month and year were supplied.
type MonthFilter struct {
	Month time.Month
	Year  int
}
