package reviews

import "time"

// Review mirrors the reviews table. Reviews are immutable after creation;
// inserting one triggers the vendor rating recompute.
type Review struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	VendorID  int64     `json:"vendor_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// VendorReview is a review joined with the author's display name.
type VendorReview struct {
	Review
	UserName string `json:"user_name"`
}

// CreateParams represents validated data needed to insert a review.
type CreateParams struct {
	UserID   int64
	VendorID int64
	Rating   int
	Comment  *string
}
