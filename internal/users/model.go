package users

import "time"

// User mirrors the users table.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   *string   `json:"address,omitempty"`
	City      *string   `json:"city,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateParams represents validated data needed to insert a user.
type CreateParams struct {
	Name    string
	Email   string
	Phone   string
	Address *string
	City    *string
}
