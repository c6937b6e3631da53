package subscriptions

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles persistence for subscriptions and owns schedule
// expansion.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the subscription and its full delivery schedule in one
// transaction. Either the subscription lands with every daily delivery
// row, or nothing is persisted; a failure on any day rolls back the
// subscription insert too.
func (r *Repository) Create(ctx context.Context, params CreateParams) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin create subscription: %w", err)
	}
	defer tx.Rollback()

	const insertSubscription = `
		INSERT INTO subscriptions (user_id, vendor_id, plan_type, start_date, end_date, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'active')
		RETURNING id`

	var id int64
	if err := tx.QueryRowContext(ctx, insertSubscription,
		params.UserID,
		params.VendorID,
		params.PlanType,
		params.StartDate,
		params.EndDate,
		params.TotalAmount,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert subscription: %w", err)
	}

	const insertDelivery = `
		INSERT INTO deliveries (subscription_id, delivery_date, status)
		VALUES ($1, $2, 'pending')`

	for _, day := range scheduleDates(params.StartDate, params.EndDate) {
		if _, err := tx.ExecContext(ctx, insertDelivery, id, day); err != nil {
			return 0, fmt.Errorf("insert delivery for %s: %w", day, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create subscription: %w", err)
	}

	return id, nil
}

// SetStatus overwrites the subscription status. Returns whether a row
// matched the id; an unknown id is not an error.
func (r *Repository) SetStatus(ctx context.Context, id int64, status Status) (bool, error) {
	const query = `UPDATE subscriptions SET status = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return false, fmt.Errorf("update subscription status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("subscription status rows affected: %w", err)
	}
	return affected > 0, nil
}

const subscriptionColumns = `s.id, s.user_id, s.vendor_id, s.plan_type, s.start_date, s.end_date, s.total_amount, s.status, s.created_at`

// GetByID returns a subscription joined with vendor and user display
// fields. sql.ErrNoRows passes through for missing ids.
func (r *Repository) GetByID(ctx context.Context, id int64) (Detail, error) {
	query := `
		SELECT ` + subscriptionColumns + `, v.name, v.food_type, v.image_url, u.name
		FROM subscriptions s
		JOIN vendors v ON s.vendor_id = v.id
		JOIN users u ON s.user_id = u.id
		WHERE s.id = $1`

	var d Detail
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID,
		&d.UserID,
		&d.VendorID,
		&d.PlanType,
		&d.StartDate,
		&d.EndDate,
		&d.TotalAmount,
		&d.Status,
		&d.CreatedAt,
		&d.VendorName,
		&d.FoodType,
		&d.ImageURL,
		&d.UserName,
	); err != nil {
		if err == sql.ErrNoRows {
			return Detail{}, err
		}
		return Detail{}, fmt.Errorf("select subscription: %w", err)
	}

	return d, nil
}

// ListByUser returns a user's subscriptions, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]UserView, error) {
	query := `
		SELECT ` + subscriptionColumns + `, v.name, v.food_type, v.image_url
		FROM subscriptions s
		JOIN vendors v ON s.vendor_id = v.id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list user subscriptions: %w", err)
	}
	defer rows.Close()

	var result []UserView
	for rows.Next() {
		var v UserView
		if err := rows.Scan(
			&v.ID,
			&v.UserID,
			&v.VendorID,
			&v.PlanType,
			&v.StartDate,
			&v.EndDate,
			&v.TotalAmount,
			&v.Status,
			&v.CreatedAt,
			&v.VendorName,
			&v.FoodType,
			&v.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan user subscription: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user subscriptions: %w", err)
	}

	return result, nil
}

// ListByVendor returns a vendor's subscriptions, newest first.
func (r *Repository) ListByVendor(ctx context.Context, vendorID int64) ([]VendorView, error) {
	query := `
		SELECT ` + subscriptionColumns + `, u.name, u.email, u.phone
		FROM subscriptions s
		JOIN users u ON s.user_id = u.id
		WHERE s.vendor_id = $1
		ORDER BY s.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list vendor subscriptions: %w", err)
	}
	defer rows.Close()

	var result []VendorView
	for rows.Next() {
		var v VendorView
		if err := rows.Scan(
			&v.ID,
			&v.UserID,
			&v.VendorID,
			&v.PlanType,
			&v.StartDate,
			&v.EndDate,
			&v.TotalAmount,
			&v.Status,
			&v.CreatedAt,
			&v.UserName,
			&v.UserEmail,
			&v.UserPhone,
		); err != nil {
			return nil, fmt.Errorf("scan vendor subscription: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vendor subscriptions: %w", err)
	}

	return result, nil
}
