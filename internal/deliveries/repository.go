package deliveries

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository handles persistence for delivery records.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, subscription_id, delivery_date, status, delivered_at, notes`

// ListBySubscription returns the subscription's deliveries in date order,
// optionally narrowed to one calendar month.
func (r *Repository) ListBySubscription(ctx context.Context, subscriptionID int64, filter *MonthFilter) ([]Delivery, error) {
	query := `SELECT ` + selectColumns + ` FROM deliveries WHERE subscription_id = $1`
	args := []any{subscriptionID}

	if filter != nil {
		args = append(args, int(filter.Month))
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM delivery_date) = $%d", len(args))
		args = append(args, filter.Year)
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM delivery_date) = $%d", len(args))
	}

	query += " ORDER BY delivery_date ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	var result []Delivery
	for rows.Next() {
		var d Delivery
		if err := rows.Scan(
			&d.ID,
			&d.SubscriptionID,
			&d.DeliveryDate,
			&d.Status,
			&d.DeliveredAt,
			&d.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		result = append(result, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deliveries: %w", err)
	}

	return result, nil
}

// UpdateStatus overwrites a delivery's status and notes. delivered_at is
// stamped only when the new status is delivered and cleared otherwise, so
// a reverted delivery never keeps a stale timestamp. Returns whether a
// row matched the id.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status, notes *string) (bool, error) {
	var deliveredAt *time.Time
	if status == StatusDelivered {
		now := time.Now().UTC()
		deliveredAt = &now
	}

	const query = `UPDATE deliveries SET status = $1, delivered_at = $2, notes = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, status, deliveredAt, notes, id)
	if err != nil {
		return false, fmt.Errorf("update delivery: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update delivery rows affected: %w", err)
	}
	return affected > 0, nil
}

// Stats counts the subscription's deliveries per status. Skipped rows
// count toward the total only. No matching rows yields all zeros.
func (r *Repository) Stats(ctx context.Context, subscriptionID int64, filter *MonthFilter) (Stats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'delivered' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'missed' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0)
		FROM deliveries
		WHERE subscription_id = $1`
	args := []any{subscriptionID}

	if filter != nil {
		args = append(args, int(filter.Month))
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM delivery_date) = $%d", len(args))
		args = append(args, filter.Year)
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM delivery_date) = $%d", len(args))
	}

	var stats Stats
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&stats.Total,
		&stats.Delivered,
		&stats.Missed,
		&stats.Pending,
	); err != nil {
		return Stats{}, fmt.Errorf("delivery stats: %w", err)
	}

	return stats, nil
}
