package reviews

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles persistence for reviews and keeps the vendor rating
// cache in sync.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the review and recomputes the vendor's rating cache in
// the same transaction, so concurrent reviews for one vendor cannot lose
// an update. The recompute is a full AVG/COUNT over the vendor's reviews
// rather than an incremental sum; at expected review volumes the O(n)
// scan is fine.
func (r *Repository) Create(ctx context.Context, params CreateParams) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin create review: %w", err)
	}
	defer tx.Rollback()

	const insertReview = `
		INSERT INTO reviews (user_id, vendor_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	if err := tx.QueryRowContext(ctx, insertReview,
		params.UserID,
		params.VendorID,
		params.Rating,
		params.Comment,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert review: %w", err)
	}

	// Single statement keeps the read and write atomic at the SQL level
	// as well. With zero reviews AVG is NULL, which is the correct cache
	// value for an unrated vendor.
	const recompute = `
		UPDATE vendors
		SET rating = (SELECT AVG(rating) FROM reviews WHERE vendor_id = $1),
		    total_ratings = (SELECT COUNT(*) FROM reviews WHERE vendor_id = $1)
		WHERE id = $1`

	if _, err := tx.ExecContext(ctx, recompute, params.VendorID); err != nil {
		return 0, fmt.Errorf("recompute vendor rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create review: %w", err)
	}

	return id, nil
}

// ListByVendor returns a vendor's reviews with author names, newest first.
func (r *Repository) ListByVendor(ctx context.Context, vendorID int64) ([]VendorReview, error) {
	const query = `
		SELECT r.id, r.user_id, r.vendor_id, r.rating, r.comment, r.created_at, u.name
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.vendor_id = $1
		ORDER BY r.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var result []VendorReview
	for rows.Next() {
		var v VendorReview
		if err := rows.Scan(
			&v.ID,
			&v.UserID,
			&v.VendorID,
			&v.Rating,
			&v.Comment,
			&v.CreatedAt,
			&v.UserName,
		); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}

	return result, nil
}
