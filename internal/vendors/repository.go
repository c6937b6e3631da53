package vendors

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Repository handles persistence for vendors.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, name, email, phone, description, address, city, locality, food_type,
	daily_price, weekly_price, monthly_price, delivery_radius, image_url,
	rating, total_ratings, happy_customers, is_active, created_at`

func scanVendor(row interface{ Scan(...any) error }) (Vendor, error) {
	var v Vendor
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Email,
		&v.Phone,
		&v.Description,
		&v.Address,
		&v.City,
		&v.Locality,
		&v.FoodType,
		&v.DailyPrice,
		&v.WeeklyPrice,
		&v.MonthlyPrice,
		&v.DeliveryRadius,
		&v.ImageURL,
		&v.Rating,
		&v.TotalRatings,
		&v.HappyCustomers,
		&v.IsActive,
		&v.CreatedAt,
	)
	return v, err
}

// List returns active vendors matching the filter.
func (r *Repository) List(ctx context.Context, filter Filter) ([]Vendor, error) {
	query := `SELECT ` + selectColumns + ` FROM vendors WHERE is_active = TRUE`
	args := []any{}

	if filter.City != nil {
		args = append(args, *filter.City)
		query += fmt.Sprintf(" AND lower(city) = lower($%d)", len(args))
	}
	if filter.Locality != nil {
		args = append(args, "%"+*filter.Locality+"%")
		query += fmt.Sprintf(" AND locality ILIKE $%d", len(args))
	}
	if filter.FoodType != nil {
		args = append(args, *filter.FoodType)
		query += fmt.Sprintf(" AND (food_type = $%d OR food_type = 'Mixed')", len(args))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		query += fmt.Sprintf(" AND monthly_price >= $%d", len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		query += fmt.Sprintf(" AND monthly_price <= $%d", len(args))
	}
	if filter.DeliveryRadius != nil {
		args = append(args, *filter.DeliveryRadius)
		query += fmt.Sprintf(" AND delivery_radius >= $%d", len(args))
	}

	switch filter.SortBy {
	case SortPriceLow:
		query += " ORDER BY monthly_price ASC"
	case SortPriceHigh:
		query += " ORDER BY monthly_price DESC"
	case SortRating:
		query += " ORDER BY rating DESC NULLS LAST"
	default:
		query += " ORDER BY rating DESC NULLS LAST, happy_customers DESC"
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var result []Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vendors: %w", err)
	}

	return result, nil
}

// GetByID returns one vendor, active or not. sql.ErrNoRows passes through.
func (r *Repository) GetByID(ctx context.Context, id int64) (Vendor, error) {
	query := `SELECT ` + selectColumns + ` FROM vendors WHERE id = $1`

	v, err := scanVendor(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Vendor{}, err
		}
		return Vendor{}, fmt.Errorf("select vendor: %w", err)
	}
	return v, nil
}

// Login looks up an active vendor by the email/phone credential pair.
func (r *Repository) Login(ctx context.Context, email, phone string) (Vendor, error) {
	query := `SELECT ` + selectColumns + ` FROM vendors WHERE email = $1 AND phone = $2 AND is_active = TRUE`

	v, err := scanVendor(r.db.QueryRowContext(ctx, query, email, phone))
	if err != nil {
		if err == sql.ErrNoRows {
			return Vendor{}, err
		}
		return Vendor{}, fmt.Errorf("vendor login: %w", err)
	}
	return v, nil
}

// Create inserts a vendor and returns its id.
func (r *Repository) Create(ctx context.Context, params CreateParams) (int64, error) {
	const query = `
		INSERT INTO vendors (name, email, phone, description, address, city, locality,
			food_type, daily_price, weekly_price, monthly_price, delivery_radius, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	var id int64
	if err := r.db.QueryRowContext(ctx, query,
		params.Name,
		params.Email,
		params.Phone,
		params.Description,
		params.Address,
		params.City,
		params.Locality,
		params.FoodType,
		params.DailyPrice,
		params.WeeklyPrice,
		params.MonthlyPrice,
		params.DeliveryRadius,
		params.ImageURL,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert vendor: %w", err)
	}

	return id, nil
}

// Update overwrites the supplied fields. Returns whether a row matched.
func (r *Repository) Update(ctx context.Context, id int64, params UpdateParams) (bool, error) {
	setParts := []string{}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.Email != nil {
		add("email", *params.Email)
	}
	if params.Phone != nil {
		add("phone", *params.Phone)
	}
	if params.Description != nil {
		add("description", *params.Description)
	}
	if params.Address != nil {
		add("address", *params.Address)
	}
	if params.City != nil {
		add("city", *params.City)
	}
	if params.Locality != nil {
		add("locality", *params.Locality)
	}
	if params.FoodType != nil {
		add("food_type", *params.FoodType)
	}
	if params.DailyPrice != nil {
		add("daily_price", *params.DailyPrice)
	}
	if params.WeeklyPrice != nil {
		add("weekly_price", *params.WeeklyPrice)
	}
	if params.MonthlyPrice != nil {
		add("monthly_price", *params.MonthlyPrice)
	}
	if params.DeliveryRadius != nil {
		add("delivery_radius", *params.DeliveryRadius)
	}
	if params.ImageURL != nil {
		add("image_url", *params.ImageURL)
	}
	if params.IsActive != nil {
		add("is_active", *params.IsActive)
	}

	if len(setParts) == 0 {
		return false, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE vendors SET %s WHERE id = $%d", strings.Join(setParts, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update vendor: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update vendor rows affected: %w", err)
	}
	return affected > 0, nil
}
