package users

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles persistence for users.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, name, email, phone, address, city, created_at`

func scanUser(row interface{ Scan(...any) error }) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.City, &u.CreatedAt)
	return u, err
}

// List returns every user.
func (r *Repository) List(ctx context.Context) ([]User, error) {
	query := `SELECT ` + selectColumns + ` FROM users`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var result []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		result = append(result, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return result, nil
}

// GetByID returns one user. sql.ErrNoRows passes through.
func (r *Repository) GetByID(ctx context.Context, id int64) (User, error) {
	query := `SELECT ` + selectColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, err
		}
		return User{}, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

// Create inserts a user and returns its id.
func (r *Repository) Create(ctx context.Context, params CreateParams) (int64, error) {
	const query = `
		INSERT INTO users (name, email, phone, address, city)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	if err := r.db.QueryRowContext(ctx, query,
		params.Name,
		params.Email,
		params.Phone,
		params.Address,
		params.City,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}

// Search finds a user by email, or by phone when email is empty. The
// handler guarantees at least one is set.
func (r *Repository) Search(ctx context.Context, email, phone string) (User, error) {
	query := `SELECT ` + selectColumns + ` FROM users WHERE `
	var arg string
	if email != "" {
		query += "email = $1"
		arg = email
	} else {
		query += "phone = $1"
		arg = phone
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, err
		}
		return User{}, fmt.Errorf("search user: %w", err)
	}
	return u, nil
}
