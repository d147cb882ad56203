package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/up4/up4-api/internal/pkg/database"
)

// Repository defines user data access interface
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, user *User) error
	UpdatePreferences(ctx context.Context, id uuid.UUID, minAge, maxAge int, genderPrefs []string) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// repository implements Repository
type repository struct {
	db *sqlx.DB
}

// NewRepository creates new user repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create creates a new user
func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, email, name, age, gender, min_age_pref, max_age_pref, gender_prefs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.Age,
		user.Gender,
		user.MinAgePref,
		user.MaxAgePref,
		user.GenderPrefs,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrEmailAlreadyExists
		}
		return database.MapError("user create", err)
	}

	return nil
}

// GetByID returns user by ID
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `
		SELECT id, email, name, age, gender, min_age_pref, max_age_pref, gender_prefs,
		       created_at, updated_at
		FROM users WHERE id = $1
	`
	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, database.MapError("user get by id", err)
	}

	return &user, nil
}

// GetByEmail returns user by email
func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, name, age, gender, min_age_pref, max_age_pref, gender_prefs,
		       created_at, updated_at
		FROM users WHERE email = $1
	`
	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, database.MapError("user get by email", err)
	}

	return &user, nil
}

// UpdateProfile updates mutable profile fields
func (r *repository) UpdateProfile(ctx context.Context, user *User) error {
	query := `
		UPDATE users
		SET name = $2, age = $3, gender = $4, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Age, user.Gender)
	if err != nil {
		return database.MapError("user update profile", err)
	}
	return nil
}

// UpdatePreferences updates matching preferences and returns the updated user
func (r *repository) UpdatePreferences(ctx context.Context, id uuid.UUID, minAge, maxAge int, genderPrefs []string) (*User, error) {
	if minAge > maxAge {
		return nil, ErrInvalidAgeRange
	}

	query := `
		UPDATE users
		SET min_age_pref = $2, max_age_pref = $3, gender_prefs = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, email, name, age, gender, min_age_pref, max_age_pref, gender_prefs, created_at, updated_at
	`
	var user User
	err := r.db.GetContext(ctx, &user, query, id, minAge, maxAge, pq.StringArray(genderPrefs))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, database.MapError("user update preferences", err)
	}
	return &user, nil
}

// Delete removes a user. Relationship and attendance edges referencing the
// user are removed by ON DELETE CASCADE on user_likes, user_blocks and
// event_attendance.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return database.MapError("user delete", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}
