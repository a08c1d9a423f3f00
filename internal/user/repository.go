package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/brtemplate/authgate/internal/platform/db"
	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("user repository: user not found")
	ErrDuplicate = errors.New("user repository: email or document already registered")

	errPublicIDTaken = errors.New("user repository: public id already taken")
)

const constraintPublicID = "users_public_id_key"

type Repository interface {
	Create(ctx context.Context, params CreateParams) (User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Find(ctx context.Context, userID uuid.UUID) (*User, error)
	Update(ctx context.Context, userID uuid.UUID, params UpdateParams) error
}

type CreateParams struct {
	ID           uuid.UUID
	PublicID     int32
	Name         string
	Email        string
	Document     string
	PasswordHash string
	Birthdate    time.Time
	LoginType    string
	UserType     string
}

type UpdateParams struct {
	Name      string
	Email     string
	Document  string
	Birthdate time.Time
}

type repository struct {
	db db.Executor
}

var _ Repository = (*repository)(nil)

func NewRepository(exec db.Executor) Repository {
	return &repository{db: exec}
}

const userColumns = `id, public_id, name, email, document, password_hash, birthdate,
login_type, user_type, is_active, created_at, updated_at, deleted_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.PublicID, &u.Name, &u.Email, &u.Document, &u.PasswordHash, &u.Birthdate,
		&u.LoginType, &u.UserType, &u.IsActive, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

const queryCreate = `
INSERT INTO users (id, public_id, name, email, document, password_hash, birthdate, login_type, user_type)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + userColumns

func (r *repository) Create(ctx context.Context, params CreateParams) (User, error) {
	row := r.db.QueryRowContext(ctx, queryCreate,
		params.ID, params.PublicID, params.Name, params.Email, params.Document,
		params.PasswordHash, params.Birthdate, params.LoginType, params.UserType)

	u, err := scanUser(row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			if db.ConstraintName(err) == constraintPublicID {
				return User{}, errPublicIDTaken
			}
			return User{}, ErrDuplicate
		}
		return User{}, fmt.Errorf("insert user with email %s: %w", params.Email, err)
	}
	return *u, nil
}

const queryFindByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, queryFindByEmail, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user with email %s: %w", email, err)
	}
	return u, nil
}

const queryFind = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (r *repository) Find(ctx context.Context, userID uuid.UUID) (*User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, queryFind, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user with id %s: %w", userID, err)
	}
	return u, nil
}

const queryUpdate = `
UPDATE users
SET name = $2, email = $3, document = $4, birthdate = $5, updated_at = NOW()
WHERE id = $1`

func (r *repository) Update(ctx context.Context, userID uuid.UUID, params UpdateParams) error {
	res, err := r.db.ExecContext(ctx, queryUpdate, userID, params.Name, params.Email, params.Document, params.Birthdate)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update user with id %s: %w", userID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
