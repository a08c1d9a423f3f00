package user

import (
	"log/slog"
	"time"

	"github.com/brtemplate/authgate/internal/auth"
	"github.com/brtemplate/authgate/internal/model"
)

const DateLayout = time.DateOnly

type User struct {
	model.Model

	PublicID     int32
	Name         string
	Email        string
	Document     string
	PasswordHash string
	Birthdate    time.Time
	LoginType    string
	UserType     string
	IsActive     bool
}

// Active is false for disabled or soft deleted accounts.
func (u *User) Active() bool {
	return u.IsActive && !u.Deleted()
}

// Identity is what gets embedded in an access token.
func (u *User) Identity() auth.Identity {
	return auth.Identity{
		ID:       u.ID,
		PublicID: u.PublicID,
		Email:    u.Email,
		UserType: u.UserType,
	}
}

func (u *User) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", u.ID.String()),
		slog.Int("public_id", int(u.PublicID)),
		slog.String("user_type", u.UserType),
		slog.Bool("is_active", u.IsActive),
	)
}
