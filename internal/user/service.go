package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/brtemplate/authgate/internal/auth"
	"github.com/brtemplate/authgate/internal/pkg/document"
	"github.com/brtemplate/authgate/internal/platform/hash"
	"github.com/google/uuid"
)

var (
	ErrNotActive       = errors.New("user service: user is not active")
	ErrInvalidPassword = errors.New("user service: invalid password")
)

const (
	minPublicID      = 1_000_000
	maxPublicID      = 9_999_999
	publicIDAttempts = 3
)

// TokenIssuer signs access tokens. *auth.Issuer satisfies it.
type TokenIssuer interface {
	Issue(identity auth.Identity) (string, error)
}

type Service interface {
	Register(ctx context.Context, params RegisterParams) (User, error)
	Login(ctx context.Context, params LoginParams) (string, error)
	Update(ctx context.Context, userID uuid.UUID, params UpdateParams) error
}

type RegisterParams struct {
	Name      string
	Email     string
	Document  string
	Password  string
	Birthdate string
	LoginType string
	UserType  string
}

func (p RegisterParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
		slog.String("login_type", p.LoginType),
		slog.String("user_type", p.UserType),
	)
}

type LoginParams struct {
	Email    string
	Password string
}

func (p LoginParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type service struct {
	repo     Repository
	hasher   hash.Hasher
	issuer   TokenIssuer
	publicID func() int32
}

var _ Service = (*service)(nil)

func NewService(repo Repository, hasher hash.Hasher, issuer TokenIssuer) Service {
	return &service{
		repo:     repo,
		hasher:   hasher,
		issuer:   issuer,
		publicID: randomPublicID,
	}
}

func randomPublicID() int32 {
	return minPublicID + rand.Int32N(maxPublicID-minPublicID+1)
}

// Register stores a new active account. The document is kept formatted and
// the password is only stored hashed.
func (s *service) Register(ctx context.Context, params RegisterParams) (User, error) {
	doc, err := document.Format(params.Document)
	if err != nil {
		return User{}, fmt.Errorf("format document: %w", err)
	}

	birthdate, err := parseDate(params.Birthdate)
	if err != nil {
		return User{}, err
	}

	passwordHash, err := s.hasher.Hash(strings.TrimSpace(params.Password))
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	create := CreateParams{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(params.Name),
		Email:        strings.TrimSpace(params.Email),
		Document:     doc,
		PasswordHash: passwordHash,
		Birthdate:    birthdate,
		LoginType:    strings.TrimSpace(params.LoginType),
		UserType:     strings.TrimSpace(params.UserType),
	}

	for range publicIDAttempts {
		create.PublicID = s.publicID()
		u, err := s.repo.Create(ctx, create)
		if errors.Is(err, errPublicIDTaken) {
			slog.Warn("public id collision, retrying", "public_id", create.PublicID)
			continue
		}
		if err != nil {
			return User{}, fmt.Errorf("create user: %w", err)
		}
		slog.Info("User registered.", slog.Any("user", &u))
		return u, nil
	}

	return User{}, fmt.Errorf("create user after %d attempts: %w", publicIDAttempts, errPublicIDTaken)
}

// Login checks the credentials and returns a signed access token.
func (s *service) Login(ctx context.Context, params LoginParams) (string, error) {
	email := strings.TrimSpace(params.Email)
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("find user by email: %w", err)
	}

	if !u.Active() {
		return "", ErrNotActive
	}

	ok, err := s.hasher.Verify(strings.TrimSpace(params.Password), u.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("verify password for user %s: %w", u.ID, err)
	}
	if !ok {
		return "", ErrInvalidPassword
	}

	token, err := s.issuer.Issue(u.Identity())
	if err != nil {
		return "", fmt.Errorf("issue token for user %s: %w", u.ID, err)
	}

	return token, nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, params UpdateParams) error {
	if _, err := s.repo.Find(ctx, userID); err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	doc, err := document.Format(params.Document)
	if err != nil {
		return fmt.Errorf("format document: %w", err)
	}

	params.Name = strings.TrimSpace(params.Name)
	params.Email = strings.TrimSpace(params.Email)
	params.Document = doc

	if err := s.repo.Update(ctx, userID, params); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
