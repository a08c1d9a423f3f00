package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type StubService struct {
	RegisterFunc func(ctx context.Context, params RegisterParams) (User, error)
	LoginFunc    func(ctx context.Context, params LoginParams) (string, error)
	UpdateFunc   func(ctx context.Context, userID uuid.UUID, params UpdateParams) error
}

var _ Service = (*StubService)(nil)

func (s *StubService) Register(ctx context.Context, params RegisterParams) (User, error) {
	if s.RegisterFunc == nil {
		return User{}, errors.New("Register() not implemented by stub")
	}
	return s.RegisterFunc(ctx, params)
}

func (s *StubService) Login(ctx context.Context, params LoginParams) (string, error) {
	if s.LoginFunc == nil {
		return "", errors.New("Login() not implemented by stub")
	}
	return s.LoginFunc(ctx, params)
}

func (s *StubService) Update(ctx context.Context, userID uuid.UUID, params UpdateParams) error {
	if s.UpdateFunc == nil {
		return errors.New("Update() not implemented by stub")
	}
	return s.UpdateFunc(ctx, userID, params)
}

type StubRepo struct {
	CreateFunc      func(ctx context.Context, params CreateParams) (User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*User, error)
	FindFunc        func(ctx context.Context, userID uuid.UUID) (*User, error)
	UpdateFunc      func(ctx context.Context, userID uuid.UUID, params UpdateParams) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (User, error) {
	if r.CreateFunc == nil {
		return User{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	if r.FindByEmailFunc == nil {
		return nil, errors.New("FindByEmail() not implemented by stub")
	}
	return r.FindByEmailFunc(ctx, email)
}

func (r *StubRepo) Find(ctx context.Context, userID uuid.UUID) (*User, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, userID)
}

func (r *StubRepo) Update(ctx context.Context, userID uuid.UUID, params UpdateParams) error {
	if r.UpdateFunc == nil {
		return errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, userID, params)
}
