package app

import (
	"database/sql"
	"fmt"

	"github.com/brtemplate/authgate/internal/auth"
	"github.com/brtemplate/authgate/internal/config"
	"github.com/brtemplate/authgate/internal/platform/hash"
	"github.com/brtemplate/authgate/internal/platform/router"
	"github.com/brtemplate/authgate/internal/platform/validation"
	"github.com/brtemplate/authgate/internal/user"
)

type Provider struct {
	DB        *sql.DB
	Hasher    hash.Hasher
	Secrets   auth.SecretProvider
	Validator validation.Validator
	Router    router.Router
}

func newProvider(cfg *config.Config, dbConn *sql.DB, pepper string) (*Provider, error) {
	hasher, err := hash.New(cfg.Hasher, pepper)
	if err != nil {
		return nil, fmt.Errorf("new hasher: %w", err)
	}

	provider := &Provider{
		DB:        dbConn,
		Hasher:    hasher,
		Secrets:   auth.NewEnvSecretProvider(auth.EnvSecret),
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
	}

	return provider, nil
}

// services holds what the routes need once the providers are wired.
type services struct {
	user user.Service
	gate *auth.Gate
}

func newServices(p *Provider) *services {
	issuer := auth.NewIssuer(p.Secrets)
	gate := auth.NewGate(auth.NewVerifier(p.Secrets))
	repo := user.NewRepository(p.DB)

	return &services{
		user: user.NewService(repo, p.Hasher, issuer),
		gate: gate,
	}
}
