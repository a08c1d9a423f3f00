package db

import (
	"context"
	"fmt"
	"log/slog"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		public_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		document TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		birthdate DATE NOT NULL,
		login_type TEXT NOT NULL,
		user_type TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ NULL,
		CONSTRAINT users_public_id_key UNIQUE (public_id),
		CONSTRAINT users_email_key UNIQUE (email),
		CONSTRAINT users_document_key UNIQUE (document)
	)`,
}

// Migrate creates the tables the service needs. It is safe to run on every
// start.
func Migrate(ctx context.Context, exec Executor) error {
	slog.Info("Applying schema...")
	for i, stmt := range schema {
		if _, err := exec.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i, err)
		}
	}
	slog.Info("Schema applied.")
	return nil
}
