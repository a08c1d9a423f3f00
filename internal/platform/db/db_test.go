package db_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/brtemplate/authgate/internal/config"
	"github.com/brtemplate/authgate/internal/platform/db"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"Unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"Wrapped unique violation", fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505"}), true},
		{"Foreign key violation", &pgconn.PgError{Code: "23503"}, false},
		{"Other error", errors.New("boom"), false},
		{"Nil", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := db.IsUniqueViolation(tc.err); got != tc.want {
				t.Errorf("db.IsUniqueViolation(%v) = %v, want: %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestConnect_EmptyURL(t *testing.T) {
	t.Parallel()

	if _, err := db.Connect(context.Background(), &config.DB{Driver: "pgx"}); err == nil {
		t.Error("db.Connect() = nil, want: error")
	}
}
