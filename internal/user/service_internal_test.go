package user

import (
	"context"
	"errors"
	"testing"

	"github.com/brtemplate/authgate/internal/auth"
	"github.com/brtemplate/authgate/internal/platform/hash"
)

func TestService_Register_RetriesPublicIDCollision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		collisions int
		wantCalls  int
		wantErr    bool
	}{
		{"First id is free", 0, 1, false},
		{"One collision", 1, 2, false},
		{"Out of attempts", publicIDAttempts, publicIDAttempts, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var calls int
			repo := &StubRepo{
				CreateFunc: func(_ context.Context, params CreateParams) (User, error) {
					calls++
					if calls <= tc.collisions {
						return User{}, errPublicIDTaken
					}
					return User{PublicID: params.PublicID}, nil
				},
			}
			hasher := &hash.StubHasher{HashFunc: func(plain string) (string, error) { return plain, nil }}

			svc := NewService(repo, hasher, auth.NewIssuer(auth.StaticSecret("x"))).(*service)
			next := int32(minPublicID)
			svc.publicID = func() int32 {
				next++
				return next
			}

			u, err := svc.Register(context.Background(), RegisterParams{
				Name:      "Alice",
				Email:     "alice@example.com",
				Document:  "52998224725",
				Password:  "pw",
				Birthdate: "1990-05-17",
				LoginType: "email",
				UserType:  "admin",
			})
			if (err != nil) != tc.wantErr {
				t.Fatalf("svc.Register() = %v, wantErr: %v", err, tc.wantErr)
			}
			if tc.wantErr && !errors.Is(err, errPublicIDTaken) {
				t.Errorf("svc.Register() = %v, want: %v", err, errPublicIDTaken)
			}
			if calls != tc.wantCalls {
				t.Errorf("repo.Create calls = %d, want: %d", calls, tc.wantCalls)
			}
			if !tc.wantErr && u.PublicID != next {
				t.Errorf("u.PublicID = %d, want: %d", u.PublicID, next)
			}
		})
	}
}

func TestRandomPublicID(t *testing.T) {
	t.Parallel()

	for range 1000 {
		if id := randomPublicID(); id < minPublicID || id > maxPublicID {
			t.Fatalf("randomPublicID() = %d, want: within [%d, %d]", id, minPublicID, maxPublicID)
		}
	}
}
