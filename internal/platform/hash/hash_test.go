package hash_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/brtemplate/authgate/internal/config"
	"github.com/brtemplate/authgate/internal/platform/hash"
)

var argon2Opts = &config.Argon2{
	Memory:     16 * 1024,
	Iterations: 1,
	Threads:    1,
	SaltLength: 16,
	KeyLength:  32,
}

func TestArgon2Hasher_Hash(t *testing.T) {
	t.Parallel()

	hasher := hash.NewArgon2Hasher(argon2Opts, "paminta")
	hashed, err := hasher.Hash("rice")
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(hashed, "$")
	if gotLen, wantLen := len(parts), 6; gotLen != wantLen {
		t.Fatalf("len(parts) = %d, want: %d", gotLen, wantLen)
	}
	if got, want := parts[1], "argon2id"; got != want {
		t.Errorf("parts[1] = %s, want: %s", got, want)
	}

	again, err := hasher.Hash("rice")
	if err != nil {
		t.Fatal(err)
	}
	if again == hashed {
		t.Error("two hashes of the same password are equal, want: distinct salts")
	}
}

func TestHasher_Verify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		hasher hash.Hasher
	}{
		{"argon2", hash.NewArgon2Hasher(argon2Opts, "paminta")},
		{"bcrypt", hash.NewBcryptHasher(&config.Bcrypt{Cost: 4}, "paminta")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			hashed, err := tc.hasher.Hash("rice")
			if err != nil {
				t.Fatal(err)
			}

			matches, err := tc.hasher.Verify("rice", hashed)
			if err != nil {
				t.Fatal(err)
			}
			if !matches {
				t.Errorf("hasher.Verify(%q) = %v, want: %v", "rice", matches, true)
			}

			matches, err = tc.hasher.Verify("garlic", hashed)
			if err != nil {
				t.Fatal(err)
			}
			if matches {
				t.Errorf("hasher.Verify(%q) = %v, want: %v", "garlic", matches, false)
			}
		})
	}
}

func TestArgon2Hasher_Verify_InvalidHash(t *testing.T) {
	t.Parallel()

	hasher := hash.NewArgon2Hasher(argon2Opts, "")
	_, err := hasher.Verify("rice", "$2a$10$notargon")
	if !errors.Is(err, hash.ErrInvalidHash) {
		t.Errorf("hasher.Verify() = %v, want: %v", err, hash.ErrInvalidHash)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     *config.Hasher
		wantErr bool
	}{
		{"argon2", &config.Hasher{Algorithm: config.HasherArgon2, Argon2: argon2Opts}, false},
		{"bcrypt", &config.Hasher{Algorithm: config.HasherBcrypt, Bcrypt: &config.Bcrypt{}}, false},
		{"unknown", &config.Hasher{Algorithm: "md5"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			hasher, err := hash.New(tc.cfg, "")
			if (err != nil) != tc.wantErr {
				t.Fatalf("hash.New() = %v, wantErr: %v", err, tc.wantErr)
			}
			if !tc.wantErr && hasher == nil {
				t.Error("hash.New() returned nil hasher")
			}
		})
	}
}
