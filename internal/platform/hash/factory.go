package hash

import (
	"fmt"

	"github.com/brtemplate/authgate/internal/config"
)

// New returns the hasher selected by cfg.Algorithm.
func New(cfg *config.Hasher, pepper string) (Hasher, error) {
	switch cfg.Algorithm {
	case config.HasherArgon2:
		return NewArgon2Hasher(cfg.Argon2, pepper), nil
	case config.HasherBcrypt:
		return NewBcryptHasher(cfg.Bcrypt, pepper), nil
	default:
		return nil, fmt.Errorf("unknown hasher algorithm %q", cfg.Algorithm)
	}
}
