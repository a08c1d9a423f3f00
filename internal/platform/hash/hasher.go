package hash

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// Hasher turns a plain password into a storable hash and checks it back.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}

var ErrInvalidHash = errors.New("invalid hash format")

func randomBytes(length uint32) ([]byte, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("read %d random bytes: %w", length, err)
	}
	return b, nil
}
