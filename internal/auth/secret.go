package auth

import (
	"errors"
	"fmt"
	"os"
)

// EnvSecret is the environment variable holding the signing secret.
const EnvSecret = "JWT_SECRET"

// SecretProvider supplies the shared signing secret.
type SecretProvider interface {
	Secret() ([]byte, error)
}

// SecretFunc adapts a function to SecretProvider.
type SecretFunc func() ([]byte, error)

func (f SecretFunc) Secret() ([]byte, error) {
	return f()
}

// StaticSecret always returns the same secret.
type StaticSecret string

func (s StaticSecret) Secret() ([]byte, error) {
	if s == "" {
		return nil, errors.New("secret is empty")
	}
	return []byte(s), nil
}

type envSecretProvider struct {
	key string
}

var _ SecretProvider = (*envSecretProvider)(nil)

// NewEnvSecretProvider reads the secret from the named environment variable
// on every call.
func NewEnvSecretProvider(key string) SecretProvider {
	return &envSecretProvider{key: key}
}

func (p *envSecretProvider) Secret() ([]byte, error) {
	val, ok := os.LookupEnv(p.key)
	if !ok {
		return nil, fmt.Errorf("environment variable %s is not set", p.key)
	}
	if val == "" {
		return nil, fmt.Errorf("environment variable %s is empty", p.key)
	}
	return []byte(val), nil
}

func loadSecret(p SecretProvider) ([]byte, *Error) {
	secret, err := p.Secret()
	if err != nil {
		return nil, configError(err)
	}
	return secret, nil
}
