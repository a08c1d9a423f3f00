package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	timex "github.com/brtemplate/authgate/internal/pkg/time"
)

type Server struct {
	URL             string         `json:"url,omitempty"`
	Port            int            `json:"port,omitempty"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty"`
}

type DB struct {
	Driver          string         `json:"driver,omitempty"`
	URL             string         `json:"-"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
}

// LogValue hides the connection string, it carries credentials.
func (d *DB) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("driver", d.Driver),
		slog.Int("max_open_conns", d.MaxOpenConns),
		slog.Int("max_idle_conns", d.MaxIdleConns),
		slog.Duration("conn_max_idle_time", d.ConnMaxIdleTime.Duration),
		slog.Duration("conn_max_lifetime", d.ConnMaxLifetime.Duration),
		slog.Duration("ping_timeout", d.PingTimeout.Duration),
	)
}

type CORS struct {
	AllowedOrigin string `json:"allowed_origin,omitempty"`
}

type Argon2 struct {
	Memory     uint32 `json:"memory,omitempty"`
	Iterations uint32 `json:"iterations,omitempty"`
	Threads    uint8  `json:"threads,omitempty"`
	SaltLength uint32 `json:"salt_length,omitempty"`
	KeyLength  uint32 `json:"key_length,omitempty"`
}

type Bcrypt struct {
	Cost int `json:"cost,omitempty"`
}

const (
	HasherArgon2 = "argon2"
	HasherBcrypt = "bcrypt"
)

type Hasher struct {
	Algorithm string  `json:"algorithm,omitempty"`
	Argon2    *Argon2 `json:"argon2,omitempty"`
	Bcrypt    *Bcrypt `json:"bcrypt,omitempty"`
}

type Config struct {
	Server *Server `json:"server,omitempty"`
	DB     *DB     `json:"db,omitempty"`
	CORS   *CORS   `json:"cors,omitempty"`
	Hasher *Hasher `json:"hasher,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("server", c.Server),
		slog.Any("db", c.DB),
		slog.Any("cors", c.CORS),
		slog.Any("hasher", c.Hasher),
	)
}

const (
	envURL         = "URL"
	envPort        = "PORT"
	envDatabaseURL = "DATABASE_URL"
	envCORSOrigin  = "CORS_ORIGIN"
)

// Load reads the JSON config file and applies environment overrides.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := overrideWithEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", cfgFile, err)
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	cfg := &Config{
		Server: &Server{},
		DB:     &DB{},
		CORS:   &CORS{},
		Hasher: &Hasher{},
	}
	if err := json.Unmarshal(configFile, cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return cfg, nil
}

func overrideWithEnv(cfg *Config) error {
	if url, ok := os.LookupEnv(envURL); ok {
		cfg.Server.URL = url
	}

	if portStr, ok := os.LookupEnv(envPort); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("parse %s: %w", envPort, err)
		}
		cfg.Server.Port = port
	}

	if dbURL, ok := os.LookupEnv(envDatabaseURL); ok {
		cfg.DB.URL = dbURL
	}

	if origin, ok := os.LookupEnv(envCORSOrigin); ok {
		cfg.CORS.AllowedOrigin = origin
	}

	return nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d is out of range", c.Server.Port)
	}

	if c.Server.MaxBodyBytes <= 0 {
		return errors.New("server max_body_bytes must be positive")
	}

	switch c.Hasher.Algorithm {
	case HasherArgon2:
		if c.Hasher.Argon2 == nil {
			return errors.New("hasher algorithm is argon2 but argon2 options are missing")
		}
	case HasherBcrypt:
		if c.Hasher.Bcrypt == nil {
			c.Hasher.Bcrypt = &Bcrypt{}
		}
	default:
		return fmt.Errorf("unknown hasher algorithm %q", c.Hasher.Algorithm)
	}

	return nil
}
