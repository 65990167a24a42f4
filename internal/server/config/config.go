// Package config handles configuration for the contactdesk server:
// defaults, environment (optionally from a .env file), a JSON overlay and
// command-line flags, applied in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the contactdesk server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP API.
//   - DatabaseDSN: store location; the scheme picks the backend
//     (memory://, postgres://, mongodb://).
//   - MongoDatabase: database name used with a mongodb DSN.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - TokenValidityDuration: session token lifetime.
//   - PasswordHashCost: bcrypt cost factor.
//   - AllowedOrigins: CORS whitelist.
//   - RequestTimeout: per-request deadline applied by the transport.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP      string
	DatabaseDSN           string
	MongoDatabase         string
	SecretKey             string
	TokenValidityDuration time.Duration
	PasswordHashCost      int
	AllowedOrigins        []string
	RequestTimeout        time.Duration
	LogLevel              string
}

// LoadDefaults populates Config with development defaults.
// SecretKey is intentionally left empty: it must come from the environment,
// a config file or a flag.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8000"
	c.DatabaseDSN = "memory://"
	c.MongoDatabase = "contactdesk"
	c.SecretKey = ""
	c.TokenValidityDuration = common.DefaultTokenValidity
	c.PasswordHashCost = bcrypt.DefaultCost
	c.AllowedOrigins = []string{"http://localhost:3000"}
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.SecretKey == "" {
		errs = append(errs, errors.New("secret key must be set (APP_SECRET, secret_key or -s)"))
	}
	if c.PasswordHashCost < bcrypt.MinCost || c.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("password hash cost %d out of range [%d, %d]",
			c.PasswordHashCost, bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.TokenValidityDuration <= 0 {
		errs = append(errs, errors.New("token validity must be positive"))
	}
	if c.EndpointAddrHTTP == "" {
		errs = append(errs, errors.New("http endpoint address must be set"))
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config from defaults, the process environment (after
// loading an optional .env file), an optional JSON file and finally flags.
func LoadConfig() (*Config, error) {
	loadDotenv()
	return load(os.Args[1:], os.LookupEnv)
}

func load(args []string, lookup lookupFunc) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, lookup); err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
