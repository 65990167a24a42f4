package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type lookupFunc func(key string) (string, bool)

// loadDotenv reads .env from the working directory if it exists. Variables
// already present in the environment win.
func loadDotenv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		// a malformed .env should not go unnoticed, but config loading
		// still proceeds with the real environment
		fmt.Fprintf(os.Stderr, "warning: .env not loaded: %v\n", err)
	}
}

// parseEnv overlays environment variables onto config.
//
// Recognised variables:
//
//	APP_PORT         port ("8000") or address (":8000", "127.0.0.1:8000")
//	APP_SECRET       session token signing secret
//	SALT_ROUNDS      bcrypt cost
//	DATABASE_DSN     store DSN
//	MONGO_DATABASE   mongo database name
//	TOKEN_TTL        session lifetime, Go duration ("1h")
//	REQUEST_TIMEOUT  per-request deadline, Go duration
//	LOG_LEVEL        debug | info | warn | error
//	PBD_CLIENT, MESA_DASH, MESA_CLIENT   extra CORS origins
func parseEnv(config *Config, lookup lookupFunc) error {
	if v, ok := nonEmpty(lookup, "APP_PORT"); ok {
		if !strings.Contains(v, ":") {
			v = ":" + v
		}
		config.EndpointAddrHTTP = v
	}
	if v, ok := nonEmpty(lookup, "APP_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := nonEmpty(lookup, "SALT_ROUNDS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SALT_ROUNDS: %w", err)
		}
		config.PasswordHashCost = n
	}
	if v, ok := nonEmpty(lookup, "DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := nonEmpty(lookup, "MONGO_DATABASE"); ok {
		config.MongoDatabase = v
	}
	if v, ok := nonEmpty(lookup, "TOKEN_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TOKEN_TTL: %w", err)
		}
		config.TokenValidityDuration = d
	}
	if v, ok := nonEmpty(lookup, "REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("REQUEST_TIMEOUT: %w", err)
		}
		config.RequestTimeout = d
	}
	if v, ok := nonEmpty(lookup, "LOG_LEVEL"); ok {
		config.LogLevel = v
	}
	for _, key := range []string{"PBD_CLIENT", "MESA_DASH", "MESA_CLIENT"} {
		if v, ok := nonEmpty(lookup, key); ok {
			config.AllowedOrigins = appendUnique(config.AllowedOrigins, v)
		}
	}
	return nil
}

func nonEmpty(lookup lookupFunc, key string) (string, bool) {
	v, ok := lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func appendUnique(list []string, values ...string) []string {
	for _, v := range values {
		found := false
		for _, existing := range list {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			list = append(list, v)
		}
	}
	return list
}
