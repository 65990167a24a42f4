// Package repomanager opens the configured store and vends its repositories.
// The DSN scheme selects the backend: memory://, postgres:// (or
// postgresql://) and mongodb:// (or mongodb+srv://).
package repomanager

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/users"
)

// Manager owns the store handle for the lifetime of the process.
type Manager interface {
	Users() users.Repository
	Contacts() contacts.Repository
	Close(ctx context.Context) error
}

// Options carries backend-specific settings that are not part of the DSN.
type Options struct {
	// MongoDatabase names the database used with a mongodb DSN.
	MongoDatabase string
}

// Open connects to the store described by dsn, prepares its schema and
// returns a Manager for it.
func Open(ctx context.Context, dsn string, opts Options) (Manager, error) {
	scheme, _, ok := strings.Cut(dsn, "://")
	if !ok {
		return nil, errors.New("invalid store DSN: missing scheme")
	}

	switch strings.ToLower(scheme) {
	case "memory":
		return NewMemoryManager(), nil
	case "postgres", "postgresql":
		return OpenPostgres(ctx, dsn)
	case "mongodb", "mongodb+srv":
		return OpenMongo(ctx, dsn, opts.MongoDatabase)
	default:
		return nil, fmt.Errorf("unsupported store scheme %q", scheme)
	}
}
