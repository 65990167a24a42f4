package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/contactdesk/internal/server/migrations"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresManager vends PostgreSQL-backed repositories sharing one pool.
type PostgresManager struct {
	db       *sql.DB
	users    *users.PostgresRepository
	contacts *contacts.PostgresRepository
}

// NewPostgresManager wraps an already opened database. It does not run
// migrations; see RunMigrations.
func NewPostgresManager(db *sql.DB) *PostgresManager {
	return &PostgresManager{
		db:       db,
		users:    users.NewPostgresRepository(db),
		contacts: contacts.NewPostgresRepository(db),
	}
}

func (m *PostgresManager) Users() users.Repository       { return m.users }
func (m *PostgresManager) Contacts() contacts.Repository { return m.contacts }

func (m *PostgresManager) Close(context.Context) error {
	return m.db.Close()
}

// sqlOpen and gooseUpContext are seams for tests.
var (
	sqlOpen        = sql.Open
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return goose.UpContext(ctx, db, dir, opts...)
	}
)

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// OpenPostgres opens a pgx-backed pool, checks connectivity and brings the
// schema up to date.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresManager, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}

	return NewPostgresManager(db), nil
}
