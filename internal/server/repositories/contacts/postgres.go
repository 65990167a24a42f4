package contacts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/dbx"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	query :=
		`INSERT INTO contacts (id, email, subject, message, status, pbd, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Email, c.Subject, c.Message, string(c.Status), c.PBD, c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: db error: %w", common.ErrPersistence, err)
	}

	return c, nil
}

func (r *PostgresRepository) ListByTenant(ctx context.Context, pbd bool) ([]models.Contact, error) {
	query :=
		`SELECT id, email, subject, message, status, pbd, created_at FROM contacts
		 WHERE pbd = $1
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, pbd)
	if err != nil {
		return nil, fmt.Errorf("%w: db error: %w", common.ErrPersistence, err)
	}
	defer rows.Close()

	result := make([]models.Contact, 0)
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Email, &c.Subject, &c.Message, &c.Status, &c.PBD, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: db error: %w", common.ErrPersistence, err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: db error: %w", common.ErrPersistence, err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	query :=
		`SELECT id, email, subject, message, status, pbd, created_at FROM contacts
		 WHERE id = $1
		 `

	c := &models.Contact{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Email, &c.Subject, &c.Message, &c.Status, &c.PBD, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.IsInvalidInput(err) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: db error: %w", common.ErrPersistence, err)
	}

	return c, nil
}

// SetStatus updates the status of a single row. PostgreSQL counts a matched
// row as affected even when the value is unchanged, so repeating the same
// status still succeeds.
func (r *PostgresRepository) SetStatus(ctx context.Context, id string, status models.Status) error {
	query := `UPDATE contacts SET status = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, string(status))
	if err != nil {
		if dbx.IsInvalidInput(err) {
			return common.ErrNotFound
		}
		return fmt.Errorf("%w: db error: %w", common.ErrPersistence, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: db error: %w", common.ErrPersistence, err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM contacts WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		if dbx.IsInvalidInput(err) {
			return nil
		}
		return fmt.Errorf("%w: db error: %w", common.ErrPersistence, err)
	}
	return nil
}
