// Package users contains the account persistence layer with in-memory,
// PostgreSQL and MongoDB implementations of Repository.
package users

import (
	"context"

	"github.com/dmitrijs2005/contactdesk/internal/server/models"
)

// Repository stores accounts. Create fails with common.ErrConflict when the
// email is already registered; GetByEmail returns common.ErrNotFound when
// no account matches.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
