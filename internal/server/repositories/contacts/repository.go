// Package contacts contains the persistence layer for contact submissions
// with in-memory, PostgreSQL and MongoDB implementations of Repository.
package contacts

import (
	"context"

	"github.com/dmitrijs2005/contactdesk/internal/server/models"
)

// Repository stores contact submissions.
//
// ListByTenant returns records oldest first. GetByID and SetStatus return
// common.ErrNotFound for an unknown id; Delete of an unknown id is not an
// error.
type Repository interface {
	Create(ctx context.Context, c *models.Contact) (*models.Contact, error)
	ListByTenant(ctx context.Context, pbd bool) ([]models.Contact, error)
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	SetStatus(ctx context.Context, id string, status models.Status) error
	Delete(ctx context.Context, id string) error
}
