package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/contacts"
	"github.com/google/uuid"
)

// ContactService manages contact submissions for both tenants.
type ContactService struct {
	contacts contacts.Repository
	log      logging.Logger
	now      func() time.Time
}

func NewContactService(repo contacts.Repository, log logging.Logger) *ContactService {
	return &ContactService{
		contacts: repo,
		log:      log.With("module", "contacts"),
		now:      time.Now,
	}
}

// Submit stores a new NEW-state contact for the given tenant. Any store
// failure is reported as common.ErrPersistence.
func (s *ContactService) Submit(ctx context.Context, email, subject, message string, pbd bool) (*models.Contact, error) {
	c := models.NewContact(email, subject, message, pbd)
	c.ID = uuid.NewString()
	c.CreatedAt = s.now().UTC()

	created, err := s.contacts.Create(ctx, c)
	if err != nil {
		if !errors.Is(err, common.ErrPersistence) {
			err = fmt.Errorf("%w: %w", common.ErrPersistence, err)
		}
		return nil, fmt.Errorf("submit contact: %w", err)
	}

	s.log.Info(ctx, "contact submitted", "id", created.ID, "pbd", pbd)
	return created, nil
}

// ListByTenant returns the tenant's contacts oldest first. The result is
// never nil.
func (s *ContactService) ListByTenant(ctx context.Context, pbd bool) ([]models.Contact, error) {
	list, err := s.contacts.ListByTenant(ctx, pbd)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	if list == nil {
		list = []models.Contact{}
	}
	return list, nil
}

// MarkContacted moves a contact to CONTACTED. Repeating the call is a
// no-op success; an unknown id yields common.ErrNotFound.
func (s *ContactService) MarkContacted(ctx context.Context, id string) error {
	if err := models.ValidateContactID(id); err != nil {
		return err
	}

	if err := s.contacts.SetStatus(ctx, id, models.StatusContacted); err != nil {
		return fmt.Errorf("mark contacted: %w", err)
	}

	s.log.Info(ctx, "contact marked contacted", "id", id)
	return nil
}

// Remove deletes a contact if it exists.
func (s *ContactService) Remove(ctx context.Context, id string) error {
	if err := models.ValidateContactID(id); err != nil {
		return err
	}

	if err := s.contacts.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove contact: %w", err)
	}

	s.log.Info(ctx, "contact removed", "id", id)
	return nil
}
