package contacts

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
)

// MemoryRepository keeps contacts in process memory in insertion order.
type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]models.Contact
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]models.Contact)}
}

func (r *MemoryRepository) Create(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; exists {
		return nil, common.ErrConflict
	}
	r.byID[c.ID] = *c
	r.order = append(r.order, c.ID)

	out := *c
	return &out, nil
}

func (r *MemoryRepository) ListByTenant(ctx context.Context, pbd bool) ([]models.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Contact, 0)
	for _, id := range r.order {
		if c := r.byID[id]; c.PBD == pbd {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &c, nil
}

func (r *MemoryRepository) SetStatus(ctx context.Context, id string, status models.Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	c.Status = status
	r.byID[id] = c
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}
