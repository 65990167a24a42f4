package repomanager

import (
	"context"

	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/users"
)

// MemoryManager holds process-local repositories. Data is lost on exit.
type MemoryManager struct {
	users    *users.MemoryRepository
	contacts *contacts.MemoryRepository
}

func NewMemoryManager() *MemoryManager {
	return &MemoryManager{
		users:    users.NewMemoryRepository(),
		contacts: contacts.NewMemoryRepository(),
	}
}

func (m *MemoryManager) Users() users.Repository       { return m.users }
func (m *MemoryManager) Contacts() contacts.Repository { return m.contacts }
func (m *MemoryManager) Close(context.Context) error   { return nil }
