package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/server/models"
)

type fakeUsersRepo struct {
	createFn     func(ctx context.Context, u *models.User) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	return f.createFn(ctx, u)
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.getByEmailFn(ctx, email)
}

type fakeHasher struct {
	hashFn   func(plaintext string, cost int) (string, error)
	verifyFn func(plaintext, hashed string) (bool, error)

	verifyCalls int
}

func (f *fakeHasher) Hash(plaintext string, cost int) (string, error) {
	if f.hashFn == nil {
		return "hashed:" + plaintext, nil
	}
	return f.hashFn(plaintext, cost)
}

func (f *fakeHasher) Verify(plaintext, hashed string) (bool, error) {
	f.verifyCalls++
	if f.verifyFn == nil {
		return hashed == "hashed:"+plaintext, nil
	}
	return f.verifyFn(plaintext, hashed)
}

type fakeTokens struct {
	issueFn func(userID string) (string, error)
}

func (f *fakeTokens) Issue(userID string) (string, error) {
	if f.issueFn == nil {
		return "token-for-" + userID, nil
	}
	return f.issueFn(userID)
}

func (f *fakeTokens) Validity() time.Duration { return time.Hour }

type fakeContactsRepo struct {
	createFn    func(ctx context.Context, c *models.Contact) (*models.Contact, error)
	listFn      func(ctx context.Context, pbd bool) ([]models.Contact, error)
	getFn       func(ctx context.Context, id string) (*models.Contact, error)
	setStatusFn func(ctx context.Context, id string, s models.Status) error
	deleteFn    func(ctx context.Context, id string) error
}

func (f *fakeContactsRepo) Create(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	return f.createFn(ctx, c)
}

func (f *fakeContactsRepo) ListByTenant(ctx context.Context, pbd bool) ([]models.Contact, error) {
	return f.listFn(ctx, pbd)
}

func (f *fakeContactsRepo) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	return f.getFn(ctx, id)
}

func (f *fakeContactsRepo) SetStatus(ctx context.Context, id string, s models.Status) error {
	return f.setStatusFn(ctx, id, s)
}

func (f *fakeContactsRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
