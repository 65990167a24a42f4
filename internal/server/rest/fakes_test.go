package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
	"github.com/dmitrijs2005/contactdesk/internal/server/services"
)

type fakeAccounts struct {
	createFn func(ctx context.Context, email, password string, pbd bool) (*models.User, error)
	loginFn  func(ctx context.Context, email, password string) (*services.LoginResult, error)
}

func (f *fakeAccounts) CreateAccount(ctx context.Context, email, password string, pbd bool) (*models.User, error) {
	return f.createFn(ctx, email, password, pbd)
}

func (f *fakeAccounts) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	return f.loginFn(ctx, email, password)
}

type fakeContacts struct {
	submitFn func(ctx context.Context, email, subject, message string, pbd bool) (*models.Contact, error)
	listFn   func(ctx context.Context, pbd bool) ([]models.Contact, error)
	markFn   func(ctx context.Context, id string) error
	removeFn func(ctx context.Context, id string) error

	calls int
}

func (f *fakeContacts) Submit(ctx context.Context, email, subject, message string, pbd bool) (*models.Contact, error) {
	f.calls++
	return f.submitFn(ctx, email, subject, message, pbd)
}

func (f *fakeContacts) ListByTenant(ctx context.Context, pbd bool) ([]models.Contact, error) {
	f.calls++
	return f.listFn(ctx, pbd)
}

func (f *fakeContacts) MarkContacted(ctx context.Context, id string) error {
	f.calls++
	return f.markFn(ctx, id)
}

func (f *fakeContacts) Remove(ctx context.Context, id string) error {
	f.calls++
	return f.removeFn(ctx, id)
}

// staticTokens accepts exactly one token value.
type staticTokens struct {
	token  string
	userID string
	err    error
}

func (s staticTokens) Verify(token string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if token != s.token {
		return "", errors.New("unknown token")
	}
	return s.userID, nil
}

func newTestServer(accounts AccountAPI, contacts ContactAPI, tokens TokenVerifier) http.Handler {
	if accounts == nil {
		accounts = &fakeAccounts{}
	}
	if contacts == nil {
		contacts = &fakeContacts{}
	}
	if tokens == nil {
		tokens = staticTokens{token: "good", userID: "u1"}
	}
	return NewServer(Options{AllowedOrigins: []string{"http://localhost:3000"}}, logging.Nop{}, accounts, contacts, tokens).Handler()
}

func nopLogger() logging.Logger { return logging.Nop{} }
