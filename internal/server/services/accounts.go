// Package services contains server-side business logic. AccountService
// handles registration and password login; ContactService manages the
// tenant-partitioned contact submissions.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/dmitrijs2005/contactdesk/internal/server/auth"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/users"
	"github.com/google/uuid"
)

// TokenIssuer mints session tokens.
type TokenIssuer interface {
	Issue(userID string) (string, error)
	Validity() time.Duration
}

// LoginResult is a freshly issued session token together with how long the
// client should keep the cookie carrying it.
type LoginResult struct {
	Token  string
	MaxAge time.Duration
}

// AccountService creates accounts and logs users in.
type AccountService struct {
	users  users.Repository
	hasher auth.PasswordHasher
	tokens TokenIssuer
	cost   int
	log    logging.Logger
	now    func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func NewAccountService(repo users.Repository, hasher auth.PasswordHasher, tokens TokenIssuer, cost int, log logging.Logger) *AccountService {
	return &AccountService{
		users:  repo,
		hasher: hasher,
		tokens: tokens,
		cost:   cost,
		log:    log.With("module", "accounts"),
		now:    time.Now,
	}
}

// CreateAccount registers a new user. Missing fields yield
// common.ErrValidation and an already registered email common.ErrConflict.
func (s *AccountService) CreateAccount(ctx context.Context, email, password string, pbd bool) (*models.User, error) {
	email = strings.TrimSpace(email)
	if err := models.ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password, s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		PBD:          pbd,
		CreatedAt:    s.now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info(ctx, "account created", "user_id", created.ID, "pbd", created.PBD)
	return created, nil
}

// Login checks the credentials and issues a session token. Unknown email
// and wrong password fail identically with common.ErrAuthentication.
func (s *AccountService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if err := models.ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.burnDummyCompare(password)
			return nil, common.ErrAuthentication
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, common.ErrAuthentication
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Debug(ctx, "login succeeded", "user_id", user.ID)
	return &LoginResult{Token: token, MaxAge: s.tokens.Validity()}, nil
}

// burnDummyCompare spends roughly the same time as a real password check so
// response latency does not tell whether an email is registered.
func (s *AccountService) burnDummyCompare(password string) {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("contactdesk-dummy-password", s.cost)
		if err == nil {
			s.dummyHash = h
		}
	})
	if s.dummyHash != "" {
		_, _ = s.hasher.Verify(password, s.dummyHash)
	}
}
