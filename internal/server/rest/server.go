// Package rest exposes the account and contact services over HTTP.
//
// Routes are declared in a policy table (routes.go) that states, per method
// and path, whether a session is required. Protected routes are wrapped by
// the Gate, which resolves the session cookie before the handler runs.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
	"github.com/dmitrijs2005/contactdesk/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

// AccountAPI is the account behaviour the transport depends on.
type AccountAPI interface {
	CreateAccount(ctx context.Context, email, password string, pbd bool) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
}

// ContactAPI is the contact behaviour the transport depends on.
type ContactAPI interface {
	Submit(ctx context.Context, email, subject, message string, pbd bool) (*models.Contact, error)
	ListByTenant(ctx context.Context, pbd bool) ([]models.Contact, error)
	MarkContacted(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
}

// Options configures the HTTP server.
type Options struct {
	Address        string
	AllowedOrigins []string
	// RequestTimeout bounds each request; zero disables the limit.
	RequestTimeout time.Duration
}

type Server struct {
	opts     Options
	logger   logging.Logger
	accounts AccountAPI
	contacts ContactAPI
	gate     *Gate
}

func NewServer(opts Options, l logging.Logger, accounts AccountAPI, contacts ContactAPI, tokens TokenVerifier) *Server {
	return &Server{
		opts:     opts,
		logger:   l.With("module", "http_server"),
		accounts: accounts,
		contacts: contacts,
		gate:     NewGate(tokens),
	}
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests
// for up to shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())
		errCh <- srv.Serve(listen)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
