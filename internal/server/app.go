// Package server wires configuration, the store, the services and the HTTP
// transport into a runnable application with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/dmitrijs2005/contactdesk/internal/server/auth"
	"github.com/dmitrijs2005/contactdesk/internal/server/config"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/contactdesk/internal/server/rest"
	"github.com/dmitrijs2005/contactdesk/internal/server/services"
)

const storeCloseTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	store  repomanager.Manager
	http   *rest.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	store, err := repomanager.Open(ctx, c.DatabaseDSN, repomanager.Options{MongoDatabase: c.MongoDatabase})
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	tokens := auth.NewTokenService([]byte(c.SecretKey), c.TokenValidityDuration)
	accounts := services.NewAccountService(store.Users(), auth.BcryptHasher{}, tokens, c.PasswordHashCost, logger)
	contacts := services.NewContactService(store.Contacts(), logger)

	httpServer := rest.NewServer(rest.Options{
		Address:        c.EndpointAddrHTTP,
		AllowedOrigins: c.AllowedOrigins,
		RequestTimeout: c.RequestTimeout,
	}, logger, accounts, contacts, tokens)

	return &App{config: c, logger: logger, store: store, http: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	if err := app.http.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return err
	}
	return nil
}

// Run serves until ctx is cancelled or a shutdown signal arrives, then
// closes the store.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "store", storeKind(app.config.DatabaseDSN))

	app.initSignalHandler(cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	closeCtx, cancel := context.WithTimeout(context.Background(), storeCloseTimeout)
	defer cancel()
	if err := app.store.Close(closeCtx); err != nil {
		app.logger.Error(closeCtx, "store close failed", "error", err.Error())
	}

	app.logger.Info(closeCtx, "App stopped")
	return runErr
}

// storeKind returns the DSN scheme only, never credentials.
func storeKind(dsn string) string {
	scheme, _, ok := strings.Cut(dsn, "://")
	if !ok {
		return "unknown"
	}
	return scheme
}
