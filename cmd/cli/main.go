package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dmitrijs2005/contactdesk/internal/buildinfo"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/dmitrijs2005/contactdesk/internal/server/admin"
	"github.com/dmitrijs2005/contactdesk/internal/server/auth"
	"github.com/dmitrijs2005/contactdesk/internal/server/config"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/contactdesk/internal/server/services"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if strings.HasPrefix(cfg.DatabaseDSN, "memory://") {
		fmt.Fprintln(os.Stderr, "warning: memory store selected, changes are lost on exit (set DATABASE_DSN or -d)")
	}

	store, err := repomanager.Open(ctx, cfg.DatabaseDSN, repomanager.Options{MongoDatabase: cfg.MongoDatabase})
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer store.Close(ctx)

	logger := logging.NewJSONLogger(os.Stderr, cfg.LogLevel)
	tokens := auth.NewTokenService([]byte(cfg.SecretKey), cfg.TokenValidityDuration)
	accounts := services.NewAccountService(store.Users(), auth.BcryptHasher{}, tokens, cfg.PasswordHashCost, logger)

	cmd := &admin.Command{
		Accounts:     accounts,
		Out:          os.Stdout,
		ReadPassword: admin.PasswordPrompt(os.Stdin, os.Stderr),
	}

	if err := cmd.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		store.Close(ctx)
		os.Exit(1)
	}

}
