// Package admin implements operator commands run against the configured
// store without going through the HTTP API.
package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/contactdesk/internal/flagx"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
)

const usage = `usage: cli <command> [flags]

commands:
  create-account -email <email> [-tenant pbd|mesa]
      creates an account; the password is prompted for twice
`

var ErrUsage = errors.New("invalid usage")

// AccountCreator is the part of the account service the commands need.
type AccountCreator interface {
	CreateAccount(ctx context.Context, email, password string, pbd bool) (*models.User, error)
}

type Command struct {
	Accounts     AccountCreator
	Out          io.Writer
	ReadPassword func(prompt string) (string, error)
}

// Run dispatches args[0] to the matching command.
func (c *Command) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(c.Out, usage)
		return ErrUsage
	}

	switch args[0] {
	case "create-account":
		return c.createAccount(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(c.Out, usage)
		return nil
	default:
		fmt.Fprint(c.Out, usage)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
}

func (c *Command) createAccount(ctx context.Context, args []string) error {
	var email, tenant string

	fs := flag.NewFlagSet("create-account", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&email, "email", "", "account email")
	fs.StringVar(&tenant, "tenant", "pbd", "tenant: pbd or mesa")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-email", "-tenant"})); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	var pbd bool
	switch strings.ToLower(tenant) {
	case "pbd":
		pbd = true
	case "mesa":
		pbd = false
	default:
		return fmt.Errorf("%w: unknown tenant %q", ErrUsage, tenant)
	}

	password, err := c.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	confirm, err := c.ReadPassword("Repeat password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	user, err := c.Accounts.CreateAccount(ctx, email, password, pbd)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.Out, "created account %s (%s, tenant %s)\n", user.ID, user.Email, tenant)
	return nil
}
