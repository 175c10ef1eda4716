// Package cli implements the gocrm command line client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/vploshikov/gocrm/internal/client/api"
	"github.com/vploshikov/gocrm/internal/client/iocli"
	"github.com/vploshikov/gocrm/internal/client/session"
)

type Cli struct {
	io      iocli.IO
	client  *api.Client
	session *session.Manager
}

func New(io iocli.IO, client *api.Client, sess *session.Manager) *Cli {
	return &Cli{
		io:      io,
		client:  client,
		session: sess,
	}
}

// requireAuth loads the stored token and attaches it to the API client
func (c *Cli) requireAuth(ctx context.Context) error {
	token, err := c.session.Token(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			return fmt.Errorf("not authenticated. Please run 'gocrm login' first")
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	c.client.SetToken(token)
	return nil
}

// optional turns a prompt answer into a pointer, empty meaning absent
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseID parses the single numeric ID argument of a subcommand
func parseID(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing ID. Usage: %s", usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q: must be a number", args[0])
	}
	return id, nil
}

func PrintUsage() {
	fmt.Println("gocrm Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gocrm [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:4000)")
	fmt.Println("  --db PATH      Path to local session database (default: gocrm-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register               Register new account")
	fmt.Println("  login                  Login to server")
	fmt.Println("  logout                 Logout and forget the stored session")
	fmt.Println("  status                 Show authentication status")
	fmt.Println("  contacts               List contacts with addresses and tasks")
	fmt.Println("  contact add            Add a new contact")
	fmt.Println("  contact get <id>       Show one contact")
	fmt.Println("  contact rm <id>        Delete a contact")
	fmt.Println("  address add            Add an address to a contact")
	fmt.Println("  tasks                  List tasks")
	fmt.Println("  task add               Add a new task")
	fmt.Println("  task get <id>          Show one task")
	fmt.Println("  task done <id>         Mark a task completed")
	fmt.Println("  task rm <id>           Delete a task")
	fmt.Println("  email send             Record an outgoing email")
	fmt.Println("  email log              Show the email send log")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  gocrm register")
	fmt.Println("  gocrm login")
	fmt.Println("  gocrm contact add")
	fmt.Println("  gocrm task done 12")
	fmt.Println("  gocrm --server https://crm.example.com contacts")
}
