package cli

import (
	"context"
	"fmt"
)

// Run dispatches a command with its remaining arguments
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "contacts":
		return c.runListContacts(ctx)
	case "contact":
		return c.runContact(ctx, args)
	case "address":
		return c.runAddress(ctx, args)
	case "tasks":
		return c.runListTasks(ctx)
	case "task":
		return c.runTask(ctx, args)
	case "email":
		return c.runEmail(ctx, args)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (c *Cli) runContact(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: gocrm contact <add|get|rm>")
	}
	switch args[0] {
	case "add":
		return c.runAddContact(ctx)
	case "get":
		return c.runGetContact(ctx, args[1:])
	case "rm":
		return c.runDeleteContact(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: contact %s. Use: add, get, or rm", args[0])
	}
}

func (c *Cli) runAddress(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] != "add" {
		return fmt.Errorf("usage: gocrm address add")
	}
	return c.runAddAddress(ctx)
}

func (c *Cli) runTask(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: gocrm task <add|get|done|rm>")
	}
	switch args[0] {
	case "add":
		return c.runAddTask(ctx)
	case "get":
		return c.runGetTask(ctx, args[1:])
	case "done":
		return c.runCompleteTask(ctx, args[1:])
	case "rm":
		return c.runDeleteTask(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: task %s. Use: add, get, done, or rm", args[0])
	}
}

func (c *Cli) runEmail(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: gocrm email <send|log>")
	}
	switch args[0] {
	case "send":
		return c.runSendEmail(ctx)
	case "log":
		return c.runEmailLog(ctx)
	default:
		return fmt.Errorf("unknown subcommand: email %s. Use: send or log", args[0])
	}
}
