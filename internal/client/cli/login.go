package cli

import (
	"context"
	"fmt"

	pkgapi "github.com/vploshikov/gocrm/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	identifier, err := c.io.ReadInput("Email or phone: ")
	if err != nil {
		return fmt.Errorf("failed to read identifier: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	resp, err := c.client.Login(ctx, pkgapi.LoginRequest{
		EmailOrPhone: identifier,
		Password:     password,
	})
	if err != nil {
		return err
	}

	if err := c.session.Save(ctx, resp.Token, resp.ExpiresIn); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Token expires in: %d seconds\n", resp.ExpiresIn)

	return nil
}
