package cli

import (
	"context"
	"errors"
	"time"

	"github.com/vploshikov/gocrm/internal/client/session"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	info, err := c.session.Info(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'gocrm login' to authenticate.")
			return nil
		}
		return err
	}

	expiresAt := time.Unix(info.ExpiresAt, 0)

	c.io.Println("Status: Authenticated")
	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	c.io.Printf("Time remaining: %s\n", time.Until(expiresAt).Round(time.Second))

	return nil
}
