package cli

import (
	"context"
	"fmt"
	"time"

	pkgapi "github.com/vploshikov/gocrm/pkg/api"
)

func (c *Cli) runSendEmail(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	c.io.Println("=== Send Email ===")
	c.io.Println()

	toEmail, err := c.io.ReadInput("To: ")
	if err != nil {
		return fmt.Errorf("failed to read recipient: %w", err)
	}
	subject, err := c.io.ReadInput("Subject: ")
	if err != nil {
		return fmt.Errorf("failed to read subject: %w", err)
	}
	body, err := c.io.ReadInput("Body (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	resp, err := c.client.SendEmail(ctx, pkgapi.SendEmailRequest{
		ToEmail: toEmail,
		Subject: subject,
		Body:    optional(body),
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Email recorded with ID %d\n", resp.ID)

	return nil
}

func (c *Cli) runEmailLog(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	emails, err := c.client.ListEmails(ctx)
	if err != nil {
		return fmt.Errorf("failed to list emails: %w", err)
	}

	c.io.Println("=== Email Log ===")
	c.io.Println()

	if len(emails) == 0 {
		c.io.Println("No emails recorded.")
		return nil
	}

	for _, email := range emails {
		c.io.Printf("%d. To: %s\n", email.ID, email.ToEmail)
		c.io.Printf("   Subject: %s\n", email.Subject)
		c.io.Printf("   Sent:    %s\n", email.SentAt.Format(time.RFC3339))
		c.io.Println()
	}

	return nil
}
