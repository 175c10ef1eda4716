package cli

import (
	"context"
	"fmt"
	"strconv"

	pkgapi "github.com/vploshikov/gocrm/pkg/api"
)

func (c *Cli) runAddAddress(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	c.io.Println("=== Add Address ===")
	c.io.Println()

	contactInput, err := c.io.ReadInput("Contact ID: ")
	if err != nil {
		return fmt.Errorf("failed to read contact ID: %w", err)
	}
	contactID, err := strconv.ParseInt(contactInput, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid contact ID %q: must be a number", contactInput)
	}

	line1, err := c.io.ReadInput("Address line 1: ")
	if err != nil {
		return fmt.Errorf("failed to read address line: %w", err)
	}
	line2, err := c.io.ReadInput("Address line 2 (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read address line: %w", err)
	}
	city, err := c.io.ReadInput("City: ")
	if err != nil {
		return fmt.Errorf("failed to read city: %w", err)
	}
	state, err := c.io.ReadInput("State (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}
	pincode, err := c.io.ReadInput("Pincode (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read pincode: %w", err)
	}
	country, err := c.io.ReadInput("Country (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read country: %w", err)
	}

	resp, err := c.client.CreateAddress(ctx, pkgapi.CreateAddressRequest{
		ContactID: contactID,
		Line1:     line1,
		Line2:     optional(line2),
		City:      optional(city),
		State:     optional(state),
		Pincode:   optional(pincode),
		Country:   optional(country),
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ %s (ID %d)\n", resp.Message, resp.ID)

	return nil
}
