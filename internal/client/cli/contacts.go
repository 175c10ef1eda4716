package cli

import (
	"context"
	"fmt"

	pkgapi "github.com/vploshikov/gocrm/pkg/api"
)

func (c *Cli) runListContacts(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	contacts, err := c.client.ListContacts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list contacts: %w", err)
	}

	c.io.Println("=== Contacts ===")
	c.io.Println()

	if len(contacts) == 0 {
		c.io.Println("No contacts found.")
		c.io.Println()
		c.io.Println("Use 'gocrm contact add' to add your first contact.")
		return nil
	}

	c.io.Printf("Found %d contact(s):\n", len(contacts))
	c.io.Println()

	for _, contact := range contacts {
		c.printContact(contact)
	}

	return nil
}

func (c *Cli) runAddContact(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	c.io.Println("=== Add Contact ===")
	c.io.Println()

	firstName, err := c.io.ReadInput("First name: ")
	if err != nil {
		return fmt.Errorf("failed to read first name: %w", err)
	}
	lastName, err := c.io.ReadInput("Last name: ")
	if err != nil {
		return fmt.Errorf("failed to read last name: %w", err)
	}
	number, err := c.io.ReadInput("Phone number: ")
	if err != nil {
		return fmt.Errorf("failed to read phone number: %w", err)
	}
	email, err := c.io.ReadInput("Email (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	note, err := c.io.ReadInput("Note (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read note: %w", err)
	}

	resp, err := c.client.CreateContact(ctx, pkgapi.CreateContactRequest{
		FirstName: firstName,
		LastName:  lastName,
		Number:    number,
		Email:     optional(email),
		Note:      optional(note),
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Contact created with ID %d\n", resp.ContactID)

	return nil
}

func (c *Cli) runGetContact(ctx context.Context, args []string) error {
	id, err := parseID(args, "gocrm contact get <id>")
	if err != nil {
		return err
	}

	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	contact, err := c.client.GetContact(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get contact: %w", err)
	}

	c.printContact(*contact)

	return nil
}

func (c *Cli) runDeleteContact(ctx context.Context, args []string) error {
	id, err := parseID(args, "gocrm contact rm <id>")
	if err != nil {
		return err
	}

	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	if err := c.client.DeleteContact(ctx, id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	c.io.Printf("✓ Contact %d deleted\n", id)

	return nil
}

func (c *Cli) printContact(contact pkgapi.ContactDetail) {
	c.io.Printf("%d. %s\n", contact.ID, contact.FullName)
	c.io.Printf("   Number: %s\n", contact.Number)
	if contact.Email != nil {
		c.io.Printf("   Email:  %s\n", *contact.Email)
	}
	if contact.Note != nil {
		c.io.Printf("   Note:   %s\n", *contact.Note)
	}

	for _, addr := range contact.Addresses {
		line := addr.Line1
		if addr.City != nil {
			line += ", " + *addr.City
		}
		if addr.Country != nil {
			line += ", " + *addr.Country
		}
		c.io.Printf("   Address [%d]: %s\n", addr.ID, line)
	}

	for _, task := range contact.Tasks {
		c.io.Printf("   Task [%d]: %s (%s)\n", task.ID, task.Title, task.Status)
	}

	c.io.Println()
}
