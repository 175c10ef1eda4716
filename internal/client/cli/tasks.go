package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vploshikov/gocrm/internal/models"
	pkgapi "github.com/vploshikov/gocrm/pkg/api"
)

func (c *Cli) runListTasks(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	tasks, err := c.client.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	c.io.Println("=== Tasks ===")
	c.io.Println()

	if len(tasks) == 0 {
		c.io.Println("No tasks found.")
		c.io.Println()
		c.io.Println("Use 'gocrm task add' to add your first task.")
		return nil
	}

	c.io.Printf("Found %d task(s):\n", len(tasks))
	c.io.Println()

	for _, task := range tasks {
		c.printTask(task)
	}

	return nil
}

func (c *Cli) runAddTask(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	c.io.Println("=== Add Task ===")
	c.io.Println()

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	description, err := c.io.ReadInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}
	dueDate, err := c.io.ReadInput("Due date (optional, YYYY-MM-DD): ")
	if err != nil {
		return fmt.Errorf("failed to read due date: %w", err)
	}
	contactInput, err := c.io.ReadInput("Contact ID (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read contact ID: %w", err)
	}

	var contactID *int64
	if contactInput != "" {
		id, err := strconv.ParseInt(contactInput, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid contact ID %q: must be a number", contactInput)
		}
		contactID = &id
	}

	resp, err := c.client.CreateTask(ctx, pkgapi.CreateTaskRequest{
		Title:       title,
		Description: optional(description),
		DueDate:     optional(dueDate),
		ContactID:   contactID,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Task created with ID %d\n", resp.TaskID)

	return nil
}

func (c *Cli) runGetTask(ctx context.Context, args []string) error {
	id, err := parseID(args, "gocrm task get <id>")
	if err != nil {
		return err
	}

	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	task, err := c.client.GetTask(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	c.printTask(*task)

	return nil
}

func (c *Cli) runCompleteTask(ctx context.Context, args []string) error {
	id, err := parseID(args, "gocrm task done <id>")
	if err != nil {
		return err
	}

	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	status := models.TaskStatusCompleted
	if err := c.client.UpdateTask(ctx, id, pkgapi.UpdateTaskRequest{Status: &status}); err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	c.io.Printf("✓ Task %d marked completed\n", id)

	return nil
}

func (c *Cli) runDeleteTask(ctx context.Context, args []string) error {
	id, err := parseID(args, "gocrm task rm <id>")
	if err != nil {
		return err
	}

	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	if err := c.client.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	c.io.Printf("✓ Task %d deleted\n", id)

	return nil
}

func (c *Cli) printTask(task models.Task) {
	c.io.Printf("%d. %s (%s)\n", task.ID, task.Title, task.Status)
	if task.Description != nil {
		c.io.Printf("   %s\n", *task.Description)
	}
	if task.DueDate != nil {
		c.io.Printf("   Due:     %s\n", *task.DueDate)
	}
	if task.ContactName != nil {
		c.io.Printf("   Contact: %s\n", *task.ContactName)
	}
	c.io.Println()
}
