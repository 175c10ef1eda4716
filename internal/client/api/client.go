// Package api implements the HTTP client talking to the gocrm server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vploshikov/gocrm/internal/models"
	"github.com/vploshikov/gocrm/pkg/api"
)

// APIError carries the status code and error message of a non-2xx response
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// Client is the HTTP client for the gocrm server API
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetToken sets the bearer token attached to subsequent requests
func (c *Client) SetToken(token string) {
	c.token = token
}

// Register creates a new user account
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates a user and returns a token
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// CreateContact creates a new contact
func (c *Client) CreateContact(ctx context.Context, req api.CreateContactRequest) (*api.CreateContactResponse, error) {
	var resp api.CreateContactResponse
	if err := c.doRequest(ctx, http.MethodPost, "/contacts", req, &resp); err != nil {
		return nil, fmt.Errorf("create contact request failed: %w", err)
	}
	return &resp, nil
}

// ListContacts returns the user's contacts with addresses and tasks attached
func (c *Client) ListContacts(ctx context.Context) ([]api.ContactDetail, error) {
	var resp []api.ContactDetail
	if err := c.doRequest(ctx, http.MethodGet, "/contacts", nil, &resp); err != nil {
		return nil, fmt.Errorf("list contacts request failed: %w", err)
	}
	return resp, nil
}

// GetContact returns a single contact by ID
func (c *Client) GetContact(ctx context.Context, id int64) (*api.ContactDetail, error) {
	var resp api.ContactDetail
	path := fmt.Sprintf("/contacts/%d", id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get contact request failed: %w", err)
	}
	return &resp, nil
}

// UpdateContact updates only the fields present in req
func (c *Client) UpdateContact(ctx context.Context, id int64, req api.UpdateContactRequest) error {
	path := fmt.Sprintf("/contacts/%d", id)
	if err := c.doRequest(ctx, http.MethodPut, path, req, nil); err != nil {
		return fmt.Errorf("update contact request failed: %w", err)
	}
	return nil
}

// DeleteContact removes a contact along with its addresses
func (c *Client) DeleteContact(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/contacts/%d", id)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete contact request failed: %w", err)
	}
	return nil
}

// AddContactAddress adds an address via POST /contacts/{id}/address
func (c *Client) AddContactAddress(ctx context.Context, contactID int64, req api.CreateAddressRequest) (*api.CreateAddressResponse, error) {
	var resp api.CreateAddressResponse
	path := fmt.Sprintf("/contacts/%d/address", contactID)
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("add address request failed: %w", err)
	}
	return &resp, nil
}

// CreateAddress adds an address via POST /addresses with contact_id in the body
func (c *Client) CreateAddress(ctx context.Context, req api.CreateAddressRequest) (*api.AddressSavedResponse, error) {
	var resp api.AddressSavedResponse
	if err := c.doRequest(ctx, http.MethodPost, "/addresses", req, &resp); err != nil {
		return nil, fmt.Errorf("create address request failed: %w", err)
	}
	return &resp, nil
}

// CreateTask creates a new task
func (c *Client) CreateTask(ctx context.Context, req api.CreateTaskRequest) (*api.CreateTaskResponse, error) {
	var resp api.CreateTaskResponse
	if err := c.doRequest(ctx, http.MethodPost, "/tasks", req, &resp); err != nil {
		return nil, fmt.Errorf("create task request failed: %w", err)
	}
	return &resp, nil
}

// ListTasks returns the user's tasks
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var resp []models.Task
	if err := c.doRequest(ctx, http.MethodGet, "/tasks", nil, &resp); err != nil {
		return nil, fmt.Errorf("list tasks request failed: %w", err)
	}
	return resp, nil
}

// GetTask returns a single task by ID
func (c *Client) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	var resp models.Task
	path := fmt.Sprintf("/tasks/%d", id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get task request failed: %w", err)
	}
	return &resp, nil
}

// UpdateTask updates only the fields present in req
func (c *Client) UpdateTask(ctx context.Context, id int64, req api.UpdateTaskRequest) error {
	path := fmt.Sprintf("/tasks/%d", id)
	if err := c.doRequest(ctx, http.MethodPut, path, req, nil); err != nil {
		return fmt.Errorf("update task request failed: %w", err)
	}
	return nil
}

// DeleteTask removes a task
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/tasks/%d", id)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete task request failed: %w", err)
	}
	return nil
}

// SendEmail records an outgoing email in the send log
func (c *Client) SendEmail(ctx context.Context, req api.SendEmailRequest) (*api.SendEmailResponse, error) {
	var resp api.SendEmailResponse
	if err := c.doRequest(ctx, http.MethodPost, "/email/send", req, &resp); err != nil {
		return nil, fmt.Errorf("send email request failed: %w", err)
	}
	return &resp, nil
}

// ListEmails returns the email send log
func (c *Client) ListEmails(ctx context.Context) ([]models.EmailLog, error) {
	var resp []models.EmailLog
	if err := c.doRequest(ctx, http.MethodGet, "/email", nil, &resp); err != nil {
		return nil, fmt.Errorf("list emails request failed: %w", err)
	}
	return resp, nil
}

// doRequest performs an HTTP request and decodes the JSON response
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return &APIError{Status: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{Status: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
