package api

// CreateTaskRequest is the body of POST /tasks. ContactID is optional;
// when set, the contact must belong to the requesting user.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
	ContactID   *int64  `json:"contact_id"`
}

// CreateTaskResponse is returned on successful task creation.
type CreateTaskResponse struct {
	OK     bool  `json:"ok"`
	TaskID int64 `json:"taskId"`
}

// UpdateTaskRequest is the body of PUT /tasks/{id}. Every field is
// optional; an absent field keeps its stored value, so a bare
// {"status":"completed"} flips the status and touches nothing else.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
	ContactID   *int64  `json:"contact_id"`
}

// SendEmailRequest is the body of POST /email/send.
type SendEmailRequest struct {
	ToEmail string  `json:"to_email"`
	Subject string  `json:"subject"`
	Body    *string `json:"body"`
}

// SendEmailResponse is returned once the email is written to the log.
type SendEmailResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}
