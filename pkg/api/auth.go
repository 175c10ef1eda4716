// Package api defines the JSON wire types shared by the server handlers
// and the client.
package api

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	OK     bool  `json:"ok"`
	UserID int64 `json:"userId"`
}

// LoginRequest is the body of POST /auth/login. EmailOrPhone matches
// either unique identity column.
type LoginRequest struct {
	EmailOrPhone string `json:"emailOrPhone"`
	Password     string `json:"password"`
}

// LoginResponse carries the bearer token and its lifetime in seconds.
// The same expiry is encoded inside the token; the server re-checks it
// on every request regardless of what the client does with this value.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OKResponse acknowledges a write that returns no entity.
type OKResponse struct {
	OK bool `json:"ok"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
