package handlers

import "context"

// contextKey is the type for request context keys
type contextKey string

// UserIDKey stores the authenticated user id in the request context
const UserIDKey contextKey = "user_id"

// GetUserID extracts the authenticated user id from the request context.
// It is only present on requests that passed the auth middleware.
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}
