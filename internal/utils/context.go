// Package utils holds small helpers shared by the HTTP and service layers:
// request context keys, JSON responses, session tokens and id generation.
package utils

import (
	"context"
)

// contextKey keeps this package's context keys apart from plain strings.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the id of the authenticated user. Set it with
// WithUserID and read it with GetUserIDFromContext.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the authenticated user id. ok is false when
// the value is missing, empty or not a string.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// WithUserID returns a copy of ctx carrying userID under [UserIDCtxKey].
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}
