// Package utils provides small helpers shared by the server and the client:
// request context keys, PIN digests, JSON responses, the resty client
// constructor, session tokens and id generation.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey and SessionIDCtxKey hold the authenticated principal of a
// request. They are set by the auth middleware.
var (
	UserIDCtxKey    = contextKey("userID")
	SessionIDCtxKey = contextKey("sessionID")
)

// WithUser returns a copy of ctx carrying the user and session ids.
func WithUser(ctx context.Context, userID, sessionID string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetUserIDFromContext returns the user id stored by [WithUser]. ok is
// false when it is missing or empty.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetSessionIDFromContext returns the session id stored by [WithUser].
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}
