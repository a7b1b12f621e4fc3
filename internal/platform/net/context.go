// Package net carries request scoped identity and the response envelope shared by transports
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AnonymousUser owns requests that arrive without a user id
const AnonymousUser = "anonymous"

type userKey struct{}

// WithRequest stores reqID where chi's RequestID middleware would, empty ids are ignored
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID is chi's request id, empty outside a request
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// WithUser stores the caller's user id, empty ids are ignored
func WithUser(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, userKey{}, userID)
}

// UserID is the stored user id or ""
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userKey{}).(string)
	return id
}

// Owner is the user id, or AnonymousUser when none was sent
func Owner(ctx context.Context) string {
	if id := UserID(ctx); id != "" {
		return id
	}
	return AnonymousUser
}
