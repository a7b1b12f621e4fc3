package middleware

import (
	"net/http"
	"strings"

	pnet "marketwatch/internal/platform/net"
)

// UserHeader carries the caller id until a real auth service fronts the api
const UserHeader = "X-User-ID"

// Identity copies the user header onto the request context
// a missing header leaves the context untouched and callers fall back to pnet.Owner
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid := strings.TrimSpace(r.Header.Get(UserHeader))
		if uid == "" {
			next.ServeHTTP(w, r)
			return
		}
		if len(uid) > 64 {
			uid = uid[:64]
		}
		next.ServeHTTP(w, r.WithContext(pnet.WithUser(r.Context(), uid)))
	})
}
