package httpkit

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	perrs "marketwatch/internal/platform/errors"
	pnet "marketwatch/internal/platform/net"
)

// Owner returns the caller identity that scopes saved data
// requests without an identity header share the anonymous owner
func Owner(r *http.Request) string {
	return pnet.Owner(r.Context())
}

// PathParam returns a trimmed chi url param or an invalid argument error naming it
func PathParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(chi.URLParam(r, name))
	if v == "" {
		return "", perrs.WithField(perrs.InvalidArgf("%s is required", name), name)
	}
	return v, nil
}
