package middleware

import (
	"net/http"
	"runtime/debug"

	perr "marketwatch/internal/platform/errors"
	"marketwatch/internal/platform/logger"
	pnet "marketwatch/internal/platform/net"
)

// RecoverJSON turns a handler panic into a 500 envelope and logs the stack
// http.ErrAbortHandler is re-raised so net/http can drop the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("route", routePattern(r)).
				Msg("panic recovered")

			pnet.Write(w, pnet.Failure(perr.PanicErrf("panic recovered"), pnet.RequestID(r.Context())))
		}()
		next.ServeHTTP(w, r)
	})
}
