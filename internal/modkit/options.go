package modkit

import (
	"net/http"

	"marketwatch/internal/modkit/httpkit"
	str "marketwatch/internal/platform/strings"
)

// Option adjusts how a module is mounted
type Option func(*Base)

// WithName sets a module name used in logs and registry
func WithName(name string) Option {
	return func(b *Base) { b.name = name }
}

// WithPrefix mounts a module under a path prefix
func WithPrefix(prefix string) Option {
	return func(b *Base) { b.prefix = prefix }
}

// WithMiddlewares attaches per module middleware in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Base) { b.mws = append(b.mws, mw...) }
}

// WithSwagger marks the module as documented so it may adjust the served spec
func WithSwagger(enabled bool) Option {
	return func(b *Base) { b.swaggerOn = enabled }
}

// Base is embedded by modules for the name, prefix and middleware they mount with
type Base struct {
	name      string
	prefix    string
	mws       []func(http.Handler) http.Handler
	swaggerOn bool
}

// NewBase applies opts over the module's own name and prefix
func NewBase(name, prefix string, opts ...Option) Base {
	b := Base{name: name, prefix: prefix}
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Name returns the module name
func (b Base) Name() string { return str.MustString(b.name, "module name") }

// Prefix returns the module route prefix
func (b Base) Prefix() string { return str.MustPrefix(b.prefix) }

// Middlewares returns a copy of the module middleware
func (b Base) Middlewares() []func(http.Handler) http.Handler {
	return append([]func(http.Handler) http.Handler(nil), b.mws...)
}

// SwaggerOn reports whether WithSwagger(true) was given
func (b Base) SwaggerOn() bool { return b.swaggerOn }

// Mount opens the prefix group, applies the middleware and hands it to register
func (b Base) Mount(r httpkit.Router, register func(httpkit.Router)) {
	r.Route(b.Prefix(), func(rr httpkit.Router) {
		for _, mw := range b.mws {
			rr.Use(mw)
		}
		register(rr)
	})
}
