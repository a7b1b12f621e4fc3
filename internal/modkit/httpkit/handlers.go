// Package httpkit is the handler and routing surface modules build on
// modules import this rather than internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "marketwatch/internal/platform/net/http"
	"marketwatch/internal/platform/net/http/bind"
)

type (
	// Router is the platform router seam
	Router = phttp.Router

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Response is an enveloped reply, return one from a handler to pick the status
	Response = phttp.Response
)

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// reply wraps a handler result, plain values become a 200 envelope
func reply(out any, err error) Response {
	if err != nil {
		return phttp.Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return phttp.OK(out)
}

// JSON binds and validates the body as T before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return phttp.Error(err)
		}
		return reply(fn(r, in))
	})
}

// Call adapts a handler that reads no body
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response { return reply(fn(r)) })
}

// PostJSON mounts a JSON body handler under POST
func PostJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(fn))
}

// Get mounts a body-less handler under GET
func Get(r Router, path string, fn func(*http.Request) (any, error)) {
	r.Get(path, Call(fn))
}

// Delete mounts a body-less handler under DELETE
func Delete(r Router, path string, fn func(*http.Request) (any, error)) {
	r.Delete(path, Call(fn))
}
