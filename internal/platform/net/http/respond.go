// Package http wraps chi and the response envelope for the rest of the platform
package http

import (
	stdhttp "net/http"

	pnet "marketwatch/internal/platform/net"
)

// Envelope is the response body shape
type Envelope = pnet.Envelope

// Response is what return-style handlers produce, an error Body picks its own status
type Response struct {
	Status int
	Body   any
}

// Handle adapts a Response returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	reqID := pnet.RequestID(r.Context())
	if err, ok := resp.Body.(error); ok && err != nil {
		pnet.Write(w, pnet.Failure(err, reqID))
		return
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	pnet.Write(w, pnet.Success(status, resp.Body, reqID))
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response whose status comes from err
func Error(err error) Response { return Response{Body: err} }
