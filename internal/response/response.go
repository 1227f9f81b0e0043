// Package response defines the uniform envelope all API handlers produce.
// Handlers build a Response value and the routing layer serializes it with
// the declared status code; unset optional fields are omitted from output,
// never emitted as null.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope wrapping every API reply.
type Response struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
	Data       any    `json:"data,omitempty"`
}

// New returns an envelope defaulting to HTTP 200.
func New() Response {
	return Response{StatusCode: http.StatusOK}
}

// Send serializes the envelope using its status code.
func Send(c echo.Context, r Response) error {
	return c.JSON(r.StatusCode, r)
}
