package handler

import "github.com/labstack/echo/v4"

// envelope is the uniform success wrapper returned by every endpoint.
// Errors use the counterpart shape {success:false, error} rendered by the
// central error handler.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// respond writes a success envelope with the given status, message and data.
func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data})
}
