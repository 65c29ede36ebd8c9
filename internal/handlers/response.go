package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// respond writes the standard {code, message, data?} envelope.
func respond(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{Code: status, Message: message, Data: data})
}

// HTTPErrorHandler converts echo errors into the response envelope so error
// replies have the same shape as success replies.
func HTTPErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, Response{Code: code, Message: message})
}
