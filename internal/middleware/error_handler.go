package middleware

import (
	"errors"
	"net/http"

	"glowSkincare/pkg/logger"
	jsonres "glowSkincare/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors that handlers return instead of writing.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		status  int
		code    string
		message = err.Error()
	)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		code = http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			message = m
		}
	} else {
		status, code = jsonres.StatusFromError(err)
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", "path", c.Path(), "error", err.Error())
		if status == http.StatusInternalServerError {
			message = "internal server error"
		}
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, jsonres.Error(code, message, nil))
	}
	if writeErr != nil {
		logger.Error("Failed to write error response", writeErr)
	}
}
