package rest

import (
	"glowSkincare/pkg/logger"
	jsonres "glowSkincare/pkg/response"

	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// currentUserID returns the authenticated user, or 0 for anonymous requests.
func currentUserID(c echo.Context) uint {
	userID, _ := c.Get("user_id").(uint)
	return userID
}

// respondError logs err and writes it with the status its domain error maps to.
func respondError(c echo.Context, msg string, err error) error {
	status, _ := jsonres.StatusFromError(err)
	if status >= 500 {
		logger.Error(msg, err)
	} else {
		logger.Warn(msg, err)
	}
	return c.JSON(status, ResponseError{Message: err.Error()})
}
