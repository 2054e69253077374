package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"glowSkincare/pkg/logger"
	jsonres "glowSkincare/pkg/response"
	"glowSkincare/pkg/utils"

	"github.com/labstack/echo/v4"
)

// TokenValidator checks that a token is still registered in Redis.
type TokenValidator interface {
	ValidateTokenFromRedis(ctx context.Context, token string) (string, error)
}

type authError struct {
	status  int
	code    string
	message string
}

func (e *authError) respond(c echo.Context) error {
	return c.JSON(e.status, jsonres.Error(e.code, e.message, nil))
}

func unauthorized(message string) *authError {
	return &authError{status: http.StatusUnauthorized, code: "UNAUTHORIZED", message: message}
}

// AuthMiddleware requires a valid bearer token that is still registered in Redis.
func AuthMiddleware(tokenValidator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return unauthorized("Missing authorization header").respond(c)
			}

			if aerr := authenticate(c, tokenValidator); aerr != nil {
				return aerr.respond(c)
			}

			return next(c)
		}
	}
}

// OptionalAuthMiddleware lets anonymous requests through without a user.
// A token that is present must still be valid.
func OptionalAuthMiddleware(tokenValidator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return next(c)
			}

			if aerr := authenticate(c, tokenValidator); aerr != nil {
				return aerr.respond(c)
			}

			return next(c)
		}
	}
}

func authenticate(c echo.Context, tokenValidator TokenValidator) *authError {
	tokenParts := strings.Split(c.Request().Header.Get(echo.HeaderAuthorization), " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return unauthorized("Invalid authorization format")
	}

	tokenString := tokenParts[1]

	claims, err := utils.ParseJWT(tokenString)
	if err != nil {
		logger.Error("Failed to parse JWT", err)
		return unauthorized("Invalid token")
	}

	expAt, err := claims.GetExpirationTime()
	if err != nil || expAt == nil || time.Now().After(expAt.Time) {
		return unauthorized("Token expired")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID, err := tokenValidator.ValidateTokenFromRedis(ctx, tokenString)
	if err != nil {
		logger.Error("Token not found in Redis", err)
		return unauthorized("Token expired or invalid")
	}

	if userID != claims.UserID {
		logger.Error("UserID mismatch between JWT and Redis", "jwt_user", claims.UserID, "redis_user", userID)
		return unauthorized("Invalid token")
	}

	userIDUint, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil || userIDUint == 0 {
		logger.Error("Invalid user ID in token", "user_id", claims.UserID)
		return &authError{status: http.StatusForbidden, code: "FORBIDDEN", message: "Invalid user ID in token"}
	}

	c.Set("user_id", uint(userIDUint))
	c.Set("role", claims.Role)
	c.Set("token", tokenString)

	return nil
}

func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleStr, ok := c.Get("role").(string)
			if !ok || !strings.EqualFold(roleStr, "admin") {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Admin access required", nil,
				))
			}

			return next(c)
		}
	}
}
