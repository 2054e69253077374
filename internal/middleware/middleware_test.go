//go:build !integration

package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glowSkincare/business/recommend"
	"glowSkincare/domain"
	"glowSkincare/pkg/utils"

	"github.com/labstack/echo/v4"
)

type fakeValidator map[string]string

func (f fakeValidator) ValidateTokenFromRedis(_ context.Context, token string) (string, error) {
	userID, ok := f[token]
	if !ok {
		return "", errors.New("token not found")
	}
	return userID, nil
}

func serve(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})(c)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, c
}

func TestAuthMiddleware(t *testing.T) {
	utils.InitJWT("middleware-secret", time.Hour)

	token, err := utils.GenerateJWT("7", "customer")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}
	otherToken, _ := utils.GenerateJWT("8", "customer")

	validator := fakeValidator{token: "7", otherToken: "9"}

	tests := []struct {
		name   string
		mw     echo.MiddlewareFunc
		header string
		want   int
		userID uint
	}{
		{"required missing header", AuthMiddleware(validator), "", http.StatusUnauthorized, 0},
		{"required bad format", AuthMiddleware(validator), "Token " + token, http.StatusUnauthorized, 0},
		{"required valid", AuthMiddleware(validator), "Bearer " + token, http.StatusNoContent, 7},
		{"required revoked", AuthMiddleware(fakeValidator{}), "Bearer " + token, http.StatusUnauthorized, 0},
		{"required user mismatch", AuthMiddleware(validator), "Bearer " + otherToken, http.StatusUnauthorized, 0},
		{"optional anonymous", OptionalAuthMiddleware(validator), "", http.StatusNoContent, 0},
		{"optional valid", OptionalAuthMiddleware(validator), "Bearer " + token, http.StatusNoContent, 7},
		{"optional garbage token", OptionalAuthMiddleware(validator), "Bearer nope", http.StatusUnauthorized, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, c := serve(t, tt.mw, tt.header)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			got, _ := c.Get("user_id").(uint)
			if got != tt.userID {
				t.Errorf("user_id = %d, want %d", got, tt.userID)
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	for role, want := range map[string]int{"admin": http.StatusNoContent, "customer": http.StatusForbidden, "": http.StatusForbidden} {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
		if role != "" {
			c.Set("role", role)
		}
		_ = AdminOnly()(next)(c)
		if rec.Code != want {
			t.Errorf("role %q: status = %d, want %d", role, rec.Code, want)
		}
	}
}

func TestTraceMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	_ = TraceMiddleware()(func(c echo.Context) error {
		seen = recommend.TraceIDFromContext(c.Request().Context())
		return nil
	})(c)

	if seen != "req-123" {
		t.Errorf("trace id in context = %q, want req-123", seen)
	}
	if got := rec.Header().Get(HeaderTraceID); got != "req-123" {
		t.Errorf("%s header = %q", HeaderTraceID, got)
	}
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: product 1", domain.ErrNotFound), http.StatusNotFound},
		{&domain.ValidationError{Reason: "incomplete profile"}, http.StatusBadRequest},
		{fmt.Errorf("%w: breaker open", domain.ErrAnalysisFailed), http.StatusBadGateway},
		{echo.NewHTTPError(http.StatusRequestEntityTooLarge, "too big"), http.StatusRequestEntityTooLarge},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		ErrorHandler(tt.err, c)
		if rec.Code != tt.want {
			t.Errorf("ErrorHandler(%v) status = %d, want %d", tt.err, rec.Code, tt.want)
		}
	}
}
