package rest

import (
	"context"
	"net/http"
	"time"

	"glowSkincare/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	ProfileHandler struct {
		service ProfileService
		timeout time.Duration
	}

	ProfileService interface {
		LatestProfile(ctx context.Context, userID uint) (domain.SkinProfile, error)
		History(ctx context.Context, userID uint) ([]domain.SkinProfileRecord, error)
	}
)

func NewProfileHandler(service ProfileService) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		timeout: 10 * time.Second,
	}
}

func (h *ProfileHandler) Latest(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	skinProfile, err := h.service.LatestProfile(ctx, currentUserID(c))
	if err != nil {
		return respondError(c, "Failed to get latest skin profile", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(skinProfile))
}

func (h *ProfileHandler) History(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	records, err := h.service.History(ctx, currentUserID(c))
	if err != nil {
		return respondError(c, "Failed to get skin profile history", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(records))
}
