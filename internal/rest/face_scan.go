package rest

import (
	"context"
	"io"
	"net/http"
	"time"

	"glowSkincare/business/profile"
	"glowSkincare/domain"
	"glowSkincare/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	FaceScanHandler struct {
		validate      *validator.Validate
		service       FaceScanService
		maxImageBytes int64
		timeout       time.Duration
	}

	FaceScanService interface {
		AnalyzeFace(ctx context.Context, image []byte) (profile.ScanResult, error)
		ConfirmFaceScan(ctx context.Context, userID uint, scanToken string, overrides domain.FaceScanOverrides) (domain.SkinProfile, error)
	}

	ConfirmFaceScanInput struct {
		ScanToken string  `json:"scan_token" validate:"required"`
		SkinTone  *string `json:"skin_tone,omitempty"`
		SkinType  *string `json:"skin_type,omitempty"`
	}
)

func NewFaceScanHandler(service FaceScanService, maxImageBytes int64) *FaceScanHandler {
	return &FaceScanHandler{
		validate:      validator.New(),
		service:       service,
		maxImageBytes: maxImageBytes,
		timeout:       30 * time.Second,
	}
}

// Analyze reads the "image" form file and returns the estimate for review.
func (h *FaceScanHandler) Analyze(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		logger.Error("Missing face image", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "image file is required"})
	}

	if h.maxImageBytes > 0 && file.Size > h.maxImageBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, ResponseError{Message: "image is too large"})
	}

	src, err := file.Open()
	if err != nil {
		logger.Error("Failed to open face image", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	defer src.Close()

	image, err := io.ReadAll(src)
	if err != nil {
		logger.Error("Failed to read face image", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.service.AnalyzeFace(ctx, image)
	if err != nil {
		return respondError(c, "Failed to analyze face image", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// Confirm turns a reviewed estimate plus corrections into a skin profile.
func (h *FaceScanHandler) Confirm(c echo.Context) error {
	var request ConfirmFaceScanInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate face scan confirmation", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var overrides domain.FaceScanOverrides
	if request.SkinTone != nil {
		tone := domain.SkinTone(*request.SkinTone)
		overrides.SkinTone = &tone
	}
	if request.SkinType != nil {
		skinType := domain.SkinType(*request.SkinType)
		overrides.SkinType = &skinType
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	skinProfile, err := h.service.ConfirmFaceScan(ctx, currentUserID(c), request.ScanToken, overrides)
	if err != nil {
		return respondError(c, "Failed to confirm face scan", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(skinProfile))
}
