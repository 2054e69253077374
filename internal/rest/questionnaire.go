package rest

import (
	"context"
	"net/http"
	"time"

	"glowSkincare/business/questionnaire"
	"glowSkincare/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	QuestionnaireHandler struct {
		validate *validator.Validate
		service  QuestionnaireService
		timeout  time.Duration
	}

	QuestionnaireService interface {
		Start(ctx context.Context, userID uint) (questionnaire.Session, error)
		Get(ctx context.Context, id string) (questionnaire.Session, error)
		Select(ctx context.Context, id, option string) (questionnaire.Session, error)
		Next(ctx context.Context, id string) (questionnaire.Session, error)
		Back(ctx context.Context, id string) (questionnaire.Session, error)
	}

	SelectOptionInput struct {
		Option string `json:"option" validate:"required"`
	}
)

func NewQuestionnaireHandler(service QuestionnaireService) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		validate: validator.New(),
		service:  service,
		timeout:  10 * time.Second,
	}
}

func (h *QuestionnaireHandler) Start(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	session, err := h.service.Start(ctx, currentUserID(c))
	if err != nil {
		return respondError(c, "Failed to start questionnaire", err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(session))
}

func (h *QuestionnaireHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	session, err := h.service.Get(ctx, c.Param("session"))
	if err != nil {
		return respondError(c, "Failed to get questionnaire session", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(session))
}

func (h *QuestionnaireHandler) Select(c echo.Context) error {
	var request SelectOptionInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate questionnaire option", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	session, err := h.service.Select(ctx, c.Param("session"), request.Option)
	if err != nil {
		return respondError(c, "Failed to select questionnaire option", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(session))
}

func (h *QuestionnaireHandler) Next(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	session, err := h.service.Next(ctx, c.Param("session"))
	if err != nil {
		return respondError(c, "Failed to advance questionnaire", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(session))
}

func (h *QuestionnaireHandler) Back(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	session, err := h.service.Back(ctx, c.Param("session"))
	if err != nil {
		return respondError(c, "Failed to go back in questionnaire", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(session))
}
