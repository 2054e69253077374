package rest

import (
	"context"
	"net/http"
	"time"

	"glowSkincare/domain"
	"glowSkincare/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	SubscriptionHandler struct {
		validate *validator.Validate
		service  SubscriptionService
		timeout  time.Duration
	}

	SubscriptionService interface {
		Plans() []domain.Plan
		Current(ctx context.Context, userID uint) (domain.Subscription, error)
		Subscribe(ctx context.Context, userID uint, planID domain.TierLevel, period domain.BillingPeriod, method domain.PaymentMethod) (domain.Subscription, error)
		Cancel(ctx context.Context, userID uint) (domain.Subscription, error)
	}

	SubscribeInput struct {
		PlanID        string `json:"plan_id" validate:"required,oneof=standard premium"`
		Period        string `json:"period" validate:"required,oneof=daily monthly"`
		PaymentMethod string `json:"payment_method" validate:"required,oneof=mpesa card"`
	}
)

func NewSubscriptionHandler(service SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		validate: validator.New(),
		service:  service,
		timeout:  10 * time.Second,
	}
}

func (h *SubscriptionHandler) Plans(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.service.Plans()))
}

func (h *SubscriptionHandler) Me(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sub, err := h.service.Current(ctx, currentUserID(c))
	if err != nil {
		return respondError(c, "Failed to get subscription", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(sub))
}

func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	var request SubscribeInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate subscription request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sub, err := h.service.Subscribe(ctx, currentUserID(c),
		domain.TierLevel(request.PlanID),
		domain.BillingPeriod(request.Period),
		domain.PaymentMethod(request.PaymentMethod),
	)
	if err != nil {
		return respondError(c, "Failed to subscribe", err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(sub))
}

func (h *SubscriptionHandler) Cancel(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sub, err := h.service.Cancel(ctx, currentUserID(c))
	if err != nil {
		return respondError(c, "Failed to cancel subscription", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(sub))
}
