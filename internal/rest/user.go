package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"glowSkincare/domain"
	"glowSkincare/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	Register(ctx context.Context, name, phoneNumber, pin string) (domain.User, error)
	Login(ctx context.Context, phoneNumber, pin, ipAddress, userAgent string) (string, domain.User, error)
	RefreshToken(ctx context.Context, oldToken, ipAddress, userAgent string) (string, domain.User, error)
	Logout(ctx context.Context, userID uint, token string) error
	GetUserByID(ctx context.Context, id uint) (domain.User, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id uint, updateData *domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

// TierResolver reports the subscription tier shown on the account page.
type TierResolver interface {
	CurrentTier(ctx context.Context, userID uint) (domain.SubscriptionTier, error)
}

type UserHandler struct {
	userService UserService
	tiers       TierResolver
	validator   *validator.Validate
	timeout     time.Duration
}

func NewUserHandler(userService UserService, tiers TierResolver) *UserHandler {
	return &UserHandler{
		userService: userService,
		tiers:       tiers,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type UserRegisterRequest struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Pin         string `json:"pin" validate:"required,numeric,len=4"`
}

type UserLoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Pin         string `json:"pin" validate:"required"`
}

type UserUpdateRequest struct {
	Name string `json:"name,omitempty"`
	Pin  string `json:"pin,omitempty" validate:"omitempty,numeric,len=4"`
}

type AdminUserUpdateRequest struct {
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty" validate:"omitempty,oneof=customer admin"`
}

type RefreshTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var reqUser UserRegisterRequest

	if err := c.Bind(&reqUser); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&reqUser); err != nil {
		logger.Error("Failed to validation user register", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user, err := h.userService.Register(ctx, reqUser.Name, reqUser.PhoneNumber, reqUser.Pin)
	if err != nil {
		return respondError(c, "Failed to register user", err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Registration successful",
		"user":    user,
	})
}

func (h *UserHandler) Login(c echo.Context) error {
	var reqUser UserLoginRequest

	if err := c.Bind(&reqUser); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&reqUser); err != nil {
		logger.Error("Failed to validate user login", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	token, user, err := h.userService.Login(ctx, reqUser.PhoneNumber, reqUser.Pin, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return respondError(c, "Failed to login user", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// Me returns the logged in user with their current subscription tier.
func (h *UserHandler) Me(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	userID := currentUserID(c)

	user, err := h.userService.GetUserByID(ctx, userID)
	if err != nil {
		return respondError(c, "Failed to get current user", err)
	}

	tier, err := h.tiers.CurrentTier(ctx, userID)
	if err != nil {
		return respondError(c, "Failed to resolve subscription tier", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": user,
		"current": domain.CurrentUser{
			ID:     user.ID,
			Role:   user.Role,
			Tier:   tier.Level,
			Status: tier.Status,
		},
	})
}

// UpdateMe lets a user change their own name or PIN.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var reqUpdate UserUpdateRequest
	if err := c.Bind(&reqUpdate); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&reqUpdate); err != nil {
		logger.Error("Failed to validate user update", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updatedUser, err := h.userService.UpdateUser(ctx, currentUserID(c), &domain.User{
		Name: reqUpdate.Name,
		Pin:  reqUpdate.Pin,
	})
	if err != nil {
		return respondError(c, "Failed to update user", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "User updated successfully",
		"user":    updatedUser,
	})
}

// Logout handles user logout by invalidating token
func (h *UserHandler) Logout(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	token, ok := c.Get("token").(string)
	if !ok {
		logger.Error("Failed to get token from context")
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	if err := h.userService.Logout(ctx, currentUserID(c), token); err != nil {
		return respondError(c, "Failed to logout user", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Logout successful",
	})
}

// RefreshToken used for refresh user token
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate refresh token request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	newToken, user, err := h.userService.RefreshToken(ctx, req.Token, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return respondError(c, "Failed to refresh token", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Token refreshed successfully",
		"token":   newToken,
		"user":    user,
	})
}

func parseUserID(c echo.Context) (uint, error) {
	var userID uint
	if _, err := fmt.Sscan(c.Param("id"), &userID); err != nil {
		return 0, err
	}
	return userID, nil
}

// GetUserByID handles getting a user by ID
func (h *UserHandler) GetUserByID(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		logger.Error("Invalid user ID", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user, err := h.userService.GetUserByID(ctx, userID)
	if err != nil {
		return respondError(c, "Failed to get user", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "User retrieved successfully",
		"user":    user,
	})
}

// GetAllUsers handles getting all users
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	users, err := h.userService.GetAllUsers(ctx)
	if err != nil {
		return respondError(c, "Failed to get all users", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Users retrieved successfully",
		"users":   users,
	})
}

// UpdateUser lets an admin rename a user or change their role.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		logger.Error("Invalid user ID", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user ID"})
	}

	var reqUpdate AdminUserUpdateRequest
	if err := c.Bind(&reqUpdate); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&reqUpdate); err != nil {
		logger.Error("Failed to validate user update", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updatedUser, err := h.userService.UpdateUser(ctx, userID, &domain.User{
		Name: reqUpdate.Name,
		Role: reqUpdate.Role,
	})
	if err != nil {
		return respondError(c, "Failed to update user", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "User updated successfully",
		"user":    updatedUser,
	})
}

// DeleteUser handles deleting a user
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		logger.Error("Invalid user ID", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.userService.DeleteUser(ctx, userID); err != nil {
		return respondError(c, "Failed to delete user", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "User deleted successfully",
	})
}
