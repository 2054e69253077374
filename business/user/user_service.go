package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"glowSkincare/domain"
	"glowSkincare/pkg/logger"
	"glowSkincare/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uint) error
}

// TokenRepository contract interface
type TokenRepository interface {
	StoreToken(ctx context.Context, userID, token string, data domain.TokenData, ttl time.Duration) error
	GetTokenData(ctx context.Context, userID string) (*domain.TokenData, error)
	ValidateToken(ctx context.Context, token string) (string, error)
	DeleteToken(ctx context.Context, userID, token string) error
}

type userService struct {
	userRepo  UserRepository
	tokenRepo TokenRepository
	validate  *validator.Validate
}

func NewUserService(
	userRepo UserRepository,
	tokenRepo TokenRepository,
	validate *validator.Validate,
) *userService {
	return &userService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		validate:  validate,
	}
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

var validRoles = map[string]bool{
	RoleCustomer: true,
	RoleAdmin:    true,
}

var ErrInvalidCredentials = fmt.Errorf("%w: invalid phone number or PIN", domain.ErrUnauthenticated)

// NormalizePhoneNumber turns local Kenyan numbers (07.., 01..) into E.164.
func NormalizePhoneNumber(phone string) string {
	phone = strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
	switch {
	case strings.HasPrefix(phone, "+"):
		return phone
	case strings.HasPrefix(phone, "254"):
		return "+" + phone
	case strings.HasPrefix(phone, "0") && len(phone) == 10:
		return "+254" + phone[1:]
	}
	return phone
}

func (s *userService) validatePin(pin string) error {
	if err := s.validate.Var(pin, "required,numeric,len=4"); err != nil {
		return &domain.ValidationError{Fields: []string{"pin"}, Reason: "PIN must be exactly 4 digits"}
	}
	return nil
}

func (s *userService) Register(ctx context.Context, name, phoneNumber, pin string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("context error: %w", err)
	}

	phoneNumber = NormalizePhoneNumber(phoneNumber)
	if err := s.validate.Var(phoneNumber, "required,e164"); err != nil {
		logger.Error("Invalid phone number format", err)
		return domain.User{}, &domain.ValidationError{Fields: []string{"phone_number"}, Reason: "invalid phone number"}
	}

	if err := s.validatePin(pin); err != nil {
		logger.Error("Invalid user PIN", err)
		return domain.User{}, err
	}

	if strings.TrimSpace(name) == "" {
		return domain.User{}, &domain.ValidationError{Fields: []string{"name"}, Reason: "name is required"}
	}

	existingUser, err := s.userRepo.FindByPhoneNumber(ctx, phoneNumber)
	if err == nil && existingUser.ID > 0 {
		logger.Error("Phone number already registered")
		return domain.User{}, &domain.ValidationError{Fields: []string{"phone_number"}, Reason: "phone number already registered"}
	}

	pinHash, err := utils.HashPassword(pin)
	if err != nil {
		logger.Error("Failed to hash PIN", err)
		return domain.User{}, errors.New("failed to hash pin")
	}

	newUser := domain.User{
		Name:        strings.TrimSpace(name),
		PhoneNumber: phoneNumber,
		Pin:         string(pinHash),
		Role:        RoleCustomer,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, err
	}

	logger.Info("user registered", "user_id", newUser.ID)

	newUser.Pin = ""
	return newUser, nil
}

func (s *userService) Login(ctx context.Context, phoneNumber, pin, ipAddress, userAgent string) (string, domain.User, error) {
	user, err := s.userRepo.FindByPhoneNumber(ctx, NormalizePhoneNumber(phoneNumber))
	if err != nil {
		logger.Warn("Invalid user credentials", err)
		return "", domain.User{}, ErrInvalidCredentials
	}

	if !utils.CheckPassword(pin, user.Pin) {
		logger.Warn("User PIN incorrect", "user_id", user.ID)
		return "", domain.User{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user, ipAddress, userAgent)
	if err != nil {
		return "", domain.User{}, err
	}

	user.Pin = ""
	return token, user, nil
}

func (s *userService) issueToken(ctx context.Context, user domain.User, ipAddress, userAgent string) (string, error) {
	userIDStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, user.Role)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", errors.New("failed to generate token")
	}

	now := time.Now()
	data := domain.TokenData{
		UserID:    userIDStr,
		Role:      user.Role,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(utils.TokenTTL()),
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}

	if err := s.tokenRepo.StoreToken(ctx, userIDStr, token, data, utils.TokenTTL()); err != nil {
		logger.Error("Failed to store token", err)
		return "", errors.New("failed to store token")
	}

	return token, nil
}

// ValidateTokenFromRedis returns the user id a live token belongs to.
func (s *userService) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	userID, err := s.tokenRepo.ValidateToken(ctx, token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	return userID, nil
}

// RefreshToken replaces a live token with a new one.
func (s *userService) RefreshToken(ctx context.Context, oldToken, ipAddress, userAgent string) (string, domain.User, error) {
	userIDStr, err := s.ValidateTokenFromRedis(ctx, oldToken)
	if err != nil {
		logger.Warn("Refresh with unknown token", err)
		return "", domain.User{}, err
	}

	id, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("%w: invalid user id in token", domain.ErrUnauthenticated)
	}

	user, err := s.userRepo.FindByID(ctx, uint(id))
	if err != nil {
		logger.Error("Failed to find user for refresh", err)
		return "", domain.User{}, err
	}

	if err := s.tokenRepo.DeleteToken(ctx, userIDStr, oldToken); err != nil {
		logger.Warn("Failed to delete old token", err)
	}

	token, err := s.issueToken(ctx, user, ipAddress, userAgent)
	if err != nil {
		return "", domain.User{}, err
	}

	user.Pin = ""
	return token, user, nil
}

func (s *userService) Logout(ctx context.Context, userID uint, token string) error {
	userIDStr := strconv.FormatUint(uint64(userID), 10)
	if err := s.tokenRepo.DeleteToken(ctx, userIDStr, token); err != nil {
		logger.Error("Failed to delete token", err)
		return err
	}

	logger.Info("user logged out", "user_id", userID)
	return nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get user by ID", err)
		return domain.User{}, err
	}

	user.Pin = ""
	return user, nil
}

// GetAllUsers retrieves all users
func (s *userService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get all users", err)
		return nil, err
	}

	for i := range users {
		users[i].Pin = ""
	}

	return users, nil
}

// UpdateUser changes name, PIN or role; empty fields are left as they are.
func (s *userService) UpdateUser(ctx context.Context, id uint, updateData *domain.User) (domain.User, error) {
	existingUser, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("User not found for update", err)
		return domain.User{}, err
	}

	if strings.TrimSpace(updateData.Name) != "" {
		existingUser.Name = strings.TrimSpace(updateData.Name)
	}

	if updateData.Pin != "" {
		if err := s.validatePin(updateData.Pin); err != nil {
			logger.Error("Invalid PIN", err)
			return domain.User{}, err
		}

		pinHash, err := utils.HashPassword(updateData.Pin)
		if err != nil {
			logger.Error("Failed to hash PIN", err)
			return domain.User{}, errors.New("failed to hash pin")
		}
		existingUser.Pin = string(pinHash)
	}

	roleChanged := false
	if updateData.Role != "" {
		if !validRoles[updateData.Role] {
			return domain.User{}, &domain.ValidationError{Fields: []string{"role"}, Reason: "invalid role"}
		}
		roleChanged = updateData.Role != existingUser.Role
		existingUser.Role = updateData.Role
	}

	if err := s.userRepo.Update(ctx, &existingUser); err != nil {
		logger.Error("Failed to update user", err)
		return domain.User{}, err
	}

	// the role travels in the JWT claims, so the live token must go
	if roleChanged {
		if err := s.revokeToken(ctx, existingUser.ID); err != nil {
			return domain.User{}, err
		}
	}

	existingUser.Pin = ""
	return existingUser, nil
}

func (s *userService) revokeToken(ctx context.Context, userID uint) error {
	userIDStr := strconv.FormatUint(uint64(userID), 10)

	data, err := s.tokenRepo.GetTokenData(ctx, userIDStr)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		logger.Error("Failed to look up token for revocation", err)
		return err
	}

	if err := s.tokenRepo.DeleteToken(ctx, userIDStr, data.Token); err != nil {
		logger.Error("Failed to revoke token", err)
		return err
	}

	logger.Info("Token revoked after role change", "user_id", userID)
	return nil
}

// DeleteUser soft deletes a user
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		logger.Error("User not found for deletion", err)
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete user", err)
		return err
	}

	return nil
}
