package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"leadportal-api/internal/models"
	"leadportal-api/internal/repositories"
)

// ImpersonationLookupRequest identifies the acting admin and the target user
type ImpersonationLookupRequest struct {
	UserID  string `json:"userId" validate:"required"`
	AdminID string `json:"adminId" validate:"required"`
}

// ImpersonationResult carries the target user plus a signed short-lived
// token asserting the impersonation
type ImpersonationResult struct {
	User  *models.User
	Token string
}

// adminService implements the AdminService interface
type adminService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration, logger *logrus.Logger) AdminService {
	if logger == nil {
		logger = logrus.New()
	}
	return &adminService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		validator: validator.New(),
		logger:    logger,
	}
}

// RequireAdmin verifies that adminID belongs to an administrator. Unknown
// ids behave the same as non-admin ids so callers cannot probe for accounts.
func (s *adminService) RequireAdmin(ctx context.Context, adminID string) error {
	role, err := s.userRepo.GetRole(ctx, adminID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUnauthorized
		}
		return fmt.Errorf("failed to verify admin role: %w", err)
	}
	if role != models.RoleAdmin {
		return ErrUnauthorized
	}
	return nil
}

// LookupUserForImpersonation returns the target user and a signed
// impersonation token after verifying the acting admin
func (s *adminService) LookupUserForImpersonation(ctx context.Context, req *ImpersonationLookupRequest) (*ImpersonationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.RequireAdmin(ctx, req.AdminID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	token, err := s.mintImpersonationToken(user.ID, req.AdminID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign impersonation token: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"admin_id":  req.AdminID,
		"target_id": user.ID,
	}).Info("Impersonation lookup")

	return &ImpersonationResult{User: user, Token: token}, nil
}

// mintImpersonationToken signs an HS256 token naming the impersonated user
// as subject and the acting admin in the "act" claim
func (s *adminService) mintImpersonationToken(userID, adminID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"act": adminID,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
