package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/launchperks/deals-service/internal/domain"
	"github.com/launchperks/deals-service/internal/dto"
	"github.com/launchperks/deals-service/internal/repository"
	"github.com/launchperks/deals-service/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Deliberately identical for unknown email and wrong password so the
// response does not leak account existence.
const msgInvalidCredentials = "Invalid email or password"

// authService implements AuthService
type authService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	bcryptCost int
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager, bcryptCost int) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user and issues a token pair
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthData, error) {
	email := utils.SanitizeEmail(req.Email)
	if !utils.ValidateEmail(email) {
		return nil, domain.NewValidationError("Validation failed", domain.FieldError{
			Field:   "email",
			Message: "Please provide a valid email",
		})
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.NewConflictError("Email already registered")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := domain.Role(req.Role)
	if role == "" {
		role = domain.RoleIndieHacker
	}
	if !domain.ValidRole(role) {
		return nil, domain.NewValidationError("Validation failed", domain.FieldError{
			Field:   "role",
			Message: "Invalid role",
		})
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: passwordHash,
		Company:      req.Company,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Concurrent registration can race past the existence check; the
		// unique email index settles it.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domain.NewConflictError("Email already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueAuthData(ctx, user)
}

// Login authenticates a user and issues a token pair
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthData, error) {
	user, err := s.userRepo.GetByEmail(ctx, utils.SanitizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewAuthenticationError(msgInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, domain.NewAuthenticationError(msgInvalidCredentials)
	}

	return s.issueAuthData(ctx, user)
}

// Refresh exchanges a refresh token for a new pair. Only the most recently
// stored refresh token is honored; anything older is rejected even if it has
// not expired.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if refreshToken == "" {
		return nil, domain.NewValidationError("Refresh token is required")
	}

	userID, err := s.jwtManager.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, domain.NewAuthenticationError("Invalid refresh token")
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.NewAuthenticationError("Invalid refresh token")
	}

	user, err := s.userRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewAuthenticationError("Invalid refresh token")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.RefreshToken != refreshToken {
		return nil, domain.NewAuthenticationError("Invalid refresh token")
	}

	pair, err := s.jwtManager.IssuePair(user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return pair, nil
}

// Logout clears the stored refresh token, invalidating future refresh
// attempts immediately
func (s *authService) Logout(ctx context.Context, user *domain.User) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, ""); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// Authenticate verifies an access token and loads the user behind it
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	userID, err := s.jwtManager.VerifyAccess(accessToken)
	if err != nil {
		return nil, domain.NewAuthenticationError("Invalid or expired token")
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.NewAuthenticationError("Invalid or expired token")
	}

	user, err := s.userRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewAuthenticationError("User not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// issueAuthData issues a token pair and persists the refresh token on the
// user, replacing whatever was stored before
func (s *authService) issueAuthData(ctx context.Context, user *domain.User) (*dto.AuthData, error) {
	pair, err := s.jwtManager.IssuePair(user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.AuthData{
		User:         user.PublicProfile(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
