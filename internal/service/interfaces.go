package service

import (
	"context"

	"github.com/launchperks/deals-service/internal/domain"
	"github.com/launchperks/deals-service/internal/dto"
	"github.com/launchperks/deals-service/internal/repository"
)

// AuthService defines methods for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthData, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthData, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	Logout(ctx context.Context, user *domain.User) error
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
}

// DealService defines methods for deal catalog queries
type DealService interface {
	List(ctx context.Context, query *dto.DealListQuery) (*dto.DealListData, error)
	Get(ctx context.Context, dealID string) (*domain.Deal, error)
	Featured(ctx context.Context, limit int64) ([]*domain.Deal, error)
	Popular(ctx context.Context, limit int64) ([]*domain.Deal, error)
	Categories(ctx context.Context) ([]repository.CategoryCount, error)
}

// ClaimService decides claim admission and answers claim queries
type ClaimService interface {
	Claim(ctx context.Context, user *domain.User, dealID string) (*domain.Claim, error)
	List(ctx context.Context, user *domain.User, query *dto.ClaimListQuery) (*dto.ClaimListData, error)
	Get(ctx context.Context, user *domain.User, claimID string) (*domain.Claim, error)
	Stats(ctx context.Context, user *domain.User) (*domain.ClaimStats, error)
}
