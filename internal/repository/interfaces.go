package repository

import (
	"context"

	"github.com/launchperks/deals-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DealFilter narrows and paginates deal catalog queries. Only active deals
// are ever returned.
type DealFilter struct {
	Category *domain.Category
	IsLocked *bool
	Search   string
	Sort     string
	Page     int64
	Limit    int64
}

// ClaimFilter narrows and paginates a user's claim listing
type ClaimFilter struct {
	Status *domain.ClaimStatus
	Page   int64
	Limit  int64
}

// CategoryCount is the per-category deal tally
type CategoryCount struct {
	Category domain.Category `json:"category" bson:"_id"`
	Count    int64           `json:"count" bson:"count"`
}

// UserRepository defines methods for user operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateRefreshToken(ctx context.Context, userID primitive.ObjectID, refreshToken string) error
}

// DealRepository defines methods for deal catalog operations
type DealRepository interface {
	Create(ctx context.Context, deal *domain.Deal) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Deal, error)
	List(ctx context.Context, filter DealFilter) ([]*domain.Deal, int64, error)
	ListFeatured(ctx context.Context, limit int64) ([]*domain.Deal, error)
	ListPopular(ctx context.Context, limit int64) ([]*domain.Deal, error)
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
	IncrementClaimCount(ctx context.Context, id primitive.ObjectID) error
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}

// ClaimRepository defines methods for claim ledger operations
type ClaimRepository interface {
	Create(ctx context.Context, claim *domain.Claim) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Claim, error)
	FindByUserAndDeal(ctx context.Context, userID, dealID primitive.ObjectID) (*domain.Claim, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID, filter ClaimFilter) ([]*domain.Claim, int64, error)
	StatsByUser(ctx context.Context, userID primitive.ObjectID) (*domain.ClaimStats, error)
}
