package service

import (
	"context"
	"sort"
	"time"

	"github.com/launchperks/deals-service/internal/domain"
	"github.com/launchperks/deals-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes so the service suite runs without Mongo.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) UpdateRefreshToken(_ context.Context, userID primitive.ObjectID, refreshToken string) error {
	user, ok := r.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	user.RefreshToken = refreshToken
	return nil
}

type fakeDealRepo struct {
	deals map[primitive.ObjectID]*domain.Deal
}

func newFakeDealRepo() *fakeDealRepo {
	return &fakeDealRepo{deals: make(map[primitive.ObjectID]*domain.Deal)}
}

func (r *fakeDealRepo) add(deal *domain.Deal) *domain.Deal {
	if deal.ID.IsZero() {
		deal.ID = primitive.NewObjectID()
	}
	r.deals[deal.ID] = deal
	return deal
}

func (r *fakeDealRepo) Create(_ context.Context, deal *domain.Deal) error {
	r.add(deal)
	return nil
}

func (r *fakeDealRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Deal, error) {
	deal, ok := r.deals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *deal
	return &copied, nil
}

func (r *fakeDealRepo) List(_ context.Context, filter repository.DealFilter) ([]*domain.Deal, int64, error) {
	var matched []*domain.Deal
	for _, deal := range r.deals {
		if !deal.IsActive {
			continue
		}
		if filter.Category != nil && deal.Category != *filter.Category {
			continue
		}
		if filter.IsLocked != nil && deal.IsLocked != *filter.IsLocked {
			continue
		}
		copied := *deal
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= total {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (r *fakeDealRepo) ListFeatured(_ context.Context, limit int64) ([]*domain.Deal, error) {
	var featured []*domain.Deal
	for _, deal := range r.deals {
		if deal.IsActive && deal.Featured {
			copied := *deal
			featured = append(featured, &copied)
		}
	}
	if int64(len(featured)) > limit {
		featured = featured[:limit]
	}
	return featured, nil
}

func (r *fakeDealRepo) ListPopular(_ context.Context, limit int64) ([]*domain.Deal, error) {
	var popular []*domain.Deal
	for _, deal := range r.deals {
		if deal.IsActive {
			copied := *deal
			popular = append(popular, &copied)
		}
	}
	sort.Slice(popular, func(i, j int) bool {
		return popular[i].ClaimCount > popular[j].ClaimCount
	})
	if int64(len(popular)) > limit {
		popular = popular[:limit]
	}
	return popular, nil
}

func (r *fakeDealRepo) CountByCategory(_ context.Context) ([]repository.CategoryCount, error) {
	counts := make(map[domain.Category]int64)
	for _, deal := range r.deals {
		if deal.IsActive {
			counts[deal.Category]++
		}
	}
	var result []repository.CategoryCount
	for category, count := range counts {
		result = append(result, repository.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})
	return result, nil
}

func (r *fakeDealRepo) IncrementClaimCount(_ context.Context, id primitive.ObjectID) error {
	deal, ok := r.deals[id]
	if !ok {
		return repository.ErrNotFound
	}
	deal.ClaimCount++
	return nil
}

func (r *fakeDealRepo) ExistsByTitle(_ context.Context, title string) (bool, error) {
	for _, deal := range r.deals {
		if deal.Title == title {
			return true, nil
		}
	}
	return false, nil
}

type claimKey struct {
	user primitive.ObjectID
	deal primitive.ObjectID
}

type fakeClaimRepo struct {
	claims map[primitive.ObjectID]*domain.Claim
	byPair map[claimKey]primitive.ObjectID
}

func newFakeClaimRepo() *fakeClaimRepo {
	return &fakeClaimRepo{
		claims: make(map[primitive.ObjectID]*domain.Claim),
		byPair: make(map[claimKey]primitive.ObjectID),
	}
}

func (r *fakeClaimRepo) Create(_ context.Context, claim *domain.Claim) error {
	key := claimKey{user: claim.UserID, deal: claim.DealID}
	if _, exists := r.byPair[key]; exists {
		return repository.ErrDuplicateClaim
	}
	if claim.ID.IsZero() {
		claim.ID = primitive.NewObjectID()
	}
	claim.CreatedAt = time.Now()
	claim.UpdatedAt = claim.CreatedAt
	copied := *claim
	copied.Deal = nil
	r.claims[claim.ID] = &copied
	r.byPair[key] = claim.ID
	return nil
}

func (r *fakeClaimRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Claim, error) {
	claim, ok := r.claims[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *claim
	return &copied, nil
}

func (r *fakeClaimRepo) FindByUserAndDeal(_ context.Context, userID, dealID primitive.ObjectID) (*domain.Claim, error) {
	id, ok := r.byPair[claimKey{user: userID, deal: dealID}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *r.claims[id]
	return &copied, nil
}

func (r *fakeClaimRepo) ListByUser(_ context.Context, userID primitive.ObjectID, filter repository.ClaimFilter) ([]*domain.Claim, int64, error) {
	var matched []*domain.Claim
	for _, claim := range r.claims {
		if claim.UserID != userID {
			continue
		}
		if filter.Status != nil && claim.Status != *filter.Status {
			continue
		}
		copied := *claim
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ClaimedAt.After(matched[j].ClaimedAt)
	})

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= total {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (r *fakeClaimRepo) StatsByUser(_ context.Context, userID primitive.ObjectID) (*domain.ClaimStats, error) {
	stats := &domain.ClaimStats{}
	for _, claim := range r.claims {
		if claim.UserID != userID {
			continue
		}
		stats.Total++
		switch claim.Status {
		case domain.ClaimPending:
			stats.Pending++
		case domain.ClaimApproved:
			stats.Approved++
		case domain.ClaimRejected:
			stats.Rejected++
		case domain.ClaimExpired:
			stats.Expired++
		}
	}
	return stats, nil
}
