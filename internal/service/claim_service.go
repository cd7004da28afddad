package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/launchperks/deals-service/internal/domain"
	"github.com/launchperks/deals-service/internal/dto"
	"github.com/launchperks/deals-service/internal/repository"
	"github.com/launchperks/deals-service/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const msgAlreadyClaimed = "You have already claimed this deal"

// claimService implements ClaimService
type claimService struct {
	claimRepo repository.ClaimRepository
	dealRepo  repository.DealRepository
}

// NewClaimService creates a new claim service
func NewClaimService(claimRepo repository.ClaimRepository, dealRepo repository.DealRepository) ClaimService {
	return &claimService{
		claimRepo: claimRepo,
		dealRepo:  dealRepo,
	}
}

// Claim admits a (user, deal) claim. Guards run in order and short-circuit:
// deal existence, claimability, verification gate for locked deals,
// duplicate check. On admission the claim is inserted with its redemption
// code, then the deal counter is bumped atomically. The unique (user, deal)
// index backs the duplicate check, so a concurrent attempt that slips past
// the lookup still fails at the insert.
func (s *claimService) Claim(ctx context.Context, user *domain.User, dealID string) (*domain.Claim, error) {
	id, err := primitive.ObjectIDFromHex(dealID)
	if err != nil {
		return nil, domain.NewValidationError("Invalid deal ID")
	}

	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("Deal not found")
		}
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}
	if !deal.IsActive {
		return nil, domain.NewNotFoundError("Deal not found")
	}

	now := time.Now()
	if c := deal.Claimability(now); !c.Claimable {
		return nil, domain.NewValidationError(c.Reason)
	}

	if deal.IsLocked && !user.IsVerified {
		return nil, domain.NewAuthorizationError(
			"This deal requires account verification. Please verify your account to claim this deal.")
	}

	_, err = s.claimRepo.FindByUserAndDeal(ctx, user.ID, deal.ID)
	if err == nil {
		return nil, domain.NewConflictError(msgAlreadyClaimed)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing claim: %w", err)
	}

	code, err := utils.GenerateRedemptionCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate redemption code: %w", err)
	}

	claim := &domain.Claim{
		UserID:                 user.ID,
		DealID:                 deal.ID,
		Status:                 domain.ClaimApproved,
		RedemptionCode:         code,
		RedemptionInstructions: fmt.Sprintf("Visit %s and use your redemption code at checkout.", deal.Partner.Website),
		ClaimedAt:              now,
		ApprovedAt:             &now,
	}

	if err := s.claimRepo.Create(ctx, claim); err != nil {
		if errors.Is(err, repository.ErrDuplicateClaim) {
			return nil, domain.NewConflictError(msgAlreadyClaimed)
		}
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}

	// No compensating rollback: if the increment fails the claim stays
	// without the counter moving.
	if err := s.dealRepo.IncrementClaimCount(ctx, deal.ID); err != nil {
		return nil, fmt.Errorf("failed to increment claim count: %w", err)
	}
	deal.ClaimCount++

	claim.Deal = deal
	return claim, nil
}

// List returns the user's claims, newest first, with pagination metadata.
// Each claim carries its deal for display.
func (s *claimService) List(ctx context.Context, user *domain.User, query *dto.ClaimListQuery) (*dto.ClaimListData, error) {
	filter := repository.ClaimFilter{
		Page:  query.Page,
		Limit: query.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	if query.Status != "" {
		status := domain.ClaimStatus(query.Status)
		if !domain.ValidClaimStatus(status) {
			return nil, domain.NewValidationError("Validation failed", domain.FieldError{
				Field:   "status",
				Message: "Invalid status",
			})
		}
		filter.Status = &status
	}

	claims, total, err := s.claimRepo.ListByUser(ctx, user.ID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}

	for _, claim := range claims {
		if err := s.attachDeal(ctx, claim); err != nil {
			return nil, err
		}
	}

	return &dto.ClaimListData{
		Claims:     claims,
		Pagination: dto.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// Get fetches a single claim; only the owner may read it
func (s *claimService) Get(ctx context.Context, user *domain.User, claimID string) (*domain.Claim, error) {
	id, err := primitive.ObjectIDFromHex(claimID)
	if err != nil {
		return nil, domain.NewValidationError("Invalid claim ID")
	}

	claim, err := s.claimRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("Claim not found")
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}

	if claim.UserID != user.ID {
		return nil, domain.NewAuthorizationError("Access denied")
	}

	if err := s.attachDeal(ctx, claim); err != nil {
		return nil, err
	}

	return claim, nil
}

// Stats aggregates the user's claims by status
func (s *claimService) Stats(ctx context.Context, user *domain.User) (*domain.ClaimStats, error) {
	stats, err := s.claimRepo.StatsByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get claim stats: %w", err)
	}

	return stats, nil
}

// attachDeal expands the claim's deal reference for display. A missing deal
// leaves the claim bare rather than failing the whole listing.
func (s *claimService) attachDeal(ctx context.Context, claim *domain.Claim) error {
	deal, err := s.dealRepo.GetByID(ctx, claim.DealID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load deal for claim: %w", err)
	}
	claim.Deal = deal
	return nil
}
