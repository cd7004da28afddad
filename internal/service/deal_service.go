package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/launchperks/deals-service/internal/domain"
	"github.com/launchperks/deals-service/internal/dto"
	"github.com/launchperks/deals-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dealService implements DealService
type dealService struct {
	dealRepo repository.DealRepository
}

// NewDealService creates a new deal service
func NewDealService(dealRepo repository.DealRepository) DealService {
	return &dealService{dealRepo: dealRepo}
}

// List returns active deals matching the query plus pagination metadata
func (s *dealService) List(ctx context.Context, query *dto.DealListQuery) (*dto.DealListData, error) {
	filter := repository.DealFilter{
		Search: query.Search,
		Sort:   query.Sort,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 12
	}

	if query.Category != "" {
		category := domain.Category(query.Category)
		if !domain.ValidCategory(category) {
			return nil, domain.NewValidationError("Validation failed", domain.FieldError{
				Field:   "category",
				Message: "Invalid category",
			})
		}
		filter.Category = &category
	}
	filter.IsLocked = query.IsLocked

	deals, total, err := s.dealRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}

	return &dto.DealListData{
		Deals:      deals,
		Pagination: dto.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// Get fetches a single deal; inactive deals are reported as missing
func (s *dealService) Get(ctx context.Context, dealID string) (*domain.Deal, error) {
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

	return deal, nil
}

// Featured returns the newest featured deals
func (s *dealService) Featured(ctx context.Context, limit int64) ([]*domain.Deal, error) {
	if limit < 1 {
		limit = 6
	}

	deals, err := s.dealRepo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured deals: %w", err)
	}

	return deals, nil
}

// Popular returns deals ordered by claim count
func (s *dealService) Popular(ctx context.Context, limit int64) ([]*domain.Deal, error) {
	if limit < 1 {
		limit = 6
	}

	deals, err := s.dealRepo.ListPopular(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list popular deals: %w", err)
	}

	return deals, nil
}

// Categories returns per-category active deal counts
func (s *dealService) Categories(ctx context.Context) ([]repository.CategoryCount, error) {
	counts, err := s.dealRepo.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	return counts, nil
}
