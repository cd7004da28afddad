package dto

import (
	"github.com/launchperks/deals-service/internal/domain"
	"github.com/launchperks/deals-service/internal/repository"
)

// Response is the success envelope shared by every endpoint
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the failure envelope shared by every endpoint
type ErrorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

// Pagination carries listing metadata
type Pagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPagination computes page-count metadata for a listing
func NewPagination(page, limit, total int64) Pagination {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}

// AuthData is returned by register and login
type AuthData struct {
	User         domain.PublicProfile `json:"user"`
	AccessToken  string               `json:"accessToken"`
	RefreshToken string               `json:"refreshToken"`
}

// ProfileData wraps the authenticated user's profile
type ProfileData struct {
	User domain.PublicProfile `json:"user"`
}

// DealData wraps a single deal
type DealData struct {
	Deal *domain.Deal `json:"deal"`
}

// DealListData wraps a deal listing with pagination metadata
type DealListData struct {
	Deals      []*domain.Deal `json:"deals"`
	Pagination Pagination     `json:"pagination"`
}

// DealsData wraps an unpaginated deal listing (featured, popular)
type DealsData struct {
	Deals []*domain.Deal `json:"deals"`
}

// CategoriesData wraps per-category deal counts
type CategoriesData struct {
	Categories []repository.CategoryCount `json:"categories"`
}

// ClaimData wraps a single claim
type ClaimData struct {
	Claim *domain.Claim `json:"claim"`
}

// ClaimListData wraps a claim listing with pagination metadata
type ClaimListData struct {
	Claims     []*domain.Claim `json:"claims"`
	Pagination Pagination      `json:"pagination"`
}

// ClaimStatsData wraps a user's claim statistics
type ClaimStatsData struct {
	Stats *domain.ClaimStats `json:"stats"`
}
