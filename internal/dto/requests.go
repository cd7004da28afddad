package dto

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Company  string `json:"company" binding:"omitempty,max=100"`
	Role     string `json:"role" binding:"omitempty,oneof=founder team_member indie_hacker"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the refresh token to exchange
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ClaimRequest represents a claim creation request
type ClaimRequest struct {
	DealID string `json:"dealId" binding:"required"`
}

// DealListQuery narrows the deal catalog listing
type DealListQuery struct {
	Category string `form:"category"`
	IsLocked *bool  `form:"isLocked"`
	Search   string `form:"search" binding:"omitempty,max=100"`
	Page     int64  `form:"page,default=1" binding:"omitempty,min=1"`
	Limit    int64  `form:"limit,default=12" binding:"omitempty,min=1,max=100"`
	Sort     string `form:"sort,default=-createdAt"`
}

// LimitQuery is the single-knob query for featured/popular listings
type LimitQuery struct {
	Limit int64 `form:"limit,default=6" binding:"omitempty,min=1,max=100"`
}

// ClaimListQuery narrows a user's claim listing
type ClaimListQuery struct {
	Status string `form:"status"`
	Page   int64  `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int64  `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}
