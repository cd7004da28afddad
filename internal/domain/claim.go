package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClaimStatus tracks the lifecycle of a claim
type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "pending"
	ClaimApproved ClaimStatus = "approved"
	ClaimRejected ClaimStatus = "rejected"
	ClaimExpired  ClaimStatus = "expired"
)

// ValidClaimStatus reports whether s is one of the known claim statuses
func ValidClaimStatus(s ClaimStatus) bool {
	switch s {
	case ClaimPending, ClaimApproved, ClaimRejected, ClaimExpired:
		return true
	}
	return false
}

// Claim links one user to one deal they have claimed. At most one claim
// exists per (user, deal) pair, enforced by a unique index regardless of
// status.
type Claim struct {
	ID                     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID                 primitive.ObjectID `json:"userId" bson:"user_id"`
	DealID                 primitive.ObjectID `json:"dealId" bson:"deal_id"`
	Status                 ClaimStatus        `json:"status" bson:"status"`
	RedemptionCode         string             `json:"redemptionCode,omitempty" bson:"redemption_code,omitempty"`
	RedemptionInstructions string             `json:"redemptionInstructions,omitempty" bson:"redemption_instructions,omitempty"`
	Notes                  string             `json:"notes,omitempty" bson:"notes,omitempty"`
	ClaimedAt              time.Time          `json:"claimedAt" bson:"claimed_at"`
	ApprovedAt             *time.Time         `json:"approvedAt,omitempty" bson:"approved_at,omitempty"`
	ExpiresAt              *time.Time         `json:"expiresAt,omitempty" bson:"expires_at,omitempty"`
	UsedAt                 *time.Time         `json:"usedAt,omitempty" bson:"used_at,omitempty"`
	CreatedAt              time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt              time.Time          `json:"updatedAt" bson:"updated_at"`

	// Deal is attached for display when the claim is returned to a client.
	// It is never stored on the claim document.
	Deal *Deal `json:"deal,omitempty" bson:"-"`
}

// ClaimStats aggregates a user's claims by status
type ClaimStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
	Expired  int64 `json:"expired"`
}

// IsActive reports whether the claim is approved and not past its expiry
func (c *Claim) IsActive(now time.Time) bool {
	if c.Status != ClaimApproved {
		return false
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return false
	}
	return true
}
