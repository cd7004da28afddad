package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups deals for filtering
type Category string

const (
	CategoryCloudServices Category = "cloud_services"
	CategoryMarketing     Category = "marketing"
	CategoryAnalytics     Category = "analytics"
	CategoryProductivity  Category = "productivity"
	CategoryDevelopment   Category = "development"
	CategoryDesign        Category = "design"
	CategoryCommunication Category = "communication"
	CategoryFinance       Category = "finance"
	CategoryLegal         Category = "legal"
	CategoryOther         Category = "other"
)

// Categories lists every known deal category
var Categories = []Category{
	CategoryCloudServices,
	CategoryMarketing,
	CategoryAnalytics,
	CategoryProductivity,
	CategoryDevelopment,
	CategoryDesign,
	CategoryCommunication,
	CategoryFinance,
	CategoryLegal,
	CategoryOther,
}

// ValidCategory reports whether c is one of the known categories
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DiscountType describes how a deal's discount is expressed
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
	DiscountCredits    DiscountType = "credits"
	DiscountFreeTrial  DiscountType = "free_trial"
)

// Partner holds the third-party vendor behind a deal
type Partner struct {
	Name        string `json:"name" bson:"name"`
	Logo        string `json:"logo,omitempty" bson:"logo,omitempty"`
	Website     string `json:"website" bson:"website"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Discount describes the value proposition of a deal
type Discount struct {
	Type          DiscountType `json:"type" bson:"type"`
	Value         string       `json:"value" bson:"value"`
	OriginalPrice string       `json:"originalPrice,omitempty" bson:"original_price,omitempty"`
}

// Deal represents a SaaS offer listed in the catalog
type Deal struct {
	ID                      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title                   string             `json:"title" bson:"title"`
	Description             string             `json:"description" bson:"description"`
	Category                Category           `json:"category" bson:"category"`
	Partner                 Partner            `json:"partner" bson:"partner"`
	Discount                Discount           `json:"discount" bson:"discount"`
	IsLocked                bool               `json:"isLocked" bson:"is_locked"`
	EligibilityRequirements string             `json:"eligibilityRequirements,omitempty" bson:"eligibility_requirements,omitempty"`
	Features                []string           `json:"features,omitempty" bson:"features,omitempty"`
	Terms                   string             `json:"terms,omitempty" bson:"terms,omitempty"`
	ValidUntil              *time.Time         `json:"validUntil,omitempty" bson:"valid_until,omitempty"`
	ClaimCount              int64              `json:"claimCount" bson:"claim_count"`
	MaxClaims               *int64             `json:"maxClaims,omitempty" bson:"max_claims,omitempty"`
	IsActive                bool               `json:"isActive" bson:"is_active"`
	Featured                bool               `json:"featured" bson:"featured"`
	CoverImage              string             `json:"coverImage,omitempty" bson:"cover_image,omitempty"`
	CreatedAt               time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt               time.Time          `json:"updatedAt" bson:"updated_at"`
}

// Claimability is the result of evaluating whether a deal can be claimed
type Claimability struct {
	Claimable bool
	Reason    string
}

// Unclaimable reasons, surfaced verbatim to clients
const (
	ReasonInactive   = "Deal is no longer active"
	ReasonExpired    = "Deal has expired"
	ReasonMaxReached = "Maximum claims reached"
)

// Claimability evaluates whether the deal accepts new claims at time now.
// Checks run in order: active flag, expiry, claim cap.
func (d *Deal) Claimability(now time.Time) Claimability {
	if !d.IsActive {
		return Claimability{Claimable: false, Reason: ReasonInactive}
	}

	if d.ValidUntil != nil && now.After(*d.ValidUntil) {
		return Claimability{Claimable: false, Reason: ReasonExpired}
	}

	if d.MaxClaims != nil && d.ClaimCount >= *d.MaxClaims {
		return Claimability{Claimable: false, Reason: ReasonMaxReached}
	}

	return Claimability{Claimable: true}
}
