package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role classifies platform users
type Role string

const (
	RoleFounder     Role = "founder"
	RoleTeamMember  Role = "team_member"
	RoleIndieHacker Role = "indie_hacker"
)

// ValidRole reports whether r is one of the known roles
func ValidRole(r Role) bool {
	switch r {
	case RoleFounder, RoleTeamMember, RoleIndieHacker:
		return true
	}
	return false
}

// User represents a registered platform user
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	Company      string             `json:"company,omitempty" bson:"company,omitempty"`
	Role         Role               `json:"role" bson:"role"`
	IsVerified   bool               `json:"isVerified" bson:"is_verified"`
	Avatar       string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Bio          string             `json:"bio,omitempty" bson:"bio,omitempty"`
	RefreshToken string             `json:"-" bson:"refresh_token,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updated_at"`
}

// PublicProfile is the client-safe projection of a user. The password hash
// and refresh token never leave the service.
type PublicProfile struct {
	ID         primitive.ObjectID `json:"id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Company    string             `json:"company,omitempty"`
	Role       Role               `json:"role"`
	IsVerified bool               `json:"isVerified"`
	Avatar     string             `json:"avatar,omitempty"`
	Bio        string             `json:"bio,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// PublicProfile returns the user data safe for client consumption
func (u *User) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Company:    u.Company,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		Avatar:     u.Avatar,
		Bio:        u.Bio,
		CreatedAt:  u.CreatedAt,
	}
}
