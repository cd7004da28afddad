package repository

import (
	"github.com/launchperks/deals-service/pkg/database"
)

// Collection names
const (
	usersCollection  = "users"
	dealsCollection  = "deals"
	claimsCollection = "claims"
)

// Repositories holds all repository interfaces
type Repositories struct {
	User  UserRepository
	Deal  DealRepository
	Claim ClaimRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *database.Mongo) *Repositories {
	return &Repositories{
		User:  NewUserRepository(db),
		Deal:  NewDealRepository(db),
		Claim: NewClaimRepository(db),
	}
}
