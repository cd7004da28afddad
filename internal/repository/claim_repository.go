package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/launchperks/deals-service/internal/domain"
	"github.com/launchperks/deals-service/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// claimRepository implements ClaimRepository on MongoDB
type claimRepository struct {
	coll *mongo.Collection
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *database.Mongo) ClaimRepository {
	return &claimRepository{coll: db.Collection(claimsCollection)}
}

// Create inserts a new claim. The unique (user_id, deal_id) index is the
// authoritative duplicate guard; a concurrent insert for the same pair
// surfaces here as ErrDuplicateClaim.
func (r *claimRepository) Create(ctx context.Context, claim *domain.Claim) error {
	now := time.Now()
	if claim.ID.IsZero() {
		claim.ID = primitive.NewObjectID()
	}
	if claim.ClaimedAt.IsZero() {
		claim.ClaimedAt = now
	}
	if claim.CreatedAt.IsZero() {
		claim.CreatedAt = now
	}
	claim.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, claim)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("claim for user %s and deal %s: %w", claim.UserID.Hex(), claim.DealID.Hex(), ErrDuplicateClaim)
		}
		return fmt.Errorf("failed to create claim: %w", err)
	}

	return nil
}

// GetByID retrieves a claim by ID
func (r *claimRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Claim, error) {
	claim := &domain.Claim{}

	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(claim)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("claim with id %s not found: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get claim by id: %w", err)
	}

	return claim, nil
}

// FindByUserAndDeal looks up the claim for an exact (user, deal) pair,
// regardless of status
func (r *claimRepository) FindByUserAndDeal(ctx context.Context, userID, dealID primitive.ObjectID) (*domain.Claim, error) {
	claim := &domain.Claim{}

	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "deal_id": dealID}).Decode(claim)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find claim: %w", err)
	}

	return claim, nil
}

// ListByUser returns a user's claims, newest first, plus the total count
func (r *claimRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, filter ClaimFilter) ([]*domain.Claim, int64, error) {
	query := bson.M{"user_id": userID}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}

	skip := (filter.Page - 1) * filter.Limit

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(filter.Limit)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list claims: %w", err)
	}

	claims := []*domain.Claim{}
	if err := cursor.All(ctx, &claims); err != nil {
		return nil, 0, fmt.Errorf("failed to decode claims: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count claims: %w", err)
	}

	return claims, total, nil
}

// StatsByUser aggregates a user's claims by status
func (r *claimRepository) StatsByUser(ctx context.Context, userID primitive.ObjectID) (*domain.ClaimStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate claim stats: %w", err)
	}

	var rows []struct {
		Status domain.ClaimStatus `bson:"_id"`
		Count  int64              `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode claim stats: %w", err)
	}

	stats := &domain.ClaimStats{}
	for _, row := range rows {
		switch row.Status {
		case domain.ClaimPending:
			stats.Pending = row.Count
		case domain.ClaimApproved:
			stats.Approved = row.Count
		case domain.ClaimRejected:
			stats.Rejected = row.Count
		case domain.ClaimExpired:
			stats.Expired = row.Count
		}
		stats.Total += row.Count
	}

	return stats, nil
}
