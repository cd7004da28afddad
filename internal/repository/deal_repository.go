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

// dealRepository implements DealRepository on MongoDB
type dealRepository struct {
	coll *mongo.Collection
}

// NewDealRepository creates a new deal repository
func NewDealRepository(db *database.Mongo) DealRepository {
	return &dealRepository{coll: db.Collection(dealsCollection)}
}

// Create inserts a new deal
func (r *dealRepository) Create(ctx context.Context, deal *domain.Deal) error {
	now := time.Now()
	if deal.ID.IsZero() {
		deal.ID = primitive.NewObjectID()
	}
	if deal.CreatedAt.IsZero() {
		deal.CreatedAt = now
	}
	deal.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, deal); err != nil {
		return fmt.Errorf("failed to create deal: %w", err)
	}

	return nil
}

// GetByID retrieves a deal by ID regardless of its active flag. Callers
// decide whether inactive deals count as missing.
func (r *dealRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Deal, error) {
	deal := &domain.Deal{}

	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(deal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("deal with id %s not found: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get deal by id: %w", err)
	}

	return deal, nil
}

// sortSpec maps API sort values to Mongo sort documents
func sortSpec(sort string) bson.D {
	switch sort {
	case "createdAt":
		return bson.D{{Key: "created_at", Value: 1}}
	case "-claimCount":
		return bson.D{{Key: "claim_count", Value: -1}}
	case "claimCount":
		return bson.D{{Key: "claim_count", Value: 1}}
	default:
		// newest first
		return bson.D{{Key: "created_at", Value: -1}}
	}
}

// List returns active deals matching the filter plus the total match count
func (r *dealRepository) List(ctx context.Context, filter DealFilter) ([]*domain.Deal, int64, error) {
	query := bson.M{"is_active": true}

	if filter.Category != nil {
		query["category"] = *filter.Category
	}
	if filter.IsLocked != nil {
		query["is_locked"] = *filter.IsLocked
	}
	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}

	skip := (filter.Page - 1) * filter.Limit

	opts := options.Find().
		SetSort(sortSpec(filter.Sort)).
		SetSkip(skip).
		SetLimit(filter.Limit)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list deals: %w", err)
	}

	deals := []*domain.Deal{}
	if err := cursor.All(ctx, &deals); err != nil {
		return nil, 0, fmt.Errorf("failed to decode deals: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count deals: %w", err)
	}

	return deals, total, nil
}

// ListFeatured returns the newest featured active deals
func (r *dealRepository) ListFeatured(ctx context.Context, limit int64) ([]*domain.Deal, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"is_active": true, "featured": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured deals: %w", err)
	}

	deals := []*domain.Deal{}
	if err := cursor.All(ctx, &deals); err != nil {
		return nil, fmt.Errorf("failed to decode featured deals: %w", err)
	}

	return deals, nil
}

// ListPopular returns active deals ordered by claim count
func (r *dealRepository) ListPopular(ctx context.Context, limit int64) ([]*domain.Deal, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "claim_count", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list popular deals: %w", err)
	}

	deals := []*domain.Deal{}
	if err := cursor.All(ctx, &deals); err != nil {
		return nil, fmt.Errorf("failed to decode popular deals: %w", err)
	}

	return deals, nil
}

// CountByCategory aggregates active deal counts per category, most
// populated first
func (r *dealRepository) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_active": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$category",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate categories: %w", err)
	}

	counts := []CategoryCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode category counts: %w", err)
	}

	return counts, nil
}

// IncrementClaimCount atomically bumps the claim counter by one
func (r *dealRepository) IncrementClaimCount(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{
		"$inc": bson.M{"claim_count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := r.coll.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("failed to increment claim count: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("deal with id %s not found: %w", id.Hex(), ErrNotFound)
	}

	return nil
}

// ExistsByTitle reports whether a deal with the exact title exists. Used by
// the seed tool to stay idempotent.
func (r *dealRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"title": title})
	if err != nil {
		return false, fmt.Errorf("failed to check deal title: %w", err)
	}
	return count > 0, nil
}
