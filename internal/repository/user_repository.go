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
)

// userRepository implements UserRepository on MongoDB
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.Mongo) UserRepository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

// Create inserts a new user. The unique email index rejects duplicates.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("user with email %s already exists: %w", user.Email, ErrDuplicateEmail)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByEmail retrieves a user by email. Callers are expected to sanitize the
// address first; emails are stored lowercased.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}

	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user with email %s not found: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user := &domain.User{}

	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user with id %s not found: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// UpdateRefreshToken replaces the stored refresh token. An empty token
// clears it, which invalidates future refresh attempts immediately.
func (r *userRepository) UpdateRefreshToken(ctx context.Context, userID primitive.ObjectID, refreshToken string) error {
	update := bson.M{
		"$set": bson.M{
			"refresh_token": refreshToken,
			"updated_at":    time.Now(),
		},
	}
	if refreshToken == "" {
		update = bson.M{
			"$unset": bson.M{"refresh_token": ""},
			"$set":   bson.M{"updated_at": time.Now()},
		}
	}

	result, err := r.coll.UpdateByID(ctx, userID, update)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found: %w", userID.Hex(), ErrNotFound)
	}

	return nil
}
