package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/repositories"
	"github.com/stayhaven/hotel-booking/backend/internal/infrastructure/clients/mongodb"
	apperrors "github.com/stayhaven/hotel-booking/backend/pkg/errors"
)

const usersCollection = "users"

// UserAdapter implements user persistence in MongoDB.
type UserAdapter struct {
	col *mongo.Collection
}

// NewUserAdapter creates a new user adapter.
func NewUserAdapter(client *mongodb.Client) repositories.UserRepository {
	return &UserAdapter{
		col: client.Collection(usersCollection),
	}
}

type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	Name         string             `bson:"name,omitempty"`
	Role         string             `bson:"role"`
	PasswordHash string             `bson:"passwordHash,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func (d *userDocument) toEntity() *entities.User {
	return &entities.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		Name:         d.Name,
		Role:         entities.Role(d.Role),
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

// Create inserts a user record.
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	doc := userDocument{
		Email:        user.Email,
		Name:         user.Name,
		Role:         string(user.Role),
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}

	result, err := a.col.InsertOne(ctx, doc)
	if err != nil {
		return apperrors.NewInternalError("failed to create user", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return nil
}

// GetByEmail retrieves a user by email.
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var doc userDocument
	err := a.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user by email", err)
	}
	return doc.toEntity(), nil
}

// List retrieves all users.
func (a *UserAdapter) List(ctx context.Context) ([]*entities.User, error) {
	cursor, err := a.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list users", err)
	}
	defer cursor.Close(ctx)

	users := []*entities.User{}
	for cursor.Next(ctx) {
		var doc userDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, apperrors.NewInternalError("failed to decode user", err)
		}
		users = append(users, doc.toEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, apperrors.NewInternalError("user cursor failed", err)
	}
	return users, nil
}

// SetRole updates the role of the user with the given ID.
func (a *UserAdapter) SetRole(ctx context.Context, id string, role entities.Role) (*entities.UpdateAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid user id")
	}

	result, err := a.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": string(role)}},
	)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to update user role", err)
	}

	return &entities.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}
