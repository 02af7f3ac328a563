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

const roomsCollection = "hotelList"

// RoomAdapter implements room listing persistence in MongoDB.
type RoomAdapter struct {
	col *mongo.Collection
}

// NewRoomAdapter creates a new room adapter.
func NewRoomAdapter(client *mongodb.Client) repositories.RoomRepository {
	return &RoomAdapter{
		col: client.Collection(roomsCollection),
	}
}

type roomDocument struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	DistrictName       string             `bson:"districtName"`
	HotelImage         string             `bson:"hotelImage"`
	TwoBedAvailable    bool               `bson:"twoBedAvailable"`
	DeluxeAvailable    bool               `bson:"deluxeAvailable"`
	PenthouseAvailable bool               `bson:"penthouseAvailable"`
	TwoBedPrice        float64            `bson:"twoBedPrice"`
	DeluxePrice        float64            `bson:"deluxePrice"`
	PenthousePrice     float64            `bson:"penthousePrice"`
	Ratings            float64            `bson:"ratings"`
	Description        string             `bson:"description"`
	OwnerEmail         string             `bson:"ownerEmail,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt"`
}

func (d *roomDocument) toEntity() *entities.Room {
	return &entities.Room{
		ID:                 d.ID.Hex(),
		DistrictName:       d.DistrictName,
		HotelImage:         d.HotelImage,
		TwoBedAvailable:    d.TwoBedAvailable,
		DeluxeAvailable:    d.DeluxeAvailable,
		PenthouseAvailable: d.PenthouseAvailable,
		TwoBedPrice:        d.TwoBedPrice,
		DeluxePrice:        d.DeluxePrice,
		PenthousePrice:     d.PenthousePrice,
		Ratings:            d.Ratings,
		Description:        d.Description,
		OwnerEmail:         d.OwnerEmail,
		CreatedAt:          d.CreatedAt,
	}
}

// Create inserts a room record.
func (a *RoomAdapter) Create(ctx context.Context, room *entities.Room) error {
	doc := roomDocument{
		DistrictName:       room.DistrictName,
		HotelImage:         room.HotelImage,
		TwoBedAvailable:    room.TwoBedAvailable,
		DeluxeAvailable:    room.DeluxeAvailable,
		PenthouseAvailable: room.PenthouseAvailable,
		TwoBedPrice:        room.TwoBedPrice,
		DeluxePrice:        room.DeluxePrice,
		PenthousePrice:     room.PenthousePrice,
		Ratings:            room.Ratings,
		Description:        room.Description,
		OwnerEmail:         room.OwnerEmail,
		CreatedAt:          room.CreatedAt,
	}

	result, err := a.col.InsertOne(ctx, doc)
	if err != nil {
		return apperrors.NewInternalError("failed to create room", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		room.ID = oid.Hex()
	}
	return nil
}

// GetByID retrieves a room by ID.
func (a *RoomAdapter) GetByID(ctx context.Context, id string) (*entities.Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid room id")
	}

	var doc roomDocument
	err = a.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("room not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get room", err)
	}
	return doc.toEntity(), nil
}

// List retrieves all rooms.
func (a *RoomAdapter) List(ctx context.Context) ([]*entities.Room, error) {
	return a.find(ctx, bson.M{})
}

// ListByDistrict retrieves rooms whose district matches exactly.
func (a *RoomAdapter) ListByDistrict(ctx context.Context, district string) ([]*entities.Room, error) {
	return a.find(ctx, bson.M{"districtName": district})
}

func (a *RoomAdapter) find(ctx context.Context, filter bson.M) ([]*entities.Room, error) {
	cursor, err := a.col.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list rooms", err)
	}
	defer cursor.Close(ctx)

	rooms := []*entities.Room{}
	for cursor.Next(ctx) {
		var doc roomDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, apperrors.NewInternalError("failed to decode room", err)
		}
		rooms = append(rooms, doc.toEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, apperrors.NewInternalError("room cursor failed", err)
	}
	return rooms, nil
}

// UpdateFields applies a partial update limited to the allow-listed
// fields. Nil patch fields are not written.
func (a *RoomAdapter) UpdateFields(ctx context.Context, id string, patch repositories.RoomPatch) (*entities.UpdateAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid room id")
	}

	set := bson.M{}
	if patch.HotelImage != nil {
		set["hotelImage"] = *patch.HotelImage
	}
	if patch.TwoBedAvailable != nil {
		set["twoBedAvailable"] = *patch.TwoBedAvailable
	}
	if patch.DeluxeAvailable != nil {
		set["deluxeAvailable"] = *patch.DeluxeAvailable
	}
	if patch.PenthouseAvailable != nil {
		set["penthouseAvailable"] = *patch.PenthouseAvailable
	}
	if patch.TwoBedPrice != nil {
		set["twoBedPrice"] = *patch.TwoBedPrice
	}
	if patch.DeluxePrice != nil {
		set["deluxePrice"] = *patch.DeluxePrice
	}
	if patch.PenthousePrice != nil {
		set["penthousePrice"] = *patch.PenthousePrice
	}
	if patch.Ratings != nil {
		set["ratings"] = *patch.Ratings
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if len(set) == 0 {
		return nil, apperrors.NewValidationError("no updatable fields in payload")
	}

	result, err := a.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, apperrors.NewInternalError("failed to update room", err)
	}

	return &entities.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

// Delete removes a room by ID.
func (a *RoomAdapter) Delete(ctx context.Context, id string) (*entities.DeleteAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid room id")
	}

	result, err := a.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, apperrors.NewInternalError("failed to delete room", err)
	}

	return &entities.DeleteAck{
		Acknowledged: true,
		DeletedCount: result.DeletedCount,
	}, nil
}
