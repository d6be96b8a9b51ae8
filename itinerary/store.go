package itinerary

import (
	"context"
	"errors"

	"wayfare/errs"
	"wayfare/models"
	"wayfare/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the persistence boundary for itineraries. Implementations map
// their backend failures onto the errs taxonomy: absent documents become
// NotFoundError, connectivity problems become StoreError.
type Store interface {
	Insert(ctx context.Context, it models.Itinerary) error
	FindByID(ctx context.Context, id string) (*models.Itinerary, error)
	Update(ctx context.Context, id string, it models.Itinerary) error
	Delete(ctx context.Context, id string) error
	FindByOwner(ctx context.Context, ownerID string) ([]models.Itinerary, error)
}

type mongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) Store {
	return &mongoStore{coll: coll}
}

func (s *mongoStore) Insert(ctx context.Context, it models.Itinerary) error {
	if _, err := s.coll.InsertOne(ctx, it); err != nil {
		return errs.Store("insert itinerary", err)
	}
	return nil
}

func (s *mongoStore) FindByID(ctx context.Context, id string) (*models.Itinerary, error) {
	var it models.Itinerary
	err := s.coll.FindOne(ctx, bson.M{"itineraryid": id}).Decode(&it)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("itinerary", id)
	}
	if err != nil {
		return nil, errs.Store("find itinerary", err)
	}
	return &it, nil
}

func (s *mongoStore) Update(ctx context.Context, id string, it models.Itinerary) error {
	update := bson.M{"$set": bson.M{
		"title":       it.Title,
		"description": it.Description,
		"start_date":  it.StartDate,
		"end_date":    it.EndDate,
		"destination": it.Destination,
		"days":        it.Days,
		"updated_at":  it.UpdatedAt,
	}}

	res, err := s.coll.UpdateOne(ctx, bson.M{"itineraryid": id}, update)
	if err != nil {
		return errs.Store("update itinerary", err)
	}
	if res.MatchedCount == 0 {
		return errs.NotFound("itinerary", id)
	}
	return nil
}

func (s *mongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"itineraryid": id})
	if err != nil {
		return errs.Store("delete itinerary", err)
	}
	if res.DeletedCount == 0 {
		return errs.NotFound("itinerary", id)
	}
	return nil
}

func (s *mongoStore) FindByOwner(ctx context.Context, ownerID string) ([]models.Itinerary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	out, err := utils.FindAndDecode[models.Itinerary](ctx, s.coll, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, errs.Store("list itineraries", err)
	}
	return out, nil
}
