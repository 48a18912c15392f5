package store

import (
	"context"
	"time"

	"golang-exercisetracker/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogQuery bounds a FindLog call. Nil From/To mean unbounded; a Limit of zero
// or less means unlimited.
type LogQuery struct {
	Username string
	From     *time.Time
	To       *time.Time
	Limit    int64
}

type ExerciseStore interface {
	Insert(ctx context.Context, exercise models.Exercise) error
	FindLog(ctx context.Context, query LogQuery) ([]models.Exercise, error)
}

type MongoExerciseStore struct {
	collection *mongo.Collection
}

func NewMongoExerciseStore(collection *mongo.Collection) *MongoExerciseStore {
	return &MongoExerciseStore{collection: collection}
}

func (s *MongoExerciseStore) Insert(ctx context.Context, exercise models.Exercise) error {
	_, err := s.collection.InsertOne(ctx, exercise)
	return err
}

func (s *MongoExerciseStore) FindLog(ctx context.Context, query LogQuery) ([]models.Exercise, error) {
	filter := bson.M{"username": query.Username}

	dateRange := bson.M{}
	if query.From != nil {
		dateRange["$gte"] = *query.From
	}
	if query.To != nil {
		dateRange["$lte"] = *query.To
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	if query.Limit > 0 {
		opts.SetLimit(query.Limit)
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exercises []models.Exercise
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}
