package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"blogplatform/api/internal/models"
)

type authorStore struct {
	c *mongo.Collection
}

func (s *authorStore) Create(ctx context.Context, a *models.Author) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	res, err := s.c.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	a.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (s *authorStore) GetByID(ctx context.Context, id bson.ObjectID) (*models.Author, error) {
	var a models.Author
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *authorStore) List(ctx context.Context) ([]models.Author, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	authors := []models.Author{}
	if err := cur.All(ctx, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}
