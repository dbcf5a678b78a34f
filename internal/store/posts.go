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

type postStore struct {
	c *mongo.Collection
}

func (s *postStore) Create(ctx context.Context, p *models.Post) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Tags == nil {
		p.Tags = []string{}
	}

	res, err := s.c.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	p.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (s *postStore) GetByID(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	var p models.Post
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *postStore) List(ctx context.Context) ([]models.Post, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// populatePipeline resolves the category reference into categoryDoc,
// newest post first.
func populatePipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "categories",
			"localField":   "category",
			"foreignField": "_id",
			"as":           "categoryDoc",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$categoryDoc",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
}

func (s *postStore) ListWithCategory(ctx context.Context) ([]models.PopulatedPost, error) {
	return s.aggregate(ctx, populatePipeline(bson.M{}))
}

func (s *postStore) ListByCategory(ctx context.Context, categoryID bson.ObjectID) ([]models.PopulatedPost, error) {
	return s.aggregate(ctx, populatePipeline(bson.M{"category": categoryID}))
}

func (s *postStore) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]models.PopulatedPost, error) {
	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	posts := []models.PopulatedPost{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Search runs a text-index search over title and content, best match first.
func (s *postStore) Search(ctx context.Context, query string) ([]models.Post, error) {
	cur, err := s.c.Find(ctx,
		bson.M{"$text": bson.M{"$search": query}},
		options.Find().
			SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
			SetSort(bson.M{"score": bson.M{"$meta": "textScore"}}))
	if err != nil {
		return nil, err
	}

	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *postStore) Update(ctx context.Context, id bson.ObjectID, sets bson.M) (*models.Post, error) {
	sets["updatedAt"] = time.Now().UTC()

	var p models.Post
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": sets},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &p, nil
}

func (s *postStore) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
