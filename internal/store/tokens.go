package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"blogplatform/api/internal/models"
)

type tokenStore struct {
	c *mongo.Collection
}

// Revoke records a logged-out token together with its own expiry, so the
// TTL index removes the record the moment the token would have expired.
func (s *tokenStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	_, err := s.c.InsertOne(ctx, models.RevokedToken{
		Token:     token,
		ExpiresAt: expiresAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadyRevoked
	}
	return err
}

func (s *tokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"token": token}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
