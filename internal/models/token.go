package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// RevokedToken is a logged-out session token. The collection carries a TTL
// index on ExpiresAt, so a record disappears when the token it blocks would
// have expired anyway.
type RevokedToken struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"-"`
	Token     string        `bson:"token" json:"token"`
	ExpiresAt time.Time     `bson:"expiresAt" json:"expiresAt"`
}
