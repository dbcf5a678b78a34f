package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Author struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Avatar    string        `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// AvatarURL resolves the stored avatar path against baseURL. Already-absolute
// values pass through untouched.
func (a *Author) AvatarURL(baseURL string) string {
	return absoluteURL(baseURL, a.Avatar)
}
