package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Post struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string        `bson:"title" json:"title"`
	Excerpt    string        `bson:"excerpt" json:"excerpt"`
	Content    string        `bson:"content" json:"content"`
	Author     bson.ObjectID `bson:"author,omitempty" json:"author,omitzero"`
	Slug       string        `bson:"slug" json:"slug"`
	Category   bson.ObjectID `bson:"category,omitempty" json:"category,omitzero"`
	Published  bool          `bson:"published" json:"published"`
	Image      string        `bson:"image,omitempty" json:"image,omitempty"`
	ReadTime   string        `bson:"readTime,omitempty" json:"readTime,omitempty"`
	IsFeatured bool          `bson:"isFeatured" json:"isFeatured"`
	Tags       []string      `bson:"tags" json:"tags"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// ImageURL resolves the stored image path against baseURL. Already-absolute
// values pass through untouched.
func (p *Post) ImageURL(baseURL string) string {
	return absoluteURL(baseURL, p.Image)
}

// PopulatedPost is a post with its category reference resolved into the
// full category document.
type PopulatedPost struct {
	Post     `bson:",inline"`
	Category *Category `bson:"categoryDoc,omitempty" json:"category,omitempty"`
}

func absoluteURL(baseURL, path string) string {
	if path == "" || strings.HasPrefix(path, "http") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(baseURL, "/") + path
}
