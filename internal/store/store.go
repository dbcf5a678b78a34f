package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"blogplatform/api/internal/models"
)

var (
	ErrNotFound       = errors.New("store: not found")
	ErrDuplicate      = errors.New("store: duplicate key")
	ErrAlreadyRevoked = errors.New("store: token already revoked")
)

type Users interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	Update(ctx context.Context, id bson.ObjectID, sets bson.M) (*models.User, error)
}

type Tokens interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type Posts interface {
	Create(ctx context.Context, p *models.Post) error
	GetByID(ctx context.Context, id bson.ObjectID) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	ListWithCategory(ctx context.Context) ([]models.PopulatedPost, error)
	ListByCategory(ctx context.Context, categoryID bson.ObjectID) ([]models.PopulatedPost, error)
	Search(ctx context.Context, query string) ([]models.Post, error)
	Update(ctx context.Context, id bson.ObjectID, sets bson.M) (*models.Post, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type Categories interface {
	Create(ctx context.Context, c *models.Category) error
	GetByID(ctx context.Context, id bson.ObjectID) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, id bson.ObjectID, sets bson.M) (*models.Category, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type Authors interface {
	Create(ctx context.Context, a *models.Author) error
	GetByID(ctx context.Context, id bson.ObjectID) (*models.Author, error)
	List(ctx context.Context) ([]models.Author, error)
}

// Store bundles the per-collection repositories over one database handle.
type Store struct {
	Users      Users
	Tokens     Tokens
	Posts      Posts
	Categories Categories
	Authors    Authors
}

func New(db *mongo.Database) *Store {
	return &Store{
		Users:      &userStore{c: db.Collection("users")},
		Tokens:     &tokenStore{c: db.Collection("revoked_tokens")},
		Posts:      &postStore{c: db.Collection("posts")},
		Categories: &categoryStore{c: db.Collection("categories")},
		Authors:    &authorStore{c: db.Collection("authors")},
	}
}
