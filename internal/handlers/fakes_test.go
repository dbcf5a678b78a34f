package handlers

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"blogplatform/api/internal/models"
	"blogplatform/api/internal/store"
)

// In-memory store fakes mirroring the mongo implementations' contracts:
// same sentinel errors, same uniqueness rules.

type fakeUsers struct {
	users []*models.User
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	for _, ex := range f.users {
		if ex.Email == u.Email {
			return store.ErrDuplicate
		}
	}
	u.ID = bson.NewObjectID()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) Update(_ context.Context, id bson.ObjectID, sets bson.M) (*models.User, error) {
	for _, u := range f.users {
		if u.ID != id {
			continue
		}
		if v, ok := sets["email"].(string); ok {
			for _, other := range f.users {
				if other.ID != id && other.Email == v {
					return nil, store.ErrDuplicate
				}
			}
			u.Email = v
		}
		if v, ok := sets["firstName"].(string); ok {
			u.FirstName = v
		}
		if v, ok := sets["lastName"].(string); ok {
			u.LastName = v
		}
		if v, ok := sets["role"].(models.Role); ok {
			u.Role = v
		}
		if v, ok := sets["password"].(string); ok {
			u.Password = v
		}
		u.UpdatedAt = time.Now().UTC()
		cp := *u
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) remove(id bson.ObjectID) {
	out := f.users[:0]
	for _, u := range f.users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	f.users = out
}

type fakeTokens struct {
	revoked map[string]time.Time
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{revoked: map[string]time.Time{}}
}

func (f *fakeTokens) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	if _, ok := f.revoked[token]; ok {
		return store.ErrAlreadyRevoked
	}
	f.revoked[token] = expiresAt
	return nil
}

func (f *fakeTokens) IsRevoked(_ context.Context, token string) (bool, error) {
	_, ok := f.revoked[token]
	return ok, nil
}

type fakePosts struct {
	posts []*models.Post
	cats  map[bson.ObjectID]models.Category
}

func (f *fakePosts) Create(_ context.Context, p *models.Post) error {
	for _, ex := range f.posts {
		if ex.Slug == p.Slug {
			return store.ErrDuplicate
		}
	}
	p.ID = bson.NewObjectID()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Tags == nil {
		p.Tags = []string{}
	}
	cp := *p
	f.posts = append(f.posts, &cp)
	return nil
}

func (f *fakePosts) GetByID(_ context.Context, id bson.ObjectID) (*models.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakePosts) List(_ context.Context) ([]models.Post, error) {
	out := make([]models.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePosts) populate(p models.Post) models.PopulatedPost {
	pp := models.PopulatedPost{Post: p}
	if cat, ok := f.cats[p.Category]; ok {
		pp.Category = &cat
	}
	return pp
}

func (f *fakePosts) ListWithCategory(ctx context.Context) ([]models.PopulatedPost, error) {
	posts, _ := f.List(ctx)
	out := make([]models.PopulatedPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, f.populate(p))
	}
	return out, nil
}

func (f *fakePosts) ListByCategory(ctx context.Context, categoryID bson.ObjectID) ([]models.PopulatedPost, error) {
	posts, _ := f.List(ctx)
	out := []models.PopulatedPost{}
	for _, p := range posts {
		if p.Category == categoryID {
			out = append(out, f.populate(p))
		}
	}
	return out, nil
}

func (f *fakePosts) Search(_ context.Context, query string) ([]models.Post, error) {
	q := strings.ToLower(query)
	out := []models.Post{}
	for _, p := range f.posts {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Content), q) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePosts) Update(_ context.Context, id bson.ObjectID, sets bson.M) (*models.Post, error) {
	for _, p := range f.posts {
		if p.ID != id {
			continue
		}
		if v, ok := sets["slug"].(string); ok {
			for _, other := range f.posts {
				if other.ID != id && other.Slug == v {
					return nil, store.ErrDuplicate
				}
			}
			p.Slug = v
		}
		if v, ok := sets["title"].(string); ok {
			p.Title = v
		}
		if v, ok := sets["excerpt"].(string); ok {
			p.Excerpt = v
		}
		if v, ok := sets["content"].(string); ok {
			p.Content = v
		}
		if v, ok := sets["author"].(bson.ObjectID); ok {
			p.Author = v
		}
		if v, ok := sets["category"].(bson.ObjectID); ok {
			p.Category = v
		}
		if v, ok := sets["published"].(bool); ok {
			p.Published = v
		}
		if v, ok := sets["image"].(string); ok {
			p.Image = v
		}
		if v, ok := sets["readTime"].(string); ok {
			p.ReadTime = v
		}
		if v, ok := sets["isFeatured"].(bool); ok {
			p.IsFeatured = v
		}
		if v, ok := sets["tags"].([]string); ok {
			p.Tags = v
		}
		p.UpdatedAt = time.Now().UTC()
		cp := *p
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakePosts) Delete(_ context.Context, id bson.ObjectID) error {
	for i, p := range f.posts {
		if p.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeCategories struct {
	cats []*models.Category
}

func (f *fakeCategories) Create(_ context.Context, c *models.Category) error {
	for _, ex := range f.cats {
		if ex.Name == c.Name || ex.Slug == c.Slug {
			return store.ErrDuplicate
		}
	}
	c.ID = bson.NewObjectID()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	cp := *c
	f.cats = append(f.cats, &cp)
	return nil
}

func (f *fakeCategories) GetByID(_ context.Context, id bson.ObjectID) (*models.Category, error) {
	for _, c := range f.cats {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeCategories) List(_ context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.cats))
	for _, c := range f.cats {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategories) Update(_ context.Context, id bson.ObjectID, sets bson.M) (*models.Category, error) {
	for _, c := range f.cats {
		if c.ID != id {
			continue
		}
		if v, ok := sets["name"].(string); ok {
			for _, other := range f.cats {
				if other.ID != id && other.Name == v {
					return nil, store.ErrDuplicate
				}
			}
			c.Name = v
		}
		if v, ok := sets["slug"].(string); ok {
			c.Slug = v
		}
		if v, ok := sets["description"].(string); ok {
			c.Description = v
		}
		c.UpdatedAt = time.Now().UTC()
		cp := *c
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeCategories) Delete(_ context.Context, id bson.ObjectID) error {
	for i, c := range f.cats {
		if c.ID == id {
			f.cats = append(f.cats[:i], f.cats[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeAuthors struct {
	authors []*models.Author
}

func (f *fakeAuthors) Create(_ context.Context, a *models.Author) error {
	a.ID = bson.NewObjectID()
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	cp := *a
	f.authors = append(f.authors, &cp)
	return nil
}

func (f *fakeAuthors) GetByID(_ context.Context, id bson.ObjectID) (*models.Author, error) {
	for _, a := range f.authors {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeAuthors) List(_ context.Context) ([]models.Author, error) {
	out := make([]models.Author, 0, len(f.authors))
	for _, a := range f.authors {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
