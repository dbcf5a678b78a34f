package handlers

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func newAuthorRouter(authors *fakeAuthors) http.Handler {
	h := &AuthorHandler{Authors: authors, BaseURL: testBaseURL, Dev: true}

	r := chi.NewRouter()
	r.Route("/api/v1/authors", func(r chi.Router) {
		r.Get("/", h.GetAuthors)
		r.Get("/{id}", h.GetAuthorByID)
		r.Post("/", h.CreateAuthor)
	})
	return r
}

func TestCreateAuthor(t *testing.T) {
	r := newAuthorRouter(&fakeAuthors{})

	rec := doJSON(t, r, http.MethodPost, "/api/v1/authors", "",
		map[string]string{"name": "Jane Doe", "avatar": "uploads/authors/jane.png"})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Jane Doe", body["name"])
	assert.Equal(t, testBaseURL+"/uploads/authors/jane.png", body["avatarUrl"])

	rec = doJSON(t, r, http.MethodPost, "/api/v1/authors", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Author name is required")
}

func TestCreateAuthor_AbsoluteAvatarPassesThrough(t *testing.T) {
	r := newAuthorRouter(&fakeAuthors{})

	rec := doJSON(t, r, http.MethodPost, "/api/v1/authors", "",
		map[string]string{"name": "Jane", "avatar": "https://cdn.example.com/jane.png"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "https://cdn.example.com/jane.png", decodeBody(t, rec)["avatarUrl"])
}

func TestGetAuthorByID(t *testing.T) {
	authors := &fakeAuthors{}
	r := newAuthorRouter(authors)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/authors", "",
		map[string]string{"name": "Jane Doe"})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["id"].(string)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/authors/"+id, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jane Doe")

	rec = doJSON(t, r, http.MethodGet, "/api/v1/authors/"+bson.NewObjectID().Hex(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Author not found")
}
