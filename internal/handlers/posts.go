package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogplatform/api/internal/models"
	"blogplatform/api/internal/store"
	"blogplatform/api/internal/utils"
)

type PostHandler struct {
	Posts   store.Posts
	BaseURL string
	Dev     bool
}

// postResp adds the absolute image URL next to the stored path.
type postResp struct {
	models.Post
	ImageURL string `json:"imageUrl,omitempty"`
}

type populatedPostResp struct {
	models.PopulatedPost
	ImageURL string `json:"imageUrl,omitempty"`
}

func (h *PostHandler) shape(p models.Post) postResp {
	return postResp{Post: p, ImageURL: p.ImageURL(h.BaseURL)}
}

func (h *PostHandler) shapeAll(posts []models.Post) []postResp {
	out := make([]postResp, 0, len(posts))
	for _, p := range posts {
		out = append(out, h.shape(p))
	}
	return out
}

func (h *PostHandler) shapePopulated(posts []models.PopulatedPost) []populatedPostResp {
	out := make([]populatedPostResp, 0, len(posts))
	for _, p := range posts {
		out = append(out, populatedPostResp{PopulatedPost: p, ImageURL: p.ImageURL(h.BaseURL)})
	}
	return out
}

// ---------------------- LIST ----------------------

func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("withCategory") == "true" {
		posts, err := h.Posts.ListWithCategory(r.Context())
		if err != nil {
			internalError(w, err, h.Dev)
			return
		}
		utils.JSON(w, http.StatusOK, h.shapePopulated(posts))
		return
	}

	posts, err := h.Posts.List(r.Context())
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}
	utils.JSON(w, http.StatusOK, h.shapeAll(posts))
}

// ---------------------- GET ONE ----------------------

func (h *PostHandler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	post, err := h.Posts.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusOK, h.shape(*post))
}

// ---------------------- CREATE ----------------------

type createPostReq struct {
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	Author     string   `json:"author"`
	Category   string   `json:"category"`
	Published  *bool    `json:"published"`
	Image      string   `json:"image"`
	ReadTime   string   `json:"readTime"`
	IsFeatured bool     `json:"isFeatured"`
	Tags       []string `json:"tags"`
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Title == "" || req.Excerpt == "" || req.Content == "" {
		utils.JSONError(w, http.StatusBadRequest, "Title, excerpt and content are required")
		return
	}

	post := &models.Post{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Slug:       utils.Slugify(req.Title),
		Published:  true,
		Image:      req.Image,
		ReadTime:   req.ReadTime,
		IsFeatured: req.IsFeatured,
		Tags:       req.Tags,
	}
	if req.Published != nil {
		post.Published = *req.Published
	}

	if req.Author != "" {
		id, err := bson.ObjectIDFromHex(req.Author)
		if err != nil {
			utils.JSONError(w, http.StatusBadRequest, "Invalid author id")
			return
		}
		post.Author = id
	}
	if req.Category != "" {
		id, err := bson.ObjectIDFromHex(req.Category)
		if err != nil {
			utils.JSONError(w, http.StatusBadRequest, "Invalid category id")
			return
		}
		post.Category = id
	}

	err := h.Posts.Create(r.Context(), post)
	if errors.Is(err, store.ErrDuplicate) {
		// Slug collision with an existing post title.
		post.Slug = utils.UniqueSlug(req.Title)
		err = h.Posts.Create(r.Context(), post)
	}
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusCreated, h.shape(*post))
}

// ---------------------- UPDATE ----------------------

type updatePostReq struct {
	Title      *string   `json:"title"`
	Excerpt    *string   `json:"excerpt"`
	Content    *string   `json:"content"`
	Author     *string   `json:"author"`
	Category   *string   `json:"category"`
	Published  *bool     `json:"published"`
	Image      *string   `json:"image"`
	ReadTime   *string   `json:"readTime"`
	IsFeatured *bool     `json:"isFeatured"`
	Tags       *[]string `json:"tags"`
}

func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req updatePostReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	sets := bson.M{}
	if req.Title != nil {
		sets["title"] = *req.Title
		// The slug tracks the title; nothing else regenerates it.
		sets["slug"] = utils.Slugify(*req.Title)
	}
	if req.Excerpt != nil {
		sets["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		sets["content"] = *req.Content
	}
	if req.Author != nil {
		authorID, err := bson.ObjectIDFromHex(*req.Author)
		if err != nil {
			utils.JSONError(w, http.StatusBadRequest, "Invalid author id")
			return
		}
		sets["author"] = authorID
	}
	if req.Category != nil {
		categoryID, err := bson.ObjectIDFromHex(*req.Category)
		if err != nil {
			utils.JSONError(w, http.StatusBadRequest, "Invalid category id")
			return
		}
		sets["category"] = categoryID
	}
	if req.Published != nil {
		sets["published"] = *req.Published
	}
	if req.Image != nil {
		sets["image"] = *req.Image
	}
	if req.ReadTime != nil {
		sets["readTime"] = *req.ReadTime
	}
	if req.IsFeatured != nil {
		sets["isFeatured"] = *req.IsFeatured
	}
	if req.Tags != nil {
		sets["tags"] = *req.Tags
	}

	if len(sets) == 0 {
		utils.JSONError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	post, err := h.Posts.Update(r.Context(), id, sets)
	if errors.Is(err, store.ErrDuplicate) && req.Title != nil {
		sets["slug"] = utils.UniqueSlug(*req.Title)
		post, err = h.Posts.Update(r.Context(), id, sets)
	}
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusOK, h.shape(*post))
}

// ---------------------- DELETE ----------------------

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	err = h.Posts.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}

// ---------------------- BY CATEGORY ----------------------

func (h *PostHandler) GetPostsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := bson.ObjectIDFromHex(chi.URLParam(r, "categoryId"))
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	posts, err := h.Posts.ListByCategory(r.Context(), categoryID)
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusOK, h.shapePopulated(posts))
}

// ---------------------- SEARCH ----------------------

func (h *PostHandler) SearchPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		utils.JSONError(w, http.StatusBadRequest, "Search query is required")
		return
	}

	posts, err := h.Posts.Search(r.Context(), query)
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusOK, h.shapeAll(posts))
}
