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

type AuthorHandler struct {
	Authors store.Authors
	BaseURL string
	Dev     bool
}

type authorResp struct {
	models.Author
	AvatarURL string `json:"avatarUrl,omitempty"`
}

func (h *AuthorHandler) shape(a models.Author) authorResp {
	return authorResp{Author: a, AvatarURL: a.AvatarURL(h.BaseURL)}
}

func (h *AuthorHandler) GetAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.Authors.List(r.Context())
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	out := make([]authorResp, 0, len(authors))
	for _, a := range authors {
		out = append(out, h.shape(a))
	}
	utils.JSON(w, http.StatusOK, out)
}

func (h *AuthorHandler) GetAuthorByID(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	author, err := h.Authors.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "Author not found")
		return
	}
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusOK, h.shape(*author))
}

type createAuthorReq struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (h *AuthorHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req createAuthorReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Name == "" {
		utils.JSONError(w, http.StatusBadRequest, "Author name is required")
		return
	}

	author := &models.Author{
		Name:   req.Name,
		Avatar: req.Avatar,
	}

	if err := h.Authors.Create(r.Context(), author); err != nil {
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusCreated, h.shape(*author))
}
