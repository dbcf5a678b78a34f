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

type CategoryHandler struct {
	Categories store.Categories
	Dev        bool
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Categories.List(r.Context())
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}
	utils.JSON(w, http.StatusOK, cats)
}

func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	cat, err := h.Categories.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusOK, cat)
}

type createCategoryReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Name == "" {
		utils.JSONError(w, http.StatusBadRequest, "Category name is required")
		return
	}

	cat := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		Slug:        utils.Slugify(req.Name),
	}

	if err := h.Categories.Create(r.Context(), cat); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.JSONError(w, http.StatusBadRequest, "Category with this name already exists")
			return
		}
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusCreated, cat)
}

type updateCategoryReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req updateCategoryReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	sets := bson.M{}
	if req.Name != nil {
		sets["name"] = *req.Name
		sets["slug"] = utils.Slugify(*req.Name)
	}
	if req.Description != nil {
		sets["description"] = *req.Description
	}

	if len(sets) == 0 {
		utils.JSONError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	cat, err := h.Categories.Update(r.Context(), id, sets)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "Category not found")
		return
	}
	if errors.Is(err, store.ErrDuplicate) {
		utils.JSONError(w, http.StatusBadRequest, "Category with this name already exists")
		return
	}
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusOK, cat)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	err = h.Categories.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Category deleted"})
}
