package handlers

import (
	"log"
	"net/http"

	"blogplatform/api/internal/config"
	"blogplatform/api/internal/store"
	"blogplatform/api/internal/utils"
)

type Handler struct {
	Auth       *AuthHandler
	Posts      *PostHandler
	Categories *CategoryHandler
	Authors    *AuthorHandler
}

func New(cfg *config.Config, st *store.Store) *Handler {
	dev := cfg.IsDevelopment()
	return &Handler{
		Auth:       &AuthHandler{Users: st.Users, Tokens: st.Tokens, Secret: cfg.JWTSecret, Dev: dev},
		Posts:      &PostHandler{Posts: st.Posts, BaseURL: cfg.PublicBaseURL, Dev: dev},
		Categories: &CategoryHandler{Categories: st.Categories, Dev: dev},
		Authors:    &AuthorHandler{Authors: st.Authors, BaseURL: cfg.PublicBaseURL, Dev: dev},
	}
}

// internalError logs the full error server-side and hides the detail from
// the client unless running in development posture.
func internalError(w http.ResponseWriter, err error, dev bool) {
	log.Printf("internal error: %v", err)
	if dev {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONError(w, http.StatusInternalServerError, "Something went wrong!")
}
