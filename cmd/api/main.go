package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"blogplatform/api/internal/config"
	"blogplatform/api/internal/db"
	"blogplatform/api/internal/handlers"
	"blogplatform/api/internal/middleware"
	"blogplatform/api/internal/store"
	"blogplatform/api/internal/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

const apiVersion = "v1"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.MongoURI, cfg.DatabaseName)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer func() {
		if err := database.Client().Disconnect(context.Background()); err != nil {
			log.Printf("db disconnect: %v", err)
		}
	}()

	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("db indexes: %v", err)
	}

	st := store.New(database)
	h := handlers.New(cfg, st)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, map[string]string{
			"message": "Blog API",
			"version": apiVersion,
			"env":     cfg.Env,
		})
	})

	authGate := middleware.Auth(cfg.JWTSecret, st.Tokens)

	r.Route("/api/"+apiVersion, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			// Logout does its own header handling: absent header is a 400
			// and a dead token is still a successful logout.
			r.Post("/logout", h.Auth.Logout)

			r.Group(func(r chi.Router) {
				r.Use(authGate)
				r.Get("/profile", h.Auth.GetProfile)
				r.Put("/profile", h.Auth.UpdateProfile)
			})
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.Posts.GetPosts)
			r.Get("/search", h.Posts.SearchPosts)
			r.Get("/category/{categoryId}", h.Posts.GetPostsByCategory)
			r.Get("/{id}", h.Posts.GetPostByID)

			r.Group(func(r chi.Router) {
				r.Use(authGate)
				r.Post("/", h.Posts.CreatePost)
				r.Put("/{id}", h.Posts.UpdatePost)
			})
			r.Group(func(r chi.Router) {
				r.Use(authGate, middleware.AdminOnly)
				r.Delete("/{id}", h.Posts.DeletePost)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.Categories.GetCategories)
			r.Get("/{id}", h.Categories.GetCategoryByID)

			r.Group(func(r chi.Router) {
				r.Use(authGate, middleware.AdminOnly)
				r.Post("/", h.Categories.CreateCategory)
				r.Put("/{id}", h.Categories.UpdateCategory)
				r.Delete("/{id}", h.Categories.DeleteCategory)
			})
		})

		r.Route("/authors", func(r chi.Router) {
			r.Get("/", h.Authors.GetAuthors)
			r.Get("/{id}", h.Authors.GetAuthorByID)

			r.Group(func(r chi.Router) {
				r.Use(authGate, middleware.AdminOnly)
				r.Post("/", h.Authors.CreateAuthor)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.JSONError(w, http.StatusNotFound, "Route not found")
	})

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
