// Package server wires the middleware chain and routes.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/quillarchive/quillarchive/internal/auth"
	"github.com/quillarchive/quillarchive/internal/cache"
	"github.com/quillarchive/quillarchive/internal/config"
	"github.com/quillarchive/quillarchive/internal/gate"
	"github.com/quillarchive/quillarchive/internal/handlers"
	"github.com/quillarchive/quillarchive/internal/httpx"
	"github.com/quillarchive/quillarchive/internal/middleware"
	"github.com/quillarchive/quillarchive/internal/policy"
)

const profileCacheTTL = 5 * time.Minute

// New constructs the root http.Handler with all routes and middleware.
func New(db *gorm.DB, cfg config.Config, log zerolog.Logger) http.Handler {
	var backend cache.Backend
	if cfg.RedisAddr != "" {
		backend = cache.NewRedis(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), "archive")
	} else {
		backend = cache.NewMemory()
	}
	counts := cache.NewCounts(backend)

	resolver := gate.NewCachedResolver(policy.NewDBProfileResolver(db), profileCacheTTL)
	g := gate.New(resolver)
	g.Register("work", policy.NewOwnershipPolicy())
	g.Register("question", policy.NewOwnershipPolicy())

	engine := &policy.Engine{
		Gate:     g,
		Settings: newDBSettings(db, counts),
	}

	authResolver := &auth.Resolver{
		DB:          db,
		UserSecret:  cfg.SessionSecret,
		AdminSecret: cfg.AdminSessionSecret,
	}

	authHandler := handlers.NewAuthHandler(db, cfg.SessionSecret, cfg.AdminSessionSecret)
	questionHandler := handlers.NewQuestionHandler(db, engine)
	workHandler := handlers.NewWorkHandler(db, engine, cfg.AppName)
	userHandler := handlers.NewUserHandler(db, engine, counts)
	skinHandler := handlers.NewSkinHandler(db, engine)
	tagHandler := handlers.NewTagHandler(db, engine)

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Prefs)
	r.Use(authResolver.Middleware)
	r.Use(middleware.CacheSignals)

	r.Get("/", handlers.Home)
	r.Post("/hide_banner", handlers.HideBanner)
	r.Get("/auth_error", handlers.AuthError)
	r.Get("/404", handlers.NotFoundPage)
	r.Get("/timeout", handlers.TimeoutPage)
	r.Get("/lost_cookie", authHandler.LostCookie)

	r.Get("/login", handlers.LoginPage)
	r.Post("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)
	r.Post("/admin/login", authHandler.AdminLogin)
	r.Post("/admin/logout", authHandler.AdminLogout)

	r.Route("/faq", func(r chi.Router) {
		r.Get("/", questionHandler.List)
		r.Post("/", questionHandler.Create)
		r.Post("/{id}", questionHandler.Update)
		r.Post("/{id}/delete", questionHandler.Delete)
	})

	r.Route("/works", func(r chi.Router) {
		r.Get("/", workHandler.List)
		r.Post("/", workHandler.Create)
		r.Get("/{id}", workHandler.Show)
		r.Post("/{id}/adult", workHandler.AgreeAdult)
		r.Post("/{id}", workHandler.Update)
		r.Post("/{id}/delete", workHandler.Delete)
	})

	r.Get("/users/{login}", userHandler.Show)
	r.Get("/users/{login}/edit", userHandler.Edit)

	r.Get("/skins", skinHandler.List)
	r.Get("/skins/{id}", skinHandler.Show)

	r.Post("/tags/{id}/wrangle", tagHandler.Wrangle)

	// Unknown paths and formats follow the not-found taxonomy.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httpx.NotFound(w, req)
	})

	return r
}
