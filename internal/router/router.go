package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/Marco16005/pag-web-web/internal/admin"
	"github.com/Marco16005/pag-web-web/internal/chat"
	"github.com/Marco16005/pag-web-web/internal/contact"
	"github.com/Marco16005/pag-web-web/internal/leaderboard"
	"github.com/Marco16005/pag-web-web/internal/respond"
	"github.com/Marco16005/pag-web-web/internal/token"
	"github.com/Marco16005/pag-web-web/internal/user"
)

const apiCSP = "default-src 'none'; frame-ancestors 'none'"

// Pinger reports store availability for /api/health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers bundles the feature handlers mounted under /api.
type Handlers struct {
	Users       *user.Handler
	Contact     *contact.Handler
	Leaderboard *leaderboard.Handler
	Admin       *admin.Handler
	Chat        *chat.Handler
	// Tokens guards /api/admin. Nil leaves it open.
	Tokens *token.Service
	Store  Pinger
}

// RegisterRoutes mounts every route on a chi router and wraps it with the
// request id, logging, recover and CORS middleware.
func RegisterRoutes(cfg Config, h Handlers, limits Limits, logger *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware(logger))
	r.Use(RecoverMiddleware(logger))
	r.Use(corsHandler(cfg, logger))

	r.Route("/api", func(api chi.Router) {
		api.Use(SecurityHeadersMiddleware(apiCSP))

		api.Get("/health", health(h.Store))
		api.Get("/registration-rules", h.Users.Rules)

		api.With(rateLimit(limits.Register, cfg.TrustProxy)).Post("/register", h.Users.Register)
		api.With(rateLimit(limits.Login, cfg.TrustProxy)).Post("/login", h.Users.Login)
		api.With(rateLimit(limits.Contact, cfg.TrustProxy)).Post("/contact", h.Contact.Submit)

		api.Get("/leaderboard/global", h.Leaderboard.Global)
		api.Get("/leaderboard/user/{userId}", h.Leaderboard.UserScore)

		api.Route("/admin", func(ar chi.Router) {
			ar.Use(token.RequireRole(h.Tokens, "admin", logger))
			h.Admin.Routes(ar)
		})

		api.Post("/chat-gemini", h.Chat.Chat)

		api.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respond.Message(w, http.StatusNotFound, "Not found.")
		})
		api.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			respond.Message(w, http.StatusMethodNotAllowed, "Method not allowed.")
		})
	})

	if cfg.StaticDir != "" {
		static := SecurityHeadersMiddleware("")(newSPAHandler(cfg.StaticDir))
		r.Handle("/*", static)
	}
	return r
}

func corsHandler(cfg Config, logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	if cfg.Production() && cfg.FrontendURL == "" && cfg.RenderExternalURL == "" {
		logger.Warn("production CORS origin not set; FRONTEND_URL or RENDER_EXTERNAL_URL is missing")
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader, "Retry-After"},
		AllowCredentials: true,
	})
	return c.Handler
}

func health(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
