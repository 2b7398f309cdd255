package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/parley-dev/parley/internal/middleware/metrics"
	"github.com/parley-dev/parley/internal/setup"
)

// New creates and configures the API router.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(metrics.Middleware)

	h := deps.Handler
	identity := deps.Identity

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		// Read paths take an optional requester: anonymous users browse
		// public content, identified ones additionally see what their
		// memberships allow.
		r.Group(func(r chi.Router) {
			r.Use(identity.Optional)
			r.Get("/topics", h.Browse)
			r.Get("/topics/search", h.SearchTopics)
			r.Get("/topics/{topic}", h.GetTopic)
		})

		r.Group(func(r chi.Router) {
			r.Use(identity.Required)
			r.Post("/topics", h.CreateTopic)
			r.Get("/topics/{topic}/admin", h.GetAdminTopic)
			r.Post("/topics/{topic}/promote", h.PromoteMember)
			r.Post("/topics/{topic}/join", h.JoinTopic)
			r.Post("/topics/{topic}/requests", h.RequestJoin)
			r.Post("/topics/{topic}/requests/{request}/approve", h.ApproveRequest)
			r.Delete("/topics/{topic}/requests/{request}", h.DenyRequest)
			r.Post("/topics/{topic}/posts", h.CreatePost)
			r.Delete("/topics/{topic}/posts/{post}", h.DeletePost)
		})
	})

	return r
}
