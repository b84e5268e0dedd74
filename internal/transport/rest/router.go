package rest

import (
	"github.com/go-chi/chi/v5"

	mw "github.com/dmorgun/flashdeck-backend/internal/transport/middleware"
)

// RouterDeps carries everything the router wires together.
type RouterDeps struct {
	Auth       *AuthHandler
	Decks      *DeckHandler
	Flashcards *FlashcardHandler
	Health     *HealthHandler

	// AuthMiddleware guards everything under /api/v1 except the login
	// surface itself.
	AuthMiddleware mw.Middleware

	// AuthRateLimit throttles the unauthenticated auth endpoints per IP.
	AuthRateLimit mw.Middleware
}

// NewRouter builds the full route tree.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Get("/health", deps.Health.Health)
	r.Get("/health/live", deps.Health.Live)
	r.Get("/health/ready", deps.Health.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if deps.AuthRateLimit != nil {
				r.Use(deps.AuthRateLimit)
			}
			r.Post("/auth/register", deps.Auth.Register)
			r.Post("/auth/login", deps.Auth.Login)
			r.Post("/auth/refresh", deps.Auth.Refresh)
		})

		r.Group(func(r chi.Router) {
			r.Use(deps.AuthMiddleware)

			r.Post("/auth/logout", deps.Auth.Logout)

			r.Route("/decks", func(r chi.Router) {
				r.Get("/", deps.Decks.List)
				r.Post("/", deps.Decks.Create)

				r.Route("/{deckID}", func(r chi.Router) {
					r.Get("/", deps.Decks.Get)
					r.Put("/", deps.Decks.Update)
					r.Delete("/", deps.Decks.Delete)

					r.Route("/flashcards", func(r chi.Router) {
						r.Get("/", deps.Flashcards.ListByDeck)
						r.Post("/", deps.Flashcards.Create)
						r.Post("/batch", deps.Flashcards.BatchCreate)
						r.Post("/generate", deps.Flashcards.Generate)
					})
				})
			})

			r.Route("/flashcards/{cardID}", func(r chi.Router) {
				r.Get("/", deps.Flashcards.Get)
				r.Put("/", deps.Flashcards.Update)
				r.Delete("/", deps.Flashcards.Delete)
			})
		})
	})

	return r
}
