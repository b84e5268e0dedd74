package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmorgun/flashdeck-backend/pkg/ctxutil"
)

// testDeps holds the mocks behind a fully wired router.
type testDeps struct {
	auth  *authServiceMock
	decks *deckServiceMock
	cards *cardServiceMock
	gen   *generatorServiceMock
}

// newTestRouter wires the real route tree around mocks, with an auth
// middleware that injects userID for any request carrying the test token.
func newTestRouter(deps testDeps, userID uuid.UUID) *chi.Mux {
	log := slog.Default()

	if deps.auth == nil {
		deps.auth = &authServiceMock{}
	}
	if deps.decks == nil {
		deps.decks = &deckServiceMock{}
	}
	if deps.cards == nil {
		deps.cards = &cardServiceMock{}
	}
	if deps.gen == nil {
		deps.gen = &generatorServiceMock{}
	}

	authMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer test-token" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), userID)))
		})
	}

	return NewRouter(RouterDeps{
		Auth:           NewAuthHandler(deps.auth, log),
		Decks:          NewDeckHandler(deps.decks, log),
		Flashcards:     NewFlashcardHandler(deps.cards, deps.gen, log),
		Health:         NewHealthHandler(&dbPingerMock{}, "test"),
		AuthMiddleware: authMW,
	})
}
