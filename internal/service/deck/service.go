package deck

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	pgdeck "github.com/dmorgun/flashdeck-backend/internal/adapter/postgres/deck"
	"github.com/dmorgun/flashdeck-backend/internal/adapter/postgres/flashcard"
	"github.com/dmorgun/flashdeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type deckRepo interface {
	Create(ctx context.Context, d *domain.Deck) (*domain.Deck, error)
	GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
	Rename(ctx context.Context, userID, deckID uuid.UUID, name string) (*domain.Deck, error)
	Delete(ctx context.Context, userID, deckID uuid.UUID) error
	CountByOwner(ctx context.Context, userID uuid.UUID) (int, error)
	List(ctx context.Context, userID uuid.UUID, params pgdeck.ListParams) ([]domain.Deck, error)
}

type cardStatsRepo interface {
	StatsByDeckIDs(ctx context.Context, userID uuid.UUID, deckIDs []uuid.UUID) ([]flashcard.StatsRow, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the deck business logic.
type Service struct {
	decks deckRepo
	stats cardStatsRepo
	log   *slog.Logger
}

// NewService creates a new Deck service.
func NewService(log *slog.Logger, decks deckRepo, stats cardStatsRepo) *Service {
	return &Service{
		decks: decks,
		stats: stats,
		log:   log.With("service", "deck"),
	}
}
