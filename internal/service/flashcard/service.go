package flashcard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmorgun/flashdeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	Create(ctx context.Context, c *domain.Flashcard) (*domain.Flashcard, error)
	CreateBatch(ctx context.Context, cards []*domain.Flashcard) ([]domain.Flashcard, error)
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error)
	UpdateContent(ctx context.Context, userID, cardID uuid.UUID, front, back string) (*domain.Flashcard, error)
	Delete(ctx context.Context, userID, cardID uuid.UUID) error
	ListByDeck(ctx context.Context, userID, deckID uuid.UUID, limit, offset int) ([]domain.Flashcard, error)
	CountByDeck(ctx context.Context, userID, deckID uuid.UUID) (int, error)
}

type deckRepo interface {
	GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the flashcard business logic.
type Service struct {
	cards cardRepo
	decks deckRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Flashcard service.
func NewService(log *slog.Logger, cards cardRepo, decks deckRepo, tx txManager) *Service {
	return &Service{
		cards: cards,
		decks: decks,
		tx:    tx,
		log:   log.With("service", "flashcard"),
	}
}
