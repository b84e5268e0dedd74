package flashcard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmorgun/flashdeck-backend/internal/domain"
	"github.com/dmorgun/flashdeck-backend/pkg/ctxutil"
)

// CreateCard creates a single flashcard in the given deck.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Deck ownership check; a miss reads as not found.
	if _, err := s.decks.GetByID(ctx, userID, input.DeckID); err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	card := domain.NewFlashcard(input.DeckID, userID, input.Front, input.Back, false, time.Now())
	created, err := s.cards.Create(ctx, &card)
	if err != nil {
		return nil, fmt.Errorf("create flashcard: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard created",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", input.DeckID.String()),
		slog.String("card_id", created.ID.String()),
	)

	return created, nil
}

// BatchCreateCards persists a batch of cards atomically: either every card in
// the request is created or none are.
func (s *Service) BatchCreateCards(ctx context.Context, input BatchCreateInput) ([]domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.decks.GetByID(ctx, userID, input.DeckID); err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	now := time.Now()
	cards := make([]*domain.Flashcard, len(input.Cards))
	for i, c := range input.Cards {
		card := domain.NewFlashcard(input.DeckID, userID, c.Front, c.Back, input.AIGenerated, now)
		cards[i] = &card
	}

	var created []domain.Flashcard
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var batchErr error
		created, batchErr = s.cards.CreateBatch(txCtx, cards)
		if batchErr != nil {
			return fmt.Errorf("create batch: %w", batchErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "flashcards batch created",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", input.DeckID.String()),
		slog.Int("count", len(created)),
		slog.Bool("ai_generated", input.AIGenerated),
	)

	return created, nil
}

// GetCard returns a single flashcard.
func (s *Service) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	card, err := s.cards.GetByID(ctx, userID, cardID)
	if err != nil {
		return nil, fmt.Errorf("get flashcard: %w", err)
	}

	return card, nil
}

// UpdateCard rewrites a flashcard's front and back. Scheduling state is not
// touched.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.cards.UpdateContent(ctx, userID, input.CardID, input.Front, input.Back)
	if err != nil {
		return nil, fmt.Errorf("update flashcard: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard updated",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
	)

	return updated, nil
}

// DeleteCard removes a flashcard; its reviews cascade at the DB level.
func (s *Service) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.cards.Delete(ctx, userID, cardID); err != nil {
		return fmt.Errorf("delete flashcard: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard deleted",
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
	)

	return nil
}

// ListResult is one page of a deck's flashcards plus pagination metadata.
type ListResult struct {
	Cards      []domain.Flashcard
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// ListCards returns one page of a deck's flashcards, newest first.
func (s *Service) ListCards(ctx context.Context, input ListCardsInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.decks.GetByID(ctx, userID, input.DeckID); err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	total, err := s.cards.CountByDeck(ctx, userID, input.DeckID)
	if err != nil {
		return nil, fmt.Errorf("count flashcards: %w", err)
	}

	cards, err := s.cards.ListByDeck(ctx, userID, input.DeckID, input.Limit, (input.Page-1)*input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}

	return &ListResult{
		Cards:      cards,
		Page:       input.Page,
		Limit:      input.Limit,
		Total:      total,
		TotalPages: (total + input.Limit - 1) / input.Limit,
	}, nil
}
