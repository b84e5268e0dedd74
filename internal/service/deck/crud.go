package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmorgun/flashdeck-backend/internal/domain"
	"github.com/dmorgun/flashdeck-backend/pkg/ctxutil"
)

// CreateDeck creates an empty deck owned by the authenticated user.
func (s *Service) CreateDeck(ctx context.Context, input CreateDeckInput) (*domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	created, err := s.decks.Create(ctx, &domain.Deck{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck created",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", created.ID.String()),
	)

	return created, nil
}

// GetDeck returns a single deck with its statistics.
func (s *Service) GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.DeckWithStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	d, err := s.decks.GetByID(ctx, userID, deckID)
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	stats, err := s.aggregateStats(ctx, userID, []uuid.UUID{deckID})
	if err != nil {
		return nil, fmt.Errorf("aggregate deck stats: %w", err)
	}

	return &domain.DeckWithStats{Deck: *d, Stats: stats[deckID]}, nil
}

// RenameDeck changes a deck's name.
func (s *Service) RenameDeck(ctx context.Context, input RenameDeckInput) (*domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	renamed, err := s.decks.Rename(ctx, userID, input.DeckID, input.Name)
	if err != nil {
		return nil, fmt.Errorf("rename deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck renamed",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", input.DeckID.String()),
	)

	return renamed, nil
}

// DeleteDeck removes a deck; its flashcards cascade at the DB level.
func (s *Service) DeleteDeck(ctx context.Context, deckID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.decks.Delete(ctx, userID, deckID); err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck deleted",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", deckID.String()),
	)

	return nil
}
