package deck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	pgdeck "github.com/dmorgun/flashdeck-backend/internal/adapter/postgres/deck"
	"github.com/dmorgun/flashdeck-backend/internal/domain"
	"github.com/dmorgun/flashdeck-backend/pkg/ctxutil"
)

// ListResult is one page of a user's decks with statistics plus pagination
// metadata.
type ListResult struct {
	Decks      []domain.DeckWithStats
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// ListDecks returns one page of the user's decks, each enriched with
// aggregated flashcard statistics.
func (s *Service) ListDecks(ctx context.Context, input ListDecksInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Count and page queries touch independent read paths; run them
	// concurrently. No transaction: a write racing the listing can skew
	// total by one, which is acceptable for this endpoint.
	var (
		total int
		decks []domain.Deck
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.decks.CountByOwner(gctx, userID)
		if err != nil {
			return fmt.Errorf("count decks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		decks, err = s.decks.List(gctx, userID, pgdeck.ListParams{
			SortBy:    input.SortBy,
			SortOrder: input.SortOrder,
			Limit:     input.Limit,
			Offset:    (input.Page - 1) * input.Limit,
		})
		if err != nil {
			return fmt.Errorf("list decks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "deck listing failed",
			slog.String("user_id", userID.String()),
			slog.Int("page", input.Page),
			slog.Int("limit", input.Limit),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	result := &ListResult{
		Decks:      []domain.DeckWithStats{},
		Page:       input.Page,
		Limit:      input.Limit,
		Total:      total,
		TotalPages: (total + input.Limit - 1) / input.Limit,
	}

	// Pages past the end carry no decks; skip aggregation entirely.
	if len(decks) == 0 {
		return result, nil
	}

	deckIDs := make([]uuid.UUID, len(decks))
	for i, d := range decks {
		deckIDs[i] = d.ID
	}

	stats, err := s.aggregateStats(ctx, userID, deckIDs)
	if err != nil {
		s.log.ErrorContext(ctx, "deck stats aggregation failed",
			slog.String("user_id", userID.String()),
			slog.Int("page", input.Page),
			slog.Int("limit", input.Limit),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("aggregate deck stats: %w", err)
	}

	result.Decks = make([]domain.DeckWithStats, len(decks))
	for i, d := range decks {
		result.Decks[i] = domain.DeckWithStats{Deck: d, Stats: stats[d.ID]}
	}

	return result, nil
}
