package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmorgun/flashdeck-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting
// test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a throwaway bcrypt-shaped password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$" + suffix + "fakefakefakefakefakefakefake",
		Name:         "Test User " + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.PasswordHash, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedDeck creates a deck owned by the given user.
func SeedDeck(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.Deck {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	deck := domain.Deck{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO decks (id, user_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		deck.ID, deck.UserID, deck.Name, deck.CreatedAt, deck.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck: %v", err)
	}

	return deck
}

// SeedFlashcard creates a flashcard in the given deck. nextReviewAt may be
// nil for an unscheduled card.
func SeedFlashcard(t *testing.T, pool *pgxpool.Pool, deckID, userID uuid.UUID, nextReviewAt *time.Time) domain.Flashcard {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.Flashcard{
		ID:           uuid.New(),
		DeckID:       deckID,
		UserID:       userID,
		Front:        "front " + suffix,
		Back:         "back " + suffix,
		EaseFactor:   domain.DefaultEaseFactor,
		IntervalDays: domain.DefaultIntervalDays,
		Repetitions:  domain.DefaultRepetitions,
		NextReviewAt: nextReviewAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO flashcards (id, deck_id, user_id, front, back, is_ai_generated,
		                         ease_factor, interval_days, repetitions, next_review_at,
		                         created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		card.ID, card.DeckID, card.UserID, card.Front, card.Back, card.AIGenerated,
		card.EaseFactor, card.IntervalDays, card.Repetitions, card.NextReviewAt,
		card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFlashcard: %v", err)
	}

	return card
}
