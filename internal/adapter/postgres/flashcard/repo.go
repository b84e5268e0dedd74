// Package flashcard implements the Flashcard repository using PostgreSQL.
package flashcard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dmorgun/flashdeck-backend/internal/adapter/postgres"
	"github.com/dmorgun/flashdeck-backend/internal/domain"
)

const cardColumns = `id, deck_id, user_id, front, back, is_ai_generated,
	ease_factor, interval_days, repetitions, next_review_at, created_at, updated_at`

const insertCardSQL = `INSERT INTO flashcards (
	id, deck_id, user_id, front, back, is_ai_generated,
	ease_factor, interval_days, repetitions, next_review_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + cardColumns

// StatsRow is the projection consumed by the deck statistics aggregator.
// One row per flashcard, keyed by the owning deck.
type StatsRow struct {
	DeckID       uuid.UUID
	NextReviewAt *time.Time
}

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new flashcard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a single flashcard and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Flashcard) (*domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, insertCardSQL,
		c.ID, c.DeckID, c.UserID, c.Front, c.Back, c.AIGenerated,
		c.EaseFactor, c.IntervalDays, c.Repetitions, c.NextReviewAt,
		c.CreatedAt, c.UpdatedAt,
	)

	created, err := scanCard(row)
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", c.ID)
	}

	return created, nil
}

// CreateBatch inserts multiple flashcards in one round trip using a pgx batch.
// Meant to run inside a transaction so a failed insert rolls back the lot.
func (r *Repo) CreateBatch(ctx context.Context, cards []*domain.Flashcard) ([]domain.Flashcard, error) {
	if len(cards) == 0 {
		return []domain.Flashcard{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, c := range cards {
		batch.Queue(insertCardSQL,
			c.ID, c.DeckID, c.UserID, c.Front, c.Back, c.AIGenerated,
			c.EaseFactor, c.IntervalDays, c.Repetitions, c.NextReviewAt,
			c.CreatedAt, c.UpdatedAt,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	created := make([]domain.Flashcard, 0, len(cards))
	for _, c := range cards {
		row := results.QueryRow()
		inserted, err := scanCard(row)
		if err != nil {
			return nil, postgres.MapError(err, "flashcard", c.ID)
		}
		created = append(created, *inserted)
	}

	return created, nil
}

// GetByID returns a flashcard by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+cardColumns+` FROM flashcards WHERE id = $1 AND user_id = $2`,
		cardID, userID,
	)

	c, err := scanCard(row)
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", cardID)
	}

	return c, nil
}

// UpdateContent rewrites the card faces and bumps updated_at. Scheduling
// state is left untouched.
func (r *Repo) UpdateContent(ctx context.Context, userID, cardID uuid.UUID, front, back string) (*domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE flashcards SET front = $3, back = $4, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+cardColumns,
		cardID, userID, front, back,
	)

	c, err := scanCard(row)
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", cardID)
	}

	return c, nil
}

// Delete removes a flashcard. Returns domain.ErrNotFound if the card does
// not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM flashcards WHERE id = $1 AND user_id = $2`,
		cardID, userID,
	)
	if err != nil {
		return postgres.MapError(err, "flashcard", cardID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("flashcard %s: %w", cardID, domain.ErrNotFound)
	}

	return nil
}

// ListByDeck returns a page of cards in a deck, newest first.
func (r *Repo) ListByDeck(ctx context.Context, userID, deckID uuid.UUID, limit, offset int) ([]domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+cardColumns+` FROM flashcards
		 WHERE deck_id = $1 AND user_id = $2
		 ORDER BY created_at DESC, id DESC
		 LIMIT $3 OFFSET $4`,
		deckID, userID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	defer rows.Close()

	cards, err := scanCards(rows)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}

	return cards, nil
}

// CountByDeck returns the number of cards in a deck owned by the user.
func (r *Repo) CountByDeck(ctx context.Context, userID, deckID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx,
		`SELECT count(*) FROM flashcards WHERE deck_id = $1 AND user_id = $2`,
		deckID, userID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count flashcards: %w", err)
	}

	return count, nil
}

// StatsByDeckIDs fetches the scheduling projection for every card across the
// given decks in one query. Decks with no cards yield no rows; callers must
// zero-fill absent keys.
func (r *Repo) StatsByDeckIDs(ctx context.Context, userID uuid.UUID, deckIDs []uuid.UUID) ([]StatsRow, error) {
	if len(deckIDs) == 0 {
		return []StatsRow{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT deck_id, next_review_at FROM flashcards
		 WHERE user_id = $1 AND deck_id = ANY($2::uuid[])`,
		userID, deckIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("stats by deck ids: %w", err)
	}
	defer rows.Close()

	var out []StatsRow
	for rows.Next() {
		var sr StatsRow
		if err := rows.Scan(&sr.DeckID, &sr.NextReviewAt); err != nil {
			return nil, fmt.Errorf("stats by deck ids: %w", err)
		}
		out = append(out, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stats by deck ids: %w", err)
	}

	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*domain.Flashcard, error) {
	var c domain.Flashcard
	if err := row.Scan(
		&c.ID, &c.DeckID, &c.UserID, &c.Front, &c.Back, &c.AIGenerated,
		&c.EaseFactor, &c.IntervalDays, &c.Repetitions, &c.NextReviewAt,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCards(rows pgx.Rows) ([]domain.Flashcard, error) {
	var cards []domain.Flashcard
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if cards == nil {
		cards = []domain.Flashcard{}
	}

	return cards, nil
}
