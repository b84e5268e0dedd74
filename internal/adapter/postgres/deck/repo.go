// Package deck implements the Deck repository using PostgreSQL.
// The listing query is built dynamically with squirrel because sort column,
// direction, and page window all vary per request.
package deck

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dmorgun/flashdeck-backend/internal/adapter/postgres"
	"github.com/dmorgun/flashdeck-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deckColumns = `id, user_id, name, created_at, updated_at`

// ListParams defines the page window and ordering for List.
// Values are validated by the service layer before they reach the repo.
type ListParams struct {
	SortBy    domain.DeckSortField
	SortOrder domain.SortOrder
	Limit     int
	Offset    int
}

// orderClause maps the sort field and direction to a SQL ORDER BY expression.
// The deck ID is a tiebreaker so pagination is stable across equal keys.
func (p ListParams) orderClause() string {
	column := "created_at"
	switch p.SortBy {
	case domain.DeckSortName:
		column = "name"
	case domain.DeckSortUpdated:
		column = "updated_at"
	}

	direction := "DESC"
	if p.SortOrder == domain.SortAsc {
		direction = "ASC"
	}

	return fmt.Sprintf("%s %s, id %s", column, direction, direction)
}

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new deck repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new deck and returns the persisted domain.Deck.
func (r *Repo) Create(ctx context.Context, d *domain.Deck) (*domain.Deck, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO decks (id, user_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+deckColumns,
		d.ID, d.UserID, d.Name, d.CreatedAt, d.UpdatedAt,
	)

	created, err := scanDeck(row)
	if err != nil {
		return nil, postgres.MapError(err, "deck", d.ID)
	}

	return created, nil
}

// GetByID returns a deck by primary key filtered by user_id. A deck owned by
// another user is indistinguishable from a missing one.
func (r *Repo) GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+deckColumns+` FROM decks WHERE id = $1 AND user_id = $2`,
		deckID, userID,
	)

	d, err := scanDeck(row)
	if err != nil {
		return nil, postgres.MapError(err, "deck", deckID)
	}

	return d, nil
}

// Rename updates the deck name and bumps updated_at.
// Returns domain.ErrNotFound if the deck does not exist or belongs to
// another user.
func (r *Repo) Rename(ctx context.Context, userID, deckID uuid.UUID, name string) (*domain.Deck, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE decks SET name = $3, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+deckColumns,
		deckID, userID, name,
	)

	d, err := scanDeck(row)
	if err != nil {
		return nil, postgres.MapError(err, "deck", deckID)
	}

	return d, nil
}

// Delete removes a deck; flashcards and reviews cascade at the DB level.
// Returns domain.ErrNotFound if the deck does not exist or belongs to
// another user.
func (r *Repo) Delete(ctx context.Context, userID, deckID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM decks WHERE id = $1 AND user_id = $2`,
		deckID, userID,
	)
	if err != nil {
		return postgres.MapError(err, "deck", deckID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", deckID, domain.ErrNotFound)
	}

	return nil
}

// CountByOwner returns the total number of decks owned by the user.
func (r *Repo) CountByOwner(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx,
		`SELECT count(*) FROM decks WHERE user_id = $1`, userID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count decks: %w", err)
	}

	return count, nil
}

// List returns one page of the user's decks ordered per params.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, params ListParams) ([]domain.Deck, error) {
	sqlStr, args, err := psql.
		Select("id", "user_id", "name", "created_at", "updated_at").
		From("decks").
		Where(sq.Eq{"user_id": userID}).
		OrderBy(params.orderClause()).
		Limit(uint64(params.Limit)).
		Offset(uint64(params.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	defer rows.Close()

	decks, err := scanDecks(rows)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	return decks, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeck(row rowScanner) (*domain.Deck, error) {
	var d domain.Deck
	if err := row.Scan(&d.ID, &d.UserID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func scanDecks(rows pgx.Rows) ([]domain.Deck, error) {
	var decks []domain.Deck
	for rows.Next() {
		d, err := scanDeck(rows)
		if err != nil {
			return nil, err
		}
		decks = append(decks, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if decks == nil {
		decks = []domain.Deck{}
	}

	return decks, nil
}
