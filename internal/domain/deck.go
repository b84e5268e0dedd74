package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deck is a named collection of flashcards owned by exactly one user.
type Deck struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeckStats holds derived per-deck statistics. None of these are stored:
// they are computed from the deck's flashcards on every read.
type DeckStats struct {
	// TotalCards is the number of flashcards in the deck.
	TotalCards int

	// CardsDue counts flashcards whose next review date is at or before
	// the moment of computation.
	CardsDue int

	// EarliestUpcoming is the minimum next_review_at across the deck's
	// flashcards, nil when the deck has no scheduled cards.
	EarliestUpcoming *time.Time
}

// DeckWithStats pairs a deck with its computed statistics.
type DeckWithStats struct {
	Deck
	Stats DeckStats
}

// DeckSortField enumerates the columns deck listings may be ordered by.
type DeckSortField string

const (
	DeckSortName    DeckSortField = "name"
	DeckSortCreated DeckSortField = "created"
	DeckSortUpdated DeckSortField = "updated"
)

// SortOrder is the listing sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)
