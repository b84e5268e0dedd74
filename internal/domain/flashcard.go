package domain

import (
	"time"

	"github.com/google/uuid"
)

// Placeholder SRS defaults written on every flashcard creation. No code in
// this repository updates them afterwards: the review scheduling algorithm
// is intentionally absent (see DESIGN.md), so these stay at their initial
// values until a scheduler exists.
const (
	DefaultEaseFactor   = 2.5
	DefaultIntervalDays = 0
	DefaultRepetitions  = 0
)

// Flashcard is a front/back text pair belonging to one deck.
type Flashcard struct {
	ID          uuid.UUID
	DeckID      uuid.UUID
	UserID      uuid.UUID
	Front       string
	Back        string
	AIGenerated bool

	// SRS placeholder fields, set to defaults at creation.
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	NextReviewAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDue reports whether the card's next review date is at or before now.
// Cards without a scheduled review are never due.
func (f *Flashcard) IsDue(now time.Time) bool {
	return f.NextReviewAt != nil && !f.NextReviewAt.After(now)
}

// NewFlashcard builds a flashcard with placeholder SRS defaults. The card is
// scheduled for immediate review (next_review_at = now) so that freshly
// created cards count as due.
func NewFlashcard(deckID, userID uuid.UUID, front, back string, aiGenerated bool, now time.Time) Flashcard {
	reviewAt := now
	return Flashcard{
		ID:           uuid.New(),
		DeckID:       deckID,
		UserID:       userID,
		Front:        front,
		Back:         back,
		AIGenerated:  aiGenerated,
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: DefaultIntervalDays,
		Repetitions:  DefaultRepetitions,
		NextReviewAt: &reviewAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
