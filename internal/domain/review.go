package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a single review record for a flashcard. The table exists in the
// schema and cascades on flashcard deletion; no service reads or writes
// reviews yet.
type Review struct {
	ID          uuid.UUID
	FlashcardID uuid.UUID
	UserID      uuid.UUID
	Rating      int
	ReviewedAt  time.Time
}
