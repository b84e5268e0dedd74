package flashcard

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmorgun/flashdeck-backend/internal/domain"
)

const (
	maxFaceLen    = 2000
	maxBatchCards = 100
	defaultLimit  = 20
	maxLimit      = 100
)

// validateFace checks one card face (front or back) without the field prefix.
func validateFace(field, value string, errs []domain.FieldError) []domain.FieldError {
	if value == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(value) > maxFaceLen {
		return append(errs, domain.FieldError{Field: field, Message: "too long (max 2000)"})
	}
	return errs
}

// CreateCardInput holds the parameters for creating a flashcard manually.
type CreateCardInput struct {
	DeckID uuid.UUID
	Front  string
	Back   string
}

// Normalize trims whitespace from both faces.
func (i *CreateCardInput) Normalize() {
	i.Front = strings.TrimSpace(i.Front)
	i.Back = strings.TrimSpace(i.Back)
}

// Validate checks all fields and collects all errors.
func (i *CreateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	errs = validateFace("front", i.Front, errs)
	errs = validateFace("back", i.Back, errs)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CardContent is one front/back pair inside a batch create request.
type CardContent struct {
	Front string
	Back  string
}

// BatchCreateInput holds the parameters for persisting a batch of accepted
// cards, typically AI-generated candidates.
type BatchCreateInput struct {
	DeckID      uuid.UUID
	Cards       []CardContent
	AIGenerated bool
}

// Normalize trims whitespace from every card face.
func (i *BatchCreateInput) Normalize() {
	for idx := range i.Cards {
		i.Cards[idx].Front = strings.TrimSpace(i.Cards[idx].Front)
		i.Cards[idx].Back = strings.TrimSpace(i.Cards[idx].Back)
	}
}

// Validate checks all fields and collects all errors.
func (i *BatchCreateInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if len(i.Cards) == 0 {
		errs = append(errs, domain.FieldError{Field: "cards", Message: "required (at least 1)"})
	} else if len(i.Cards) > maxBatchCards {
		errs = append(errs, domain.FieldError{Field: "cards", Message: "too many (max 100)"})
	}
	for idx, c := range i.Cards {
		errs = validateFace(fmt.Sprintf("cards[%d].front", idx), c.Front, errs)
		errs = validateFace(fmt.Sprintf("cards[%d].back", idx), c.Back, errs)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateCardInput holds the parameters for updating a flashcard's content.
type UpdateCardInput struct {
	CardID uuid.UUID
	Front  string
	Back   string
}

// Normalize trims whitespace from both faces.
func (i *UpdateCardInput) Normalize() {
	i.Front = strings.TrimSpace(i.Front)
	i.Back = strings.TrimSpace(i.Back)
}

// Validate checks all fields and collects all errors.
func (i *UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	errs = validateFace("front", i.Front, errs)
	errs = validateFace("back", i.Back, errs)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListCardsInput holds the parameters for listing a deck's flashcards.
type ListCardsInput struct {
	DeckID uuid.UUID
	Page   int
	Limit  int
}

// Normalize fills defaults for fields the caller left unset.
func (i *ListCardsInput) Normalize() {
	if i.Page == 0 {
		i.Page = 1
	}
	if i.Limit == 0 {
		i.Limit = defaultLimit
	}
}

// Validate checks all fields and collects all errors.
func (i *ListCardsInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if i.Page < 1 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be >= 1"})
	}
	if i.Limit < 1 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 100"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
