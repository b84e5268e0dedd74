package generator

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dmorgun/flashdeck-backend/internal/domain"
)

const (
	defaultCount = 10
	maxCount     = 20
	maxTopicLen  = 500
)

// GenerateInput asks for Count flashcard candidates on Topic.
type GenerateInput struct {
	DeckID uuid.UUID
	Topic  string
	Count  int
}

// Normalize trims the topic and fills the default count.
func (i *GenerateInput) Normalize() {
	i.Topic = strings.TrimSpace(i.Topic)
	if i.Count == 0 {
		i.Count = defaultCount
	}
}

func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deckId", Message: "is required"})
	}
	if i.Topic == "" {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "is required"})
	} else if len(i.Topic) > maxTopicLen {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "must be at most 500 characters"})
	}
	if i.Count < 1 || i.Count > maxCount {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be between 1 and 20"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
