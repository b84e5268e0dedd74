package deck

import (
	"github.com/google/uuid"

	"github.com/dmorgun/flashdeck-backend/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
	maxNameLen   = 255
)

// CreateDeckInput holds the parameters for creating a deck.
type CreateDeckInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i *CreateDeckInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 255)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RenameDeckInput holds the parameters for renaming a deck.
type RenameDeckInput struct {
	DeckID uuid.UUID
	Name   string
}

// Validate checks all fields and collects all errors.
func (i *RenameDeckInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 255)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListDecksInput holds the parameters for the paginated deck listing.
// Zero values mean "not provided" and are replaced by defaults in Normalize;
// negative or over-limit values fail Validate. Callers that can tell an
// explicit zero from an absent parameter must reject the zero themselves.
type ListDecksInput struct {
	Page      int
	Limit     int
	SortBy    domain.DeckSortField
	SortOrder domain.SortOrder
}

// Normalize fills defaults for fields the caller left unset.
func (i *ListDecksInput) Normalize() {
	if i.Page == 0 {
		i.Page = defaultPage
	}
	if i.Limit == 0 {
		i.Limit = defaultLimit
	}
	if i.SortBy == "" {
		i.SortBy = domain.DeckSortCreated
	}
	if i.SortOrder == "" {
		i.SortOrder = domain.SortDesc
	}
}

// Validate checks all fields and collects all errors.
func (i *ListDecksInput) Validate() error {
	var errs []domain.FieldError

	if i.Page < 1 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be >= 1"})
	}
	if i.Limit < 1 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 100"})
	}
	switch i.SortBy {
	case domain.DeckSortName, domain.DeckSortCreated, domain.DeckSortUpdated:
	default:
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be name, created, or updated"})
	}
	switch i.SortOrder {
	case domain.SortAsc, domain.SortDesc:
	default:
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be asc or desc"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
