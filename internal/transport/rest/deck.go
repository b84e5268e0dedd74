package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmorgun/flashdeck-backend/internal/domain"
	"github.com/dmorgun/flashdeck-backend/internal/service/deck"
)

// deckService defines the minimal interface needed by DeckHandler.
type deckService interface {
	ListDecks(ctx context.Context, input deck.ListDecksInput) (*deck.ListResult, error)
	CreateDeck(ctx context.Context, input deck.CreateDeckInput) (*domain.Deck, error)
	GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.DeckWithStats, error)
	RenameDeck(ctx context.Context, input deck.RenameDeckInput) (*domain.Deck, error)
	DeleteDeck(ctx context.Context, deckID uuid.UUID) error
}

// DeckHandler serves deck CRUD and listing endpoints.
type DeckHandler struct {
	svc deckService
	log *slog.Logger
}

// NewDeckHandler creates a DeckHandler.
func NewDeckHandler(svc deckService, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{svc: svc, log: logger.With("handler", "deck")}
}

type createDeckRequest struct {
	Name string `json:"name"`
}

type renameDeckRequest struct {
	Name string `json:"name"`
}

type deckResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type deckStatsResponse struct {
	TotalCards       int        `json:"totalCards"`
	CardsDue         int        `json:"cardsDue"`
	EarliestUpcoming *time.Time `json:"earliestUpcoming"`
}

type deckWithStatsResponse struct {
	deckResponse
	Stats deckStatsResponse `json:"stats"`
}

type deckListResponse struct {
	Data       []deckWithStatsResponse `json:"data"`
	Pagination paginationResponse      `json:"pagination"`
}

// List handles GET /api/v1/decks.
func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListDecksQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.ListDecks(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	data := make([]deckWithStatsResponse, len(result.Decks))
	for i, d := range result.Decks {
		data[i] = toDeckWithStatsResponse(d)
	}

	writeJSON(w, http.StatusOK, deckListResponse{
		Data: data,
		Pagination: paginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

// Create handles POST /api/v1/decks.
func (h *DeckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateDeck(r.Context(), deck.CreateDeckInput{Name: req.Name})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDeckResponse(*created))
}

// Get handles GET /api/v1/decks/{deckID}.
func (h *DeckHandler) Get(w http.ResponseWriter, r *http.Request) {
	deckID, ok := pathUUID(w, r, "deckID")
	if !ok {
		return
	}

	result, err := h.svc.GetDeck(r.Context(), deckID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckWithStatsResponse(*result))
}

// Update handles PUT /api/v1/decks/{deckID}.
func (h *DeckHandler) Update(w http.ResponseWriter, r *http.Request) {
	deckID, ok := pathUUID(w, r, "deckID")
	if !ok {
		return
	}

	var req renameDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.RenameDeck(r.Context(), deck.RenameDeckInput{
		DeckID: deckID,
		Name:   req.Name,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckResponse(*updated))
}

// Delete handles DELETE /api/v1/decks/{deckID}.
func (h *DeckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deckID, ok := pathUUID(w, r, "deckID")
	if !ok {
		return
	}

	if err := h.svc.DeleteDeck(r.Context(), deckID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseListDecksQuery(r *http.Request) (deck.ListDecksInput, error) {
	var input deck.ListDecksInput
	q := r.URL.Query()

	var err error
	if input.Page, err = queryInt(q.Get("page")); err != nil {
		return input, fmt.Errorf("invalid query parameter: page")
	}
	if input.Limit, err = queryInt(q.Get("limit")); err != nil {
		return input, fmt.Errorf("invalid query parameter: limit")
	}
	input.SortBy = domain.DeckSortField(q.Get("sort"))
	input.SortOrder = domain.SortOrder(q.Get("order"))
	return input, nil
}

// queryInt parses an optional integer query parameter. Empty means unset,
// which the service fills with its default. An explicit value must be
// positive: the service cannot tell an explicit 0 apart from an absent
// parameter, so 0 is rejected here.
func queryInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("must be >= 1")
	}
	return n, nil
}

// pathUUID parses a UUID path parameter, answering 404 itself when the
// value cannot name an existing resource.
func pathUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

func toDeckResponse(d domain.Deck) deckResponse {
	return deckResponse{
		ID:        d.ID.String(),
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toDeckWithStatsResponse(d domain.DeckWithStats) deckWithStatsResponse {
	return deckWithStatsResponse{
		deckResponse: toDeckResponse(d.Deck),
		Stats: deckStatsResponse{
			TotalCards:       d.Stats.TotalCards,
			CardsDue:         d.Stats.CardsDue,
			EarliestUpcoming: d.Stats.EarliestUpcoming,
		},
	}
}
