package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmorgun/flashdeck-backend/internal/domain"
	"github.com/dmorgun/flashdeck-backend/internal/service/flashcard"
	"github.com/dmorgun/flashdeck-backend/internal/service/generator"
)

// cardService defines the minimal interface needed by FlashcardHandler.
type cardService interface {
	CreateCard(ctx context.Context, input flashcard.CreateCardInput) (*domain.Flashcard, error)
	BatchCreateCards(ctx context.Context, input flashcard.BatchCreateInput) ([]domain.Flashcard, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Flashcard, error)
	UpdateCard(ctx context.Context, input flashcard.UpdateCardInput) (*domain.Flashcard, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
	ListCards(ctx context.Context, input flashcard.ListCardsInput) (*flashcard.ListResult, error)
}

// generatorService defines the minimal interface for AI generation.
type generatorService interface {
	GenerateCards(ctx context.Context, input generator.GenerateInput) ([]generator.Candidate, error)
}

// FlashcardHandler serves flashcard CRUD, batch create and AI generation.
type FlashcardHandler struct {
	svc cardService
	gen generatorService
	log *slog.Logger
}

// NewFlashcardHandler creates a FlashcardHandler.
func NewFlashcardHandler(svc cardService, gen generatorService, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{svc: svc, gen: gen, log: logger.With("handler", "flashcard")}
}

type createCardRequest struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type batchCreateRequest struct {
	Cards       []createCardRequest `json:"cards"`
	AIGenerated bool                `json:"aiGenerated"`
}

type updateCardRequest struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type generateRequest struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

type cardResponse struct {
	ID           string     `json:"id"`
	DeckID       string     `json:"deckId"`
	Front        string     `json:"front"`
	Back         string     `json:"back"`
	AIGenerated  bool       `json:"aiGenerated"`
	EaseFactor   float64    `json:"easeFactor"`
	IntervalDays int        `json:"intervalDays"`
	Repetitions  int        `json:"repetitions"`
	NextReviewAt *time.Time `json:"nextReviewAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type cardListResponse struct {
	Data       []cardResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type candidateResponse struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type generateResponse struct {
	Candidates []candidateResponse `json:"candidates"`
}

// ListByDeck handles GET /api/v1/decks/{deckID}/flashcards.
func (h *FlashcardHandler) ListByDeck(w http.ResponseWriter, r *http.Request) {
	deckID, ok := pathUUID(w, r, "deckID")
	if !ok {
		return
	}

	q := r.URL.Query()
	page, err := queryInt(q.Get("page"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid query parameter: page")
		return
	}
	limit, err := queryInt(q.Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid query parameter: limit")
		return
	}

	result, err := h.svc.ListCards(r.Context(), flashcard.ListCardsInput{
		DeckID: deckID,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	data := make([]cardResponse, len(result.Cards))
	for i, c := range result.Cards {
		data[i] = toCardResponse(c)
	}

	writeJSON(w, http.StatusOK, cardListResponse{
		Data: data,
		Pagination: paginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

// Create handles POST /api/v1/decks/{deckID}/flashcards.
func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	deckID, ok := pathUUID(w, r, "deckID")
	if !ok {
		return
	}

	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateCard(r.Context(), flashcard.CreateCardInput{
		DeckID: deckID,
		Front:  req.Front,
		Back:   req.Back,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCardResponse(*created))
}

// BatchCreate handles POST /api/v1/decks/{deckID}/flashcards/batch. This is
// the acceptance step for generated candidates, and also serves bulk import.
func (h *FlashcardHandler) BatchCreate(w http.ResponseWriter, r *http.Request) {
	deckID, ok := pathUUID(w, r, "deckID")
	if !ok {
		return
	}

	var req batchCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cards := make([]flashcard.CardContent, len(req.Cards))
	for i, c := range req.Cards {
		cards[i] = flashcard.CardContent{Front: c.Front, Back: c.Back}
	}

	created, err := h.svc.BatchCreateCards(r.Context(), flashcard.BatchCreateInput{
		DeckID:      deckID,
		Cards:       cards,
		AIGenerated: req.AIGenerated,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	data := make([]cardResponse, len(created))
	for i, c := range created {
		data[i] = toCardResponse(c)
	}

	writeJSON(w, http.StatusCreated, map[string]any{"data": data})
}

// Generate handles POST /api/v1/decks/{deckID}/flashcards/generate.
// Candidates are returned for review, never persisted here.
func (h *FlashcardHandler) Generate(w http.ResponseWriter, r *http.Request) {
	deckID, ok := pathUUID(w, r, "deckID")
	if !ok {
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	candidates, err := h.gen.GenerateCards(r.Context(), generator.GenerateInput{
		DeckID: deckID,
		Topic:  req.Topic,
		Count:  req.Count,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]candidateResponse, len(candidates))
	for i, c := range candidates {
		out[i] = candidateResponse{Front: c.Front, Back: c.Back}
	}

	writeJSON(w, http.StatusOK, generateResponse{Candidates: out})
}

// Get handles GET /api/v1/flashcards/{cardID}.
func (h *FlashcardHandler) Get(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathUUID(w, r, "cardID")
	if !ok {
		return
	}

	card, err := h.svc.GetCard(r.Context(), cardID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(*card))
}

// Update handles PUT /api/v1/flashcards/{cardID}.
func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathUUID(w, r, "cardID")
	if !ok {
		return
	}

	var req updateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateCard(r.Context(), flashcard.UpdateCardInput{
		CardID: cardID,
		Front:  req.Front,
		Back:   req.Back,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(*updated))
}

// Delete handles DELETE /api/v1/flashcards/{cardID}.
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathUUID(w, r, "cardID")
	if !ok {
		return
	}

	if err := h.svc.DeleteCard(r.Context(), cardID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCardResponse(c domain.Flashcard) cardResponse {
	return cardResponse{
		ID:           c.ID.String(),
		DeckID:       c.DeckID.String(),
		Front:        c.Front,
		Back:         c.Back,
		AIGenerated:  c.AIGenerated,
		EaseFactor:   c.EaseFactor,
		IntervalDays: c.IntervalDays,
		Repetitions:  c.Repetitions,
		NextReviewAt: c.NextReviewAt,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
