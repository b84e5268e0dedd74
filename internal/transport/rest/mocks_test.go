package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmorgun/flashdeck-backend/internal/domain"
	"github.com/dmorgun/flashdeck-backend/internal/service/auth"
	"github.com/dmorgun/flashdeck-backend/internal/service/deck"
	"github.com/dmorgun/flashdeck-backend/internal/service/flashcard"
	"github.com/dmorgun/flashdeck-backend/internal/service/generator"
)

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	RefreshFunc  func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	LogoutFunc   func(ctx context.Context) error
}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	return m.LoginFunc(ctx, input)
}

func (m *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	return m.RefreshFunc(ctx, input)
}

func (m *authServiceMock) Logout(ctx context.Context) error {
	return m.LogoutFunc(ctx)
}

type deckServiceMock struct {
	ListDecksFunc  func(ctx context.Context, input deck.ListDecksInput) (*deck.ListResult, error)
	CreateDeckFunc func(ctx context.Context, input deck.CreateDeckInput) (*domain.Deck, error)
	GetDeckFunc    func(ctx context.Context, deckID uuid.UUID) (*domain.DeckWithStats, error)
	RenameDeckFunc func(ctx context.Context, input deck.RenameDeckInput) (*domain.Deck, error)
	DeleteDeckFunc func(ctx context.Context, deckID uuid.UUID) error
}

func (m *deckServiceMock) ListDecks(ctx context.Context, input deck.ListDecksInput) (*deck.ListResult, error) {
	return m.ListDecksFunc(ctx, input)
}

func (m *deckServiceMock) CreateDeck(ctx context.Context, input deck.CreateDeckInput) (*domain.Deck, error) {
	return m.CreateDeckFunc(ctx, input)
}

func (m *deckServiceMock) GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.DeckWithStats, error) {
	return m.GetDeckFunc(ctx, deckID)
}

func (m *deckServiceMock) RenameDeck(ctx context.Context, input deck.RenameDeckInput) (*domain.Deck, error) {
	return m.RenameDeckFunc(ctx, input)
}

func (m *deckServiceMock) DeleteDeck(ctx context.Context, deckID uuid.UUID) error {
	return m.DeleteDeckFunc(ctx, deckID)
}

type cardServiceMock struct {
	CreateCardFunc       func(ctx context.Context, input flashcard.CreateCardInput) (*domain.Flashcard, error)
	BatchCreateCardsFunc func(ctx context.Context, input flashcard.BatchCreateInput) ([]domain.Flashcard, error)
	GetCardFunc          func(ctx context.Context, cardID uuid.UUID) (*domain.Flashcard, error)
	UpdateCardFunc       func(ctx context.Context, input flashcard.UpdateCardInput) (*domain.Flashcard, error)
	DeleteCardFunc       func(ctx context.Context, cardID uuid.UUID) error
	ListCardsFunc        func(ctx context.Context, input flashcard.ListCardsInput) (*flashcard.ListResult, error)
}

func (m *cardServiceMock) CreateCard(ctx context.Context, input flashcard.CreateCardInput) (*domain.Flashcard, error) {
	return m.CreateCardFunc(ctx, input)
}

func (m *cardServiceMock) BatchCreateCards(ctx context.Context, input flashcard.BatchCreateInput) ([]domain.Flashcard, error) {
	return m.BatchCreateCardsFunc(ctx, input)
}

func (m *cardServiceMock) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Flashcard, error) {
	return m.GetCardFunc(ctx, cardID)
}

func (m *cardServiceMock) UpdateCard(ctx context.Context, input flashcard.UpdateCardInput) (*domain.Flashcard, error) {
	return m.UpdateCardFunc(ctx, input)
}

func (m *cardServiceMock) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	return m.DeleteCardFunc(ctx, cardID)
}

func (m *cardServiceMock) ListCards(ctx context.Context, input flashcard.ListCardsInput) (*flashcard.ListResult, error) {
	return m.ListCardsFunc(ctx, input)
}

type generatorServiceMock struct {
	GenerateCardsFunc func(ctx context.Context, input generator.GenerateInput) ([]generator.Candidate, error)
}

func (m *generatorServiceMock) GenerateCards(ctx context.Context, input generator.GenerateInput) ([]generator.Candidate, error) {
	return m.GenerateCardsFunc(ctx, input)
}
