package generator

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmorgun/flashdeck-backend/internal/domain"
)

var _ deckRepo = &deckRepoMock{}

type deckRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)

	calls struct {
		GetByID []struct {
			UserID uuid.UUID
			DeckID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *deckRepoMock) GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
	if mock.GetByIDFunc == nil {
		panic("deckRepoMock.GetByIDFunc: method is nil but deckRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		DeckID uuid.UUID
	}{UserID: userID, DeckID: deckID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, deckID)
}

func (mock *deckRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	DeckID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ Client = &clientMock{}

type clientMock struct {
	CreateMessageFunc func(ctx context.Context, prompt string) (string, error)

	calls struct {
		CreateMessage []struct {
			Prompt string
		}
	}
	lockCreateMessage sync.RWMutex
}

func (mock *clientMock) CreateMessage(ctx context.Context, prompt string) (string, error) {
	if mock.CreateMessageFunc == nil {
		panic("clientMock.CreateMessageFunc: method is nil but Client.CreateMessage was just called")
	}
	mock.lockCreateMessage.Lock()
	mock.calls.CreateMessage = append(mock.calls.CreateMessage, struct{ Prompt string }{Prompt: prompt})
	mock.lockCreateMessage.Unlock()
	return mock.CreateMessageFunc(ctx, prompt)
}

func (mock *clientMock) CreateMessageCalls() []struct{ Prompt string } {
	mock.lockCreateMessage.RLock()
	calls := mock.calls.CreateMessage
	mock.lockCreateMessage.RUnlock()
	return calls
}
