package flashcard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmorgun/flashdeck-backend/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	CreateFunc        func(ctx context.Context, c *domain.Flashcard) (*domain.Flashcard, error)
	CreateBatchFunc   func(ctx context.Context, cards []*domain.Flashcard) ([]domain.Flashcard, error)
	GetByIDFunc       func(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error)
	UpdateContentFunc func(ctx context.Context, userID, cardID uuid.UUID, front, back string) (*domain.Flashcard, error)
	DeleteFunc        func(ctx context.Context, userID, cardID uuid.UUID) error
	ListByDeckFunc    func(ctx context.Context, userID, deckID uuid.UUID, limit, offset int) ([]domain.Flashcard, error)
	CountByDeckFunc   func(ctx context.Context, userID, deckID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Card *domain.Flashcard
		}
		CreateBatch []struct {
			Cards []*domain.Flashcard
		}
		GetByID []struct {
			UserID uuid.UUID
			CardID uuid.UUID
		}
		UpdateContent []struct {
			UserID uuid.UUID
			CardID uuid.UUID
			Front  string
			Back   string
		}
		Delete []struct {
			UserID uuid.UUID
			CardID uuid.UUID
		}
		ListByDeck []struct {
			UserID uuid.UUID
			DeckID uuid.UUID
			Limit  int
			Offset int
		}
		CountByDeck []struct {
			UserID uuid.UUID
			DeckID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockCreateBatch   sync.RWMutex
	lockGetByID       sync.RWMutex
	lockUpdateContent sync.RWMutex
	lockDelete        sync.RWMutex
	lockListByDeck    sync.RWMutex
	lockCountByDeck   sync.RWMutex
}

func (mock *cardRepoMock) Create(ctx context.Context, c *domain.Flashcard) (*domain.Flashcard, error) {
	if mock.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Card *domain.Flashcard }{Card: c})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *cardRepoMock) CreateCalls() []struct{ Card *domain.Flashcard } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardRepoMock) CreateBatch(ctx context.Context, cards []*domain.Flashcard) ([]domain.Flashcard, error) {
	if mock.CreateBatchFunc == nil {
		panic("cardRepoMock.CreateBatchFunc: method is nil but cardRepo.CreateBatch was just called")
	}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, struct{ Cards []*domain.Flashcard }{Cards: cards})
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, cards)
}

func (mock *cardRepoMock) CreateBatchCalls() []struct{ Cards []*domain.Flashcard } {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}

func (mock *cardRepoMock) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error) {
	if mock.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		CardID uuid.UUID
	}{UserID: userID, CardID: cardID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, cardID)
}

func (mock *cardRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	CardID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *cardRepoMock) UpdateContent(ctx context.Context, userID, cardID uuid.UUID, front, back string) (*domain.Flashcard, error) {
	if mock.UpdateContentFunc == nil {
		panic("cardRepoMock.UpdateContentFunc: method is nil but cardRepo.UpdateContent was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		CardID uuid.UUID
		Front  string
		Back   string
	}{UserID: userID, CardID: cardID, Front: front, Back: back}
	mock.lockUpdateContent.Lock()
	mock.calls.UpdateContent = append(mock.calls.UpdateContent, callInfo)
	mock.lockUpdateContent.Unlock()
	return mock.UpdateContentFunc(ctx, userID, cardID, front, back)
}

func (mock *cardRepoMock) UpdateContentCalls() []struct {
	UserID uuid.UUID
	CardID uuid.UUID
	Front  string
	Back   string
} {
	mock.lockUpdateContent.RLock()
	calls := mock.calls.UpdateContent
	mock.lockUpdateContent.RUnlock()
	return calls
}

func (mock *cardRepoMock) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		CardID uuid.UUID
	}{UserID: userID, CardID: cardID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, cardID)
}

func (mock *cardRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	CardID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *cardRepoMock) ListByDeck(ctx context.Context, userID, deckID uuid.UUID, limit, offset int) ([]domain.Flashcard, error) {
	if mock.ListByDeckFunc == nil {
		panic("cardRepoMock.ListByDeckFunc: method is nil but cardRepo.ListByDeck was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		DeckID uuid.UUID
		Limit  int
		Offset int
	}{UserID: userID, DeckID: deckID, Limit: limit, Offset: offset}
	mock.lockListByDeck.Lock()
	mock.calls.ListByDeck = append(mock.calls.ListByDeck, callInfo)
	mock.lockListByDeck.Unlock()
	return mock.ListByDeckFunc(ctx, userID, deckID, limit, offset)
}

func (mock *cardRepoMock) ListByDeckCalls() []struct {
	UserID uuid.UUID
	DeckID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListByDeck.RLock()
	calls := mock.calls.ListByDeck
	mock.lockListByDeck.RUnlock()
	return calls
}

func (mock *cardRepoMock) CountByDeck(ctx context.Context, userID, deckID uuid.UUID) (int, error) {
	if mock.CountByDeckFunc == nil {
		panic("cardRepoMock.CountByDeckFunc: method is nil but cardRepo.CountByDeck was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		DeckID uuid.UUID
	}{UserID: userID, DeckID: deckID}
	mock.lockCountByDeck.Lock()
	mock.calls.CountByDeck = append(mock.calls.CountByDeck, callInfo)
	mock.lockCountByDeck.Unlock()
	return mock.CountByDeckFunc(ctx, userID, deckID)
}

func (mock *cardRepoMock) CountByDeckCalls() []struct {
	UserID uuid.UUID
	DeckID uuid.UUID
} {
	mock.lockCountByDeck.RLock()
	calls := mock.calls.CountByDeck
	mock.lockCountByDeck.RUnlock()
	return calls
}

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

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback directly, without a real transaction.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
