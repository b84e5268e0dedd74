package deck

import (
	"context"
	"sync"

	"github.com/google/uuid"

	pgdeck "github.com/dmorgun/flashdeck-backend/internal/adapter/postgres/deck"
	"github.com/dmorgun/flashdeck-backend/internal/adapter/postgres/flashcard"
	"github.com/dmorgun/flashdeck-backend/internal/domain"
)

var _ deckRepo = &deckRepoMock{}

type deckRepoMock struct {
	CreateFunc       func(ctx context.Context, d *domain.Deck) (*domain.Deck, error)
	GetByIDFunc      func(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
	RenameFunc       func(ctx context.Context, userID, deckID uuid.UUID, name string) (*domain.Deck, error)
	DeleteFunc       func(ctx context.Context, userID, deckID uuid.UUID) error
	CountByOwnerFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	ListFunc         func(ctx context.Context, userID uuid.UUID, params pgdeck.ListParams) ([]domain.Deck, error)

	calls struct {
		Create []struct {
			Deck *domain.Deck
		}
		GetByID []struct {
			UserID uuid.UUID
			DeckID uuid.UUID
		}
		Rename []struct {
			UserID uuid.UUID
			DeckID uuid.UUID
			Name   string
		}
		Delete []struct {
			UserID uuid.UUID
			DeckID uuid.UUID
		}
		CountByOwner []struct {
			UserID uuid.UUID
		}
		List []struct {
			UserID uuid.UUID
			Params pgdeck.ListParams
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockRename       sync.RWMutex
	lockDelete       sync.RWMutex
	lockCountByOwner sync.RWMutex
	lockList         sync.RWMutex
}

func (mock *deckRepoMock) Create(ctx context.Context, d *domain.Deck) (*domain.Deck, error) {
	if mock.CreateFunc == nil {
		panic("deckRepoMock.CreateFunc: method is nil but deckRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Deck *domain.Deck }{Deck: d})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *deckRepoMock) CreateCalls() []struct{ Deck *domain.Deck } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *deckRepoMock) Rename(ctx context.Context, userID, deckID uuid.UUID, name string) (*domain.Deck, error) {
	if mock.RenameFunc == nil {
		panic("deckRepoMock.RenameFunc: method is nil but deckRepo.Rename was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		DeckID uuid.UUID
		Name   string
	}{UserID: userID, DeckID: deckID, Name: name}
	mock.lockRename.Lock()
	mock.calls.Rename = append(mock.calls.Rename, callInfo)
	mock.lockRename.Unlock()
	return mock.RenameFunc(ctx, userID, deckID, name)
}

func (mock *deckRepoMock) RenameCalls() []struct {
	UserID uuid.UUID
	DeckID uuid.UUID
	Name   string
} {
	mock.lockRename.RLock()
	calls := mock.calls.Rename
	mock.lockRename.RUnlock()
	return calls
}

func (mock *deckRepoMock) Delete(ctx context.Context, userID, deckID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("deckRepoMock.DeleteFunc: method is nil but deckRepo.Delete was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		DeckID uuid.UUID
	}{UserID: userID, DeckID: deckID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, deckID)
}

func (mock *deckRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	DeckID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *deckRepoMock) CountByOwner(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByOwnerFunc == nil {
		panic("deckRepoMock.CountByOwnerFunc: method is nil but deckRepo.CountByOwner was just called")
	}
	mock.lockCountByOwner.Lock()
	mock.calls.CountByOwner = append(mock.calls.CountByOwner, struct{ UserID uuid.UUID }{UserID: userID})
	mock.lockCountByOwner.Unlock()
	return mock.CountByOwnerFunc(ctx, userID)
}

func (mock *deckRepoMock) CountByOwnerCalls() []struct{ UserID uuid.UUID } {
	mock.lockCountByOwner.RLock()
	calls := mock.calls.CountByOwner
	mock.lockCountByOwner.RUnlock()
	return calls
}

func (mock *deckRepoMock) List(ctx context.Context, userID uuid.UUID, params pgdeck.ListParams) ([]domain.Deck, error) {
	if mock.ListFunc == nil {
		panic("deckRepoMock.ListFunc: method is nil but deckRepo.List was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Params pgdeck.ListParams
	}{UserID: userID, Params: params}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, params)
}

func (mock *deckRepoMock) ListCalls() []struct {
	UserID uuid.UUID
	Params pgdeck.ListParams
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ cardStatsRepo = &cardStatsRepoMock{}

type cardStatsRepoMock struct {
	StatsByDeckIDsFunc func(ctx context.Context, userID uuid.UUID, deckIDs []uuid.UUID) ([]flashcard.StatsRow, error)

	calls struct {
		StatsByDeckIDs []struct {
			UserID  uuid.UUID
			DeckIDs []uuid.UUID
		}
	}
	lockStatsByDeckIDs sync.RWMutex
}

func (mock *cardStatsRepoMock) StatsByDeckIDs(ctx context.Context, userID uuid.UUID, deckIDs []uuid.UUID) ([]flashcard.StatsRow, error) {
	if mock.StatsByDeckIDsFunc == nil {
		panic("cardStatsRepoMock.StatsByDeckIDsFunc: method is nil but cardStatsRepo.StatsByDeckIDs was just called")
	}
	callInfo := struct {
		UserID  uuid.UUID
		DeckIDs []uuid.UUID
	}{UserID: userID, DeckIDs: deckIDs}
	mock.lockStatsByDeckIDs.Lock()
	mock.calls.StatsByDeckIDs = append(mock.calls.StatsByDeckIDs, callInfo)
	mock.lockStatsByDeckIDs.Unlock()
	return mock.StatsByDeckIDsFunc(ctx, userID, deckIDs)
}

func (mock *cardStatsRepoMock) StatsByDeckIDsCalls() []struct {
	UserID  uuid.UUID
	DeckIDs []uuid.UUID
} {
	mock.lockStatsByDeckIDs.RLock()
	calls := mock.calls.StatsByDeckIDs
	mock.lockStatsByDeckIDs.RUnlock()
	return calls
}
