package deck

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/dmorgun/flashdeck-backend/internal/domain"
)

const (
	statsMaxBatch = 100
	statsWait     = 2 * time.Millisecond
)

// newStatsBatchFn builds the batch function that resolves per-deck statistics
// for a set of deck IDs in one SQL round trip. Every requested key gets a
// result: decks without flashcards resolve to the zero DeckStats.
func newStatsBatchFn(repo cardStatsRepo, userID uuid.UUID, now time.Time) dataloader.BatchFunc[uuid.UUID, domain.DeckStats] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.DeckStats] {
		rows, err := repo.StatsByDeckIDs(ctx, userID, keys)
		if err != nil {
			// No partial statistics: fail every key in the batch.
			return errorResults[domain.DeckStats](len(keys), err)
		}

		grouped := make(map[uuid.UUID]domain.DeckStats, len(keys))
		for _, row := range rows {
			st := grouped[row.DeckID]
			st.TotalCards++
			if row.NextReviewAt != nil {
				if !row.NextReviewAt.After(now) {
					st.CardsDue++
				}
				if st.EarliestUpcoming == nil || row.NextReviewAt.Before(*st.EarliestUpcoming) {
					at := *row.NextReviewAt
					st.EarliestUpcoming = &at
				}
			}
			grouped[row.DeckID] = st
		}

		return mapResults(keys, grouped, func() domain.DeckStats { return domain.DeckStats{} })
	}
}

// aggregateStats resolves statistics for the given decks through a batched
// loader. An empty ID set short-circuits without touching storage.
func (s *Service) aggregateStats(ctx context.Context, userID uuid.UUID, deckIDs []uuid.UUID) (map[uuid.UUID]domain.DeckStats, error) {
	if len(deckIDs) == 0 {
		return map[uuid.UUID]domain.DeckStats{}, nil
	}

	loader := dataloader.NewBatchedLoader(
		newStatsBatchFn(s.stats, userID, time.Now()),
		dataloader.WithWait[uuid.UUID, domain.DeckStats](statsWait),
		dataloader.WithBatchCapacity[uuid.UUID, domain.DeckStats](statsMaxBatch),
	)

	results, errs := loader.LoadMany(ctx, deckIDs)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make(map[uuid.UUID]domain.DeckStats, len(deckIDs))
	for i, id := range deckIDs {
		out[id] = results[i]
	}
	return out, nil
}

// errorResults fails all n keys of a batch with the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}
