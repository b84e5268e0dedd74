package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmorgun/flashdeck-backend/internal/domain"
	"github.com/dmorgun/flashdeck-backend/pkg/ctxutil"
)

const maxFaceLen = 2000

// Candidate is a generated flashcard awaiting user review. It has no ID:
// the client submits accepted candidates through the batch create endpoint.
type Candidate struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// GenerateCards asks the model for input.Count candidates on input.Topic.
// It fails if fewer usable candidates come back than were requested, so the
// caller never has to pad a short result.
func (s *Service) GenerateCards(ctx context.Context, input GenerateInput) ([]Candidate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if s.client == nil {
		return nil, ErrDisabled
	}

	// Ownership check. A miss reads as not found.
	deck, err := s.decks.GetByID(ctx, userID, input.DeckID)
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	prompt := buildPrompt(deck.Name, input.Topic, input.Count)

	text, err := s.client.CreateMessage(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate cards: %w", err)
	}

	candidates, err := parseCandidates(text)
	if err != nil {
		s.log.WarnContext(ctx, "unparsable model response",
			"deck_id", input.DeckID, "err", err)
		return nil, err
	}

	if len(candidates) < input.Count {
		s.log.WarnContext(ctx, "model returned too few usable cards",
			"deck_id", input.DeckID,
			"requested", input.Count,
			"usable", len(candidates))
		return nil, fmt.Errorf("got %d usable cards, need %d: %w",
			len(candidates), input.Count, ErrBadResponse)
	}

	s.log.InfoContext(ctx, "cards generated",
		"deck_id", input.DeckID, "count", input.Count)
	return candidates[:input.Count], nil
}

// buildPrompt creates the generation prompt for one deck topic.
func buildPrompt(deckName, topic string, count int) string {
	return fmt.Sprintf(`You are a study assistant creating flashcards for a deck named %q.

Generate exactly %d flashcards about the following topic:
%s

Output ONLY a valid JSON array matching this exact schema:
[
  {"front": "<question or term>", "back": "<answer or definition>"}
]

Rules:
- Each front must be a clear, self-contained question or term
- Each back must be a concise, accurate answer under 2000 characters
- Do not repeat cards or trivially rephrase the same fact
- Output ONLY the JSON array, no markdown, no explanations`, deckName, count, topic)
}

// extractJSONArray finds the first complete JSON array in a string.
func extractJSONArray(s string) (string, error) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON array found in response: %w", ErrBadResponse)
	}
	return s[start : end+1], nil
}

// parseCandidates extracts and validates candidates from raw model output.
// Cards with a blank or oversized face are dropped rather than failing the
// whole batch.
func parseCandidates(text string) ([]Candidate, error) {
	jsonStr, err := extractJSONArray(text)
	if err != nil {
		return nil, err
	}

	var raw []Candidate
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", ErrBadResponse)
	}

	usable := make([]Candidate, 0, len(raw))
	for _, c := range raw {
		c.Front = strings.TrimSpace(c.Front)
		c.Back = strings.TrimSpace(c.Back)
		if c.Front == "" || c.Back == "" {
			continue
		}
		if len(c.Front) > maxFaceLen || len(c.Back) > maxFaceLen {
			continue
		}
		usable = append(usable, c)
	}
	return usable, nil
}
