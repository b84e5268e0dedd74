package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"

	"github.com/dmorgun/flashdeck-backend/internal/config"
	"github.com/dmorgun/flashdeck-backend/internal/domain"
)

// Errors returned by card generation, in addition to the domain sentinels.
var (
	// ErrDisabled means no API key is configured.
	ErrDisabled = errors.New("ai generation is not configured")
	// ErrBadResponse means the model reply could not be turned into the
	// requested number of usable cards.
	ErrBadResponse = errors.New("unusable model response")
)

type deckRepo interface {
	GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
}

// Client is the slice of the Anthropic API the service needs.
type Client interface {
	CreateMessage(ctx context.Context, prompt string) (string, error)
}

// Service produces AI flashcard candidates. Candidates are never persisted
// here; accepting them is a separate batch-create call. A nil client means
// generation is disabled.
type Service struct {
	decks  deckRepo
	client Client
	log    *slog.Logger
}

func NewService(log *slog.Logger, decks deckRepo, client Client) *Service {
	return &Service{
		decks:  decks,
		client: client,
		log:    log.With("service", "generator"),
	}
}

// anthropicClient adapts the official SDK to Client.
type anthropicClient struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// NewAnthropicClient builds the production Client from config. Returns nil
// when generation is disabled; GenerateCards then reports ErrDisabled.
func NewAnthropicClient(cfg config.GeneratorConfig) Client {
	if !cfg.Enabled() {
		return nil
	}
	return &anthropicClient{
		client:    anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     anthropic.Model(cfg.Model),
		maxTokens: int64(cfg.MaxTokens),
	}
}

func (c *anthropicClient) CreateMessage(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm api call: %w", err)
	}
	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty response: %w", ErrBadResponse)
	}
	return msg.Content[0].Text, nil
}
