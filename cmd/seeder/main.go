// Command seeder populates the database with a demo account and a few
// decks of flashcards. It is intended for local development, not
// production.
//
// Flags:
//
//	--email     demo account email (default demo@flashdeck.local)
//	--password  demo account password (default demo-password)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmorgun/flashdeck-backend/internal/adapter/postgres"
	deckrepo "github.com/dmorgun/flashdeck-backend/internal/adapter/postgres/deck"
	cardrepo "github.com/dmorgun/flashdeck-backend/internal/adapter/postgres/flashcard"
	userrepo "github.com/dmorgun/flashdeck-backend/internal/adapter/postgres/user"
	"github.com/dmorgun/flashdeck-backend/internal/config"
	"github.com/dmorgun/flashdeck-backend/internal/domain"
	"github.com/google/uuid"
)

var demoDecks = map[string][][2]string{
	"Spanish Basics": {
		{"hola", "hello"},
		{"adiós", "goodbye"},
		{"gracias", "thank you"},
		{"por favor", "please"},
	},
	"Go Concurrency": {
		{"What does a sync.WaitGroup do?", "Blocks until a set of goroutines has finished."},
		{"What happens when you send on a nil channel?", "The send blocks forever."},
		{"What does the race detector flag?", "Unsynchronized concurrent access to shared memory."},
	},
}

func main() {
	email := flag.String("email", "demo@flashdeck.local", "demo account email")
	password := flag.String("password", "demo-password", "demo account password")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	decks := deckrepo.New(pool)
	cards := cardrepo.New(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), cfg.Auth.PasswordHashCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	now := time.Now()
	user, err := users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        *email,
		PasswordHash: string(hash),
		Name:         "Demo User",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		log.Fatalf("demo user %s already exists, nothing to do", *email)
	}
	if err != nil {
		log.Fatalf("create demo user: %v", err)
	}

	total := 0
	for name, pairs := range demoDecks {
		deck, err := decks.Create(ctx, &domain.Deck{
			ID:        uuid.New(),
			UserID:    user.ID,
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			log.Fatalf("create deck %q: %v", name, err)
		}

		batch := make([]*domain.Flashcard, len(pairs))
		for i, p := range pairs {
			card := domain.NewFlashcard(deck.ID, user.ID, p[0], p[1], false, now)
			batch[i] = &card
		}
		created, err := cards.CreateBatch(ctx, batch)
		if err != nil {
			log.Fatalf("create cards for %q: %v", name, err)
		}
		total += len(created)
	}

	log.Printf("seeded demo user %s with %d decks and %d cards", *email, len(demoDecks), total)
}
