package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql

	"github.com/dmorgun/flashdeck-backend/internal/adapter/postgres"
	deckrepo "github.com/dmorgun/flashdeck-backend/internal/adapter/postgres/deck"
	cardrepo "github.com/dmorgun/flashdeck-backend/internal/adapter/postgres/flashcard"
	tokenrepo "github.com/dmorgun/flashdeck-backend/internal/adapter/postgres/token"
	userrepo "github.com/dmorgun/flashdeck-backend/internal/adapter/postgres/user"
	authjwt "github.com/dmorgun/flashdeck-backend/internal/auth"
	"github.com/dmorgun/flashdeck-backend/internal/config"
	authsvc "github.com/dmorgun/flashdeck-backend/internal/service/auth"
	decksvc "github.com/dmorgun/flashdeck-backend/internal/service/deck"
	cardsvc "github.com/dmorgun/flashdeck-backend/internal/service/flashcard"
	gensvc "github.com/dmorgun/flashdeck-backend/internal/service/generator"
	"github.com/dmorgun/flashdeck-backend/internal/transport/middleware"
	"github.com/dmorgun/flashdeck-backend/internal/transport/rest"
	"github.com/dmorgun/flashdeck-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and the HTTP server, then
// blocks until ctx is cancelled and shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("ai_generation", cfg.Generator.Enabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := runMigrations(cfg.Database.DSN); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	decks := deckrepo.New(pool)
	cards := cardrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := authjwt.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	deckService := decksvc.NewService(logger, decks, cards)
	cardService := cardsvc.NewService(logger, cards, decks, txManager)
	genService := gensvc.NewService(logger, decks, gensvc.NewAnthropicClient(cfg.Generator))

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Auth:           rest.NewAuthHandler(authService, logger),
		Decks:          rest.NewDeckHandler(deckService, logger),
		Flashcards:     rest.NewFlashcardHandler(cardService, genService, logger),
		Health:         rest.NewHealthHandler(pool, BuildVersion()),
		AuthMiddleware: middleware.Auth(authService),
		AuthRateLimit:  rateLimiter.Limit(cfg.Server.AuthRatePerMinute),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// runMigrations applies embedded goose migrations. goose needs database/sql,
// so it gets its own short-lived connection via the pgx stdlib driver.
func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close() //nolint:errcheck

	return migrations.Up(db)
}
