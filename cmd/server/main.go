// Command server runs the flashdeck HTTP API.
//
// Configuration comes from environment variables (and an optional YAML
// config file via CONFIG_PATH). DATABASE_DSN and AUTH_JWT_SECRET are
// required; ANTHROPIC_API_KEY enables the AI generation endpoint.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmorgun/flashdeck-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
