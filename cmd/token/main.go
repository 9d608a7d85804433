// Command token mints an API bearer token for the configured secret.
//
//	go run ./cmd/token -subject mobile-gateway
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/nmwangik/dukapay/internal/auth"
	"github.com/nmwangik/dukapay/internal/config"
)

func main() {
	subject := flag.String("subject", "api-client", "name of the client the token is issued to")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.Secret == "" {
		slog.Error("AUTH_SECRET is not set; tokens are not needed while auth is disabled")
		os.Exit(1)
	}

	token, err := auth.GenerateToken(*subject, cfg.Auth.Secret, cfg.Auth.TokenExpiration)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
