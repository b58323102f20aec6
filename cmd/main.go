package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/lunamoth/spx/internal/auth"
	"github.com/lunamoth/spx/internal/shared"
	"github.com/lunamoth/spx/internal/spotify"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var authenticator *auth.Authenticator
	if config.Credentials.Spotify.ClientID != "" && config.Credentials.Spotify.ClientSecret != "" {
		if a, err := auth.New(config.Credentials.Spotify.Map()); err == nil {
			authenticator = a
		}
	}

	client := spotify.New("", http.DefaultClient)
	if config.Credentials.Spotify.AccessToken != "" {
		client.SetToken(config.Credentials.Spotify.AccessToken)
	}

	runner := NewRunner(RunnerOpts{
		Config:        config,
		Client:        client,
		Authenticator: authenticator,
		Logger:        logger,
	})

	app := &cli.Command{
		Name:     "spx",
		Usage:    "Spotify from the command line",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotAuthenticated) || errors.Is(err, shared.ErrTokenExpired) {
			logger.Error(err)
			logger.Print("run 'spx auth login' to authorize")
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
