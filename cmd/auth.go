package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/lunamoth/spx/internal/auth"
	"github.com/lunamoth/spx/internal/models"
	"github.com/lunamoth/spx/internal/repositories"
	"github.com/lunamoth/spx/internal/server"
	"github.com/lunamoth/spx/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// AuthLogin performs the OAuth2 authorization code flow.
//
// Starts a local HTTP server, opens the browser for user authorization,
// exchanges the auth code for tokens, and persists them to the config file
// and the account store.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		configPath = r.configPath
	}

	config := r.config
	if _, err := os.Stat(configPath); err == nil {
		if loaded, err := shared.LoadConfig(configPath); err == nil {
			config = loaded
		} else {
			r.logger.Warnf("failed to load config, using current: %v", err)
		}
	}

	if config.Credentials.Spotify.ClientID == "" || config.Credentials.Spotify.ClientSecret == "" {
		return fmt.Errorf("%w: client_id and client_secret must be set in %s", shared.ErrMissingCredentials, configPath)
	}

	authenticator := r.authenticator
	if authenticator == nil {
		var err error
		if authenticator, err = auth.New(config.Credentials.Spotify.Map()); err != nil {
			return fmt.Errorf("failed to create authenticator: %w", err)
		}
		r.authenticator = authenticator
	}

	token, err := r.doOAuth(config, authenticator)
	if err != nil {
		return err
	}

	if err := config.Credentials.Spotify.Update(token); err != nil {
		return fmt.Errorf("failed to update credentials: %w", err)
	}

	if err := shared.SaveConfig(configPath, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	r.config = config
	r.client.SetToken(token.AccessToken)

	if err := r.saveAccount(ctx, token); err != nil {
		r.logger.Warnf("failed to persist account: %v", err)
	}

	r.writePlainln("✓ Authorization successful")
	r.writePlain("✓ Tokens saved to %s\n\n", configPath)
	r.writePlain("You can now use: spx me\n")

	return nil
}

// AuthRefresh exchanges the stored refresh token for a fresh token pair.
func (r *Runner) AuthRefresh(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		configPath = r.configPath
	}

	if r.authenticator == nil {
		authenticator, err := auth.New(r.config.Credentials.Spotify.Map())
		if err != nil {
			return fmt.Errorf("failed to create authenticator: %w", err)
		}
		r.authenticator = authenticator
	}

	fresh, err := r.authenticator.Refresh(ctx, r.config.Credentials.Spotify.Token())
	if err != nil {
		return err
	}

	if err := r.config.Credentials.Spotify.Update(fresh); err != nil {
		return fmt.Errorf("failed to update credentials: %w", err)
	}

	if err := shared.SaveConfig(configPath, r.config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	r.client.SetToken(fresh.AccessToken)

	if err := r.saveAccount(ctx, fresh); err != nil {
		r.logger.Warnf("failed to persist account: %v", err)
	}

	return r.writePlain("✓ Token refreshed\n")
}

// AuthStatus reports the stored credential state and any persisted accounts.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	creds := r.config.Credentials.Spotify

	if creds.ClientID == "" {
		r.writePlain("Credentials: ✗ not configured\n")
		return nil
	}

	r.writePlain("Credentials: ✓ configured\n")

	if creds.AccessToken == "" {
		r.writePlain("Token: ✗ not authorized\n")
		return nil
	}

	if creds.Expired() {
		r.writePlain("Token: ⚠ expired, run 'spx auth refresh'\n")
	} else {
		r.writePlain("Token: ✓ valid\n")
		if creds.ExpiresAt > 0 {
			r.writePlain("Expires: %s\n", time.Unix(creds.ExpiresAt, 0).Format(time.RFC1123))
		}
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		r.logger.Debugf("account store unavailable: %v", err)
		return nil
	}
	defer db.Close()

	accounts, err := repositories.NewAccountRepository(db).List(nil)
	if err != nil {
		r.logger.Debugf("failed to list accounts: %v", err)
		return nil
	}

	for _, account := range accounts {
		name := account.DisplayName()
		if name == "" {
			name = account.SpotifyID()
		}
		r.writePlain("Account: %s (%s)\n", name, account.SpotifyID())
	}

	return nil
}

// doOAuth executes the OAuth2 authorization flow with a local HTTP server
func (r *Runner) doOAuth(config *shared.Config, authenticator *auth.Authenticator) (*oauth2.Token, error) {
	state, err := shared.GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state token: %w", err)
	}

	authURL := authenticator.AuthURL(state)
	oauthHandler := server.NewOAuthHandler(authenticator.Config(), state)
	router := server.NewBasicRouter()
	router.Handler(oauthHandler)

	serverAddr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting OAuth callback server at %v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Opening browser for Spotify authorization...\n")
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for authorization (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.OAuthResult

	select {
	case result = <-oauthHandler.Result():
	case err := <-serverErrors:
		return nil, fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return nil, fmt.Errorf("%w: authorization timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, result.Error())
	}

	if result.Token == nil {
		return nil, fmt.Errorf("%w: no token received", shared.ErrAuthFailed)
	}

	return result.Token, nil
}

// saveAccount fetches the authorized user's profile and upserts it in the
// account store, attaching the freshly issued tokens.
func (r *Runner) saveAccount(ctx context.Context, token *oauth2.Token) error {
	resp, err := r.client.Me(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	var profile models.Profile
	if err := r.decode(resp, &profile); err != nil {
		return fmt.Errorf("failed to decode profile: %w", err)
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return fmt.Errorf("account store unavailable, run 'spx setup database': %w", err)
	}
	defer db.Close()

	repo := repositories.NewAccountRepository(db)

	var expiresAt *time.Time
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		expiresAt = &expiry
	}

	account, err := repo.GetBySpotifyID(profile.ID)
	if err != nil {
		account = models.NewAccount(0, profile.ID)
		account.SetDisplayName(profile.DisplayName)
		account.SetAvatar(profile.Avatar())
		account.SetTokens(token.AccessToken, token.RefreshToken, expiresAt)
		if err := repo.Create(account); err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}
		r.logger.Infof("account created for %v", profile.ID)
		return nil
	}

	account.SetDisplayName(profile.DisplayName)
	account.SetAvatar(profile.Avatar())
	account.SetTokens(token.AccessToken, token.RefreshToken, expiresAt)
	if err := repo.Update(account); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	r.logger.Infof("account updated for %v", profile.ID)
	return nil
}
