package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lunamoth/spx/internal/auth"
	"github.com/lunamoth/spx/internal/shared"
	"github.com/lunamoth/spx/internal/spotify"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config        *shared.Config
	configPath    string
	client        *spotify.Client
	authenticator *auth.Authenticator
	logger        *log.Logger
	output        io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config        *shared.Config
	ConfigPath    string
	Client        *spotify.Client
	Authenticator *auth.Authenticator
	Logger        *log.Logger
	Output        io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = "config.toml"
	}
	if opts.Client == nil {
		opts.Client = spotify.New("", http.DefaultClient)
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:        opts.Config,
		configPath:    opts.ConfigPath,
		client:        opts.Client,
		authenticator: opts.Authenticator,
		logger:        opts.Logger,
		output:        opts.Output,
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, meCommand, searchCommand, albumsCommand,
		artistsCommand, tracksCommand, playlistsCommand, playerCommand,
		browseCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// ensureToken loads the stored access token onto the client, failing when
// no authorization has happened yet.
func (r *Runner) ensureToken() error {
	if r.client.Token() != "" {
		return nil
	}

	if r.config.Credentials.Spotify.AccessToken == "" {
		return fmt.Errorf("%w: no access token in config", shared.ErrNotAuthenticated)
	}

	r.client.SetToken(r.config.Credentials.Spotify.AccessToken)
	return nil
}

// decode interprets a raw API response for CLI use.
//
// The request layer hands back responses verbatim, so status handling lives
// here: a 401 maps to [shared.ErrTokenExpired], a 5xx to
// [shared.ErrServiceUnavailable], and any other non-2xx to
// [shared.ErrAPIRequest]. When dest is non-nil the body is unmarshaled
// into it.
func (r *Runner) decode(resp *spotify.Response, dest any) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: status %d", shared.ErrTokenExpired, resp.StatusCode)
	}
	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: status %d", shared.ErrServiceUnavailable, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d: %s", shared.ErrAPIRequest, resp.StatusCode, string(resp.Body))
	}

	if dest == nil || len(resp.Body) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body, dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// writeResponse prints a raw API response body, pretty-printing JSON when
// possible.
func (r *Runner) writeResponse(resp *spotify.Response, pretty bool) error {
	if err := r.decode(resp, nil); err != nil {
		return err
	}

	if resp.IsJSON && pretty {
		return r.writeJSON(resp.JSONData, true)
	}

	if _, err := r.output.Write(resp.Body); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
