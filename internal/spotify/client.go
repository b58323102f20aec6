package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/lunamoth/spx/internal/shared"
)

// DefaultBaseURL is the production Spotify Web API root.
const DefaultBaseURL = "https://api.spotify.com/v1"

// Client issues authenticated requests against the Spotify Web API.
//
// The base URL is fixed for the lifetime of the instance; the access token
// may be replaced at any time via [Client.SetToken]. A Client performs one
// synchronous request per operation and holds no other state, so separate
// instances (one per authorized user) can be used concurrently.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a Client for the given base URL and HTTP client.
//
// An empty baseURL selects [DefaultBaseURL]; a nil client selects
// [http.DefaultClient]. Timeouts and cancellation are the transport's
// concern, via the injected client and per-call contexts.
func New(baseURL string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// SetToken replaces the access token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the currently configured access token.
func (c *Client) Token() string {
	return c.token
}

// Response is the raw transport-layer result of a dispatched request.
//
// Status interpretation is deliberately left to the caller: a 404 or 429
// arrives here the same way a 200 does.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

// dispatch performs one authenticated HTTP request.
//
// Params become the query string for GET and DELETE, and a JSON object
// body for verbs that carry one. Fails with [shared.ErrNoAccessToken]
// before touching the network when no token is set.
func (c *Client) dispatch(ctx context.Context, method, endpoint string, params *Params) (*Response, error) {
	if c.token == "" {
		return nil, fmt.Errorf("%w: call SetToken before dispatching requests", shared.ErrNoAccessToken)
	}

	fullURL := c.baseURL + endpoint

	var body io.Reader
	switch method {
	case http.MethodGet, http.MethodDelete:
		if query := params.Encode(); query != "" {
			fullURL += "?" + query
		}
	default:
		if params.Len() > 0 {
			data, err := json.Marshal(params)
			if err != nil {
				return nil, fmt.Errorf("failed to encode request body: %w", err)
			}
			body = bytes.NewReader(data)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	out := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       raw,
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err == nil {
		out.IsJSON = true
		out.JSONData = decoded
	}

	return out, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params *Params) (*Response, error) {
	return c.dispatch(ctx, http.MethodGet, endpoint, params)
}

func (c *Client) put(ctx context.Context, endpoint string, params *Params) (*Response, error) {
	return c.dispatch(ctx, http.MethodPut, endpoint, params)
}

func (c *Client) post(ctx context.Context, endpoint string, params *Params) (*Response, error) {
	return c.dispatch(ctx, http.MethodPost, endpoint, params)
}
