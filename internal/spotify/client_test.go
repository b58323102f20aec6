package spotify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lunamoth/spx/internal/shared"
	tu "github.com/lunamoth/spx/internal/testing"
)

func TestClient(t *testing.T) {
	ctx := context.Background()

	t.Run("New", func(t *testing.T) {
		t.Run("empty base URL selects the production API", func(t *testing.T) {
			client := New("", nil)
			if client.baseURL != DefaultBaseURL {
				t.Errorf("expected %s, got %s", DefaultBaseURL, client.baseURL)
			}
		})

		t.Run("nil http client selects the default client", func(t *testing.T) {
			client := New("http://example.test", nil)
			if client.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient")
			}
		})
	})

	t.Run("dispatch", func(t *testing.T) {
		t.Run("fails before the network when no token is set", func(t *testing.T) {
			spy := &tu.SpyRoundTripper{}
			client := New("http://example.test", &http.Client{Transport: spy})

			_, err := client.Me(ctx)
			if !errors.Is(err, shared.ErrNoAccessToken) {
				t.Fatalf("expected ErrNoAccessToken, got %v", err)
			}
			if spy.Calls() != 0 {
				t.Errorf("expected no network calls, got %d", spy.Calls())
			}
		})

		t.Run("sets bearer and content type headers", func(t *testing.T) {
			spy := &tu.SpyRoundTripper{Body: "{}"}
			client := New("http://example.test", &http.Client{Transport: spy})
			client.SetToken("token-abc")

			if _, err := client.GetAvailableDevices(ctx); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			req := spy.Requests[0]
			if got := req.Header.Get("Authorization"); got != "Bearer token-abc" {
				t.Errorf("expected bearer header, got %q", got)
			}
			if got := req.Header.Get("Content-Type"); got != "application/json" {
				t.Errorf("expected application/json, got %q", got)
			}
		})

		t.Run("returns error statuses as raw responses", func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"error":{"status":404,"message":"non existing id"}}`))
			}))
			defer srv.Close()

			client := New(srv.URL, srv.Client())
			client.SetToken("token")

			resp, err := client.GetAlbum(ctx, "nope", nil)
			if err != nil {
				t.Fatalf("expected no transport error, got %v", err)
			}
			if resp.StatusCode != http.StatusNotFound {
				t.Errorf("expected 404, got %d", resp.StatusCode)
			}
			if !resp.IsJSON {
				t.Error("expected JSON body to be decoded")
			}
		})

		t.Run("decodes JSON bodies", func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"id":"abc","name":"Test"}`))
			}))
			defer srv.Close()

			client := New(srv.URL, srv.Client())
			client.SetToken("token")

			resp, err := client.GetTrack(ctx, "abc", nil)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			data, ok := resp.JSONData.(map[string]any)
			if !ok {
				t.Fatalf("expected decoded object, got %T", resp.JSONData)
			}
			if data["id"] != "abc" {
				t.Errorf("expected id abc, got %v", data["id"])
			}
		})

		t.Run("marks non-JSON bodies", func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			}))
			defer srv.Close()

			client := New(srv.URL, srv.Client())
			client.SetToken("token")

			resp, err := client.GetAvailableMarkets(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.IsJSON {
				t.Error("expected IsJSON to be false")
			}
			if string(resp.Body) != "not json" {
				t.Errorf("expected raw body, got %q", resp.Body)
			}
		})

		t.Run("encodes an ordered JSON body for put requests", func(t *testing.T) {
			spy := &tu.SpyRoundTripper{Status: http.StatusNoContent}
			client := New("http://example.test", &http.Client{Transport: spy})
			client.SetToken("token")

			_, err := client.ResumePlayback(ctx, &ResumePlaybackOpts{
				TrackIDs:   NewList("a1", "b2"),
				PositionMS: 500,
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			req := spy.Requests[0]
			if req.Method != http.MethodPut {
				t.Errorf("expected PUT, got %s", req.Method)
			}
			if req.URL.Path != "/me/player/play" {
				t.Errorf("unexpected path %s", req.URL.Path)
			}

			body, err := io.ReadAll(req.Body)
			if err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			want := `{"uris":["spotify:track:a1","spotify:track:b2"],"position_ms":500}`
			if string(body) != want {
				t.Errorf("expected body %s, got %s", want, body)
			}
		})

		t.Run("omits the body when no parameters are set", func(t *testing.T) {
			spy := &tu.SpyRoundTripper{Status: http.StatusNoContent}
			client := New("http://example.test", &http.Client{Transport: spy})
			client.SetToken("token")

			if _, err := client.PausePlayback(ctx, ""); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			req := spy.Requests[0]
			if req.Body != nil {
				t.Error("expected no request body")
			}
			if req.URL.RawQuery != "" {
				t.Errorf("expected no query string, got %q", req.URL.RawQuery)
			}
		})
	})

	t.Run("SetToken", func(t *testing.T) {
		client := New("", nil)
		client.SetToken("first")
		client.SetToken("second")
		if client.Token() != "second" {
			t.Errorf("expected token replacement, got %s", client.Token())
		}
	})
}
