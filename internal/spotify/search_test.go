package spotify

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lunamoth/spx/internal/shared"
	tu "github.com/lunamoth/spx/internal/testing"
)

func TestSearch(t *testing.T) {
	ctx := context.Background()

	newClient := func(spy *tu.SpyRoundTripper) *Client {
		client := New("http://example.test", &http.Client{Transport: spy})
		client.SetToken("token")
		return client
	}

	t.Run("requires a query", func(t *testing.T) {
		spy := &tu.SpyRoundTripper{}
		client := newClient(spy)

		_, err := client.Search(ctx, "", NewList("track"), nil)
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Fatalf("expected ErrMissingArgument, got %v", err)
		}
		if spy.Calls() != 0 {
			t.Errorf("expected no network calls, got %d", spy.Calls())
		}
	})

	t.Run("requires search types", func(t *testing.T) {
		spy := &tu.SpyRoundTripper{}
		client := newClient(spy)

		_, err := client.Search(ctx, "nils frahm", List{}, nil)
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Fatalf("expected ErrMissingArgument, got %v", err)
		}
		if spy.Calls() != 0 {
			t.Errorf("expected no network calls, got %d", spy.Calls())
		}
	})

	t.Run("builds the query string", func(t *testing.T) {
		spy := &tu.SpyRoundTripper{Body: "{}"}
		client := newClient(spy)

		_, err := client.Search(ctx, "says", NewList("track", "album"), &SearchOpts{Market: "SE"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		req := spy.Requests[0]
		if req.URL.Path != "/search" {
			t.Errorf("unexpected path %s", req.URL.Path)
		}
		query := req.URL.Query()
		if query.Get("q") != "says" {
			t.Errorf("unexpected q %q", query.Get("q"))
		}
		if query.Get("type") != "track,album" {
			t.Errorf("unexpected type %q", query.Get("type"))
		}
		if query.Get("market") != "SE" {
			t.Errorf("unexpected market %q", query.Get("market"))
		}
		if query.Get("limit") != "20" || query.Get("offset") != "0" {
			t.Errorf("expected default pagination, got %q", req.URL.RawQuery)
		}
	})
}
