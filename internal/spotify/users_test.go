package spotify

import (
	"context"
	"net/http"
	"testing"

	tu "github.com/lunamoth/spx/internal/testing"
)

func TestUsers(t *testing.T) {
	ctx := context.Background()

	newClient := func(spy *tu.SpyRoundTripper) *Client {
		client := New("http://example.test", &http.Client{Transport: spy})
		client.SetToken("token")
		return client
	}

	t.Run("Me targets the profile endpoint", func(t *testing.T) {
		spy := &tu.SpyRoundTripper{Body: "{}"}
		client := newClient(spy)

		if _, err := client.Me(ctx); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		req := spy.Requests[0]
		if req.URL.Path != "/me" {
			t.Errorf("unexpected path %s", req.URL.Path)
		}
		if req.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", req.Method)
		}
	})

	t.Run("GetUserTopItems", func(t *testing.T) {
		t.Run("builds the path from the item type", func(t *testing.T) {
			spy := &tu.SpyRoundTripper{Body: "{}"}
			client := newClient(spy)

			_, err := client.GetUserTopItems(ctx, TopItemTracks, &TopItemsOpts{
				TimeRange: ShortTerm,
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			req := spy.Requests[0]
			if req.URL.Path != "/me/top/tracks" {
				t.Errorf("unexpected path %s", req.URL.Path)
			}
			if got := req.URL.Query().Get("time_range"); got != "short_term" {
				t.Errorf("expected time_range=short_term, got %q", got)
			}
		})

		t.Run("omits time range when unset", func(t *testing.T) {
			spy := &tu.SpyRoundTripper{Body: "{}"}
			client := newClient(spy)

			if _, err := client.GetUserTopItems(ctx, TopItemArtists, nil); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			req := spy.Requests[0]
			if req.URL.Path != "/me/top/artists" {
				t.Errorf("unexpected path %s", req.URL.Path)
			}
			if req.URL.Query().Has("time_range") {
				t.Error("expected no time_range param")
			}
		})
	})

	t.Run("top item helpers fix the type tag", func(t *testing.T) {
		spy := &tu.SpyRoundTripper{Body: "{}"}
		client := newClient(spy)

		if _, err := client.GetTopTracks(ctx, nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := client.GetTopArtists(ctx, nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if spy.Requests[0].URL.Path != "/me/top/tracks" {
			t.Errorf("unexpected path %s", spy.Requests[0].URL.Path)
		}
		if spy.Requests[1].URL.Path != "/me/top/artists" {
			t.Errorf("unexpected path %s", spy.Requests[1].URL.Path)
		}
	})
}
