package spotify

import (
	"context"
	"net/http"
	"testing"

	tu "github.com/lunamoth/spx/internal/testing"
)

func TestAlbums(t *testing.T) {
	ctx := context.Background()

	newClient := func(spy *tu.SpyRoundTripper) *Client {
		client := New("http://example.test", &http.Client{Transport: spy})
		client.SetToken("token")
		return client
	}

	t.Run("GetAlbum", func(t *testing.T) {
		t.Run("omits market when unset", func(t *testing.T) {
			spy := &tu.SpyRoundTripper{Body: "{}"}
			client := newClient(spy)

			if _, err := client.GetAlbum(ctx, "abc123", nil); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			req := spy.Requests[0]
			if req.URL.Path != "/albums/abc123" {
				t.Errorf("unexpected path %s", req.URL.Path)
			}
			if req.URL.RawQuery != "" {
				t.Errorf("expected no query, got %q", req.URL.RawQuery)
			}
		})

		t.Run("sends market when set", func(t *testing.T) {
			spy := &tu.SpyRoundTripper{Body: "{}"}
			client := newClient(spy)

			_, err := client.GetAlbum(ctx, "abc123", &MarketOpts{Market: "SE"})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if got := spy.Requests[0].URL.Query().Get("market"); got != "SE" {
				t.Errorf("expected market=SE, got %q", got)
			}
		})
	})

	t.Run("GetAlbums joins ids with commas", func(t *testing.T) {
		spy := &tu.SpyRoundTripper{Body: "{}"}
		client := newClient(spy)

		if _, err := client.GetAlbums(ctx, NewList("A", "B", "C"), nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		req := spy.Requests[0]
		if req.URL.Path != "/albums" {
			t.Errorf("unexpected path %s", req.URL.Path)
		}
		if got := req.URL.Query().Get("ids"); got != "A,B,C" {
			t.Errorf("expected ids=A,B,C, got %q", got)
		}
	})

	t.Run("GetAlbumTracks carries pagination defaults", func(t *testing.T) {
		spy := &tu.SpyRoundTripper{Body: "{}"}
		client := newClient(spy)

		if _, err := client.GetAlbumTracks(ctx, "abc123", nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		query := spy.Requests[0].URL.Query()
		if query.Get("limit") != "20" || query.Get("offset") != "0" {
			t.Errorf("expected default pagination, got %q", spy.Requests[0].URL.RawQuery)
		}
	})

	t.Run("GetSavedAlbums targets the library endpoint", func(t *testing.T) {
		spy := &tu.SpyRoundTripper{Body: "{}"}
		client := newClient(spy)

		_, err := client.GetSavedAlbums(ctx, &MarketPageOpts{Limit: 10, Offset: 30})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		req := spy.Requests[0]
		if req.URL.Path != "/me/albums" {
			t.Errorf("unexpected path %s", req.URL.Path)
		}
		query := req.URL.Query()
		if query.Get("limit") != "10" || query.Get("offset") != "30" {
			t.Errorf("unexpected pagination %q", req.URL.RawQuery)
		}
	})

	t.Run("GetNewReleases targets the browse endpoint", func(t *testing.T) {
		spy := &tu.SpyRoundTripper{Body: "{}"}
		client := newClient(spy)

		if _, err := client.GetNewReleases(ctx, nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if got := spy.Requests[0].URL.Path; got != "/browse/new-releases" {
			t.Errorf("unexpected path %s", got)
		}
	})
}

func TestArtists(t *testing.T) {
	ctx := context.Background()

	t.Run("GetArtistAlbums filters by include groups", func(t *testing.T) {
		spy := &tu.SpyRoundTripper{Body: "{}"}
		client := New("http://example.test", &http.Client{Transport: spy})
		client.SetToken("token")

		_, err := client.GetArtistAlbums(ctx, "art1", &ArtistAlbumsOpts{
			IncludeGroups: NewList("album", "single"),
			Market:        "DE",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		req := spy.Requests[0]
		if req.URL.Path != "/artists/art1/albums" {
			t.Errorf("unexpected path %s", req.URL.Path)
		}
		query := req.URL.Query()
		if query.Get("include_groups") != "album,single" {
			t.Errorf("unexpected include_groups %q", query.Get("include_groups"))
		}
		if query.Get("market") != "DE" {
			t.Errorf("unexpected market %q", query.Get("market"))
		}
	})

	t.Run("GetArtists joins ids with commas", func(t *testing.T) {
		spy := &tu.SpyRoundTripper{Body: "{}"}
		client := New("http://example.test", &http.Client{Transport: spy})
		client.SetToken("token")

		if _, err := client.GetArtists(ctx, ListFromString("a,b")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if got := spy.Requests[0].URL.Query().Get("ids"); got != "a,b" {
			t.Errorf("expected ids=a,b, got %q", got)
		}
	})
}
