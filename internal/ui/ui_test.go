package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lunamoth/spx/internal/models"
)

type fakeLibrary struct {
	playlists []models.Playlist
	export    *models.PlaylistExport
	err       error
}

func (f *fakeLibrary) Playlists(ctx context.Context) ([]models.Playlist, error) {
	return f.playlists, f.err
}

func (f *fakeLibrary) ExportPlaylist(ctx context.Context, id string) (*models.PlaylistExport, error) {
	return f.export, f.err
}

func fixtureLibrary() *fakeLibrary {
	playlist := models.Playlist{ID: "pl1", Name: "Night Drive"}
	return &fakeLibrary{
		playlists: []models.Playlist{playlist},
		export: &models.PlaylistExport{
			Playlist: playlist,
			Tracks:   []models.Track{{ID: "t1", Name: "Says"}},
		},
	}
}

func TestModel(t *testing.T) {
	ctx := context.Background()

	t.Run("Init fetches playlists", func(t *testing.T) {
		model := NewModel(ctx, fixtureLibrary())

		cmd := model.Init()
		if cmd == nil {
			t.Fatal("expected a fetch command")
		}

		msg, ok := cmd().(playlistsFetchedMsg)
		if !ok {
			t.Fatalf("unexpected message %T", cmd())
		}
		if len(msg.playlists) != 1 || msg.playlists[0].Name != "Night Drive" {
			t.Errorf("unexpected playlists %+v", msg.playlists)
		}
	})

	t.Run("playlist fetch populates the list view", func(t *testing.T) {
		model := NewModel(ctx, fixtureLibrary())
		model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

		updated, _ := model.Update(playlistsFetchedMsg{playlists: fixtureLibrary().playlists})
		m := updated.(*Model)

		if m.view != PlaylistListView {
			t.Errorf("unexpected view %v", m.view)
		}
		if !strings.Contains(m.View(), "Your Playlists") {
			t.Error("expected playlist list title")
		}
	})

	t.Run("playlist fetch error quits", func(t *testing.T) {
		model := NewModel(ctx, fixtureLibrary())

		_, cmd := model.Update(playlistsFetchedMsg{err: errors.New("boom")})
		if cmd == nil {
			t.Fatal("expected a quit command")
		}
	})

	t.Run("track fetch moves to the track view", func(t *testing.T) {
		library := fixtureLibrary()
		model := NewModel(ctx, library)
		model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

		updated, _ := model.Update(tracksFetchedMsg{playlist: library.export})
		m := updated.(*Model)

		if m.view != TrackListView {
			t.Errorf("unexpected view %v", m.view)
		}
		if !strings.Contains(m.View(), "Night Drive") {
			t.Error("expected playlist name in track view")
		}
	})

	t.Run("export key opens the confirmation view", func(t *testing.T) {
		library := fixtureLibrary()
		model := NewModel(ctx, library)
		model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
		model.Update(tracksFetchedMsg{playlist: library.export})

		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
		m := updated.(*Model)

		if m.view != ConfirmView {
			t.Errorf("unexpected view %v", m.view)
		}
		if !strings.Contains(m.View(), "Export 'Night Drive' to CSV?") {
			t.Errorf("unexpected confirm view %q", m.View())
		}
	})

	t.Run("declining returns to the track list", func(t *testing.T) {
		library := fixtureLibrary()
		model := NewModel(ctx, library)
		model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
		model.Update(tracksFetchedMsg{playlist: library.export})
		model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})

		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
		m := updated.(*Model)

		if m.view != TrackListView {
			t.Errorf("unexpected view %v", m.view)
		}
	})

	t.Run("export completion shows the result view", func(t *testing.T) {
		model := NewModel(ctx, fixtureLibrary())

		updated, _ := model.Update(exportCompleteMsg{err: errors.New("disk full")})
		m := updated.(*Model)

		if m.view != ResultView {
			t.Errorf("unexpected view %v", m.view)
		}
		if !strings.Contains(m.View(), "Export failed") {
			t.Errorf("unexpected result view %q", m.View())
		}
	})

	t.Run("restart clears the session state", func(t *testing.T) {
		library := fixtureLibrary()
		model := NewModel(ctx, library)
		model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
		model.Update(tracksFetchedMsg{playlist: library.export})
		model.Update(exportCompleteMsg{err: errors.New("disk full")})

		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
		m := updated.(*Model)

		if m.view != PlaylistListView {
			t.Errorf("unexpected view %v", m.view)
		}
		if m.selectedPlaylist != nil || m.exportResult != nil || m.err != nil {
			t.Error("expected session state to be cleared")
		}
	})
}
