// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing and exporting playlists:
//  1. [PlaylistListView] : Browse the authorized user's playlists
//  2. [TrackListView] : Preview the tracks of a selected playlist
//  3. [ConfirmView] : Confirm an export to disk
//  4. [ResultView] : Display the written files or the failure
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Data access goes through the [Library] interface so the command layer can
// supply a client-backed implementation and tests can supply a fake.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
