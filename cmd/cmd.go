// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
			Value: true,
		},
	}
}

func pageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "limit",
			Usage: "Maximum number of items to return",
		},
		&cli.IntFlag{
			Name:  "offset",
			Usage: "Index of the first item to return",
		},
	}
}

func marketFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "market",
		Usage: "ISO 3166-1 alpha-2 market code",
	}
}

func deviceFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "device",
		Aliases: []string{"d"},
		Usage:   "Target device ID",
	}
}

func idArg() cli.Argument {
	return &cli.StringArg{Name: "id"}
}

// setupCommand handles database initialization.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Initialize the account database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
		},
	}
}

// authCommand handles authorization operations.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage Spotify authorization",
		Commands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "Authorize with Spotify using OAuth2",
				Flags:  []cli.Flag{configFlag()},
				Action: r.AuthLogin,
			},
			{
				Name:   "refresh",
				Usage:  "Refresh the stored access token",
				Flags:  []cli.Flag{configFlag()},
				Action: r.AuthRefresh,
			},
			{
				Name:   "status",
				Usage:  "Show the stored credential state",
				Action: r.AuthStatus,
			},
		},
	}
}

// meCommand handles current-user operations.
func meCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "me",
		Usage:  "Show the authorized user's profile",
		Flags:  outputFlags(),
		Action: r.MeProfile,
		Commands: []*cli.Command{
			{
				Name:  "top",
				Usage: "Show your top tracks or artists",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Item type: tracks or artists",
						Value:   "tracks",
					},
					&cli.StringFlag{
						Name:    "range",
						Aliases: []string{"r"},
						Usage:   "Time range: short_term, medium_term or long_term",
					},
				}, append(pageFlags(), outputFlags()...)...),
				Action: r.MeTop,
			},
		},
	}
}

// searchCommand handles catalog search.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the catalog",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Comma-separated item types (album, artist, playlist, track, show, episode, audiobook)",
				Value:   "track",
			},
			marketFlag(),
		}, append(pageFlags(), outputFlags()...)...),
		Action: r.Search,
	}
}

// albumsCommand handles album lookups.
func albumsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "albums",
		Aliases: []string{"album"},
		Usage:   "Album operations",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Fetch albums by ID (comma-separated for several)",
				Arguments: []cli.Argument{idArg()},
				Flags:     append([]cli.Flag{marketFlag()}, outputFlags()...),
				Action:    r.AlbumGet,
			},
			{
				Name:      "tracks",
				Usage:     "Fetch an album's tracks",
				Arguments: []cli.Argument{idArg()},
				Flags:     append([]cli.Flag{marketFlag()}, append(pageFlags(), outputFlags()...)...),
				Action:    r.AlbumTracks,
			},
			{
				Name:   "saved",
				Usage:  "Fetch your saved albums",
				Flags:  append([]cli.Flag{marketFlag()}, append(pageFlags(), outputFlags()...)...),
				Action: r.AlbumsSaved,
			},
		},
	}
}

// artistsCommand handles artist lookups.
func artistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "artists",
		Aliases: []string{"artist"},
		Usage:   "Artist operations",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Fetch artists by ID (comma-separated for several)",
				Arguments: []cli.Argument{idArg()},
				Flags:     outputFlags(),
				Action:    r.ArtistGet,
			},
			{
				Name:      "albums",
				Usage:     "Fetch an artist's albums",
				Arguments: []cli.Argument{idArg()},
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "groups",
						Usage: "Comma-separated include groups (album, single, appears_on, compilation)",
					},
					marketFlag(),
				}, append(pageFlags(), outputFlags()...)...),
				Action: r.ArtistAlbums,
			},
			{
				Name:      "top-tracks",
				Usage:     "Fetch an artist's top tracks",
				Arguments: []cli.Argument{idArg()},
				Flags:     append([]cli.Flag{marketFlag()}, outputFlags()...),
				Action:    r.ArtistTopTracks,
			},
			{
				Name:      "related",
				Usage:     "Fetch artists similar to the given artist",
				Arguments: []cli.Argument{idArg()},
				Flags:     outputFlags(),
				Action:    r.ArtistRelated,
			},
		},
	}
}

// tracksCommand handles track lookups.
func tracksCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tracks",
		Aliases: []string{"track"},
		Usage:   "Track operations",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Fetch tracks by ID (comma-separated for several)",
				Arguments: []cli.Argument{idArg()},
				Flags:     append([]cli.Flag{marketFlag()}, outputFlags()...),
				Action:    r.TrackGet,
			},
			{
				Name:   "saved",
				Usage:  "Fetch your saved tracks",
				Flags:  append([]cli.Flag{marketFlag()}, append(pageFlags(), outputFlags()...)...),
				Action: r.TracksSaved,
			},
		},
	}
}

// playlistsCommand handles playlist operations.
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlists",
		Aliases: []string{"pl"},
		Usage:   "Playlist operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List your playlists",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of playlists to show",
					},
				}, outputFlags()...),
				Action: r.Playlists,
			},
			{
				Name:      "show",
				Usage:     "Show a playlist with its tracks",
				Arguments: []cli.Argument{idArg()},
				Flags:     outputFlags(),
				Action:    r.PlaylistShow,
			},
			{
				Name:      "export",
				Usage:     "Export a playlist to disk",
				Arguments: []cli.Argument{idArg()},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv, markdown, text or json",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output path (defaults derive from the playlist ID)",
					},
				},
				Action: r.PlaylistExport,
			},
			{
				Name:      "cover",
				Usage:     "Show a playlist's cover images",
				Arguments: []cli.Argument{idArg()},
				Flags:     outputFlags(),
				Action:    r.PlaylistCover,
			},
			{
				Name:      "user",
				Usage:     "Show another user's profile",
				Arguments: []cli.Argument{idArg()},
				Flags:     outputFlags(),
				Action:    r.UserProfile,
			},
		},
	}
}

// playerCommand handles playback control.
func playerCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "player",
		Aliases: []string{"p"},
		Usage:   "Playback control",
		Commands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "Show the current playback state",
				Flags:  append([]cli.Flag{marketFlag()}, outputFlags()...),
				Action: r.PlayerStatus,
			},
			{
				Name:   "devices",
				Usage:  "List available playback devices",
				Flags:  outputFlags(),
				Action: r.PlayerDevices,
			},
			{
				Name:  "play",
				Usage: "Start or resume playback",
				Flags: []cli.Flag{
					deviceFlag(),
					&cli.StringFlag{
						Name:  "tracks",
						Usage: "Comma-separated track IDs to play",
					},
					&cli.StringFlag{
						Name:  "context",
						Usage: "Context URI (album, artist or playlist) to play",
					},
					&cli.IntFlag{
						Name:  "position",
						Usage: "Start position in milliseconds",
					},
				},
				Action: r.PlayerPlay,
			},
			{
				Name:   "pause",
				Usage:  "Pause playback",
				Flags:  []cli.Flag{deviceFlag()},
				Action: r.PlayerPause,
			},
			{
				Name:   "next",
				Usage:  "Skip to the next track",
				Flags:  []cli.Flag{deviceFlag()},
				Action: r.PlayerNext,
			},
			{
				Name:    "previous",
				Aliases: []string{"prev"},
				Usage:   "Skip to the previous track",
				Flags:   []cli.Flag{deviceFlag()},
				Action:  r.PlayerPrevious,
			},
			{
				Name:  "seek",
				Usage: "Seek within the current track",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "to",
						Usage:    "Position in seconds",
						Required: true,
					},
					deviceFlag(),
				},
				Action: r.PlayerSeek,
			},
			{
				Name:  "volume",
				Usage: "Set the playback volume",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "percent",
						Usage:    "Volume percentage (0-100)",
						Required: true,
					},
					deviceFlag(),
				},
				Action: r.PlayerVolume,
			},
			{
				Name:      "repeat",
				Usage:     "Set the repeat mode (track, context or off)",
				Arguments: []cli.Argument{&cli.StringArg{Name: "mode"}},
				Flags:     []cli.Flag{deviceFlag()},
				Action:    r.PlayerRepeat,
			},
			{
				Name:  "shuffle",
				Usage: "Toggle shuffle",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "on",
						Usage: "Turn shuffle on (omit to turn off)",
					},
					deviceFlag(),
				},
				Action: r.PlayerShuffle,
			},
			{
				Name:      "transfer",
				Usage:     "Transfer playback to another device",
				Arguments: []cli.Argument{&cli.StringArg{Name: "device"}},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "play",
						Usage: "Start playing on the new device",
					},
				},
				Action: r.PlayerTransfer,
			},
			{
				Name:  "queue",
				Usage: "Show the playback queue or add to it",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "add",
						Usage: "URI to append to the queue",
					},
					deviceFlag(),
				}, outputFlags()...),
				Action: r.PlayerQueue,
			},
			{
				Name:  "recent",
				Usage: "Show recently played tracks",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of items to return",
					},
					&cli.Int64Flag{
						Name:  "after",
						Usage: "Unix millisecond cursor, items played after this time",
					},
					&cli.Int64Flag{
						Name:  "before",
						Usage: "Unix millisecond cursor, items played before this time",
					},
				}, outputFlags()...),
				Action: r.PlayerRecent,
			},
		},
	}
}

// browseCommand handles catalog discovery endpoints.
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "Catalog discovery",
		Commands: []*cli.Command{
			{
				Name:   "new-releases",
				Usage:  "Fetch newly released albums",
				Flags:  append(pageFlags(), outputFlags()...),
				Action: r.BrowseNewReleases,
			},
			{
				Name:      "categories",
				Usage:     "Fetch browse categories, or one by ID",
				Arguments: []cli.Argument{idArg()},
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "locale",
						Usage: "Locale for category names (e.g. sv_SE)",
					},
				}, append(pageFlags(), outputFlags()...)...),
				Action: r.BrowseCategories,
			},
			{
				Name:   "markets",
				Usage:  "Fetch available markets",
				Flags:  outputFlags(),
				Action: r.BrowseMarkets,
			},
			{
				Name:    "shows",
				Aliases: []string{"show"},
				Usage:   "Show and episode operations",
				Commands: []*cli.Command{
					{
						Name:      "get",
						Usage:     "Fetch shows by ID (comma-separated for several)",
						Arguments: []cli.Argument{idArg()},
						Flags:     append([]cli.Flag{marketFlag()}, outputFlags()...),
						Action:    r.ShowGet,
					},
					{
						Name:      "episodes",
						Usage:     "Fetch a show's episodes",
						Arguments: []cli.Argument{idArg()},
						Flags:     append([]cli.Flag{marketFlag()}, append(pageFlags(), outputFlags()...)...),
						Action:    r.ShowEpisodes,
					},
					{
						Name:   "saved",
						Usage:  "Fetch your saved shows",
						Flags:  append(pageFlags(), outputFlags()...),
						Action: r.ShowsSaved,
					},
				},
			},
			{
				Name:    "episodes",
				Aliases: []string{"episode"},
				Usage:   "Episode operations",
				Commands: []*cli.Command{
					{
						Name:      "get",
						Usage:     "Fetch episodes by ID (comma-separated for several)",
						Arguments: []cli.Argument{idArg()},
						Flags:     append([]cli.Flag{marketFlag()}, outputFlags()...),
						Action:    r.EpisodeGet,
					},
					{
						Name:   "saved",
						Usage:  "Fetch your saved episodes",
						Flags:  append([]cli.Flag{marketFlag()}, append(pageFlags(), outputFlags()...)...),
						Action: r.EpisodesSaved,
					},
				},
			},
			{
				Name:    "audiobooks",
				Aliases: []string{"audiobook"},
				Usage:   "Audiobook and chapter operations",
				Commands: []*cli.Command{
					{
						Name:      "get",
						Usage:     "Fetch audiobooks by ID (comma-separated for several)",
						Arguments: []cli.Argument{idArg()},
						Flags:     append([]cli.Flag{marketFlag()}, outputFlags()...),
						Action:    r.AudiobookGet,
					},
					{
						Name:      "chapters",
						Usage:     "Fetch an audiobook's chapters",
						Arguments: []cli.Argument{idArg()},
						Flags:     append([]cli.Flag{marketFlag()}, append(pageFlags(), outputFlags()...)...),
						Action:    r.AudiobookChapters,
					},
					{
						Name:   "saved",
						Usage:  "Fetch your saved audiobooks",
						Flags:  append(pageFlags(), outputFlags()...),
						Action: r.AudiobooksSaved,
					},
					{
						Name:      "chapter",
						Usage:     "Fetch chapters by ID (comma-separated for several)",
						Arguments: []cli.Argument{idArg()},
						Flags:     append([]cli.Flag{marketFlag()}, outputFlags()...),
						Action:    r.ChapterGet,
					},
				},
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive playlist browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive playlist browser",
		Action:  r.TUI,
	}
}
