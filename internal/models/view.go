package models

// Display shapes decoded by the CLI from raw API responses.
//
// The request layer returns transport responses unmodified; callers that
// want structured output (tables, exports) unmarshal into these.

// Image is an image resource attached to profiles, playlists, and albums.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// Profile is a Spotify user profile.
type Profile struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Country     string `json:"country"`
	Product     string `json:"product"` // premium, free, etc.
	Followers   struct {
		Total int `json:"total"`
	} `json:"followers"`
	Images []Image `json:"images"`
}

// Avatar returns the first profile image URL, if any.
func (p Profile) Avatar() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

// Artist is a minimal artist reference.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// Album is a minimal album reference.
type Album struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ReleaseDate string   `json:"release_date"`
	Artists     []Artist `json:"artists"`
	Images      []Image  `json:"images"`
}

// Track is a playable track.
type Track struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Artists    []Artist `json:"artists"`
	Album      Album    `json:"album"`
	DurationMS int      `json:"duration_ms"`
	URI        string   `json:"uri"`
}

// ArtistName returns the primary artist's name, if any.
func (t Track) ArtistName() string {
	if len(t.Artists) == 0 {
		return ""
	}
	return t.Artists[0].Name
}

// Playlist is a playlist summary.
type Playlist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Owner       struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
	} `json:"owner"`
	Public bool `json:"public"`
	Tracks struct {
		Total int `json:"total"`
	} `json:"tracks"`
	Images []Image `json:"images"`
	URI    string  `json:"uri"`
}

// CoverURL returns the first cover image URL, if any.
func (p Playlist) CoverURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

// PlaylistPage is one page of playlists.
type PlaylistPage struct {
	Items  []Playlist `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
	Next   *string    `json:"next"`
}

// PlaylistItem is a track within a playlist context.
type PlaylistItem struct {
	AddedAt string `json:"added_at"`
	Track   Track  `json:"track"`
}

// PlaylistItemPage is one page of playlist items.
type PlaylistItemPage struct {
	Items  []PlaylistItem `json:"items"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
	Next   *string        `json:"next"`
}

// PlaylistExport is a playlist together with its decoded tracks, the
// shape consumed by the formatter package.
type PlaylistExport struct {
	Playlist Playlist `json:"playlist"`
	Tracks   []Track  `json:"tracks"`
}

// Device is a playback device.
type Device struct {
	ID            string `json:"id"`
	IsActive      bool   `json:"is_active"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	VolumePercent int    `json:"volume_percent"`
}

// DeviceList is the available-devices response.
type DeviceList struct {
	Devices []Device `json:"devices"`
}
