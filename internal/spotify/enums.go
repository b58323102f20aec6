package spotify

import (
	"fmt"

	"github.com/lunamoth/spx/internal/shared"
)

// TopItemType selects the resource kind for the top-items endpoint.
type TopItemType string

const (
	TopItemTracks  TopItemType = "tracks"
	TopItemArtists TopItemType = "artists"
)

// ParseTopItemType maps a raw string onto a known [TopItemType].
func ParseTopItemType(s string) (TopItemType, error) {
	switch TopItemType(s) {
	case TopItemTracks:
		return TopItemTracks, nil
	case TopItemArtists:
		return TopItemArtists, nil
	}
	return "", fmt.Errorf("%w: top item type %q", shared.ErrUnknownEnum, s)
}

func (t TopItemType) String() string { return string(t) }

// TimeRange selects the affinity window for the top-items endpoint.
type TimeRange string

const (
	ShortTerm  TimeRange = "short_term"
	MediumTerm TimeRange = "medium_term"
	LongTerm   TimeRange = "long_term"
)

// ParseTimeRange maps a raw string onto a known [TimeRange].
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case ShortTerm:
		return ShortTerm, nil
	case MediumTerm:
		return MediumTerm, nil
	case LongTerm:
		return LongTerm, nil
	}
	return "", fmt.Errorf("%w: time range %q", shared.ErrUnknownEnum, s)
}

func (t TimeRange) String() string { return string(t) }

// RepeatMode is the playback repeat state.
type RepeatMode string

const (
	RepeatTrack   RepeatMode = "track"
	RepeatContext RepeatMode = "context"
	RepeatOff     RepeatMode = "off"
)

// ParseRepeatMode maps a raw string onto a known [RepeatMode].
func ParseRepeatMode(s string) (RepeatMode, error) {
	switch RepeatMode(s) {
	case RepeatTrack:
		return RepeatTrack, nil
	case RepeatContext:
		return RepeatContext, nil
	case RepeatOff:
		return RepeatOff, nil
	}
	return "", fmt.Errorf("%w: repeat mode %q", shared.ErrUnknownEnum, s)
}

func (r RepeatMode) String() string { return string(r) }
