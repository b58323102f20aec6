package spotify

import "strings"

// List holds a multi-value input supplied either as a single
// comma-separated string or as individual elements.
//
// The two forms are interchangeable at the API boundary; every operation
// normalizes to the canonical comma-separated wire form via [List.String],
// or to element form via [List.Values] when each element must be rewritten
// individually (see [TrackURIs]).
type List struct {
	joined string
	items  []string
	many   bool
}

// NewList builds a List from individual elements.
func NewList(items ...string) List {
	return List{items: items, many: true}
}

// ListFromString builds a List from an already comma-joined string.
func ListFromString(s string) List {
	return List{joined: s}
}

// String returns the canonical comma-separated wire form. A string input
// is returned unchanged; element inputs are joined with ",".
func (l List) String() string {
	if l.many {
		return strings.Join(l.items, ",")
	}
	return l.joined
}

// Values returns the element form. Element inputs are returned unchanged;
// a string input is split on ",".
func (l List) Values() []string {
	if l.many {
		return l.items
	}
	if l.joined == "" {
		return nil
	}
	return strings.Split(l.joined, ",")
}

// IsZero reports whether the list carries no elements.
func (l List) IsZero() bool {
	if l.many {
		return len(l.items) == 0
	}
	return l.joined == ""
}

// TrackURIs maps bare track identifiers to fully qualified playback URIs
// of the form "spotify:track:<id>".
//
// The playback endpoint is the only one requiring qualified URIs; every
// lookup endpoint accepts bare IDs.
func TrackURIs(l List) []string {
	ids := l.Values()
	uris := make([]string, len(ids))
	for i, id := range ids {
		uris[i] = "spotify:track:" + id
	}
	return uris
}
