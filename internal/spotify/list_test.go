package spotify

import (
	"reflect"
	"testing"
)

func TestList(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		t.Run("returns comma input unchanged", func(t *testing.T) {
			l := ListFromString("a,b,c")
			if l.String() != "a,b,c" {
				t.Errorf("got %q", l.String())
			}
		})

		t.Run("joins elements with commas", func(t *testing.T) {
			l := NewList("a", "b", "c")
			if l.String() != "a,b,c" {
				t.Errorf("got %q", l.String())
			}
		})
	})

	t.Run("Values", func(t *testing.T) {
		t.Run("splits comma input", func(t *testing.T) {
			l := ListFromString("a,b,c")
			if !reflect.DeepEqual(l.Values(), []string{"a", "b", "c"}) {
				t.Errorf("got %v", l.Values())
			}
		})

		t.Run("returns elements unchanged", func(t *testing.T) {
			l := NewList("a", "b")
			if !reflect.DeepEqual(l.Values(), []string{"a", "b"}) {
				t.Errorf("got %v", l.Values())
			}
		})

		t.Run("empty string input yields nil", func(t *testing.T) {
			l := ListFromString("")
			if l.Values() != nil {
				t.Errorf("expected nil, got %v", l.Values())
			}
		})
	})

	t.Run("both forms produce the same wire value", func(t *testing.T) {
		fromString := ListFromString("x1,y2,z3")
		fromItems := NewList("x1", "y2", "z3")

		if fromString.String() != fromItems.String() {
			t.Errorf("wire forms differ: %q vs %q", fromString.String(), fromItems.String())
		}
		if !reflect.DeepEqual(fromString.Values(), fromItems.Values()) {
			t.Errorf("element forms differ: %v vs %v", fromString.Values(), fromItems.Values())
		}
	})

	t.Run("IsZero", func(t *testing.T) {
		cases := []struct {
			name string
			list List
			want bool
		}{
			{"zero value", List{}, true},
			{"empty string input", ListFromString(""), true},
			{"empty element input", NewList(), true},
			{"string input", ListFromString("a"), false},
			{"element input", NewList("a"), false},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if tc.list.IsZero() != tc.want {
					t.Errorf("expected %v", tc.want)
				}
			})
		}
	})

	t.Run("TrackURIs", func(t *testing.T) {
		t.Run("qualifies bare ids", func(t *testing.T) {
			uris := TrackURIs(NewList("abc", "def"))
			want := []string{"spotify:track:abc", "spotify:track:def"}
			if !reflect.DeepEqual(uris, want) {
				t.Errorf("expected %v, got %v", want, uris)
			}
		})

		t.Run("accepts the comma form", func(t *testing.T) {
			uris := TrackURIs(ListFromString("abc,def"))
			want := []string{"spotify:track:abc", "spotify:track:def"}
			if !reflect.DeepEqual(uris, want) {
				t.Errorf("expected %v, got %v", want, uris)
			}
		})
	})
}
