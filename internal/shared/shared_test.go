package shared

import (
	"bytes"
	"strings"
	"testing"
)

func TestShared(t *testing.T) {
	t.Run("NewLogger", func(t *testing.T) {
		t.Run("writes to the given writer", func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewLogger(buf)

			logger.Info("hello")

			if !strings.Contains(buf.String(), "hello") {
				t.Errorf("expected log output, got %q", buf.String())
			}
		})

		t.Run("nil writer defaults to stderr", func(t *testing.T) {
			if logger := NewLogger(nil); logger == nil {
				t.Error("expected a logger")
			}
		})
	})

	t.Run("GenerateID produces unique identifiers", func(t *testing.T) {
		a, b := GenerateID(), GenerateID()

		if len(a) != 36 {
			t.Errorf("unexpected id length %d", len(a))
		}
		if a == b {
			t.Error("expected unique ids")
		}
	})

	t.Run("GenerateState", func(t *testing.T) {
		a, err := GenerateState()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		b, err := GenerateState()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(a) != 32 {
			t.Errorf("expected 32 hex characters, got %d", len(a))
		}
		if a == b {
			t.Error("expected unique state tokens")
		}
	})

	t.Run("MarshalJSON", func(t *testing.T) {
		data := map[string]string{"key": "value"}

		compact, err := MarshalJSON(data, false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(compact) != `{"key":"value"}` {
			t.Errorf("unexpected compact output %s", compact)
		}

		pretty, err := MarshalJSON(data, true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(string(pretty), "\n") {
			t.Error("expected indented output")
		}
	})

	t.Run("FormatDuration", func(t *testing.T) {
		cases := []struct {
			seconds int
			want    string
		}{
			{0, "0:00"},
			{59, "0:59"},
			{60, "1:00"},
			{125, "2:05"},
			{3600, "60:00"},
		}

		for _, tc := range cases {
			if got := FormatDuration(tc.seconds); got != tc.want {
				t.Errorf("FormatDuration(%d) = %q, want %q", tc.seconds, got, tc.want)
			}
		}
	})

	t.Run("VisibilityString", func(t *testing.T) {
		if VisibilityString(true) != "Public" {
			t.Error("expected Public")
		}
		if VisibilityString(false) != "Private" {
			t.Error("expected Private")
		}
	})
}
