package util

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 100; i++ {
		id := NewID()
		parsed, err := uuid.Parse(id)
		if err != nil {
			t.Fatalf("NewID() = %q, not a valid UUID: %v", id, err)
		}
		if v := parsed.Version(); v != 7 {
			t.Errorf("NewID() version = %d, want 7", v)
		}
		if seen[id] {
			t.Fatalf("NewID() returned duplicate %q", id)
		}
		if prev != "" && id <= prev {
			t.Errorf("NewID() not ordered: %q after %q", id, prev)
		}
		seen[id] = true
		prev = id
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0190d1f2-aaaa-7bbb-8ccc-dddddddddddd", "0190d1f2"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ShortID(tt.in); got != tt.want {
			t.Errorf("ShortID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
