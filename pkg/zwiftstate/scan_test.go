package zwiftstate

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

func TestLastMatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Log.txt")
	content := "value=1\nnoise\nvalue=2\nvalue=3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m := New()
	re := regexp.MustCompile(`value=(\d+)`)

	got, ok := m.lastMatch(context.Background(), path, re, 1)
	if !ok || got != "3" {
		t.Errorf("lastMatch() = %q, %v; want %q, true", got, ok, "3")
	}
}

func TestLastMatch_MissingFile(t *testing.T) {
	m := New()
	re := regexp.MustCompile(`value=(\d+)`)

	if got, ok := m.lastMatch(context.Background(), "/nonexistent/Log.txt", re, 1); ok {
		t.Errorf("lastMatch() = %q, true; want absent", got)
	}
}

func TestLastMatch_EmptyPath(t *testing.T) {
	m := New()
	re := regexp.MustCompile(`value=(\d+)`)

	if _, ok := m.lastMatch(context.Background(), "", re, 1); ok {
		t.Error("lastMatch() with empty path should be absent")
	}
}

func TestLastMatch_GroupOutOfRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Log.txt")
	if err := os.WriteFile(path, []byte("value=1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	m := New()
	re := regexp.MustCompile(`value=(\d+)`)

	if _, ok := m.lastMatch(context.Background(), path, re, 2); ok {
		t.Error("lastMatch() with out-of-range group should be absent")
	}
	if _, ok := m.lastMatch(context.Background(), path, re, 0); ok {
		t.Error("lastMatch() with group 0 should be absent")
	}
}

func TestFirstMatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.xml")
	if err := os.WriteFile(path, []byte("<flag>44</flag><flag>208</flag>"), 0644); err != nil {
		t.Fatal(err)
	}

	m := New()
	re := regexp.MustCompile(`<flag>(\d+)</flag>`)

	got, ok := m.firstMatch(context.Background(), path, re, 1)
	if !ok || got != "44" {
		t.Errorf("firstMatch() = %q, %v; want %q, true", got, ok, "44")
	}
}

func TestCourseForWorld(t *testing.T) {
	tests := []struct {
		world uint32
		want  uint32
	}{
		{0, 6},
		{1, 6},
		{2, 2},
		{3, 7},
		{4, 8},
		{7, 11},
	}

	for _, tt := range tests {
		if got := courseForWorld(tt.world); got != tt.want {
			t.Errorf("courseForWorld(%d) = %d, want %d", tt.world, got, tt.want)
		}
	}
}

func TestHex32(t *testing.T) {
	tests := []struct {
		v    uint32
		want string
	}{
		{0, "0x00000000"},
		{208, "0x000000D0"},
		{0xFFFFFFFF, "0xFFFFFFFF"},
	}

	for _, tt := range tests {
		if got := hex32(tt.v); got != tt.want {
			t.Errorf("hex32(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
