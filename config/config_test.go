package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Keys.FlipX != ebiten.KeyH || cfg.Keys.FlipY != ebiten.KeyV || cfg.Keys.FlipD != ebiten.KeyD || cfg.Keys.Rotate != ebiten.KeyR {
		t.Fatalf("unexpected flip keys %+v", cfg.Keys)
	}
	if cfg.Keys.RotateModifier != ebiten.KeyShift {
		t.Fatalf("rotate modifier %v", cfg.Keys.RotateModifier)
	}
	if cfg.Colors.MapOutline != (Color{R: 0xff, A: 0xff}) {
		t.Fatalf("map outline %v", cfg.Colors.MapOutline)
	}
	if len(cfg.Colors.Tints) == 0 || cfg.Colors.Tints[0] != (Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("first tint should be white, got %v", cfg.Colors.Tints)
	}
	if cfg.Palette.Width != 200 || cfg.Palette.Height != 200 {
		t.Fatalf("palette %+v", cfg.Palette)
	}

	cfg.Colors.Tints[0] = Color{}
	if Default().Colors.Tints[0] == (Color{}) {
		t.Fatal("Default shares its tint slice")
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("keys:\n  flip_x: X\ncolors:\n  tile_outline: \"#00ff0080\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Keys.FlipX != ebiten.KeyX {
		t.Fatalf("flip_x %v", cfg.Keys.FlipX)
	}
	if cfg.Keys.FlipY != ebiten.KeyV {
		t.Fatal("unset keys should keep their defaults")
	}
	if cfg.Colors.TileOutline != (Color{G: 0xff, A: 0x80}) {
		t.Fatalf("tile outline %v", cfg.Colors.TileOutline)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"bad_hex", "colors:\n  text: \"#12\"\n"},
		{"bad_name", "colors:\n  text: notacolor\n"},
		{"bad_key", "keys:\n  flip_x: NotAKey\n"},
		{"zero_palette", "palette:\n  width: 0\n"},
		{"negative_scroll", "palette:\n  scroll_speed: -1\n"},
		{"zero_pane", "pane:\n  width: 0\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse([]byte(c.yaml)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Color{R: 0xff, A: 0xff}},
		{"#0000ff40", Color{B: 0xff, A: 0x40}},
		{"Gold", Color{R: 0xff, G: 0xd7, A: 0xff}},
		{" white ", Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseColor(c.in)
			if err != nil || got != c.want {
				t.Fatalf("ParseColor(%q) = %v, %v", c.in, got, err)
			}
		})
	}
	if _, err := ParseColor("#zz0000"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.yaml")
	if err := os.WriteFile(path, []byte("pane:\n  width: 300\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pane.Width != 300 {
		t.Fatalf("pane width %d", cfg.Pane.Width)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("pane:\n  width: 260\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "editor.yaml" {
			t.Fatalf("event for %s", got)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the write event")
	}
}
