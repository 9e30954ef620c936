package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	path := writeSettings(t, `{
		"screen_width": 800,
		"screen_height": 600,
		"rows": 30,
		"cols": 40,
		"step_interval_ms": 120,
		"highlight_decay_ms": 1500,
		"density": 0.35
	}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.ScreenWidth != 800 || s.ScreenHeight != 600 {
		t.Fatalf("screen size %dx%d, want 800x600", s.ScreenWidth, s.ScreenHeight)
	}
	if s.Rows != 30 || s.Cols != 40 {
		t.Fatalf("grid %dx%d, want 30x40", s.Rows, s.Cols)
	}
	if s.StepInterval != 120*time.Millisecond {
		t.Fatalf("step interval %v, want 120ms", s.StepInterval)
	}
	if s.HighlightDecay != 1500*time.Millisecond {
		t.Fatalf("highlight decay %v, want 1.5s", s.HighlightDecay)
	}
	if s.Density != 0.35 {
		t.Fatalf("density %v, want 0.35", s.Density)
	}

	w, h := s.CellSize()
	if w != 20 || h != 20 {
		t.Fatalf("cell size %vx%v, want 20x20", w, h)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("Load of a missing file should fail")
	}
}

func TestLoadMissingKey(t *testing.T) {
	path := writeSettings(t, `{
		"screen_width": 800,
		"screen_height": 600,
		"cols": 40,
		"step_interval_ms": 120,
		"highlight_decay_ms": 1500
	}`)

	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load without rows should fail")
	}
	if !strings.Contains(err.Error(), `"rows"`) {
		t.Fatalf("error %q does not name the missing key", err)
	}
}

func TestLoadDefaultsDensity(t *testing.T) {
	path := writeSettings(t, `{
		"screen_width": 800,
		"screen_height": 600,
		"rows": 30,
		"cols": 40,
		"step_interval_ms": 120,
		"highlight_decay_ms": 1500
	}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Density != DefaultDensity {
		t.Fatalf("density %v, want default %v", s.Density, DefaultDensity)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"zero rows":         `{"screen_width": 800, "screen_height": 600, "rows": 0, "cols": 40, "step_interval_ms": 120, "highlight_decay_ms": 1500}`,
		"negative interval": `{"screen_width": 800, "screen_height": 600, "rows": 30, "cols": 40, "step_interval_ms": -5, "highlight_decay_ms": 1500}`,
		"density above one": `{"screen_width": 800, "screen_height": 600, "rows": 30, "cols": 40, "step_interval_ms": 120, "highlight_decay_ms": 1500, "density": 1.5}`,
		"zero screen":       `{"screen_width": 0, "screen_height": 600, "rows": 30, "cols": 40, "step_interval_ms": 120, "highlight_decay_ms": 1500}`,
		"not json":          `rows = 30`,
	}
	for name, body := range cases {
		if _, err := Load(writeSettings(t, body)); err == nil {
			t.Fatalf("%s: Load should fail", name)
		}
	}
}
