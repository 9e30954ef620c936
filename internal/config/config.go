// Package config loads the settings file read once at startup. The
// resulting Settings value is immutable and passed explicitly to the
// components that need it.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DefaultDensity is the live probability used for randomized boards
// when the settings file does not specify one.
const DefaultDensity = 0.2

// Settings carries everything the frontends need: window geometry,
// grid dimensions, and the two wall-clock thresholds.
type Settings struct {
	ScreenWidth  int
	ScreenHeight int
	Rows         int
	Cols         int

	// StepInterval is the cadence between generations while running.
	StepInterval time.Duration
	// HighlightDecay is how long the pointer may idle before the
	// highlighted cell stops being drawn.
	HighlightDecay time.Duration

	Density float64
}

// fileSettings mirrors the on-disk JSON. Pointer fields distinguish a
// missing key from a zero value.
type fileSettings struct {
	ScreenWidth      *int     `json:"screen_width"`
	ScreenHeight     *int     `json:"screen_height"`
	Rows             *int     `json:"rows"`
	Cols             *int     `json:"cols"`
	StepIntervalMS   *int     `json:"step_interval_ms"`
	HighlightDecayMS *int     `json:"highlight_decay_ms"`
	Density          *float64 `json:"density"`
}

// Load reads and validates the settings file at path. A missing file,
// a missing required key, or an out-of-range value is an error; the
// callers treat any of these as fatal.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("settings file %q: %w", path, err)
	}
	var fs fileSettings
	if err := json.Unmarshal(data, &fs); err != nil {
		return Settings{}, fmt.Errorf("settings file %q: %w", path, err)
	}

	required := []struct {
		key string
		ok  bool
	}{
		{"screen_width", fs.ScreenWidth != nil},
		{"screen_height", fs.ScreenHeight != nil},
		{"rows", fs.Rows != nil},
		{"cols", fs.Cols != nil},
		{"step_interval_ms", fs.StepIntervalMS != nil},
		{"highlight_decay_ms", fs.HighlightDecayMS != nil},
	}
	for _, r := range required {
		if !r.ok {
			return Settings{}, fmt.Errorf("settings file %q: missing required key %q", path, r.key)
		}
	}

	s := Settings{
		ScreenWidth:    *fs.ScreenWidth,
		ScreenHeight:   *fs.ScreenHeight,
		Rows:           *fs.Rows,
		Cols:           *fs.Cols,
		StepInterval:   time.Duration(*fs.StepIntervalMS) * time.Millisecond,
		HighlightDecay: time.Duration(*fs.HighlightDecayMS) * time.Millisecond,
		Density:        DefaultDensity,
	}
	if fs.Density != nil {
		s.Density = *fs.Density
	}
	if err := s.validate(); err != nil {
		return Settings{}, fmt.Errorf("settings file %q: %w", path, err)
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", s.ScreenWidth, s.ScreenHeight)
	}
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("invalid grid size %dx%d", s.Rows, s.Cols)
	}
	if s.StepInterval <= 0 {
		return fmt.Errorf("step_interval_ms must be positive")
	}
	if s.HighlightDecay <= 0 {
		return fmt.Errorf("highlight_decay_ms must be positive")
	}
	if s.Density < 0 || s.Density > 1 {
		return fmt.Errorf("density %v outside [0, 1]", s.Density)
	}
	return nil
}

// CellSize returns the pixel dimensions of one cell.
func (s Settings) CellSize() (w, h float64) {
	return float64(s.ScreenWidth) / float64(s.Cols), float64(s.ScreenHeight) / float64(s.Rows)
}
