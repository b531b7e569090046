package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/radial/anim"
	"github.com/katalvlaran/radial/geometry"
	"github.com/katalvlaran/radial/svgpath"
	"github.com/katalvlaran/radial/validate"
)

// Sentinel errors for configuration validation.
var (
	// ErrNonPositiveSize indicates a zero or negative chart width or height.
	ErrNonPositiveSize = errors.New("config: width and height must be positive")
	// ErrPaddingTooLarge indicates padding is negative or consumes the whole radius.
	ErrPaddingTooLarge = errors.New("config: padding must be non-negative and leave a drawable radius")
	// ErrNonPositiveMaxValue indicates MaxValue ≤ 0; geometry divides by
	// MaxValue, so this must be rejected before geometry ever runs.
	ErrNonPositiveMaxValue = errors.New("config: max_value must be positive")
	// ErrNegativeMinValue indicates MinValue < 0; processed values must lie in [0, MaxValue].
	ErrNegativeMinValue = errors.New("config: min_value must be non-negative")
	// ErrMinAboveMax indicates an empty or inverted score range.
	ErrMinAboveMax = errors.New("config: min_value must be below max_value")
	// ErrBadGridLevels indicates fewer than one concentric grid level.
	ErrBadGridLevels = errors.New("config: grid_levels must be at least 1")
	// ErrBadControlDistance indicates curve smoothing outside [0, 0.5].
	ErrBadControlDistance = errors.New("config: control_point_distance must be within [0, 0.5]")
	// ErrBadDuration indicates a negative animation duration.
	ErrBadDuration = errors.New("config: duration must not be negative")
)

// maxControlDistance keeps adjacent control points from crossing mid-segment.
const maxControlDistance = 0.5

// Duration is a time.Duration that unmarshals from YAML strings such as
// "800ms" or "1.2s", or from bare numbers interpreted as milliseconds.
type Duration time.Duration

// Std returns the plain time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err == nil {
		dur, perr := time.ParseDuration(s)
		if perr != nil {
			return fmt.Errorf("config: parse duration %q: %w", s, perr)
		}
		*d = Duration(dur)

		return nil
	}

	var ms int64
	if err := node.Decode(&ms); err != nil {
		return fmt.Errorf("config: duration must be a duration string or milliseconds: %w", err)
	}
	*d = Duration(time.Duration(ms) * time.Millisecond)

	return nil
}

// Config carries every tunable of one chart instance. Treat it as
// immutable: derive a new value instead of mutating a shared one.
type Config struct {
	// Width, Height size the drawing surface in chart units.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// MaxValue, MinValue bound the score scale values are clamped to.
	MaxValue float64 `yaml:"max_value"`
	MinValue float64 `yaml:"min_value"`

	// GridLevels is the number of concentric reference polygons.
	GridLevels int `yaml:"grid_levels"`

	// MinSpokes raises the five-spoke floor for sparse datasets.
	MinSpokes int `yaml:"min_spokes"`

	// Padding reserves label room around the polygon.
	Padding float64 `yaml:"padding"`

	// ControlPointDistance shapes the smooth data curve (0 = straight edges).
	ControlPointDistance float64 `yaml:"control_point_distance"`

	// Duration and Easing describe the entrance animation; the animation
	// clock itself lives with the external scheduler.
	Duration Duration `yaml:"duration"`
	Easing   string   `yaml:"easing"`
}

// Default returns the documented defaults: a 400×400 surface, the 0..5
// scale, five grid levels, five spokes, 60 units of label padding, 0.15
// curve smoothing and an 800 ms linear entrance.
func Default() Config {
	return Config{
		Width:                400,
		Height:               400,
		MaxValue:             validate.DefaultMaxValue,
		MinValue:             validate.DefaultMinValue,
		GridLevels:           geometry.DefaultGridLevels,
		MinSpokes:            geometry.MinSpokes,
		Padding:              geometry.DefaultPadding,
		ControlPointDistance: svgpath.DefaultControlPointDistance,
		Duration:             Duration(anim.DefaultDuration),
		Easing:               anim.EasingLinear,
	}
}

// Parse overlays a YAML document on top of Default, so absent keys keep
// their defaults, and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Validate rejects configurations the downstream pipeline must never see.
// Geometry in particular trusts MaxValue > 0 without re-checking (it
// divides by it), so this is the single gate for that precondition.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %gx%g", ErrNonPositiveSize, c.Width, c.Height)
	}
	if c.Padding < 0 || math.Min(c.Width, c.Height)/2-c.Padding <= 0 {
		return fmt.Errorf("%w: padding %g on a %gx%g surface", ErrPaddingTooLarge, c.Padding, c.Width, c.Height)
	}
	if c.MaxValue <= 0 {
		return fmt.Errorf("%w: got %g", ErrNonPositiveMaxValue, c.MaxValue)
	}
	if c.MinValue < 0 {
		return fmt.Errorf("%w: got %g", ErrNegativeMinValue, c.MinValue)
	}
	if c.MinValue >= c.MaxValue {
		return fmt.Errorf("%w: range [%g, %g]", ErrMinAboveMax, c.MinValue, c.MaxValue)
	}
	if c.GridLevels < 1 {
		return fmt.Errorf("%w: got %d", ErrBadGridLevels, c.GridLevels)
	}
	if c.ControlPointDistance < 0 || c.ControlPointDistance > maxControlDistance {
		return fmt.Errorf("%w: got %g", ErrBadControlDistance, c.ControlPointDistance)
	}
	if c.Duration < 0 {
		return fmt.Errorf("%w: got %s", ErrBadDuration, c.Duration.Std())
	}
	if _, err := anim.EasingByName(c.Easing); err != nil {
		return fmt.Errorf("config: easing %q: %w", c.Easing, err)
	}

	return nil
}

// ValidateOptions projects the score scale into validate.Options.
func (c Config) ValidateOptions() validate.Options {
	return validate.Options{MaxValue: c.MaxValue, MinValue: c.MinValue}
}
