package touchplot

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// AxisConfig configures one axis.
type AxisConfig struct {
	Title          string   `yaml:"title"`
	Kind           string   `yaml:"kind"` // "numeric" or "date"
	TickCount      int      `yaml:"ticks"`
	KeepOneOutlier bool     `yaml:"keep_outlier"`
	Min            *float64 `yaml:"min"`
	Max            *float64 `yaml:"max"`
}

// Config is the external configuration of a chart.
type Config struct {
	X AxisConfig `yaml:"x"`
	Y AxisConfig `yaml:"y"`

	// TimeZone is the IANA name of the zone date axes are shown in.
	TimeZone string `yaml:"time_zone"`

	// Decimals of tooltip values, negative for automatic.
	Decimals int `yaml:"decimals"`

	// DateLayout formats dates in labels and tooltips.
	DateLayout string `yaml:"date_layout"`

	// SelectRadius is the hit test radius in pixels.
	SelectRadius float64 `yaml:"select_radius"`

	// DeselectTimeout ends a selection without interaction.
	DeselectTimeout time.Duration `yaml:"deselect_timeout"`
}

// DefaultConfig returns the configuration of a numeric chart with about
// five ticks per axis.
func DefaultConfig() Config {
	return Config{
		X:               AxisConfig{Kind: "numeric", TickCount: 5, KeepOneOutlier: true},
		Y:               AxisConfig{Kind: "numeric", TickCount: 5},
		TimeZone:        "UTC",
		Decimals:        -1,
		SelectRadius:    DefaultSelectRadius,
		DeselectTimeout: DefaultDeselectTimeout,
	}
}

// LoadConfig reads a YAML configuration from r. Fields not present keep
// their default.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg for values the chart cannot work with.
func (cfg Config) Validate() error {
	for _, a := range []struct {
		id  AxisID
		cfg AxisConfig
	}{{XAxis, cfg.X}, {YAxis, cfg.Y}} {
		if _, err := ParseAxisKind(a.cfg.Kind); err != nil {
			return fmt.Errorf("%s axis: %w", a.id, err)
		}
		if a.cfg.TickCount < 1 {
			return fmt.Errorf("%w: %s axis tick count %d < 1",
				ErrInvalidConfig, a.id, a.cfg.TickCount)
		}
		if a.cfg.Min != nil && a.cfg.Max != nil && !(*a.cfg.Min < *a.cfg.Max) {
			return fmt.Errorf("%w: %s axis range [%g:%g]",
				ErrInvalidConfig, a.id, *a.cfg.Min, *a.cfg.Max)
		}
	}
	if !(cfg.SelectRadius > 0) {
		return fmt.Errorf("%w: select radius %g", ErrInvalidConfig, cfg.SelectRadius)
	}
	if cfg.DeselectTimeout <= 0 {
		return fmt.Errorf("%w: deselect timeout %s", ErrInvalidConfig, cfg.DeselectTimeout)
	}
	if _, err := NewCalendar(cfg.TimeZone); err != nil {
		return err
	}
	return nil
}
