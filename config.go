package snapwheel

import (
	"errors"
	"fmt"
	"time"
)

// Config collects the tunables of a scroller widget. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// ThresholdTime is the longest contact still classified as a swipe.
	ThresholdTime time.Duration `mapstructure:"threshold_time"`
	// ThresholdDistance is the movement in pixels separating taps from
	// moves and swipes.
	ThresholdDistance float64 `mapstructure:"threshold_distance"`

	// ItemHeight is the height of one row in pixels.
	ItemHeight float64 `mapstructure:"item_height"`
	// AnchorTop is the Y coordinate rows snap to.
	AnchorTop float64 `mapstructure:"anchor_top"`

	// ItemDuration and MinDuration drive PerItemDuration. When
	// FixedDuration is positive it is used for every swipe instead; when
	// ListDuration is set, swipes take TotalDurationFor the item count.
	ItemDuration  time.Duration `mapstructure:"item_duration"`
	MinDuration   time.Duration `mapstructure:"min_duration"`
	FixedDuration time.Duration `mapstructure:"fixed_duration"`
	ListDuration  bool          `mapstructure:"list_duration"`

	// Easing names a gween easing function (see EaseByName).
	Easing string `mapstructure:"easing"`

	Debug bool `mapstructure:"debug"`
}

// DefaultConfig returns the stock widget configuration.
func DefaultConfig() Config {
	return Config{
		ThresholdTime:     DefaultThresholdTime,
		ThresholdDistance: DefaultThresholdDistance,
		ItemHeight:        40,
		AnchorTop:         100,
		ItemDuration:      DefaultItemDuration,
		MinDuration:       DefaultMinDuration,
		Easing:            "linear",
	}
}

// Validate reports every unusable setting.
func (c Config) Validate() error {
	var errs []error
	if c.ThresholdTime <= 0 {
		errs = append(errs, fmt.Errorf("threshold_time must be positive, got %v", c.ThresholdTime))
	}
	if c.ThresholdDistance <= 0 {
		errs = append(errs, fmt.Errorf("threshold_distance must be positive, got %v", c.ThresholdDistance))
	}
	if c.ItemHeight <= 0 {
		errs = append(errs, fmt.Errorf("item_height must be positive, got %v", c.ItemHeight))
	}
	if c.FixedDuration <= 0 && !c.ListDuration && c.ItemDuration <= 0 {
		errs = append(errs, fmt.Errorf("item_duration must be positive, got %v", c.ItemDuration))
	}
	if _, ok := EaseByName(c.Easing); !ok {
		errs = append(errs, fmt.Errorf("unknown easing %q", c.Easing))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Geometry returns the fixed layout described by c.
func (c Config) Geometry() FixedGeometry {
	return FixedGeometry{Height: c.ItemHeight, Anchor: c.AnchorTop}
}

// DurationStrategy returns the swipe duration strategy described by c.
func (c Config) DurationStrategy() DurationStrategy {
	if c.FixedDuration > 0 {
		return FixedDuration(c.FixedDuration)
	}
	if c.ListDuration {
		return ListDuration()
	}
	return PerItemDuration(c.ItemDuration, c.MinDuration)
}

// NewRecognizer returns a Recognizer using c's thresholds.
func (c Config) NewRecognizer() *Recognizer {
	return NewRecognizer(c.ThresholdTime, c.ThresholdDistance)
}
