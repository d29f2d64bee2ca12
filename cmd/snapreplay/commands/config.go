package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teqfw/snapwheel"
)

// envPrefix is prepended to every config key looked up in the environment.
const envPrefix = "SNAPWHEEL"

// loadConfig reads widget configuration from defaults, file and env. An
// explicit path must exist; the default location is optional.
func loadConfig(path string) (snapwheel.Config, error) {
	v := viper.New()

	d := snapwheel.DefaultConfig()
	v.SetDefault("threshold_time", d.ThresholdTime)
	v.SetDefault("threshold_distance", d.ThresholdDistance)
	v.SetDefault("item_height", d.ItemHeight)
	v.SetDefault("anchor_top", d.AnchorTop)
	v.SetDefault("item_duration", d.ItemDuration)
	v.SetDefault("min_duration", d.MinDuration)
	v.SetDefault("fixed_duration", d.FixedDuration)
	v.SetDefault("list_duration", d.ListDuration)
	v.SetDefault("easing", d.Easing)
	v.SetDefault("debug", d.Debug)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "snapwheel"))
		v.SetConfigName("snapwheel")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return snapwheel.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c snapwheel.Config
	if err := v.Unmarshal(&c); err != nil {
		return snapwheel.Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return snapwheel.Config{}, err
	}
	return c, nil
}
