package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Settings struct {
	Theme     ThemeConfig     `toml:"theme"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Feedback  FeedbackConfig  `toml:"feedback"`
}

type ThemeConfig struct {
	Dark bool `toml:"dark"`
}

type ClipboardConfig struct {
	Enabled bool `toml:"enabled"`
}

type FeedbackConfig struct {
	Delay  time.Duration `toml:"delay"`
	Strict bool          `toml:"strict"`
}

// DefaultSettings returns the settings used when no config file exists
func DefaultSettings() *Settings {
	return &Settings{
		Theme: ThemeConfig{
			Dark: false,
		},
		Clipboard: ClipboardConfig{
			Enabled: true,
		},
		Feedback: FeedbackConfig{
			Delay:  3 * time.Second,
			Strict: false,
		},
	}
}

func LoadSettings() (*Settings, error) {
	configPath, err := GetConfigFile()
	if err != nil {
		return DefaultSettings(), nil
	}
	return LoadSettingsFrom(configPath)
}

// LoadSettingsFrom decodes the TOML file at path over the defaults.
// A missing file is not an error.
func LoadSettingsFrom(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, err
	}

	if _, err := toml.Decode(string(data), settings); err != nil {
		return nil, err
	}

	if settings.Feedback.Delay <= 0 {
		settings.Feedback.Delay = DefaultSettings().Feedback.Delay
	}

	return settings, nil
}
