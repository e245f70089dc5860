package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the optional config file looked up in the config directory.
const FileName = "spaceshooter.json"

// EnvPrefix prefixes environment overrides, e.g. SHOOTER_AUDIO_VOLUME.
const EnvPrefix = "SHOOTER"

// Brightness bounds.
const (
	MinBrightness = 0.2
	MaxBrightness = 1.0
)

// Settings is the user-facing configuration.
type Settings struct {
	LogLevel   string            `mapstructure:"logLevel"`
	LogFile    string            `mapstructure:"logFile"` // Local game only; the terminal is the screen
	Ship       string            `mapstructure:"ship"`
	HighScores HighScoreSettings `mapstructure:"highscores"`
	Audio      AudioSettings     `mapstructure:"audio"`
	Display    DisplaySettings   `mapstructure:"display"`
}

// HighScoreSettings selects where the high-score table lives.
type HighScoreSettings struct {
	Backend string `mapstructure:"backend"` // json or sqlite
	Path    string `mapstructure:"path"`
}

// AudioSettings configures music and sound effects.
type AudioSettings struct {
	Enabled   bool    `mapstructure:"enabled"`
	Music     string  `mapstructure:"music"`     // Path to an mp3 or wav file, empty for none
	Explosion string  `mapstructure:"explosion"` // Path to an mp3 or wav file, empty for none
	Volume    float64 `mapstructure:"volume"`    // 0..1
}

// DisplaySettings configures the renderer.
type DisplaySettings struct {
	Brightness float64 `mapstructure:"brightness"` // MinBrightness..MaxBrightness
}

// Load reads settings from defaults, the optional config file in dir and the environment.
// A missing config file is not an error.
func Load(dir string) (Settings, error) {
	v := viper.New()

	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "spaceshooter.log")
	v.SetDefault("ship", "balanced")
	v.SetDefault("highscores.backend", "json")
	v.SetDefault("highscores.path", "highscores.json")
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.music", "")
	v.SetDefault("audio.explosion", "")
	v.SetDefault("audio.volume", 0.4)
	v.SetDefault("display.brightness", 1.0)

	v.SetConfigName(strings.TrimSuffix(FileName, ".json"))
	v.SetConfigType("json")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.normalize(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// normalize clamps ranges and rejects unknown enum values.
func (s *Settings) normalize() error {
	switch s.HighScores.Backend {
	case "json", "sqlite":
	default:
		return fmt.Errorf("unknown highscores.backend %q", s.HighScores.Backend)
	}
	s.Audio.Volume = min(max(s.Audio.Volume, 0), 1)
	s.Display.Brightness = min(max(s.Display.Brightness, MinBrightness), MaxBrightness)
	return nil
}
