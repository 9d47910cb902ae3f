package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds every tuning constant of the placement engine. Values come
// from gridforge.cfg.json when present, otherwise from the defaults below.
type Settings struct {
	WindowWidth  int32  `mapstructure:"windowWidth"`
	WindowHeight int32  `mapstructure:"windowHeight"`
	WindowTitle  string `mapstructure:"windowTitle"`
	TargetFPS    int32  `mapstructure:"targetFPS"`

	GridInterval      float32 `mapstructure:"gridInterval"`
	RotationStep      float32 `mapstructure:"rotationStep"`
	SurfaceOffset     float32 `mapstructure:"surfaceOffset"`
	CheckRadius       float32 `mapstructure:"checkRadius"`
	MaxRayDistance    float32 `mapstructure:"maxRayDistance"`
	FallbackDistance  float32 `mapstructure:"fallbackDistance"`
	PoolCapacity      int     `mapstructure:"poolCapacity"`
	PartLifetime      float32 `mapstructure:"partLifetime"`
	RotateRepeatDelay float64 `mapstructure:"rotateRepeatDelay"`
	UndoRepeatDelay   float64 `mapstructure:"undoRepeatDelay"`

	Debug bool `mapstructure:"debug"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("windowWidth", 1280)
	v.SetDefault("windowHeight", 720)
	v.SetDefault("windowTitle", "gridforge")
	v.SetDefault("targetFPS", 60)

	v.SetDefault("gridInterval", 1.0)
	v.SetDefault("rotationStep", 45.0)
	v.SetDefault("surfaceOffset", 0.05)
	v.SetDefault("checkRadius", 1.5)
	v.SetDefault("maxRayDistance", 250.0)
	v.SetDefault("fallbackDistance", 10.0)
	v.SetDefault("poolCapacity", 8)
	v.SetDefault("partLifetime", 300.0)
	v.SetDefault("rotateRepeatDelay", 0.25)
	v.SetDefault("undoRepeatDelay", 0.1)

	v.SetDefault("debug", false)
}

// Load reads gridforge.cfg.json from dir. A missing file is not an error,
// the defaults apply.
func Load(dir string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("gridforge.cfg")
	v.SetConfigType("json")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return s, nil
}

// Default returns the built-in settings without touching the filesystem.
func Default() Settings {
	v := viper.New()
	setDefaults(v)
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		panic(err)
	}
	return s
}
