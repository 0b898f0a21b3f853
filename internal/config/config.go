package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/ZacxDev/video-compare/internal/backend"
	"github.com/ZacxDev/video-compare/internal/compositor"
	"github.com/ZacxDev/video-compare/internal/logging"
	"github.com/ZacxDev/video-compare/pkg/types"
)

const (
	EnvPrefix    = "CODECCOMP"
	AppDirName   = "codeccomp"
	ConfigName   = "config"
	ConfigFormat = "toml"

	DefaultFramerate = "30/1"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the full viewer configuration, read from config.toml and
// CODECCOMP_* environment variables.
type Settings struct {
	Input      InputSettings  `mapstructure:"input"`
	SideBySide bool           `mapstructure:"sidebyside"`
	Backend    string         `mapstructure:"backend" validate:"required,backend"`
	Debug      bool           `mapstructure:"debug"`
	Log        LogSettings    `mapstructure:"log"`
	Render     RenderSettings `mapstructure:"render"`
}

// InputSettings is the canvas both inputs are expected to share
type InputSettings struct {
	Width     int    `mapstructure:"width" validate:"min=2"`
	Height    int    `mapstructure:"height" validate:"min=2"`
	Framerate string `mapstructure:"framerate" validate:"required"`
}

type LogSettings struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn warning error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// RenderSettings controls the offline comparison render
type RenderSettings struct {
	Output   string  `mapstructure:"output"`
	Labels   bool    `mapstructure:"labels"`
	Duration float64 `mapstructure:"duration" validate:"min=0"` // seconds, 0 renders whole input
}

// Mode returns the compositor mode selected by the settings
func (s *Settings) Mode() compositor.Mode {
	if s.SideBySide {
		return compositor.SideBySide
	}
	return compositor.Split
}

// Logging returns the logger configuration; debug forces the debug level
func (s *Settings) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = s.Log.Level
	cfg.Format = s.Log.Format
	if s.Debug {
		cfg.Level = "debug"
	}
	return cfg
}

// Validate checks the settings and wraps failures in ErrInvalidSettings
func (s *Settings) Validate() error {
	if err := newValidator().Struct(s); err != nil {
		return errors.Wrap(ErrInvalidSettings, err.Error())
	}
	return nil
}

// Load reads the settings. An explicit configFile must exist; otherwise
// config.toml is looked up in the working directory and the user config dir
// and is optional.
func Load(configFile string) (*Settings, error) {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, AppDirName))
	}
	return load(viper.New(), configFile, paths)
}

func load(v *viper.Viper, configFile string, paths []string) (*Settings, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType(ConfigFormat)
		for _, p := range paths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrapf(err, "failed to read config file %s", v.ConfigFileUsed())
			}
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.width", compositor.DefaultWidth)
	v.SetDefault("input.height", compositor.DefaultHeight)
	v.SetDefault("input.framerate", DefaultFramerate)
	v.SetDefault("sidebyside", false)
	v.SetDefault("backend", string(types.MixerBackendFFmpeg))
	v.SetDefault("debug", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("render.output", "")
	v.SetDefault("render.labels", true)
	v.SetDefault("render.duration", 0.0)
}

func newValidator() *validator.Validate {
	validate := validator.New()
	// Registration only fails on an empty tag or nil func.
	_ = validate.RegisterValidation("backend", func(fl validator.FieldLevel) bool {
		_, err := backend.Get(fl.Field().String())
		return err == nil
	})
	return validate
}

// RenderOptions defines options for one comparison render
type RenderOptions struct {
	InputPaths [2]string
	OutputPath string
	Keys       string // comma separated navigation keys applied before rendering
	DryRun     bool
	Settings   *Settings
}
