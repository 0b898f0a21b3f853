package videocompare

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ZacxDev/video-compare/internal/backend"
	"github.com/ZacxDev/video-compare/internal/compositor"
	"github.com/ZacxDev/video-compare/internal/config"
	"github.com/ZacxDev/video-compare/internal/logging"
	"github.com/ZacxDev/video-compare/internal/navigation"
	"github.com/ZacxDev/video-compare/internal/processor"
	"github.com/ZacxDev/video-compare/pkg/types"
)

var ErrUnknownMode = errors.New("unknown view mode")

type (
	Settings      = config.Settings
	RenderOptions = config.RenderOptions
	RenderResult  = processor.RenderResult
	Position      = compositor.Position
	State         = compositor.State
	PadSettings   = processor.PadSettings
)

// PositionsOptions describes a compositor to evaluate without any input video
type PositionsOptions struct {
	Mode    types.ViewMode
	Width   int
	Height  int
	Keys    string
	Backend types.MixerBackend
}

// Positions is the compositor state after the key script, with the pane
// placements and the settings the mixer backend would receive.
type Positions struct {
	State   State          `json:"state"`
	Changed bool           `json:"changed"`
	Pane0   Position       `json:"pane0"`
	Pane1   Position       `json:"pane1"`
	Backend string         `json:"backend"`
	Mixer   [2]PadSettings `json:"mixer"`
}

// ComputePositions applies the key script to a fresh compositor
func ComputePositions(ctx context.Context, opts PositionsOptions) (*Positions, error) {
	mode, ok := compositor.ParseMode(string(opts.Mode))
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMode, "%q", opts.Mode)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Errorf("invalid canvas %dx%d", opts.Width, opts.Height)
	}

	name := opts.Backend
	if name == "" {
		name = types.MixerBackendFFmpeg
	}
	b, err := backend.Get(string(name))
	if err != nil {
		return nil, err
	}

	events, err := navigation.ParseKeys(opts.Keys)
	if err != nil {
		return nil, err
	}

	c := compositor.New(mode, opts.Width, opts.Height)
	session := navigation.NewSession(c, navigation.WithLogger(*logging.FromContext(ctx)))
	update := session.HandleAll(events)

	return &Positions{
		State:   update.State,
		Changed: update.Changed,
		Pane0:   update.Pane0,
		Pane1:   update.Pane1,
		Backend: b.GetName(),
		Mixer:   processor.MixerSettings(c, b),
	}, nil
}

// Render composes one comparison video of two inputs
func Render(ctx context.Context, opts *RenderOptions) (*RenderResult, error) {
	c, err := processor.NewComparator(opts, *logging.FromContext(ctx))
	if err != nil {
		return nil, err
	}
	return c.Render(ctx)
}

// LoadSettings reads config.toml and CODECCOMP_* environment variables
func LoadSettings(configFile string) (*Settings, error) {
	return config.Load(configFile)
}

// GetSupportedBackends returns the names of the registered mixer backends
func GetSupportedBackends() []string {
	return processor.GetSupportedBackends()
}

// DescribeBackend returns a backend's description and crop support
func DescribeBackend(name string) (string, bool, error) {
	b, err := backend.Get(name)
	if err != nil {
		return "", false, err
	}
	return b.GetDescription(), b.SupportsCrop(), nil
}
