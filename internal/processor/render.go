package processor

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
	"golang.org/x/sync/errgroup"

	"github.com/ZacxDev/video-compare/internal/compositor"
	ffmpegWrap "github.com/ZacxDev/video-compare/internal/ffmpeg"
	"github.com/ZacxDev/video-compare/internal/logging"
	"github.com/ZacxDev/video-compare/internal/navigation"
)

// RenderResult describes a finished (or, for a dry run, planned) render
type RenderResult struct {
	OutputPath string
	Args       []string
	Update     navigation.Update
	Mixer      [2]PadSettings
	Inputs     [2]*ffmpegWrap.VideoMetadata
}

// Render probes both inputs, applies the key script to a compositor sized
// to them and composes the comparison video.
func (c *Comparator) Render(ctx context.Context) (*RenderResult, error) {
	ctx = logging.WithComponent(ctx, "comparator")
	logger := logging.FromContext(ctx)

	for i, path := range c.opts.InputPaths {
		if path == "" {
			return nil, errors.Errorf("input %d is missing", i)
		}
	}

	events, err := navigation.ParseKeys(c.opts.Keys)
	if err != nil {
		return nil, err
	}

	metadata, err := c.probeInputs(ctx)
	if err != nil {
		return nil, err
	}
	if metadata[0].Width != metadata[1].Width || metadata[0].Height != metadata[1].Height {
		return nil, errors.Wrapf(ErrResolutionMismatch, "%dx%d vs %dx%d",
			metadata[0].Width, metadata[0].Height, metadata[1].Width, metadata[1].Height)
	}

	settings := c.opts.Settings
	comp := compositor.New(settings.Mode(), metadata[0].Width, metadata[0].Height)
	session := navigation.NewSession(comp, navigation.WithLogger(*logger))
	update := session.HandleAll(events)

	outputPath := c.opts.OutputPath
	if outputPath == "" {
		outputPath = settings.Render.Output
	}
	if outputPath == "" {
		outputPath = defaultOutputPath(c.opts.InputPaths)
	}
	codec := ffmpegWrap.GetCodecSettings(outputFormat(outputPath))
	if c.opts.DryRun {
		outputPath = ffmpegWrap.EnsureExtension(outputPath, codec.FileExtension)
	} else if outputPath, err = ensureOutputPath(outputPath, codec.FileExtension); err != nil {
		return nil, err
	}

	duration := renderDuration(settings.Render.Duration, metadata)
	frameRate := settings.Input.Framerate
	if metadata[0].FrameRate != "" && metadata[0].FrameRate != "0/0" {
		frameRate = metadata[0].FrameRate
	}

	composed := c.compose(update, metadata, duration, frameRate)
	stream := ffmpeg.OutputContext(ctx, []*ffmpeg.Stream{composed}, outputPath, codec.OutputArgs()).
		OverWriteOutput()

	result := &RenderResult{
		OutputPath: outputPath,
		Args:       stream.GetArgs(),
		Update:     update,
		Mixer:      MixerSettings(comp, c.backend),
		Inputs:     metadata,
	}

	if c.opts.DryRun {
		logger.Debug().Strs("args", result.Args).Msg("dry run, not rendering")
		return result, nil
	}

	logger.Info().
		Str("output", outputPath).
		Str("mode", update.State.Mode).
		Uint("zoom", update.State.Zoom).
		Float64("duration", duration).
		Int64("left_bitrate", metadata[0].Bitrate).
		Int64("right_bitrate", metadata[1].Bitrate).
		Msg("rendering comparison")

	if err := c.ffmpeg.Run(ctx, stream); err != nil {
		return nil, errors.Wrap(err, "failed to render comparison")
	}

	logger.Info().Str("output", outputPath).Msg("comparison rendered")
	return result, nil
}

func (c *Comparator) probeInputs(ctx context.Context) ([2]*ffmpegWrap.VideoMetadata, error) {
	var metadata [2]*ffmpegWrap.VideoMetadata

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range c.opts.InputPaths {
		g.Go(func() error {
			m, err := c.probe(ctx, path)
			if err != nil {
				return err
			}
			metadata[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return metadata, errors.Wrap(err, "failed to probe inputs")
	}
	return metadata, nil
}

func (c *Comparator) compose(update navigation.Update, metadata [2]*ffmpegWrap.VideoMetadata, duration float64, frameRate string) *ffmpeg.Stream {
	width, height := metadata[0].Width, metadata[0].Height
	panes := [2]compositor.Position{update.Pane0, update.Pane1}

	inputArgs := ffmpeg.KwArgs{}
	if duration > 0 {
		inputArgs["t"] = duration
	}

	layers := make([]ffmpegWrap.PaneLayer, 0, len(panes))
	for i, pos := range panes {
		if pos.Hidden() {
			continue
		}
		layers = append(layers, ffmpegWrap.PaneLayer{
			Input:        ffmpeg.Input(c.opts.InputPaths[i], inputArgs).Video(),
			SourceWidth:  width,
			SourceHeight: height,
			CropLeft:     pos.CropLeft,
			CropRight:    pos.CropRight,
			X:            pos.XPos,
			Y:            pos.YPos,
			Width:        pos.Width,
			Height:       pos.Height,
		})
	}

	canvas := ffmpegWrap.CanvasInput(width, height, frameRate, duration)
	out := c.ffmpeg.Compose(canvas, layers)

	if c.opts.Settings.Render.Labels {
		out = ffmpegWrap.AddLabel(out, paneLabel(c.opts.InputPaths[0]), "top-left")
		out = ffmpegWrap.AddLabel(out, paneLabel(c.opts.InputPaths[1]), "top-right")
	}
	return out
}

// renderDuration is the requested duration capped to the shorter input
func renderDuration(requested float64, metadata [2]*ffmpegWrap.VideoMetadata) float64 {
	duration := requested
	for _, m := range metadata {
		if m.Duration > 0 && (duration == 0 || m.Duration < duration) {
			duration = m.Duration
		}
	}
	return duration
}

func paneLabel(path string) string {
	return sanitizeFilename(filepath.Base(path))
}
