package ffmpeg

import (
	"context"
	"math"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type CodecSettings struct {
	VideoCodec      string
	ContainerFormat string
	FileExtension   string
	EncoderPresets  map[string]ffmpeg.KwArgs
}

// Comparison renders are meant for pixel peeping, so the presets favour
// quality over size.
var codecPresets = map[string]CodecSettings{
	"mp4": {
		VideoCodec:      "libx264",
		ContainerFormat: "mp4",
		FileExtension:   ".mp4",
		EncoderPresets: map[string]ffmpeg.KwArgs{
			"compare": {
				"crf":       10,
				"preset":    "medium",
				"profile:v": "high",
				"movflags":  "+faststart",
			},
		},
	},
	"webm": {
		VideoCodec:      "libvpx-vp9",
		ContainerFormat: "webm",
		FileExtension:   ".webm",
		EncoderPresets: map[string]ffmpeg.KwArgs{
			"compare": {
				"crf":      15,
				"b:v":      0,
				"cpu-used": 2,
				"row-mt":   1,
			},
		},
	},
}

// GetCodecSettings returns the encoder settings for a container, falling back to mp4
func GetCodecSettings(outputFormat string) CodecSettings {
	if settings, ok := codecPresets[strings.ToLower(outputFormat)]; ok {
		return settings
	}
	return codecPresets["mp4"]
}

// OutputArgs returns the output options for a comparison render
func (c CodecSettings) OutputArgs() ffmpeg.KwArgs {
	kwargs := ffmpeg.KwArgs{
		"c:v":     c.VideoCodec,
		"pix_fmt": "yuv420p",
		"threads": GetOptimalThreadCount(),
	}
	for k, v := range c.EncoderPresets["compare"] {
		kwargs[k] = v
	}
	return kwargs
}

// Processor wraps FFmpeg functionality
type Processor struct {
	logger zerolog.Logger
	binary string
}

// NewProcessor creates a new FFmpeg processor
func NewProcessor(logger zerolog.Logger) *Processor {
	return &Processor{
		logger: logger.With().Str("component", "ffmpeg").Logger(),
		binary: "ffmpeg",
	}
}

// Run executes an output stream. Build it with ffmpeg.OutputContext so the
// ffmpeg process is killed when ctx is cancelled.
func (p *Processor) Run(ctx context.Context, stream *ffmpeg.Stream) error {
	p.logger.Debug().Strs("args", stream.GetArgs()).Msg("running ffmpeg")

	err := stream.SetFfmpegPath(p.binary).
		ErrorToStdOut().
		Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrap(ctxErr, "ffmpeg interrupted")
		}
		return errors.Wrap(err, "ffmpeg failed")
	}
	return nil
}

func GetOptimalThreadCount() int {
	// Use 75% of available cores to prevent overload
	return int(math.Max(1, float64(runtime.NumCPU())*0.75))
}

// EnsureExtension replaces any known video extension with extension
func EnsureExtension(filename, extension string) string {
	extensions := []string{".mp4", ".webm", ".mkv", ".avi", ".mov"}
	for _, ext := range extensions {
		filename = strings.TrimSuffix(filename, ext)
	}
	return filename + extension
}
