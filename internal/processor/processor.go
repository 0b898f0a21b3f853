package processor

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ZacxDev/video-compare/internal/backend"
	"github.com/ZacxDev/video-compare/internal/config"
	"github.com/ZacxDev/video-compare/internal/ffmpeg"
)

var ErrResolutionMismatch = errors.New("inputs have different resolutions")

// Comparator renders two inputs through the compositor into one comparison video
type Comparator struct {
	opts    *config.RenderOptions
	ffmpeg  *ffmpeg.Processor
	backend backend.Backend
	probe   func(ctx context.Context, path string) (*ffmpeg.VideoMetadata, error)
}

// NewComparator creates a new comparator for the configured backend
func NewComparator(opts *config.RenderOptions, logger zerolog.Logger) (*Comparator, error) {
	if opts.Settings == nil {
		return nil, errors.New("render options without settings")
	}
	b, err := backend.Get(opts.Settings.Backend)
	if err != nil {
		return nil, err
	}
	p := ffmpeg.NewProcessor(logger)
	return &Comparator{
		opts:    opts,
		ffmpeg:  p,
		backend: b,
		probe:   p.GetVideoMetadata,
	}, nil
}

// GetSupportedBackends returns a list of supported mixer backends
func GetSupportedBackends() []string {
	return backend.GetSupportedBackends()
}

var (
	unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9-_.]`)
	underscores = regexp.MustCompile(`_+`)
)

func sanitizeFilename(filename string) string {
	sanitized := strings.TrimSuffix(filename, filepath.Ext(filename))
	sanitized = unsafeChars.ReplaceAllString(sanitized, "_")
	sanitized = underscores.ReplaceAllString(sanitized, "_")
	return strings.Trim(sanitized, "_")
}

// defaultOutputPath names the render after both inputs, next to the first one
func defaultOutputPath(inputs [2]string) string {
	name := sanitizeFilename(filepath.Base(inputs[0])) + "_vs_" + sanitizeFilename(filepath.Base(inputs[1]))
	return filepath.Join(filepath.Dir(inputs[0]), name+".mp4")
}

// outputFormat is the container named by the output extension, mp4 when absent
func outputFormat(path string) string {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return "mp4"
	}
	return format
}

func ensureOutputPath(path, extension string) (string, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", errors.Wrapf(err, "failed to create directory %s", dir)
		}
	}
	return ffmpeg.EnsureExtension(path, extension), nil
}
