package ffmpeg

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

var ErrNoVideoStream = errors.New("no video stream found")

// VideoMetadata contains metadata about a video file
type VideoMetadata struct {
	Duration  float64
	Width     int
	Height    int
	Codec     string
	FrameRate string
	Bitrate   int64
}

type probeStream struct {
	CodecType  string `json:"codec_type"`
	CodecName  string `json:"codec_name"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Duration   string `json:"duration"`
	NbFrames   string `json:"nb_frames"`
	RFrameRate string `json:"r_frame_rate"`
	BitRate    string `json:"bit_rate"`
}

type probeFormat struct {
	Duration string `json:"duration"`
	BitRate  string `json:"bit_rate"`
	Size     string `json:"size"`
}

type probeResult struct {
	Streams []probeStream `json:"streams"`
	Format  probeFormat   `json:"format"`
}

// GetVideoMetadata reads stream and format metadata with ffprobe. A ctx
// deadline bounds the ffprobe run; cancellation without a deadline is only
// checked before ffprobe starts.
func (p *Processor) GetVideoMetadata(ctx context.Context, inputPath string) (*VideoMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	var probe string
	var err error
	if deadline, ok := ctx.Deadline(); ok {
		timeout := time.Until(deadline)
		if timeout <= 0 {
			return nil, errors.WithStack(context.DeadlineExceeded)
		}
		probe, err = ffmpeg.ProbeWithTimeout(inputPath, timeout, ffmpeg.KwArgs{})
	} else {
		probe, err = ffmpeg.Probe(inputPath)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error probing %s", inputPath)
	}

	metadata, err := ParseMetadata(probe)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading probe of %s", inputPath)
	}

	p.logger.Debug().
		Str("input", inputPath).
		Int("width", metadata.Width).
		Int("height", metadata.Height).
		Str("codec", metadata.Codec).
		Float64("duration", metadata.Duration).
		Int64("bitrate", metadata.Bitrate).
		Msg("probed input")

	return metadata, nil
}

// ParseMetadata reads the first video stream of ffprobe JSON output.
// Duration falls back from the stream to the container and finally to
// frame count over frame rate; it stays 0 when none is known.
func ParseMetadata(probe string) (*VideoMetadata, error) {
	var data probeResult
	if err := json.Unmarshal([]byte(probe), &data); err != nil {
		return nil, errors.WithStack(err)
	}

	var video *probeStream
	for i := range data.Streams {
		if data.Streams[i].CodecType == "video" {
			video = &data.Streams[i]
			break
		}
	}
	if video == nil {
		return nil, ErrNoVideoStream
	}

	frameRate := parseFrameRate(video.RFrameRate)

	duration := parseFloat(video.Duration)
	if duration == 0 {
		duration = parseFloat(data.Format.Duration)
	}
	if duration == 0 && frameRate > 0 {
		duration = parseFloat(video.NbFrames) / frameRate
	}

	return &VideoMetadata{
		Duration:  duration,
		Width:     video.Width,
		Height:    video.Height,
		Codec:     video.CodecName,
		FrameRate: video.RFrameRate,
		Bitrate:   bitrate(data, video, duration),
	}, nil
}

// bitrate prefers the container rate, then the stream rate, then an estimate
// from file size and duration.
func bitrate(data probeResult, video *probeStream, duration float64) int64 {
	if b, err := strconv.ParseInt(data.Format.BitRate, 10, 64); err == nil {
		return b
	}
	if b, err := strconv.ParseInt(video.BitRate, 10, 64); err == nil {
		return b
	}
	if size, err := strconv.ParseInt(data.Format.Size, 10, 64); err == nil && duration > 0 {
		return int64(float64(size*8) / duration)
	}
	return 0
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseFrameRate(rate string) float64 {
	nums := strings.Split(rate, "/")
	if len(nums) != 2 {
		return parseFloat(rate)
	}
	num, den := parseFloat(nums[0]), parseFloat(nums[1])
	if den == 0 {
		return 0
	}
	return num / den
}
