package ffmpeg

import (
	"fmt"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Label text settings
const (
	LabelSize        = "28"
	LabelPadding     = "20"
	LabelColor       = "white"
	LabelBorderColor = "black"
	LabelBorderWidth = "2"
)

// PaneLayer places one input on the output canvas. Crops are in source
// pixels, position and size in canvas pixels.
type PaneLayer struct {
	Input        *ffmpeg.Stream
	SourceWidth  int
	SourceHeight int
	CropLeft     int
	CropRight    int
	X            int
	Y            int
	Width        int
	Height       int
}

// Visible reports whether the layer puts any pixel on the canvas
func (l PaneLayer) Visible() bool {
	return l.Width > 0 && l.Height > 0 && l.cropWidth() > 0
}

func (l PaneLayer) cropWidth() int {
	return l.SourceWidth - l.CropLeft - l.CropRight
}

// CanvasInput returns a black lavfi color source. A zero duration leaves the
// source unbounded.
func CanvasInput(width, height int, frameRate string, duration float64) *ffmpeg.Stream {
	source := fmt.Sprintf("color=c=black:s=%dx%d:r=%s", width, height, frameRate)
	if duration > 0 {
		source += ":d=" + strconv.FormatFloat(duration, 'f', -1, 64)
	}
	return ffmpeg.Input(source, ffmpeg.KwArgs{"f": "lavfi"})
}

// Compose overlays every visible layer on the canvas, in order
func (p *Processor) Compose(canvas *ffmpeg.Stream, layers []PaneLayer) *ffmpeg.Stream {
	out := canvas
	for i, layer := range layers {
		if !layer.Visible() {
			p.logger.Debug().Int("pane", i).Msg("pane not visible, skipping")
			continue
		}
		out = p.CreateOverlayFilter(out, p.CreatePaneFilter(layer), layer.X, layer.Y)
	}
	return out
}

// CreatePaneFilter crops the layer input to its visible source columns and
// scales it to the pane size.
func (p *Processor) CreatePaneFilter(layer PaneLayer) *ffmpeg.Stream {
	pane := layer.Input
	if layer.CropLeft > 0 || layer.CropRight > 0 {
		pane = pane.Filter("crop", ffmpeg.Args{
			strconv.Itoa(layer.cropWidth()),
			strconv.Itoa(layer.SourceHeight),
			strconv.Itoa(layer.CropLeft),
			"0",
		})
	}
	return pane.Filter("scale", ffmpeg.Args{
		strconv.Itoa(layer.Width),
		strconv.Itoa(layer.Height),
	})
}

// CreateOverlayFilter creates a filter for overlaying one video on top of another
func (p *Processor) CreateOverlayFilter(main, overlay *ffmpeg.Stream, x, y int) *ffmpeg.Stream {
	return ffmpeg.Filter([]*ffmpeg.Stream{main, overlay}, "overlay", ffmpeg.Args{}, ffmpeg.KwArgs{
		"x": strconv.Itoa(x),
		"y": strconv.Itoa(y),
	})
}

// AddLabel draws text in a corner of the stream
func AddLabel(stream *ffmpeg.Stream, text, position string) *ffmpeg.Stream {
	var x, y string
	switch position {
	case "top-right":
		x = "w-tw-" + LabelPadding
		y = LabelPadding
	case "bottom-left":
		x = LabelPadding
		y = "h-th-" + LabelPadding
	case "bottom-right":
		x = "w-tw-" + LabelPadding
		y = "h-th-" + LabelPadding
	default:
		x = LabelPadding
		y = LabelPadding
	}

	return stream.Filter("drawtext", ffmpeg.Args{}, ffmpeg.KwArgs{
		"text":        text,
		"fontsize":    LabelSize,
		"fontcolor":   LabelColor,
		"bordercolor": LabelBorderColor,
		"borderw":     LabelBorderWidth,
		"x":           x,
		"y":           y,
		"box":         "1",
		"boxcolor":    "black@0.5",
		"boxborderw":  "5",
	})
}
