package ffmpeg

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

func TestGetCodecSettings(t *testing.T) {
	assert.Equal(t, "libx264", GetCodecSettings("mp4").VideoCodec)
	assert.Equal(t, "libvpx-vp9", GetCodecSettings("WEBM").VideoCodec)
	assert.Equal(t, ".mp4", GetCodecSettings("gif").FileExtension)

	args := GetCodecSettings("webm").OutputArgs()
	assert.Equal(t, "libvpx-vp9", args["c:v"])
	assert.Equal(t, "yuv420p", args["pix_fmt"])
	assert.Equal(t, 15, args["crf"])
}

func TestEnsureExtension(t *testing.T) {
	assert.Equal(t, "out.webm", EnsureExtension("out.mp4", ".webm"))
	assert.Equal(t, "out.mp4", EnsureExtension("out", ".mp4"))
	assert.Equal(t, "dir/out.mp4", EnsureExtension("dir/out.mov", ".mp4"))
}

func TestPaneLayerVisible(t *testing.T) {
	base := PaneLayer{SourceWidth: 1280, SourceHeight: 720, Width: 640, Height: 720}
	assert.True(t, base.Visible())

	hidden := base
	hidden.Width = 0
	assert.False(t, hidden.Visible())

	flat := base
	flat.Height = 0
	assert.False(t, flat.Visible())

	cropped := base
	cropped.CropLeft = 640
	cropped.CropRight = 640
	assert.False(t, cropped.Visible())
}

func compile(stream *ffmpeg.Stream) string {
	return strings.Join(stream.Output("out.mp4").GetArgs(), " ")
}

func TestCanvasInput(t *testing.T) {
	args := compile(CanvasInput(1280, 720, "30/1", 2.5))
	assert.Contains(t, args, "-f lavfi")
	assert.Contains(t, args, "color=c=black:s=1280x720:r=30/1:d=2.5")

	args = compile(CanvasInput(640, 480, "25/1", 0))
	assert.Contains(t, args, "color=c=black:s=640x480:r=25/1")
	assert.NotContains(t, args, ":d=")
}

func TestCompose(t *testing.T) {
	p := NewProcessor(zerolog.Nop())

	canvas := CanvasInput(1280, 720, "30/1", 0)
	layers := []PaneLayer{
		{
			Input:        ffmpeg.Input("a.mp4").Video(),
			SourceWidth:  1280,
			SourceHeight: 720,
			CropRight:    640,
			Width:        640,
			Height:       720,
		},
		{
			Input:        ffmpeg.Input("b.mp4").Video(),
			SourceWidth:  1280,
			SourceHeight: 720,
			CropLeft:     640,
			X:            640,
			Width:        640,
			Height:       720,
		},
	}

	args := compile(p.Compose(canvas, layers))
	assert.Contains(t, args, "-i a.mp4")
	assert.Contains(t, args, "-i b.mp4")
	assert.Contains(t, args, "crop=640:720:0:0")
	assert.Contains(t, args, "crop=640:720:640:0")
	assert.Contains(t, args, "scale=640:720")
	assert.Contains(t, args, "overlay=x=0:y=0")
	assert.Contains(t, args, "overlay=x=640:y=0")
}

func TestComposeSkipsHiddenPanes(t *testing.T) {
	p := NewProcessor(zerolog.Nop())

	canvas := CanvasInput(1280, 720, "30/1", 1)
	layers := []PaneLayer{
		{Input: ffmpeg.Input("a.mp4").Video(), SourceWidth: 1280, SourceHeight: 720, Width: 1280, Height: 720},
		{Input: ffmpeg.Input("b.mp4").Video(), SourceWidth: 1280, SourceHeight: 720, X: 1280, Height: 720},
	}

	args := compile(p.Compose(canvas, layers))
	assert.Contains(t, args, "overlay=x=0:y=0")
	assert.NotContains(t, args, "crop=")
	assert.Equal(t, 1, strings.Count(args, "overlay="))
}

func TestAddLabel(t *testing.T) {
	args := compile(AddLabel(CanvasInput(1280, 720, "30/1", 1), "reference", "top-right"))
	assert.Contains(t, args, "drawtext")
	assert.Contains(t, args, "reference")
	assert.Contains(t, args, "w-tw-20")
}

func TestRunCancelled(t *testing.T) {
	p := NewProcessor(zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	canvas := CanvasInput(64, 64, "25/1", 1)
	stream := ffmpeg.OutputContext(ctx, []*ffmpeg.Stream{canvas}, t.TempDir()+"/out.mp4").OverWriteOutput()
	require.ErrorIs(t, stream.Context.Err(), context.Canceled)

	err := p.Run(ctx, stream)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "ffmpeg interrupted")
}
