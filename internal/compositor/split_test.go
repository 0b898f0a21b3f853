package compositor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitGetPositionsDefault(t *testing.T) {
	pos0, pos1 := Default().GetPositions()

	assert.Equal(t, Position{XPos: 0, YPos: 0, Width: halfWidth, Height: DefaultHeight, CropRight: halfWidth}, pos0)
	assert.Equal(t, Position{XPos: halfWidth, YPos: 0, Width: halfWidth, Height: DefaultHeight, CropLeft: halfWidth}, pos1)
}

func TestSplitMove(t *testing.T) {
	tests := []struct {
		name       string
		dx, dy     int
		border     int
		pos0, pos1 Position
	}{
		{
			name:   "left",
			dx:     -10,
			border: halfWidth,
			pos0:   Position{XPos: -10, Width: halfWidth + 10, Height: DefaultHeight, CropRight: halfWidth - 10},
			pos1:   Position{XPos: halfWidth, Width: halfWidth - 10, Height: DefaultHeight, CropLeft: halfWidth + 10},
		},
		{
			name:   "left out of border",
			dx:     -1000,
			border: halfWidth,
			pos0:   Position{XPos: -1000, Width: DefaultWidth, Height: DefaultHeight},
			pos1:   Position{XPos: halfWidth, Width: 0, Height: DefaultHeight, CropLeft: DefaultWidth},
		},
		{
			name:   "right out of border",
			dx:     1000,
			border: halfWidth,
			pos0:   Position{XPos: 0, Width: 0, Height: DefaultHeight, CropRight: DefaultWidth},
			pos1:   Position{XPos: 1000, Width: DefaultWidth, Height: DefaultHeight},
		},
		{
			name:   "up",
			dy:     -10,
			border: halfWidth,
			pos0:   Position{YPos: -10, Width: halfWidth, Height: DefaultHeight, CropRight: halfWidth},
			pos1:   Position{XPos: halfWidth, YPos: -10, Width: halfWidth, Height: DefaultHeight, CropLeft: halfWidth},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			c.MovePos(tt.dx, tt.dy)
			pos0, pos1 := c.GetPositions()

			assertState(t, c, 100, tt.dx, tt.dy, tt.border)
			assert.Equal(t, tt.pos0, pos0, "pos0")
			assert.Equal(t, tt.pos1, pos1, "pos1")

			c.ResetPosition()
			assertState(t, c, 100, 0, 0, tt.border)
		})
	}
}

func TestSplitMoveBorder(t *testing.T) {
	c := Default()
	c.MoveBorder(10)
	pos0, pos1 := c.GetPositions()

	assertState(t, c, 100, 0, 0, halfWidth+10)
	assert.Equal(t, Position{Width: halfWidth + 10, Height: DefaultHeight, CropRight: halfWidth - 10}, pos0)
	assert.Equal(t, Position{XPos: halfWidth + 10, Width: halfWidth - 10, Height: DefaultHeight, CropLeft: halfWidth + 10}, pos1)

	c.ResetPosition()
	assertState(t, c, 100, 0, 0, halfWidth+10)
}

func TestSplitZoomIn(t *testing.T) {
	c := Default()
	c.ZoomIn()
	pos0, pos1 := c.GetPositions()

	assertState(t, c, 110, 0, 0, halfWidth)
	// crops stay in source pixels
	assert.Equal(t, Position{XPos: -64, YPos: -36, Width: 704, Height: 792, CropRight: 640}, pos0)
	assert.Equal(t, Position{XPos: 640, YPos: -36, Width: 704, Height: 792, CropLeft: 640}, pos1)
}

func zoomedOut(times int) *Compositor {
	c := Default()
	for i := 0; i < times; i++ {
		c.ZoomOut()
	}
	return c
}

func TestSplitZoomOutSixTimes(t *testing.T) {
	c := zoomedOut(6)
	pos0, pos1 := c.GetPositions()

	assertState(t, c, 40, 0, 0, halfWidth)
	assert.Equal(t, Position{XPos: 384, YPos: 216, Width: 256, Height: 288, CropRight: 640}, pos0)
	assert.Equal(t, Position{XPos: 640, YPos: 216, Width: 256, Height: 288, CropLeft: 640}, pos1)
}

func TestSplitZoomOutAndMove(t *testing.T) {
	c := zoomedOut(6)
	pos0, pos1 := c.GetPositions()
	visibleWidth := pos0.Width + pos1.Width

	steps := []struct {
		offsetX   int
		cropRight int
		cropLeft  int
	}{
		{-10, 615, 665},
		{-20, 590, 690},
		{-30, 565, 715},
		{-40, 540, 740},
	}

	for _, step := range steps {
		c.MovePos(-10, 0)
		pos0, pos1 := c.GetPositions()

		assert.Equal(t, uint(40), c.Zoom())
		assert.Equal(t, step.offsetX, c.OffsetX())
		assert.Equal(t, visibleWidth, pos0.Width+pos1.Width, "pos0.width + pos1.width")
		assert.Equal(t, step.cropRight, pos0.CropRight, "pos0.crop_right")
		assert.Equal(t, step.cropLeft, pos1.CropLeft, "pos1.crop_left")
	}
}

func TestSplitZoomOutOnlyOneVideo(t *testing.T) {
	c := zoomedOut(6)

	c.MoveBorderTo(0)
	pos0, pos1 := c.GetPositions()

	assertState(t, c, 40, 0, 0, 0)
	assert.Equal(t, Position{XPos: 0, YPos: 216, Width: 0, Height: 288, CropRight: 1280}, pos0)
	assert.Equal(t, Position{XPos: 384, YPos: 216, Width: 512, Height: 288}, pos1)

	c.MoveBorderTo(DefaultWidth)
	pos0, pos1 = c.GetPositions()

	assert.Equal(t, Position{XPos: 384, YPos: 216, Width: 512, Height: 288}, pos0)
	assert.Equal(t, 0, pos1.Width)
	assert.Equal(t, DefaultWidth, pos1.CropLeft)
}

// A zoomed out viewport pushed left of the border hides pane 1 instead of
// giving it a negative width.
func TestSplitZoomedOutViewportLeftOfBorder(t *testing.T) {
	c := Default()
	c.zoom = 10
	c.MovePos(-600, 0)
	pos0, pos1 := c.GetPositions()

	assert.Equal(t, Position{XPos: -24, YPos: 324, Width: 128, Height: 72}, pos0)
	assert.Equal(t, Position{XPos: halfWidth, YPos: 324, Width: 0, Height: 72, CropLeft: DefaultWidth}, pos1)
}

func TestSplitZoomInOutCenterAt(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		shiftX        int
		shiftY        int
	}{
		{"default canvas", DefaultWidth, DefaultHeight, 64, 36},
		{"large canvas", 12800, 7200, 640, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(Split, tt.width, tt.height)
			assertState(t, c, 100, 0, 0, tt.width/2)

			c.ZoomInCenterAt(0, 0)
			assertState(t, c, 110, tt.shiftX, tt.shiftY, tt.width/2)

			c.ZoomOutCenterAt(0, 0)
			assertState(t, c, 100, 0, 0, tt.width/2)

			c.ZoomOutCenterAt(0, 0)
			assertState(t, c, 90, -tt.shiftX, -tt.shiftY, tt.width/2)
			assert.Equal(t, tt.width, c.Width())
			assert.Equal(t, tt.height, c.Height())
		})
	}
}

// Pane widths add up to the viewport width wherever the viewport and the
// border are.
func TestSplitWidthConservedWhilePanning(t *testing.T) {
	for _, zoom := range []uint{100, 110, 200, 320} {
		for _, border := range []int{0, 200, 640, 1280} {
			c := Default()
			c.zoom = zoom
			c.MoveBorderTo(border)
			viewportWidth, _ := c.viewportSize()

			for dx := -3000; dx <= 3000; dx += 37 {
				c.MovePosTo(dx, 0)
				pos0, pos1 := c.GetPositions()
				assert.Equal(t, viewportWidth, pos0.Width+pos1.Width, "zoom=%d border=%d dx=%d", zoom, border, dx)
			}
		}
	}
}

func TestSplitZeroViewportIsFullyCropped(t *testing.T) {
	c := New(Split, 40, 40)
	c.zoom = MinZoom
	pos0, pos1 := c.GetPositions()

	assert.Equal(t, 0, pos0.Width)
	assert.Equal(t, 0, pos1.Width)
	assert.Equal(t, 40, pos0.CropRight)
	assert.Equal(t, 40, pos1.CropLeft)
}
