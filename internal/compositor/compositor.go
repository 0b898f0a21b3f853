package compositor

import (
	"golang.org/x/exp/constraints"
)

const (
	// Output resolution used when no input resolution is known (1280x720)
	DefaultWidth  = 1280
	DefaultHeight = 720

	DefaultZoom = 100
	MinZoom     = 1
	MaxZoom     = 1000000

	// ZoomStep is the zoom change per zoom in/out, in percent
	ZoomStep = 10
)

// Compositor holds the viewport state shared by both panes: display mode,
// zoom (percent), pan offset of the viewport center and the split border.
//
// Fields are only changed through the methods so the border stays inside
// [0, width] and the zoom inside [MinZoom, MaxZoom]. The value is comparable,
// callers detect changes by comparing copies taken before and after a batch
// of mutations.
type Compositor struct {
	mode    Mode
	zoom    uint
	offsetX int
	offsetY int
	border  int
	width   int
	height  int
}

// New creates a compositor for a canvas of the given size.
func New(mode Mode, width, height int) *Compositor {
	return &Compositor{
		mode:   mode,
		zoom:   DefaultZoom,
		border: width / 2,
		width:  width,
		height: height,
	}
}

// NewSplit creates a compositor in split mode.
func NewSplit(width, height int) *Compositor {
	return New(Split, width, height)
}

// NewSideBySide creates a compositor in side by side mode.
func NewSideBySide(width, height int) *Compositor {
	return New(SideBySide, width, height)
}

// Default creates a split mode compositor for a 1280x720 canvas.
func Default() *Compositor {
	return New(Split, DefaultWidth, DefaultHeight)
}

func (c *Compositor) Mode() Mode { return c.mode }

func (c *Compositor) Zoom() uint { return c.zoom }

func (c *Compositor) OffsetX() int { return c.offsetX }

func (c *Compositor) OffsetY() int { return c.offsetY }

func (c *Compositor) Border() int { return c.border }

func (c *Compositor) Width() int { return c.width }

func (c *Compositor) Height() int { return c.height }

func (c *Compositor) IsSplit() bool { return c.mode == Split }

func (c *Compositor) IsSideBySide() bool { return c.mode == SideBySide }

// SetMode switches the display mode, nothing else changes.
func (c *Compositor) SetMode(mode Mode) {
	c.mode = mode
}

// SplitMode sets split mode.
func (c *Compositor) SplitMode() {
	c.SetMode(Split)
}

// SideBySideMode sets side by side mode.
func (c *Compositor) SideBySideMode() {
	c.SetMode(SideBySide)
}

// Reset restores zoom, offsets and border. Mode and canvas size are kept.
func (c *Compositor) Reset() {
	c.ResetPosition()
	c.ResetBorder()
}

// ResetBorder restores only the border to the middle of the canvas.
func (c *Compositor) ResetBorder() {
	c.border = c.width / 2
}

// ResetPosition restores zoom and offsets, the border is kept.
func (c *Compositor) ResetPosition() {
	c.zoom = DefaultZoom
	c.offsetX = 0
	c.offsetY = 0
}

// MovePos moves the viewport by dx, dy pixels. Offsets are not clamped, the
// viewport can be pushed fully off the canvas.
func (c *Compositor) MovePos(dx, dy int) {
	c.offsetX += dx
	c.offsetY += dy
}

// MovePosTo sets the viewport offsets.
func (c *Compositor) MovePosTo(x, y int) {
	c.offsetX = x
	c.offsetY = y
}

// MoveBorder moves the border by delta pixels inside the canvas bounds.
func (c *Compositor) MoveBorder(delta int) {
	c.MoveBorderTo(c.border + delta)
}

// MoveBorderTo sets the border, clamped to [0, width].
func (c *Compositor) MoveBorderTo(value int) {
	c.border = clamp(value, 0, c.width)
}

// ZoomIn increases the zoom by one step keeping the pane center stationary.
func (c *Compositor) ZoomIn() {
	x, y := c.zoomAnchor()
	c.ZoomInCenterAt(x, y)
}

// ZoomOut decreases the zoom by one step keeping the pane center stationary.
func (c *Compositor) ZoomOut() {
	x, y := c.zoomAnchor()
	c.ZoomOutCenterAt(x, y)
}

// ZoomInCenterAt increases the zoom by one step, capped at MaxZoom, and
// updates the offsets so (x, y) stays in place.
func (c *Compositor) ZoomInCenterAt(x, y int) {
	c.zoom = min(c.zoom+ZoomStep, MaxZoom)
	c.fixOffsetWhenZoom(x, y, true)
}

// ZoomOutCenterAt decreases the zoom by one step, never below MinZoom, and
// updates the offsets so (x, y) stays in place.
func (c *Compositor) ZoomOutCenterAt(x, y int) {
	zoom := uint(MinZoom)
	if c.zoom > ZoomStep {
		zoom = max(c.zoom-ZoomStep, MinZoom)
	}
	c.zoom = zoom
	c.fixOffsetWhenZoom(x, y, false)
}

// zoomAnchor is the center of a pane: the canvas center in split mode, the
// center of the left half in side by side mode.
func (c *Compositor) zoomAnchor() (int, int) {
	if c.mode == SideBySide {
		return c.width / 4, c.height / 2
	}
	return c.width / 2, c.height / 2
}

func (c *Compositor) fixOffsetWhenZoom(x, y int, zoomIn bool) {
	var diffX, diffY int
	switch c.mode {
	case SideBySide:
		diffX, diffY = sideBySideAnchorDiff(c, x, y)
	default:
		diffX, diffY = splitAnchorDiff(c, x, y)
	}

	// one zoom step of pan per ZoomStep pixels between anchor and center
	dx := diffX / ZoomStep
	dy := diffY / ZoomStep
	if zoomIn {
		c.offsetX -= dx
		c.offsetY -= dy
	} else {
		c.offsetX += dx
		c.offsetY += dy
	}
}

// GetPositions computes the placement and crop of pane 0 and pane 1 for the
// current state.
func (c *Compositor) GetPositions() (Position, Position) {
	switch c.mode {
	case SideBySide:
		return sideBySidePositions(c)
	default:
		return splitPositions(c)
	}
}

// viewportSize scales the canvas by the zoom factor. The factor is applied
// once in single precision and truncated, everything after is integer math.
func (c *Compositor) viewportSize() (int, int) {
	factor := float32(c.zoom) / 100
	return int(float32(c.width) * factor), int(float32(c.height) * factor)
}

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
