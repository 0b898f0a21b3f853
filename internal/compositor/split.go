package compositor

func splitAnchorDiff(c *Compositor, x, y int) (int, int) {
	return x - c.width/2, y - c.height/2
}

// splitPositions places one shared viewport, grown symmetrically around the
// canvas center, and cuts it at the border: pane 0 shows what is left of the
// border, pane 1 what is right of it.
func splitPositions(c *Compositor) (Position, Position) {
	viewportWidth, viewportHeight := c.viewportSize()
	viewportX := c.offsetX - (viewportWidth-c.width)/2
	viewportY := c.offsetY - (viewportHeight-c.height)/2
	viewportRight := viewportX + viewportWidth

	pos0 := Position{
		YPos:   viewportY,
		Height: viewportHeight,
	}
	if viewportX < c.border {
		pos0.XPos = viewportX
		pos0.Width = min(viewportWidth, c.border-viewportX)
	}
	switch {
	case viewportRight < c.border:
		pos0.CropRight = 0
	case viewportX > c.border:
		pos0.CropRight = c.width
	default:
		pos0.CropRight = c.sourceCrop(viewportRight-c.border, viewportWidth)
	}

	pos1 := Position{
		XPos:   c.border,
		YPos:   viewportY,
		Height: viewportHeight,
	}
	if viewportX > c.border {
		pos1.XPos = viewportX
	}
	switch {
	case viewportRight <= c.border:
		pos1.Width = 0
	case viewportX > c.border:
		pos1.Width = viewportWidth
	default:
		pos1.Width = viewportRight - c.border
	}
	switch {
	case viewportRight < c.border:
		pos1.CropLeft = c.width
	case viewportX > c.border:
		pos1.CropLeft = 0
	default:
		pos1.CropLeft = c.sourceCrop(c.border-viewportX, viewportWidth)
	}

	return pos0, pos1
}

// sourceCrop converts a crop in displayed pixels into source pixels.
// A zero sized viewport shows nothing, so everything is cropped.
func (c *Compositor) sourceCrop(crop, viewportWidth int) int {
	if viewportWidth == 0 {
		return c.width
	}
	scale := float32(c.width) / float32(viewportWidth)
	return int(float32(crop) * scale)
}
