package compositor

// sideBySideAnchorDiff folds x into the coordinates of a single half-width
// pane before comparing it with the pane center.
func sideBySideAnchorDiff(c *Compositor, x, y int) (int, int) {
	if halfWidth := c.width / 2; halfWidth != 0 {
		x %= halfWidth
	}
	return x - c.width/4, y - c.height/2
}

// sideBySidePositions frames each video in its own half of the canvas. Both
// panes share zoom and offsets and are clipped at the midline.
func sideBySidePositions(c *Compositor) (Position, Position) {
	viewportWidth, viewportHeight := c.viewportSize()

	halfWidth := c.width / 2
	halfViewportWidth := viewportWidth / 2

	height := viewportHeight / 2
	ypos := c.offsetY + (c.height-height)/2

	// growth is relative to a half width pane, hence the quarter
	xpos := c.offsetX + (c.width-viewportWidth)/4

	// crops are applied to the source, undo the pane scaling
	unscale := func(w int) int {
		if halfViewportWidth == 0 {
			return 0
		}
		u := w * c.width / halfViewportWidth
		if u < c.width {
			return u
		}
		return 0
	}

	pos0 := Position{
		XPos:   xpos,
		YPos:   ypos,
		Width:  halfViewportWidth,
		Height: height,
	}
	if xpos > halfWidth {
		pos0.XPos = 0
	}
	if xpos+halfViewportWidth > halfWidth {
		pos0.Width = 0
		if xpos < halfWidth {
			pos0.Width = halfWidth - xpos
		}
		pos0.CropRight = unscale(xpos + halfViewportWidth - halfWidth)
	}

	pos1 := Position{
		XPos:   xpos + halfWidth,
		YPos:   ypos,
		Width:  halfViewportWidth,
		Height: height,
	}
	if xpos < 0 {
		pos1.XPos = halfWidth
		pos1.Width = 0
		if halfViewportWidth > xpos && halfViewportWidth+xpos > 0 {
			pos1.Width = halfViewportWidth + xpos
		}
	}
	if xpos <= 0 && xpos >= -halfViewportWidth {
		pos1.CropLeft = unscale(-xpos)
	}

	return pos0, pos1
}
