package compositor

// Position is the placement of one pane on the canvas.
//
// XPos, YPos, Width and Height are canvas pixels. Width is 0 when the pane is
// fully hidden. CropLeft and CropRight are measured in source video pixels,
// before the zoom is applied, which is what the downstream mixer expects.
type Position struct {
	XPos      int `json:"xpos"`
	YPos      int `json:"ypos"`
	Width     int `json:"width"`
	Height    int `json:"height"`
	CropRight int `json:"crop_right"`
	CropLeft  int `json:"crop_left"`
}

// Hidden reports whether nothing of the pane is visible.
func (p Position) Hidden() bool {
	return p.Width <= 0 || p.Height <= 0
}
