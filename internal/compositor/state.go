package compositor

// State is an exported copy of the compositor fields, for reporting
type State struct {
	Mode    string `json:"mode"`
	Zoom    uint   `json:"zoom"`
	OffsetX int    `json:"offset_x"`
	OffsetY int    `json:"offset_y"`
	Border  int    `json:"border"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

func (c *Compositor) State() State {
	return State{
		Mode:    c.mode.String(),
		Zoom:    c.zoom,
		OffsetX: c.offsetX,
		OffsetY: c.offsetY,
		Border:  c.border,
		Width:   c.width,
		Height:  c.height,
	}
}
