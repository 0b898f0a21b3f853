package processor

import (
	"github.com/ZacxDev/video-compare/internal/backend"
	"github.com/ZacxDev/video-compare/internal/compositor"
)

// cropMargin is how far a full crop is pulled back on mixers whose crop
// element cannot remove a whole frame.
const cropMargin = 10

// PadSettings are the properties one mixer sink pad receives
type PadSettings struct {
	Element    string         `json:"element"`
	Pad        string         `json:"pad"`
	Properties map[string]int `json:"properties"`
	Crop       *CropSettings  `json:"crop,omitempty"`
}

// CropSettings are set on a separate videocrop element in front of the pad
type CropSettings struct {
	Element    string         `json:"element"`
	Properties map[string]int `json:"properties"`
}

// FixPosition adapts a pane position to what video mixers accept. A zero
// width pane is given the full width and pushed right of the canvas. Without
// crop support a crop of the full width is reduced by cropMargin.
func FixPosition(pos compositor.Position, width int, supportsCrop bool) compositor.Position {
	if pos.Width == 0 {
		pos.Width = width
		pos.XPos = width
	}

	if !supportsCrop {
		if pos.CropRight == width {
			pos.CropRight = width - cropMargin
		}
		if pos.CropLeft == width {
			pos.CropLeft = width - cropMargin
		}
	}

	return pos
}

// MixerSettings returns the pad settings of both panes for a backend. Pane 0
// is only ever cropped on the right, pane 1 on the left.
func MixerSettings(c *compositor.Compositor, b backend.Backend) [2]PadSettings {
	pos0, pos1 := c.GetPositions()
	pos0 = FixPosition(pos0, c.Width(), b.SupportsCrop())
	pos1 = FixPosition(pos1, c.Width(), b.SupportsCrop())

	return [2]PadSettings{
		padSettings(b, "sink_0", "crop0", pos0, "right", pos0.CropRight),
		padSettings(b, "sink_1", "crop1", pos1, "left", pos1.CropLeft),
	}
}

func padSettings(b backend.Backend, pad, cropElement string, pos compositor.Position, side string, crop int) PadSettings {
	settings := PadSettings{
		Element: b.GetMixerElement(),
		Pad:     pad,
		Properties: map[string]int{
			"width":  pos.Width,
			"height": pos.Height,
			"xpos":   pos.XPos,
			"ypos":   pos.YPos,
		},
	}

	if b.SupportsCrop() {
		settings.Properties["crop-"+side] = crop
	} else {
		settings.Crop = &CropSettings{
			Element:    cropElement,
			Properties: map[string]int{side: crop},
		}
	}

	return settings
}
