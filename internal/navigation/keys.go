package navigation

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/ZacxDev/video-compare/internal/compositor"
)

// MoveStep is the pan distance of one arrow key press, in canvas pixels
const MoveStep = 10

var ErrUnknownKey = errors.New("unknown key")

type keyAction func(c *compositor.Compositor)

var keyActions = map[string]keyAction{
	"Left":  func(c *compositor.Compositor) { c.MovePos(-MoveStep, 0) },
	"Right": func(c *compositor.Compositor) { c.MovePos(MoveStep, 0) },
	"Up":    func(c *compositor.Compositor) { c.MovePos(0, -MoveStep) },
	"Down":  func(c *compositor.Compositor) { c.MovePos(0, MoveStep) },
	"plus":  func(c *compositor.Compositor) { c.ZoomIn() },
	"minus": func(c *compositor.Compositor) { c.ZoomOut() },
	"r":     func(c *compositor.Compositor) { c.ResetPosition() },
	"R":     func(c *compositor.Compositor) { c.Reset() },
	"1": func(c *compositor.Compositor) {
		c.SplitMode()
		c.MoveBorderTo(0)
	},
	"2": func(c *compositor.Compositor) {
		c.SplitMode()
		c.MoveBorderTo(c.Width())
	},
	"3": func(c *compositor.Compositor) {
		c.SplitMode()
		c.ResetBorder()
	},
	"4": func(c *compositor.Compositor) { c.SideBySideMode() },
	"5": func(c *compositor.Compositor) {
		c.SplitMode()
		c.MoveBorder(-MoveStep)
	},
	"6": func(c *compositor.Compositor) {
		c.SplitMode()
		c.MoveBorder(MoveStep)
	},
}

// keyAliases maps alternative key names, including the Spanish keyboard
// layout names some window systems report for the arrows.
var keyAliases = map[string]string{
	"FLECHA IZQUIERDA": "Left",
	"FLECHA DERECHA":   "Right",
	"FLECHA ARRIBA":    "Up",
	"FLECHA ABAJO":     "Down",
	"+":                "plus",
	"-":                "minus",
	"Shift_R":          "R",
}

func lookupKey(key string) (keyAction, bool) {
	if alias, ok := keyAliases[key]; ok {
		key = alias
	}
	action, ok := keyActions[key]
	return action, ok
}

// ParseKeys turns a comma separated list of key names into key press events
func ParseKeys(script string) ([]Event, error) {
	var events []Event
	for _, key := range strings.Split(script, ",") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, ok := lookupKey(key); !ok {
			return nil, errors.Wrapf(ErrUnknownKey, "%q", key)
		}
		events = append(events, KeyPress{Key: key})
	}
	return events, nil
}
