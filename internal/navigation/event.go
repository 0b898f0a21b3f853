package navigation

// Event is a navigation event coming from the viewer window. Coordinates are
// canvas pixels.
type Event interface {
	navigationEvent()
}

type KeyPress struct {
	Key string
}

type MouseMove struct {
	X, Y float64
}

type MouseButtonPress struct {
	Button uint
	X, Y   float64
}

type MouseButtonRelease struct {
	Button uint
	X, Y   float64
}

// MouseScroll zooms in for a positive DeltaY and out for a negative one
type MouseScroll struct {
	X, Y   float64
	DeltaY float64
}

func (KeyPress) navigationEvent()           {}
func (MouseMove) navigationEvent()          {}
func (MouseButtonPress) navigationEvent()   {}
func (MouseButtonRelease) navigationEvent() {}
func (MouseScroll) navigationEvent()        {}

// Mouse buttons as reported by X11 (1..5) and evdev (272..274).
const (
	ButtonPrimary     uint = 1
	ButtonMiddle      uint = 2
	ButtonSecondary   uint = 3
	ButtonWheelUp     uint = 4
	ButtonWheelDown   uint = 5
	ButtonLeftEvdev   uint = 272
	ButtonRightEvdev  uint = 273
	ButtonMiddleEvdev uint = 274
)

// MouseState tracks an in-progress drag
type MouseState struct {
	Clicked        bool
	ClickedX       float64
	ClickedY       float64
	ClickedOffsetX int
	ClickedOffsetY int
}

func isPrimary(button uint) bool {
	return button == ButtonPrimary || button == ButtonLeftEvdev
}

func isReset(button uint) bool {
	switch button {
	case ButtonMiddle, ButtonSecondary, ButtonRightEvdev, ButtonMiddleEvdev:
		return true
	}
	return false
}
