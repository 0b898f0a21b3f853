package navigation

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ZacxDev/video-compare/internal/compositor"
)

// Update is the outcome of one event. Changed is false when the event left
// the compositor untouched, in which case the mixer needs no new settings.
type Update struct {
	Changed bool
	Pane0   compositor.Position
	Pane1   compositor.Position
	State   compositor.State
}

// Session serializes navigation events against one compositor. The
// positions in an Update are computed under the same lock as the mutation.
type Session struct {
	mu         sync.Mutex
	id         string
	compositor *compositor.Compositor
	mouse      MouseState
	logger     zerolog.Logger
}

type Option func(*Session)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

func NewSession(c *compositor.Compositor, opts ...Option) *Session {
	s := &Session{
		id:         uuid.New().String(),
		compositor: c,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().
		Str("component", "navigation").
		Str("session_id", s.id).
		Logger()
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Handle applies one navigation event
func (s *Session) Handle(ev Event) Update {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := *s.compositor
	s.dispatch(ev)
	return s.update(before)
}

// HandleAll applies events in order and returns the last update, with
// Changed set if any event changed the compositor.
func (s *Session) HandleAll(events []Event) Update {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := *s.compositor
	for _, ev := range events {
		s.dispatch(ev)
	}
	return s.update(before)
}

// Apply runs fn against the compositor under the session lock
func (s *Session) Apply(fn func(c *compositor.Compositor)) Update {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := *s.compositor
	fn(s.compositor)
	return s.update(before)
}

// Snapshot returns the current state and positions
func (s *Session) Snapshot() Update {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.update(*s.compositor)
}

func (s *Session) Mouse() MouseState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mouse
}

func (s *Session) update(before compositor.Compositor) Update {
	pane0, pane1 := s.compositor.GetPositions()
	u := Update{
		Changed: before != *s.compositor,
		Pane0:   pane0,
		Pane1:   pane1,
		State:   s.compositor.State(),
	}
	if u.Changed {
		s.logger.Debug().
			Str("mode", u.State.Mode).
			Uint("zoom", u.State.Zoom).
			Int("offset_x", u.State.OffsetX).
			Int("offset_y", u.State.OffsetY).
			Int("border", u.State.Border).
			Msg("compositor changed")
	}
	return u
}

func (s *Session) dispatch(ev Event) {
	c := s.compositor

	switch e := ev.(type) {
	case KeyPress:
		action, ok := lookupKey(e.Key)
		if !ok {
			s.logger.Trace().Str("key", e.Key).Msg("ignoring key")
			return
		}
		action(c)

	case MouseMove:
		if s.mouse.Clicked {
			c.MovePosTo(
				int(e.X-s.mouse.ClickedX)+s.mouse.ClickedOffsetX,
				int(e.Y-s.mouse.ClickedY)+s.mouse.ClickedOffsetY,
			)
		}

	case MouseButtonPress:
		switch {
		case isPrimary(e.Button):
			s.mouse = MouseState{
				Clicked:        true,
				ClickedX:       e.X,
				ClickedY:       e.Y,
				ClickedOffsetX: c.OffsetX(),
				ClickedOffsetY: c.OffsetY(),
			}
			if e.Y >= float64(borderStripTop(c)) {
				c.MoveBorderTo(int(e.X))
			}
		case isReset(e.Button):
			c.Reset()
		case e.Button == ButtonWheelUp:
			c.ZoomInCenterAt(int(e.X), int(e.Y))
		case e.Button == ButtonWheelDown:
			c.ZoomOutCenterAt(int(e.X), int(e.Y))
		}

	case MouseButtonRelease:
		if isPrimary(e.Button) {
			s.mouse.Clicked = false
		}

	case MouseScroll:
		if e.DeltaY > 0 {
			c.ZoomInCenterAt(int(e.X), int(e.Y))
		} else if e.DeltaY < 0 {
			c.ZoomOutCenterAt(int(e.X), int(e.Y))
		}
	}
}

// borderStripTop is the first row of the bottom strip where a click moves
// the split border: 600 on a 720 line canvas.
func borderStripTop(c *compositor.Compositor) int {
	return c.Height() * 5 / 6
}
