package snapwheel

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle. Points on the
// edge are inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// contactSource records which device owns the active contact.
type contactSource uint8

const (
	sourceNone contactSource = iota
	sourceMouse
	sourceTouch
	sourceInjected
)

// Surface polls Ebitengine touch and mouse input once per frame and feeds
// the first contact into a Recognizer. Additional fingers are ignored until
// the tracked one lifts. A contact still held when the window loses focus is
// reported as cancelled.
type Surface struct {
	recognizer *Recognizer

	// Bounds limits where a contact may start. An empty Bounds accepts the
	// whole screen.
	Bounds Rect

	now     func() time.Time
	devices bool

	source   contactSource
	touchID  ebiten.TouchID
	last     Vec2
	consumed bool

	touchBuf    []ebiten.TouchID
	injectQueue []syntheticContact
}

// NewSurface creates a Surface delivering contacts to r.
func NewSurface(r *Recognizer) *Surface {
	return &Surface{recognizer: r, now: time.Now, devices: true}
}

// Recognizer returns the recognizer this surface feeds.
func (s *Surface) Recognizer() *Recognizer { return s.recognizer }

// SetClock replaces the time source used to stamp contacts.
func (s *Surface) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.now = now
}

// SetDeviceInput enables or disables polling of real touch and mouse input.
// Headless replays and tests disable it and rely on injected contacts.
func (s *Surface) SetDeviceInput(enabled bool) {
	s.devices = enabled
}

// Consumed reports whether the last processed move was claimed by the
// recognizer, i.e. native scrolling for that event should be suppressed.
func (s *Surface) Consumed() bool { return s.consumed }

// Tracking reports whether a contact is in progress.
func (s *Surface) Tracking() bool { return s.source != sourceNone }

// Update processes one frame of input. Queued synthetic contacts take
// priority; while any remain, real devices are not polled.
func (s *Surface) Update() {
	s.consumed = false
	if s.processInjected() || !s.devices {
		return
	}
	if s.source != sourceNone && s.source != sourceInjected && !ebiten.IsFocused() {
		s.cancel()
		return
	}
	if s.pollTouch() {
		return
	}
	s.pollMouse()
}

// pollTouch handles touch input. Returns true if a touch owns the contact.
func (s *Surface) pollTouch() bool {
	if s.source != sourceNone && s.source != sourceTouch {
		return false
	}
	ids := ebiten.AppendTouchIDs(s.touchBuf[:0])
	s.touchBuf = ids

	if s.source == sourceTouch {
		for _, id := range ids {
			if id == s.touchID {
				x, y := ebiten.TouchPosition(id)
				s.process(sourceTouch, Vec2{X: float64(x), Y: float64(y)}, true)
				return true
			}
		}
		// Tracked finger lifted: release at its last known position.
		s.process(sourceTouch, s.last, false)
		return true
	}

	if len(ids) == 0 {
		return false
	}
	x, y := ebiten.TouchPosition(ids[0])
	p := Vec2{X: float64(x), Y: float64(y)}
	if !s.accepts(p) {
		return false
	}
	s.touchID = ids[0]
	s.process(sourceTouch, p, true)
	return true
}

// pollMouse treats the left mouse button as a single contact.
func (s *Surface) pollMouse() {
	if s.source != sourceNone && s.source != sourceMouse {
		return
	}
	mx, my := ebiten.CursorPosition()
	p := Vec2{X: float64(mx), Y: float64(my)}
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if pressed && s.source == sourceNone && !s.accepts(p) {
		return
	}
	s.process(sourceMouse, p, pressed)
}

func (s *Surface) accepts(p Vec2) bool {
	return s.Bounds.IsEmpty() || s.Bounds.Contains(p.X, p.Y)
}

// process runs the press/move/release state machine for the owning source.
func (s *Surface) process(src contactSource, p Vec2, pressed bool) {
	down := s.source != sourceNone
	switch {
	case pressed && !down:
		s.source = src
		s.last = p
		s.recognizer.Start(p, s.now())
	case !pressed && down:
		s.source = sourceNone
		s.last = p
		s.recognizer.End(p, s.now())
	case pressed && down:
		if p != s.last {
			s.last = p
			s.consumed = s.recognizer.Move(p, s.now())
		}
	}
}

func (s *Surface) cancel() {
	if s.source == sourceNone {
		return
	}
	s.source = sourceNone
	s.recognizer.Cancel(s.now())
}
