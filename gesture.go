package snapwheel

import (
	"math"
	"time"
)

// --- Constants ---

const (
	DefaultThresholdTime     = 500 * time.Millisecond
	DefaultThresholdDistance = 10.0 // pixels
)

// --- Listeners ---

// GestureListener receives classified gestures from a Recognizer.
type GestureListener interface {
	HandleGesture(GestureEvent)
}

// GestureFunc adapts a plain function to GestureListener.
type GestureFunc func(GestureEvent)

// HandleGesture calls f(e).
func (f GestureFunc) HandleGesture(e GestureEvent) { f(e) }

// ContactEndListener is told when a contact is released, after any gesture
// the release produced has been delivered. It also runs for taps, which
// produce no gesture.
type ContactEndListener interface {
	ContactEnded()
}

// --- Recognizer ---

// Recognizer turns a raw stream of contact start/move/end/cancel calls on one
// surface into start, move, end, swipe and cancel gestures.
//
// Only one contact is tracked at a time; a new Start replaces an unfinished
// contact. A short release that stays within the distance threshold (a tap)
// produces no gesture. A release slower than the time threshold is always a
// plain end, never a swipe.
//
// Each gesture kind has at most one listener. A Recognizer is not safe for
// concurrent use; feed it from the goroutine that owns the surface.
type Recognizer struct {
	thresholdTime     time.Duration
	thresholdDistance float64

	active  Contact
	tracked bool

	listeners [gestureKindCount]GestureListener
	onEnd     ContactEndListener
}

// NewRecognizer creates a Recognizer with the given thresholds. Non-positive
// values select DefaultThresholdTime and DefaultThresholdDistance.
func NewRecognizer(thresholdTime time.Duration, thresholdDistance float64) *Recognizer {
	r := &Recognizer{}
	r.SetThresholdTime(thresholdTime)
	r.SetThresholdDistance(thresholdDistance)
	return r
}

// SetThresholdTime sets the longest contact still classified as a swipe.
func (r *Recognizer) SetThresholdTime(d time.Duration) {
	if d <= 0 {
		d = DefaultThresholdTime
	}
	r.thresholdTime = d
}

// SetThresholdDistance sets the movement in pixels, on either axis, above
// which a contact counts as a move or swipe.
func (r *Recognizer) SetThresholdDistance(px float64) {
	if px <= 0 || math.IsNaN(px) {
		px = DefaultThresholdDistance
	}
	r.thresholdDistance = px
}

// ThresholdTime returns the swipe time threshold.
func (r *Recognizer) ThresholdTime() time.Duration { return r.thresholdTime }

// ThresholdDistance returns the movement threshold in pixels.
func (r *Recognizer) ThresholdDistance() float64 { return r.thresholdDistance }

// SetListener registers l for gestures of the given kind, replacing any
// previous listener for that kind. A nil l clears the slot.
func (r *Recognizer) SetListener(kind GestureKind, l GestureListener) {
	if int(kind) >= gestureKindCount {
		return
	}
	r.listeners[kind] = l
}

// Listener returns the listener registered for kind, or nil.
func (r *Recognizer) Listener(kind GestureKind) GestureListener {
	if int(kind) >= gestureKindCount {
		return nil
	}
	return r.listeners[kind]
}

// SetAllListeners registers l for every gesture kind.
func (r *Recognizer) SetAllListeners(l GestureListener) {
	for i := range r.listeners {
		r.listeners[i] = l
	}
}

// SetContactEndListener registers l to run after every release. A nil l
// clears it.
func (r *Recognizer) SetContactEndListener(l ContactEndListener) {
	r.onEnd = l
}

// Active returns the tracked contact, if any.
func (r *Recognizer) Active() (Contact, bool) {
	return r.active, r.tracked
}

// Start begins tracking a contact at p and emits GestureStart.
func (r *Recognizer) Start(p Vec2, t time.Time) {
	r.active = Contact{Position: p, Start: t}
	r.tracked = true
	r.emit(GestureEvent{
		Kind:      GestureStart,
		Start:     p,
		TimeStart: t,
	})
}

// Move reports the contact's current position. When the contact has moved
// further than the distance threshold on either axis it emits GestureMove and
// returns true, meaning the platform's native scroll for this event should
// be suppressed. Without an active contact Move is a no-op.
func (r *Recognizer) Move(p Vec2, t time.Time) bool {
	if !r.tracked {
		return false
	}
	d := p.Sub(r.active.Position)
	if math.Max(math.Abs(d.X), math.Abs(d.Y)) <= r.thresholdDistance {
		return false
	}
	r.emit(GestureEvent{
		Kind:      GestureMove,
		Start:     r.active.Position,
		End:       p,
		TimeStart: r.active.Start,
		TimeEnd:   t,
		HasEnd:    true,
	})
	return true
}

// End finishes the contact at p and classifies it. Fast releases beyond the
// distance threshold become one swipe; slow releases become GestureEnd;
// fast releases within the threshold emit nothing.
func (r *Recognizer) End(p Vec2, t time.Time) {
	if !r.tracked {
		return
	}
	c := r.active
	r.tracked = false
	defer r.contactEnded()

	ev := GestureEvent{
		Start:     c.Position,
		End:       p,
		TimeStart: c.Start,
		TimeEnd:   t,
		HasEnd:    true,
	}
	if t.Sub(c.Start) > r.thresholdTime {
		ev.Kind = GestureEnd
		r.emit(ev)
		return
	}

	kind, ok := classifySwipe(c.Position, p, r.thresholdDistance)
	if !ok {
		return
	}
	ev.Kind = kind
	r.emit(ev)
}

// Cancel aborts the contact and emits GestureCancel carrying the cancel time.
func (r *Recognizer) Cancel(t time.Time) {
	if !r.tracked {
		return
	}
	c := r.active
	r.tracked = false
	r.emit(GestureEvent{
		Kind:      GestureCancel,
		Start:     c.Position,
		TimeStart: c.Start,
		TimeEnd:   t,
	})
}

// classifySwipe picks the swipe direction for a fast release from start to
// end. The dominant axis wins; equal movement on both axes counts as
// vertical. ok is false when neither axis exceeds threshold.
func classifySwipe(start, end Vec2, threshold float64) (GestureKind, bool) {
	dx := math.Abs(end.X - start.X)
	dy := math.Abs(end.Y - start.Y)
	if dx <= threshold && dy <= threshold {
		return 0, false
	}
	if dx > dy {
		if end.X < start.X {
			return GestureSwipeLeft, true
		}
		return GestureSwipeRight, true
	}
	if end.Y < start.Y {
		return GestureSwipeUp, true
	}
	return GestureSwipeDown, true
}

func (r *Recognizer) contactEnded() {
	if r.onEnd != nil {
		r.onEnd.ContactEnded()
	}
}

func (r *Recognizer) emit(e GestureEvent) {
	if l := r.listeners[e.Kind]; l != nil {
		l.HandleGesture(e)
	}
}
