package ecs

import (
	"github.com/teqfw/snapwheel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for recognized gestures.
// Subscribe to this in your ECS systems to receive start, move, swipe and
// cancel events.
var GestureEventType = events.NewEventType[snapwheel.GestureEvent]()

// SelectionEvent is published each time a scroller settles.
type SelectionEvent struct {
	Key any
	OK  bool
}

// SelectionEventType is the Donburi event type for scroller selections.
var SelectionEventType = events.NewEventType[SelectionEvent]()

// Bridge publishes snapwheel notifications into a Donburi world. It
// implements both snapwheel.GestureListener and snapwheel.SelectionListener.
type Bridge struct {
	world donburi.World
}

// NewDonburiBridge creates a Bridge publishing to world. Events are queued
// and delivered by ProcessEvents on the matching event type.
func NewDonburiBridge(world donburi.World) *Bridge {
	return &Bridge{world: world}
}

// HandleGesture publishes e to GestureEventType.
func (b *Bridge) HandleGesture(e snapwheel.GestureEvent) {
	GestureEventType.Publish(b.world, e)
}

// SelectionChanged publishes a SelectionEvent to SelectionEventType.
func (b *Bridge) SelectionChanged(key any, ok bool) {
	SelectionEventType.Publish(b.world, SelectionEvent{Key: key, OK: ok})
}

// ObserveRecognizer publishes every gesture r emits. Listeners already
// registered on r keep receiving their events after the bridge has
// published them.
func (b *Bridge) ObserveRecognizer(r *snapwheel.Recognizer) {
	for _, k := range snapwheel.GestureKinds() {
		next := r.Listener(k)
		r.SetListener(k, snapwheel.GestureFunc(func(e snapwheel.GestureEvent) {
			b.HandleGesture(e)
			if next != nil {
				next.HandleGesture(e)
			}
		}))
	}
}

// ObserveScroller publishes every selection s reports, then forwards it to
// the listener s already had.
func (b *Bridge) ObserveScroller(s *snapwheel.Scroller) {
	next := s.SelectionListener()
	s.SetSelectionListener(snapwheel.SelectionFunc(func(key any, ok bool) {
		b.SelectionChanged(key, ok)
		if next != nil {
			next.SelectionChanged(key, ok)
		}
	}))
}
