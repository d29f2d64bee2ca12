package snapwheel

import (
	"fmt"
	"time"
)

// Vec2 is a 2D point in surface coordinates. The origin is at the top-left,
// with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Item is one selectable entry of a scroller. Key identifies the entry to the
// caller; Label is what gets displayed.
type Item struct {
	Key   any
	Label string
}

// keyString normalizes a key for comparison. Keys supplied as 7 and "7"
// refer to the same item.
func keyString(key any) string {
	if key == nil {
		return ""
	}
	return fmt.Sprint(key)
}

// GestureKind identifies a classified gesture.
type GestureKind uint8

const (
	GestureStart      GestureKind = iota // contact began
	GestureMove                          // contact moved beyond the distance threshold
	GestureEnd                           // slow release (longer than the time threshold)
	GestureSwipeLeft                     // fast horizontal release toward -X
	GestureSwipeRight                    // fast horizontal release toward +X
	GestureSwipeUp                       // fast vertical release toward -Y
	GestureSwipeDown                     // fast vertical release toward +Y
	GestureCancel                        // platform aborted the contact
)

// gestureKindCount is the number of listener slots on a Recognizer.
const gestureKindCount = int(GestureCancel) + 1

var gestureKindNames = [gestureKindCount]string{
	"start", "move", "end", "swipe-left", "swipe-right", "swipe-up", "swipe-down", "cancel",
}

func (k GestureKind) String() string {
	if int(k) < gestureKindCount {
		return gestureKindNames[k]
	}
	return fmt.Sprintf("GestureKind(%d)", uint8(k))
}

// GestureKinds returns every gesture kind in declaration order.
func GestureKinds() []GestureKind {
	kinds := make([]GestureKind, gestureKindCount)
	for i := range kinds {
		kinds[i] = GestureKind(i)
	}
	return kinds
}

// IsSwipe reports whether k is one of the four swipe kinds.
func (k GestureKind) IsSwipe() bool {
	return k >= GestureSwipeLeft && k <= GestureSwipeDown
}

// ParseGestureKind maps a name produced by GestureKind.String back to a kind.
func ParseGestureKind(name string) (GestureKind, error) {
	for i, n := range gestureKindNames {
		if n == name {
			return GestureKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown gesture kind %q", name)
}

// Contact is the single pointer interaction a Recognizer is tracking.
type Contact struct {
	Position Vec2
	Start    time.Time
}

// GestureEvent describes one classified gesture. End and TimeEnd are only
// meaningful when HasEnd is true (move, end and swipe events). For cancel
// events TimeEnd holds the cancel time and HasEnd is false.
type GestureEvent struct {
	Kind      GestureKind
	Start     Vec2
	End       Vec2
	TimeStart time.Time
	TimeEnd   time.Time
	HasEnd    bool
}

// Delta returns End - Start, or the zero vector when the event has no end
// point.
func (e GestureEvent) Delta() Vec2 {
	if !e.HasEnd {
		return Vec2{}
	}
	return e.End.Sub(e.Start)
}

// Elapsed returns TimeEnd - TimeStart, or zero when TimeEnd is unset.
func (e GestureEvent) Elapsed() time.Duration {
	if e.TimeEnd.IsZero() {
		return 0
	}
	return e.TimeEnd.Sub(e.TimeStart)
}
