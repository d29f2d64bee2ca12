package ecs

import (
	"testing"
	"time"

	"github.com/teqfw/snapwheel"

	"github.com/yohamta/donburi"
)

func TestNewDonburiBridge(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiBridge(world) == nil {
		t.Fatal("NewDonburiBridge returned nil")
	}
}

func TestBridge_ImplementsListeners(t *testing.T) {
	b := NewDonburiBridge(donburi.NewWorld())
	var _ snapwheel.GestureListener = b
	var _ snapwheel.SelectionListener = b
}

func TestBridge_HandleGesture(t *testing.T) {
	world := donburi.NewWorld()
	b := NewDonburiBridge(world)

	var received []snapwheel.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e snapwheel.GestureEvent) {
		received = append(received, e)
	})

	b.HandleGesture(snapwheel.GestureEvent{Kind: snapwheel.GestureStart, Start: snapwheel.Vec2{X: 1, Y: 2}})
	b.HandleGesture(snapwheel.GestureEvent{Kind: snapwheel.GestureSwipeUp, HasEnd: true})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Kind != snapwheel.GestureStart || received[0].Start.Y != 2 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Kind != snapwheel.GestureSwipeUp {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestBridge_SelectionChanged(t *testing.T) {
	world := donburi.NewWorld()
	b := NewDonburiBridge(world)

	var received []SelectionEvent
	SelectionEventType.Subscribe(world, func(w donburi.World, e SelectionEvent) {
		received = append(received, e)
	})

	b.SelectionChanged("b", true)
	b.SelectionChanged(nil, false)
	SelectionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Key != "b" || !received[0].OK {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].OK {
		t.Errorf("event 1 should report no selection: %+v", received[1])
	}
}

func TestBridge_ObserveKeepsExistingListeners(t *testing.T) {
	world := donburi.NewWorld()
	b := NewDonburiBridge(world)

	s := snapwheel.NewScroller(snapwheel.FixedGeometry{Height: 40, Anchor: 100}, nil)
	var direct []any
	s.SetSelectionListener(snapwheel.SelectionFunc(func(key any, ok bool) {
		direct = append(direct, key)
	}))
	r := snapwheel.NewRecognizer(500*time.Millisecond, 10)
	s.Attach(r)

	b.ObserveRecognizer(r)
	b.ObserveScroller(s)

	var gestures []snapwheel.GestureKind
	GestureEventType.Subscribe(world, func(w donburi.World, e snapwheel.GestureEvent) {
		gestures = append(gestures, e.Kind)
	})
	var selections []any
	SelectionEventType.Subscribe(world, func(w donburi.World, e SelectionEvent) {
		selections = append(selections, e.Key)
	})

	if err := s.SetItems([]snapwheel.Item{{Key: "a"}, {Key: "b"}, {Key: "c"}}); err != nil {
		t.Fatal(err)
	}

	t0 := time.Unix(0, 0)
	r.Start(snapwheel.Vec2{Y: 100}, t0)
	r.Move(snapwheel.Vec2{Y: 60}, t0.Add(100*time.Millisecond))
	r.End(snapwheel.Vec2{Y: 60}, t0.Add(time.Second))

	GestureEventType.ProcessEvents(world)
	SelectionEventType.ProcessEvents(world)

	wantKinds := []snapwheel.GestureKind{snapwheel.GestureStart, snapwheel.GestureMove, snapwheel.GestureEnd}
	if len(gestures) != len(wantKinds) {
		t.Fatalf("gestures = %v, want %v", gestures, wantKinds)
	}
	for i := range wantKinds {
		if gestures[i] != wantKinds[i] {
			t.Errorf("gesture %d = %v, want %v", i, gestures[i], wantKinds[i])
		}
	}

	// The scroller still received the gestures: dragged 40px up, one row.
	if key, _ := s.Selected(); key != "b" {
		t.Errorf("scroller selection = %v, want b", key)
	}
	if len(selections) == 0 || selections[len(selections)-1] != "b" {
		t.Errorf("published selections = %v", selections)
	}
	if len(direct) != len(selections) {
		t.Errorf("direct listener saw %d selections, bridge published %d", len(direct), len(selections))
	}
}
