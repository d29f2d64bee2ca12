// Package snapwheel is a touch-driven vertical picker for [Ebitengine].
//
// It classifies raw contacts into gestures and keeps a scrollable list of
// items snapped to a fixed display anchor. The pieces can be used on their
// own or wired together by [Widget]:
//
//	cfg := snapwheel.DefaultConfig()
//	w, err := snapwheel.NewWidget(cfg, snapwheel.Rect{Width: 200, Height: 240})
//	if err != nil { ... }
//	w.Scroller.SetSelectionListener(snapwheel.SelectionFunc(func(key any, ok bool) {
//		log.Printf("selected %v", key)
//	}))
//	_ = w.Scroller.SetItems(items)
//	_ = snapwheel.Run(w, snapwheel.RunConfig{Title: "Picker", Width: 200, Height: 240})
//
// # Gestures
//
// A [Recognizer] tracks one contact at a time and emits start, move, end,
// swipe (left, right, up, down) and cancel gestures to one [GestureListener]
// per kind. A release within the time threshold that moved beyond the
// distance threshold is a swipe; a slower release is a plain end; a quick
// release that barely moved (a tap) emits nothing. A [ContactEndListener]
// hears about every release, taps included.
//
// # Snapping
//
// A [Scroller] consumes gestures. Moves drag the list within its bounds,
// vertical swipes animate it to the first or last item, and every rest
// position is snapped so that one item sits exactly on the anchor. Each
// settle notifies the [SelectionListener], even when the key is unchanged.
//
// Layout comes from a [Geometry] and animation from an [Animator];
// [TweenAnimator] implements the latter with [gween].
//
// # Input
//
// [Surface] polls touch and mouse input each frame and feeds a Recognizer.
// Contacts can also be injected, and [TestRunner] replays JSON gesture
// scripts, headlessly through [Replay] if needed.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package snapwheel
