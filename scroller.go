package snapwheel

import (
	"fmt"
	"math"
)

// Phase is the scroller's position in its gesture state machine.
type Phase uint8

const (
	PhaseIdle      Phase = iota // at rest and snapped
	PhaseDragging               // a contact is active and may move the list
	PhaseAnimating              // a swipe animation is in flight
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseAnimating:
		return "animating"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// SelectionListener is notified each time the scroller settles.
type SelectionListener interface {
	// SelectionChanged receives the key of the item on the display anchor.
	// ok is false when no item could be selected (empty list).
	SelectionChanged(key any, ok bool)
}

// SelectionFunc adapts a plain function to SelectionListener.
type SelectionFunc func(key any, ok bool)

// SelectionChanged calls f(key, ok).
func (f SelectionFunc) SelectionChanged(key any, ok bool) { f(key, ok) }

// ScrollState is a snapshot of a Scroller.
type ScrollState struct {
	OffsetTop   float64
	SelectedKey any
	Selected    bool
	Phase       Phase
}

// ScrollerOption configures a Scroller at construction.
type ScrollerOption func(*Scroller)

// WithDurationStrategy sets how swipe animation durations are computed.
// The default is PerItemDuration(DefaultItemDuration, DefaultMinDuration).
func WithDurationStrategy(fn DurationStrategy) ScrollerOption {
	return func(s *Scroller) {
		if fn != nil {
			s.duration = fn
		}
	}
}

// WithSelectionListener sets the listener notified on every settle.
func WithSelectionListener(l SelectionListener) ScrollerOption {
	return func(s *Scroller) { s.listener = l }
}

// WithDebug enables state-transition tracing on stderr.
func WithDebug(enabled bool) ScrollerOption {
	return func(s *Scroller) { s.debug = enabled }
}

// Scroller keeps an ordered item list aligned to a display anchor. It drags
// the list freely while a contact moves, animates to either end on a
// vertical swipe, and snaps to the nearest item whenever it comes to rest.
//
// Scroller implements GestureListener so it can be attached to a Recognizer
// directly. It is not safe for concurrent use: gesture handling, animation
// callbacks and item updates must all run on the same goroutine.
type Scroller struct {
	geom     Geometry
	anim     Animator
	duration DurationStrategy
	listener SelectionListener
	debug    bool

	items     []Item
	initValue any
	hasInit   bool

	offset      float64
	pinned      float64
	selectedKey any
	selected    bool
	phase       Phase

	pending Animation
	animSeq uint64
}

// NewScroller creates a Scroller over geom that animates through anim.
// The list starts empty; call SetItems to populate it.
func NewScroller(geom Geometry, anim Animator, opts ...ScrollerOption) *Scroller {
	s := &Scroller{
		geom:     geom,
		anim:     anim,
		duration: PerItemDuration(DefaultItemDuration, DefaultMinDuration),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetSelectionListener replaces the selection listener.
func (s *Scroller) SetSelectionListener(l SelectionListener) {
	s.listener = l
}

// SelectionListener returns the current selection listener, or nil.
func (s *Scroller) SelectionListener() SelectionListener { return s.listener }

// SetDebugMode toggles state-transition tracing on stderr.
func (s *Scroller) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Items returns the current item list. The returned slice MUST NOT be mutated.
func (s *Scroller) Items() []Item {
	return s.items
}

// State returns a snapshot of the scroll state.
func (s *Scroller) State() ScrollState {
	return ScrollState{
		OffsetTop:   s.offset,
		SelectedKey: s.selectedKey,
		Selected:    s.selected,
		Phase:       s.phase,
	}
}

// OffsetTop returns the current list offset.
func (s *Scroller) OffsetTop() float64 { return s.offset }

// Selected returns the key of the selected item.
func (s *Scroller) Selected() (any, bool) { return s.selectedKey, s.selected }

// Phase returns the current state-machine phase.
func (s *Scroller) Phase() Phase { return s.phase }

// SetItems replaces the item list, discards any in-flight animation and
// re-initializes the position from the current init value.
func (s *Scroller) SetItems(items []Item) error {
	s.items = append(s.items[:0:0], items...)
	s.cancelAnimation()
	s.phase = PhaseIdle
	s.debugf("items set (%d)", len(s.items))
	return s.Init()
}

// SetInitValue selects the item whose key matches key. Nothing happens when
// key equals the previous init value.
func (s *Scroller) SetInitValue(key any) error {
	if s.hasInit && sameKey(s.initValue, key) {
		return nil
	}
	s.initValue = key
	s.hasInit = true
	return s.Init()
}

func sameKey(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return keyString(a) == keyString(b)
}

// Init positions the list on the init value without animation and notifies
// the selection listener. An init value missing from the list selects the
// first item.
func (s *Scroller) Init() error {
	l, err := readLayout(s.geom, len(s.items))
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	idx := s.indexOf(s.initValue)
	if idx < 0 {
		idx = 0
	}
	s.offset = OffsetForIndex(l.anchor, l.itemHeight, idx)
	s.pinned = s.offset
	s.debugf("init at index %d offset %.1f", idx, s.offset)
	s.selectIndex(idx)
	return nil
}

func (s *Scroller) indexOf(key any) int {
	if !s.hasInit {
		return -1
	}
	want := keyString(key)
	for i, it := range s.items {
		if keyString(it.Key) == want {
			return i
		}
	}
	return -1
}

// Freeze snaps the list to the nearest item and notifies the selection
// listener. It is idempotent.
func (s *Scroller) Freeze() error {
	l, err := readLayout(s.geom, len(s.items))
	if err != nil {
		return fmt.Errorf("freeze: %w", err)
	}
	s.freeze(l)
	return nil
}

func (s *Scroller) freeze(l layout) {
	offset, idx := l.snap(s.offset)
	s.debugf("freeze %.1f -> %.1f (index %d)", s.offset, offset, idx)
	s.offset = offset
	s.selectIndex(idx)
}

func (s *Scroller) selectIndex(idx int) {
	if idx >= 0 && idx < len(s.items) {
		s.selectedKey = s.items[idx].Key
		s.selected = true
	} else {
		s.selectedKey = nil
		s.selected = false
	}
	if s.listener != nil {
		s.listener.SelectionChanged(s.selectedKey, s.selected)
	}
}

// ContactStart stops any running animation, snaps the current position and
// pins it as the reference for the drag that follows.
func (s *Scroller) ContactStart() error {
	l, err := readLayout(s.geom, len(s.items))
	if err != nil {
		return fmt.Errorf("contact start: %w", err)
	}
	s.cancelAnimation()
	s.freeze(l)
	s.pinned = s.offset
	s.phase = PhaseDragging
	return nil
}

// Drag moves the list by dy pixels relative to the pinned position. A move
// that would leave no item on the anchor is ignored.
func (s *Scroller) Drag(dy float64) error {
	l, err := readLayout(s.geom, len(s.items))
	if err != nil {
		return fmt.Errorf("drag: %w", err)
	}
	candidate := s.pinned + dy
	if !l.inBounds(candidate) {
		s.debugf("drag to %.1f rejected", candidate)
		return nil
	}
	s.offset = candidate
	s.phase = PhaseDragging
	return nil
}

// Release snaps the list immediately, ending the drag.
func (s *Scroller) Release() error {
	l, err := readLayout(s.geom, len(s.items))
	if err != nil {
		return fmt.Errorf("release: %w", err)
	}
	s.cancelAnimation()
	s.phase = PhaseIdle
	s.freeze(l)
	return nil
}

// SwipeUp animates the list to its last item.
func (s *Scroller) SwipeUp() error {
	l, err := readLayout(s.geom, len(s.items))
	if err != nil {
		return fmt.Errorf("swipe up: %w", err)
	}
	lo, _ := l.bounds()
	s.animateTo(l, lo)
	return nil
}

// SwipeDown animates the list to its first item.
func (s *Scroller) SwipeDown() error {
	l, err := readLayout(s.geom, len(s.items))
	if err != nil {
		return fmt.Errorf("swipe down: %w", err)
	}
	_, hi := l.bounds()
	s.animateTo(l, hi)
	return nil
}

// CancelContact returns the list to the position pinned at contact start,
// skipping any animation, and snaps.
func (s *Scroller) CancelContact() error {
	l, err := readLayout(s.geom, len(s.items))
	if err != nil {
		return fmt.Errorf("cancel: %w", err)
	}
	s.cancelAnimation()
	s.offset = s.pinned
	s.phase = PhaseIdle
	s.freeze(l)
	return nil
}

// animateTo starts the single animation this scroller may run, replacing any
// previous one. Without an animator the list jumps to target.
func (s *Scroller) animateTo(l layout, target float64) {
	s.cancelAnimation()
	from := s.offset
	if s.anim == nil {
		s.offset = target
		s.phase = PhaseIdle
		s.freeze(l)
		return
	}
	d := s.duration(math.Abs(target-from), l.itemHeight, l.count)
	s.animSeq++
	seq := s.animSeq
	s.phase = PhaseAnimating
	s.debugf("animate %.1f -> %.1f over %v", from, target, d)
	a := s.anim.Animate(from, target, d,
		func(v float64) {
			if seq == s.animSeq {
				s.offset = v
			}
		},
		func() {
			if seq != s.animSeq {
				return
			}
			s.pending = nil
			s.offset = target
			s.phase = PhaseIdle
			// Re-read layout: it may have changed while animating.
			if cur, err := readLayout(s.geom, len(s.items)); err == nil {
				s.freeze(cur)
			} else {
				s.freeze(l)
			}
		})
	if seq == s.animSeq && s.phase == PhaseAnimating {
		s.pending = a
	}
}

func (s *Scroller) cancelAnimation() {
	s.animSeq++
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
		s.debugf("animation cancelled at %.1f", s.offset)
	}
}

// HandleGesture implements GestureListener. Horizontal swipes settle the
// list like a plain release.
// It panics if the geometry cannot provide a layout, since there is no
// caller to report the error to.
func (s *Scroller) HandleGesture(e GestureEvent) {
	var err error
	switch e.Kind {
	case GestureStart:
		err = s.ContactStart()
	case GestureMove:
		err = s.Drag(e.End.Y - e.Start.Y)
	case GestureEnd, GestureSwipeLeft, GestureSwipeRight:
		err = s.Release()
	case GestureSwipeUp:
		err = s.SwipeUp()
	case GestureSwipeDown:
		err = s.SwipeDown()
	case GestureCancel:
		err = s.CancelContact()
	}
	if err != nil {
		panic("snapwheel: " + e.Kind.String() + ": " + err.Error())
	}
}

// ContactEnded implements ContactEndListener. A release that produced no
// gesture (a tap) leaves the list where the last drag put it, so it is
// snapped here.
func (s *Scroller) ContactEnded() {
	if s.phase != PhaseDragging {
		return
	}
	if err := s.Release(); err != nil {
		panic("snapwheel: contact end: " + err.Error())
	}
}

// Attach registers s on r for every gesture kind and for contact ends.
func (s *Scroller) Attach(r *Recognizer) {
	r.SetAllListeners(s)
	r.SetContactEndListener(s)
}
