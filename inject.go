package snapwheel

// syntheticContact is one injected contact event, consumed one per frame.
type syntheticContact struct {
	pos     Vec2
	pressed bool
	cancel  bool
}

// InjectPress queues a contact press at (x, y). The event is consumed on the
// next Update.
func (s *Surface) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticContact{pos: Vec2{X: x, Y: y}, pressed: true})
}

// InjectMove queues a move of the held contact to (x, y). Use it between
// InjectPress and InjectRelease to simulate a drag.
func (s *Surface) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticContact{pos: Vec2{X: x, Y: y}, pressed: true})
}

// InjectRelease queues a release of the held contact at (x, y).
func (s *Surface) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticContact{pos: Vec2{X: x, Y: y}})
}

// InjectCancel queues an aborted contact.
func (s *Surface) InjectCancel() {
	s.injectQueue = append(s.injectQueue, syntheticContact{cancel: true})
}

// InjectTap queues a press followed by a release at the same point.
// Consumes two frames.
func (s *Surface) InjectTap(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, and release at (toX, toY). The sequence consumes
// frames frames; the minimum is 2.
func (s *Surface) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (s *Surface) Pending() int { return len(s.injectQueue) }

// processInjected pops one synthetic event and feeds it through the contact
// state machine. Returns true if an event was consumed.
func (s *Surface) processInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if evt.cancel {
		s.cancel()
		return true
	}
	if s.source != sourceNone && s.source != sourceInjected {
		// A real device holds the contact; hand it over.
		s.cancel()
	}
	if evt.pressed && s.source == sourceNone && !s.accepts(evt.pos) {
		return true
	}
	s.process(sourceInjected, evt.pos, evt.pressed)
	return true
}
