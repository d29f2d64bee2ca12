package snapwheel

import (
	"fmt"
	"io"
	"os"
)

// debugOutput is where debug tracing is written. Tests swap it out.
var debugOutput io.Writer = os.Stderr

// debugf prints a state-machine trace line to stderr when debug mode is on.
func (s *Scroller) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[snapwheel] "+format+"\n", args...)
}

// debugCheckBounds warns on stderr when a resting offset breaks the snap
// guarantee. Only called in debug mode.
func (s *Scroller) debugCheckBounds() {
	if !s.debug || s.phase != PhaseIdle {
		return
	}
	l, err := readLayout(s.geom, len(s.items))
	if err != nil {
		return
	}
	lo, hi := l.bounds()
	if s.offset < lo || s.offset > hi {
		_, _ = fmt.Fprintf(debugOutput, "[snapwheel] warning: offset %.2f outside [%.2f, %.2f]\n",
			s.offset, lo, hi)
		return
	}
	if snapped, _ := l.snap(s.offset); snapped != s.offset {
		_, _ = fmt.Fprintf(debugOutput, "[snapwheel] warning: resting offset %.2f not aligned (want %.2f)\n",
			s.offset, snapped)
	}
}
