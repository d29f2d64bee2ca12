package snapwheel

import (
	"encoding/json"
	"fmt"
	"time"
)

// testStep represents a single action in a gesture script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Label  string  `json:"label,omitempty"`
}

// testScript is the top-level JSON structure for a gesture script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "cancel": true,
	"tap": true, "drag": true, "wait": true, "screenshot": true,
}

// TestRunner sequences injected contacts across frames so gesture handling
// can be exercised without a touch screen. Attach it to a Widget with
// SetTestRunner or drive it headlessly with Replay.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON gesture script:
//
//	{"steps": [
//	  {"action": "drag", "fromX": 50, "fromY": 200, "toX": 50, "toY": 120, "frames": 20},
//	  {"action": "wait", "frames": 30}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Widget.Update.
func (r *TestRunner) step(w *Widget) {
	if r.done {
		return
	}
	s := w.Surface
	// Wait for pending injections to drain before advancing.
	if s.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "cancel":
		s.InjectCancel()
	case "tap":
		s.InjectTap(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "screenshot":
		w.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && s.Pending() == 0 {
		r.done = true
	}
}

// Selection is one selection notification recorded during a replay.
type Selection struct {
	Frame int
	Key   any
	OK    bool
}

// ReplayResult is what a headless replay observed.
type ReplayResult struct {
	Frames     int
	Gestures   []GestureEvent
	Selections []Selection
	Final      ScrollState
}

// Replay drives w with r at tps frames per second on a simulated clock
// until the script is done, no contact is held and no animation runs.
// Device input is disabled for the duration. It fails if that takes longer
// than maxFrames.
func Replay(w *Widget, r *TestRunner, tps, maxFrames int) (ReplayResult, error) {
	if tps <= 0 {
		tps = 60
	}
	frame := time.Second / time.Duration(tps)
	clock := time.Unix(0, 0)

	var res ReplayResult
	prevDevices := w.Surface.devices
	w.Surface.SetDeviceInput(false)
	defer w.Surface.SetDeviceInput(prevDevices)
	w.Surface.SetClock(func() time.Time { return clock })
	defer w.Surface.SetClock(nil)

	rec := w.Recognizer
	saved := rec.listeners
	defer func() { rec.listeners = saved }()
	for k := range rec.listeners {
		inner := rec.listeners[k]
		rec.listeners[k] = GestureFunc(func(e GestureEvent) {
			res.Gestures = append(res.Gestures, e)
			if inner != nil {
				inner.HandleGesture(e)
			}
		})
	}
	prevSel := w.Scroller.listener
	w.Scroller.listener = SelectionFunc(func(key any, ok bool) {
		res.Selections = append(res.Selections, Selection{Frame: res.Frames, Key: key, OK: ok})
		if prevSel != nil {
			prevSel.SelectionChanged(key, ok)
		}
	})
	defer func() { w.Scroller.listener = prevSel }()

	w.SetTestRunner(r)
	defer w.SetTestRunner(nil)
	// Nothing is drawn headlessly, so captures requested by the script are
	// dropped rather than left for the next Draw.
	defer func() { w.screenshotQueue = w.screenshotQueue[:0] }()

	for res.Frames < maxFrames {
		res.Frames++
		clock = clock.Add(frame)
		w.Update(float32(frame.Seconds()))
		if r.Done() && w.Surface.Pending() == 0 && !w.Surface.Tracking() && w.Animator.Active() == 0 {
			res.Final = w.Scroller.State()
			return res, nil
		}
	}
	res.Final = w.Scroller.State()
	return res, fmt.Errorf("replay did not settle within %d frames", maxFrames)
}
