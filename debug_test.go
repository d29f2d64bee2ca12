package snapwheel

import (
	"bytes"
	"strings"
	"testing"
)

// captureDebug redirects debug output for the duration of the test.
func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := debugOutput
	debugOutput = &buf
	t.Cleanup(func() { debugOutput = prev })
	return &buf
}

// ---- debugCheckBounds ------------------------------------------------------

func TestDebugCheckBounds_RestingOffsetSilent(t *testing.T) {
	buf := captureDebug(t)
	s, _, _ := newTestScroller(t, WithDebug(true))
	buf.Reset()

	s.debugCheckBounds()
	if buf.Len() != 0 {
		t.Errorf("aligned resting offset should not warn, got %q", buf.String())
	}
}

func TestDebugCheckBounds_OutOfBounds(t *testing.T) {
	buf := captureDebug(t)
	s, _, _ := newTestScroller(t, WithDebug(true))
	buf.Reset()

	s.offset = 500
	s.debugCheckBounds()
	if !strings.Contains(buf.String(), "outside") {
		t.Errorf("expected out-of-bounds warning, got %q", buf.String())
	}
}

func TestDebugCheckBounds_Unaligned(t *testing.T) {
	buf := captureDebug(t)
	s, _, _ := newTestScroller(t, WithDebug(true))
	buf.Reset()

	s.offset = 73
	s.debugCheckBounds()
	if !strings.Contains(buf.String(), "not aligned") {
		t.Errorf("expected alignment warning, got %q", buf.String())
	}
}

func TestDebugCheckBounds_SkippedWhileDragging(t *testing.T) {
	buf := captureDebug(t)
	s, _, _ := newTestScroller(t, WithDebug(true))
	if err := s.ContactStart(); err != nil {
		t.Fatal(err)
	}
	if err := s.Drag(-13); err != nil {
		t.Fatal(err)
	}
	buf.Reset()

	s.debugCheckBounds()
	if buf.Len() != 0 {
		t.Errorf("dragging offset should not be checked, got %q", buf.String())
	}
}

func TestDebugCheckBounds_DebugOff(t *testing.T) {
	buf := captureDebug(t)
	s, _, _ := newTestScroller(t)

	s.offset = 73
	s.debugCheckBounds()
	if buf.Len() != 0 {
		t.Errorf("debug off should be silent, got %q", buf.String())
	}
}

func TestDebugMode_Toggle(t *testing.T) {
	buf := captureDebug(t)
	s, _, _ := newTestScroller(t)
	_ = s.Freeze()
	if buf.Len() != 0 {
		t.Fatalf("unexpected trace with debug off: %q", buf.String())
	}
	s.SetDebugMode(true)
	_ = s.Freeze()
	if !strings.HasPrefix(buf.String(), "[snapwheel] ") {
		t.Errorf("expected prefixed trace, got %q", buf.String())
	}
}
