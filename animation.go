package snapwheel

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is a running offset animation.
type Animation interface {
	// Cancel stops the animation where it is. The completion callback does
	// not run. Cancelling twice is a no-op.
	Cancel()
}

// Animator interpolates an offset from one value to another over a duration.
// step receives every intermediate value; done runs once after the final
// value has been delivered through step.
type Animator interface {
	Animate(from, to float64, d time.Duration, step func(float64), done func()) Animation
}

// --- Duration strategies ---

const (
	DefaultItemDuration = 100 * time.Millisecond  // per item scrolled
	DefaultMinDuration  = 1000 * time.Millisecond // floor for one swipe animation
)

// DurationStrategy computes how long a snap animation across distance pixels
// takes for a list of count items with the given item height.
type DurationStrategy func(distance, itemHeight float64, count int) time.Duration

// PerItemDuration scales with the number of items travelled, floored at min.
func PerItemDuration(perItem, min time.Duration) DurationStrategy {
	return func(distance, itemHeight float64, count int) time.Duration {
		if distance < 0 {
			distance = -distance
		}
		d := time.Duration(distance / itemHeight * float64(perItem))
		if d < min {
			d = min
		}
		return d
	}
}

// FixedDuration always returns d.
func FixedDuration(d time.Duration) DurationStrategy {
	return func(float64, float64, int) time.Duration { return d }
}

// ListDuration gives every swipe the same budget for the whole list,
// TotalDurationFor(count), however far it travels.
func ListDuration() DurationStrategy {
	return func(_, _ float64, count int) time.Duration { return TotalDurationFor(count) }
}

// TotalDurationFor is the time budget for scrolling a whole list of count
// items: count*DefaultItemDuration capped at DefaultMinDuration.
func TotalDurationFor(count int) time.Duration {
	d := time.Duration(count) * DefaultItemDuration
	if d > DefaultMinDuration {
		d = DefaultMinDuration
	}
	return d
}

// --- Tween animator ---

// offsetTween is one live animation owned by a TweenAnimator.
type offsetTween struct {
	tween    *gween.Tween
	to       float64
	step     func(float64)
	done     func()
	finished bool
	owner    *TweenAnimator
}

// Cancel implements Animation.
func (t *offsetTween) Cancel() {
	if t.finished {
		return
	}
	t.finished = true
	t.owner.remove(t)
}

// TweenAnimator runs offset animations with gween. There is no background
// goroutine: the owner calls Update(dt) once per frame.
type TweenAnimator struct {
	easing ease.TweenFunc
	live   []*offsetTween
}

// NewTweenAnimator creates an animator using fn for easing. A nil fn selects
// ease.Linear.
func NewTweenAnimator(fn ease.TweenFunc) *TweenAnimator {
	if fn == nil {
		fn = ease.Linear
	}
	return &TweenAnimator{easing: fn}
}

// Animate implements Animator.
func (a *TweenAnimator) Animate(from, to float64, d time.Duration, step func(float64), done func()) Animation {
	t := &offsetTween{
		tween: gween.New(float32(from), float32(to), float32(d.Seconds()), a.easing),
		to:    to,
		step:  step,
		done:  done,
		owner: a,
	}
	a.live = append(a.live, t)
	return t
}

// Active returns the number of running animations.
func (a *TweenAnimator) Active() int { return len(a.live) }

// Update advances every running animation by dt seconds. The final step
// delivers the exact target value rather than the float32 tween output.
func (a *TweenAnimator) Update(dt float32) {
	if len(a.live) == 0 {
		return
	}
	// Callbacks may start or cancel animations, so iterate over a snapshot.
	snapshot := append([]*offsetTween(nil), a.live...)
	for _, t := range snapshot {
		if t.finished {
			continue
		}
		val, finished := t.tween.Update(dt)
		if finished {
			t.finished = true
			a.remove(t)
			if t.step != nil {
				t.step(t.to)
			}
			if t.done != nil {
				t.done()
			}
			continue
		}
		if t.step != nil {
			t.step(float64(val))
		}
	}
}

func (a *TweenAnimator) remove(t *offsetTween) {
	for i, x := range a.live {
		if x == t {
			copy(a.live[i:], a.live[i+1:])
			a.live[len(a.live)-1] = nil
			a.live = a.live[:len(a.live)-1]
			return
		}
	}
}

// EaseByName maps a configuration name to a gween easing function.
// Unknown names return ease.Linear and false.
func EaseByName(name string) (ease.TweenFunc, bool) {
	switch name {
	case "", "linear":
		return ease.Linear, true
	case "in-quad":
		return ease.InQuad, true
	case "out-quad":
		return ease.OutQuad, true
	case "in-out-quad":
		return ease.InOutQuad, true
	case "out-cubic":
		return ease.OutCubic, true
	case "in-out-cubic":
		return ease.InOutCubic, true
	case "out-quint":
		return ease.OutQuint, true
	case "out-expo":
		return ease.OutExpo, true
	case "out-back":
		return ease.OutBack, true
	}
	return ease.Linear, false
}
