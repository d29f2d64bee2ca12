package snapwheel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget wires a Surface, Recognizer, Scroller and TweenAnimator into a
// vertical picker that can be dropped into an Ebitengine game. Call Update
// and Draw from the game's own Update and Draw, or use Run.
type Widget struct {
	Surface    *Surface
	Recognizer *Recognizer
	Scroller   *Scroller
	Animator   *TweenAnimator

	// Viewport is the screen rectangle the picker occupies. Contacts must
	// start inside it.
	Viewport Rect

	// Colors used by Draw.
	Background color.Color
	Highlight  color.Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	cfg             Config
	runner          *TestRunner
	debug           bool
	screenshotQueue []string
}

// NewWidget builds a picker from cfg, positioned in viewport. The config is
// validated first.
func NewWidget(cfg Config, viewport Rect) (*Widget, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fn, _ := EaseByName(cfg.Easing)
	w := &Widget{
		Recognizer: cfg.NewRecognizer(),
		Animator:   NewTweenAnimator(fn),
		Viewport:   viewport,
		Background: color.RGBA{0x20, 0x22, 0x2a, 0xff},
		Highlight:  color.RGBA{0x3a, 0x6e, 0xa5, 0xff},
		cfg:        cfg,
		debug:      cfg.Debug,

		ScreenshotDir: "screenshots",
	}
	w.Surface = NewSurface(w.Recognizer)
	w.Surface.Bounds = viewport
	w.Scroller = NewScroller(w, w.Animator,
		WithDurationStrategy(cfg.DurationStrategy()),
		WithDebug(cfg.Debug),
	)
	w.Scroller.Attach(w.Recognizer)
	return w, nil
}

// ItemHeight implements Geometry.
func (w *Widget) ItemHeight() float64 { return w.cfg.ItemHeight }

// DisplayAnchorTop implements Geometry. The anchor is measured from the top
// of the viewport.
func (w *Widget) DisplayAnchorTop() float64 { return w.cfg.AnchorTop }

// Config returns the configuration the widget was built with.
func (w *Widget) Config() Config { return w.cfg }

// SetDebugMode enables state-transition tracing and resting-offset checks on
// stderr.
func (w *Widget) SetDebugMode(enabled bool) {
	w.debug = enabled
	w.Scroller.SetDebugMode(enabled)
}

// SetTestRunner attaches a scripted gesture runner. Its step runs at the
// start of every Update.
func (w *Widget) SetTestRunner(r *TestRunner) {
	w.runner = r
}

// Update runs one frame: scripted steps, input, then animation by dt seconds.
func (w *Widget) Update(dt float32) {
	if w.runner != nil {
		w.runner.step(w)
	}
	w.Surface.Update()
	w.Animator.Update(dt)
	if w.debug {
		w.Scroller.debugCheckBounds()
	}
}

// Draw paints the rows and the anchor band into screen.
func (w *Widget) Draw(screen *ebiten.Image) {
	vp := w.Viewport
	vector.DrawFilledRect(screen, float32(vp.X), float32(vp.Y), float32(vp.Width), float32(vp.Height), w.Background, false)

	h := w.cfg.ItemHeight
	anchorY := vp.Y + w.cfg.AnchorTop
	vector.DrawFilledRect(screen, float32(vp.X), float32(anchorY), float32(vp.Width), float32(h), w.Highlight, false)

	top := vp.Y + w.Scroller.OffsetTop()
	for i, it := range w.Scroller.Items() {
		y := top + float64(i)*h
		if y+h < vp.Y || y > vp.Y+vp.Height {
			continue
		}
		ebitenutil.DebugPrintAt(screen, it.Label, int(vp.X)+8, int(y+h/2)-8)
	}
	w.flushScreenshots(screen)
}

// RunConfig describes the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowStatus prints the current selection in the top-left corner.
	ShowStatus bool
	// ShowFPS adds the measured FPS and TPS to the status line.
	ShowFPS bool
}

// widgetGame adapts a Widget to ebiten.Game.
type widgetGame struct {
	w   *Widget
	cfg RunConfig
}

func (g *widgetGame) Update() error {
	g.w.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (g *widgetGame) Draw(screen *ebiten.Image) {
	g.w.Draw(screen)
	if g.cfg.ShowStatus {
		key, ok := g.w.Scroller.Selected()
		msg := "selected: none"
		if ok {
			msg = fmt.Sprintf("selected: %v", key)
		}
		if g.cfg.ShowFPS {
			msg += fmt.Sprintf("\nFPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (g *widgetGame) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs w until the window is closed.
func Run(w *Widget, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 320, 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&widgetGame{w: w, cfg: cfg})
}
