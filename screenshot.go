package snapwheel

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the widget viewport, taken at the
// end of the next Draw. The PNG is written to ScreenshotDir with a
// timestamped filename. Safe to call from Update or Draw.
func (w *Widget) Screenshot(label string) {
	w.screenshotQueue = append(w.screenshotQueue, label)
}

// flushScreenshots captures the viewport for every queued label and writes
// each as a PNG file. Called at the end of Widget.Draw.
func (w *Widget) flushScreenshots(screen *ebiten.Image) {
	if len(w.screenshotQueue) == 0 {
		return
	}
	defer func() { w.screenshotQueue = w.screenshotQueue[:0] }()

	if err := os.MkdirAll(w.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[snapwheel] screenshot: mkdir %s: %v\n", w.ScreenshotDir, err)
		return
	}

	src := screen
	if !w.Viewport.IsEmpty() {
		vp := image.Rect(int(w.Viewport.X), int(w.Viewport.Y),
			int(w.Viewport.X+w.Viewport.Width), int(w.Viewport.Y+w.Viewport.Height))
		if r := vp.Intersect(screen.Bounds()); !r.Empty() {
			src = screen.SubImage(r).(*ebiten.Image)
		}
	}
	img := readNRGBA(src)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range w.screenshotQueue {
		path := filepath.Join(w.ScreenshotDir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[snapwheel] screenshot: %v\n", err)
		}
	}
}

// readNRGBA copies img into a straight-alpha image.
func readNRGBA(img *ebiten.Image) *image.NRGBA {
	b := img.Bounds()
	wd, ht := b.Dx(), b.Dy()
	pixels := make([]byte, 4*wd*ht)
	img.ReadPixels(pixels)

	out := image.NewNRGBA(image.Rect(0, 0, wd, ht))
	for i := 0; i < len(pixels); i += 4 {
		r, g, bl, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			bl = uint8(min(int(bl)*255/int(a), 255))
		}
		out.Pix[i] = r
		out.Pix[i+1] = g
		out.Pix[i+2] = bl
		out.Pix[i+3] = a
	}
	return out
}

func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
