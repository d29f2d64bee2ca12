package snapwheel

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoLayout is returned when the geometry reports no usable item height.
var ErrNoLayout = errors.New("snapwheel: layout unavailable")

// Geometry reports the layout measurements a Scroller snaps against. It is
// normally backed by the renderer's computed layout and is queried once per
// operation.
type Geometry interface {
	// ItemHeight is the height of one item row in pixels.
	ItemHeight() float64
	// DisplayAnchorTop is the Y coordinate of the fixed line items align to.
	DisplayAnchorTop() float64
}

// FixedGeometry is a Geometry with constant measurements.
type FixedGeometry struct {
	Height float64
	Anchor float64
}

// ItemHeight implements Geometry.
func (g FixedGeometry) ItemHeight() float64 { return g.Height }

// DisplayAnchorTop implements Geometry.
func (g FixedGeometry) DisplayAnchorTop() float64 { return g.Anchor }

// layout is one consistent read of a Geometry.
type layout struct {
	itemHeight float64
	anchor     float64
	count      int
}

// readLayout queries geom once and validates the item height.
func readLayout(geom Geometry, count int) (layout, error) {
	if geom == nil {
		return layout{}, fmt.Errorf("%w: no geometry provider", ErrNoLayout)
	}
	h := geom.ItemHeight()
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return layout{}, fmt.Errorf("%w: item height %v", ErrNoLayout, h)
	}
	a := geom.DisplayAnchorTop()
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return layout{}, fmt.Errorf("%w: display anchor %v", ErrNoLayout, a)
	}
	return layout{itemHeight: h, anchor: a, count: count}, nil
}

// Bounds returns the range offsetTop may take for count items: min aligns the
// last item with the anchor, max aligns the first. With no items both bounds
// equal anchor.
func Bounds(anchor, itemHeight float64, count int) (min, max float64) {
	if count <= 1 {
		return anchor, anchor
	}
	return anchor - float64(count-1)*itemHeight, anchor
}

// OffsetForIndex returns the offsetTop that aligns item index with the anchor.
func OffsetForIndex(anchor, itemHeight float64, index int) float64 {
	return anchor - float64(index)*itemHeight
}

// Snap rounds offset to the nearest item boundary and returns the aligned
// offset together with the item index now sitting on the anchor. The index
// is clamped to [0, count-1]; with no items it is 0 and the offset is anchor.
// Snap is idempotent. itemHeight must be positive.
func Snap(offset, anchor, itemHeight float64, count int) (float64, int) {
	// Clamped first so the index conversion stays defined for any offset.
	delta := anchor - offset
	if !(delta > 0) {
		delta = 0
	}
	if span := float64(max(count-1, 0)) * itemHeight; delta > span {
		delta = span
	}
	idx := int(math.Floor(delta / itemHeight))
	rem := delta - float64(idx)*itemHeight
	if rem >= itemHeight/2 {
		idx++
	}
	idx = clampIndex(idx, count)
	return OffsetForIndex(anchor, itemHeight, idx), idx
}

func clampIndex(idx, count int) int {
	if idx >= count {
		idx = count - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func (l layout) bounds() (float64, float64) {
	return Bounds(l.anchor, l.itemHeight, l.count)
}

func (l layout) snap(offset float64) (float64, int) {
	return Snap(offset, l.anchor, l.itemHeight, l.count)
}

// inBounds reports whether offset keeps the list inside the anchor region.
func (l layout) inBounds(offset float64) bool {
	lo, hi := l.bounds()
	return offset >= lo && offset <= hi
}
