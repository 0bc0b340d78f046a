package box

import (
	"ibox/geom"
)

// Proximity reports which element edges the pointer is near.
type Proximity struct {
	Left, Right, Top, Bottom bool
}

func (p Proximity) any() bool {
	return p.Left || p.Right || p.Top || p.Bottom
}

// nearEdges classifies the pointer against the element bounds. The
// last result is false while the element is not mounted; callers must
// treat that as a no-op, not an error.
func (c *Controller) nearEdges(pt geom.Point) (geom.Rect, Proximity, bool) {
	rect, ok := c.surface.Bounds()
	if !ok {
		return geom.Rect{}, Proximity{}, false
	}
	offsetX := pt.X - rect.Left()
	offsetY := pt.Y - rect.Top()
	near := Proximity{
		Left:   offsetX <= c.threshold,
		Right:  rect.Width-offsetX <= c.threshold,
		Top:    offsetY <= c.threshold,
		Bottom: rect.Height-offsetY <= c.threshold,
	}
	return rect, near, true
}
