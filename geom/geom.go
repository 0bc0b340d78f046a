package geom

import "fmt"

// Point is a pointer location in surface coordinates.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

type Size struct {
	Width, Height float64
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Rect is an element bounding box. Width and Height may be negative;
// the edge accessors normalize so Left <= Right and Top <= Bottom.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

func (r Rect) Right() float64 {
	if r.Width < 0 {
		return r.X
	}
	return r.X + r.Width
}

func (r Rect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

func (r Rect) Bottom() float64 {
	if r.Height < 0 {
		return r.Y
	}
	return r.Y + r.Height
}

func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Intersect clips r to bounds. Disjoint rects produce a zero-size rect
// on the nearest edge of bounds.
func (r Rect) Intersect(bounds Rect) Rect {
	left := max(r.Left(), bounds.Left())
	top := max(r.Top(), bounds.Top())
	right := min(r.Right(), bounds.Right())
	bottom := min(r.Bottom(), bounds.Bottom())
	if right < left {
		if r.Left() > bounds.Right() {
			left = bounds.Right()
		}
		right = left
	}
	if bottom < top {
		if r.Top() > bounds.Bottom() {
			top = bounds.Bottom()
		}
		bottom = top
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{X: %g, Y: %g, Width: %g, Height: %g}", r.X, r.Y, r.Width, r.Height)
}
