// Package box implements pointer-driven drag-and-resize interaction
// for a rectangular element on a host surface. The controller owns the
// element's position, size and cursor hint, classifies pointer
// proximity to the element edges, and converts pointer movement into
// state updates while an interaction is in progress.
package box

import (
	"ibox/events"
	"ibox/geom"
)

// DefaultEdgeThreshold is the distance, in surface units, within which
// the pointer counts as near an element edge.
const DefaultEdgeThreshold = 16

// Surface is the handle binding a controller to the rendered element.
// Bounds reports the element's bounding rect in surface coordinates
// and false while the element is not mounted. Pointer events arriving
// before the element is measurable are silently ignored.
type Surface interface {
	Bounds() (geom.Rect, bool)
}

// State is the reactive output of a controller, read by the rendering
// layer. X and Y are the top-left offset of the element in surface
// coordinates. Width and Height are not clamped and may go negative
// when a resize is dragged past the opposite edge.
type State struct {
	X, Y          float64
	Width, Height float64
	Cursor        Cursor
}

func (s *State) Rect() geom.Rect {
	return geom.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

type Controller struct {
	surface    Surface
	threshold  float64
	state      State
	window     dispatcher
	session    *session
	detachMove func()
	measured   bool
}

// NewController binds a controller to an element handle. A threshold
// of zero or less selects DefaultEdgeThreshold.
func NewController(surface Surface, threshold float64) *Controller {
	if threshold <= 0 {
		threshold = DefaultEdgeThreshold
	}
	return &Controller{surface: surface, threshold: threshold}
}

func (c *Controller) State() *State {
	return &c.state
}

func (c *Controller) EdgeThreshold() float64 {
	return c.threshold
}

// SetEdgeThreshold applies a new threshold. It affects the next
// classification only; an in-progress session keeps its anchors.
func (c *Controller) SetEdgeThreshold(threshold float64) {
	if threshold <= 0 {
		threshold = DefaultEdgeThreshold
	}
	c.threshold = threshold
}

// SetPlacement sets the element's placeholder geometry before the
// element is mounted. Width and height are overridden by the measured
// bounds once the element mounts.
func (c *Controller) SetPlacement(rect geom.Rect) {
	c.state.X, c.state.Y = rect.X, rect.Y
	c.state.Width, c.state.Height = rect.Width, rect.Height
}

func (c *Controller) HandleEvent(event events.Event) {
	switch event := event.(type) {
	case events.PointerDown:
		c.pointerDown(event.Point)

	case events.PointerMove:
		c.window.pointerMove(event.Point)
		if c.session == nil {
			c.hover(event.Point)
		}

	case events.PointerUp:
		c.window.pointerUp(event.Point)

	case events.Mounted:
		c.mounted(event.Rect)
	}
}

// Idle reports whether no interaction session is in progress.
func (c *Controller) Idle() bool {
	return c.session == nil
}

// Teardown detaches any transient listeners and drops an in-progress
// session. The controller remains usable afterwards.
func (c *Controller) Teardown() {
	c.endSession()
	c.window.reset()
}

func (c *Controller) pointerDown(pt geom.Point) {
	if c.session != nil {
		return
	}
	rect, near, ok := c.nearEdges(pt)
	if !ok || !rect.Contains(pt) {
		return
	}
	if near.any() {
		c.session = newResizeSession(near, pt, c.state)
	} else {
		c.session = newMoveSession(pt, c.state)
	}
	c.detachMove = c.window.onMove(c.sessionMove)
	c.window.onceUp(c.sessionUp)
}

func (c *Controller) hover(pt geom.Point) {
	rect, near, ok := c.nearEdges(pt)
	if !ok {
		return
	}
	if rect.Contains(pt) {
		c.state.Cursor = cursorFor(near)
	} else {
		c.state.Cursor = CursorDefault
	}
}

func (c *Controller) mounted(rect geom.Rect) {
	if c.measured {
		return
	}
	c.measured = true
	c.state.Width = rect.Width
	c.state.Height = rect.Height
}

func (c *Controller) sessionMove(pt geom.Point) {
	s := c.session
	if s == nil {
		return
	}
	switch s.kind {
	case kindMove:
		c.state.X = pt.X - s.grab.X
		c.state.Y = pt.Y - s.grab.Y

	case kindResize:
		dx := pt.X - s.anchor.X
		dy := pt.Y - s.anchor.Y
		switch s.horizontal {
		case horizLeft:
			c.state.Width = s.anchorSize.Width - dx
			c.state.X = s.anchorPos.X + dx
		case horizRight:
			c.state.Width = s.anchorSize.Width + dx
		}
		switch s.vertical {
		case vertTop:
			c.state.Height = s.anchorSize.Height - dy
			c.state.Y = s.anchorPos.Y + dy
		case vertBottom:
			c.state.Height = s.anchorSize.Height + dy
		}
	}
}

func (c *Controller) sessionUp(geom.Point) {
	c.endSession()
}

func (c *Controller) endSession() {
	c.session = nil
	if c.detachMove != nil {
		c.detachMove()
		c.detachMove = nil
	}
}

// SurfaceHandle is a Surface the host mutates as it renders the
// element. Before the first Set the element counts as unmounted.
type SurfaceHandle struct {
	rect    geom.Rect
	mounted bool
}

func (h *SurfaceHandle) Set(rect geom.Rect) {
	h.rect = rect
	h.mounted = true
}

func (h *SurfaceHandle) Bounds() (geom.Rect, bool) {
	return h.rect, h.mounted
}
