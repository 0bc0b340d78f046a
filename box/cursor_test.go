package box

import (
	"testing"

	"ibox/events"
	"ibox/geom"
)

// hover classification over a 200x100 element at (50,50), threshold 16
func hoverController() *Controller {
	handle := &SurfaceHandle{}
	handle.Set(geom.Rect{X: 50, Y: 50, Width: 200, Height: 100})
	return NewController(handle, 0)
}

func TestCursorSingleEdges(t *testing.T) {
	tests := []struct {
		name   string
		pt     geom.Point
		cursor Cursor
	}{
		{"left", geom.Point{X: 60, Y: 100}, CursorWResize},
		{"right", geom.Point{X: 240, Y: 100}, CursorEResize},
		{"top", geom.Point{X: 150, Y: 60}, CursorNResize},
		{"bottom", geom.Point{X: 150, Y: 140}, CursorSResize},
	}
	for _, test := range tests {
		c := hoverController()
		c.HandleEvent(events.PointerMove{Point: test.pt})
		if c.State().Cursor != test.cursor {
			t.Error(test.name, "Expected", test.cursor, "got", c.State().Cursor)
		}
	}
}

func TestCursorCorners(t *testing.T) {
	tests := []struct {
		name   string
		pt     geom.Point
		cursor Cursor
	}{
		{"top-left", geom.Point{X: 60, Y: 60}, CursorNWResize},
		{"top-right", geom.Point{X: 240, Y: 60}, CursorNEResize},
		{"bottom-left", geom.Point{X: 60, Y: 140}, CursorSWResize},
		{"bottom-right", geom.Point{X: 240, Y: 140}, CursorSEResize},
	}
	for _, test := range tests {
		c := hoverController()
		c.HandleEvent(events.PointerMove{Point: test.pt})
		if c.State().Cursor != test.cursor {
			t.Error(test.name, "Expected", test.cursor, "got", c.State().Cursor)
		}
	}
}

func TestCursorInterior(t *testing.T) {
	c := hoverController()
	c.HandleEvent(events.PointerMove{Point: geom.Point{X: 150, Y: 100}})
	if c.State().Cursor != CursorGrab {
		t.Error("Expected grab, got", c.State().Cursor)
	}
}

func TestCursorOutside(t *testing.T) {
	c := hoverController()
	c.HandleEvent(events.PointerMove{Point: geom.Point{X: 150, Y: 100}})
	c.HandleEvent(events.PointerMove{Point: geom.Point{X: 400, Y: 300}})
	if c.State().Cursor != CursorDefault {
		t.Error("Expected default, got", c.State().Cursor)
	}
}

func TestCornerPriority(t *testing.T) {
	// near of everything at once on a tiny element resolves top-left first
	near := Proximity{Left: true, Right: true, Top: true, Bottom: true}
	if cursorFor(near) != CursorNWResize {
		t.Error("Expected nw-resize, got", cursorFor(near))
	}
}

func TestCursorNames(t *testing.T) {
	names := map[Cursor]string{
		CursorDefault:  "default",
		CursorNResize:  "n-resize",
		CursorSResize:  "s-resize",
		CursorEResize:  "e-resize",
		CursorWResize:  "w-resize",
		CursorNEResize: "ne-resize",
		CursorNWResize: "nw-resize",
		CursorSEResize: "se-resize",
		CursorSWResize: "sw-resize",
		CursorGrab:     "grab",
	}
	for cursor, name := range names {
		if cursor.String() != name {
			t.Error("Expected", name, "got", cursor.String())
		}
	}
}
