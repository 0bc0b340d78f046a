package box

import (
	"testing"

	"ibox/events"
	"ibox/geom"
)

// newTestController places a 200x100 element at (50,50) with the
// default threshold and marks it mounted at exactly that rect.
func newTestController() (*Controller, *SurfaceHandle) {
	handle := &SurfaceHandle{}
	c := NewController(handle, 0)
	c.SetPlacement(geom.Rect{X: 50, Y: 50, Width: 200, Height: 100})
	handle.Set(c.State().Rect())
	return c, handle
}

func (c *Controller) press(x, y float64) {
	c.HandleEvent(events.PointerDown{Point: geom.Point{X: x, Y: y}})
}

func (c *Controller) move(x, y float64) {
	c.HandleEvent(events.PointerMove{Point: geom.Point{X: x, Y: y}})
}

func (c *Controller) release(x, y float64) {
	c.HandleEvent(events.PointerUp{Point: geom.Point{X: x, Y: y}})
}

func TestDefaultThreshold(t *testing.T) {
	c := NewController(&SurfaceHandle{}, 0)
	if c.EdgeThreshold() != 16 {
		t.Error("Expected 16, got", c.EdgeThreshold())
	}
}

func TestMoveKeepsGrabPointFixed(t *testing.T) {
	c, _ := newTestController()
	c.press(70, 80) // interior, offset (20,30)
	c.move(120, 130)
	state := c.State()
	if state.X != 100 || state.Y != 100 {
		t.Error("Expected position (100,100), got", state.X, state.Y)
	}
	if state.Width != 200 || state.Height != 100 {
		t.Error("Expected size unchanged, got", state.Width, state.Height)
	}
}

func TestRightEdgeResize(t *testing.T) {
	c, _ := newTestController()
	c.press(248, 60) // 2 from the right edge
	c.move(278, 60)
	state := c.State()
	if state.Width != 230 {
		t.Error("Expected width 230, got", state.Width)
	}
	if state.X != 50 || state.Y != 50 {
		t.Error("Expected position unchanged, got", state.X, state.Y)
	}
}

func TestLeftEdgeResize(t *testing.T) {
	c, _ := newTestController()
	c.press(52, 60)
	c.move(82, 60)
	state := c.State()
	if state.Width != 170 {
		t.Error("Expected width 170, got", state.Width)
	}
	if state.X != 80 {
		t.Error("Expected x 80, got", state.X)
	}
}

func TestCornerResizeBothAxes(t *testing.T) {
	c, _ := newTestController()
	c.press(245, 145) // bottom-right corner
	c.move(265, 165)
	state := c.State()
	if state.Width != 220 || state.Height != 120 {
		t.Error("Expected 220x120, got", state.Width, state.Height)
	}
	if state.X != 50 || state.Y != 50 {
		t.Error("Expected position unchanged, got", state.X, state.Y)
	}
}

func TestTopLeftResizeTranslatesOrigin(t *testing.T) {
	c, _ := newTestController()
	c.press(55, 55)
	c.move(45, 40)
	state := c.State()
	if state.X != 40 || state.Y != 35 {
		t.Error("Expected position (40,35), got", state.X, state.Y)
	}
	if state.Width != 210 || state.Height != 115 {
		t.Error("Expected 210x115, got", state.Width, state.Height)
	}
}

func TestUnclampedResizeGoesNegative(t *testing.T) {
	c, _ := newTestController()
	c.press(248, 60)
	c.move(0, 60) // drag past the left edge
	state := c.State()
	if state.Width != -48 {
		t.Error("Expected width -48, got", state.Width)
	}
}

func TestSecondPointerDownIgnored(t *testing.T) {
	c, _ := newTestController()
	c.press(70, 80)
	c.press(248, 60) // would start a resize if accepted
	c.move(120, 130)
	state := c.State()
	if state.X != 100 || state.Y != 100 || state.Width != 200 {
		t.Error("Expected the first session to win, got", state.X, state.Y, state.Width)
	}
}

func TestMovesAfterReleaseDoNothing(t *testing.T) {
	c, _ := newTestController()
	c.press(70, 80)
	c.move(120, 130)
	c.release(120, 130)
	if !c.Idle() {
		t.Error("Expected idle after pointer-up")
	}
	c.HandleEvent(events.PointerMove{Point: geom.Point{X: 500, Y: 500}})
	state := c.State()
	if state.X != 100 || state.Y != 100 {
		t.Error("Expected position (100,100), got", state.X, state.Y)
	}
}

func TestReleaseOutsideElementEndsSession(t *testing.T) {
	c, _ := newTestController()
	c.press(70, 80)
	c.move(700, 700)
	c.release(700, 700)
	if !c.Idle() {
		t.Error("Expected idle after pointer-up outside the element")
	}
}

func TestUnmountedSurfaceIgnoresPointer(t *testing.T) {
	c := NewController(&SurfaceHandle{}, 0)
	c.SetPlacement(geom.Rect{X: 50, Y: 50, Width: 200, Height: 100})
	c.press(70, 80)
	c.move(120, 130)
	state := c.State()
	if state.X != 50 || state.Y != 50 {
		t.Error("Expected position unchanged, got", state.X, state.Y)
	}
	if !c.Idle() {
		t.Error("Expected no session on an unmounted surface")
	}
}

func TestMountMeasuresOnce(t *testing.T) {
	c := NewController(&SurfaceHandle{}, 0)
	c.SetPlacement(geom.Rect{X: 10, Y: 5, Width: 400, Height: 300})
	c.HandleEvent(events.Mounted{Rect: geom.Rect{X: 10, Y: 5, Width: 60, Height: 20}})
	state := c.State()
	if state.Width != 60 || state.Height != 20 {
		t.Error("Expected measured 60x20, got", state.Width, state.Height)
	}
	// later mounts must not re-measure
	c.HandleEvent(events.Mounted{Rect: geom.Rect{X: 10, Y: 5, Width: 99, Height: 99}})
	if state.Width != 60 || state.Height != 20 {
		t.Error("Expected one-time measurement, got", state.Width, state.Height)
	}
}

func TestTeardownDetachesListeners(t *testing.T) {
	c, _ := newTestController()
	c.press(70, 80)
	c.Teardown()
	if !c.Idle() {
		t.Error("Expected idle after teardown")
	}
	c.move(120, 130)
	state := c.State()
	if state.X != 50 || state.Y != 50 {
		t.Error("Expected position unchanged after teardown, got", state.X, state.Y)
	}
}

func TestThresholdTieBreaks(t *testing.T) {
	// element narrower than twice the threshold: both horizontal flags
	// fire and left must win
	handle := &SurfaceHandle{}
	c := NewController(handle, 16)
	c.SetPlacement(geom.Rect{X: 0, Y: 0, Width: 20, Height: 100})
	handle.Set(c.State().Rect())
	c.press(10, 50)
	c.move(15, 50)
	state := c.State()
	if state.Width != 15 || state.X != 5 {
		t.Error("Expected left resize (width 15, x 5), got", state.Width, state.X)
	}
}
