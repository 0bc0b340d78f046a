package app

import (
	"testing"
	"time"

	"ibox/box"
	"ibox/config"
	"ibox/events"
	"ibox/geom"
	"ibox/stream"
	"ibox/widgets"
)

type nopDevice struct {
	style widgets.Style
	shown int
}

func (d *nopDevice) SetStyle(style widgets.Style)  { d.style = style }
func (d *nopDevice) CurrentStyle() widgets.Style   { return d.style }
func (d *nopDevice) Text([]rune, widgets.Position) {}
func (d *nopDevice) Reset()                        {}
func (d *nopDevice) Show()                         { d.shown++ }
func (d *nopDevice) Stop()                         {}

func newTestApp() *app {
	handle := &box.SurfaceHandle{}
	ctrl := box.NewController(handle, 2)
	ctrl.SetPlacement(geom.Rect{X: 10, Y: 5, Width: 30, Height: 10})

	a := &app{
		device:   &nopDevice{},
		events:   stream.NewStream[events.Event]("test"),
		ctrl:     ctrl,
		handle:   handle,
		title:    "ibox",
		prevTick: time.Now(),
	}
	a.applyConfig(config.DefaultConfig())
	return a
}

func (a *app) drain() {
	for _, event := range a.events.TryPull() {
		a.handleEvent(event)
	}
}

func TestMountAnnouncedOnce(t *testing.T) {
	a := newTestApp()
	a.handleEvent(events.ScreenSize{Width: 80, Height: 24})
	a.render()

	pulled := a.events.TryPull()
	if len(pulled) != 1 {
		t.Fatal("Expected one event, got", pulled)
	}
	mounted, ok := pulled[0].(events.Mounted)
	if !ok {
		t.Fatal("Expected Mounted, got", pulled[0])
	}
	if mounted.Rect != (geom.Rect{X: 10, Y: 5, Width: 30, Height: 10}) {
		t.Error("Unexpected bounds", mounted.Rect)
	}

	a.render()
	if extra := a.events.TryPull(); len(extra) != 0 {
		t.Error("Expected no further mount events, got", extra)
	}
}

func TestNoRenderBeforeScreenSize(t *testing.T) {
	a := newTestApp()
	a.render()
	if a.device.(*nopDevice).shown != 0 {
		t.Error("Expected no frame before the screen size is known")
	}
}

func TestDragMovesBox(t *testing.T) {
	a := newTestApp()
	a.handleEvent(events.ScreenSize{Width: 80, Height: 24})
	a.render()
	a.drain()

	a.handleEvent(events.PointerDown{Point: geom.Point{X: 20, Y: 10}})
	a.handleEvent(events.PointerMove{Point: geom.Point{X: 25, Y: 12}})
	a.handleEvent(events.PointerUp{Point: geom.Point{X: 25, Y: 12}})

	state := a.ctrl.State()
	if state.X != 15 || state.Y != 7 {
		t.Error("Expected (15, 7), got", state.Rect())
	}
}

func TestQuitEvent(t *testing.T) {
	a := newTestApp()
	a.handleEvent(events.Quit{})
	if !a.quit {
		t.Error("Expected quit")
	}
}
