package app

import (
	"log"
	"time"

	"ibox/box"
	"ibox/config"
	"ibox/events"
	"ibox/geom"
	"ibox/stream"
	"ibox/widgets"
)

// Device renders widget trees and is stoppable.
type Device interface {
	widgets.Renderer
	Stop()
}

type app struct {
	manager *config.Manager
	device  Device
	events  *stream.Stream[events.Event]

	ctrl   *box.Controller
	handle *box.SurfaceHandle

	title       string
	boxTitle    string
	styleScreen widgets.Style
	styleBox    widgets.Style
	styleHover  widgets.Style
	styleStatus widgets.Style

	screenWidth  int
	screenHeight int

	frames   int
	fps      int
	prevTick time.Time

	mounted bool
	quit    bool
}

// Run drives the event loop until quit and returns the final box
// placement.
func Run(manager *config.Manager, device Device, evs *stream.Stream[events.Event]) *box.State {
	cfg := manager.Get()

	handle := &box.SurfaceHandle{}
	ctrl := box.NewController(handle, cfg.EdgeThreshold)
	ctrl.SetPlacement(geom.Rect{X: cfg.Box.X, Y: cfg.Box.Y, Width: cfg.Box.Width, Height: cfg.Box.Height})

	a := &app{
		manager:  manager,
		device:   device,
		events:   evs,
		ctrl:     ctrl,
		handle:   handle,
		title:    "ibox",
		prevTick: time.Now(),
	}
	a.applyConfig(cfg)

	go ticker(evs)

	for !a.quit {
		for _, event := range evs.Pull() {
			a.handleEvent(event)
		}

		a.frames++
		a.render()
	}
	ctrl.Teardown()
	return ctrl.State()
}

func (a *app) handleEvent(event events.Event) {
	switch event := event.(type) {
	case events.PointerDown, events.PointerMove, events.PointerUp, events.Mounted:
		a.ctrl.HandleEvent(event)

	case events.ScreenSize:
		a.screenWidth = event.Width
		a.screenHeight = event.Height

	case events.ConfigChanged:
		a.applyConfig(a.manager.Get())

	case events.Tick:
		a.handleTick(event)

	case events.Quit:
		a.quit = true

	default:
		log.Panicf("### unhandled event: %#v", event)
	}
}

func (a *app) applyConfig(cfg *config.Config) {
	a.ctrl.SetEdgeThreshold(cfg.EdgeThreshold)
	a.boxTitle = cfg.Box.Title
	a.styleScreen = widgets.Style{FG: byte(cfg.Style.FG), BG: byte(cfg.Style.BG)}
	a.styleBox = widgets.Style{FG: byte(cfg.Style.BoxFG), BG: byte(cfg.Style.BG)}
	a.styleHover = widgets.Style{FG: byte(cfg.Style.HoverFG), BG: byte(cfg.Style.HoverBG), Flags: widgets.Bold}
	a.styleStatus = widgets.Style{FG: byte(cfg.Style.FG), BG: byte(cfg.Style.BG), Flags: widgets.Reverse}
}

func (a *app) handleTick(tick events.Tick) {
	now := time.Time(tick)
	dur := now.Sub(a.prevTick).Seconds()
	a.fps = int(float64(a.frames-1) / dur)
	a.prevTick = now
	a.frames = 0
}

func (a *app) render() {
	if a.screenWidth < 1 || a.screenHeight < 1 {
		return
	}

	screen := &widgets.Screen{
		Title:     a.title,
		BoxTitle:  a.boxTitle,
		State:     a.ctrl.State(),
		Handle:    a.handle,
		Threshold: a.ctrl.EdgeThreshold(),
		FPS:       a.fps,

		StyleTitle:  widgets.Style{FG: a.styleScreen.FG, BG: a.styleScreen.BG, Flags: widgets.Bold | widgets.Reverse},
		StyleCanvas: a.styleScreen,
		StyleBox:    a.styleBox,
		StyleHover:  a.styleHover,
		StyleStatus: a.styleStatus,
	}

	a.device.Reset()
	screen.View().Render(a.device, widgets.Position{X: 0, Y: 0}, widgets.Size{Width: a.screenWidth, Height: a.screenHeight})
	a.device.Show()

	if !a.mounted {
		if rect, ok := a.handle.Bounds(); ok {
			a.mounted = true
			a.events.Push(events.Mounted{Rect: rect})
		}
	}
}

func ticker(evs *stream.Stream[events.Event]) {
	for tick := range time.NewTicker(time.Second).C {
		evs.Push(events.Tick(tick))
	}
}
