package tcell

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"ibox/events"
	"ibox/geom"
	"ibox/lifecycle"
	"ibox/stream"
	"ibox/widgets"
)

type tcellDevice struct {
	screen  tcell.Screen
	style   widgets.Style
	pressed bool
}

var defaultStyle = widgets.Style{FG: 231, BG: 17}

func NewDevice(lc *lifecycle.Lifecycle, evs *stream.Stream[events.Event]) (*tcellDevice, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)

	device := &tcellDevice{
		screen: screen,
		style:  defaultStyle,
	}
	go device.poll(lc, evs)

	return device, nil
}

func (d *tcellDevice) poll(lc *lifecycle.Lifecycle, evs *stream.Stream[events.Event]) {
	lc.Started()
	defer lc.Done()

	for {
		event := d.screen.PollEvent()
		if event == nil {
			return
		}
		switch ev := event.(type) {
		case *tcell.EventResize:
			d.screen.Sync()
			w, h := ev.Size()
			evs.Push(events.ScreenSize{Width: w, Height: h})

		case *tcell.EventKey:
			switch ev.Name() {
			case "Ctrl+C", "Esc", "Rune[q]", "Rune[Q]":
				evs.Push(events.Quit{})
			}

		case *tcell.EventMouse:
			d.handleMouseEvent(ev, evs)

		case *tcell.EventInterrupt, *tcell.EventPaste, *tcell.EventFocus:
			// ignore

		default:
			log.Panicf("### unhandled tcell event: %#v", ev)
		}
	}
}

func (d *tcellDevice) handleMouseEvent(event *tcell.EventMouse, evs *stream.Stream[events.Event]) {
	if event.Buttons()&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 {
		return
	}
	x, y := event.Position()
	pt := geom.Point{X: float64(x), Y: float64(y)}
	pressed := event.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !d.pressed:
		evs.Push(events.PointerDown{Point: pt})
	case !pressed && d.pressed:
		evs.Push(events.PointerUp{Point: pt})
	default:
		evs.Push(events.PointerMove{Point: pt})
	}
	d.pressed = pressed
}

func (d *tcellDevice) SetStyle(style widgets.Style) {
	d.style = style
}

func (d *tcellDevice) CurrentStyle() widgets.Style {
	return d.style
}

func (d *tcellDevice) Text(runes []rune, pos widgets.Position) {
	style := tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(d.style.FG))).
		Background(tcell.PaletteColor(int(d.style.BG))).
		Bold(d.style.Flags&widgets.Bold == widgets.Bold).
		Italic(d.style.Flags&widgets.Italic == widgets.Italic).
		Reverse(d.style.Flags&widgets.Reverse == widgets.Reverse)

	x := pos.X
	for _, rune := range runes {
		d.screen.SetContent(x, pos.Y, rune, nil, style)
		x += runeWidth(rune)
	}
}

func runeWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

func (d *tcellDevice) Reset() {
	d.screen.Clear()
}

func (d *tcellDevice) Show() {
	d.screen.Show()
}

func (d *tcellDevice) Stop() {
	d.screen.Fini()
}
