package events

import (
	"fmt"
	"time"

	"ibox/geom"
)

type Event interface {
	event()
}

// PointerDown is the primary button going down at a surface location.
type PointerDown struct {
	geom.Point
}

func (PointerDown) event() {}

func (e PointerDown) String() string {
	return fmt.Sprintf("PointerDown%s", e.Point)
}

// PointerMove is any pointer motion, with or without a pressed button.
type PointerMove struct {
	geom.Point
}

func (PointerMove) event() {}

func (e PointerMove) String() string {
	return fmt.Sprintf("PointerMove%s", e.Point)
}

// PointerUp is the primary button being released.
type PointerUp struct {
	geom.Point
}

func (PointerUp) event() {}

func (e PointerUp) String() string {
	return fmt.Sprintf("PointerUp%s", e.Point)
}

// Mounted announces that the element became measurable, carrying its
// first rendered bounds.
type Mounted struct {
	Rect geom.Rect
}

func (Mounted) event() {}

func (e Mounted) String() string {
	return fmt.Sprintf("Mounted(%s)", e.Rect)
}

type ScreenSize struct {
	Width, Height int
}

func (ScreenSize) event() {}

// ConfigChanged signals that the configuration file was reloaded.
type ConfigChanged struct{}

func (ConfigChanged) event() {}

type Tick time.Time

func (Tick) event() {}

type Quit struct{}

func (Quit) event() {}
