package box

import (
	"ibox/geom"
)

// dispatcher delivers surface-level pointer events to transient
// listeners, modeling the attach-on-down / detach-on-up handshake.
// Move listeners stay attached until their detach func runs; up
// listeners fire exactly once and self-detach regardless of where the
// pointer is at that time.
type dispatcher struct {
	nextId int
	moves  map[int]func(geom.Point)
	ups    map[int]func(geom.Point)
}

func (d *dispatcher) onMove(listener func(geom.Point)) func() {
	if d.moves == nil {
		d.moves = map[int]func(geom.Point){}
	}
	id := d.nextId
	d.nextId++
	d.moves[id] = listener
	return func() {
		delete(d.moves, id)
	}
}

func (d *dispatcher) onceUp(listener func(geom.Point)) {
	if d.ups == nil {
		d.ups = map[int]func(geom.Point){}
	}
	id := d.nextId
	d.nextId++
	d.ups[id] = listener
}

func (d *dispatcher) pointerMove(pt geom.Point) {
	for _, listener := range d.moves {
		listener(pt)
	}
}

func (d *dispatcher) pointerUp(pt geom.Point) {
	ups := d.ups
	d.ups = nil
	for _, listener := range ups {
		listener(pt)
	}
}

func (d *dispatcher) reset() {
	d.moves = nil
	d.ups = nil
}
