package box

import (
	"fmt"

	"ibox/geom"
)

type sessionKind int

const (
	kindMove sessionKind = iota
	kindResize
)

func (k sessionKind) String() string {
	switch k {
	case kindMove:
		return "move"
	case kindResize:
		return "resize"
	}
	return "UNKNOWN SESSION KIND"
}

type horizontal int

const (
	horizNone horizontal = iota
	horizLeft
	horizRight
)

type vertical int

const (
	vertNone vertical = iota
	vertTop
	vertBottom
)

// session is the ephemeral record of an in-progress interaction, alive
// between pointer-down and pointer-up. The anchors are the pointer,
// position and size captured at down-time; moves are applied as deltas
// against them so event coalescing cannot accumulate drift.
type session struct {
	kind       sessionKind
	horizontal horizontal
	vertical   vertical
	anchor     geom.Point
	anchorPos  geom.Point
	anchorSize geom.Size
	grab       geom.Point
}

// newResizeSession picks the resize directions from the near-edge
// flags. Left is checked before right and top before bottom, so left
// and top win the (degenerate) case where both flags fire.
func newResizeSession(near Proximity, pt geom.Point, state State) *session {
	s := &session{
		kind:       kindResize,
		anchor:     pt,
		anchorPos:  geom.Point{X: state.X, Y: state.Y},
		anchorSize: geom.Size{Width: state.Width, Height: state.Height},
	}
	if near.Left {
		s.horizontal = horizLeft
	} else if near.Right {
		s.horizontal = horizRight
	}
	if near.Top {
		s.vertical = vertTop
	} else if near.Bottom {
		s.vertical = vertBottom
	}
	return s
}

// newMoveSession captures the pointer-to-element offset so the grab
// point stays fixed under the pointer for the whole drag.
func newMoveSession(pt geom.Point, state State) *session {
	return &session{
		kind:       kindMove,
		anchor:     pt,
		anchorPos:  geom.Point{X: state.X, Y: state.Y},
		anchorSize: geom.Size{Width: state.Width, Height: state.Height},
		grab:       geom.Point{X: pt.X - state.X, Y: pt.Y - state.Y},
	}
}

func (s *session) String() string {
	return fmt.Sprintf("session{kind: %s, anchor: %s, pos: %s, size: %s}",
		s.kind, s.anchor, s.anchorPos, s.anchorSize)
}
