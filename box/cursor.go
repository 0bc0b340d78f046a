package box

// Cursor is the style hint published for the rendering layer, named
// after the CSS cursor values.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorNResize
	CursorSResize
	CursorEResize
	CursorWResize
	CursorNEResize
	CursorNWResize
	CursorSEResize
	CursorSWResize
	CursorGrab
)

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorNResize:
		return "n-resize"
	case CursorSResize:
		return "s-resize"
	case CursorEResize:
		return "e-resize"
	case CursorWResize:
		return "w-resize"
	case CursorNEResize:
		return "ne-resize"
	case CursorNWResize:
		return "nw-resize"
	case CursorSEResize:
		return "se-resize"
	case CursorSWResize:
		return "sw-resize"
	case CursorGrab:
		return "grab"
	}
	return "UNKNOWN CURSOR"
}

// Resizing reports whether the hint is one of the eight resize cursors.
func (c Cursor) Resizing() bool {
	return c >= CursorNResize && c <= CursorSWResize
}

// cursorFor picks the hint for a classified pointer. Corners are
// checked before single edges, in fixed order, so a pointer near two
// adjacent edges resolves to the corner cursor.
func cursorFor(near Proximity) Cursor {
	switch {
	case near.Top && near.Left:
		return CursorNWResize
	case near.Top && near.Right:
		return CursorNEResize
	case near.Bottom && near.Left:
		return CursorSWResize
	case near.Bottom && near.Right:
		return CursorSEResize
	case near.Top:
		return CursorNResize
	case near.Bottom:
		return CursorSResize
	case near.Left:
		return CursorWResize
	case near.Right:
		return CursorEResize
	}
	return CursorGrab
}
