package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"ibox/box"
	"ibox/geom"
)

// canvas is the surface area the interactive box lives on. Each render
// it clips the box state to its own area, registers the result as the
// element's bounds in the surface handle, and draws the box border.
// Registration at render time is what makes the element "mounted":
// pointer events arriving before the first render see no geometry.
type canvas struct {
	state  *box.State
	handle *box.SurfaceHandle
	title  string
	style  Style
	hover  Style
}

func Canvas(state *box.State, handle *box.SurfaceHandle, title string, style, hover Style) Widget {
	return canvas{state: state, handle: handle, title: title, style: style, hover: hover}
}

func (c canvas) Constraint() Constraint {
	return Constraint{Size{Width: 0, Height: 0}, Flex{X: 1, Y: 1}}
}

func (c canvas) Render(renderer Renderer, pos Position, size Size) {
	Spacer{}.Render(renderer, pos, size)

	area := geom.Rect{
		X:      float64(pos.X),
		Y:      float64(pos.Y),
		Width:  float64(size.Width),
		Height: float64(size.Height),
	}
	rect := c.state.Rect().Intersect(area)
	c.handle.Set(rect)

	width := int(math.Round(rect.Width))
	height := int(math.Round(rect.Height))
	if width < 2 || height < 2 {
		return
	}
	x := int(math.Round(rect.X))
	y := int(math.Round(rect.Y))

	style := c.style
	if c.state.Cursor.Resizing() {
		style = c.hover
	}
	currentStyle := renderer.CurrentStyle()
	renderer.SetStyle(style)

	renderer.Text(c.borderTop(width), Position{X: x, Y: y})
	middle := borderMiddle(width)
	for i := 1; i < height-1; i++ {
		renderer.Text(middle, Position{X: x, Y: y + i})
	}
	renderer.Text(borderBottom(width), Position{X: x, Y: y + height - 1})

	renderer.SetStyle(currentStyle)
}

func (c canvas) borderTop(width int) []rune {
	title := c.title
	if title != "" {
		title = " " + title + " "
	}
	if runewidth.StringWidth(title) > width-2 {
		title = runewidth.Truncate(title, width-2, "…")
	}
	runes := make([]rune, 0, width)
	runes = append(runes, '┌')
	runes = append(runes, []rune(title)...)
	for runewidth.StringWidth(string(runes)) < width-1 {
		runes = append(runes, '─')
	}
	return append(runes, '┐')
}

func borderMiddle(width int) []rune {
	runes := make([]rune, width)
	runes[0] = '│'
	for i := 1; i < width-1; i++ {
		runes[i] = ' '
	}
	runes[width-1] = '│'
	return runes
}

func borderBottom(width int) []rune {
	runes := make([]rune, width)
	runes[0] = '└'
	for i := 1; i < width-1; i++ {
		runes[i] = '─'
	}
	runes[width-1] = '┘'
	return runes
}

func (c canvas) String() string { return toString(c) }

func (c canvas) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sCanvas(%q, %s)\n", offset, c.title, c.state.Rect())
}
