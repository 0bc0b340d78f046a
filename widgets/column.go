package widgets

import (
	"fmt"
	"strings"
)

type column struct {
	flex    int
	widgets []Widget
}

func Column(flex int, widgets ...Widget) Widget {
	return column{flex: flex, widgets: widgets}
}

func (c column) Constraint() Constraint {
	height := 0
	for _, widget := range c.widgets {
		height += widget.Constraint().Size.Height
	}
	return Constraint{Size{Width: 0, Height: height}, Flex{X: 1, Y: c.flex}}
}

func (c column) Render(renderer Renderer, pos Position, size Size) {
	sizes := make([]int, len(c.widgets))
	flexes := make([]int, len(c.widgets))
	for i, widget := range c.widgets {
		sizes[i] = widget.Constraint().Height
		flexes[i] = widget.Constraint().Y
	}
	heights := calcSizes(size.Height, sizes, flexes)
	y := 0
	for i, widget := range c.widgets {
		widget.Render(renderer, Position{X: pos.X, Y: pos.Y + y}, Size{Width: size.Width, Height: heights[i]})
		y += heights[i]
	}
}

func (c column) String() string { return toString(c) }

func (c column) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sColumn(\n", offset)
	for _, widget := range c.widgets {
		widget.ToString(buf, offset+"| ")
	}
}
