package widgets

import (
	"fmt"
	"strings"
)

type row struct {
	widgets []Widget
}

func Row(ws ...Widget) Widget {
	return row{ws}
}

func (r row) Constraint() Constraint {
	width, flex := 0, 0
	for _, widget := range r.widgets {
		c := widget.Constraint()
		width += c.Size.Width
		flex += c.Flex.X
	}
	return Constraint{Size{Width: width, Height: 1}, Flex{X: 1, Y: 0}}
}

func (r row) Render(renderer Renderer, pos Position, size Size) {
	sizes := make([]int, len(r.widgets))
	flexes := make([]int, len(r.widgets))
	for i, widget := range r.widgets {
		sizes[i] = widget.Constraint().Width
		flexes[i] = widget.Constraint().X
	}
	widths := calcSizes(size.Width, sizes, flexes)
	for i, widget := range r.widgets {
		widget.Render(renderer, Position{X: pos.X, Y: pos.Y}, Size{Width: widths[i], Height: size.Height})
		pos.X += widths[i]
	}
}

// calcSizes fits the given sizes into targetSize: oversized layouts
// shrink the widest element first, spare cells go to flexible elements
// proportionally to their flex.
func calcSizes(targetSize int, sizes []int, flexes []int) []int {
	result := make([]int, len(sizes))
	totalSize, totalFlex := 0, 0
	for i, size := range sizes {
		result[i] = size
		totalSize += size
		totalFlex += flexes[i]
	}
	for totalSize > targetSize {
		idx := 0
		maxSize := result[0]
		for i, size := range result {
			if maxSize < size {
				maxSize = size
				idx = i
			}
		}
		result[idx]--
		totalSize--
	}

	if totalSize == targetSize || totalFlex == 0 {
		return result
	}

	diff := targetSize - totalSize
	for i, flex := range flexes {
		inc := diff * flex / totalFlex
		result[i] += inc
		totalSize += inc
	}
	for i := range result {
		if totalSize == targetSize {
			break
		}
		if flexes[i] > 0 {
			result[i]++
			totalSize++
		}
	}
	return result
}

func (r row) String() string { return toString(r) }

func (r row) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sRow(\n", offset)
	for _, widget := range r.widgets {
		widget.ToString(buf, offset+"| ")
	}
}
