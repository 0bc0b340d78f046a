package widgets

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

type text struct {
	content string
	width   int
	flex    int
	right   bool
}

func Text(content string) text {
	return text{content: content, width: runewidth.StringWidth(content)}
}

// RText renders right-aligned within its cell.
func RText(content string) text {
	t := Text(content)
	t.right = true
	return t
}

func (t text) Width(width int) text {
	t.width = width
	return t
}

func (t text) Flex(flex int) text {
	t.flex = flex
	return t
}

func (t text) Constraint() Constraint {
	return Constraint{Size{Width: t.width, Height: 1}, Flex{X: t.flex, Y: 0}}
}

func (t text) Render(renderer Renderer, pos Position, size Size) {
	if size.Width < 1 || size.Height < 1 {
		return
	}
	content := t.content
	if runewidth.StringWidth(content) > size.Width {
		content = runewidth.Truncate(content, size.Width, "…")
	}
	if t.right {
		content = runewidth.FillLeft(content, size.Width)
	} else {
		content = runewidth.FillRight(content, size.Width)
	}
	renderer.Text([]rune(content), pos)
}

func (t text) String() string { return toString(t) }

func (t text) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sText(%q, Width: %d, Flex: %d)\n", offset, t.content, t.width, t.flex)
}
