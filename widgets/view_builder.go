package widgets

import (
	"fmt"

	"ibox/box"
)

// Screen is everything the view needs to draw one frame.
type Screen struct {
	Title     string
	BoxTitle  string
	State     *box.State
	Handle    *box.SurfaceHandle
	Threshold float64
	FPS       int

	StyleTitle  Style
	StyleCanvas Style
	StyleBox    Style
	StyleHover  Style
	StyleStatus Style
}

func (s *Screen) View() Widget {
	return Column(1,
		s.titleBar(),
		s.canvas(),
		s.statusLine(),
	)
}

func (s *Screen) titleBar() Widget {
	return Styled(s.StyleTitle,
		Row(Text(" "+s.Title).Flex(1)),
	)
}

func (s *Screen) canvas() Widget {
	return Styled(s.StyleCanvas,
		Canvas(s.State, s.Handle, s.BoxTitle, s.StyleBox, s.StyleHover),
	)
}

func (s *Screen) statusLine() Widget {
	state := s.State
	return Styled(s.StyleStatus,
		Row(
			Text(fmt.Sprintf(" %-9s", state.Cursor)).Width(10),
			Text(fmt.Sprintf(" %.0fx%.0f at (%.0f, %.0f)", state.Width, state.Height, state.X, state.Y)).Flex(1),
			Text(fmt.Sprintf("edge %.0f ", s.Threshold)),
			RText(fmt.Sprintf("%d fps ", s.FPS)).Width(8),
		),
	)
}
