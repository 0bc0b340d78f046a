package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/ansi"
	"github.com/muesli/termenv"

	"ibox/box"
)

// Goodbye prints the final box placement after the screen is restored.
func Goodbye(out io.Writer, state *box.State) {
	profile := termenv.ColorProfile()
	title := termenv.String("ibox").Foreground(profile.Color("226")).Bold()

	line := fmt.Sprintf(" %s  %.0fx%.0f at (%.0f, %.0f)", title, state.Width, state.Height, state.X, state.Y)
	fmt.Fprintln(out, line)
	fmt.Fprintln(out, " "+strings.Repeat("─", ansi.PrintableRuneWidth(line)-1))
}
