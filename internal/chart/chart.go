// ASCII bar charts for flight-time sweep series
package chart

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"rcpower/internal/calc"
)

var (
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// TerminalWidth returns the width of the terminal attached to STDOUT,
// or fallback when STDOUT is not a terminal.
func TerminalWidth(fallback int) int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallback
}

// Render draws a horizontal bar chart of a sweep series. Each point
// becomes one line: the x value, a bar scaled against the series
// maximum, and the flight time in minutes. Width is the total line
// budget in cells.
func Render(title, xLabel string, points []calc.Point, width int) string {
	if len(points) == 0 {
		return titleStyle.Render(title) + "\n(no points)"
	}
	maxMinutes := points[0].Minutes
	labelW := 0
	for _, p := range points {
		if p.Minutes > maxMinutes {
			maxMinutes = p.Minutes
		}
		if l := len(formatX(p.X)); l > labelW {
			labelW = l
		}
	}
	if lw := len(xLabel); lw > labelW {
		labelW = lw
	}

	// Leave room for "label │bar value min".
	barW := width - labelW - 14
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s │ flight time (min)", labelW, xLabel)))
	b.WriteString("\n")
	for _, p := range points {
		filled := 0
		if maxMinutes > 0 {
			filled = int(p.Minutes / maxMinutes * float64(barW))
		}
		if filled > barW {
			filled = barW
		}
		bar := barStyle.Render(strings.Repeat("█", filled))
		fmt.Fprintf(&b, "%*s │%s %.1f\n", labelW, formatX(p.X), bar, p.Minutes)
	}
	return b.String()
}

// formatX trims trailing zeros so sweep labels stay compact.
func formatX(x float64) string {
	s := fmt.Sprintf("%.2f", x)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
