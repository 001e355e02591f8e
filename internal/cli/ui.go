package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan = lipgloss.Color("36")  // Teal - values
	colorGray = lipgloss.Color("245") // Gray - labels

	styleLabel = lipgloss.NewStyle().Foreground(colorGray)
	styleValue = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

// printField writes one aligned "label  value" line.
func printField(w io.Writer, color bool, label string, value any) {
	l := fmt.Sprintf("%-10s", label)
	v := fmt.Sprint(value)
	if color {
		l, v = styleLabel.Render(l), styleValue.Render(v)
	}
	fmt.Fprintf(w, "%s%s\n", l, v)
}
