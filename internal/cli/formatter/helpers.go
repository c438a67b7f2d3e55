package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/tubepile/internal/calc"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Tonnes formats a kilogram mass as metric tons with three decimals.
func Tonnes(kg float64) string {
	return fmt.Sprintf("%.3f t", calc.KgToTonnes(kg))
}

// SquareMetres formats an area with two decimals.
func SquareMetres(m2 float64) string {
	return fmt.Sprintf("%.2f m²", m2)
}

// Millimetres formats a diameter or thickness, dropping trailing zeros.
func Millimetres(mm float64) string {
	return trimFloat(mm) + " mm"
}

// Metres formats a length, dropping trailing zeros.
func Metres(m float64) string {
	return trimFloat(m) + " m"
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Truncate shortens s to width visible characters, ending with an ellipsis.
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
