package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/tubepile/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// tubepileHuhTheme returns a huh theme built on the formatter palette, so
// the configured accent colour reaches the forms.
func tubepileHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateRequired wraps v so that an empty value is rejected.
func validateRequired(label string, v func(string) error) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		if v == nil {
			return nil
		}
		return v(s)
	}
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}

// validatePositiveFloat accepts empty or a number greater than zero.
func validatePositiveFloat(s string) error {
	if s == "" {
		return nil
	}
	v, err := parseFloat(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a number greater than zero")
	}
	return nil
}

// validateNonNegativeFloat accepts empty or a number ≥ 0.
func validateNonNegativeFloat(s string) error {
	if s == "" {
		return nil
	}
	v, err := parseFloat(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// parseFloat accepts a decimal comma as well as a point. NaN and
// infinities are rejected even though strconv parses them.
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

// lenientFloat parses s, treating blanks and typos as zero. Only used for
// the live preview, which must render whatever is on screen.
func lenientFloat(s string) float64 {
	v, err := parseFloat(s)
	if err != nil {
		return 0
	}
	return v
}

func lenientInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
