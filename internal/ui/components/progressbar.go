package components

import (
	"fmt"

	"charm.land/bubbles/v2/progress"
	"charm.land/lipgloss/v2"

	"neuroforge/internal/ui/theme"
)

// ProgressBar wraps bubbles/progress with a label and percent readout.
type ProgressBar struct {
	Label   string
	Percent float64 // 0.0 - 1.0
	Width   int

	model progress.Model
}

// NewProgressBar creates a labeled progress bar.
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	opts := []progress.Option{
		progress.WithColors(theme.Secondary, theme.Primary),
		progress.WithoutPercentage(),
	}
	if width > 0 {
		opts = append(opts, progress.WithWidth(width))
	}
	m := progress.New(opts...)
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}
	return ProgressBar{Label: label, Percent: percent, Width: width, model: m}
}

// View renders "label  [bar]  42%".
func (p ProgressBar) View() string {
	label := ""
	if p.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	pct := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf(" %3.0f%%", p.Percent*100))
	return label + p.model.ViewAs(p.Percent) + pct
}
