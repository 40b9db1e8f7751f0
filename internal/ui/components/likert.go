package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"neuroforge/internal/ui/theme"
)

// likert rating labels, index 0 unused so labels align with ratings 1-5.
var ratingLabels = [6]string{"", "Never", "Rarely", "Sometimes", "Often", "Always"}

// Likert is a 1-5 rating selector for one questionnaire category.
type Likert struct {
	Question  string
	Selected  int // 1-5
	Submitted bool
}

// NewLikert creates a Likert selector starting at the middle rating.
func NewLikert(question string) Likert {
	return Likert{
		Question: question,
		Selected: 3,
	}
}

// Init returns nil.
func (l Likert) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (l Likert) Update(msg tea.Msg) (Likert, tea.Cmd) {
	if l.Submitted {
		return l, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "left", "h", "down", "j":
		if l.Selected > 1 {
			l.Selected--
		}
	case "right", "l", "up", "k":
		if l.Selected < 5 {
			l.Selected++
		}
	case "1", "2", "3", "4", "5":
		l.Selected = int(kmsg.String()[0] - '0')
	case "enter":
		l.Submitted = true
	}

	return l, nil
}

// View renders the selector.
func (l Likert) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(l.Question) + "\n\n"

	for rating := 1; rating <= 5; rating++ {
		label := fmt.Sprintf("%d · %s", rating, ratingLabels[rating])
		prefix := "  "
		if rating == l.Selected {
			prefix = "▸ "
		}

		line := prefix + label
		switch {
		case l.Submitted && rating == l.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case rating == l.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		}
	}

	return s
}
