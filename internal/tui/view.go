package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"neuroforge/internal/notify"
	"neuroforge/internal/ui/components"
	"neuroforge/internal/ui/theme"
)

const banner = `
 ░▒▓ NEUROFORGE ▓▒░
`

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.quitting {
		return v
	}

	var body string
	switch m.phase {
	case phaseIntro:
		body = m.viewIntro()
	case phaseQuestions:
		body = m.viewQuestion()
	case phaseSummary:
		body = m.viewSummary()
	}

	if m.width > 0 {
		body = lipgloss.NewStyle().Padding(1, 3).Render(body)
	}
	v.SetContent(body)
	return v
}

func (m Model) viewIntro() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(strings.TrimSpace(banner)) + "\n\n")
	b.WriteString(theme.Body.Render("Four questions. Honest answers. One mind type.") + "\n\n")
	b.WriteString(theme.Hint.Render("Enter to begin · q to quit"))
	return b.String()
}

func (m Model) viewQuestion() string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", m.step+1, len(m.likerts))) + "\n\n")
	b.WriteString(m.likerts[m.step].View())
	b.WriteString("\n" + theme.Hint.Render("←/→ or 1-5 to rate · Enter to confirm"))
	return b.String()
}

func (m Model) viewSummary() string {
	if m.err != nil {
		return theme.Warn.Render("Submission failed: "+m.err.Error()) + "\n\n" +
			theme.Hint.Render("Enter to exit")
	}

	out := m.outcome
	var b strings.Builder

	b.WriteString(theme.Title.Render("Assessment complete") + "\n\n")

	card := fmt.Sprintf("%s\n%s",
		theme.Body.Render(fmt.Sprintf("Mind type  %s", out.Record.MindType)),
		theme.Body.Render(fmt.Sprintf("Rank       %s  (total %d/20)", out.Record.Rank, out.Record.Total)),
	)
	b.WriteString(theme.Card.Render(card) + "\n\n")

	levelPct := 0.0
	if out.Level.XPRequiredForNext > 0 {
		levelPct = float64(out.Level.XPIntoLevel) / float64(out.Level.XPRequiredForNext)
	}
	b.WriteString(components.NewProgressBar(fmt.Sprintf("Level %-2d", out.Level.Level), levelPct, 34).View() + "\n")

	b.WriteString(theme.Body.Render(fmt.Sprintf("XP +%d (now %d)", out.XPAwarded, out.XP)))
	if out.Penalty > 0 {
		b.WriteString(theme.Warn.Render(fmt.Sprintf("   −%d decay (%d missed days)", out.Penalty, out.DaysMissed)))
	}
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Streak %d day(s)", out.Streak)) + "\n")

	if m.toast != nil {
		b.WriteString("\n" + m.renderToast(*m.toast) + "\n")
	}

	b.WriteString("\n" + theme.Hint.Render("Enter to exit"))
	return b.String()
}

func (m Model) renderToast(n notify.Notification) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1)

	title := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(n.Title)
	return style.Render(title + "  " + theme.Body.Render(n.Body))
}
