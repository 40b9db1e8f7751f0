// Package tui implements the interactive questionnaire: four Likert
// questions, then a summary of the resulting classification and
// progression. It only renders what the assessment service returns.
package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"neuroforge/internal/assessment"
	"neuroforge/internal/notify"
	"neuroforge/internal/ui/components"
)

const toastInterval = 2500 * time.Millisecond

type phase int

const (
	phaseIntro phase = iota
	phaseQuestions
	phaseSummary
)

// question order is the submission field order.
var questions = []string{
	"I can hold deep focus on a single task without drifting.",
	"I follow my plan even when motivation is gone.",
	"I finish the things I start.",
	"I show up every day, not in bursts.",
}

// Model is the root Bubble Tea model for the questionnaire flow.
type Model struct {
	svc   *assessment.Service
	queue *notify.Queue

	phase    phase
	step     int // current question index
	likerts  []components.Likert
	outcome  *assessment.Outcome
	err      error
	toast    *notify.Notification
	width    int
	height   int
	quitting bool
}

// New builds the questionnaire model.
func New(svc *assessment.Service, queue *notify.Queue) Model {
	likerts := make([]components.Likert, len(questions))
	for i, q := range questions {
		likerts[i] = components.NewLikert(q)
	}
	return Model{
		svc:     svc,
		queue:   queue,
		phase:   phaseIntro,
		likerts: likerts,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.phase != phaseQuestions || msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m.updateKey(msg)

	case submitResultMsg:
		m.outcome = msg.outcome
		m.err = msg.err
		m.phase = phaseSummary
		return m, tea.Tick(toastInterval, func(t time.Time) tea.Msg {
			return toastTickMsg(t)
		})

	case toastTickMsg:
		// Cooperative drain step: one notification per tick, in FIFO
		// order. The queue itself never schedules anything.
		n, ok := m.queue.Next()
		if ok {
			m.toast = &n
		} else {
			m.toast = nil
		}
		return m, tea.Tick(toastInterval, func(t time.Time) tea.Msg {
			return toastTickMsg(t)
		})
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseIntro:
		if msg.String() == "enter" {
			m.phase = phaseQuestions
		}
		return m, nil

	case phaseQuestions:
		likert, cmd := m.likerts[m.step].Update(msg)
		m.likerts[m.step] = likert

		if likert.Submitted {
			if m.step < len(m.likerts)-1 {
				m.step++
			} else {
				return m, m.submit()
			}
		}
		return m, cmd

	case phaseSummary:
		if msg.String() == "enter" || msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// submit runs the assessment service off the update loop.
func (m Model) submit() tea.Cmd {
	sub := assessment.Submission{
		Focus:       m.likerts[0].Selected,
		Discipline:  m.likerts[1].Selected,
		Execution:   m.likerts[2].Selected,
		Consistency: m.likerts[3].Selected,
	}
	svc := m.svc
	return func() tea.Msg {
		outcome, err := svc.Submit(context.Background(), sub)
		return submitResultMsg{outcome: outcome, err: err}
	}
}

// Run starts the questionnaire program.
func Run(svc *assessment.Service, queue *notify.Queue) error {
	p := tea.NewProgram(New(svc, queue))
	_, err := p.Run()
	return err
}
