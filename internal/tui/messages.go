package tui

import (
	"time"

	"neuroforge/internal/assessment"
)

// submitResultMsg carries the outcome of the questionnaire submission.
type submitResultMsg struct {
	outcome *assessment.Outcome
	err     error
}

// toastTickMsg advances the toast queue drain.
type toastTickMsg time.Time
