package domain

import "time"

// Outcome labels of a panel analysis attempt
const (
	OutcomeSuccess   = "success"
	OutcomeBusy      = "busy"
	OutcomeCanceled  = "canceled"
	OutcomeDiscarded = "discarded"
	OutcomeError     = "error"
)

// AnalysisObserver receives one event per analysis attempt
type AnalysisObserver interface {
	ObserveAnalysis(section Section, outcome string, elapsed time.Duration)
}
