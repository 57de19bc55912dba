package domain

import "time"

// Outcome classifies how a dispatch ended.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeNotFound
	OutcomeDisabled
	OutcomeFailed
)

// Outcomes lists every outcome in storage order.
var Outcomes = []Outcome{OutcomeOK, OutcomeNotFound, OutcomeDisabled, OutcomeFailed}

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeDisabled:
		return "disabled"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ParseOutcome converts a stored outcome name back to an Outcome.
func ParseOutcome(s string) Outcome {
	switch s {
	case "ok":
		return OutcomeOK
	case "not_found":
		return OutcomeNotFound
	case "disabled":
		return OutcomeDisabled
	default:
		return OutcomeFailed
	}
}

// HistoryEntry is one recorded dispatch.
type HistoryEntry struct {
	ID         int64
	DispatchID string
	Text       string
	Path       string
	Outcome    Outcome
	Message    string
	CreatedAt  time.Time
}

// HistoryFilter narrows History listings. Zero values mean no filter.
type HistoryFilter struct {
	Outcome *Outcome
	Since   *time.Time
	Limit   int
}
