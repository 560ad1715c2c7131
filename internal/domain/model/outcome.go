package model

import "time"

// OutcomeKind partitions processing failures by what should happen to the
// queue message.
type OutcomeKind int

const (
	// OutcomeNone leaves the message untouched; the queue redelivers it
	// after the visibility timeout expires.
	OutcomeNone OutcomeKind = iota
	// OutcomeAck deletes the message; the failure is permanent.
	OutcomeAck
	// OutcomeRedeliver leaves the message for the queue's own retry cadence
	// after logging the transient failure.
	OutcomeRedeliver
	// OutcomeScheduleRetry creates a one-shot future trigger re-injecting
	// the original body, then deletes the current message.
	OutcomeScheduleRetry
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAck:
		return "ack"
	case OutcomeRedeliver:
		return "redeliver"
	case OutcomeScheduleRetry:
		return "schedule_retry"
	default:
		return "none"
	}
}

// Outcome is the classified result of a single failed processing attempt.
// Delay is only meaningful for OutcomeScheduleRetry.
type Outcome struct {
	Kind  OutcomeKind
	Delay time.Duration
}
