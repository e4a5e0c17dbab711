package entity

import "fmt"

type OutcomeKind int

const (
	OutcomeOK OutcomeKind = iota
	// OutcomeDenied is terminal for the attempt: permission lost or the request expired remotely.
	OutcomeDenied
	// OutcomeUnavailable is transient: the request stays pending for a later batch.
	OutcomeUnavailable
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOK:
		return "ok"
	case OutcomeDenied:
		return "denied"
	case OutcomeUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of one remote approve or decline call.
type Outcome struct {
	Kind   OutcomeKind
	Reason string
}

func Ok() Outcome {
	return Outcome{Kind: OutcomeOK}
}

func Denied(reason string) Outcome {
	return Outcome{Kind: OutcomeDenied, Reason: reason}
}

func Unavailable(reason string) Outcome {
	return Outcome{Kind: OutcomeUnavailable, Reason: reason}
}

func (o Outcome) IsOK() bool {
	return o.Kind == OutcomeOK
}

// BatchResult summarizes one pass of the batch executor.
type BatchResult struct {
	RunID       string
	ChannelID   int64
	Attempted   int
	Approved    int
	Rejected    int
	Unavailable int
}

// Remaining is how many attempted requests were left pending.
func (r BatchResult) Remaining() int {
	return r.Unavailable
}
