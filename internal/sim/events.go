package sim

import "time"

// EventKind names a state transition worth reporting to collaborators.
type EventKind int

const (
	EventLightChanged EventKind = iota
	EventWarning
	EventEliminated
	EventFinished
	EventPanicTriggered
	EventPanicCulled
	EventTimeUp
)

func (k EventKind) String() string {
	switch k {
	case EventLightChanged:
		return "light"
	case EventWarning:
		return "warning"
	case EventEliminated:
		return "eliminated"
	case EventFinished:
		return "finished"
	case EventPanicTriggered:
		return "panic"
	case EventPanicCulled:
		return "cull"
	case EventTimeUp:
		return "timeup"
	}
	return "unknown"
}

// Cause explains why an agent was eliminated.
type Cause int

const (
	CauseNone Cause = iota
	CauseIntent
	CauseMovedOnRed
	CauseCulled
	CauseTimeUp
)

func (c Cause) String() string {
	switch c {
	case CauseIntent:
		return "intent"
	case CauseMovedOnRed:
		return "moved"
	case CauseCulled:
		return "culled"
	case CauseTimeUp:
		return "timeup"
	}
	return "none"
}

// Event is appended to the game's queue as it happens. Agent is -1 for
// events that do not concern a single agent; Count carries the cohort size
// for panic and time-up events.
type Event struct {
	Kind  EventKind
	At    time.Time
	Agent int
	Cause Cause
	Light Light
	Count int
}
