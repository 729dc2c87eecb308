package sim

import "time"

// AgentView is the read-only projection of an agent handed to renderers.
type AgentView struct {
	ID       int
	X, Y     float64
	Alive    bool
	Finished bool
	IsAI     bool
	Panic    bool
	Moving   bool
	Marks    []Mark
}

// Snapshot is a copy of everything the status and rendering collaborators
// read after a tick.
type Snapshot struct {
	Light      Light
	Warning    bool
	Remaining  time.Duration
	Field      Field
	Agents     []AgentView
	Alive      int
	Finished   int
	Eliminated int
	TimeUp     bool
}

// Snapshot copies the committed state of the last tick.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Light:     g.signal.Light(),
		Warning:   g.signal.Warning(),
		Remaining: g.remaining,
		Field:     g.field,
		Agents:    make([]AgentView, 0, len(g.agents)),
		TimeUp:    g.timeUpTriggered,
	}
	s.Alive, s.Finished, s.Eliminated = g.Counts()
	for _, a := range g.agents {
		s.Agents = append(s.Agents, AgentView{
			ID:       a.ID,
			X:        a.Pos.X,
			Y:        a.Pos.Y,
			Alive:    a.Alive,
			Finished: a.Finished,
			IsAI:     a.IsAI(),
			Panic:    a.IsPanicRunner(),
			Moving:   a.Moving,
			Marks:    append([]Mark(nil), a.Marks...),
		})
	}
	return s
}
