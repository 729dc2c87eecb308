package room

import (
	"time"

	"redlight/internal/protocol"
	"redlight/internal/sim"
)

func buildSnapshot(tick int, g *sim.Game) protocol.State {
	s := g.Snapshot()
	out := protocol.State{
		Tick:        tick,
		Light:       s.Light.String(),
		Warning:     s.Warning,
		RemainingMs: s.Remaining.Milliseconds(),
		Field: protocol.FieldSnapshot{
			Left:    s.Field.Left,
			Top:     s.Field.Top,
			Right:   s.Field.Right,
			Bottom:  s.Field.Bottom,
			StartX:  s.Field.StartX,
			FinishX: s.Field.FinishX,
		},
		Agents:     make([]protocol.AgentSnapshot, 0, len(s.Agents)),
		Alive:      s.Alive,
		Finished:   s.Finished,
		Eliminated: s.Eliminated,
		TimeUp:     s.TimeUp,
		Done:       g.Done(),
	}
	for _, a := range s.Agents {
		as := protocol.AgentSnapshot{
			ID:       a.ID,
			X:        a.X,
			Y:        a.Y,
			Alive:    a.Alive,
			Finished: a.Finished,
			AI:       a.IsAI,
			Panic:    a.Panic,
			Moving:   a.Moving,
		}
		for _, m := range a.Marks {
			as.Marks = append(as.Marks, protocol.MarkSnapshot{DX: m.DX, DY: m.DY, R: m.R})
		}
		out.Agents = append(out.Agents, as)
	}
	return out
}

func eventMessage(e sim.Event, start time.Time) protocol.Event {
	msg := protocol.Event{
		Kind:  e.Kind.String(),
		Agent: e.Agent,
		Count: e.Count,
		AtMs:  e.At.Sub(start).Milliseconds(),
	}
	switch e.Kind {
	case sim.EventEliminated:
		msg.Cause = e.Cause.String()
	case sim.EventLightChanged, sim.EventWarning:
		msg.Light = e.Light.String()
	}
	return msg
}
