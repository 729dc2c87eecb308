package sim

import (
	"math"
	"time"
)

// applyRules runs after collision resolution: finish line, red-light
// movement, then the panic cull.
func (g *Game) applyRules(now time.Time) {
	for _, a := range g.agents {
		if !a.Active() {
			continue
		}
		if a.Pos.X >= g.field.FinishX {
			a.Finished = true
			a.Moving = false
			g.emit(Event{Kind: EventFinished, At: now, Agent: a.ID})
			continue
		}
		if g.movedOnRed(a, now) {
			g.eliminate(a, now, CauseMovedOnRed)
		}
		a.Prev = a.Pos
	}

	g.cullPanic(now)
}

func (g *Game) movedOnRed(a *Agent, now time.Time) bool {
	if !g.signal.Red() || a.ImmuneToRed || !now.After(a.ForgivenUntil) {
		return false
	}
	return a.Pos.Sub(a.Prev).Len() > g.cfg.MoveEpsilon
}

// eliminate is the single way an agent stops being alive. The first
// elimination of the game, unless it comes from the cull or the timeout,
// releases the panic cohort.
func (g *Game) eliminate(a *Agent, now time.Time, cause Cause) {
	if !a.Alive || a.Finished {
		return
	}
	a.Alive = false
	a.Moving = false
	a.EliminatedAt = now
	a.Prev = a.Pos
	a.Marks = g.makeMarks(a.Radius)
	g.emit(Event{Kind: EventEliminated, At: now, Agent: a.ID, Cause: cause})

	if cause == CauseMovedOnRed || cause == CauseIntent {
		g.triggerPanic(a, now)
	}
}

func (g *Game) triggerPanic(victim *Agent, now time.Time) {
	if g.panicTriggered {
		return
	}
	g.panicTriggered = true

	candidates := make([]*Agent, 0, len(g.agents))
	for _, q := range g.agents {
		if q != victim && q.Active() && q.Mode == ModeAI {
			candidates = append(candidates, q)
		}
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	size := g.cfg.PanicGroupMin + g.rng.Intn(g.cfg.PanicGroupMax-g.cfg.PanicGroupMin+1)
	size = min(size, len(candidates))
	for _, r := range candidates[:size] {
		r.Mode = ModePanic
		r.ImmuneToRed = true
		r.Speed = math.Max(r.Speed, g.cfg.PanicSpeedFloor)
		r.RoamDir = randomUnit(g.rng)
		r.RoamUntil = now.Add(randDuration(g.rng, g.cfg.RoamMin, g.cfg.RoamMax))
	}
	g.panicSize = size
	g.emit(Event{Kind: EventPanicTriggered, At: now, Agent: victim.ID, Count: size})
}

// cullPanic removes the panic cohort once enough AI agents have fallen.
func (g *Game) cullPanic(now time.Time) {
	if !g.panicTriggered || g.panicCulled {
		return
	}
	if g.eliminatedAI() < g.cfg.PanicCullThreshold {
		return
	}
	culled := 0
	for _, q := range g.agents {
		if q.IsPanicRunner() && q.Active() {
			g.eliminate(q, now, CauseCulled)
			culled++
		}
	}
	g.panicCulled = true
	g.emit(Event{Kind: EventPanicCulled, At: now, Agent: -1, Count: culled})
}

func (g *Game) eliminatedAI() int {
	n := 0
	for _, q := range g.agents {
		if q.IsAI() && !q.Alive {
			n++
		}
	}
	return n
}

// timeUp eliminates every straggler the first time the clock runs out.
func (g *Game) timeUp(now time.Time) {
	if g.timeUpTriggered || g.remaining > 0 {
		return
	}
	count := 0
	for _, a := range g.agents {
		if a.Active() {
			g.eliminate(a, now, CauseTimeUp)
			count++
		}
	}
	g.timeUpTriggered = true
	g.emit(Event{Kind: EventTimeUp, At: now, Agent: -1, Count: count})
}

func (g *Game) makeMarks(r float64) []Mark {
	n := 4 + g.rng.Intn(5)
	marks := make([]Mark, n)
	for i := range marks {
		theta := g.rng.Float64() * 2 * math.Pi
		dist := r * randRange(g.rng, 0.1, 0.7)
		marks[i] = Mark{
			DX: math.Cos(theta) * dist,
			DY: math.Sin(theta) * dist,
			R:  math.Max(1.2, r*randRange(g.rng, 0.16, 0.3)),
		}
	}
	return marks
}
