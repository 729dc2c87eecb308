package sim

import (
	"math"
	"time"
)

// move dispatches on the agent's mode.
func (g *Game) move(a *Agent, dt float64, now time.Time) {
	if !a.Active() {
		return
	}
	switch a.Mode {
	case ModeHuman:
		g.moveHuman(a, dt, now)
	case ModePanic:
		g.movePanic(a, dt, now)
	default:
		g.moveAI(a, dt, now)
	}
}

// moveHuman applies the directional intent. Any intent on red is judged on
// its own, before a single pixel of displacement happens.
func (g *Game) moveHuman(a *Agent, dt float64, now time.Time) {
	dir := g.intent.Unit()
	if dir.IsZero() {
		a.Moving = false
		return
	}
	if g.signal.Red() {
		g.eliminate(a, now, CauseIntent)
		return
	}
	a.Step(dir, 1, dt)
}

func (g *Game) moveAI(a *Agent, dt float64, now time.Time) {
	if g.signal.Green() {
		a.Step(g.steer(a), 1, dt)
		return
	}

	sinceRed := now.Sub(g.signal.RedStartAt())
	switch {
	case sinceRed < a.ReactionDelay:
		a.Step(g.steer(a), graceSpeedFactor, dt)
	case a.WillMistake && !a.HasMistaken && g.rng.Float64() < mistakeChance:
		a.Step(g.steer(a), mistakeFactor, dt)
		a.HasMistaken = true
	default:
		a.Moving = false
	}
}

// steer heads for the finish line while sliding away from anyone directly ahead.
func (g *Game) steer(a *Agent) Vec {
	dir := Vec{X: 1, Y: sideDrift * a.SideBias}

	ahead := a.Radius * aheadFactor
	for _, q := range g.agents {
		if q == a || !q.Active() {
			continue
		}
		dx := q.Pos.X - a.Pos.X
		dy := q.Pos.Y - a.Pos.Y
		if dx > 0 && dx < ahead && math.Abs(dy) < ahead {
			away := 1.0
			if dy > 0 {
				away = -1
			}
			dir.Y += away * avoidPush * (1 - dx/ahead)
		}
	}

	dir.Y += (g.rng.Float64() - 0.5) * lateralNoise

	l := dir.Len()
	if l < minLength {
		l = minLength
	}
	return dir.Scale(1 / l)
}

// movePanic roams in a random direction, bouncing off the walls, whatever the light.
func (g *Game) movePanic(a *Agent, dt float64, now time.Time) {
	if now.After(a.RoamUntil) {
		a.RoamDir = randomUnit(g.rng)
		a.RoamUntil = now.Add(randDuration(g.rng, g.cfg.RoamMin, g.cfg.RoamMax))
	}

	f := g.field
	if a.Pos.X <= f.Left+a.Radius+wallMargin || a.Pos.X >= f.Right-a.Radius-wallMargin {
		a.RoamDir.X = -a.RoamDir.X
	}
	if a.Pos.Y <= f.Top+a.Radius+wallMargin || a.Pos.Y >= f.Bottom-a.Radius-wallMargin {
		a.RoamDir.Y = -a.RoamDir.Y
	}

	a.Step(a.RoamDir, 1, dt)
}
