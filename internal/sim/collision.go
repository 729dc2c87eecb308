package sim

const resolvePasses = 2

// resolveCollisions clamps everyone into the field and then pushes
// overlapping pairs apart. Eliminated agents take no part. Finished agents
// are solid but never yield, so their final position holds.
func (g *Game) resolveCollisions() {
	for _, a := range g.agents {
		if a.Active() {
			a.Pos = g.field.Clamp(a.Pos, a.Radius)
		}
	}

	for pass := 0; pass < resolvePasses; pass++ {
		for i, a := range g.agents {
			if !a.Alive {
				continue
			}
			for _, b := range g.agents[i+1:] {
				if !b.Alive {
					continue
				}
				g.separate(a, b)
			}
		}
	}
}

func (g *Game) separate(a, b *Agent) {
	if a.Finished && b.Finished {
		return
	}
	d := b.Pos.Sub(a.Pos)
	dist := d.Len()
	if dist < minLength {
		dist = minLength
	}
	reach := a.Radius + b.Radius + contactSlop
	if dist >= reach {
		return
	}

	depth := reach - dist
	n := d.Scale(1 / dist)
	wa, wb := shares(a, b)

	if wa > 0 {
		a.Pos = g.field.Clamp(a.Pos.Sub(n.Scale(depth*wa)), a.Radius)
	}
	if wb > 0 {
		b.Pos = g.field.Clamp(b.Pos.Add(n.Scale(depth*wb)), b.Radius)
	}
}

// shares splits a correction between two overlapping agents. The weights
// always sum to one.
func shares(a, b *Agent) (float64, float64) {
	switch {
	case a.Finished:
		return 0, 1
	case b.Finished:
		return 1, 0
	}

	wa, wb := 0.5, 0.5
	if a.Moving && !b.Moving {
		wa, wb = 1, 0
	} else if !a.Moving && b.Moving {
		wa, wb = 0, 1
	}

	// Panic runners shove through the crowd.
	if a.IsPanicRunner() && !b.IsPanicRunner() {
		wa, wb = panicShare, 1-panicShare
	} else if !a.IsPanicRunner() && b.IsPanicRunner() {
		wa, wb = 1-panicShare, panicShare
	}
	return wa, wb
}
