package sim

import (
	"math"
	"math/rand"
	"time"
)

// Mode selects which movement policy drives an agent.
type Mode int

const (
	ModeHuman Mode = iota
	ModeAI
	ModePanic
)

func (m Mode) String() string {
	switch m {
	case ModeHuman:
		return "human"
	case ModePanic:
		return "panic"
	default:
		return "ai"
	}
}

// Mark is one decorative blot left on an eliminated agent, relative to its centre.
type Mark struct {
	DX, DY, R float64
}

// Agent is a single participant on the field.
type Agent struct {
	ID     int
	Mode   Mode
	Pos    Vec
	Prev   Vec
	Radius float64
	Speed  float64

	Alive    bool
	Finished bool
	Moving   bool

	// Fixed at creation.
	ReactionDelay time.Duration
	MistakeRate   float64
	SideBias      float64

	// Reset on every red phase.
	WillMistake   bool
	HasMistaken   bool
	ForgivenUntil time.Time

	ImmuneToRed bool
	RoamDir     Vec
	RoamUntil   time.Time

	EliminatedAt time.Time
	Marks        []Mark
}

// IsAI reports whether the agent is computer controlled, panicking or not.
func (a *Agent) IsAI() bool { return a.Mode != ModeHuman }

// IsPanicRunner reports whether the agent belongs to the panic cohort.
func (a *Agent) IsPanicRunner() bool { return a.Mode == ModePanic }

// Active reports whether the agent still takes part in the game.
func (a *Agent) Active() bool { return a.Alive && !a.Finished }

// Step advances the agent along dir at factor times its speed.
func (a *Agent) Step(dir Vec, factor, deltaSeconds float64) {
	speed := a.Speed * factor
	a.Pos.X += dir.X * speed * deltaSeconds
	a.Pos.Y += dir.Y * speed * deltaSeconds
	a.Moving = true
}

func newAI(id int, pos Vec, cfg Config, rng *rand.Rand) *Agent {
	side := 1.0
	if rng.Float64() < 0.5 {
		side = -1
	}
	return &Agent{
		ID:            id,
		Mode:          ModeAI,
		Pos:           pos,
		Prev:          pos,
		Radius:        cfg.Radius,
		Speed:         randRange(rng, cfg.AISpeedMin, cfg.AISpeedMax),
		Alive:         true,
		ReactionDelay: randDuration(rng, cfg.ReactionDelayMin, cfg.ReactionDelayMax),
		MistakeRate:   randRange(rng, cfg.MistakeRateMin, cfg.MistakeRateMax),
		SideBias:      side,
	}
}

func newHuman(id int, pos Vec, cfg Config) *Agent {
	return &Agent{
		ID:       id,
		Mode:     ModeHuman,
		Pos:      pos,
		Prev:     pos,
		Radius:   cfg.Radius,
		Speed:    cfg.HumanSpeed,
		Alive:    true,
		SideBias: 1,
	}
}

// spawn lays the population out on a grid behind the start line.
func spawn(f Field, cfg Config, rng *rand.Rand) []*Agent {
	cell := cfg.Radius * spawnSpacing
	left := f.Left + spawnPadding
	right := f.StartX - spawnLineGap
	top := f.Top + spawnPadding
	bottom := f.Bottom - spawnPadding

	cols := max(1, int(math.Floor((right-left)/cell)))
	rows := max(1, int(math.Floor((bottom-top)/cell)))

	agents := make([]*Agent, 0, cfg.Population)
	for i := 0; i < cfg.Population; i++ {
		// Overflow wraps onto the grid again rather than dropping agents.
		slot := i % (cols * rows)
		row, col := slot/cols, slot%cols
		pos := Vec{
			X: left + (float64(col)+0.5)*cell + rng.Float64()*2 - 1,
			Y: top + (float64(row)+0.5)*cell + rng.Float64()*2 - 1,
		}
		if i == cfg.HumanIndex {
			agents = append(agents, newHuman(i, pos, cfg))
			continue
		}
		agents = append(agents, newAI(i, pos, cfg, rng))
	}
	return agents
}

// randomUnit draws a direction uniformly from the unit square, normalised.
func randomUnit(rng *rand.Rand) Vec {
	v := Vec{rng.Float64()*2 - 1, rng.Float64()*2 - 1}
	l := v.Len()
	if l < minLength {
		l = 1
	}
	return v.Scale(1 / l)
}
