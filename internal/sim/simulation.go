package sim

import (
	"math/rand"
	"time"
)

// Game is one session of red light, green light. It is not safe for
// concurrent use: a single driver calls Tick and the setters, and readers
// look at the state in between ticks.
type Game struct {
	cfg    Config
	rng    *rand.Rand
	field  Field
	signal Signal
	agents []*Agent
	human  *Agent
	intent Vec

	startAt   time.Time
	lastTick  time.Time
	remaining time.Duration

	panicTriggered  bool
	panicCulled     bool
	panicSize       int
	timeUpTriggered bool

	events []Event
}

// Option customises a Game.
type Option func(*Game)

// WithRand injects the random source used for every draw the game makes.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// New spawns the population and starts the clock and the light at now.
func New(cfg Config, field Field, now time.Time, opts ...Option) *Game {
	g := &Game{
		cfg:       cfg,
		field:     field,
		startAt:   now,
		lastTick:  now,
		remaining: cfg.GameDuration,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.signal = newSignal(now, cfg, g.rng)
	g.agents = spawn(field, cfg, g.rng)
	if cfg.HumanIndex >= 0 && cfg.HumanIndex < len(g.agents) {
		g.human = g.agents[cfg.HumanIndex]
	}
	return g
}

// SetIntent records the human's combined directional input. The vector is
// normalised by the game, so raw key sums are fine.
func (g *Game) SetIntent(dx, dy float64) {
	g.intent = Vec{X: dx, Y: dy}
}

// SetField replaces the field boundaries, typically after a resize.
func (g *Game) SetField(f Field) {
	g.field = f
}

// Tick advances the game to now.
func (g *Game) Tick(now time.Time) {
	dt := now.Sub(g.lastTick)
	if dt < 0 {
		dt = 0
	}
	dt = min(dt, g.cfg.MaxFrameDelta)
	seconds := dt.Seconds()

	g.advanceSignal(now)

	elapsed := now.Sub(g.startAt)
	g.remaining = max(0, min(g.remaining, g.cfg.GameDuration-elapsed))
	g.timeUp(now)

	for _, a := range g.agents {
		a.Moving = false
	}
	if g.human != nil {
		g.move(g.human, seconds, now)
	}
	for _, a := range g.agents {
		if a != g.human {
			g.move(a, seconds, now)
		}
	}

	g.resolveCollisions()
	g.applyRules(now)

	g.lastTick = now
}

func (g *Game) advanceSignal(now time.Time) {
	if g.signal.due(now) {
		if g.signal.toggle(now, g.cfg, g.rng) {
			g.beginRed()
		}
		g.emit(Event{Kind: EventLightChanged, At: now, Agent: -1, Light: g.signal.Light()})
	}
	if g.signal.raiseWarning(now) {
		g.emit(Event{Kind: EventWarning, At: now, Agent: -1, Light: Green})
	}
}

// beginRed rolls this phase's mistakes and hands out grace windows.
func (g *Game) beginRed() {
	redStart := g.signal.RedStartAt()
	for _, a := range g.agents {
		if !a.Active() {
			continue
		}
		if a.IsAI() {
			a.WillMistake = g.rng.Float64() < a.MistakeRate
			a.HasMistaken = false
			a.ForgivenUntil = redStart.Add(a.ReactionDelay)
			continue
		}
		a.ForgivenUntil = redStart
	}
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// DrainEvents returns the events queued since the last call.
func (g *Game) DrainEvents() []Event {
	out := g.events
	g.events = nil
	return out
}

func (g *Game) Config() Config  { return g.cfg }
func (g *Game) Field() Field    { return g.field }
func (g *Game) Signal() *Signal { return &g.signal }
func (g *Game) Agents() []*Agent {
	return g.agents
}

// Human returns the player controlled agent, or nil if the population has none.
func (g *Game) Human() *Agent { return g.human }

// Remaining is the time left on the game clock, never below zero.
func (g *Game) Remaining() time.Duration { return g.remaining }

func (g *Game) StartedAt() time.Time  { return g.startAt }
func (g *Game) PanicTriggered() bool  { return g.panicTriggered }
func (g *Game) PanicCulled() bool     { return g.panicCulled }
func (g *Game) TimeUpTriggered() bool { return g.timeUpTriggered }

// PanicSize is the number of agents drafted into the panic cohort.
func (g *Game) PanicSize() int { return g.panicSize }

// Counts reports how many agents are alive (finished included), finished
// and eliminated.
func (g *Game) Counts() (alive, finished, eliminated int) {
	for _, a := range g.agents {
		switch {
		case !a.Alive:
			eliminated++
		case a.Finished:
			alive++
			finished++
		default:
			alive++
		}
	}
	return alive, finished, eliminated
}

// Done reports whether no agent is left on the field.
func (g *Game) Done() bool {
	for _, a := range g.agents {
		if a.Active() {
			return false
		}
	}
	return true
}
