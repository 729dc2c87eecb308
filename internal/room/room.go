// Package room hosts a single game session. One goroutine owns the game:
// commands from connections arrive on Inbox and are applied between ticks,
// so the simulation itself never needs a lock.
package room

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"redlight/internal/layout"
	"redlight/internal/protocol"
	"redlight/internal/sim"
)

type Options struct {
	TickHz      int
	BroadcastHz int
	ViewWidth   float64
	ViewHeight  float64
	Config      sim.Config
	Now         func() time.Time
	GameOptions []sim.Option
}

func (o Options) withDefaults() Options {
	if o.TickHz <= 0 {
		o.TickHz = 60
	}
	if o.BroadcastHz <= 0 || o.BroadcastHz > o.TickHz {
		o.BroadcastHz = o.TickHz
	}
	if o.ViewWidth <= 0 || o.ViewHeight <= 0 {
		o.ViewWidth, o.ViewHeight = 1280, 720
	}
	if o.Config.Population == 0 {
		o.Config = sim.DefaultConfig()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type Room struct {
	Inbox chan any

	SessionID string

	opts           Options
	game           *sim.Game
	tick           int
	broadcastEvery int
	clients        map[string]Conn
	order          []string
	controller     string
}

// New builds the room and starts its game at the current time.
func New(opts Options) (*Room, error) {
	opts = opts.withDefaults()
	field, err := layout.Field(opts.ViewWidth, opts.ViewHeight)
	if err != nil {
		return nil, err
	}
	return &Room{
		Inbox:          make(chan any, 256),
		SessionID:      uuid.NewString(),
		opts:           opts,
		game:           sim.New(opts.Config, field, opts.Now(), opts.GameOptions...),
		broadcastEvery: max(1, opts.TickHz/opts.BroadcastHz),
		clients:        make(map[string]Conn),
	}, nil
}

// NumClients returns the number of connected clients. Only call it from the
// room goroutine or after Run has returned.
func (r *Room) NumClients() int {
	return len(r.clients)
}

// Run drives the game until ctx is cancelled.
func (r *Room) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(r.opts.TickHz))
	defer ticker.Stop()

	log.Printf("room %s: game started, %d agents", r.SessionID, len(r.game.Agents()))
	for {
		select {
		case <-ctx.Done():
			r.closeAll()
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			r.step(r.opts.Now())
		}
	}
}

func (r *Room) step(now time.Time) {
	r.game.Tick(now)
	r.tick++
	for _, e := range r.game.DrainEvents() {
		r.report(e)
	}
	if r.tick%r.broadcastEvery == 0 {
		r.broadcastState()
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		id := uuid.NewString()
		r.clients[id] = c.Conn
		r.order = append(r.order, id)
		if r.controller == "" {
			r.controller = id
		}
		log.Printf("room %s: client %s joined name=%q controller=%v", r.SessionID, id, c.Name, r.controller == id)
		r.sendTo(id, protocol.MsgWelcome, protocol.Welcome{
			ClientID:   id,
			SessionID:  r.SessionID,
			Controller: r.controller == id,
			TickHz:     r.opts.TickHz,
		})
		if c.Reply != nil {
			c.Reply <- JoinResult{ClientID: id, Controller: r.controller == id}
		}
	case Input:
		if c.ClientID != r.controller {
			return
		}
		r.game.SetIntent(c.Input.Intent())
	case Resize:
		if c.ClientID != r.controller {
			return
		}
		field, err := layout.Field(c.Width, c.Height)
		if err != nil {
			log.Printf("room %s: ignoring resize %vx%v: %v", r.SessionID, c.Width, c.Height, err)
			return
		}
		r.game.SetField(field)
	case Leave:
		r.removeClient(c.ClientID)
	}
}

func (r *Room) removeClient(id string) {
	c, ok := r.clients[id]
	if !ok {
		return
	}
	_ = c.Close()
	delete(r.clients, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	log.Printf("room %s: client %s left", r.SessionID, id)

	if r.controller != id {
		return
	}
	// Hand the human agent to the longest connected spectator.
	r.controller = ""
	r.game.SetIntent(0, 0)
	if len(r.order) > 0 {
		r.controller = r.order[0]
		r.sendTo(r.controller, protocol.MsgWelcome, protocol.Welcome{
			ClientID:   r.controller,
			SessionID:  r.SessionID,
			Controller: true,
			TickHz:     r.opts.TickHz,
		})
	}
}

func (r *Room) closeAll() {
	for id := range r.clients {
		r.removeClient(id)
	}
}

func (r *Room) report(e sim.Event) {
	switch e.Kind {
	case sim.EventLightChanged:
		log.Printf("room %s: light=%s", r.SessionID, e.Light)
	case sim.EventEliminated:
		log.Printf("room %s: agent %d eliminated cause=%s", r.SessionID, e.Agent, e.Cause)
	case sim.EventFinished:
		log.Printf("room %s: agent %d finished", r.SessionID, e.Agent)
	case sim.EventPanicTriggered:
		log.Printf("room %s: panic cohort of %d released", r.SessionID, e.Count)
	case sim.EventPanicCulled:
		log.Printf("room %s: panic cohort culled, %d eliminated", r.SessionID, e.Count)
	case sim.EventTimeUp:
		alive, finished, _ := r.game.Counts()
		log.Printf("room %s: time up, %d stragglers eliminated, %d finished of %d alive", r.SessionID, e.Count, finished, alive)
	}
	r.broadcast(protocol.MsgEvent, eventMessage(e, r.game.StartedAt()))
}

func (r *Room) broadcastState() {
	r.broadcast(protocol.MsgState, buildSnapshot(r.tick, r.game))
}

func (r *Room) broadcast(t string, payload any) {
	b, err := protocol.Encode(t, payload)
	if err != nil {
		log.Printf("room %s: encode %s: %v", r.SessionID, t, err)
		return
	}

	var failed []string
	for id, c := range r.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.removeClient(id)
	}
}

func (r *Room) sendTo(id, t string, payload any) {
	c, ok := r.clients[id]
	if !ok {
		return
	}
	b, err := protocol.Encode(t, payload)
	if err != nil {
		log.Printf("room %s: encode %s: %v", r.SessionID, t, err)
		return
	}
	if err := c.Send(b); err != nil {
		r.removeClient(id)
	}
}
