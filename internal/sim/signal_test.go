package sim

import (
	"errors"
	"testing"
	"time"
)

func TestSignalScheduleWithinBounds(t *testing.T) {
	g := newTestGame(t, 9)
	s := g.Signal()

	interval := s.NextSwitchAt().Sub(s.LastSwitchAt())
	if interval < 2*time.Second || interval > 5*time.Second {
		t.Fatalf("expected first interval within 2s..5s, got %v", interval)
	}
}

func TestSignalWarningPrecedesRed(t *testing.T) {
	g := newTestGame(t, 9)
	isolate(g)
	next := g.Signal().NextSwitchAt()

	g.Tick(next.Add(-901 * time.Millisecond))
	if g.Signal().Warning() {
		t.Fatal("expected no warning before the warning window")
	}

	g.Tick(next.Add(-900 * time.Millisecond))
	if !g.Signal().Warning() || !g.Signal().Green() {
		t.Fatal("expected warning while still green")
	}

	g.Tick(next)
	if !g.Signal().Red() {
		t.Fatal("expected light to turn red on schedule")
	}
	if g.Signal().Warning() {
		t.Fatal("expected warning to clear on red")
	}
	if !g.Signal().RedStartAt().Equal(next) {
		t.Fatalf("expected red to start at %v, got %v", next, g.Signal().RedStartAt())
	}
}

func TestRedEntryAssignsGrace(t *testing.T) {
	g := newTestGame(t, 13)
	next := g.Signal().NextSwitchAt()

	g.Tick(next)
	if !g.Signal().Red() {
		t.Fatal("expected red after the scheduled switch")
	}

	for _, a := range g.agents {
		if !a.Active() {
			continue
		}
		want := next.Add(a.ReactionDelay)
		if !a.IsAI() {
			want = next
		}
		if !a.ForgivenUntil.Equal(want) {
			t.Fatalf("agent %d forgiven until %v, want %v", a.ID, a.ForgivenUntil, want)
		}
		if a.HasMistaken {
			t.Fatalf("agent %d should start the red phase without a mistake", a.ID)
		}
	}
}

func TestGraceOnlyChangesOnRedEntry(t *testing.T) {
	g := newTestGame(t, 21)
	isolate(g, 5, 6, 7)
	next := g.Signal().NextSwitchAt()
	g.Tick(next)

	first := make(map[int]time.Time)
	for _, a := range g.agents {
		first[a.ID] = a.ForgivenUntil
	}

	// Stay inside every grace window and then let the light go green.
	g.Tick(next.Add(50 * time.Millisecond))
	greenAt := g.Signal().NextSwitchAt()
	g.Tick(greenAt)
	if !g.Signal().Green() {
		t.Fatal("expected light back to green")
	}
	for _, a := range g.agents {
		if !a.ForgivenUntil.Equal(first[a.ID]) {
			t.Fatalf("agent %d grace reassigned outside red entry", a.ID)
		}
	}

	redAgain := g.Signal().NextSwitchAt()
	g.Tick(redAgain)
	if g.Signal().RedPhases() != 2 {
		t.Fatalf("expected two red phases, got %d", g.Signal().RedPhases())
	}
	for _, a := range g.agents {
		if !a.Active() {
			continue
		}
		if want := redAgain.Add(a.ReactionDelay); !a.ForgivenUntil.Equal(want) {
			t.Fatalf("agent %d forgiven until %v, want %v", a.ID, a.ForgivenUntil, want)
		}
	}
}

func TestNewFieldValidates(t *testing.T) {
	if _, err := NewField(0, 0, 100, 100, 50, 40); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField for crossed lines, got %v", err)
	}
	if _, err := NewField(0, 100, 100, 50, 10, 90); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField for inverted rectangle, got %v", err)
	}

	f, err := NewField(10, 20, 110, 70, 30, 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Width != 100 || f.Height != 50 {
		t.Fatalf("expected 100x50 field, got %vx%v", f.Width, f.Height)
	}
}
