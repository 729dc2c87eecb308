package sim

import (
	"math/rand"
	"testing"
)

func TestAgentStepScalesSpeed(t *testing.T) {
	agent := Agent{Speed: 2}
	agent.Step(Vec{X: 1}, 0.5, 1.0)

	if agent.Pos.X != 1.0 {
		t.Fatalf("expected X to advance by 1.0, got %v", agent.Pos.X)
	}
	if agent.Pos.Y != 0 {
		t.Fatalf("expected Y to remain unchanged, got %v", agent.Pos.Y)
	}
	if !agent.Moving {
		t.Fatal("expected agent to be flagged moving")
	}
}

func TestSpawnPopulation(t *testing.T) {
	cfg := DefaultConfig()
	f := testField(t)
	agents := spawn(f, cfg, rand.New(rand.NewSource(3)))

	if len(agents) != cfg.Population {
		t.Fatalf("expected %d agents, got %d", cfg.Population, len(agents))
	}
	for i, a := range agents {
		if a.ID != i {
			t.Fatalf("expected agent %d to carry id %d, got %d", i, i, a.ID)
		}
		if !a.Alive || a.Finished {
			t.Fatalf("agent %d should start alive and unfinished", i)
		}
		if a.Pos.X >= f.StartX {
			t.Fatalf("agent %d spawned past the start line at x=%v", i, a.Pos.X)
		}
		if a.Prev != a.Pos {
			t.Fatalf("agent %d previous position not initialised", i)
		}
		if i == cfg.HumanIndex {
			if a.IsAI() || a.Speed != cfg.HumanSpeed || a.ReactionDelay != 0 {
				t.Fatalf("unexpected human agent %+v", a)
			}
			continue
		}
		if !a.IsAI() || a.IsPanicRunner() {
			t.Fatalf("agent %d should be a calm AI, got mode %v", i, a.Mode)
		}
		if a.Speed < cfg.AISpeedMin || a.Speed > cfg.AISpeedMax {
			t.Fatalf("agent %d speed %v out of range", i, a.Speed)
		}
		if a.ReactionDelay < cfg.ReactionDelayMin || a.ReactionDelay > cfg.ReactionDelayMax {
			t.Fatalf("agent %d reaction delay %v out of range", i, a.ReactionDelay)
		}
		if a.MistakeRate < cfg.MistakeRateMin || a.MistakeRate > cfg.MistakeRateMax {
			t.Fatalf("agent %d mistake rate %v out of range", i, a.MistakeRate)
		}
		if a.SideBias != 1 && a.SideBias != -1 {
			t.Fatalf("agent %d side bias %v, want ±1", i, a.SideBias)
		}
	}
}

func TestSpawnWithoutOverlap(t *testing.T) {
	cfg := DefaultConfig()
	agents := spawn(testField(t), cfg, rand.New(rand.NewSource(11)))

	for i, a := range agents {
		for _, b := range agents[i+1:] {
			if d := a.Pos.Sub(b.Pos).Len(); d < a.Radius+b.Radius {
				t.Fatalf("agents %d and %d overlap at spawn: distance %v", a.ID, b.ID, d)
			}
		}
	}
}
