package sim

import (
	"math/rand"
	"time"
)

// Light is the shared phase every agent must obey.
type Light int

const (
	Green Light = iota
	Red
)

func (l Light) String() string {
	if l == Red {
		return "RED"
	}
	return "GREEN"
}

// Signal is the light state machine. Warning is an overlay that is only ever
// set while the light is Green.
type Signal struct {
	light        Light
	warning      bool
	lastSwitchAt time.Time
	nextSwitchAt time.Time
	warnAt       time.Time
	redStartAt   time.Time
	redPhases    int
}

func newSignal(now time.Time, cfg Config, rng *rand.Rand) Signal {
	s := Signal{light: Green, lastSwitchAt: now}
	s.nextSwitchAt = now.Add(randDuration(rng, cfg.SwitchMin, cfg.SwitchMax))
	s.warnAt = s.nextSwitchAt.Add(-cfg.WarningDuration)
	return s
}

func (s *Signal) Light() Light            { return s.light }
func (s *Signal) Green() bool             { return s.light == Green }
func (s *Signal) Red() bool               { return s.light == Red }
func (s *Signal) Warning() bool           { return s.warning }
func (s *Signal) LastSwitchAt() time.Time { return s.lastSwitchAt }
func (s *Signal) NextSwitchAt() time.Time { return s.nextSwitchAt }
func (s *Signal) RedStartAt() time.Time   { return s.redStartAt }

// RedPhases counts how many times the light has turned red.
func (s *Signal) RedPhases() int { return s.redPhases }

// due reports whether the schedule has elapsed.
func (s *Signal) due(now time.Time) bool {
	return !now.Before(s.nextSwitchAt)
}

// toggle flips the light and draws the next interval. It reports whether the
// light is now red so the caller can hand out grace windows.
func (s *Signal) toggle(now time.Time, cfg Config, rng *rand.Rand) bool {
	s.lastSwitchAt = now
	s.nextSwitchAt = now.Add(randDuration(rng, cfg.SwitchMin, cfg.SwitchMax))
	s.warning = false
	if s.light == Green {
		s.light = Red
		s.redStartAt = now
		s.redPhases++
		return true
	}
	s.light = Green
	s.warnAt = s.nextSwitchAt.Add(-cfg.WarningDuration)
	return false
}

// raiseWarning sets the warning overlay once the pre-red window opens.
func (s *Signal) raiseWarning(now time.Time) bool {
	if s.light != Green || s.warning || now.Before(s.warnAt) {
		return false
	}
	s.warning = true
	return true
}

func randDuration(rng *rand.Rand, lo, hi time.Duration) time.Duration {
	return lo + time.Duration(rng.Float64()*float64(hi-lo))
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
