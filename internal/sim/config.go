package sim

import "time"

// Config carries every gameplay constant. It is fixed for the lifetime of a
// Game; DefaultConfig returns the tuning the game ships with.
type Config struct {
	Population int
	HumanIndex int
	Radius     float64

	HumanSpeed      float64
	AISpeedMin      float64
	AISpeedMax      float64
	PanicSpeedFloor float64

	ReactionDelayMin time.Duration
	ReactionDelayMax time.Duration
	MistakeRateMin   float64
	MistakeRateMax   float64

	SwitchMin       time.Duration
	SwitchMax       time.Duration
	WarningDuration time.Duration

	MoveEpsilon        float64
	PanicCullThreshold int
	PanicGroupMin      int
	PanicGroupMax      int
	RoamMin            time.Duration
	RoamMax            time.Duration

	GameDuration  time.Duration
	MaxFrameDelta time.Duration
}

// Steering and collision tuning that never varies between games.
const (
	aheadFactor      = 3.5  // forward cone length, in radii
	avoidPush        = 0.7  // lateral repulsion weight per neighbour
	sideDrift        = 0.12 // vertical bias scaled by sideBias
	lateralNoise     = 0.06 // full width of per-frame noise
	graceSpeedFactor = 0.9
	mistakeFactor    = 0.6
	mistakeChance    = 0.02 // per frame, once past grace
	wallMargin       = 2.0
	contactSlop      = 0.1
	panicShare       = 0.1
	minLength        = 1e-4
	spawnSpacing     = 2.6 // grid cell, in radii
	spawnPadding     = 20.0
	spawnLineGap     = 8.0
)

// DefaultConfig returns the standard 50 player game.
func DefaultConfig() Config {
	return Config{
		Population: 50,
		HumanIndex: 0,
		Radius:     9,

		HumanSpeed:      150,
		AISpeedMin:      110,
		AISpeedMax:      160,
		PanicSpeedFloor: 220,

		ReactionDelayMin: 120 * time.Millisecond,
		ReactionDelayMax: 260 * time.Millisecond,
		MistakeRateMin:   0.02,
		MistakeRateMax:   0.06,

		SwitchMin:       2 * time.Second,
		SwitchMax:       5 * time.Second,
		WarningDuration: 900 * time.Millisecond,

		MoveEpsilon:        0.35,
		PanicCullThreshold: 5,
		PanicGroupMin:      4,
		PanicGroupMax:      8,
		RoamMin:            500 * time.Millisecond,
		RoamMax:            1200 * time.Millisecond,

		GameDuration:  25 * time.Second,
		MaxFrameDelta: 33 * time.Millisecond,
	}
}
