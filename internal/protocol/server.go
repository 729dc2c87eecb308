package protocol

// Messages going out to clients.

type Welcome struct {
	ClientID   string `json:"clientId"`
	SessionID  string `json:"sessionId"`
	Controller bool   `json:"controller"`
	TickHz     int    `json:"tickHz"`
}

type State struct {
	Tick        int             `json:"tick"`
	Light       string          `json:"light"`
	Warning     bool            `json:"warning,omitempty"`
	RemainingMs int64           `json:"remainingMs"`
	Field       FieldSnapshot   `json:"field"`
	Agents      []AgentSnapshot `json:"agents"`
	Alive       int             `json:"alive"`
	Finished    int             `json:"finished"`
	Eliminated  int             `json:"eliminated"`
	TimeUp      bool            `json:"timeUp,omitempty"`
	Done        bool            `json:"done,omitempty"`
}

type FieldSnapshot struct {
	Left    float64 `json:"left"`
	Top     float64 `json:"top"`
	Right   float64 `json:"right"`
	Bottom  float64 `json:"bottom"`
	StartX  float64 `json:"startX"`
	FinishX float64 `json:"finishX"`
}

type AgentSnapshot struct {
	ID       int            `json:"id"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Alive    bool           `json:"alive"`
	Finished bool           `json:"finished,omitempty"`
	AI       bool           `json:"ai"`
	Panic    bool           `json:"panic,omitempty"`
	Moving   bool           `json:"moving,omitempty"`
	Marks    []MarkSnapshot `json:"marks,omitempty"`
}

// MarkSnapshot is a decorative blot relative to the agent centre.
type MarkSnapshot struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
	R  float64 `json:"r"`
}

type Event struct {
	Kind  string `json:"kind"`
	Agent int    `json:"agent"`
	Cause string `json:"cause,omitempty"`
	Light string `json:"light,omitempty"`
	Count int    `json:"count,omitempty"`
	AtMs  int64  `json:"atMs"`
}
