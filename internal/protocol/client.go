package protocol

// Messages coming in from the client.

type Hello struct {
	V    int    `json:"v"`
	Name string `json:"name,omitempty"`
}

// Input is the raw W/A/S/D key state.
type Input struct {
	Up    bool `json:"up,omitempty"`
	Down  bool `json:"down,omitempty"`
	Left  bool `json:"left,omitempty"`
	Right bool `json:"right,omitempty"`
}

// Intent combines the keys into a direction. Opposing keys cancel; the
// result is not normalised.
func (in Input) Intent() (dx, dy float64) {
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	return dx, dy
}

// Resize reports the client's viewport in CSS pixels.
type Resize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
