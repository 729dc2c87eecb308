package room

import "redlight/internal/protocol"

// Conn is the outbound side of a client connection.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Join is issued once per connection after the hello has been read.
type Join struct {
	Conn  Conn
	Name  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	ClientID   string
	Controller bool
}

// Input carries the latest key state of a client. Only the controlling
// client steers the human agent.
type Input struct {
	ClientID string
	Input    protocol.Input
}

// Resize carries a new viewport size.
type Resize struct {
	ClientID string
	Width    float64
	Height   float64
}

// Leave is issued on disconnect.
type Leave struct {
	ClientID string
}
