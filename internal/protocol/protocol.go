// Package protocol is the wire format between the game server and its
// clients. Every frame is a protobuf Struct envelope {t, p} where t names the
// message type and p carries its fields.
package protocol

import "google.golang.org/protobuf/types/known/structpb"

const Version = 1

const (
	MsgHello   = "hello"
	MsgWelcome = "welcome"
	MsgInput   = "input"
	MsgResize  = "resize"
	MsgState   = "state"
	MsgEvent   = "event"
)

type Envelope struct {
	T string
	P *structpb.Struct
}
