package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrMalformed is returned for frames that are not a valid envelope.
var ErrMalformed = errors.New("malformed envelope")

// Encode wraps payload, which must marshal to a JSON object, in an envelope
// of type t.
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("encode: empty message type: %w", ErrMalformed)
	}
	if payload == nil {
		return nil, fmt.Errorf("encode %s: nil payload: %w", t, ErrMalformed)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", t, err)
	}
	p := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("encode %s: payload is not an object: %w", t, err)
	}
	env := &structpb.Struct{Fields: map[string]*structpb.Value{
		"t": structpb.NewStringValue(t),
		"p": structpb.NewStructValue(p),
	}}
	return proto.Marshal(env)
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("decode: empty frame: %w", ErrMalformed)
	}
	var s structpb.Struct
	if err := proto.Unmarshal(b, &s); err != nil {
		return Envelope{}, fmt.Errorf("decode: %w", err)
	}
	t := s.GetFields()["t"].GetStringValue()
	if t == "" {
		return Envelope{}, fmt.Errorf("decode: missing message type: %w", ErrMalformed)
	}
	return Envelope{T: t, P: s.GetFields()["p"].GetStructValue()}, nil
}

// DecodePayload unpacks the envelope payload into a message struct.
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if env.P == nil {
		return out, fmt.Errorf("decode %s: missing payload: %w", env.T, ErrMalformed)
	}
	raw, err := protojson.Marshal(env.P)
	if err != nil {
		return out, fmt.Errorf("decode %s: %w", env.T, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", env.T, err)
	}
	return out, nil
}
