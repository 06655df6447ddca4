package protocol

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec turns envelopes into websocket frames and back.
type Codec interface {
	Name() string
	// FrameType is the websocket message type frames are sent with.
	FrameType() int
	Encode(v any) ([]byte, error)
	Decode(b []byte, v any) error
}

// JSON sends text frames. It is the default codec for browsers.
type JSON struct{}

func (JSON) Name() string   { return "json" }
func (JSON) FrameType() int { return websocket.TextMessage }

func (JSON) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Decode(b []byte, v any) error {
	if len(b) == 0 {
		return fmt.Errorf("decode empty json frame")
	}
	return json.Unmarshal(b, v)
}

// Msgpack sends binary frames, roughly half the size of JSON for snapshots.
type Msgpack struct{}

func (Msgpack) Name() string   { return "msgpack" }
func (Msgpack) FrameType() int { return websocket.BinaryMessage }

func (Msgpack) Encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (Msgpack) Decode(b []byte, v any) error {
	if len(b) == 0 {
		return fmt.Errorf("decode empty msgpack frame")
	}
	return msgpack.Unmarshal(b, v)
}

// CodecByName resolves a codec from a config value or query parameter.
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "", "json":
		return JSON{}, nil
	case "msgpack":
		return Msgpack{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}
