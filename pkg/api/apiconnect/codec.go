// Package apiconnect wires the api messages to Connect: procedure names,
// handler constructors and clients, all speaking JSON.
package apiconnect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec marshals plain Go structs. It replaces Connect's protojson codec,
// which only accepts generated protobuf messages.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// WithJSON is the option that selects the JSON codec on handlers and clients.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
