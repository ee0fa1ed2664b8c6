package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack is a MessagePack codec. It is the compact-binary comparison
// point for the wire-footprint model: loose rows shipped as msgpack
// sit between JSON text and the raw packed payload.
type Msgpack struct{}

// Marshal encodes the value to MessagePack.
func (Msgpack) Marshal(v any) ([]byte, error) { return msgpack.Marshal(v) }

// Unmarshal decodes the MessagePack data into v.
func (Msgpack) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

// Name returns the unique name of the codec ("msgpack").
func (Msgpack) Name() string { return "msgpack" }
