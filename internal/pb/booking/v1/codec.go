package bookingv1

import (
	"fmt"

	"google.golang.org/protobuf/proto"
)

// Codec is a gRPC codec that encodes booking.v1 messages with their own wire
// methods and everything else (health checks, well-known types) with the
// standard protobuf runtime. The bytes on the wire are plain protobuf, so it
// keeps the "proto" content subtype.
type Codec struct{}

func (Codec) Name() string {
	return "proto"
}

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case Message:
		return m.MarshalWire()
	case proto.Message:
		return proto.Marshal(m)
	}
	return nil, fmt.Errorf("bookingv1 codec: cannot marshal %T", v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case Message:
		return m.UnmarshalWire(data)
	case proto.Message:
		return proto.Unmarshal(data, m)
	}
	return fmt.Errorf("bookingv1 codec: cannot unmarshal into %T", v)
}
