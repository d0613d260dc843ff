package bookingv1

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Message is implemented by every booking.v1 wire message.
type Message interface {
	MarshalWire() ([]byte, error)
	UnmarshalWire(b []byte) error
}

// merger decodes into a message without resetting it first, which is how
// protobuf combines repeated occurrences of a singular message field.
type merger interface {
	mergeWire(b []byte) error
}

var errInvalidUTF8 = errors.New("string field contains invalid UTF-8")

// fieldFunc consumes the value of one field. ok=false hands the field back to
// decodeFields, which keeps it as an unknown field.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (n int, ok bool, err error)

func decodeFields(b []byte, fn fieldFunc) (unknown []byte, err error) {
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return nil, protowire.ParseError(tagLen)
		}
		n, ok, err := fn(num, typ, b[tagLen:])
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", num, err)
		}
		if !ok {
			n = protowire.ConsumeFieldValue(num, typ, b[tagLen:])
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			unknown = append(unknown, b[:tagLen+n]...)
		}
		b = b[tagLen+n:]
	}
	return unknown, nil
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	return appendOptionalString(b, num, &v)
}

func appendOptionalString(b []byte, num protowire.Number, v *string) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, *v)
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendMessage(b []byte, num protowire.Number, m Message) ([]byte, error) {
	raw, err := m.MarshalWire()
	if err != nil {
		return nil, err
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, raw), nil
}

func appendTimestamp(b []byte, num protowire.Number, ts *timestamppb.Timestamp) ([]byte, error) {
	if ts == nil {
		return b, nil
	}
	raw, err := proto.Marshal(ts)
	if err != nil {
		return nil, fmt.Errorf("marshal timestamp: %w", err)
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, raw), nil
}

func consumeString(typ protowire.Type, b []byte, dst *string) (int, bool, error) {
	if typ != protowire.BytesType {
		return 0, false, nil
	}
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return 0, false, protowire.ParseError(n)
	}
	if !utf8.ValidString(v) {
		return 0, false, errInvalidUTF8
	}
	*dst = v
	return n, true, nil
}

func consumeOptionalString(typ protowire.Type, b []byte, dst **string) (int, bool, error) {
	var v string
	n, ok, err := consumeString(typ, b, &v)
	if ok && err == nil {
		*dst = &v
	}
	return n, ok, err
}

func consumeInt64(typ protowire.Type, b []byte, dst *int64) (int, bool, error) {
	if typ != protowire.VarintType {
		return 0, false, nil
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, false, protowire.ParseError(n)
	}
	*dst = int64(v)
	return n, true, nil
}

func consumeMessage(typ protowire.Type, b []byte, dst merger) (int, bool, error) {
	if typ != protowire.BytesType {
		return 0, false, nil
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, false, protowire.ParseError(n)
	}
	if err := dst.mergeWire(v); err != nil {
		return 0, false, err
	}
	return n, true, nil
}

func consumeTimestamp(typ protowire.Type, b []byte, dst **timestamppb.Timestamp) (int, bool, error) {
	if typ != protowire.BytesType {
		return 0, false, nil
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, false, protowire.ParseError(n)
	}
	if *dst == nil {
		*dst = new(timestamppb.Timestamp)
	}
	if err := (proto.UnmarshalOptions{Merge: true}).Unmarshal(v, *dst); err != nil {
		return 0, false, fmt.Errorf("unmarshal timestamp: %w", err)
	}
	return n, true, nil
}
