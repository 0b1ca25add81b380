package schema

import (
	"bytes"
	"io"

	"github.com/protoglyph/wirecodec/prototype"
	"github.com/protoglyph/wirecodec/wire"
)

// Message binds a nested record as MESSAGE: LEN-framed, serialized to a
// temporary buffer first (spec §4.3 "Nested records"). T is the
// concrete record struct; PT constrains *T to implement Record, the
// same pointer-method-set idiom generated protobuf-go code uses for
// message type parameters.
func Message[T any, PT interface {
	*T
	Record
}](id uint64, name string, slot PT) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.Message,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.Len); err != nil {
				return err
			}
			payload, err := wire.BufferMessage(func(w io.Writer) error {
				return PT(slot).Encode(w)
			})
			if err != nil {
				return err
			}
			return wire.WriteLenDelimited(w, payload)
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.Message, wt, name); err != nil {
				return err
			}
			payload, err := wire.ReadLenDelimited(r)
			if err != nil {
				return err
			}
			return PT(slot).Decode(bytes.NewReader(payload))
		},
	}
}
