package schema

import (
	"fmt"
	"io"

	"github.com/protoglyph/wirecodec/wire"
)

// Record is the API surface spec.md §6 describes: a type that knows how
// to write itself to a sink and read itself back from a source.
type Record interface {
	Encode(w io.Writer) error
	Decode(r io.Reader) error
}

// RecordDescriptor is an ordered sequence of FieldDescriptors, keyed
// uniquely by numeric id, bound to one record instance. Ordering
// defines encode emission order (spec §4.5).
type RecordDescriptor struct {
	fields []FieldDescriptor
	byID   map[uint64]*FieldDescriptor
}

// NewRecord builds a RecordDescriptor from an ordered list of fields,
// rejecting duplicate numeric ids as a binding-time error (spec §3
// invariant: "within a record, numeric ids are unique").
func NewRecord(fields ...FieldDescriptor) (*RecordDescriptor, error) {
	rd := &RecordDescriptor{
		fields: fields,
		byID:   make(map[uint64]*FieldDescriptor, len(fields)),
	}
	for i := range rd.fields {
		f := &rd.fields[i]
		if existing, dup := rd.byID[f.ID]; dup {
			return nil, fmt.Errorf("wirecodec: duplicate field id %d used by both %q and %q", f.ID, existing.Name, f.Name)
		}
		rd.byID[f.ID] = f
	}
	return rd, nil
}

// EncodeRecord iterates each FieldDescriptor in declaration order and
// invokes its bound encoder (spec §4.4 encode). Per spec.md §9 open
// question 1, a present scalar is always emitted, including a
// zero-valued one; only Optional/Repeated fields suppress their tag
// when absent/empty, and that suppression lives inside those fields'
// own encode closures.
func EncodeRecord(w io.Writer, rd *RecordDescriptor) error {
	for i := range rd.fields {
		if err := rd.fields[i].encode(w); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRecord implements the tag loop of spec §4.4: read a tag; if the
// stream ended cleanly at a tag boundary, return success; otherwise
// dispatch to the known field's decoder, or silently skip an unknown
// field's payload per its wire type.
func DecodeRecord(r io.Reader, rd *RecordDescriptor) error {
	for {
		id, wt, ok, err := wire.ReadTag(r)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		fd, known := rd.byID[id]
		if !known {
			if err := wire.Skip(r, wt); err != nil {
				return err
			}
			continue
		}
		if err := fd.decode(wt, r); err != nil {
			return err
		}
	}
}
