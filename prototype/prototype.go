// Package prototype defines the closed type model shared by the rest of
// the codec: the wire-level WireType enumeration and the schema-level
// ProtoType enumeration, plus the fixed mapping between them.
package prototype

import "fmt"

// WireType is one of the four categorical wire encodings used to frame a
// field's payload. Values 3, 4, 6 and 7 (the deprecated group encodings
// and two unused slots) are never admitted on the wire.
type WireType uint8

const (
	Varint WireType = 0
	I64    WireType = 1
	Len    WireType = 2
	I32    WireType = 5
)

// Valid reports whether wt is one of the four admitted wire types.
func (wt WireType) Valid() bool {
	switch wt {
	case Varint, I64, Len, I32:
		return true
	default:
		return false
	}
}

func (wt WireType) String() string {
	switch wt {
	case Varint:
		return "VARINT"
	case I64:
		return "I64"
	case Len:
		return "LEN"
	case I32:
		return "I32"
	default:
		return fmt.Sprintf("WireType(%d)", uint8(wt))
	}
}

// ProtoType is the closed enumeration of logical field kinds a schema may
// declare. OTHER is a placeholder used by the binding layer when it
// cannot statically identify the concrete type of a member (a nested
// record or enum referenced by name); at encode/decode time such a field
// is resolved to MESSAGE or ENUM by however its own codec is wired up.
type ProtoType uint8

const (
	Int32 ProtoType = iota
	Int64
	UInt32
	UInt64
	SInt32
	SInt64
	Bool
	Enum
	Fixed32
	SFixed32
	Fixed64
	SFixed64
	Float
	Double
	String
	Bytes
	Message
	Other
)

var names = [...]string{
	Int32:    "INT32",
	Int64:    "INT64",
	UInt32:   "UINT32",
	UInt64:   "UINT64",
	SInt32:   "SINT32",
	SInt64:   "SINT64",
	Bool:     "BOOL",
	Enum:     "ENUM",
	Fixed32:  "FIXED32",
	SFixed32: "SFIXED32",
	Fixed64:  "FIXED64",
	SFixed64: "SFIXED64",
	Float:    "FLOAT",
	Double:   "DOUBLE",
	String:   "STRING",
	Bytes:    "BYTES",
	Message:  "MESSAGE",
	Other:    "OTHER",
}

func (pt ProtoType) String() string {
	if int(pt) < len(names) && names[pt] != "" {
		return names[pt]
	}
	return fmt.Sprintf("ProtoType(%d)", uint8(pt))
}

// WireType returns the single wire type permitted for pt by the
// prototype-to-wire-type table. OTHER has no fixed wire type; callers
// must resolve it to MESSAGE or ENUM first.
func (pt ProtoType) WireType() (WireType, bool) {
	switch pt {
	case Int32, Int64, UInt32, UInt64, SInt32, SInt64, Bool, Enum:
		return Varint, true
	case Fixed64, SFixed64, Double:
		return I64, true
	case Fixed32, SFixed32, Float:
		return I32, true
	case String, Bytes, Message:
		return Len, true
	default:
		return 0, false
	}
}
