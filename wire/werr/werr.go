// Package werr defines the CodecError taxonomy shared by the wire and
// schema packages. It follows the teacher's sentinel-error idiom
// (plain package-level errors.New values, e.g. codec.ErrOverflow and
// codec.ErrInternalBadWireType in jhump/protoreflect's codec package)
// while adding the small amount of structure spec.md §7 asks for: a
// Kind tag on each CodecError, plus sentinels that errors.Is matches
// through Unwrap, so callers can distinguish error categories without
// string matching.
package werr

import "errors"

// Kind categorizes a CodecError.
type Kind int

const (
	KindIO Kind = iota
	KindInvalidWireType
	KindInvalidUTF8
	KindInvalidEnum
	KindTypeMismatch
	KindOverflow
)

// Sentinel errors for errors.Is. EOF-at-tag-boundary is deliberately
// absent from this taxonomy: per spec.md §4.2/§7 it is not an error at
// all, it is the decode loop's normal termination signal, carried as a
// plain io.EOF (or rather, the absence of one — see wire.ReadTag).
var (
	ErrInvalidWireType = errors.New("wirecodec: invalid wire type")
	ErrInvalidUTF8     = errors.New("wirecodec: string payload is not valid utf-8")
	ErrInvalidEnum     = errors.New("wirecodec: value does not name a declared enum variant")
	ErrTypeMismatch    = errors.New("wirecodec: wire type incompatible with declared prototype")
	ErrOverflow        = errors.New("wirecodec: varint overflow")
)

// CodecError wraps an underlying error with a Kind, letting callers
// branch on category (via the Kind field) while still chaining to the root
// cause through Unwrap.
type CodecError struct {
	Kind Kind
	Err  error
}

func (e *CodecError) Error() string {
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// wrap constructs a CodecError of the given kind, pairing the sentinel
// with any additional context in msg.
func wrap(kind Kind, sentinel error, msg string) error {
	if msg == "" {
		return &CodecError{Kind: kind, Err: sentinel}
	}
	return &CodecError{Kind: kind, Err: errJoin(sentinel, msg)}
}

func errJoin(sentinel error, msg string) error {
	return &withContext{sentinel: sentinel, msg: msg}
}

type withContext struct {
	sentinel error
	msg      string
}

func (w *withContext) Error() string { return w.msg }
func (w *withContext) Unwrap() error { return w.sentinel }

// IO wraps any underlying sink/source failure.
func IO(err error) error {
	return &CodecError{Kind: KindIO, Err: err}
}

// InvalidWireType reports observed wire-type bits outside {0,1,2,5}.
func InvalidWireType(msg string) error {
	return wrap(KindInvalidWireType, ErrInvalidWireType, msg)
}

// InvalidUTF8 reports a STRING payload that is not valid UTF-8.
func InvalidUTF8(msg string) error {
	return wrap(KindInvalidUTF8, ErrInvalidUTF8, msg)
}

// InvalidEnum reports an ENUM value with no declared variant.
func InvalidEnum(msg string) error {
	return wrap(KindInvalidEnum, ErrInvalidEnum, msg)
}

// TypeMismatch reports an incompatible (prototype, wire type) pair.
func TypeMismatch(msg string) error {
	return wrap(KindTypeMismatch, ErrTypeMismatch, msg)
}

// Overflow reports a varint longer than 10 bytes, a shift beyond 63
// bits, or a numeric payload too wide for its target type.
func Overflow(msg string) error {
	return wrap(KindOverflow, ErrOverflow, msg)
}
