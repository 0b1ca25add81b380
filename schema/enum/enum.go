// Package enum carries the small contract schema.Enum needs to bind an
// ENUM field: a way to get a concrete enum value's raw wire number, and
// a fallible way back. Go has no associated-constructor mechanism (the
// Rust source's from_raw lives on the type itself via TryFrom), so both
// directions travel as plain function values supplied by the caller.
package enum

import (
	"fmt"

	"github.com/protoglyph/wirecodec/wire/werr"
)

// ToRawFunc returns v's wire-numbered variant.
type ToRawFunc[E any] func(v E) uint64

// FromRawFunc resolves a raw wire number to a declared variant of E,
// per spec §6: "a fallible conversion from_raw(u64) -> Result<Self,
// InvalidEnum>".
type FromRawFunc[E any] func(raw uint64) (E, error)

// NotDeclared builds the werr.InvalidEnum error a FromRawFunc should
// return when raw does not name any declared variant, so every enum
// type in a schema reports this failure the same way.
func NotDeclared(raw uint64) error {
	return werr.InvalidEnum(fmt.Sprintf("value %d does not name a declared variant", raw))
}
