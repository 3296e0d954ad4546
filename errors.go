/*
DESCRIPTION
  errors.go defines the typed error values the codec surfaces to callers.
  Every parse and emit failure is one of these kinds, optionally wrapped
  with positional context via github.com/pkg/errors.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel error kinds. Callers branch on kind with errors.Is/errors.As;
// positional detail is attached by wrapping these with errors.Wrapf at the
// call site.
var (
	// ErrFramingError covers short input, a declared size exceeding the
	// buffer, and a reserved packet-type tag.
	ErrFramingError = errors.New("vita49: framing error")

	// ErrLengthMismatch is returned when bytes consumed during parsing do
	// not equal the header's declared packet size.
	ErrLengthMismatch = errors.New("vita49: length mismatch")

	// ErrPayloadUneven32BitWords is returned when a signal-data byte slice
	// is not a multiple of 4 bytes.
	ErrPayloadUneven32BitWords = errors.New("vita49: signal data payload is not a multiple of 4 bytes")

	// ErrTimestampModeMismatch is returned when a timestamp value and its
	// kind selector disagree on presence.
	ErrTimestampModeMismatch = errors.New("vita49: timestamp value presence does not match timestamp kind")

	// ErrTriedIdWhenUuidSet is returned when setting a 32-bit identifier
	// while the corresponding 128-bit UUID is already set.
	ErrTriedIdWhenUuidSet = errors.New("vita49: tried to set id while uuid is set")

	// ErrTriedUuidWhenIdSet is returned when setting a 128-bit UUID while
	// the corresponding 32-bit identifier is already set.
	ErrTriedUuidWhenIdSet = errors.New("vita49: tried to set uuid while id is set")

	// ErrOutOfRange is returned when a fixed-point value exceeds its
	// radix-encoded range, or an enum value falls outside its declared
	// range.
	ErrOutOfRange = errors.New("vita49: value out of range")

	// ErrReservedField is returned when a caller attempts to write a
	// reserved enum value or set a reserved bit.
	ErrReservedField = errors.New("vita49: reserved field")

	// ErrUnimplementedField is returned when parsing encounters a CIF bit
	// whose schema entry is not implemented by this codec.
	ErrUnimplementedField = errors.New("vita49: unimplemented field")
)

// PayloadKindMismatchError is returned when an accessor for one payload
// kind (signal data, context, command, control, cancellation, an ack
// variant) is invoked on a packet carrying a different kind. It names both
// the kind that was wanted and the kind actually present, rather than a
// family of near-identical sentinel values.
type PayloadKindMismatchError struct {
	Wanted string
	Got    string
}

func (e *PayloadKindMismatchError) Error() string {
	return fmt.Sprintf("vita49: payload kind mismatch: wanted %s, got %s", e.Wanted, e.Got)
}

// Is reports whether target is a *PayloadKindMismatchError, so callers can
// branch with errors.Is(err, new(PayloadKindMismatchError)) without caring
// about the specific kinds involved.
func (e *PayloadKindMismatchError) Is(target error) bool {
	_, ok := target.(*PayloadKindMismatchError)
	return ok
}

// UnimplementedFieldError carries the CIF index and bit position of an
// unimplemented field encountered while parsing.
type UnimplementedFieldError struct {
	Cif int
	Bit int
}

func (e *UnimplementedFieldError) Error() string {
	return fmt.Sprintf("vita49: unimplemented field: cif%d bit %d", e.Cif, e.Bit)
}

func (e *UnimplementedFieldError) Unwrap() error {
	return ErrUnimplementedField
}

// newUnimplementedField constructs an UnimplementedFieldError wrapped for
// errors.Is(err, ErrUnimplementedField) compatibility.
func newUnimplementedField(cif, bit int) error {
	return &UnimplementedFieldError{Cif: cif, Bit: bit}
}

// newPayloadKindMismatch constructs a PayloadKindMismatchError.
func newPayloadKindMismatch(wanted, got string) error {
	return &PayloadKindMismatchError{Wanted: wanted, Got: got}
}
