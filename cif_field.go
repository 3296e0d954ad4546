/*
DESCRIPTION
  cif_field.go provides the generic schema-entry type every CIF field is
  built from: one declarative row (bit position, wire codec, optional
  value) drives both the per-field accessor and the container walk in
  cif_container.go, per Design Note 9's single-schema-table approach.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import "github.com/ausocean/vita49/internal/bitio"

// fieldCodec is the wire encoding for one CIF field's value type.
type fieldCodec[T any] struct {
	encode func(T, *bitio.Writer) error
	decode func(*bitio.Reader) (T, error)
}

// CifField is one schema row: a CIF bit position, its wire codec, and the
// optional primary/replica values currently held. The zero value is an
// absent (unset) field.
type CifField[T any] struct {
	bit      int
	codec    fieldCodec[T]
	primary  *T
	replicas []T
}

func newCifField[T any](bit int, codec fieldCodec[T]) *CifField[T] {
	return &CifField[T]{bit: bit, codec: codec}
}

// Bit returns the field's CIF bit position.
func (f *CifField[T]) Bit() int { return f.bit }

// Enabled reports whether the field's CIF bit should be set — true iff a
// primary value is present.
func (f *CifField[T]) Enabled() bool { return f.primary != nil }

// Get returns the field's primary value, or nil if unset.
func (f *CifField[T]) Get() *T { return f.primary }

// Set assigns the field's primary value. Passing nil clears the field and
// discards any replicas.
func (f *CifField[T]) Set(v *T) {
	if v == nil {
		f.primary = nil
		f.replicas = nil
		return
	}
	vv := *v
	f.primary = &vv
}

// Replicas returns the field's CIF7 attribute replica values, in descending
// CIF7 bit order (most-significant attribute bit first, matching emission
// order).
func (f *CifField[T]) Replicas() []T { return f.replicas }

// SetReplicas assigns the field's CIF7 attribute replica values directly.
func (f *CifField[T]) SetReplicas(vs []T) { f.replicas = vs }

// EncodeAll writes the field's primary value (if opts says it's present)
// followed by opts.extraReplicas replica values.
func (f *CifField[T]) EncodeAll(w *bitio.Writer, opts cif7Opts) error {
	if opts.currentPresent {
		if err := f.codec.encode(*f.primary, w); err != nil {
			return err
		}
	}
	for i := 0; i < opts.extraReplicas; i++ {
		var v T
		if i < len(f.replicas) {
			v = f.replicas[i]
		}
		if err := f.codec.encode(v, w); err != nil {
			return err
		}
	}
	return nil
}

// DecodeAll reads the field's primary value (if opts says it's present)
// followed by opts.extraReplicas replica values, replacing any values
// already held.
func (f *CifField[T]) DecodeAll(r *bitio.Reader, opts cif7Opts) error {
	if opts.currentPresent {
		v, err := f.codec.decode(r)
		if err != nil {
			return err
		}
		f.primary = &v
	} else {
		// The field's CIF bit is set (the container only calls DecodeAll
		// for set bits) but CIF7.Current is false, so no primary value
		// rode the wire — only replicas. Mark the field enabled with a
		// zero placeholder; EncodeAll never re-emits it while
		// currentPresent stays false.
		var zero T
		f.primary = &zero
	}
	f.replicas = nil
	for i := 0; i < opts.extraReplicas; i++ {
		v, err := f.codec.decode(r)
		if err != nil {
			return err
		}
		f.replicas = append(f.replicas, v)
	}
	return nil
}

// cifEntry is the non-generic face of CifField[T] the container walks.
type cifEntry interface {
	Bit() int
	Enabled() bool
	EncodeAll(w *bitio.Writer, opts cif7Opts) error
	DecodeAll(r *bitio.Reader, opts cif7Opts) error
}
