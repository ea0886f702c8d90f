package streamable

import (
	"fmt"
	"reflect"
)

// readCount decodes a variable-length count from the front of the stream,
// the read-side counterpart to writeCount.
func (r *Reader) readCount() (uint64, error) {
	if r.err != nil {
		return 0, r.err
	}

	first, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	total := RequiredBytes(first)
	if total == 1 {
		return uint64(first & countInlineMask), nil
	}

	rest := r.readFull(total - 1)
	if r.err != nil {
		return 0, r.err
	}

	buf := make([]byte, total)
	buf[0] = first
	copy(buf[1:], rest)

	n, _, err := DecodeCount(buf)
	if err != nil {
		r.setError(err)
		return 0, err
	}
	return n, nil
}

// ReadValue reads into dest, which must be a non-nil pointer, using the
// category classify(reflect.TypeOf(dest).Elem()) resolves. It is the
// Reader-side half of the dispatch engine WriteValue and SizeOf mirror.
func (r *Reader) ReadValue(dest any) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		err := fmt.Errorf("%w: ReadValue destination must be a non-nil pointer, got %T", ErrUnsupportedType, dest)
		r.setError(err)
		return err
	}
	return readReflect(r, rv.Elem())
}

// readValue is ReadValue's unexported spelling, used by the category
// wrapper types to call back into the engine for their held element(s).
func (r *Reader) readValue(dest any) error {
	return r.ReadValue(dest)
}

// ReadAll reads into each destination in dests in order, stopping at the
// first error — the declaration-order field reader every
// Streamable.FromStream method calls, grounded on original_source's
// StreamReader::ReadAll.
func (r *Reader) ReadAll(dests ...any) error {
	for _, dest := range dests {
		if err := r.ReadValue(dest); err != nil {
			return err
		}
	}
	return r.err
}

// ReadAs is ReadValue's counterpart for decoding into a polymorphic base
// interface type named only at the call site, per SizeOfAs's rationale. It
// returns a zero Base on error.
func ReadAs[Base any](r *Reader) (Base, error) {
	var v Base
	err := readReflect(r, reflect.ValueOf(&v).Elem())
	if err != nil {
		var zero Base
		return zero, err
	}
	return v, nil
}

// readReflect reads into rv, which must be addressable (the caller's
// responsibility, satisfied by every call site in this package: either the
// Elem() of a user-supplied pointer, or a field/element reached by walking
// an already-addressable parent).
func readReflect(r *Reader, rv reflect.Value) error {
	if r.err != nil {
		return r.err
	}

	t := rv.Type()
	switch classify(t) {
	case categoryOptional, categoryVariant, categoryTuple, categoryPair, categoryPointerFlavor:
		return rv.Addr().Interface().(streamReader).readFrom(r)

	case categoryRangeWideStr:
		return readWideString(r, rv.Addr().Interface().(*WideString))

	case categoryPath:
		return readPath(r, rv.Addr().Interface().(*Path))

	case categoryRangeBitCopy:
		return readRangeBitCopy(r, rv)

	case categoryRangeGeneric:
		return readRangeGeneric(r, rv)

	case categoryStreamableVal:
		return readStreamableFramed(r, rv.Addr().Interface().(Streamable))

	case categoryStreamablePtr:
		return readStreamablePtr(r, rv)

	case categoryBitCopy:
		return readBitCopy(r, rv.Addr().Interface())

	default:
		err := fmt.Errorf("%w: %s", ErrUnsupportedType, t)
		r.setError(err)
		return err
	}
}
