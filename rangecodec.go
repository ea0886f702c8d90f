package streamable

import "reflect"

// Range handling covers three flavours dispatched from classify.go:
// categoryRangeBitCopy (a byte string, or a rank-1 slice/array of BitCopy
// elements — written and read element by element through bitcopy.go's
// writeBitCopy/readBitCopy, with no per-element framing), categoryRangeGeneric
// (everything else iterable: maps, and any range whose elements need
// per-element recursion, including nested ranges), and categoryStreamablePtr
// (handled at the bottom of this file since the pointer flavours share the
// same count(0|1)-then-value shape as a range of at most one element).
//
// Every range level, including a nested one with zero elements, is prefixed
// with its own count — the unconditional-prefix rule the source's
// size_range only applies inconsistently (see SPEC_FULL.md's open-question
// ledger for the reasoning).

func sizeRangeBitCopy(rv reflect.Value) int {
	t := rv.Type()
	n := rv.Len()
	if t.Kind() == reflect.String {
		return EncodedCountLen(uint64(n)) + n
	}
	return EncodedCountLen(uint64(n)) + n*bitCopySize(t.Elem())
}

func writeRangeBitCopy(w *Writer, rv reflect.Value) error {
	t := rv.Type()
	n := rv.Len()
	w.writeCount(uint64(n))
	if w.err != nil {
		return w.err
	}
	if t.Kind() == reflect.String {
		w.WriteString(rv.String())
		return w.err
	}
	if n == 0 {
		return nil
	}
	return writeBitCopy(w, rv.Interface())
}

func readRangeBitCopy(r *Reader, rv reflect.Value) error {
	t := rv.Type()
	n, err := r.readCount()
	if err != nil {
		return err
	}

	if t.Kind() == reflect.String {
		raw := r.readFull(int(n))
		if r.err != nil {
			return r.err
		}
		rv.SetString(string(raw))
		return nil
	}

	if t.Kind() == reflect.Array {
		if int(n) != t.Len() {
			return ErrTruncatedData
		}
		if n == 0 {
			return nil
		}
		return readBitCopy(r, rv.Addr().Interface())
	}

	slice := reflect.New(t).Elem()
	slice.Set(reflect.MakeSlice(t, int(n), int(n)))
	if n > 0 {
		if err := readBitCopy(r, slice.Addr().Interface()); err != nil {
			return err
		}
	}
	rv.Set(slice)
	return nil
}

func sizeRangeGeneric(rv reflect.Value) int {
	t := rv.Type()
	total := EncodedCountLen(uint64(rv.Len()))

	if t.Kind() == reflect.Map {
		iter := rv.MapRange()
		for iter.Next() {
			total += sizeOfReflect(iter.Key())
			total += sizeOfReflect(iter.Value())
		}
		return total
	}

	for i := 0; i < rv.Len(); i++ {
		total += sizeOfReflect(rv.Index(i))
	}
	return total
}

func writeRangeGeneric(w *Writer, rv reflect.Value) error {
	t := rv.Type()
	w.writeCount(uint64(rv.Len()))
	if w.err != nil {
		return w.err
	}

	if t.Kind() == reflect.Map {
		iter := rv.MapRange()
		for iter.Next() {
			if err := writeReflect(w, iter.Key()); err != nil {
				return err
			}
			if err := writeReflect(w, iter.Value()); err != nil {
				return err
			}
		}
		return w.err
	}

	for i := 0; i < rv.Len(); i++ {
		if err := writeReflect(w, rv.Index(i)); err != nil {
			return err
		}
	}
	return w.err
}

func readRangeGeneric(r *Reader, rv reflect.Value) error {
	t := rv.Type()
	n, err := r.readCount()
	if err != nil {
		return err
	}

	if t.Kind() == reflect.Map {
		m := reflect.MakeMapWithSize(t, int(n))
		keyType, valType := t.Key(), t.Elem()
		for i := uint64(0); i < n; i++ {
			key := reflect.New(keyType).Elem()
			if err := readReflect(r, key); err != nil {
				return err
			}
			val := reflect.New(valType).Elem()
			if err := readReflect(r, val); err != nil {
				return err
			}
			m.SetMapIndex(key, val)
		}
		rv.Set(m)
		return nil
	}

	slice := reflect.New(t).Elem()
	slice.Set(reflect.MakeSlice(t, int(n), int(n)))
	for i := uint64(0); i < n; i++ {
		if err := readReflect(r, slice.Index(int(i))); err != nil {
			return err
		}
	}
	rv.Set(slice)
	return nil
}

// --- Pointer(-to-Streamable) ---

func sizeStreamablePtr(rv reflect.Value) int {
	t := rv.Type()
	if t.Kind() == reflect.Interface {
		ps := rv.Interface().(PolymorphicStreamable)
		bodySize := ps.FindParseSize()
		return EncodedCountLen(ps.Discriminant()) + EncodedCountLen(uint64(bodySize)) + bodySize
	}
	if rv.IsNil() {
		return EncodedCountLen(0)
	}
	bodySize := rv.Interface().(Streamable).FindParseSize()
	return EncodedCountLen(1) + EncodedCountLen(uint64(bodySize)) + bodySize
}

// writeStreamablePtr and readStreamablePtr frame the referent's body with
// writeStreamableFramed/readStreamableFramed (streamframe.go) exactly as
// categoryStreamableVal does; the discriminant (polymorphic) or presence tag
// (concrete) is the only thing this pointer flavour adds ahead of that frame.
func writeStreamablePtr(w *Writer, rv reflect.Value) error {
	t := rv.Type()
	if t.Kind() == reflect.Interface {
		ps, ok := rv.Interface().(PolymorphicStreamable)
		if !ok || rv.IsNil() {
			w.setError(ErrNotPointer)
			return w.err
		}
		w.writeCount(ps.Discriminant())
		if w.err != nil {
			return w.err
		}
		return writeStreamableFramed(w, ps)
	}

	if rv.IsNil() {
		w.writeCount(0)
		return w.err
	}
	w.writeCount(1)
	return writeStreamableFramed(w, rv.Interface().(Streamable))
}

func readStreamablePtr(r *Reader, rv reflect.Value) error {
	t := rv.Type()

	tag, err := r.readCount()
	if err != nil {
		return err
	}

	if t.Kind() == reflect.Interface {
		derived, err := findDerivedType(t, tag)
		if err != nil {
			r.setError(err)
			return err
		}
		if err := readStreamableFramed(r, derived); err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(derived))
		return nil
	}

	switch tag {
	case 0:
		rv.Set(reflect.Zero(t))
		return nil
	case 1:
		newPtr := reflect.New(t.Elem())
		sv := newPtr.Interface().(Streamable)
		if err := readStreamableFramed(r, sv); err != nil {
			return err
		}
		rv.Set(newPtr)
		return nil
	default:
		return ErrInvalidTag
	}
}
