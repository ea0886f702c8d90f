package streamable

import "reflect"

// writeCount appends n's variable-length encoding directly, bypassing the
// general WriteValue dispatch since every category handler needs to emit a
// count prefix and none of them hold a typed Go value for it.
func (w *Writer) writeCount(n uint64) {
	if w.err != nil {
		return
	}
	w.WriteBytes(EncodeCount(nil, n))
}

// WriteValue writes v using the category classify(reflect.TypeOf(v))
// resolves, per spec.md §4.E. It is the Writer-side half of the dispatch
// engine SizeOf and ReadValue mirror.
func (w *Writer) WriteValue(v any) error {
	return writeReflect(w, reflect.ValueOf(v))
}

// writeValue is WriteValue's unexported spelling, used by the category
// wrapper types (Optional, Pair, ...) so they do not need to import nothing
// extra to call back into the engine for their held element(s).
func (w *Writer) writeValue(v any) error {
	return w.WriteValue(v)
}

// WriteAll writes each value in vals in order, stopping at the first error —
// the declaration-order field writer every Streamable.ToStream method calls,
// grounded on original_source's StreamWriter::WriteAll.
func (w *Writer) WriteAll(vals ...any) error {
	for _, v := range vals {
		if err := w.WriteValue(v); err != nil {
			return err
		}
	}
	return w.err
}

// WriteAs is WriteValue's counterpart for a polymorphic base interface value
// held in a plain variable rather than a struct field, per SizeOfAs's
// rationale: Base must be bound explicitly so the write dispatches on the
// declared interface type instead of v's erased dynamic type.
func WriteAs[Base any](w *Writer, v Base) error {
	return writeReflect(w, reflect.ValueOf(&v).Elem())
}

func writeReflect(w *Writer, rv reflect.Value) error {
	if w.err != nil {
		return w.err
	}

	t := rv.Type()
	switch classify(t) {
	case categoryOptional, categoryVariant, categoryTuple, categoryPair, categoryPointerFlavor:
		return rv.Interface().(streamWriter).writeTo(w)

	case categoryRangeWideStr:
		return writeWideString(w, rv.Interface().(WideString))

	case categoryPath:
		return writePath(w, rv.Interface().(Path))

	case categoryRangeBitCopy:
		return writeRangeBitCopy(w, rv)

	case categoryRangeGeneric:
		return writeRangeGeneric(w, rv)

	case categoryStreamableVal:
		return writeStreamableFramed(w, asStreamable(rv))

	case categoryStreamablePtr:
		return writeStreamablePtr(w, rv)

	case categoryBitCopy:
		return writeBitCopy(w, rv.Interface())

	default:
		w.setError(ErrUnsupportedType)
		return w.err
	}
}
