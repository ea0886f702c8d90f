package streamable

import "reflect"

// sizer, streamWriter and streamReader are the unexported trio every
// generic category wrapper (Optional, Pair, Tuple2..5, Variant2..5, Raw,
// Unique, Shared) implements. They mirror the public Streamable contract's
// shape but stay unexported since these types are building blocks the
// dispatch engine drives, not user-declared root types.
type sizer interface {
	size() int
}

type streamWriter interface {
	writeTo(w *Writer) error
}

type streamReader interface {
	readFrom(r *Reader) error
}

// SizeOf returns the number of bytes WriteValue(v) would produce, dispatched
// through the same classify() decision classify-driven Write/Read use, per
// spec.md §4.D's "Size-finder and Writer must agree bit-for-bit" invariant.
// A Streamable v may be passed by value or by pointer; the pointer form is
// classified as a pointer to a Streamable, so its size also counts the
// presence tag written ahead of the framed body.
func SizeOf(v any) int {
	return sizeOfValue(v)
}

func sizeOfValue(v any) int {
	return sizeOfReflect(reflect.ValueOf(v))
}

func sizeOfReflect(rv reflect.Value) int {
	t := rv.Type()
	switch classify(t) {
	case categoryOptional, categoryVariant, categoryTuple, categoryPair, categoryPointerFlavor:
		return rv.Interface().(sizer).size()

	case categoryRangeWideStr:
		return sizeWideString(rv.Interface().(WideString))

	case categoryPath:
		return sizePath(rv.Interface().(Path))

	case categoryRangeBitCopy:
		return sizeRangeBitCopy(rv)

	case categoryRangeGeneric:
		return sizeRangeGeneric(rv)

	case categoryStreamableVal:
		bodySize := asStreamable(rv).FindParseSize()
		return EncodedCountLen(uint64(bodySize)) + bodySize

	case categoryStreamablePtr:
		return sizeStreamablePtr(rv)

	case categoryBitCopy:
		return bitCopySize(t)

	default:
		return 0
	}
}

// SizeOfAs is SizeOf's counterpart for a value whose static type is only
// known through a polymorphic base interface at the call site, e.g. a Shape
// held in a local variable rather than a struct field declared at type
// Shape. SizeOf(v) alone cannot see that distinction: boxing v into the any
// parameter always erases to its dynamic concrete type, exactly as it would
// erase to *Circle instead of Shape. Binding Base explicitly and taking the
// address of a same-typed local recovers the declared interface type the
// same way a struct field's reflect.StructField.Type does.
func SizeOfAs[Base any](v Base) int {
	return sizeOfReflect(reflect.ValueOf(&v).Elem())
}

// asStreamable adapts a categoryStreamableVal reflect.Value to the
// Streamable interface, preferring an addressable pointer (needed when the
// concrete type's methods have pointer receivers, the common case). A value
// that is not addressable is first copied into a fresh addressable one, and
// the bare value is used only when its pointer does not satisfy Streamable.
func asStreamable(rv reflect.Value) Streamable {
	if !rv.CanAddr() {
		cp := reflect.New(rv.Type()).Elem()
		cp.Set(rv)
		rv = cp
	}
	if rv.CanAddr() {
		if sv, ok := rv.Addr().Interface().(Streamable); ok {
			return sv
		}
	}
	return rv.Interface().(Streamable)
}
