package streamable

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the reflection cost of binary.Size on every call to
// bitCopySize for a type classify.go has already seen once. A global
// xsync.Map keeps it lock-free under concurrent Writer/Reader use.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// bitCopySize returns the encoded size of a BitCopy-category type.
func bitCopySize(t reflect.Type) int {
	if size, ok := sizeCache.Load(t); ok {
		return size
	}
	size := binary.Size(reflect.New(t).Elem().Interface())
	sizeCache.Store(t, size)
	return size
}

// writeBitCopy writes v's raw byte image field by field through w's
// primitive Write* ops, using w's configured byte order. v must be a
// scalar, bool, array, or struct composed transitively of those kinds, per
// isBitCopyType in classify.go, or a slice of such elements (the
// categoryRangeBitCopy payload).
func writeBitCopy(w *Writer, v any) error {
	if w.err != nil {
		return w.err
	}
	writeBitCopyValue(w, reflect.ValueOf(v))
	return w.err
}

func writeBitCopyValue(w *Writer, rv reflect.Value) {
	if w.err != nil {
		return
	}
	switch rv.Kind() {
	case reflect.Bool:
		w.WriteBool(rv.Bool())
	case reflect.Int8:
		w.WriteInt8(int8(rv.Int()))
	case reflect.Int16:
		w.WriteInt16(int16(rv.Int()))
	case reflect.Int32:
		w.WriteInt32(int32(rv.Int()))
	case reflect.Int64:
		w.WriteInt64(rv.Int())
	case reflect.Uint8:
		w.WriteUint8(uint8(rv.Uint()))
	case reflect.Uint16:
		w.WriteUint16(uint16(rv.Uint()))
	case reflect.Uint32:
		w.WriteUint32(uint32(rv.Uint()))
	case reflect.Uint64:
		w.WriteUint64(rv.Uint())
	case reflect.Float32:
		w.WriteUint32(math.Float32bits(float32(rv.Float())))
	case reflect.Float64:
		w.WriteUint64(math.Float64bits(rv.Float()))
	case reflect.Array, reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			writeBitCopyValue(w, rv.Index(i))
		}
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			writeBitCopyValue(w, rv.Field(i))
		}
	}
}

// readBitCopy reads a BitCopy-category value's raw byte image into dest,
// which must be a pointer to the destination, using r's primitive Read* ops
// field by field.
func readBitCopy(r *Reader, dest any) error {
	if r.err != nil {
		return r.err
	}
	readBitCopyValue(r, reflect.ValueOf(dest).Elem())
	return r.err
}

func readBitCopyValue(r *Reader, rv reflect.Value) {
	if r.err != nil {
		return
	}
	switch rv.Kind() {
	case reflect.Bool:
		var v bool
		r.ReadBool(&v)
		rv.SetBool(v)
	case reflect.Int8:
		var v int8
		r.ReadInt8(&v)
		rv.SetInt(int64(v))
	case reflect.Int16:
		var v int16
		r.ReadInt16(&v)
		rv.SetInt(int64(v))
	case reflect.Int32:
		var v int32
		r.ReadInt32(&v)
		rv.SetInt(int64(v))
	case reflect.Int64:
		var v int64
		r.ReadInt64(&v)
		rv.SetInt(v)
	case reflect.Uint8:
		var v uint8
		r.ReadUint8(&v)
		rv.SetUint(uint64(v))
	case reflect.Uint16:
		var v uint16
		r.ReadUint16(&v)
		rv.SetUint(uint64(v))
	case reflect.Uint32:
		var v uint32
		r.ReadUint32(&v)
		rv.SetUint(uint64(v))
	case reflect.Uint64:
		var v uint64
		r.ReadUint64(&v)
		rv.SetUint(v)
	case reflect.Float32:
		var v uint32
		r.ReadUint32(&v)
		rv.SetFloat(float64(math.Float32frombits(v)))
	case reflect.Float64:
		var v uint64
		r.ReadUint64(&v)
		rv.SetFloat(math.Float64frombits(v))
	case reflect.Array, reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			readBitCopyValue(r, rv.Index(i))
		}
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			readBitCopyValue(r, rv.Field(i))
		}
	}
}
