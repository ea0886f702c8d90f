package streamable

import "go.uber.org/atomic"

// Raw, Unique and Shared are the three pointer ownership flavours spec.md's
// source distinguishes at the API level (none of it is visible on the wire:
// all three serialize as count(0 or 1) plus the element, exactly like
// Optional, since ownership is a Go-side concern the wire format has no
// opinion about).
//
// Raw never owns its referent; Unique owns it exclusively and transfers
// ownership via Take; Shared owns it jointly via a go.uber.org/atomic
// refcount, grounded on iotaledger-hive.go's go.mod (the only repo in the
// retrieval pack with a direct go.uber.org/atomic dependency).

// Raw is a non-owning, nilable reference to a value of type U.
type Raw[U any] struct {
	pointerFlavorMarker

	ptr *U
}

// NewRaw wraps an existing pointer without taking ownership of it.
func NewRaw[U any](ptr *U) Raw[U] { return Raw[U]{ptr: ptr} }

// Get returns the referent and whether it is non-nil.
func (r Raw[U]) Get() (*U, bool) { return r.ptr, r.ptr != nil }

func (r Raw[U]) size() int {
	if r.ptr == nil {
		return EncodedCountLen(0)
	}
	return EncodedCountLen(1) + sizeOfValue(*r.ptr)
}

func (r Raw[U]) writeTo(w *Writer) error {
	if r.ptr == nil {
		w.writeCount(0)
		return w.err
	}
	w.writeCount(1)
	return w.writeValue(*r.ptr)
}

func (r *Raw[U]) readFrom(rd *Reader) error {
	tag, err := rd.readCount()
	if err != nil {
		return err
	}
	switch tag {
	case 0:
		r.ptr = nil
	case 1:
		var v U
		if err := rd.readValue(&v); err != nil {
			return err
		}
		r.ptr = &v
	default:
		return ErrInvalidTag
	}
	return nil
}

// Unique owns its referent exclusively. Take transfers that ownership to the
// caller and leaves the Unique empty, the same move discipline Stream.Take
// uses for its backing buffer.
type Unique[U any] struct {
	pointerFlavorMarker

	ptr *U
}

// NewUnique takes ownership of ptr.
func NewUnique[U any](ptr *U) Unique[U] { return Unique[U]{ptr: ptr} }

// Take hands the owned pointer to the caller and empties u.
func (u *Unique[U]) Take() (*U, error) {
	if u.ptr == nil {
		return nil, ErrNotPointer
	}
	ptr := u.ptr
	u.ptr = nil
	return ptr, nil
}

func (u Unique[U]) size() int {
	if u.ptr == nil {
		return EncodedCountLen(0)
	}
	return EncodedCountLen(1) + sizeOfValue(*u.ptr)
}

func (u Unique[U]) writeTo(w *Writer) error {
	if u.ptr == nil {
		w.writeCount(0)
		return w.err
	}
	w.writeCount(1)
	return w.writeValue(*u.ptr)
}

func (u *Unique[U]) readFrom(r *Reader) error {
	tag, err := r.readCount()
	if err != nil {
		return err
	}
	switch tag {
	case 0:
		u.ptr = nil
	case 1:
		var v U
		if err := r.readValue(&v); err != nil {
			return err
		}
		u.ptr = &v
	default:
		return ErrInvalidTag
	}
	return nil
}

// Shared owns its referent jointly with every clone produced by Clone. The
// underlying value is released (ptr set to nil on this handle) once Release
// has been called as many times as the handle was cloned plus one.
type Shared[U any] struct {
	pointerFlavorMarker

	ptr  *U
	refs *atomic.Int64
}

// NewShared takes shared ownership of ptr, starting its refcount at 1.
func NewShared[U any](ptr *U) Shared[U] {
	if ptr == nil {
		return Shared[U]{}
	}
	return Shared[U]{ptr: ptr, refs: atomic.NewInt64(1)}
}

// Clone increments the shared refcount and returns a handle sharing the same
// referent.
func (s Shared[U]) Clone() Shared[U] {
	if s.ptr == nil {
		return s
	}
	s.refs.Inc()
	return s
}

// Release decrements the shared refcount, returning true if this call
// dropped it to zero (the referent is no longer reachable from any handle).
func (s *Shared[U]) Release() bool {
	if s.ptr == nil {
		return false
	}
	dropped := s.refs.Dec() == 0
	s.ptr = nil
	s.refs = nil
	return dropped
}

// Get returns the referent and whether it is non-nil.
func (s Shared[U]) Get() (*U, bool) { return s.ptr, s.ptr != nil }

func (s Shared[U]) size() int {
	if s.ptr == nil {
		return EncodedCountLen(0)
	}
	return EncodedCountLen(1) + sizeOfValue(*s.ptr)
}

func (s Shared[U]) writeTo(w *Writer) error {
	if s.ptr == nil {
		w.writeCount(0)
		return w.err
	}
	w.writeCount(1)
	return w.writeValue(*s.ptr)
}

func (s *Shared[U]) readFrom(r *Reader) error {
	tag, err := r.readCount()
	if err != nil {
		return err
	}
	switch tag {
	case 0:
		s.ptr = nil
		s.refs = nil
	case 1:
		var v U
		if err := r.readValue(&v); err != nil {
			return err
		}
		s.ptr = &v
		s.refs = atomic.NewInt64(1)
	default:
		return ErrInvalidTag
	}
	return nil
}
