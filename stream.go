package streamable

import "io"

// Stream is the core in-memory buffer the codec engine reads from and writes
// to: a single contiguous byte region with independent read and write
// cursors. It is grounded on the original source's StringBuffer (separate
// get/put positions over one buffer) and on BytesReader/BytesWriter
// (slice-backed, grow-on-write).
//
// A Stream is not safe for concurrent use; thread safety of a single stream
// is explicitly out of scope.
type Stream struct {
	buf   []byte
	read  int
	write int
}

// NewStream creates an empty Stream with no pre-allocated capacity.
func NewStream() *Stream {
	return &Stream{}
}

// NewStreamSize creates an empty Stream with capacity pre-reserved for n
// bytes of writes.
func NewStreamSize(n int) *Stream {
	s := &Stream{}
	s.Reserve(n)
	return s
}

// NewStreamFromBytes wraps an existing slice as a Stream's initial contents,
// ready to be read; the write cursor starts at the end of buf so appends
// continue from there.
func NewStreamFromBytes(buf []byte) *Stream {
	return &Stream{buf: buf, write: len(buf)}
}

// Reserve ensures at least n bytes of free write capacity, growing the
// backing slice's capacity (not its length) if necessary. Amortized linear,
// matching spec.md §4.B.
func (s *Stream) Reserve(n int) {
	need := s.write + n
	if need <= cap(s.buf) {
		return
	}
	grown := make([]byte, s.write, need)
	copy(grown, s.buf[:s.write])
	s.buf = grown
}

// Write appends p at the write cursor, growing capacity as needed, and
// returns s for chaining, matching the fluent style of this package's Writer.
func (s *Stream) Write(p []byte) *Stream {
	if len(p) == 0 {
		return s
	}
	s.buf = append(s.buf[:s.write], p...)
	s.write += len(p)
	return s
}

// WriteByte appends a single byte, implementing io.ByteWriter.
func (s *Stream) WriteByte(b byte) error {
	s.buf = append(s.buf[:s.write], b)
	s.write++
	return nil
}

// Read returns a non-owning view of up to n bytes starting at the read
// cursor and advances the cursor by the returned length. If fewer than n
// bytes remain, the view is shorter (possibly empty) — never an error,
// per spec.md §4.B.
func (s *Stream) Read(n int) []byte {
	if n <= 0 {
		return nil
	}
	available := s.write - s.read
	if n > available {
		n = available
	}
	if n <= 0 {
		return nil
	}
	view := s.buf[s.read : s.read+n]
	s.read += n
	return view
}

// ReadByte reads and consumes a single byte, implementing io.ByteReader.
func (s *Stream) ReadByte() (byte, error) {
	if s.read >= s.write {
		return 0, io.EOF
	}
	b := s.buf[s.read]
	s.read++
	return b, nil
}

// Current returns a look-ahead view of all unread bytes without advancing
// the read cursor. The returned slice aliases the buffer and must not be
// retained past the next write that could trigger reallocation.
func (s *Stream) Current() []byte {
	return s.buf[s.read:s.write]
}

// Peek saves the read cursor, optionally seeks forward by offset, invokes f,
// then unconditionally restores the read cursor — even if f panics or
// returns an error — satisfying the peek-non-disturbance invariant in
// spec.md §8.
func (s *Stream) Peek(f func(*Stream) error, offset ...int) error {
	saved := s.read
	defer func() { s.read = saved }()

	if len(offset) > 0 && offset[0] != 0 {
		target := saved + offset[0]
		if target < 0 || target > s.write {
			return ErrInvalidSeek
		}
		s.read = target
	}

	return f(s)
}

// Flush is a no-op: Stream keeps no write-staging region distinct from what
// is immediately visible to reads, so there is nothing to make visible.
// Kept for parity with other Flush-bearing types in this package.
func (s *Stream) Flush() error { return nil }

// Take hands over the backing slice to the caller and resets s to empty,
// the Go analogue of the "move" semantics spec.md §9 (open question 2)
// picks as the safer of the two StreamBuffer variants in the source: the
// old owner can no longer observe or mutate the bytes after a Take.
func (s *Stream) Take() []byte {
	buf := s.buf[s.read:s.write]
	s.buf, s.read, s.write = nil, 0, 0
	return buf
}

// Bytes returns a view of the entire written region, from the very start
// of the buffer (not the read cursor).
func (s *Stream) Bytes() []byte { return s.buf[:s.write] }

// Len returns the number of unread bytes.
func (s *Stream) Len() int { return s.write - s.read }

// Cap returns the stream's total backing capacity.
func (s *Stream) Cap() int { return cap(s.buf) }

// ReadCursor and WriteCursor expose the two cursor positions for callers
// that need to reason about offsets directly (e.g. ReadVariableFieldStream
// style field extraction via the adapters in seeker.go).
func (s *Stream) ReadCursor() int  { return s.read }
func (s *Stream) WriteCursor() int { return s.write }

// ReadFrom implements io.ReaderFrom, filling the Stream from an external
// byte source. This is the interop seam spec.md §5 calls "byte sinks/sources
// are caller-provided": the codec engine itself never performs I/O, but a
// Stream can still be loaded from a file or socket via the standard
// io.Copy-compatible interfaces.
func (s *Stream) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	buf := make([]byte, BUFFER_SIZE)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			s.Write(buf[:n])
			total += int64(n)
		}
		if err != nil {
			if err == io.EOF {
				return total, nil
			}
			return total, err
		}
	}
}

// WriteTo implements io.WriterTo, draining the Stream's unread bytes to an
// external sink and advancing the read cursor as it goes.
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	if s.read >= s.write {
		return 0, nil
	}
	n, err := w.Write(s.buf[s.read:s.write])
	s.read += n
	return int64(n), err
}
