package streamable

import "errors"

var (
	// ErrNilIO indicates that NewReader/NewWriter was called with an nil interface
	ErrNilIO = errors.New("streamable: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrSizeTooSmall indicates a size conflict with bufio
	ErrSizeTooSmall = errors.New("streamable: NewReaderSize with a size smaller than 16 conflict with bufio")

	// ErrAlreadyBuffered indicates that NewReader/NewWriter was called with an already-buffered
	// reader/writer, which would lead to unpredictable behavior and performance issues.
	ErrAlreadyBuffered = errors.New("streamable: reader or writer is already buffered")

	// ErrWriteToNil indicates a WriteTo operation was attempted on a nil io.Writer.
	ErrWriteToNil = errors.New("streamable: WriteTo called with a nil io.Writer")

	// ErrReadToNil indicates a ReadTo operation was attempted on a nil io.ReaderFrom.
	ErrReadToNil = errors.New("streamable: ReadTo called with a nil io.ReaderFrom")

	// ErrInvalidSeek indicates a seek was attempted to invalid position.
	ErrInvalidSeek = errors.New("streamable: seek to a invalid position")

	// ErrUnsupportedNegativeSeek indicates a backward seek was attempted on a forward-only seeker.
	ErrUnsupportedNegativeSeek = errors.New("streamable: unsupported negative offset for forward-only seeker")

	// ErrInvalidWhence indicates that an invalid 'whence' parameter was provided to a Seek operation.
	ErrInvalidWhence = errors.New("streamable: unsupported whence for forward-only seeker")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid (negative) count from Write.
	ErrInvalidWrite = errors.New("streamable: writer returned invalid count from Write")

	// ErrInvalidRead indicates that an io.Reader returned an invalid (negative or outbound) count from Read.
	ErrInvalidRead = errors.New("streamable: reader returned invalid count from Read")

	// ErrDiscardNegative indicates a Discard operation was attempted with a negative byte count.
	ErrDiscardNegative = errors.New("streamable: cannot discard negative number of bytes")

	// ErrTruncatedData indicates that a read operation could not complete because the
	// underlying data source (e.g., buffer, stream) ended before all expected bytes were read.
	ErrTruncatedData = errors.New("streamable: truncated data")

	// ErrInvalidTag indicates a discriminant read for an Optional or Variant was out of range
	// for the declared alternative set.
	ErrInvalidTag = errors.New("streamable: invalid tag")

	// ErrTranscode indicates a wide string's backing bytes were not valid UTF-8/UTF-16
	// during transcoding.
	ErrTranscode = errors.New("streamable: transcode error")

	// ErrUnsupportedType indicates a Go type does not match any codec category the
	// classifier recognizes. Raised as early as possible, emulating the source's
	// compile-time rejection of unsupported types.
	ErrUnsupportedType = errors.New("streamable: unsupported type")

	// ErrDowncastFailed indicates a registered factory returned a value that does not
	// satisfy the expected base Streamable interface, or returned nil.
	ErrDowncastFailed = errors.New("streamable: downcast failed")

	// ErrUnknownDiscriminant indicates a polymorphic base's registry has no factory
	// registered for the discriminant read from the stream.
	ErrUnknownDiscriminant = errors.New("streamable: unknown discriminant")

	// ErrNotPointer indicates a pointer-flavour wrapper was asked to operate on a nil
	// or already-released value.
	ErrNotPointer = errors.New("streamable: pointer flavour holds no value")

	// ErrSizeMismatch indicates a Streamable's ToStream wrote a different number of
	// bytes than its own FindParseSize predicted, violating the invariant the
	// size-finder, writer and reader all rely on agreeing bit-for-bit.
	ErrSizeMismatch = errors.New("streamable: FindParseSize disagrees with ToStream's actual output")
)
