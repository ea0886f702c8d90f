package streamable

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// encodeValue writes v through WriteValue into a fresh buffer and returns the
// raw bytes, failing the test on any writer error.
func encodeValue(t require.TestingT, v any) []byte {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.WriteValue(v))
	require.NoError(t, w.Flush())
	return buf.Bytes()
}

// decodeInto reads encoded through ReadValue into dest, failing the test on
// any reader error.
func decodeInto(t require.TestingT, encoded []byte, dest any) {
	r, err := NewReader(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.NoError(t, r.ReadValue(dest))
}

// decodeIntoExpectingError reads encoded into dest and returns the resulting
// reader error, for tests asserting a specific failure mode rather than a
// successful round trip.
func decodeIntoExpectingError(t require.TestingT, encoded []byte, dest any) error {
	r, err := NewReader(bytes.NewReader(encoded))
	require.NoError(t, err)
	return r.ReadValue(dest)
}

// roundTrip encodes v and decodes it back into a zero value of the same
// type, asserting the size-finder, writer and reader all agree.
func roundTrip[T any](t *testing.T, v T) T {
	t.Helper()
	encoded := encodeValue(t, v)
	require.Equal(t, SizeOf(v), len(encoded), "SizeOf must agree with the writer's actual output")

	var got T
	decodeInto(t, encoded, &got)
	return got
}
