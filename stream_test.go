package streamable

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"
)

type StreamTestSuite struct {
	suite.Suite
}

func (s *StreamTestSuite) TestWriteReadRoundTrip() {
	st := NewStream()
	st.Write([]byte("hello"))
	st.WriteByte(' ')
	st.Write([]byte("world"))

	s.Equal(11, st.Len())
	got := st.Read(5)
	s.Equal("hello", string(got))
	s.Equal(6, st.Len())
}

func (s *StreamTestSuite) TestPeekRestoresCursorOnError() {
	st := NewStreamFromBytes([]byte{1, 2, 3, 4})

	err := st.Peek(func(inner *Stream) error {
		inner.Read(2)
		return ErrInvalidSeek
	})
	s.ErrorIs(err, ErrInvalidSeek)
	s.Equal(0, st.ReadCursor(), "cursor must be restored even when f errors")
}

func (s *StreamTestSuite) TestPeekWithOffset() {
	st := NewStreamFromBytes([]byte{1, 2, 3, 4, 5})

	var peeked []byte
	err := st.Peek(func(inner *Stream) error {
		peeked = inner.Read(2)
		return nil
	}, 2)
	s.Require().NoError(err)
	s.Equal([]byte{3, 4}, peeked)
	s.Equal(0, st.ReadCursor())
}

func (s *StreamTestSuite) TestTakeResetsStream() {
	st := NewStream()
	st.Write([]byte{9, 9, 9})
	taken := st.Take()
	s.Equal([]byte{9, 9, 9}, taken)
	s.Equal(0, st.Len())
	s.Equal(0, st.Cap())
}

func (s *StreamTestSuite) TestReserveGrowsCapacityWithoutLosingData() {
	st := NewStream()
	st.Write([]byte{1, 2, 3})
	st.Reserve(1024)
	s.GreaterOrEqual(st.Cap(), 1024+3)
	s.Equal([]byte{1, 2, 3}, st.Bytes())
}

func (s *StreamTestSuite) TestReadFromWriteToInterop() {
	src := bytes.NewReader([]byte("streamed payload"))
	st := NewStream()
	n, err := st.ReadFrom(src)
	s.Require().NoError(err)
	s.EqualValues(len("streamed payload"), n)

	var dst bytes.Buffer
	n2, err := st.WriteTo(&dst)
	s.Require().NoError(err)
	s.EqualValues(n, n2)
	s.Equal("streamed payload", dst.String())
}

func (s *StreamTestSuite) TestStreamBacksAWriterAndReader() {
	st := NewStream()
	w, err := NewWriter(st)
	s.Require().NoError(err)
	s.Require().NoError(w.WriteValue(int32(42)))
	s.Require().NoError(w.Flush())

	r, err := NewReader(st)
	s.Require().NoError(err)
	var got int32
	s.Require().NoError(r.ReadValue(&got))
	s.EqualValues(42, got)
}

func TestStream(t *testing.T) {
	suite.Run(t, new(StreamTestSuite))
}
