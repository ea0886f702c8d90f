package streamable

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type WideStringTestSuite struct {
	suite.Suite
}

func (s *WideStringTestSuite) TestASCIIRoundTrip() {
	got := roundTrip(s.T(), WideString("hello world"))
	s.Equal(WideString("hello world"), got)
}

func (s *WideStringTestSuite) TestSurrogatePairRoundTrip() {
	got := roundTrip(s.T(), WideString("emoji: \U0001F600"))
	s.Equal(WideString("emoji: \U0001F600"), got)
}

func (s *WideStringTestSuite) TestEmptyStringRoundTrip() {
	got := roundTrip(s.T(), WideString(""))
	s.Equal(WideString(""), got)
}

func (s *WideStringTestSuite) TestSizeMatchesEncodedByteLength() {
	v := WideString("abc")
	encoded := encodeValue(s.T(), v)
	s.Equal(len(encoded), SizeOf(v))
}

func TestWideString(t *testing.T) {
	suite.Run(t, new(WideStringTestSuite))
}
