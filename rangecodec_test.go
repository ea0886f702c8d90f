package streamable

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RangeTestSuite struct {
	suite.Suite
}

func (s *RangeTestSuite) TestByteSliceRoundTrip() {
	got := roundTrip(s.T(), []byte{1, 2, 3, 4})
	s.Equal([]byte{1, 2, 3, 4}, got)
}

func (s *RangeTestSuite) TestEmptySliceRoundTrip() {
	got := roundTrip(s.T(), []int32{})
	s.Len(got, 0)
}

func (s *RangeTestSuite) TestFixedArrayRoundTrip() {
	got := roundTrip(s.T(), [4]int32{10, 20, 30, 40})
	s.Equal([4]int32{10, 20, 30, 40}, got)
}

func (s *RangeTestSuite) TestNestedSliceRoundTrip() {
	in := [][]int32{{1, 2}, {}, {3}}
	got := roundTrip(s.T(), in)
	s.Equal(in, got)
}

func (s *RangeTestSuite) TestSliceOfPairsRoundTrip() {
	in := []Pair[int32, float32]{MakePair(int32(1), float32(1.5)), MakePair(int32(2), float32(2.5))}
	got := roundTrip(s.T(), in)
	s.Equal(in, got)
}

func (s *RangeTestSuite) TestDeeplyNestedStringRanges() {
	in := [][][]string{{{"a", "b"}, {"c"}}, {}}
	got := roundTrip(s.T(), in)
	s.Equal(in, got)
}

func (s *RangeTestSuite) TestMapRoundTrip() {
	in := map[string]int32{"a": 1, "b": 2}
	got := roundTrip(s.T(), in)
	s.Equal(in, got)
}

func (s *RangeTestSuite) TestMapOfEnumSlicesRoundTrip() {
	in := map[string][]uint8{"x": {1, 2, 3}, "y": {}}
	got := roundTrip(s.T(), in)
	s.Equal(in, got)
}

func (s *RangeTestSuite) TestEveryRangeLevelGetsOwnCountPrefix() {
	in := [][]int32{{}, {}}
	s.Equal(EncodedCountLen(2)+2*EncodedCountLen(0), SizeOf(in))
}

func (s *RangeTestSuite) TestDoubleAndStringRoundTrip() {
	pair := MakePair(3.141592653589793, "pi")
	got := roundTrip(s.T(), pair)
	s.Equal(pair, got)
}

func TestRange(t *testing.T) {
	suite.Run(t, new(RangeTestSuite))
}
