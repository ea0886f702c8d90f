package streamable

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type OptionalTestSuite struct {
	suite.Suite
}

func (s *OptionalTestSuite) TestPresentRoundTrip() {
	got := roundTrip(s.T(), Some(int32(42)))
	val, ok := got.Get()
	s.True(ok)
	s.EqualValues(42, val)
}

func (s *OptionalTestSuite) TestAbsentRoundTrip() {
	got := roundTrip(s.T(), None[int32]())
	_, ok := got.Get()
	s.False(ok)
}

func (s *OptionalTestSuite) TestAbsentSizeIsOneByte() {
	s.Equal(1, SizeOf(None[uint64]()))
}

func (s *OptionalTestSuite) TestPresentSizeIncludesElement() {
	s.Equal(1+SizeOf(int32(0)), SizeOf(Some(int32(7))))
}

func (s *OptionalTestSuite) TestNestedOptional() {
	got := roundTrip(s.T(), Some(Some(WideString("nested"))))
	outer, ok := got.Get()
	s.True(ok)
	inner, ok := outer.Get()
	s.True(ok)
	s.EqualValues("nested", inner)
}

func (s *OptionalTestSuite) TestInvalidTagOnDecode() {
	encoded := EncodeCount(nil, 7)
	var dest Optional[int32]
	err := decodeIntoExpectingError(s.T(), encoded, &dest)
	s.ErrorIs(err, ErrInvalidTag)
}

func TestOptional(t *testing.T) {
	suite.Run(t, new(OptionalTestSuite))
}
