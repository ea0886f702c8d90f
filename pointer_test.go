package streamable

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PointerTestSuite struct {
	suite.Suite
}

func (s *PointerTestSuite) TestRawRoundTripPresent() {
	v := int32(17)
	got := roundTrip(s.T(), NewRaw(&v))
	ptr, ok := got.Get()
	s.True(ok)
	s.EqualValues(17, *ptr)
}

func (s *PointerTestSuite) TestRawRoundTripNil() {
	got := roundTrip(s.T(), NewRaw[int32](nil))
	_, ok := got.Get()
	s.False(ok)
}

func (s *PointerTestSuite) TestUniqueRoundTripAndTake() {
	v := "owned"
	got := roundTrip(s.T(), NewUnique(&v))
	taken, err := got.Take()
	s.Require().NoError(err)
	s.Equal("owned", *taken)

	_, err = got.Take()
	s.ErrorIs(err, ErrNotPointer)
}

func (s *PointerTestSuite) TestSharedRoundTripAndRefcount() {
	v := int64(100)
	got := roundTrip(s.T(), NewShared(&v))

	clone := got.Clone()
	ptr, ok := clone.Get()
	s.True(ok)
	s.EqualValues(100, *ptr)

	s.False(got.Release())
	s.True(clone.Release())
}

func (s *PointerTestSuite) TestSharedNilNeverPanics() {
	s.NotPanics(func() {
		var s0 Shared[int32]
		s0.Release()
		s0.Clone()
	})
}

func (s *PointerTestSuite) TestAbsentSizeIsOneByte() {
	s.Equal(1, SizeOf(NewRaw[int32](nil)))
	s.Equal(1, SizeOf(NewUnique[int32](nil)))
}

func TestPointer(t *testing.T) {
	suite.Run(t, new(PointerTestSuite))
}
