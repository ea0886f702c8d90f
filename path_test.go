package streamable

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PathTestSuite struct {
	suite.Suite
}

func (s *PathTestSuite) TestRoundTrip() {
	got := roundTrip(s.T(), Path("/var/log/app.log"))
	s.Equal(Path("/var/log/app.log"), got)
}

func (s *PathTestSuite) TestEmptyPathRoundTrip() {
	got := roundTrip(s.T(), Path(""))
	s.Equal(Path(""), got)
}

func (s *PathTestSuite) TestSizeIsCountPrefixPlusBytes() {
	p := Path("relative/path")
	s.Equal(EncodedCountLen(uint64(len(p)))+len(p), SizeOf(p))
}

func TestPath(t *testing.T) {
	suite.Run(t, new(PathTestSuite))
}
