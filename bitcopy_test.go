package streamable

import (
	"bytes"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type bitCopyStruct struct {
	ID   uint32
	Data [4]byte
}

type BitCopyTestSuite struct {
	suite.Suite
}

func (s *BitCopyTestSuite) TestWriteReadRoundTrip() {
	v := bitCopyStruct{ID: 0xDEADBEEF, Data: [4]byte{1, 2, 3, 4}}

	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	s.Require().NoError(err)
	s.Require().NoError(writeBitCopy(w, v))
	s.Require().NoError(w.Flush())

	var got bitCopyStruct
	r, err := NewReader(&buf)
	s.Require().NoError(err)
	s.Require().NoError(readBitCopy(r, &got))
	s.Equal(v, got)
}

func (s *BitCopyTestSuite) TestSizeCachePopulatesAndIsShared() {
	t := reflect.TypeOf(bitCopyStruct{})
	sizeCache.Delete(t)

	expected := bitCopySize(t)
	s.Equal(8, expected)

	size, ok := sizeCache.Load(t)
	s.True(ok)
	s.Equal(expected, size)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(s.T(), expected, bitCopySize(t))
		}()
	}
	wg.Wait()
}

func TestBitCopy(t *testing.T) {
	suite.Run(t, new(BitCopyTestSuite))
}
