package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OutputListTestSuite struct {
	suite.Suite
	list *OutputList
}

func (s *OutputListTestSuite) SetupTest() {
	var err error
	s.list, err = NewOutputList(4)
	s.Require().NoError(err)
}

func (s *OutputListTestSuite) TestDirtyFlag() {
	s.False(s.list.InsertedSinceRecycle())

	s.Require().NoError(s.list.Add("x"))
	s.True(s.list.InsertedSinceRecycle())

	s.list.Clear()
	s.Zero(s.list.Len())
	s.True(s.list.InsertedSinceRecycle(), "Clear must not reset the dirty flag")

	s.list.Recycle()
	s.False(s.list.InsertedSinceRecycle())
	s.Zero(s.list.Len())
}

func (s *OutputListTestSuite) TestDirtyOnSetAndInsert() {
	s.Require().NoError(s.list.Add("a"))
	s.list.Recycle()

	s.T().Run("FailedAddStaysClean", func(t *testing.T) {
		assert.ErrorIs(t, s.list.Add(nil), ErrNilElement)
		assert.False(t, s.list.InsertedSinceRecycle())
	})

	s.T().Run("SetOnEmptyStaysClean", func(t *testing.T) {
		l, _ := NewOutputList(4)
		require.NoError(t, l.Add("a"))
		l.Recycle()
		// Recycle emptied it, so Set has nothing to replace.
		_, err := l.Set(0, "b")
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.False(t, l.InsertedSinceRecycle())
	})

	s.T().Run("InsertMarksDirty", func(t *testing.T) {
		l, _ := NewOutputList(4)
		require.NoError(t, l.Add("a"))
		l.Recycle()
		require.NoError(t, l.Add("b"))
		l.Recycle()
		assert.False(t, l.InsertedSinceRecycle())
		require.NoError(t, l.Add("c"))
		require.NoError(t, l.Insert(0, "d"))
		assert.True(t, l.InsertedSinceRecycle())
		assert.Equal(t, []any{"d", "c"}, l.Items())
	})
}

func (s *OutputListTestSuite) TestRecyclePurgesSlots() {
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		s.Require().NoError(s.list.Add(v))
	}
	s.list.Recycle()

	s.Zero(s.list.Len())
	for i := 0; i < s.list.Cap(); i++ {
		s.Nil(s.list.UnsafeGet(i), "slot %d still referenced", i)
	}
}

func (s *OutputListTestSuite) TestRecyclePurgesAfterClear() {
	s.Require().NoError(s.list.Add("a"))
	s.Require().NoError(s.list.Add("b"))
	s.list.Clear()
	s.Require().NoError(s.list.Add("c"))
	s.list.Recycle()

	s.Nil(s.list.UnsafeGet(0))
	s.Nil(s.list.UnsafeGet(1), "slot populated before Clear must be purged too")
}

func (s *OutputListTestSuite) TestDrain() {
	for _, v := range []string{"a", "b", "c"} {
		s.Require().NoError(s.list.Add(v))
	}

	var got []any
	err := s.list.Drain(func(v any) error {
		got = append(got, v)
		return nil
	})
	s.Require().NoError(err)
	s.Equal([]any{"a", "b", "c"}, got)
	s.Zero(s.list.Len())
	s.True(s.list.InsertedSinceRecycle())
}

func (s *OutputListTestSuite) TestDrainStopsOnError() {
	s.Require().NoError(s.list.Add("a"))
	s.Require().NoError(s.list.Add("b"))

	boom := errors.New("boom")
	calls := 0
	err := s.list.Drain(func(v any) error {
		calls++
		return boom
	})
	s.ErrorIs(err, boom)
	s.Equal(1, calls)
	s.Equal(2, s.list.Len())
}

func (s *OutputListTestSuite) TestRemoveScenario() {
	for _, v := range []string{"a", "b", "c"} {
		s.Require().NoError(s.list.Add(v))
	}
	v, err := s.list.Remove(1)
	s.Require().NoError(err)
	s.Equal("b", v)
	s.Equal(2, s.list.Len())
	s.Equal([]any{"a", "c"}, s.list.Items())
}

func (s *OutputListTestSuite) TestUnpooledRecycleIsDropped() {
	s.Require().NoError(s.list.Add("x"))
	s.list.Recycle()
	s.Zero(s.list.Len())
	s.False(s.list.InsertedSinceRecycle())

	// Still usable by whoever kept a reference; it simply belongs to no pool.
	s.Require().NoError(s.list.Add("y"))
	got, err := s.list.Get(0)
	s.Require().NoError(err)
	s.Equal("y", got)
}

func TestOutputList(t *testing.T) {
	suite.Run(t, new(OutputListTestSuite))
}

func TestNewOutputListInvalid(t *testing.T) {
	_, err := NewOutputList(0)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}
