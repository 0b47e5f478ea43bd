package eventloop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type LoopTestSuite struct {
	suite.Suite
	loop *Loop
	ctx  context.Context
}

func (s *LoopTestSuite) SetupTest() {
	s.loop = New()
	s.ctx = context.Background()
}

func (s *LoopTestSuite) TearDownTest() {
	s.loop.Close()
}

func (s *LoopTestSuite) TestRunsInOrder() {
	var got []int
	for i := 0; i < 100; i++ {
		i := i
		s.Require().NoError(s.loop.Post(func() { got = append(got, i) }))
	}

	s.Require().NoError(s.loop.Do(s.ctx, func() {}))

	s.Len(got, 100)
	for i, v := range got {
		s.Equal(i, v)
	}
}

func (s *LoopTestSuite) TestConcurrentPostsAreSerialized() {
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = s.loop.Do(s.ctx, func() { counter++ })
			}
		}()
	}
	wg.Wait()

	s.Equal(1000, counter)
}

func (s *LoopTestSuite) TestPostFromInsideLoop() {
	ran := make(chan struct{})
	s.Require().NoError(s.loop.Do(s.ctx, func() {
		s.Require().NoError(s.loop.Post(func() { close(ran) }))
	}))

	select {
	case <-ran:
	case <-time.After(time.Second):
		s.Fail("nested post never ran")
	}
}

func (s *LoopTestSuite) TestDoRespectsContext() {
	block := make(chan struct{})
	s.Require().NoError(s.loop.Post(func() { <-block }))

	ctx, cancel := context.WithTimeout(s.ctx, 10*time.Millisecond)
	defer cancel()

	err := s.loop.Do(ctx, func() {})
	s.ErrorIs(err, context.DeadlineExceeded)
	close(block)
}

func (s *LoopTestSuite) TestCloseDrainsQueue() {
	ran := 0
	for i := 0; i < 10; i++ {
		s.Require().NoError(s.loop.Post(func() { ran++ }))
	}

	s.loop.Close()

	s.Equal(10, ran)
	s.ErrorIs(s.loop.Post(func() {}), ErrClosed)
	s.ErrorIs(s.loop.Do(s.ctx, func() {}), ErrClosed)
}

func TestLoopTestSuite(t *testing.T) {
	suite.Run(t, new(LoopTestSuite))
}
