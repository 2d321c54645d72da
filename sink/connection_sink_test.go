package sink_test

import (
	"context"
	"forum-lab/domain"
	"forum-lab/errors"
	"forum-lab/sink"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConnectionSink_Consume_Buffers_In_Order(t *testing.T) {
	req := require.New(t)
	s := sink.NewConnectionSink(2)

	req.NoError(s.Consume(context.Background(), domain.Notification{Op: domain.OpLockPost, TargetID: 1}))
	req.NoError(s.Consume(context.Background(), domain.Notification{Op: domain.OpLockPost, TargetID: 2}))

	req.Equal(int64(1), (<-s.Outbound).TargetID)
	req.Equal(int64(2), (<-s.Outbound).TargetID)
}

func TestConnectionSink_Consume_Full_Buffer_Times_Out(t *testing.T) {
	req := require.New(t)
	s := sink.NewConnectionSink(1)
	req.NoError(s.Consume(context.Background(), domain.Notification{}))

	// Given the buffer is full
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// When a new notification arrives
	err := s.Consume(ctx, domain.Notification{})

	// Then it is dropped once the deadline expires
	req.ErrorIs(err, errors.ErrSinkFull)
}

func TestConnectionSink_Consume_After_Close(t *testing.T) {
	req := require.New(t)
	s := sink.NewConnectionSink(1)

	s.Close()
	s.Close()

	req.ErrorIs(s.Consume(context.Background(), domain.Notification{}), errors.ErrSinkClosed)
	select {
	case <-s.Done():
	default:
		req.Fail("Done should be closed")
	}
}
