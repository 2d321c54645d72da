package sink

import (
	"context"
	"fmt"
	"forum-lab/domain"
	"forum-lab/errors"
	"sync"
)

// ConnectionSink is the outbound queue of one live connection.
// The hub pushes into it, the transport writer drains Outbound.
type ConnectionSink struct {
	Outbound chan domain.Notification
	done     chan struct{}
	once     sync.Once
}

func NewConnectionSink(bufferSize int) *ConnectionSink {
	return &ConnectionSink{
		Outbound: make(chan domain.Notification, bufferSize),
		done:     make(chan struct{}),
	}
}

// Consume is called by the hub. It waits for buffer space until ctx expires,
// then gives up; a closed sink refuses immediately.
func (s *ConnectionSink) Consume(ctx context.Context, n domain.Notification) error {
	select {
	case <-s.done:
		return errors.ErrSinkClosed
	default:
	}

	select {
	case s.Outbound <- n:
		return nil
	case <-s.done:
		return errors.ErrSinkClosed
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", errors.ErrSinkFull, ctx.Err())
	}
}

// Close stops accepting notifications. Outbound is left open so a writer
// blocked on it is released through Done instead.
func (s *ConnectionSink) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *ConnectionSink) Done() <-chan struct{} {
	return s.done
}
