package runtime

import (
	"context"
	"forum-lab/contract"
	"forum-lab/domain"
	"log/slog"
	"sync"
	"time"
)

type roomLock struct {
	mu   sync.Mutex
	refs int
}

// RoomHub fans a notification out to every connection currently in a room.
//
// Delivery is best-effort and at-most-once: each member's sink is offered the
// notification once, with a bounded timeout, and a sink that is closed or
// full is skipped without failing the publish. There is no retry and no
// backlog for reconnecting clients.
//
// Publishes to the same room are serialized by a per-room lock, so members
// observe them in publish order. Different rooms never wait on each other.
type RoomHub struct {
	log         *slog.Logger
	registry    contract.ISessionRegistry
	sinkTimeout time.Duration

	mu    sync.Mutex
	locks map[domain.Room]*roomLock
}

func NewRoomHub(log *slog.Logger, registry contract.ISessionRegistry, sinkTimeout time.Duration) *RoomHub {
	return &RoomHub{
		log:         log,
		registry:    registry,
		sinkTimeout: sinkTimeout,
		locks:       make(map[domain.Room]*roomLock),
	}
}

func (h *RoomHub) Publish(ctx context.Context, room domain.Room, n domain.Notification) contract.Delivery {
	return h.publish(ctx, room, n, nil)
}

// PublishExcluding behaves like Publish but skips one connection,
// typically the one that caused the notification.
func (h *RoomHub) PublishExcluding(ctx context.Context, room domain.Room, n domain.Notification,
	excluded domain.ConnectionID) contract.Delivery {
	return h.publish(ctx, room, n, &excluded)
}

func (h *RoomHub) publish(ctx context.Context, room domain.Room, n domain.Notification,
	excluded *domain.ConnectionID) contract.Delivery {
	lock := h.acquire(room)
	defer h.release(room, lock)

	n.Room = room
	var delivery contract.Delivery
	for _, member := range h.registry.Snapshot(room) {
		if excluded != nil && member.ID == *excluded {
			delivery.Excluded++
			continue
		}
		if err := h.deliver(ctx, member.Sink, n); err != nil {
			// Mid-disconnect or slow consumer, dropped on purpose.
			h.log.Debug("Notification dropped",
				"room", room.String(), "connection_id", member.ID, "op", n.Op, "error", err)
			delivery.Dropped++
			continue
		}
		delivery.Delivered++
	}
	return delivery
}

func (h *RoomHub) deliver(ctx context.Context, sink contract.NotificationSink, n domain.Notification) error {
	if h.sinkTimeout <= 0 {
		return sink.Consume(ctx, n)
	}
	sinkCtx, cancel := context.WithTimeout(ctx, h.sinkTimeout)
	defer cancel()
	return sink.Consume(sinkCtx, n)
}

func (h *RoomHub) acquire(room domain.Room) *roomLock {
	h.mu.Lock()
	lock, ok := h.locks[room]
	if !ok {
		lock = &roomLock{}
		h.locks[room] = lock
	}
	lock.refs++
	h.mu.Unlock()

	lock.mu.Lock()
	return lock
}

func (h *RoomHub) release(room domain.Room, lock *roomLock) {
	lock.mu.Unlock()

	h.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(h.locks, room)
	}
	h.mu.Unlock()
}
