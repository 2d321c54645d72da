package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"forum-lab/domain"
	"forum-lab/errors"
	"forum-lab/sink"
	"log/slog"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
)

// ServeWebsocket upgrades the request and keeps the connection registered
// until either side closes it. Every inbound frame is performed in its own
// goroutine, notifications are written by a single writer.
func (h *Handler) ServeWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.log.Debug("Websocket upgrade refused", "error", err)
		return
	}
	conn.SetReadLimit(maxFrameSize)

	id := domain.ConnectionID(uuid.NewString())
	log := h.log.With("connection_id", id)
	connectionSink := sink.NewConnectionSink(h.bufferSize)
	h.registry.Register(id, connectionSink)
	log.Debug("Connection registered")

	ctx, cancel := context.WithCancel(r.Context())
	var inflight sync.WaitGroup
	defer func() {
		cancel()
		connectionSink.Close()
		if err := h.registry.Unregister(id); err != nil {
			log.Warn("Unregister failed", "error", err)
		}
		inflight.Wait()
		_ = conn.Close(websocket.StatusNormalClosure, "")
		log.Debug("Connection closed")
	}()

	go h.writeLoop(ctx, cancel, log, conn, connectionSink)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if status := websocket.CloseStatus(err); status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
				log.Debug("Read stopped", "error", err)
			}
			return
		}
		inflight.Add(1)
		go func() {
			defer inflight.Done()
			h.handleFrame(ctx, log, conn, id, data)
		}()
	}
}

func (h *Handler) handleFrame(ctx context.Context, log *slog.Logger, conn *websocket.Conn,
	id domain.ConnectionID, data []byte) {
	var frame inboundFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		h.write(ctx, log, conn, replyFrame("", nil, fmt.Errorf("%w: %v", errors.ErrInvalidOperation, err)))
		return
	}

	op, err := DecodeOperation(frame.Op, frame.Data)
	if err != nil {
		h.write(ctx, log, conn, replyFrame(frame.Op, nil, err))
		return
	}
	result, err := h.service.Perform(ctx, op, &id)
	if err != nil {
		log.Debug("Operation failed", "op", frame.Op, "error", err)
	}
	h.write(ctx, log, conn, replyFrame(frame.Op, result, err))
}

// writeLoop drains the connection sink. A failed write closes the connection,
// the reader then returns and unregisters it.
func (h *Handler) writeLoop(ctx context.Context, cancel context.CancelFunc, log *slog.Logger,
	conn *websocket.Conn, connectionSink *sink.ConnectionSink) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-connectionSink.Done():
			return
		case n := <-connectionSink.Outbound:
			if !h.write(ctx, log, conn, n) {
				cancel()
				return
			}
		}
	}
}

func (h *Handler) write(ctx context.Context, log *slog.Logger, conn *websocket.Conn, v any) bool {
	ctx, cancel := context.WithTimeout(ctx, h.writeTimeout)
	defer cancel()
	if err := wsjson.Write(ctx, conn, v); err != nil {
		log.Debug("Write failed", "error", err)
		return false
	}
	return true
}
