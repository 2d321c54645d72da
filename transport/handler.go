package transport

import (
	"fmt"
	"forum-lab/auth"
	"forum-lab/contract"
	"forum-lab/domain"
	"forum-lab/services"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	defaultBufferSize   = 32
	defaultWriteTimeout = 5 * time.Second
	maxFrameSize        = 64 << 10
)

// Handler exposes the operation service over HTTP and websockets.
type Handler struct {
	log          *slog.Logger
	service      contract.IOperationService
	registry     contract.ISessionRegistry
	tokens       services.IAuthService
	bufferSize   int
	writeTimeout time.Duration
}

type Option func(*Handler)

// WithBufferSize sets how many notifications a slow connection may lag behind.
func WithBufferSize(size int) Option {
	return func(h *Handler) {
		if size > 0 {
			h.bufferSize = size
		}
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(h *Handler) {
		if timeout > 0 {
			h.writeTimeout = timeout
		}
	}
}

// WithTokenIssuer mounts the demo token route. Never enable it on a real node.
func WithTokenIssuer(tokens services.IAuthService) Option {
	return func(h *Handler) { h.tokens = tokens }
}

func NewHandler(log *slog.Logger, service contract.IOperationService,
	registry contract.ISessionRegistry, opts ...Option) *Handler {
	h := &Handler{
		log:          log,
		service:      service,
		registry:     registry,
		bufferSize:   defaultBufferSize,
		writeTimeout: defaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(h.log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Heartbeat("/ping"))

	r.Get("/api/v3/ws", h.ServeWebsocket)

	r.Group(func(r chi.Router) {
		r.Use(auth.BearerCredential)
		r.Post("/api/v3/post/lock", h.performHTTP(domain.OpLockPost))
		r.Post("/api/v3/post/feature", h.performHTTP(domain.OpFeaturePost))
		r.Post("/api/v3/post/remove", h.performHTTP(domain.OpRemovePost))
		r.Get("/api/v3/modlog", h.getModlog)
	})

	if h.tokens != nil {
		r.Post("/api/v3/demo/token/{personID}", h.issueToken)
	}
	return r
}

// requestLogger logs one line per request once it is served.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Debug(fmt.Sprintf("%s %s", r.Method, r.URL.Path),
				"request_id", chimw.GetReqID(r.Context()),
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start))
		})
	}
}
