package transport

import (
	"encoding/json"
	"fmt"
	"forum-lab/auth"
	"forum-lab/domain"
	"forum-lab/errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// performHTTP runs an operation without a live connection, so it has no
// origin and its notifications reach every member of the rooms.
func (h *Handler) performHTTP(kind domain.UserOperation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxFrameSize))
		if err != nil {
			writeError(w, fmt.Errorf("%w: %v", errors.ErrInvalidOperation, err))
			return
		}
		op, err := DecodeOperation(kind, body)
		if err != nil {
			writeError(w, err)
			return
		}
		if credential, ok := auth.CredentialFromContext(r.Context()); ok {
			op = withCredential(op, credential)
		}

		result, err := h.service.Perform(r.Context(), op, nil)
		if err != nil {
			h.log.Debug("Operation failed", "op", kind, "error", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func (h *Handler) getModlog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var op domain.GetModlog
	if raw := query.Get("post_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, fmt.Errorf("%w: post_id: %v", errors.ErrInvalidOperation, err))
			return
		}
		postID := domain.PostID(id)
		op.PostID = &postID
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, fmt.Errorf("%w: limit: %v", errors.ErrInvalidOperation, err))
			return
		}
		op.Limit = &limit
	}
	if cursor := query.Get("cursor"); cursor != "" {
		op.Cursor = &cursor
	}

	result, err := h.service.Perform(r.Context(), op, nil)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "personID"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: person id: %v", errors.ErrInvalidOperation, err))
		return
	}
	token, err := h.tokens.IssueToken(r.Context(), domain.PersonID(id))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"jwt": token.String()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errors.HTTPStatus(err), map[string]string{"error": errors.Code(err)})
}
