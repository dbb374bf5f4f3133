package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/hrms-backend-go/internal/handler/http/response"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/realtime"
)

type RealtimeHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
	Typing(w http.ResponseWriter, r *http.Request)
}

type realtimeHandlerImpl struct {
	authService auth.Service
	registry    *realtime.Registry
	emitter     *realtime.Emitter
	keepAlive   time.Duration
}

func NewRealtimeHandler(authService auth.Service, registry *realtime.Registry, emitter *realtime.Emitter, keepAlive time.Duration) RealtimeHandler {
	return &realtimeHandlerImpl{
		authService: authService,
		registry:    registry,
		emitter:     emitter,
		keepAlive:   keepAlive,
	}
}

// Stream is the SSE endpoint. EventSource cannot set an Authorization header,
// so the handshake authenticates with a short-lived stream token in the query
// string instead of the access token.
func (h *realtimeHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		response.Unauthorized(w, "Stream token is required")
		return
	}

	identity, err := h.authService.VerifyStream(r.Context(), token)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming is not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	conn, cleanup := h.registry.Register(identity.UserID, string(identity.Role))
	defer cleanup()

	fmt.Fprintf(w, "event: %s\ndata: {\"status\":\"connected\",\"user_id\":%q}\n\n", realtime.EventConnected, identity.UserID)
	flusher.Flush()

	keepalive := time.NewTicker(h.keepAlive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-conn.Events():
			if !ok {
				return
			}
			data, err := json.Marshal(event.Payload)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: %s\ndata: {\"timestamp\":%d}\n\n", realtime.EventPing, time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

type typingRequest struct {
	Context string `json:"context,omitempty"`
}

// Typing rebroadcasts a transient typing indicator to everyone else online.
// Nothing is persisted.
func (h *realtimeHandlerImpl) Typing(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req typingRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	h.emitter.EmitToAllExcept(userID, realtime.EventUserTyping, map[string]string{
		"user_id": userID,
		"context": req.Context,
	})

	response.Success(w, nil)
}
