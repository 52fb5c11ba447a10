package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aretw0/hotdeck/pkg/domain"
)

// SubscribeEvents handles GET /events (SSE). ?types=a,b restricts the stream
// to the named event types.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request, params SubscribeEventsParams) {
	if s.Events == nil {
		http.Error(w, "event stream not configured", http.StatusNotImplemented)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("SubscribeEvents: streaming not supported")
		return
	}

	var types []domain.EventType
	if params.Types != nil {
		for _, t := range strings.Split(*params.Types, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, domain.EventType(t))
			}
		}
	}

	events := s.Events.Stream(r.Context(), 32, types...)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()
	s.Logger.Info("SSE client connected", "types", types)

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Info("SSE client disconnected")
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				s.Logger.Error("SSE event encode failed", "type", ev.EventType(), "err", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.EventType(), data)
			flusher.Flush()
		}
	}
}
