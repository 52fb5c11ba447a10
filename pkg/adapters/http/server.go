// Package http exposes the hotkey engine over a JSON REST API with a
// server-sent event stream for presentation clients.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/aretw0/hotdeck/pkg/ports"
)

// EventStreamer feeds the /events endpoint. observability.Bus implements it.
type EventStreamer interface {
	Stream(ctx context.Context, buffer int, types ...domain.EventType) <-chan domain.Event
}

// Options configures the handler. Only Engine is required.
type Options struct {
	Engine  ports.HotkeyService
	Events  EventStreamer
	Metrics prometheus.Gatherer
	Logger  *slog.Logger
	Version string
}

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// Server implements the generated ServerInterface.
type Server struct {
	Engine  ports.HotkeyService
	Events  EventStreamer
	Logger  *slog.Logger
	Version string
}

var _ ServerInterface = (*Server)(nil)

// NewHandler creates the HTTP handler for the engine. Routes come from
// api/openapi.yaml; /openapi.yaml, /swagger and /metrics are mounted beside them.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		Engine:  opts.Engine,
		Events:  opts.Events,
		Logger:  logger,
		Version: opts.Version,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to load OpenAPI spec: %w", err))
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if opts.Metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Metrics, promhttp.HandlerOpts{}))
	}

	handler := HandlerWithOptions(s, ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			s.writeError(w, http.StatusBadRequest, err)
		},
	})
	return enableCORS(handler)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Hotdeck API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":                   "hotdeck-http",
		"version":               strings.TrimSpace(s.Version),
		"configuration_version": domain.ConfigurationVersion,
	})
}

// GetLearning handles GET /learning.
func (s *Server) GetLearning(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, LearningStatus{Learning: s.Engine.IsLearning()})
}

// StartLearning handles POST /learning/start. With a hotkeyId the captured
// trigger is bound to that hotkey; otherwise it is only reported through the
// learningStopped event.
func (s *Server) StartLearning(w http.ResponseWriter, r *http.Request) {
	var body StartLearningJSONRequestBody
	if r.ContentLength != 0 {
		if !s.decode(w, r, &body) {
			return
		}
	}

	var err error
	if body.HotkeyId != nil && *body.HotkeyId != "" {
		err = s.Engine.LearnTrigger(r.Context(), *body.HotkeyId)
	} else {
		err = s.Engine.StartLearning("", func(domain.Trigger) {})
	}
	switch {
	case errors.Is(err, domain.ErrHotkeyNotFound):
		s.writeError(w, http.StatusNotFound, err)
	case errors.Is(err, domain.ErrLearningInProgress):
		s.writeError(w, http.StatusConflict, err)
	case err != nil:
		s.writeError(w, http.StatusInternalServerError, err)
	default:
		s.writeJSON(w, http.StatusAccepted, LearningStatus{Learning: true})
	}
}

// StopLearning handles POST /learning/stop.
func (s *Server) StopLearning(w http.ResponseWriter, r *http.Request) {
	s.Engine.StopLearning()
	s.writeJSON(w, http.StatusOK, LearningStatus{Learning: false})
}

// InputMIDI handles POST /input/midi.
func (s *Server) InputMIDI(w http.ResponseWriter, r *http.Request) {
	var msg InputMIDIJSONRequestBody
	if !s.decode(w, r, &msg) {
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"executed": s.Engine.HandleMIDI(r.Context(), msg)})
}

// InputKeyboard handles POST /input/keyboard.
func (s *Server) InputKeyboard(w http.ResponseWriter, r *http.Request) {
	var ev InputKeyboardJSONRequestBody
	if !s.decode(w, r, &ev) {
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"matched": s.Engine.HandleKey(r.Context(), ev)})
}

// ExportConfig handles GET /config.
func (s *Server) ExportConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="hotdeck-config.json"`)
	s.writeJSON(w, http.StatusOK, s.Engine.Export())
}

// ImportConfig handles POST /config.
func (s *Server) ImportConfig(w http.ResponseWriter, r *http.Request) {
	var cfg ImportConfigJSONRequestBody
	if !s.decode(w, r, &cfg) {
		return
	}
	err := s.Engine.Import(r.Context(), &cfg)
	switch {
	case errors.Is(err, domain.ErrUnsupportedVersion),
		errors.Is(err, domain.ErrInvalidConfiguration),
		errors.Is(err, domain.ErrUnknownActionType),
		errors.Is(err, domain.ErrInvalidActionData),
		errors.Is(err, domain.ErrInvalidTrigger):
		s.writeError(w, http.StatusBadRequest, err)
	case err != nil:
		s.Logger.Error("import persisted partially", "err", err)
		s.writeError(w, http.StatusInternalServerError, err)
	default:
		s.writeJSON(w, http.StatusOK, s.Engine.Stats())
	}
}

// GetStats handles GET /stats.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Engine.Stats())
}

// GetHistory handles GET /history.
func (s *Server) GetHistory(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Engine.History())
}

// -- Helpers --

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "status", status, "err", err)
	} else {
		s.Logger.Warn("request rejected", "status", status, "err", err)
	}
	s.writeJSON(w, status, Error{Error: err.Error()})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("invalid request body: "+err.Error()))
		return false
	}
	return true
}
