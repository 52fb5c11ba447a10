package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aretw0/hotdeck/pkg/domain"
)

// ListHotkeys handles GET /hotkeys. Filters: ?deckId=, ?standalone=true.
func (s *Server) ListHotkeys(w http.ResponseWriter, r *http.Request, params ListHotkeysParams) {
	switch {
	case params.DeckId != nil && *params.DeckId != "":
		s.writeJSON(w, http.StatusOK, s.Engine.HotkeysByDeck(*params.DeckId))
	case params.Standalone != nil:
		if !*params.Standalone {
			placed := []*domain.Hotkey{}
			for _, h := range s.Engine.Hotkeys() {
				if !h.IsStandalone() {
					placed = append(placed, h)
				}
			}
			s.writeJSON(w, http.StatusOK, placed)
			return
		}
		s.writeJSON(w, http.StatusOK, s.Engine.StandaloneHotkeys())
	default:
		s.writeJSON(w, http.StatusOK, s.Engine.Hotkeys())
	}
}

// CreateHotkey handles POST /hotkeys.
func (s *Server) CreateHotkey(w http.ResponseWriter, r *http.Request) {
	var opts CreateHotkeyJSONRequestBody
	if !s.decode(w, r, &opts) {
		return
	}
	s.writeJSON(w, http.StatusCreated, s.Engine.CreateHotkey(r.Context(), opts))
}

// GetHotkey handles GET /hotkeys/{id}.
func (s *Server) GetHotkey(w http.ResponseWriter, r *http.Request, id string) {
	h, ok := s.hotkey(w, id)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, h)
}

// UpdateHotkey handles PATCH /hotkeys/{id}.
func (s *Server) UpdateHotkey(w http.ResponseWriter, r *http.Request, id string) {
	h, ok := s.hotkey(w, id)
	if !ok {
		return
	}
	var patch UpdateHotkeyJSONRequestBody
	if !s.decode(w, r, &patch) {
		return
	}
	if !s.Engine.UpdateHotkey(r.Context(), h.ID, patch) {
		s.writeError(w, http.StatusBadRequest, errors.New("hotkey update rejected"))
		return
	}
	s.respondHotkey(w, h.ID)
}

// DeleteHotkey handles DELETE /hotkeys/{id}.
func (s *Server) DeleteHotkey(w http.ResponseWriter, r *http.Request, id string) {
	if !s.Engine.DeleteHotkey(r.Context(), id) {
		s.writeError(w, http.StatusNotFound, domain.ErrHotkeyNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExecuteHotkey handles POST /hotkeys/{id}/execute. Execution failures are
// reported in the body, not as an HTTP error.
func (s *Server) ExecuteHotkey(w http.ResponseWriter, r *http.Request, id string) {
	h, ok := s.hotkey(w, id)
	if !ok {
		return
	}
	resp := ExecuteResult{Success: s.Engine.Execute(r.Context(), h.ID)}
	if !resp.Success {
		history := s.Engine.History()
		if n := len(history); n > 0 && history[n-1].HotkeyID == h.ID {
			resp.Error = &history[n-1].Error
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// DuplicateHotkey handles POST /hotkeys/{id}/duplicate.
func (s *Server) DuplicateHotkey(w http.ResponseWriter, r *http.Request, id string) {
	dup, ok := s.Engine.DuplicateHotkey(r.Context(), id)
	if !ok {
		s.writeError(w, http.StatusNotFound, domain.ErrHotkeyNotFound)
		return
	}
	s.writeJSON(w, http.StatusCreated, dup)
}

// MoveHotkey handles PUT /hotkeys/{id}/position.
func (s *Server) MoveHotkey(w http.ResponseWriter, r *http.Request, id string) {
	h, ok := s.hotkey(w, id)
	if !ok {
		return
	}
	var body MoveHotkeyJSONRequestBody
	if !s.decode(w, r, &body) {
		return
	}
	if !s.Engine.MoveHotkey(r.Context(), h.ID, body.DeckId, body.Position) {
		s.writeError(w, http.StatusConflict, errors.New("slot is unavailable"))
		return
	}
	s.respondHotkey(w, h.ID)
}

// DetachHotkey handles DELETE /hotkeys/{id}/position.
func (s *Server) DetachHotkey(w http.ResponseWriter, r *http.Request, id string) {
	h, ok := s.hotkey(w, id)
	if !ok {
		return
	}
	s.Engine.DetachHotkey(r.Context(), h.ID)
	s.respondHotkey(w, h.ID)
}

// AddTrigger handles POST /hotkeys/{id}/triggers.
func (s *Server) AddTrigger(w http.ResponseWriter, r *http.Request, id string) {
	h, ok := s.hotkey(w, id)
	if !ok {
		return
	}
	var t AddTriggerJSONRequestBody
	if !s.decode(w, r, &t) {
		return
	}
	if !s.Engine.AddTrigger(r.Context(), h.ID, t) {
		s.writeError(w, http.StatusBadRequest, domain.ErrInvalidTrigger)
		return
	}
	s.respondHotkey(w, h.ID)
}

// RemoveTrigger handles DELETE /hotkeys/{id}/triggers/{kind}.
func (s *Server) RemoveTrigger(w http.ResponseWriter, r *http.Request, id string, kind string) {
	h, ok := s.hotkey(w, id)
	if !ok {
		return
	}
	if !s.Engine.RemoveTrigger(r.Context(), h.ID, domain.TriggerKind(kind)) {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("no %s trigger on hotkey", kind))
		return
	}
	s.respondHotkey(w, h.ID)
}

// AddAction handles POST /hotkeys/{id}/actions.
func (s *Server) AddAction(w http.ResponseWriter, r *http.Request, id string) {
	h, ok := s.hotkey(w, id)
	if !ok {
		return
	}
	var a AddActionJSONRequestBody
	if !s.decode(w, r, &a) {
		return
	}
	added, ok := s.Engine.AddAction(r.Context(), h.ID, a)
	if !ok {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %s", domain.ErrUnknownActionType, a.Type))
		return
	}
	s.writeJSON(w, http.StatusCreated, added)
}

// ReorderActions handles PUT /hotkeys/{id}/actions/order.
func (s *Server) ReorderActions(w http.ResponseWriter, r *http.Request, id string) {
	h, ok := s.hotkey(w, id)
	if !ok {
		return
	}
	var body ReorderActionsJSONRequestBody
	if !s.decode(w, r, &body) {
		return
	}
	if !s.Engine.ReorderActions(r.Context(), h.ID, body.ActionIds) {
		s.writeError(w, http.StatusBadRequest, errors.New("actionIds must list every action exactly once"))
		return
	}
	s.respondHotkey(w, h.ID)
}

// RemoveAction handles DELETE /hotkeys/{id}/actions/{actionId}.
func (s *Server) RemoveAction(w http.ResponseWriter, r *http.Request, id string, actionId string) {
	h, ok := s.hotkey(w, id)
	if !ok {
		return
	}
	if !s.Engine.RemoveAction(r.Context(), h.ID, actionId) {
		s.writeError(w, http.StatusNotFound, errors.New("action not found"))
		return
	}
	s.respondHotkey(w, h.ID)
}

func (s *Server) hotkey(w http.ResponseWriter, id string) (*domain.Hotkey, bool) {
	h, ok := s.Engine.Hotkey(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, domain.ErrHotkeyNotFound)
	}
	return h, ok
}

func (s *Server) respondHotkey(w http.ResponseWriter, id string) {
	h, ok := s.Engine.Hotkey(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, domain.ErrHotkeyNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, h)
}
