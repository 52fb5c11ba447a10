package http

import (
	"errors"
	"net/http"

	"github.com/aretw0/hotdeck/pkg/domain"
)

// ListDecks handles GET /decks. Filters: ?parentId= lists sub-decks,
// ?main=true lists main decks.
func (s *Server) ListDecks(w http.ResponseWriter, r *http.Request, params ListDecksParams) {
	switch {
	case params.ParentId != nil && *params.ParentId != "":
		s.writeJSON(w, http.StatusOK, s.Engine.SubDecks(*params.ParentId))
	case params.Main != nil && *params.Main:
		s.writeJSON(w, http.StatusOK, s.Engine.MainDecks())
	default:
		s.writeJSON(w, http.StatusOK, s.Engine.Decks())
	}
}

// CreateDeck handles POST /decks.
func (s *Server) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var opts CreateDeckJSONRequestBody
	if !s.decode(w, r, &opts) {
		return
	}
	d, err := s.Engine.CreateDeck(r.Context(), opts)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, d)
}

// GetCurrentDeck handles GET /decks/current.
func (s *Server) GetCurrentDeck(w http.ResponseWriter, r *http.Request) {
	d, ok := s.Engine.CurrentDeck()
	if !ok {
		s.writeError(w, http.StatusNotFound, errors.New("no current deck"))
		return
	}
	s.writeJSON(w, http.StatusOK, d)
}

// GetDeck handles GET /decks/{id}.
func (s *Server) GetDeck(w http.ResponseWriter, r *http.Request, id string) {
	d, ok := s.deck(w, id)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, d)
}

// UpdateDeck handles PATCH /decks/{id}.
func (s *Server) UpdateDeck(w http.ResponseWriter, r *http.Request, id string) {
	d, ok := s.deck(w, id)
	if !ok {
		return
	}
	var patch UpdateDeckJSONRequestBody
	if !s.decode(w, r, &patch) {
		return
	}
	if !s.Engine.UpdateDeck(r.Context(), d.ID, patch) {
		s.writeError(w, http.StatusBadRequest, errors.New("deck update rejected"))
		return
	}
	updated, _ := s.Engine.Deck(d.ID)
	s.writeJSON(w, http.StatusOK, updated)
}

// DeleteDeck handles DELETE /decks/{id}.
func (s *Server) DeleteDeck(w http.ResponseWriter, r *http.Request, id string) {
	if !s.Engine.DeleteDeck(r.Context(), id) {
		s.writeError(w, http.StatusNotFound, domain.ErrDeckNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetGrid handles GET /decks/{id}/grid for a main deck.
func (s *Server) GetGrid(w http.ResponseWriter, r *http.Request, id string) {
	grid, ok := s.Engine.Grid(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, domain.ErrDeckNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, grid)
}

// SwitchDeck handles POST /decks/{id}/switch.
func (s *Server) SwitchDeck(w http.ResponseWriter, r *http.Request, id string) {
	d, ok := s.deck(w, id)
	if !ok {
		return
	}
	if !s.Engine.SwitchToDeck(r.Context(), d.ID) {
		s.writeError(w, http.StatusConflict, errors.New("deck switch failed"))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"currentDeck": d.ID})
}

// SwitchSubDeck handles PUT /decks/{id}/subdeck.
func (s *Server) SwitchSubDeck(w http.ResponseWriter, r *http.Request, id string) {
	d, ok := s.deck(w, id)
	if !ok {
		return
	}
	var body SwitchSubDeckJSONRequestBody
	if !s.decode(w, r, &body) {
		return
	}
	if !s.Engine.SwitchToSubDeck(r.Context(), d.ID, body.SubDeckId) {
		s.writeError(w, http.StatusBadRequest, errors.New("not a sub-deck of this main deck"))
		return
	}
	s.writeJSON(w, http.StatusOK, s.Engine.ActiveSubDecks())
}

// SwitchBackToMain handles DELETE /decks/{id}/subdeck.
func (s *Server) SwitchBackToMain(w http.ResponseWriter, r *http.Request, id string) {
	d, ok := s.deck(w, id)
	if !ok {
		return
	}
	if !s.Engine.SwitchBackToMainDeck(r.Context(), d.ID) {
		s.writeError(w, http.StatusBadRequest, errors.New("not a main deck"))
		return
	}
	s.writeJSON(w, http.StatusOK, s.Engine.ActiveSubDecks())
}

func (s *Server) deck(w http.ResponseWriter, id string) (*domain.Deck, bool) {
	d, ok := s.Engine.Deck(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, domain.ErrDeckNotFound)
	}
	return d, ok
}
