package http

import (
	"net/http"
	"strconv"

	"snackpos/internal/core"
)

type menuItemRequest struct {
	Name  string     `json:"name"`
	Price core.Money `json:"price"`
	Image string     `json:"image"`
}

func (s *Server) handleListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := s.catalog.Create(r.Context(), req.Name, req.Price, req.Image)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req menuItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := s.catalog.Update(r.Context(), id, req.Name, req.Price, req.Image)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.catalog.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// pathID parses the numeric {id} path segment.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return 0, false
	}
	return id, true
}
