package http

import (
	"errors"
	"net/http"

	"snackpos/internal/cart"
	"snackpos/internal/core"
)

type cartView struct {
	Lines []core.CartLine `json:"lines"`
	Total core.Money      `json:"total"`
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	lines := s.cart.Lines(r.Context())
	respondJSON(w, http.StatusOK, cartView{Lines: lines, Total: cart.TotalOf(lines)})
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int `json:"id"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := s.catalog.Find(r.Context(), req.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	lines, err := s.cart.Add(r.Context(), item)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cartView{Lines: lines, Total: cart.TotalOf(lines)})
}

func (s *Server) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Delta int `json:"delta"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	lines, err := s.cart.UpdateQuantity(r.Context(), id, req.Delta)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cartView{Lines: lines, Total: cart.TotalOf(lines)})
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	lines, err := s.cart.Remove(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cartView{Lines: lines, Total: cart.TotalOf(lines)})
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	err := s.cart.Clear(r.Context())
	if errors.Is(err, core.ErrCartAlreadyEmpty) {
		// Informational, not a failure
		respondJSON(w, http.StatusOK, noticeBody{Notice: err.Error()})
		return
	}
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cartView{Lines: []core.CartLine{}})
}
