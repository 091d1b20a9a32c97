package http

import (
	"net/http"
	"time"

	"snackpos/internal/core"
	"snackpos/internal/reports"
)

func (s *Server) handleConfirmSale(w http.ResponseWriter, r *http.Request) {
	sale, err := s.sales.Confirm(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	s.reportCache.Purge()
	respondJSON(w, http.StatusCreated, sale)
}

func (s *Server) handleListSales(w http.ResponseWriter, r *http.Request) {
	results := s.sales.Search(r.Context(), r.URL.Query().Get("q"))
	results = reports.SortByDateDesc(results)
	respondJSON(w, http.StatusOK, struct {
		Results []core.Sale `json:"results"`
		Count   int         `json:"count"`
	}{Results: results, Count: len(results)})
}

func (s *Server) handleEditSale(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req struct {
		Date  time.Time       `json:"date"`
		Items []core.SaleItem `json:"items"`
		Total core.Money      `json:"total"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	sale, err := s.sales.Edit(r.Context(), id, req.Date, req.Items, req.Total)
	if err != nil {
		respondError(w, r, err)
		return
	}
	s.reportCache.Purge()
	respondJSON(w, http.StatusOK, sale)
}

func (s *Server) handleDeleteSale(w http.ResponseWriter, r *http.Request) {
	if err := s.sales.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, r, err)
		return
	}
	s.reportCache.Purge()
	respondJSON(w, http.StatusNoContent, nil)
}
