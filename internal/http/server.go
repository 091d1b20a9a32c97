// Package http exposes the core services to the presentation layer as
// a synchronous JSON API.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"snackpos/internal/cache"
	"snackpos/internal/cart"
	"snackpos/internal/catalog"
	"snackpos/internal/reports"
	"snackpos/internal/sales"
)

type Server struct {
	http.Server

	catalog *catalog.Service
	cart    *cart.Service
	sales   *sales.Service
	reports *reports.Service

	rateLimiter *rateLimiter

	// Report payloads cached per month|year filter; dropped whenever
	// a sale mutates.
	reportCache  *cache.LRUCache[reports.Report]
	cacheManager *cache.Manager

	shutdownOnce sync.Once
}

// Options tunes server behavior beyond the service wiring.
type Options struct {
	ReportCacheSize int
	ReportCacheTTL  time.Duration
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server.
func NewServer(addr string, catalogSvc *catalog.Service, cartSvc *cart.Service, salesSvc *sales.Service, reportsSvc *reports.Service, opts Options) *Server {
	if opts.ReportCacheSize <= 0 {
		opts.ReportCacheSize = 100
	}
	if opts.ReportCacheTTL <= 0 {
		opts.ReportCacheTTL = 5 * time.Minute
	}

	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		catalog:      catalogSvc,
		cart:         cartSvc,
		sales:        salesSvc,
		reports:      reportsSvc,
		rateLimiter:  newRateLimiter(),
		reportCache:  cache.NewLRUCache[reports.Report](opts.ReportCacheSize, opts.ReportCacheTTL),
		cacheManager: cache.NewManager(),
	}

	s.cacheManager.Register(s.reportCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("GET /api/menu", s.withMiddleware(s.handleListMenu))
	mux.HandleFunc("POST /api/menu", s.withMiddleware(s.handleCreateMenuItem))
	mux.HandleFunc("PUT /api/menu/{id}", s.withMiddleware(s.handleUpdateMenuItem))
	mux.HandleFunc("DELETE /api/menu/{id}", s.withMiddleware(s.handleDeleteMenuItem))

	mux.HandleFunc("GET /api/cart", s.withMiddleware(s.handleGetCart))
	mux.HandleFunc("POST /api/cart/items", s.withMiddleware(s.handleAddToCart))
	mux.HandleFunc("PATCH /api/cart/items/{id}", s.withMiddleware(s.handleUpdateQuantity))
	mux.HandleFunc("DELETE /api/cart/items/{id}", s.withMiddleware(s.handleRemoveFromCart))
	mux.HandleFunc("DELETE /api/cart", s.withMiddleware(s.handleClearCart))

	mux.HandleFunc("POST /api/sales", s.withMiddleware(s.handleConfirmSale))
	mux.HandleFunc("GET /api/sales", s.withMiddleware(s.handleListSales))
	mux.HandleFunc("PUT /api/sales/{id}", s.withMiddleware(s.handleEditSale))
	mux.HandleFunc("DELETE /api/sales/{id}", s.withMiddleware(s.handleDeleteSale))

	mux.HandleFunc("GET /api/reports", s.withMiddleware(s.handleReports))

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.rateLimiter.stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
